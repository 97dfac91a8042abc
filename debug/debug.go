// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

//go:build !debug

// Package debug exposes the build-time debug flag and cheap assertions.
//
// Build with -tags=debug to enable assertions and verbose logging.
package debug

const Debug = false

// Assert does nothing in release builds.
func Assert(condition bool, message ...string) {}
