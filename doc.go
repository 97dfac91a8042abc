// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package galois provides arithmetic over prime finite fields GF(p).
//
// The modulus is a runtime parameter: a [field.Field] is built once from a
// prime p and acts as a factory for immutable field elements supporting
// addition, subtraction, multiplication, division, negation, exponentiation
// and equality, all reduced into the canonical range [0, p).
//
// The [poly] package builds dense univariate polynomials on top of field
// elements, including long division and Lagrange interpolation.
package galois

import (
	"github.com/blang/semver/v4"

	"github.com/consensys/galois/field"
)

var Version = semver.MustParse("0.1.0")

// Fields returns the well-known prime fields bundled with the library.
func Fields() []*field.Field {
	return []*field.Field{
		field.BN254Fr(),
		field.Goldilocks(),
		field.Stark252(),
		field.MiMCStark256(),
	}
}
