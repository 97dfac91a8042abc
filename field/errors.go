// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package field

import "errors"

var (
	// ErrInvalidModulus is returned by NewField when the modulus is smaller
	// than 2 or fails the primality check.
	ErrInvalidModulus = errors.New("invalid modulus")

	// ErrIncompatibleModulus reports an operation mixing elements of two
	// different fields. It is a call-site programming error; binary
	// operations panic with an error wrapping it.
	ErrIncompatibleModulus = errors.New("incompatible moduli")

	// ErrDivisionByZero is returned when inverting or dividing by the zero
	// element. Zero is not invertible in any field.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrNotInvertible is returned when a nonzero element shares a factor
	// with the modulus. This cannot happen when the modulus is prime; it
	// surfaces only on fields built with WithoutPrimalityCheck and a
	// composite modulus.
	ErrNotInvertible = errors.New("element is not invertible")

	// ErrNegativeExponent reports a negative exponent passed to Exp.
	ErrNegativeExponent = errors.New("negative exponent")
)
