// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package poly

import (
	"errors"
	"fmt"

	"github.com/consensys/galois/field"
)

// ErrDuplicatePoint reports two interpolation points sharing an abscissa.
var ErrDuplicatePoint = errors.New("duplicate interpolation point")

// Interpolate returns the unique polynomial of degree < len(xs) passing
// through the points (xs[i], ys[i]), by Lagrange interpolation. The
// abscissae must be pairwise distinct elements of f; duplicates fail with
// ErrDuplicatePoint. No points yield the zero polynomial.
func Interpolate(f *field.Field, xs, ys []field.Element) (Polynomial, error) {
	if len(xs) != len(ys) {
		return Polynomial{}, fmt.Errorf("point count mismatch: %d abscissae, %d ordinates", len(xs), len(ys))
	}
	for i, x := range xs {
		if !f.Equal(x.Field()) || !f.Equal(ys[i].Field()) {
			return Polynomial{}, fmt.Errorf("%w: point %d is not over %s", field.ErrIncompatibleModulus, i, f)
		}
		for j := 0; j < i; j++ {
			if x.Equal(xs[j]) {
				return Polynomial{}, fmt.Errorf("%w: x = %s at indices %d and %d", ErrDuplicatePoint, x, j, i)
			}
		}
	}

	result := Zero(f)
	for i := range xs {
		// basis_i = prod_{j != i} (X - xs[j]) / (xs[i] - xs[j])
		basis := One(f)
		denom := f.One()
		for j := range xs {
			if j == i {
				continue
			}
			basis = basis.Mul(Polynomial{f: f, coeffs: []field.Element{xs[j].Neg(), f.One()}})
			denom = denom.Mul(xs[i].Sub(xs[j]))
		}
		scale, err := ys[i].Div(denom)
		if err != nil {
			// unreachable: the abscissae are pairwise distinct
			return Polynomial{}, err
		}
		result = result.Add(basis.ScalarMul(scale))
	}
	return result, nil
}

// Vanishing returns the monic polynomial prod_i (X - roots[i]), which is
// zero exactly on the given multiset of roots. No roots yield the constant
// polynomial 1.
func Vanishing(f *field.Field, roots []field.Element) Polynomial {
	result := One(f)
	for _, r := range roots {
		result = result.Mul(Polynomial{f: f, coeffs: []field.Element{r.Neg(), f.One()}})
	}
	return result
}
