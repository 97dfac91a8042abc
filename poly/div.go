// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package poly

import (
	"fmt"

	"github.com/consensys/galois/field"
)

// QuoRem returns the quotient and remainder of the Euclidean division of p
// by d: p = q*d + r with deg(r) < deg(d). Dividing by the zero polynomial
// fails with field.ErrDivisionByZero.
func (p Polynomial) QuoRem(d Polynomial) (q, r Polynomial, err error) {
	if d.IsZero() {
		return Polynomial{}, Polynomial{}, fmt.Errorf("%w: zero divisor polynomial", field.ErrDivisionByZero)
	}
	if p.Degree() < d.Degree() {
		return Zero(p.f), p, nil
	}

	leadInv, err := d.coeffs[d.Degree()].Inverse()
	if err != nil {
		// unreachable over a prime field: the leading coefficient is nonzero
		return Polynomial{}, Polynomial{}, err
	}

	rem := make([]field.Element, len(p.coeffs))
	copy(rem, p.coeffs)
	quo := make([]field.Element, p.Degree()-d.Degree()+1)
	for i := range quo {
		quo[i] = p.f.Zero()
	}

	for top := len(rem) - 1; top >= d.Degree(); top-- {
		if rem[top].IsZero() {
			continue
		}
		shift := top - d.Degree()
		c := rem[top].Mul(leadInv)
		quo[shift] = c
		for j, dc := range d.coeffs {
			rem[shift+j] = rem[shift+j].Sub(c.Mul(dc))
		}
	}

	return Polynomial{f: p.f, coeffs: normalize(quo)},
		Polynomial{f: p.f, coeffs: normalize(rem)},
		nil
}
