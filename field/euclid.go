// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package field

import (
	"fmt"
	"math/big"
)

// ExtendedGCD returns g = gcd(a, b) together with Bezout coefficients x, y
// such that a*x + b*y = g. Inputs must be non-negative and are not modified.
//
// For a nonzero residue a and a prime p, gcd(a, p) = 1, so x is the
// multiplicative inverse of a modulo p (up to reduction into [0, p)).
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	r0, r1 := new(big.Int).Set(a), new(big.Int).Set(b)
	x0, x1 := big.NewInt(1), big.NewInt(0)
	y0, y1 := big.NewInt(0), big.NewInt(1)

	q := new(big.Int)
	t := new(big.Int)
	for r1.Sign() != 0 {
		q.Quo(r0, r1)

		t.Mul(q, r1)
		r0.Sub(r0, t)
		r0, r1 = r1, r0

		t.Mul(q, x1)
		x0.Sub(x0, t)
		x0, x1 = x1, x0

		t.Mul(q, y1)
		y0.Sub(y0, t)
		y0, y1 = y1, y0
	}
	return r0, x0, y0
}

// BatchInvert replaces every element of s with its inverse, using a single
// field inversion and 3*(len(s)-1) multiplications (Montgomery's trick).
//
// All elements must belong to the same field. If any element is zero, s is
// left unmodified and BatchInvert fails with ErrDivisionByZero, reporting
// the offending index.
func BatchInvert(s []Element) error {
	if len(s) == 0 {
		return nil
	}

	// prefix[i] = s[0] * ... * s[i-1]
	prefix := make([]*big.Int, len(s))
	acc := big.NewInt(1)
	for i, e := range s {
		s[0].mustBeCompatible(e)
		if e.IsZero() {
			return fmt.Errorf("%w: element %d of batch is zero", ErrDivisionByZero, i)
		}
		prefix[i] = new(big.Int).Set(acc)
		acc.Mul(acc, e.v)
		acc.Mod(acc, e.f.p)
	}

	inv, err := (Element{v: acc, f: s[0].f}).Inverse()
	if err != nil {
		return err
	}

	// inv = (s[i] * ... * s[n-1])^-1 on entry to iteration i
	accInv := inv.v
	p := s[0].f.p
	for i := len(s) - 1; i >= 0; i-- {
		v := new(big.Int).Mul(accInv, prefix[i])
		v.Mod(v, p)
		accInv.Mul(accInv, s[i].v)
		accInv.Mod(accInv, p)
		s[i] = Element{v: v, f: s[i].f}
	}
	return nil
}
