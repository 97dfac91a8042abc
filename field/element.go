// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package field

import (
	"fmt"
	"math/big"
)

// Element is an immutable element of a prime field, held in canonical form:
// 0 <= value < modulus.
//
// Elements are created through a Field factory; the zero value of the type
// is not usable. Binary operations require both operands to belong to the
// same field and panic with ErrIncompatibleModulus otherwise. Equal is the
// exception: elements of different fields are never equal, without panicking.
type Element struct {
	v *big.Int
	f *Field
}

// Field returns the field the element belongs to.
func (a Element) Field() *Field {
	return a.f
}

// BigInt returns a copy of the canonical value in [0, p).
func (a Element) BigInt() *big.Int {
	return new(big.Int).Set(a.v)
}

// Uint64 returns the canonical value; valid only when IsUint64 is true.
func (a Element) Uint64() uint64 {
	return a.v.Uint64()
}

// IsUint64 reports whether the canonical value fits in a uint64.
func (a Element) IsUint64() bool {
	return a.v.IsUint64()
}

// IsZero reports whether the element is the additive identity.
func (a Element) IsZero() bool {
	return a.v.Sign() == 0
}

// IsOne reports whether the element is the multiplicative identity.
func (a Element) IsOne() bool {
	return a.v.Cmp(bigOne) == 0
}

// Equal reports whether a and b are the same element of the same field.
// Elements of fields with different moduli are never equal, even when their
// canonical values coincide.
func (a Element) Equal(b Element) bool {
	return a.f.p.Cmp(b.f.p) == 0 && a.v.Cmp(b.v) == 0
}

// Cmp compares the canonical values of a and b. The operands must belong to
// the same field.
func (a Element) Cmp(b Element) int {
	a.mustBeCompatible(b)
	return a.v.Cmp(b.v)
}

// Add returns a + b.
func (a Element) Add(b Element) Element {
	a.mustBeCompatible(b)
	v := new(big.Int).Add(a.v, b.v)
	if v.Cmp(a.f.p) >= 0 {
		v.Sub(v, a.f.p)
	}
	return Element{v: v, f: a.f}
}

// Sub returns a - b, reduced into [0, p).
func (a Element) Sub(b Element) Element {
	a.mustBeCompatible(b)
	v := new(big.Int).Sub(a.v, b.v)
	if v.Sign() < 0 {
		v.Add(v, a.f.p)
	}
	return Element{v: v, f: a.f}
}

// Neg returns the additive inverse -a. Zero negates to zero.
func (a Element) Neg() Element {
	if a.v.Sign() == 0 {
		return a
	}
	return Element{v: new(big.Int).Sub(a.f.p, a.v), f: a.f}
}

// Mul returns a * b.
func (a Element) Mul(b Element) Element {
	a.mustBeCompatible(b)
	v := new(big.Int).Mul(a.v, b.v)
	return Element{v: v.Mod(v, a.f.p), f: a.f}
}

// Square returns a * a.
func (a Element) Square() Element {
	v := new(big.Int).Mul(a.v, a.v)
	return Element{v: v.Mod(v, a.f.p), f: a.f}
}

// Double returns a + a.
func (a Element) Double() Element {
	v := new(big.Int).Lsh(a.v, 1)
	if v.Cmp(a.f.p) >= 0 {
		v.Sub(v, a.f.p)
	}
	return Element{v: v, f: a.f}
}

// Exp returns a^n by square-and-multiply, in O(log n) multiplications.
//
// n must be non-negative; Exp panics with ErrNegativeExponent otherwise.
// a^0 is 1 for every a, including zero.
func (a Element) Exp(n *big.Int) Element {
	if n.Sign() < 0 {
		panic(fmt.Errorf("%w: %s", ErrNegativeExponent, n))
	}
	r := big.NewInt(1)
	for i := n.BitLen() - 1; i >= 0; i-- {
		r.Mul(r, r)
		r.Mod(r, a.f.p)
		if n.Bit(i) == 1 {
			r.Mul(r, a.v)
			r.Mod(r, a.f.p)
		}
	}
	return Element{v: r, f: a.f}
}

// Inverse returns the unique element b with a*b = 1 (mod p), computed with
// the extended Euclidean algorithm.
//
// Zero has no inverse in any field; Inverse fails with ErrDivisionByZero.
// A nonzero element can lack an inverse only when the modulus is composite
// (gcd(a, p) > 1); that case fails with ErrNotInvertible.
func (a Element) Inverse() (Element, error) {
	if a.v.Sign() == 0 {
		return Element{}, fmt.Errorf("%w: zero has no inverse in %s", ErrDivisionByZero, a.f)
	}
	g, x, _ := ExtendedGCD(a.v, a.f.p)
	if g.Cmp(bigOne) != 0 {
		return Element{}, fmt.Errorf("%w: gcd(%s, %s) = %s", ErrNotInvertible, a.v, a.f.p, g)
	}
	return Element{v: x.Mod(x, a.f.p), f: a.f}, nil
}

// Div returns a * b^-1. It fails with ErrDivisionByZero when b is zero.
func (a Element) Div(b Element) (Element, error) {
	a.mustBeCompatible(b)
	binv, err := b.Inverse()
	if err != nil {
		return Element{}, err
	}
	return a.Mul(binv), nil
}

// String returns the canonical value in decimal.
func (a Element) String() string {
	return a.v.String()
}

// Text returns the canonical value in the given base, 2 <= base <= 62.
func (a Element) Text(base int) string {
	return a.v.Text(base)
}

func (a Element) mustBeCompatible(b Element) {
	if a.f.p.Cmp(b.f.p) != 0 {
		panic(fmt.Errorf("%w: %s and %s", ErrIncompatibleModulus, a.f, b.f))
	}
}

var bigOne = big.NewInt(1)
