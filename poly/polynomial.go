// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package poly implements dense univariate polynomials over a prime field.
//
// Polynomials are immutable: every operation returns a fresh polynomial.
// Coefficients are stored in ascending degree order with no trailing zero,
// so the zero polynomial has no coefficients and degree -1.
package poly

import (
	"fmt"
	"io"
	"strings"

	"github.com/consensys/galois/debug"
	"github.com/consensys/galois/field"
)

// Polynomial is a dense univariate polynomial over one prime field.
// The zero value is not usable; build polynomials with the constructors.
type Polynomial struct {
	f      *field.Field
	coeffs []field.Element // coeffs[i] multiplies X^i; no trailing zero
}

// New builds a polynomial over f from coefficients in ascending degree
// order. Every coefficient must be an element of f. The slice is copied.
func New(f *field.Field, coeffs []field.Element) (Polynomial, error) {
	for i, c := range coeffs {
		if !f.Equal(c.Field()) {
			return Polynomial{}, fmt.Errorf("%w: coefficient %d is in %s, expected %s",
				field.ErrIncompatibleModulus, i, c.Field(), f)
		}
	}
	return Polynomial{f: f, coeffs: normalize(coeffs)}, nil
}

// NewFromInt64 builds a polynomial from integer coefficients in ascending
// degree order, reducing each into f.
func NewFromInt64(f *field.Field, coeffs ...int64) Polynomial {
	cs := make([]field.Element, len(coeffs))
	for i, c := range coeffs {
		cs[i] = f.NewElementFromInt64(c)
	}
	return Polynomial{f: f, coeffs: normalize(cs)}
}

// Zero returns the zero polynomial over f.
func Zero(f *field.Field) Polynomial {
	return Polynomial{f: f}
}

// One returns the constant polynomial 1 over f.
func One(f *field.Field) Polynomial {
	return Polynomial{f: f, coeffs: []field.Element{f.One()}}
}

// X returns the monomial X over f.
func X(f *field.Field) Polynomial {
	return Polynomial{f: f, coeffs: []field.Element{f.Zero(), f.One()}}
}

// Random returns a uniformly random polynomial of exactly the given degree:
// the leading coefficient is redrawn until nonzero. degree -1 yields the
// zero polynomial. Entropy is read from r; if r is nil, crypto/rand is used.
func Random(f *field.Field, degree int, r io.Reader) (Polynomial, error) {
	if degree < 0 {
		return Zero(f), nil
	}
	cs := make([]field.Element, degree+1)
	for i := range cs {
		c, err := f.Random(r)
		if err != nil {
			return Polynomial{}, err
		}
		cs[i] = c
	}
	for cs[degree].IsZero() {
		c, err := f.Random(r)
		if err != nil {
			return Polynomial{}, err
		}
		cs[degree] = c
	}
	return Polynomial{f: f, coeffs: cs}, nil
}

// Field returns the coefficient field.
func (p Polynomial) Field() *field.Field {
	return p.f
}

// Degree returns the degree of p; the zero polynomial has degree -1.
func (p Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// Coeff returns the coefficient of X^i; zero beyond the degree.
func (p Polynomial) Coeff(i int) field.Element {
	if i < 0 || i >= len(p.coeffs) {
		return p.f.Zero()
	}
	return p.coeffs[i]
}

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool {
	return len(p.coeffs) == 0
}

// Equal reports whether p and q have the same coefficients over the same
// field.
func (p Polynomial) Equal(q Polynomial) bool {
	if !p.f.Equal(q.f) || len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if !p.coeffs[i].Equal(q.coeffs[i]) {
			return false
		}
	}
	return true
}

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	n := max(len(p.coeffs), len(q.coeffs))
	cs := make([]field.Element, n)
	for i := range cs {
		cs[i] = p.Coeff(i).Add(q.Coeff(i))
	}
	return Polynomial{f: p.f, coeffs: normalize(cs)}
}

// Sub returns p - q.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	n := max(len(p.coeffs), len(q.coeffs))
	cs := make([]field.Element, n)
	for i := range cs {
		cs[i] = p.Coeff(i).Sub(q.Coeff(i))
	}
	return Polynomial{f: p.f, coeffs: normalize(cs)}
}

// Neg returns -p.
func (p Polynomial) Neg() Polynomial {
	cs := make([]field.Element, len(p.coeffs))
	for i, c := range p.coeffs {
		cs[i] = c.Neg()
	}
	return Polynomial{f: p.f, coeffs: cs}
}

// ScalarMul returns p scaled by e.
func (p Polynomial) ScalarMul(e field.Element) Polynomial {
	if e.IsZero() {
		return Zero(p.f)
	}
	cs := make([]field.Element, len(p.coeffs))
	for i, c := range p.coeffs {
		cs[i] = c.Mul(e)
	}
	return Polynomial{f: p.f, coeffs: normalize(cs)}
}

// Mul returns p * q, by schoolbook multiplication.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if p.IsZero() || q.IsZero() {
		return Zero(p.f)
	}
	cs := make([]field.Element, len(p.coeffs)+len(q.coeffs)-1)
	for i := range cs {
		cs[i] = p.f.Zero()
	}
	for i, a := range p.coeffs {
		for j, b := range q.coeffs {
			cs[i+j] = cs[i+j].Add(a.Mul(b))
		}
	}
	return Polynomial{f: p.f, coeffs: normalize(cs)}
}

// Eval returns p(x), by Horner's rule.
func (p Polynomial) Eval(x field.Element) field.Element {
	acc := p.f.Zero()
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(p.coeffs[i])
	}
	return acc
}

// String renders p in the usual notation, highest degree first, e.g.
// "3*x^2 + x + 5". The zero polynomial renders as "0".
func (p Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	var sb strings.Builder
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		c := p.coeffs[i]
		if c.IsZero() {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(" + ")
		}
		switch {
		case i == 0:
			sb.WriteString(c.String())
		case c.IsOne():
			sb.WriteString("x")
		default:
			sb.WriteString(c.String())
			sb.WriteString("*x")
		}
		if i > 1 {
			fmt.Fprintf(&sb, "^%d", i)
		}
	}
	return sb.String()
}

// normalize strips trailing zero coefficients so the representation is
// canonical.
func normalize(cs []field.Element) []field.Element {
	out := make([]field.Element, len(cs))
	copy(out, cs)
	for len(out) > 0 && out[len(out)-1].IsZero() {
		out = out[:len(out)-1]
	}
	debug.Assert(len(out) == 0 || !out[len(out)-1].IsZero())
	return out
}
