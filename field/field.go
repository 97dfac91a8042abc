// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package field implements arithmetic over a prime finite field GF(p) whose
// modulus is chosen at runtime.
//
// A Field is built once from a prime p and acts as a factory for Element
// values. Elements are immutable: every operation returns a fresh element
// with its value reduced into the canonical range [0, p). Two elements can
// only be combined when they belong to fields with the same modulus; mixing
// moduli is a programming error and panics with ErrIncompatibleModulus.
// Division by zero is an expected mathematical condition and is reported as
// an error instead.
package field

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/exp/constraints"

	"github.com/consensys/galois/logger"
)

// Field holds the modulus and acts as a factory for elements of GF(p).
//
// A Field is immutable after construction and safe for concurrent use. Two
// distinct Field values with the same modulus describe the same field; their
// elements are interoperable.
type Field struct {
	p *big.Int

	zeroOnce sync.Once
	zero     Element
	oneOnce  sync.Once
	one      Element

	log zerolog.Logger
}

// NewField returns the prime field of integers modulo p.
//
// p must be a prime at least 2. Unless disabled with WithoutPrimalityCheck,
// construction runs a primality check (trial division by small primes, then
// Miller-Rabin) and fails with ErrInvalidModulus if p is composite. Skipping
// the check with a composite p yields a ring in which division
// intermittently fails; see WithoutPrimalityCheck.
func NewField(p *big.Int, opts ...Option) (*Field, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	if p == nil || p.Cmp(two) < 0 {
		return nil, fmt.Errorf("%w: modulus must be at least 2", ErrInvalidModulus)
	}
	if cfg.checkPrimality && !isPrime(p, cfg.primalityRounds) {
		return nil, fmt.Errorf("%w: %s is composite", ErrInvalidModulus, p)
	}

	f := &Field{
		p:   new(big.Int).Set(p),
		log: logger.Logger(),
	}
	f.log.Debug().
		Int("bits", f.p.BitLen()).
		Bool("primalityChecked", cfg.checkPrimality).
		Msg("new prime field")
	return f, nil
}

// MustNewField is like NewField but panics on error. It is intended for
// package-level fields built from known primes.
func MustNewField(p *big.Int, opts ...Option) *Field {
	f, err := NewField(p, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// NewElement reduces v modulo p and returns the corresponding element.
//
// v may be negative or larger than p; the result is the canonical
// representative in [0, p). The element does not retain v.
func (f *Field) NewElement(v *big.Int) Element {
	return Element{v: new(big.Int).Mod(v, f.p), f: f}
}

// NewElementFromInt64 is a convenience wrapper around NewElement.
func (f *Field) NewElementFromInt64(v int64) Element {
	return f.NewElement(big.NewInt(v))
}

// NewElementFromString parses s as a decimal integer (an optional leading
// sign is accepted) and reduces it modulo p.
func (f *Field) NewElementFromString(s string) (Element, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Element{}, fmt.Errorf("cannot parse %q as a decimal integer", s)
	}
	return f.NewElement(v), nil
}

// ElementOf reduces any native integer value into the field.
func ElementOf[T constraints.Integer](f *Field, v T) Element {
	if v < 0 {
		return f.NewElement(big.NewInt(int64(v)))
	}
	return f.NewElement(new(big.Int).SetUint64(uint64(v)))
}

// Zero returns the additive identity.
func (f *Field) Zero() Element {
	f.zeroOnce.Do(func() {
		f.zero = Element{v: new(big.Int), f: f}
	})
	return f.zero
}

// One returns the multiplicative identity.
func (f *Field) One() Element {
	f.oneOnce.Do(func() {
		f.one = Element{v: big.NewInt(1), f: f}
	})
	return f.one
}

// Random returns a uniformly distributed element, reading entropy from r.
// If r is nil, crypto/rand is used.
func (f *Field) Random(r io.Reader) (Element, error) {
	if r == nil {
		r = rand.Reader
	}
	v, err := rand.Int(r, f.p)
	if err != nil {
		return Element{}, fmt.Errorf("sampling random element: %w", err)
	}
	return Element{v: v, f: f}, nil
}

// Modulus returns a copy of the field modulus.
func (f *Field) Modulus() *big.Int {
	return new(big.Int).Set(f.p)
}

// BitLen returns the size of the modulus in bits.
func (f *Field) BitLen() int {
	return f.p.BitLen()
}

// Equal reports whether other describes the same field, that is, has the
// same modulus.
func (f *Field) Equal(other *Field) bool {
	if f == other {
		return true
	}
	if f == nil || other == nil {
		return false
	}
	return f.p.Cmp(other.p) == 0
}

func (f *Field) String() string {
	return "GF(" + f.p.String() + ")"
}

var two = big.NewInt(2)
