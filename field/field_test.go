// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package field

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewField(t *testing.T) {
	cases := []struct {
		name    string
		p       int64
		wantErr bool
	}{
		{"smallest prime", 2, false},
		{"odd prime", 7, false},
		{"large-ish prime", 65537, false},
		{"one", 1, true},
		{"zero", 0, true},
		{"negative", -7, true},
		{"composite", 12, true},
		{"square of a prime", 49, true},
		{"carmichael number", 561, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := NewField(big.NewInt(tc.p))
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidModulus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.p, f.Modulus().Int64())
		})
	}
}

func TestNewFieldNil(t *testing.T) {
	_, err := NewField(nil)
	require.ErrorIs(t, err, ErrInvalidModulus)
}

func TestNewFieldLargePrimes(t *testing.T) {
	// 2^127 - 1 is a Mersenne prime
	m127 := new(big.Int).Lsh(big.NewInt(1), 127)
	m127.Sub(m127, big.NewInt(1))
	_, err := NewField(m127)
	require.NoError(t, err)

	// 2^128 - 1 = (2^64-1)(2^64+1) is not
	m128 := new(big.Int).Lsh(big.NewInt(1), 128)
	m128.Sub(m128, big.NewInt(1))
	_, err = NewField(m128)
	require.ErrorIs(t, err, ErrInvalidModulus)
}

func TestNewFieldOptions(t *testing.T) {
	// composite modulus accepted when the check is disabled
	f, err := NewField(big.NewInt(12), WithoutPrimalityCheck())
	require.NoError(t, err)
	assert.Equal(t, int64(12), f.Modulus().Int64())

	// but a modulus below 2 never is
	_, err = NewField(big.NewInt(1), WithoutPrimalityCheck())
	require.ErrorIs(t, err, ErrInvalidModulus)

	_, err = NewField(big.NewInt(7), WithPrimalityRounds(64))
	require.NoError(t, err)

	_, err = NewField(big.NewInt(7), WithPrimalityRounds(0))
	require.Error(t, err)
}

func TestMustNewField(t *testing.T) {
	assert.NotPanics(t, func() { MustNewField(big.NewInt(13)) })
	assert.Panics(t, func() { MustNewField(big.NewInt(12)) })
}

func TestFieldIdentities(t *testing.T) {
	f := MustNewField(big.NewInt(13))

	assert.True(t, f.Zero().IsZero())
	assert.True(t, f.One().IsOne())

	a := f.NewElementFromInt64(9)
	assert.True(t, a.Add(f.Zero()).Equal(a))
	assert.True(t, a.Mul(f.One()).Equal(a))
	assert.True(t, a.Mul(f.Zero()).IsZero())
}

func TestFieldEqual(t *testing.T) {
	f7 := MustNewField(big.NewInt(7))
	f7bis := MustNewField(big.NewInt(7))
	f11 := MustNewField(big.NewInt(11))

	assert.True(t, f7.Equal(f7))
	assert.True(t, f7.Equal(f7bis))
	assert.False(t, f7.Equal(f11))
	assert.False(t, f7.Equal(nil))
}

func TestFieldRandom(t *testing.T) {
	f := MustNewField(big.NewInt(101))
	seen := make(map[uint64]bool)
	for i := 0; i < 200; i++ {
		e, err := f.Random(nil)
		require.NoError(t, err)
		v := e.BigInt()
		require.True(t, v.Sign() >= 0 && v.Cmp(f.Modulus()) < 0, "out of canonical range: %s", v)
		seen[e.Uint64()] = true
	}
	assert.Greater(t, len(seen), 1, "sampling should not be constant")
}

func TestElementOf(t *testing.T) {
	f := MustNewField(big.NewInt(7))

	assert.Equal(t, uint64(5), ElementOf(f, int8(-2)).Uint64())
	assert.Equal(t, uint64(5), ElementOf(f, 12).Uint64())
	assert.Equal(t, uint64(1), ElementOf(f, uint64(1<<63)).Uint64(), "2^63 = 9223372036854775808 = 1 mod 7")
}

func TestFieldString(t *testing.T) {
	assert.Equal(t, "GF(7)", MustNewField(big.NewInt(7)).String())
}

func TestFieldBitLen(t *testing.T) {
	assert.Equal(t, 3, MustNewField(big.NewInt(7)).BitLen())
	assert.Equal(t, 64, Goldilocks().BitLen())
	assert.Equal(t, 254, BN254Fr().BitLen())
}

func TestKnownFields(t *testing.T) {
	// the bundled moduli are all prime
	for _, f := range []*Field{BN254Fr(), Goldilocks(), Stark252(), MiMCStark256()} {
		assert.True(t, isPrime(f.Modulus(), 20), "%s", f)
	}

	// the STARK tutorial modulus 2^256 - 351*2^32 + 1
	want, ok := new(big.Int).SetString(
		"115792089237316195423570985008687907853269984665640564039457584006405596119041", 10)
	require.True(t, ok)
	assert.Zero(t, MiMCStark256().Modulus().Cmp(want))

	// lazily built fields are singletons
	assert.Same(t, Goldilocks(), Goldilocks())
}

func TestHash(t *testing.T) {
	f := MustNewField(big.NewInt(1000003))

	a := f.Hash([]byte("message"), []byte("domain"))
	b := f.Hash([]byte("message"), []byte("domain"))
	assert.True(t, a.Equal(b), "hashing is deterministic")

	c := f.Hash([]byte("other message"), []byte("domain"))
	d := f.Hash([]byte("message"), []byte("other domain"))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d), "distinct domain tags yield independent maps")

	for _, msg := range [][]byte{nil, {}, []byte("x"), bytes.Repeat([]byte("y"), 1000)} {
		e := f.Hash(msg, []byte("dst"))
		v := e.BigInt()
		require.True(t, v.Sign() >= 0 && v.Cmp(f.Modulus()) < 0)
	}
}

func TestIsPrimeSieve(t *testing.T) {
	primes := map[int64]bool{2: true, 3: true, 5: true, 65521: true, 65537: true}
	for p := int64(0); p < 100; p++ {
		want := big.NewInt(p).ProbablyPrime(20)
		assert.Equal(t, want, isPrime(big.NewInt(p), 20), "p=%d", p)
	}
	for p, want := range primes {
		assert.Equal(t, want, isPrime(big.NewInt(p), 20), "p=%d", p)
	}
	assert.False(t, isPrime(big.NewInt(65521*3), 20))
}
