// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package field

import (
	"math/big"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	starkfr "github.com/consensys/gnark-crypto/ecc/stark-curve/fr"
	"github.com/consensys/gnark-crypto/field/goldilocks"
)

// Well-known prime fields, built lazily. Their moduli are established
// primes, so the primality check is skipped.

var (
	bn254FrOnce sync.Once
	bn254Fr     *Field

	goldilocksOnce sync.Once
	goldilocksF    *Field

	stark252Once sync.Once
	stark252     *Field

	mimcStark256Once sync.Once
	mimcStark256     *Field
)

// BN254Fr returns the scalar field of the BN254 curve.
func BN254Fr() *Field {
	bn254FrOnce.Do(func() {
		bn254Fr = MustNewField(fr.Modulus(), WithoutPrimalityCheck())
	})
	return bn254Fr
}

// Goldilocks returns the field of the 64-bit prime 2^64 - 2^32 + 1.
func Goldilocks() *Field {
	goldilocksOnce.Do(func() {
		goldilocksF = MustNewField(goldilocks.Modulus(), WithoutPrimalityCheck())
	})
	return goldilocksF
}

// Stark252 returns the scalar field of the STARK curve.
func Stark252() *Field {
	stark252Once.Do(func() {
		stark252 = MustNewField(starkfr.Modulus(), WithoutPrimalityCheck())
	})
	return stark252
}

// MiMCStark256 returns the field of the 256-bit prime 2^256 - 351*2^32 + 1,
// used by MiMC-based STARK constructions.
func MiMCStark256() *Field {
	mimcStark256Once.Do(func() {
		p := new(big.Int).Lsh(big.NewInt(1), 256)
		offset := new(big.Int).Lsh(big.NewInt(351), 32)
		p.Sub(p, offset)
		p.Add(p, big.NewInt(1))
		mimcStark256 = MustNewField(p, WithoutPrimalityCheck())
	})
	return mimcStark256
}
