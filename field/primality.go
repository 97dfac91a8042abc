// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package field

import (
	"math/big"
	"sync"

	"github.com/bits-and-blooms/bitset"
)

// sieveBound caps the small primes used for trial division before handing
// over to Miller-Rabin.
const sieveBound = 1 << 16

var (
	sieveOnce  sync.Once
	composites *bitset.BitSet
)

// compositeSieve returns a sieve of Eratosthenes over [0, sieveBound), with
// bit i set when i is composite (0 and 1 are marked composite too).
func compositeSieve() *bitset.BitSet {
	sieveOnce.Do(func() {
		composites = bitset.New(sieveBound)
		composites.Set(0).Set(1)
		for i := uint(2); i*i < sieveBound; i++ {
			if composites.Test(i) {
				continue
			}
			for j := i * i; j < sieveBound; j += i {
				composites.Set(j)
			}
		}
	})
	return composites
}

// isPrime reports whether p is prime with high confidence. Small inputs are
// answered exactly by the sieve; larger inputs go through trial division by
// every prime below sieveBound, then rounds of Miller-Rabin.
func isPrime(p *big.Int, rounds int) bool {
	sieve := compositeSieve()
	if p.IsUint64() && p.Uint64() < sieveBound {
		return !sieve.Test(uint(p.Uint64()))
	}

	r := new(big.Int)
	d := new(big.Int)
	for i := uint(2); i < sieveBound; i++ {
		if sieve.Test(i) {
			continue
		}
		d.SetUint64(uint64(i))
		if r.Mod(p, d).Sign() == 0 {
			return false
		}
	}
	return p.ProbablyPrime(rounds)
}
