// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package field

import (
	"math/big"

	"golang.org/x/crypto/sha3"
)

// Hash maps an arbitrary message to a field element, with dst as domain
// separation tag. Distinct tags yield independent maps.
//
// The message is absorbed into cSHAKE256 and 128 bits more output than the
// modulus size are read before reduction, so the result is statistically
// close to uniform over [0, p). The map is deterministic; it is the usual
// building block for deriving challenges in Fiat-Shamir style protocols.
func (f *Field) Hash(msg, dst []byte) Element {
	h := sha3.NewCShake256(nil, dst)
	h.Write(msg)

	buf := make([]byte, (f.p.BitLen()+7)/8+16)
	h.Read(buf)

	return f.NewElement(new(big.Int).SetBytes(buf))
}
