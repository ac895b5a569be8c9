// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package field implements BN254 scalar field arithmetic for the Honk and
// Groth16 verifiers. It wraps gnark-crypto's Montgomery-form element so the
// rest of the verifier only ever sees canonical big-endian bytes at its
// boundary.
package field

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Fr is an element of the BN254 scalar field.
type Fr struct {
	inner fr.Element
}

// Zero returns the additive identity.
func Zero() Fr {
	var f Fr
	f.inner.SetZero()
	return f
}

// One returns the multiplicative identity.
func One() Fr {
	var f Fr
	f.inner.SetOne()
	return f
}

// FromU64 lifts a uint64 into the field.
func FromU64(v uint64) Fr {
	var f Fr
	f.inner.SetUint64(v)
	return f
}

// FromBytes reduces a 32-byte big-endian value modulo p. Non-canonical
// input (>= p) is accepted and reduced, matching bb's transcript encoding.
func FromBytes(be32 [32]byte) Fr {
	var f Fr
	f.inner.SetBytes(be32[:])
	return f
}

// Bytes returns the canonical 32-byte big-endian encoding.
func (f Fr) Bytes() [32]byte {
	return f.inner.Bytes()
}

// Add returns f + g.
func (f Fr) Add(g Fr) Fr {
	var out Fr
	out.inner.Add(&f.inner, &g.inner)
	return out
}

// Sub returns f - g.
func (f Fr) Sub(g Fr) Fr {
	var out Fr
	out.inner.Sub(&f.inner, &g.inner)
	return out
}

// Mul returns f * g.
func (f Fr) Mul(g Fr) Fr {
	var out Fr
	out.inner.Mul(&f.inner, &g.inner)
	return out
}

// Neg returns -f.
func (f Fr) Neg() Fr {
	var out Fr
	out.inner.Neg(&f.inner)
	return out
}

// IsZero reports whether f is the additive identity.
func (f Fr) IsZero() bool {
	return f.inner.IsZero()
}

// Equal reports whether f == g.
func (f Fr) Equal(g Fr) bool {
	return f.inner.Equal(&g.inner)
}

// Inverse returns the multiplicative inverse of f and ok=true, or
// ok=false if f is zero.
func (f Fr) Inverse() (Fr, bool) {
	if f.inner.IsZero() {
		return Fr{}, false
	}
	var out Fr
	out.inner.Inverse(&f.inner)
	return out, true
}

// ToBigInt returns the canonical non-Montgomery integer value of f, for
// handoff to gnark-crypto curve operations that take *big.Int scalars.
func (f Fr) ToBigInt() *big.Int {
	return f.inner.BigInt(new(big.Int))
}
