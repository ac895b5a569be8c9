// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package curve implements BN254 G1/G2 affine point encoding and delegates
// the expensive group operations (addition, scalar multiplication, pairing)
// to a Host, mirroring how a smart-contract runtime exposes these as native
// precompiled functions rather than leaving the verifier to implement its
// own Miller loop.
package curve

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"

	"github.com/luxfi/honkverifier/field"
)

// G1Affine is an affine point on the BN254 G1 curve, (x, y) in Fp^2.
// The identity is encoded as all-zero coordinates.
type G1Affine struct {
	inner bn254.G1Affine
}

// G1Infinity returns the point at infinity.
func G1Infinity() G1Affine {
	return G1Affine{}
}

// G1FromCoords builds a G1Affine from big-endian x, y coordinates without
// validating they lie on the curve; callers that need that guarantee should
// round-trip through the host.
func G1FromCoords(x, y [32]byte) G1Affine {
	var p G1Affine
	p.inner.X.SetBytes(x[:])
	p.inner.Y.SetBytes(y[:])
	return p
}

// IsInfinity reports whether p is the identity element.
func (p G1Affine) IsInfinity() bool {
	return p.inner.X.IsZero() && p.inner.Y.IsZero()
}

// Coords returns the big-endian x, y coordinates.
func (p G1Affine) Coords() (x, y [32]byte) {
	return p.inner.X.Bytes(), p.inner.Y.Bytes()
}

// Neg returns -p; identity negates to itself.
func (p G1Affine) Neg() G1Affine {
	if p.IsInfinity() {
		return p
	}
	var out G1Affine
	out.inner.Neg(&p.inner)
	return out
}

// Equal reports whether p == q.
func (p G1Affine) Equal(q G1Affine) bool {
	return p.inner.Equal(&q.inner)
}

// G2Affine is an affine point on the BN254 G2 curve, (x, y) in Fp^2^2,
// serialized per EIP-197 as (x.c1 || x.c0 || y.c1 || y.c0), 32-byte BE limbs.
type G2Affine struct {
	inner bn254.G2Affine
}

// G2Generator returns the standard G2 generator.
func G2Generator() G2Affine {
	_, _, _, g2 := bn254.Generators()
	return G2Affine{inner: g2}
}

// G1Generator returns the standard G1 generator.
func G1Generator() G1Affine {
	_, _, g1, _ := bn254.Generators()
	return G1Affine{inner: g1}
}

// G2FromEIP197 parses the 128-byte EIP-197 encoding (x.c1 || x.c0 || y.c1 || y.c0).
func G2FromEIP197(b [128]byte) G2Affine {
	var xc1, xc0, yc1, yc0 fp.Element
	xc1.SetBytes(b[0:32])
	xc0.SetBytes(b[32:64])
	yc1.SetBytes(b[64:96])
	yc0.SetBytes(b[96:128])
	var p G2Affine
	p.inner.X.A0 = xc0
	p.inner.X.A1 = xc1
	p.inner.Y.A0 = yc0
	p.inner.Y.A1 = yc1
	return p
}

// EIP197Bytes serializes p as (x.c1 || x.c0 || y.c1 || y.c0).
func (p G2Affine) EIP197Bytes() [128]byte {
	var out [128]byte
	xc1 := p.inner.X.A1.Bytes()
	xc0 := p.inner.X.A0.Bytes()
	yc1 := p.inner.Y.A1.Bytes()
	yc0 := p.inner.Y.A0.Bytes()
	copy(out[0:32], xc1[:])
	copy(out[32:64], xc0[:])
	copy(out[64:96], yc1[:])
	copy(out[96:128], yc0[:])
	return out
}

// IsInfinity reports whether p is the identity element.
func (p G2Affine) IsInfinity() bool {
	return p.inner.X.IsZero() && p.inner.Y.IsZero()
}

// Neg returns -p.
func (p G2Affine) Neg() G2Affine {
	if p.IsInfinity() {
		return p
	}
	var out G2Affine
	out.inner.Neg(&p.inner)
	return out
}

// Host delegates the group operations a smart-contract runtime would expose
// as native precompiles: point addition, scalar multiplication, and a
// multi-pairing check. The verifier never implements the Miller loop or
// final exponentiation itself.
type Host interface {
	G1Add(a, b G1Affine) G1Affine
	G1ScalarMul(p G1Affine, s field.Fr) G1Affine
	PairingCheck(g1s []G1Affine, g2s []G2Affine) bool
}

// GnarkHost is the reference Host backed directly by gnark-crypto. It is
// what the library uses standalone; chain integrations are expected to
// substitute their own Host wired to native precompiled operations.
type GnarkHost struct{}

// G1Add implements Host.
func (GnarkHost) G1Add(a, b G1Affine) G1Affine {
	var aJac, bJac bn254.G1Jac
	aJac.FromAffine(&a.inner)
	bJac.FromAffine(&b.inner)
	aJac.AddAssign(&bJac)
	var out G1Affine
	out.inner.FromJacobian(&aJac)
	return out
}

// G1ScalarMul implements Host.
func (GnarkHost) G1ScalarMul(p G1Affine, s field.Fr) G1Affine {
	var out G1Affine
	out.inner.ScalarMultiplication(&p.inner, s.ToBigInt())
	return out
}

// PairingCheck implements Host, returning true iff the product of the
// pairings equals the identity in the target group.
func (GnarkHost) PairingCheck(g1s []G1Affine, g2s []G2Affine) bool {
	if len(g1s) != len(g2s) || len(g1s) == 0 {
		return false
	}
	a := make([]bn254.G1Affine, len(g1s))
	b := make([]bn254.G2Affine, len(g2s))
	for i := range g1s {
		a[i] = g1s[i].inner
		b[i] = g2s[i].inner
	}
	ok, err := bn254.PairingCheck(a, b)
	if err != nil {
		return false
	}
	return ok
}
