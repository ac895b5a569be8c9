// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package field

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZeroOneRoundTrip(t *testing.T) {
	z := Zero()
	require.True(t, z.IsZero(), "Zero() is not zero")
	o := One()
	require.False(t, o.IsZero(), "One() reported zero")
	require.True(t, z.Add(o).Equal(o), "0 + 1 != 1")
}

func TestInverseOfZeroFails(t *testing.T) {
	_, ok := Zero().Inverse()
	require.False(t, ok, "expected inverse of zero to fail")
}

func TestInverseRoundTrip(t *testing.T) {
	a := FromU64(12345)
	inv, ok := a.Inverse()
	require.True(t, ok, "inverse should succeed for nonzero element")
	require.True(t, a.Mul(inv).Equal(One()), "a * inverse(a) != 1")
}

func TestBytesRoundTrip(t *testing.T) {
	a := FromU64(550145953)
	b := a.Bytes()
	got := FromBytes(b)
	require.True(t, got.Equal(a), "FromBytes(a.Bytes()) != a")

	// single-bit flip must not round-trip to the same value
	b2 := b
	b2[31] ^= 0x01
	require.False(t, FromBytes(b2).Equal(a), "single bit flip compared equal")
}

func TestU32EncodingSessionID(t *testing.T) {
	var be32 [32]byte
	be32[28] = 0x20
	be32[29] = 0xca
	be32[30] = 0x8f
	be32[31] = 0xa1
	got := FromBytes(be32)
	want := FromU64(550145953)
	require.True(t, got.Equal(want), "session id encoding mismatch")
}

func TestNegation(t *testing.T) {
	a := FromU64(7)
	require.True(t, a.Add(a.Neg()).IsZero(), "a + (-a) != 0")
}
