// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package shplemini

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/honkverifier/curve"
	"github.com/luxfi/honkverifier/field"
	"github.com/luxfi/honkverifier/honkcodec"
	"github.com/luxfi/honkverifier/transcript"
)

func TestVerifyRejectsBadLogN(t *testing.T) {
	err := Verify(honkcodec.Proof{}, honkcodec.VerificationKey{}, transcript.Transcript{}, curve.GnarkHost{}, 0)
	require.ErrorIs(t, err, ErrGeminiFoldMismatch)
}

func TestVerifyAcceptsConsistentOpening(t *testing.T) {
	host := curve.GnarkHost{}
	SetTrustedSetupG2X(curve.G2Generator())

	w := curve.G1Generator()
	z := field.FromU64(7)

	var proof honkcodec.Proof
	proof.KZGQuotient = w
	proof.ShplonkQ = host.G1ScalarMul(w, field.One().Sub(z)) // Q = (x - z)*W with x = 1, so Q + z*W = x*W

	var tr transcript.Transcript
	tr.ShplonkZ = z

	err := Verify(proof, honkcodec.VerificationKey{}, tr, host, 1)
	require.NoError(t, err, "expected a consistent Q = (x - z)*W opening to verify")
}

func TestVerifyRejectsInconsistentOpening(t *testing.T) {
	host := curve.GnarkHost{}
	SetTrustedSetupG2X(curve.G2Generator())

	g := curve.G1Generator()
	w1 := g
	w2 := host.G1ScalarMul(g, field.FromU64(2))

	var proof honkcodec.Proof
	proof.ShplonkQ = host.G1ScalarMul(w1, field.FromU64(7))
	proof.KZGQuotient = w2 // mismatched quotient: Q != (x - z)*W2

	var tr transcript.Transcript
	tr.ShplonkZ = field.FromU64(7)

	err := Verify(proof, honkcodec.VerificationKey{}, tr, host, 1)
	require.ErrorIs(t, err, ErrPairingFailed)
}
