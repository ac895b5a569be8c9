// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package groth16verify checks Groth16 proofs over BN254, the secondary
// proof system used alongside the UltraHonk verifier. The pairing
// equation is delegated to the same curve.Host the UltraHonk verifier
// uses, so both proof systems share one pairing-check facility.
package groth16verify

import (
	"errors"

	"github.com/luxfi/honkverifier/curve"
	"github.com/luxfi/honkverifier/field"
)

// ErrPublicInputCountMismatch is returned when the number of supplied
// public inputs does not match the number of IC points the verifying key
// requires (len(IC) - 1).
var ErrPublicInputCountMismatch = errors.New("groth16: public input count mismatch")

// ErrEmptyVerifyingKey is returned when the verifying key carries no IC
// points at all; every verifying key needs at least IC[0].
var ErrEmptyVerifyingKey = errors.New("groth16: verifying key has no IC points")

// VerifyingKey holds the four fixed BN254 elements and the IC points a
// Groth16 verifying key carries.
type VerifyingKey struct {
	Alpha curve.G1Affine
	Beta  curve.G2Affine
	Gamma curve.G2Affine
	Delta curve.G2Affine
	IC    []curve.G1Affine
}

// Proof is a Groth16 proof: two G1 points and one G2 point.
type Proof struct {
	A curve.G1Affine
	B curve.G2Affine
	C curve.G1Affine
}

// Verify checks e(A, B) = e(alpha, beta) * e(vk_x, gamma) * e(C, delta),
// where vk_x = IC[0] + sum_i publicInputs[i] * IC[i+1], by folding it into
// the single pairing-check equation
//
//	e(A, B) * e(-alpha, beta) * e(-vk_x, gamma) * e(-C, delta) = 1
//
// so the host only ever performs one multi-pairing call.
func Verify(vk VerifyingKey, proof Proof, publicInputs []field.Fr, host curve.Host) (bool, error) {
	if len(vk.IC) < 1 {
		return false, ErrEmptyVerifyingKey
	}
	if len(publicInputs) != len(vk.IC)-1 {
		return false, ErrPublicInputCountMismatch
	}

	vkX := vk.IC[0]
	for i, input := range publicInputs {
		term := host.G1ScalarMul(vk.IC[i+1], input)
		vkX = host.G1Add(vkX, term)
	}

	ok := host.PairingCheck(
		[]curve.G1Affine{proof.A, vk.Alpha.Neg(), vkX.Neg(), proof.C.Neg()},
		[]curve.G2Affine{proof.B, vk.Beta, vk.Gamma, vk.Delta},
	)
	return ok, nil
}
