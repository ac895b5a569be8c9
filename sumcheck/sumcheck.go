// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package sumcheck verifies the per-round consistency and barycentric
// extrapolation of an UltraHonk sum-check transcript, then checks the
// final round target against the combined relations grand sum.
package sumcheck

import (
	"errors"

	"github.com/luxfi/honkverifier/field"
	"github.com/luxfi/honkverifier/honkcodec"
	"github.com/luxfi/honkverifier/relations"
	"github.com/luxfi/honkverifier/transcript"
)

// baryBytes holds the BN254 scalar representations of the barycentric
// Lagrange denominators bary_i = prod_{j != i} (i - j) for evaluation
// points {0, ..., 7}: (-5040, 720, -240, 144, -144, 240, -720, 5040).
var baryBytes = [honkcodec.BatchedRelationPartialLength][32]byte{
	{ // -5040 == p - 5040
		0x30, 0x64, 0x4e, 0x72, 0xe1, 0x31, 0xa0, 0x29, 0xb8, 0x50, 0x45, 0xb6, 0x81, 0x81,
		0x58, 0x5d, 0x28, 0x33, 0xe8, 0x48, 0x79, 0xb9, 0x70, 0x91, 0x43, 0xe1, 0xf5, 0x93,
		0xef, 0xff, 0xec, 0x51,
	},
	{ // 720
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x02, 0xd0,
	},
	{ // -240 == p - 240
		0x30, 0x64, 0x4e, 0x72, 0xe1, 0x31, 0xa0, 0x29, 0xb8, 0x50, 0x45, 0xb6, 0x81, 0x81,
		0x58, 0x5d, 0x28, 0x33, 0xe8, 0x48, 0x79, 0xb9, 0x70, 0x91, 0x43, 0xe1, 0xf5, 0x93,
		0xef, 0xff, 0xff, 0x11,
	},
	{ // 144
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x90,
	},
	{ // -144 == p - 144
		0x30, 0x64, 0x4e, 0x72, 0xe1, 0x31, 0xa0, 0x29, 0xb8, 0x50, 0x45, 0xb6, 0x81, 0x81,
		0x58, 0x5d, 0x28, 0x33, 0xe8, 0x48, 0x79, 0xb9, 0x70, 0x91, 0x43, 0xe1, 0xf5, 0x93,
		0xef, 0xff, 0xff, 0x71,
	},
	{ // 240
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0xf0,
	},
	{ // -720 == p - 720
		0x30, 0x64, 0x4e, 0x72, 0xe1, 0x31, 0xa0, 0x29, 0xb8, 0x50, 0x45, 0xb6, 0x81, 0x81,
		0x58, 0x5d, 0x28, 0x33, 0xe8, 0x48, 0x79, 0xb9, 0x70, 0x91, 0x43, 0xe1, 0xf5, 0x93,
		0xef, 0xff, 0xfd, 0x31,
	},
	{ // 5040
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x13, 0xb0,
	},
}

// ErrRoundFailed, ErrDenomZero, ErrFinalMismatch are the static reason
// tags Verify returns, matching the verifier's closed error set.
var (
	ErrRoundFailed   = errors.New("round failed")
	ErrDenomZero     = errors.New("denom zero")
	ErrFinalMismatch = errors.New("sumcheck final mismatch")
)

func checkSum(roundUnivariate [honkcodec.BatchedRelationPartialLength]field.Fr, roundTarget field.Fr) bool {
	return roundUnivariate[0].Add(roundUnivariate[1]).Equal(roundTarget)
}

// computeNextTargetSum evaluates the round univariate at roundChallenge
// via barycentric extrapolation, inverting all eight denominators with a
// single field inversion (Montgomery's batch-inversion trick: a forward
// prefix-product pass, one inverse, then a backward unwind).
func computeNextTargetSum(roundUnivariate [honkcodec.BatchedRelationPartialLength]field.Fr, roundChallenge field.Fr) (field.Fr, error) {
	const n = honkcodec.BatchedRelationPartialLength

	bPoly := field.One()
	var chiMinus [n]field.Fr
	for i := 0; i < n; i++ {
		chiMinus[i] = roundChallenge.Sub(field.FromU64(uint64(i)))
		bPoly = bPoly.Mul(chiMinus[i])
	}

	var denoms [n]field.Fr
	for i := 0; i < n; i++ {
		denoms[i] = field.FromBytes(baryBytes[i]).Mul(chiMinus[i])
	}

	var prefix [n]field.Fr
	prefix[0] = denoms[0]
	for i := 1; i < n; i++ {
		prefix[i] = prefix[i-1].Mul(denoms[i])
	}

	invAcc, ok := prefix[n-1].Inverse()
	if !ok {
		return field.Fr{}, ErrDenomZero
	}

	var inv [n]field.Fr
	for i := n - 1; i >= 1; i-- {
		inv[i] = invAcc.Mul(prefix[i-1])
		invAcc = invAcc.Mul(denoms[i])
	}
	inv[0] = invAcc

	acc := field.Zero()
	for i := 0; i < n; i++ {
		acc = acc.Add(roundUnivariate[i].Mul(inv[i]))
	}

	return bPoly.Mul(acc), nil
}

func partiallyEvaluatePow(gateChallenge, powPartial, roundChallenge field.Fr) field.Fr {
	return powPartial.Mul(field.One().Add(roundChallenge.Mul(gateChallenge.Sub(field.One()))))
}

// Verify runs the log_n sum-check rounds for proof against the challenges
// in t, then checks the final relations grand sum against the last
// round's target. logN must be vk.log_circuit_size.
func Verify(proof honkcodec.Proof, t transcript.Transcript, evals relations.Evaluations, logN int) error {
	roundTarget := field.Zero()
	powPartial := field.One()

	for round := 0; round < logN; round++ {
		ru := proof.SumcheckUnivariates[round]
		if !checkSum(ru, roundTarget) {
			return ErrRoundFailed
		}

		challenge := t.SumcheckUChallenges[round]
		next, err := computeNextTargetSum(ru, challenge)
		if err != nil {
			return err
		}
		roundTarget = next
		powPartial = partiallyEvaluatePow(t.GateChallenges[round], powPartial, challenge)
	}

	grand := relations.CombinedSum(evals, t.RelParams, t.Alphas, powPartial)
	if !grand.Equal(roundTarget) {
		return ErrFinalMismatch
	}
	return nil
}
