// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sumcheck

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/honkverifier/field"
	"github.com/luxfi/honkverifier/honkcodec"
	"github.com/luxfi/honkverifier/relations"
	"github.com/luxfi/honkverifier/transcript"
)

func TestCheckSumMatchesSpec(t *testing.T) {
	var ru [honkcodec.BatchedRelationPartialLength]field.Fr
	ru[0] = field.FromU64(3)
	ru[1] = field.FromU64(4)
	require.True(t, checkSum(ru, field.FromU64(7)), "3 + 4 should equal target 7")
	require.False(t, checkSum(ru, field.FromU64(8)), "3 + 4 should not equal target 8")
}

// TestComputeNextTargetSumInterpolatesConstant checks that a univariate
// whose 8 evaluations are all equal to c extrapolates to c at any
// challenge point, since the degree-7 interpolant of a constant is that
// constant everywhere.
func TestComputeNextTargetSumInterpolatesConstant(t *testing.T) {
	c := field.FromU64(11)
	var ru [honkcodec.BatchedRelationPartialLength]field.Fr
	for i := range ru {
		ru[i] = c
	}
	got, err := computeNextTargetSum(ru, field.FromU64(1000))
	require.NoError(t, err)
	require.True(t, got.Equal(c), "expected constant interpolation to return %v, got %v", c.Bytes(), got.Bytes())
}

// TestComputeNextTargetSumInterpolatesLinear samples the identity
// function f(x) = x at the 8 evaluation points; its degree-7 interpolant
// must still equal f at any out-of-sample point.
func TestComputeNextTargetSumInterpolatesLinear(t *testing.T) {
	var ru [honkcodec.BatchedRelationPartialLength]field.Fr
	for i := range ru {
		ru[i] = field.FromU64(uint64(i))
	}
	got, err := computeNextTargetSum(ru, field.FromU64(10))
	require.NoError(t, err)
	require.True(t, got.Equal(field.FromU64(10)), "expected linear interpolation to return 10, got %v", got.Bytes())
}

func TestPartiallyEvaluatePowIdentityAtOne(t *testing.T) {
	got := partiallyEvaluatePow(field.One(), field.FromU64(5), field.FromU64(3))
	require.True(t, got.Equal(field.FromU64(5)), "gate challenge of 1 should leave pow_partial unchanged")
}

func TestVerifyRejectsBadFirstRound(t *testing.T) {
	var proof honkcodec.Proof
	proof.SumcheckUnivariates[0][0] = field.FromU64(1)
	proof.SumcheckUnivariates[0][1] = field.FromU64(1)

	err := Verify(proof, transcript.Transcript{}, relations.Evaluations{}, 1)
	require.ErrorIs(t, err, ErrRoundFailed)
}
