// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package relations

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/honkverifier/field"
	"github.com/luxfi/honkverifier/transcript"
)

func TestCombinedSumZeroWhenAllSelectorsZero(t *testing.T) {
	var evals Evaluations
	for i := range evals {
		evals[i] = field.Zero()
	}
	var rp transcript.RelParams
	rp.PublicInputsDelta = field.One()
	var alphas [transcript.NumAlphas]field.Fr
	for i := range alphas {
		alphas[i] = field.FromU64(uint64(i + 2))
	}

	got := CombinedSum(evals, rp, alphas, field.One())
	require.True(t, got.IsZero(), "expected zero grand sum when every selector and wire is zero")
}

func TestCombinedSumScalesWithPowPartial(t *testing.T) {
	var evals Evaluations
	evals[EQArith] = field.One()
	evals[EQM] = field.One()
	evals[EW1] = field.FromU64(2)
	evals[EW2] = field.FromU64(3)

	var rp transcript.RelParams
	var alphas [transcript.NumAlphas]field.Fr

	one := CombinedSum(evals, rp, alphas, field.One())
	two := CombinedSum(evals, rp, alphas, field.FromU64(2))

	require.True(t, two.Equal(one.Add(one)), "grand sum must scale linearly with pow_partial")
}
