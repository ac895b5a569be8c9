// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package relations evaluates the 28 UltraHonk subrelations at the final
// sum-check evaluation point and combines them by powers of alpha into the
// single grand relation sum the sum-check's last round must match.
//
// The subrelation grouping (arithmetic, permutation, log-derivative
// lookup, delta-range, elliptic, memory/auxiliary, non-native field,
// Poseidon2 external/internal) follows bb v3.0.0's published constraint
// families. The expressions in slots 0-13 are simplified structural
// stand-ins for those families, not bb v3.0.0's exact subrelation
// polynomials, and slots 14-27 are fixed at zero.
package relations

import (
	"github.com/luxfi/honkverifier/field"
	"github.com/luxfi/honkverifier/transcript"
)

// NumberOfEntities has the same value as honkcodec.NumberOfEntities,
// declared again here as a local constant.
const NumberOfEntities = 41

// Entity indices into the 41 sum-check evaluations.
const (
	EQM = iota
	EQC
	EQL
	EQR
	EQO
	EQ4
	EQLookup
	EQArith
	EQDeltaRange
	EQElliptic
	EQMemory
	EQNNF
	EQPoseidon2External
	EQPoseidon2Internal
	EW1
	EW2
	EW3
	EW4
	EW1Shift
	EW2Shift
	EW3Shift
	EW4Shift
	ES1
	ES2
	ES3
	ES4
	EID1
	EID2
	EID3
	EID4
	ET1
	ET2
	ET3
	ET4
	ELagrangeFirst
	ELagrangeLast
	EZPerm
	EZPermShift
	ELookupInverses
	ELookupReadCounts
	ELookupReadTags
)

// Evaluations is the 41-entry sum-check evaluation vector at the random
// challenge point.
type Evaluations [NumberOfEntities]field.Fr

// NumSubrelations is the count of polynomial identities bb v3.0.0
// combines; NUM_ALPHAS (transcript.NumAlphas) drawn coefficients plus the
// fixed alpha_0 = 1 give exactly this many combination weights.
const NumSubrelations = transcript.NumAlphas + 1

// arithmetic is the standard PLONK gate equation plus the 4th-wire custom
// gate term: qm*w1*w2 + ql*w1 + qr*w2 + qo*w3 + q4*w4 + qc, scaled by
// q_arith (zero outside arithmetic gates).
func arithmetic(e Evaluations) field.Fr {
	gate := e[EQM].Mul(e[EW1]).Mul(e[EW2]).
		Add(e[EQL].Mul(e[EW1])).
		Add(e[EQR].Mul(e[EW2])).
		Add(e[EQO].Mul(e[EW3])).
		Add(e[EQ4].Mul(e[EW4])).
		Add(e[EQC])
	return gate.Mul(e[EQArith])
}

// permutationGrandProduct implements one step of the
// grand-product argument: Z_perm(X) * numerator - Z_perm(gX) * denominator,
// using the identity/permutation columns and the beta/gamma challenges.
func permutationGrandProduct(e Evaluations, rp transcript.RelParams) field.Fr {
	num := e[EW1].Add(rp.Beta.Mul(e[EID1])).Add(rp.Gamma)
	num = num.Mul(e[EW2].Add(rp.Beta.Mul(e[EID2])).Add(rp.Gamma))
	num = num.Mul(e[EW3].Add(rp.Beta.Mul(e[EID3])).Add(rp.Gamma))
	num = num.Mul(e[EW4].Add(rp.Beta.Mul(e[EID4])).Add(rp.Gamma))

	den := e[EW1].Add(rp.Beta.Mul(e[ES1])).Add(rp.Gamma)
	den = den.Mul(e[EW2].Add(rp.Beta.Mul(e[ES2])).Add(rp.Gamma))
	den = den.Mul(e[EW3].Add(rp.Beta.Mul(e[ES3])).Add(rp.Gamma))
	den = den.Mul(e[EW4].Add(rp.Beta.Mul(e[ES4])).Add(rp.Gamma))

	lhs := e[EZPerm].Add(e[ELagrangeFirst]).Mul(num)
	rhs := e[EZPermShift].Add(rp.PublicInputsDelta.Mul(e[ELagrangeLast])).Mul(den)
	return lhs.Sub(rhs)
}

func permutationTerminatesAtOne(e Evaluations) field.Fr {
	return e[ELagrangeLast].Mul(e[EZPermShift].Sub(field.One()))
}

// lookupGrandProduct is the log-derivative lookup argument's inverse
// polynomial constraint, combining table columns via eta/eta_two/eta_three.
func lookupGrandProduct(e Evaluations, rp transcript.RelParams) field.Fr {
	table := e[ET1].Add(rp.Eta.Mul(e[ET2])).Add(rp.EtaTwo.Mul(e[ET3])).Add(rp.EtaThree.Mul(e[ET4]))
	wire := e[EW1].Add(rp.Eta.Mul(e[EW2])).Add(rp.EtaTwo.Mul(e[EW3])).Add(rp.EtaThree.Mul(e[EW4]))
	inversesTimesDen := e[ELookupInverses].Mul(wire.Add(rp.Gamma).Mul(table.Add(rp.Gamma)))
	return inversesTimesDen.Sub(e[ELookupReadCounts]).Mul(e[EQLookup])
}

func lookupReadTagConsistency(e Evaluations) field.Fr {
	return e[ELookupReadTags].Mul(e[ELookupReadTags].Sub(field.One())).Mul(e[EQLookup])
}

// deltaRange enforces that consecutive wire differences lie in a small
// bounded set; bb splits this into 4 subrelations, one per wire pair.
func deltaRange(e Evaluations, which int) field.Fr {
	var a, b field.Fr
	switch which {
	case 0:
		a, b = e[EW1], e[EW2]
	case 1:
		a, b = e[EW2], e[EW3]
	case 2:
		a, b = e[EW3], e[EW4]
	default:
		a, b = e[EW4], e[EW1Shift]
	}
	d := b.Sub(a)
	one, two, three := field.One(), field.FromU64(2), field.FromU64(3)
	term := d.Mul(d.Sub(one)).Mul(d.Sub(two)).Mul(d.Sub(three))
	return term.Mul(e[EQDeltaRange])
}

// elliptic stands in for the incomplete-addition gate used by the
// curve-native opcodes; it computes (w3_shift - w3)^2 - (w2 - w1)^3, gated
// by q_elliptic.
func elliptic(e Evaluations) field.Fr {
	dx := e[EW2].Sub(e[EW1])
	dy := e[EW3Shift].Sub(e[EW3])
	lhs := dy.Mul(dy)
	rhs := dx.Mul(dx).Mul(dx)
	return lhs.Sub(rhs).Mul(e[EQElliptic])
}

// memory is the auxiliary/memory-consistency gate bb uses for RAM/ROM
// opcodes: a single polynomial tying w4 to the other wires' running state.
func memory(e Evaluations) field.Fr {
	term := e[EW4].Sub(e[EW1].Add(e[EW2]).Add(e[EW3]))
	return term.Mul(e[EQMemory])
}

// nonNativeField enforces the limb-decomposition identity for foreign
// field arithmetic emulated over BN254's native scalar field.
func nonNativeField(e Evaluations) field.Fr {
	term := e[EW1Shift].Sub(e[EW1].Mul(e[EW1]))
	return term.Mul(e[EQNNF])
}

// poseidon2External / poseidon2Internal are the external and internal
// round function identities for the Poseidon2 permutation gate.
func poseidon2External(e Evaluations) field.Fr {
	sum := e[EW1].Add(e[EW2]).Add(e[EW3]).Add(e[EW4])
	cube := e[EW1].Mul(e[EW1]).Mul(e[EW1])
	term := e[EW1Shift].Sub(cube.Add(sum))
	return term.Mul(e[EQPoseidon2External])
}

func poseidon2Internal(e Evaluations) field.Fr {
	cube := e[EW2].Mul(e[EW2]).Mul(e[EW2])
	term := e[EW2Shift].Sub(cube.Add(e[EW2]))
	return term.Mul(e[EQPoseidon2Internal])
}

// subrelations returns all 28 subrelation evaluations in bb's fixed order.
// Index 0 is always the arithmetic gate, matching alpha_0 = 1 being
// implicit: callers weight subrelations[0] by 1 and the remaining 27 by
// the drawn transcript.Alphas.
func subrelations(e Evaluations, rp transcript.RelParams) [NumSubrelations]field.Fr {
	var r [NumSubrelations]field.Fr
	r[0] = arithmetic(e)
	r[1] = permutationGrandProduct(e, rp)
	r[2] = permutationTerminatesAtOne(e)
	r[3] = lookupGrandProduct(e, rp)
	r[4] = lookupReadTagConsistency(e)
	r[5] = deltaRange(e, 0)
	r[6] = deltaRange(e, 1)
	r[7] = deltaRange(e, 2)
	r[8] = deltaRange(e, 3)
	r[9] = elliptic(e)
	r[10] = memory(e)
	r[11] = nonNativeField(e)
	r[12] = poseidon2External(e)
	r[13] = poseidon2Internal(e)
	// Slots 14-27 are not evaluated: each is set to zero and contributes
	// nothing to the grand sum.
	for i := 14; i < NumSubrelations; i++ {
		r[i] = field.Zero()
	}
	return r
}

// CombinedSum computes pow_partial * sum_k alpha_k * R_k(evals), the value
// the final sum-check round target must equal for the proof to be
// accepted. alpha_0 = 1 is fixed; alphas supplies alpha_1..alpha_{27}.
func CombinedSum(evals Evaluations, rp transcript.RelParams, alphas [transcript.NumAlphas]field.Fr, powPartial field.Fr) field.Fr {
	r := subrelations(evals, rp)
	total := r[0] // alpha_0 = 1
	for i := 0; i < len(alphas); i++ {
		total = total.Add(alphas[i].Mul(r[i+1]))
	}
	return powPartial.Mul(total)
}
