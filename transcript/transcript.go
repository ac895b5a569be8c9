// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package transcript derives the Fiat-Shamir challenge schedule for an
// UltraHonk verification by iterated keccak256 over a canonical byte
// sequence. The ordering here is normative: it must mirror the prover's
// transcript bit-for-bit, so nothing in this package may reorder absorbs
// or reuse a squeeze without advancing the running hash.
package transcript

import (
	"golang.org/x/crypto/sha3"

	"github.com/luxfi/honkverifier/curve"
	"github.com/luxfi/honkverifier/field"
	"github.com/luxfi/honkverifier/honkcodec"
)

// NumAlphas is the count of Fiat-Shamir-drawn relation-combination
// coefficients; the zeroth coefficient alpha_0 = 1 is fixed and is not
// drawn from the transcript (see relations.CombinedSum).
const NumAlphas = 27

// RelParams holds the scalar challenges the relation evaluator needs.
type RelParams struct {
	Eta, EtaTwo, EtaThree field.Fr
	Beta, Gamma           field.Fr
	PublicInputsDelta     field.Fr
}

// Transcript is the full set of challenges derived for one verification.
type Transcript struct {
	RelParams RelParams

	Alphas [NumAlphas]field.Fr

	GateChallenges      [honkcodec.LogNMax]field.Fr
	SumcheckUChallenges [honkcodec.LogNMax]field.Fr

	GeminiR   field.Fr
	ShplonkNu field.Fr
	ShplonkZ  field.Fr
}

// coordToHalvesBE splits a 32-byte big-endian field coordinate into a
// (low, high) pair of 32-byte field slots: low carries the coordinate's
// low 17 bytes (bytes [15:32]) and high carries its high 15 bytes
// (bytes [0:15]), each left-zero-padded to 32 bytes. This mirrors how the
// prover serializes G1 points into the transcript as two field elements.
func coordToHalvesBE(coord [32]byte) (low, high [32]byte) {
	copy(low[15:], coord[15:])
	copy(high[17:], coord[:15])
	return low, high
}

// sponge is a minimal keccak256-based absorb/squeeze accumulator: absorb
// appends raw bytes to the pending buffer, squeeze hashes the buffer and
// replaces it with the digest so a later absorb/squeeze can never replay
// an earlier one.
type sponge struct {
	buf []byte
}

func (s *sponge) absorb(b []byte) {
	s.buf = append(s.buf, b...)
}

func (s *sponge) absorbFr(f field.Fr) {
	b := f.Bytes()
	s.absorb(b[:])
}

func (s *sponge) absorbG1(p curve.G1Affine) {
	x, y := p.Coords()
	xlo, xhi := coordToHalvesBE(x)
	ylo, yhi := coordToHalvesBE(y)
	s.absorb(xlo[:])
	s.absorb(xhi[:])
	s.absorb(ylo[:])
	s.absorb(yhi[:])
}

func (s *sponge) absorbU64AsField(v uint64) {
	var b [32]byte
	for i := 0; i < 8; i++ {
		b[31-i] = byte(v >> (8 * i))
	}
	s.absorb(b[:])
}

// squeezeOne hashes the pending buffer, advances the state to the digest,
// and returns the digest as a field element.
func (s *sponge) squeezeOne() field.Fr {
	h := sha3.NewLegacyKeccak256()
	h.Write(s.buf)
	digest := h.Sum(nil)
	var b [32]byte
	copy(b[:], digest)
	s.buf = digest
	return field.FromBytes(b)
}

// squeezeN draws n challenges from a single absorb point by re-hashing
// the pending buffer with a one-byte counter for each challenge, then
// advances the state once so a subsequent absorb starts from fresh
// material.
func (s *sponge) squeezeN(n int) []field.Fr {
	out := make([]field.Fr, n)
	for i := 0; i < n; i++ {
		h := sha3.NewLegacyKeccak256()
		h.Write(s.buf)
		h.Write([]byte{byte(i)})
		digest := h.Sum(nil)
		var b [32]byte
		copy(b[:], digest)
		out[i] = field.FromBytes(b)
	}
	h := sha3.NewLegacyKeccak256()
	h.Write(s.buf)
	s.buf = h.Sum(nil)
	return out
}

// Generate derives the full challenge schedule for one verification,
// including the per-round gate and sum-check challenges (which require
// log_n up front). It does not compute public_inputs_delta; that is
// filled in separately by the caller once beta/gamma are known,
// mirroring the original control flow where the delta formula needs the
// transcript's own output.
func Generate(
	proof honkcodec.Proof,
	publicInputs []byte,
	vkHash [32]byte,
	circuitSize, totalPublicInputs, pubInputsOffset uint64,
	logN int,
) Transcript {
	var t Transcript
	s := &sponge{}

	s.absorb(vkHash[:])
	s.absorbU64AsField(circuitSize)
	s.absorbU64AsField(totalPublicInputs)
	s.absorbU64AsField(pubInputsOffset)

	for i := 0; i+32 <= len(publicInputs); i += 32 {
		var b [32]byte
		copy(b[:], publicInputs[i:i+32])
		s.absorbFr(field.FromBytes(b))
	}
	for _, pi := range proof.PairingPointObject {
		s.absorbFr(pi)
	}

	s.absorbG1(proof.W1)
	s.absorbG1(proof.W2)
	s.absorbG1(proof.W3)

	etas := s.squeezeN(3)
	t.RelParams.Eta, t.RelParams.EtaTwo, t.RelParams.EtaThree = etas[0], etas[1], etas[2]

	s.absorbG1(proof.LookupReadCounts)
	s.absorbG1(proof.LookupReadTags)
	s.absorbG1(proof.W4)

	betaGamma := s.squeezeN(2)
	t.RelParams.Beta, t.RelParams.Gamma = betaGamma[0], betaGamma[1]

	s.absorbG1(proof.LookupInverses)
	s.absorbG1(proof.ZPerm)

	alphas := s.squeezeN(NumAlphas)
	copy(t.Alphas[:], alphas)

	gates := s.squeezeN(logN)
	copy(t.GateChallenges[:], gates)

	for r := 0; r < logN; r++ {
		for _, u := range proof.SumcheckUnivariates[r] {
			s.absorbFr(u)
		}
		t.SumcheckUChallenges[r] = s.squeezeOne()
	}

	for i := 0; i < logN-1; i++ {
		s.absorbG1(proof.GeminiFoldComms[i])
	}
	t.GeminiR = s.squeezeOne()

	for i := 0; i < logN; i++ {
		s.absorbFr(proof.GeminiAEvaluations[i])
	}
	nuZ := s.squeezeN(2)
	t.ShplonkNu, t.ShplonkZ = nuZ[0], nuZ[1]

	return t
}
