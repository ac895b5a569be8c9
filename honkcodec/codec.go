// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package honkcodec parses the fixed-layout VK and proof blobs emitted by
// bb v3.0.0 (keccak oracle) into typed in-memory structures. Parsing is
// single-pass, length-checked, and purely positional: there are no
// variable-length fields and no backtracking.
package honkcodec

import (
	"github.com/luxfi/honkverifier/curve"
	"github.com/luxfi/honkverifier/field"
)

const (
	// NumberOfEntities is the count of sum-check evaluations tracked per round.
	NumberOfEntities = 41
	// BatchedRelationPartialLength is the degree-7 univariate's point count
	// (evaluations at {0, ..., 7}).
	BatchedRelationPartialLength = 8
	// PairingPointsSize is the count of Fr values in the recursive-wrapper
	// pairing point object.
	PairingPointsSize = 16
	// LogNMax upper-bounds log_circuit_size; arrays are dimensioned to this
	// constant and zero-padded beyond the real log_n, so the verifier never
	// grows the heap at runtime.
	LogNMax = 28

	vkHeaderBytes  = 96
	vkPointBytes   = 64
	vkPointCount   = 28
	vkMinLen       = vkHeaderBytes + vkPointCount*vkPointBytes // 1888
	vkPaddedLen    = vkMinLen + vkPointCount*vkPointBytes      // 3680
)

// ProofBytesForLogN computes the expected proof byte length for a circuit
// of the given log2(circuit size).
func ProofBytesForLogN(logN uint64) int {
	return (75 + 11*int(logN)) * 32
}

// U32ToBE32 zero-pads a u32 into the low 4 bytes of a 32-byte big-endian
// field element, matching how game-specific public inputs (session id,
// turn counter, ...) are packed into Fr slots before hashing.
func U32ToBE32(v uint32) [32]byte {
	var out [32]byte
	out[28] = byte(v >> 24)
	out[29] = byte(v >> 16)
	out[30] = byte(v >> 8)
	out[31] = byte(v)
	return out
}

// VerificationKey is the parsed bb v3.0.0 verifying key.
type VerificationKey struct {
	CircuitSize      uint64
	LogCircuitSize   uint64
	PublicInputsSize uint64
	PubInputsOffset  uint64

	QM, QC, QL, QR, QO, Q4                     curve.G1Affine
	QLookup, QArith, QDeltaRange, QElliptic     curve.G1Affine
	QMemory, QNNF                               curve.G1Affine
	QPoseidon2External, QPoseidon2Internal      curve.G1Affine
	S1, S2, S3, S4                              curve.G1Affine
	ID1, ID2, ID3, ID4                          curve.G1Affine
	T1, T2, T3, T4                              curve.G1Affine
	LagrangeFirst, LagrangeLast                  curve.G1Affine
}

// Proof is the parsed bb v3.0.0 UltraHonk proof, arrays zero/infinity
// padded to LogNMax beyond the circuit's actual log_n.
type Proof struct {
	PairingPointObject [PairingPointsSize]field.Fr

	W1, W2, W3                    curve.G1Affine
	LookupReadCounts, LookupReadTags curve.G1Affine
	W4                             curve.G1Affine
	LookupInverses, ZPerm           curve.G1Affine

	SumcheckUnivariates  [LogNMax][BatchedRelationPartialLength]field.Fr
	SumcheckEvaluations  [NumberOfEntities]field.Fr
	GeminiFoldComms      [LogNMax - 1]curve.G1Affine
	GeminiAEvaluations   [LogNMax]field.Fr

	ShplonkQ, KZGQuotient curve.G1Affine
}

type cursor struct {
	buf []byte
	pos int
}

func (c *cursor) take(n int) []byte {
	out := c.buf[c.pos : c.pos+n]
	c.pos += n
	return out
}

func (c *cursor) fr32() field.Fr {
	var b [32]byte
	copy(b[:], c.take(32))
	return field.FromBytes(b)
}

func (c *cursor) g1Native() curve.G1Affine {
	var x, y [32]byte
	copy(x[:], c.take(32))
	copy(y[:], c.take(32))
	return curve.G1FromCoords(x, y)
}

// u64FromField reads a 32-byte field slot where only the low 8 bytes carry
// a big-endian u64 and the top 24 bytes are zero padding.
func (c *cursor) u64FromField() uint64 {
	c.take(24)
	b := c.take(8)
	var v uint64
	for _, x := range b {
		v = v<<8 | uint64(x)
	}
	return v
}

// LoadProof parses proofBytes for a circuit with the given log_n. The
// caller must have already validated proofBytes has length
// ProofBytesForLogN(logN).
func LoadProof(proofBytes []byte, logN int) Proof {
	c := &cursor{buf: proofBytes}
	var p Proof

	for i := range p.PairingPointObject {
		p.PairingPointObject[i] = c.fr32()
	}

	p.W1 = c.g1Native()
	p.W2 = c.g1Native()
	p.W3 = c.g1Native()

	p.LookupReadCounts = c.g1Native()
	p.LookupReadTags = c.g1Native()

	p.W4 = c.g1Native()

	p.LookupInverses = c.g1Native()
	p.ZPerm = c.g1Native()

	for r := 0; r < logN; r++ {
		for i := 0; i < BatchedRelationPartialLength; i++ {
			p.SumcheckUnivariates[r][i] = c.fr32()
		}
	}

	for i := range p.SumcheckEvaluations {
		p.SumcheckEvaluations[i] = c.fr32()
	}

	for i := 0; i < logN-1; i++ {
		p.GeminiFoldComms[i] = c.g1Native()
	}

	for i := 0; i < logN; i++ {
		p.GeminiAEvaluations[i] = c.fr32()
	}

	p.ShplonkQ = c.g1Native()
	p.KZGQuotient = c.g1Native()

	return p
}

// LoadVKFromBytes parses bytes into a VerificationKey. bytes must be
// exactly 1888 (keccak-oracle) or 3680 (zero-padded poseidon2-oracle)
// bytes; anything else is a caller error the codec reports as !ok.
func LoadVKFromBytes(bytes []byte) (VerificationKey, bool) {
	if len(bytes) != vkMinLen && len(bytes) != vkPaddedLen {
		return VerificationKey{}, false
	}

	c := &cursor{buf: bytes}
	var vk VerificationKey

	vk.LogCircuitSize = c.u64FromField()
	vk.PublicInputsSize = c.u64FromField()
	vk.PubInputsOffset = c.u64FromField()
	vk.CircuitSize = uint64(1) << vk.LogCircuitSize

	vk.QM = c.g1Native()
	vk.QC = c.g1Native()
	vk.QL = c.g1Native()
	vk.QR = c.g1Native()
	vk.QO = c.g1Native()
	vk.Q4 = c.g1Native()
	vk.QLookup = c.g1Native()
	vk.QArith = c.g1Native()
	vk.QDeltaRange = c.g1Native()
	vk.QElliptic = c.g1Native()
	vk.QMemory = c.g1Native()
	vk.QNNF = c.g1Native()
	vk.QPoseidon2External = c.g1Native()
	vk.QPoseidon2Internal = c.g1Native()
	vk.S1 = c.g1Native()
	vk.S2 = c.g1Native()
	vk.S3 = c.g1Native()
	vk.S4 = c.g1Native()
	vk.ID1 = c.g1Native()
	vk.ID2 = c.g1Native()
	vk.ID3 = c.g1Native()
	vk.ID4 = c.g1Native()
	vk.T1 = c.g1Native()
	vk.T2 = c.g1Native()
	vk.T3 = c.g1Native()
	vk.T4 = c.g1Native()
	vk.LagrangeFirst = c.g1Native()
	vk.LagrangeLast = c.g1Native()

	return vk, true
}
