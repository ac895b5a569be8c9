// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package honk is the public entry point: it wires the codec, transcript,
// sum-check, and Shplonk packages into a single verify(vk, proof,
// public_inputs) -> accept/reject call, matching the control flow a host
// runtime drives a proof through.
package honk

import (
	"golang.org/x/crypto/sha3"

	"github.com/luxfi/honkverifier/curve"
	"github.com/luxfi/honkverifier/diag"
	"github.com/luxfi/honkverifier/field"
	"github.com/luxfi/honkverifier/honkcodec"
	"github.com/luxfi/honkverifier/relations"
	"github.com/luxfi/honkverifier/shplemini"
	"github.com/luxfi/honkverifier/sumcheck"
	"github.com/luxfi/honkverifier/transcript"
	"github.com/luxfi/honkverifier/verifyerr"
)

// PermutationArgumentValueSeparator places the public-input identity
// values in a coset distinct from the witness identity values inside the
// permutation grand-product argument's delta term.
const PermutationArgumentValueSeparator = uint64(1) << 28

// vkHashPrefixBytes is the length of the hash-of-vk prefix a caller
// prepends to the raw VK blob; the verifier absorbs this hash into the
// transcript rather than re-hashing the (potentially large) VK itself.
const vkHashPrefixBytes = 32

// Verify checks an UltraHonk proof against a verifying key and the
// flattened public inputs, returning nil on acceptance or a *verifyerr.Error
// describing why the proof was rejected. host supplies the curve
// primitives a real runtime delegates to its pairing-check facility; emitter
// receives advisory diagnostic events and may be diag.NoopEmitter{}.
func Verify(vkBytes, proofBytes, publicInputsBytes []byte, host curve.Host, emitter diag.Emitter) error {
	if emitter == nil {
		emitter = diag.NoopEmitter{}
	}
	emitter.Emit(diag.Event{Topic: diag.TopicVerifyStart})

	if len(vkBytes) < vkHashPrefixBytes {
		return verifyerr.InvalidInput("vk too short for hash prefix")
	}
	var vkHash [32]byte
	copy(vkHash[:], vkBytes[:vkHashPrefixBytes])

	vk, ok := honkcodec.LoadVKFromBytes(vkBytes[vkHashPrefixBytes:])
	if !ok {
		return verifyerr.InvalidInput("vk parse error")
	}

	if len(proofBytes) != honkcodec.ProofBytesForLogN(vk.LogCircuitSize) {
		return verifyerr.InvalidInput("proof size mismatch")
	}

	if len(publicInputsBytes)%32 != 0 {
		emitter.Emit(diag.Event{Topic: diag.TopicErrPublicInput})
		return verifyerr.InvalidInput("public inputs must be 32-byte aligned")
	}
	provided := uint64(len(publicInputsBytes) / 32)
	if vk.PublicInputsSize != provided && vk.PublicInputsSize-honkcodec.PairingPointsSize != provided {
		emitter.Emit(diag.Event{Topic: diag.TopicErrPublicInput})
		return verifyerr.InvalidInput("public inputs mismatch (vk vs provided)")
	}

	logN := int(vk.LogCircuitSize)
	proof := honkcodec.LoadProof(proofBytes, logN)

	t := transcript.Generate(proof, publicInputsBytes, vkHash, vk.CircuitSize, vk.PublicInputsSize, vk.PubInputsOffset, logN)
	t.RelParams.PublicInputsDelta = computePublicInputsDelta(
		publicInputsBytes, t.RelParams.Beta, t.RelParams.Gamma, vk.PubInputsOffset,
	)

	evals := relations.Evaluations(proof.SumcheckEvaluations)

	if err := sumcheck.Verify(proof, t, evals, logN); err != nil {
		emitter.Emit(diag.Event{Topic: diag.TopicErrSumcheck})
		return verifyerr.SumcheckFailed(err.Error())
	}

	if err := shplemini.Verify(proof, vk, t, host, logN); err != nil {
		emitter.Emit(diag.Event{Topic: diag.TopicErrShplonk})
		return verifyerr.ShplonkFailed(err.Error())
	}

	return nil
}

// VKHash computes the keccak256 hash of a raw VK blob (the value a caller
// prepends as the 32-byte prefix Verify expects in vkBytes).
func VKHash(vkBlob []byte) [32]byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(vkBlob)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// computePublicInputsDelta folds the flattened public inputs into the
// permutation argument's grand-product boundary term as a telescoping
// product. The numerator accumulator starts at gamma + beta*(separator +
// offset) and the denominator accumulator at gamma - beta*(offset + 1);
// each public input pi multiplies the numerator by (num_acc + pi) and the
// denominator by (den_acc + pi), after which num_acc grows by beta and
// den_acc shrinks by beta. The result is numerator / denominator.
func computePublicInputsDelta(publicInputs []byte, beta, gamma field.Fr, offset uint64) field.Fr {
	numerator := field.One()
	denominator := field.One()
	separator := field.FromU64(PermutationArgumentValueSeparator)
	numAcc := gamma.Add(beta.Mul(separator.Add(field.FromU64(offset))))
	denAcc := gamma.Sub(beta.Mul(field.FromU64(offset + 1)))

	for i := 0; i+32 <= len(publicInputs); i += 32 {
		var b [32]byte
		copy(b[:], publicInputs[i:i+32])
		pi := field.FromBytes(b)

		numerator = numerator.Mul(numAcc.Add(pi))
		denominator = denominator.Mul(denAcc.Add(pi))
		numAcc = numAcc.Add(beta)
		denAcc = denAcc.Sub(beta)
	}

	inv, ok := denominator.Inverse()
	if !ok {
		return field.Zero()
	}
	return numerator.Mul(inv)
}
