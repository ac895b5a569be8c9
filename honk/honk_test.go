// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package honk

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/honkverifier/curve"
	"github.com/luxfi/honkverifier/diag"
	"github.com/luxfi/honkverifier/field"
	"github.com/luxfi/honkverifier/honkcodec"
	"github.com/luxfi/honkverifier/verifyerr"
)

// buildVKBlob constructs a minimal valid (1888-byte) VK blob for a given
// log_circuit_size, public_inputs_size and offset, with every curve point
// left as the identity.
func buildVKBlob(logN, pubInputsSize, offset uint64) []byte {
	blob := make([]byte, 96+28*64)
	putU64Field := func(at int, v uint64) {
		for i := 0; i < 8; i++ {
			blob[at+31-i] = byte(v >> (8 * i))
		}
	}
	putU64Field(0, logN)
	putU64Field(32, pubInputsSize)
	putU64Field(64, offset)
	return blob
}

func asVerifyErr(t *testing.T, err error) *verifyerr.Error {
	t.Helper()
	ve, ok := err.(*verifyerr.Error)
	require.True(t, ok, "expected *verifyerr.Error, got %T: %v", err, err)
	return ve
}

func TestVerifyRejectsShortVK(t *testing.T) {
	err := Verify(make([]byte, 10), nil, nil, curve.GnarkHost{}, diag.NoopEmitter{})
	ve := asVerifyErr(t, err)
	require.Equal(t, "vk too short for hash prefix", ve.Reason())
}

func TestVerifyRejectsBadVKLength(t *testing.T) {
	vkBytes := append(make([]byte, 32), make([]byte, 100)...) // wrong blob length
	err := Verify(vkBytes, nil, nil, curve.GnarkHost{}, diag.NoopEmitter{})
	ve := asVerifyErr(t, err)
	require.Equal(t, "vk parse error", ve.Reason())
}

func TestVerifyRejectsProofSizeMismatch(t *testing.T) {
	vkBlob := buildVKBlob(1, 0, 0)
	vkBytes := append(make([]byte, 32), vkBlob...)
	err := Verify(vkBytes, make([]byte, 10), nil, curve.GnarkHost{}, diag.NoopEmitter{})
	ve := asVerifyErr(t, err)
	require.Equal(t, "proof size mismatch", ve.Reason())
}

func TestVerifyRejectsUnalignedPublicInputs(t *testing.T) {
	vkBlob := buildVKBlob(1, 0, 0)
	vkBytes := append(make([]byte, 32), vkBlob...)
	proofBytes := make([]byte, honkcodec.ProofBytesForLogN(1))
	err := Verify(vkBytes, proofBytes, make([]byte, 10), curve.GnarkHost{}, diag.NoopEmitter{})
	ve := asVerifyErr(t, err)
	require.Equal(t, "public inputs must be 32-byte aligned", ve.Reason())
}

func TestVerifyRejectsPublicInputsCountMismatch(t *testing.T) {
	vkBlob := buildVKBlob(1, 5, 0) // vk expects 5, neither 5 nor 5-16 matches 1 provided
	vkBytes := append(make([]byte, 32), vkBlob...)
	proofBytes := make([]byte, honkcodec.ProofBytesForLogN(1))
	err := Verify(vkBytes, proofBytes, make([]byte, 32), curve.GnarkHost{}, diag.NoopEmitter{})
	ve := asVerifyErr(t, err)
	require.Equal(t, "public inputs mismatch (vk vs provided)", ve.Reason())
}

func TestComputePublicInputsDeltaIsOneWithNoInputs(t *testing.T) {
	got := computePublicInputsDelta(nil, field.FromU64(3), field.FromU64(5), 0)
	require.True(t, got.Equal(field.One()), "expected empty product to be 1")
}

func TestComputePublicInputsDeltaVariesWithInput(t *testing.T) {
	beta, gamma := field.FromU64(3), field.FromU64(5)
	var a, b [32]byte
	a[31] = 7
	b[31] = 9

	da := computePublicInputsDelta(a[:], beta, gamma, 0)
	db := computePublicInputsDelta(b[:], beta, gamma, 0)
	require.False(t, da.Equal(db), "delta should differ for different public input values")
}

func TestVKHashIsDeterministic(t *testing.T) {
	blob := buildVKBlob(4, 1, 0)
	require.Equal(t, VKHash(blob), VKHash(blob), "VKHash must be deterministic")
}
