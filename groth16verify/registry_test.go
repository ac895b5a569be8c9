// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package groth16verify

import (
	"testing"

	"github.com/luxfi/geth/common"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/honkverifier/curve"
)

func TestRegistryRegisterAndLookup(t *testing.T) {
	reg := NewRegistry()
	vk := degenerateVK()
	owner := common.HexToAddress("0x00000000000000000000000000000000000001")

	keyID := reg.Register(owner, vk)

	got, ok := reg.Lookup(keyID)
	require.True(t, ok, "expected registered key to be found")
	require.True(t, got.Alpha.Equal(vk.Alpha))
}

func TestRegistrySameKeyRegistersToSameID(t *testing.T) {
	reg := NewRegistry()
	vk := degenerateVK()
	owner := common.HexToAddress("0x00000000000000000000000000000000000001")

	id1 := reg.Register(owner, vk)
	id2 := reg.Register(owner, vk)
	require.Equal(t, id1, id2, "identical verifying keys must hash to the same key ID")
}

func TestRegistryVerifyByKeyIDRejectsUnknownKey(t *testing.T) {
	reg := NewRegistry()
	host := curve.GnarkHost{}
	proof := Proof{A: curve.G1Generator(), B: curve.G2Generator(), C: curve.G1Infinity()}

	_, err := reg.VerifyByKeyID([32]byte{}, proof, nil, host)
	require.ErrorIs(t, err, ErrKeyNotFound)
}

func TestRegistryVerifyByKeyIDAcceptsDegenerateProof(t *testing.T) {
	reg := NewRegistry()
	host := curve.GnarkHost{}
	vk := degenerateVK()
	owner := common.HexToAddress("0x00000000000000000000000000000000000002")
	keyID := reg.Register(owner, vk)

	proof := Proof{A: curve.G1Generator(), B: curve.G2Generator(), C: curve.G1Infinity()}
	ok, err := reg.VerifyByKeyID(keyID, proof, nil, host)
	require.NoError(t, err)
	require.True(t, ok)
}
