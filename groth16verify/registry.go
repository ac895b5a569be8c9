// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package groth16verify

import (
	"crypto/sha256"
	"errors"
	"sync"

	"github.com/luxfi/geth/common"

	"github.com/luxfi/honkverifier/curve"
	"github.com/luxfi/honkverifier/field"
)

// ErrKeyNotFound is returned when a lookup names a key ID the registry has
// not seen.
var ErrKeyNotFound = errors.New("groth16: verifying key not found")

// registeredKey pairs a VerifyingKey with the address that registered it.
// No Registry method returns the owner, and re-registering a key
// overwrites it.
type registeredKey struct {
	vk    VerifyingKey
	owner common.Address
}

// Registry is a store of verifying keys, addressed by a content hash of
// their fixed elements rather than an arbitrary name, so two registrations
// of the same circuit collide onto the same key ID. Register records the
// caller-supplied owner address but does not restrict who may register.
type Registry struct {
	mu   sync.RWMutex
	keys map[[32]byte]registeredKey
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{keys: make(map[[32]byte]registeredKey)}
}

// Register computes a key ID from vk's fixed elements and stores vk under
// it, returning the key ID for later lookup.
func (r *Registry) Register(owner common.Address, vk VerifyingKey) [32]byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	keyID := keyIDFor(vk)
	r.keys[keyID] = registeredKey{vk: vk, owner: owner}
	return keyID
}

// Lookup returns the verifying key registered under keyID.
func (r *Registry) Lookup(keyID [32]byte) (VerifyingKey, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.keys[keyID]
	if !ok {
		return VerifyingKey{}, false
	}
	return entry.vk, true
}

// VerifyByKeyID looks up the verifying key registered under keyID and
// checks proof against it, returning ErrKeyNotFound if no such key exists.
func (r *Registry) VerifyByKeyID(keyID [32]byte, proof Proof, publicInputs []field.Fr, host curve.Host) (bool, error) {
	vk, ok := r.Lookup(keyID)
	if !ok {
		return false, ErrKeyNotFound
	}
	return Verify(vk, proof, publicInputs, host)
}

// keyIDFor hashes a verifying key's fixed elements (alpha, beta, gamma,
// delta, IC) into a content-addressed 32-byte ID, mirroring how a circuit
// identity is derived from its own fixed setup elements rather than an
// externally chosen name.
func keyIDFor(vk VerifyingKey) [32]byte {
	h := sha256.New()
	ax, ay := vk.Alpha.Coords()
	h.Write(ax[:])
	h.Write(ay[:])
	bx := vk.Beta.EIP197Bytes()
	h.Write(bx[:])
	gx := vk.Gamma.EIP197Bytes()
	h.Write(gx[:])
	dx := vk.Delta.EIP197Bytes()
	h.Write(dx[:])
	for _, p := range vk.IC {
		px, py := p.Coords()
		h.Write(px[:])
		h.Write(py[:])
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
