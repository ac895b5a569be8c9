// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package verifyerr defines the verifier's structured, three-kind error
// taxonomy. Every rejection carries one of these kinds plus a static reason
// string drawn from a closed set, so callers can both branch on Kind with
// errors.Is and render the exact tag for diagnostics.
package verifyerr

import "errors"

// Kind classifies why verification failed.
type Kind uint8

const (
	// KindInvalidInput marks malformed blobs or length mismatches: the
	// caller supplied something the verifier cannot parse at all.
	KindInvalidInput Kind = iota
	// KindSumcheckFailed marks a sum-check round or final grand-sum
	// mismatch: the proof is unsound, or the public inputs do not match
	// what was proven.
	KindSumcheckFailed
	// KindShplonkFailed marks a Gemini/Shplonk/KZG opening or pairing
	// check failure: commitments and evaluations disagree.
	KindShplonkFailed
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "InvalidInput"
	case KindSumcheckFailed:
		return "SumcheckFailed"
	case KindShplonkFailed:
		return "ShplonkFailed"
	default:
		return "Unknown"
	}
}

// Sentinel kind errors for errors.Is-style branching; Error wraps one of
// these via Unwrap while still carrying the precise Reason() string.
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrSumcheckFailed  = errors.New("sumcheck failed")
	ErrShplonkFailed   = errors.New("shplonk failed")
)

// Error is a tagged verification failure.
type Error struct {
	kind   Kind
	reason string
}

// New builds an *Error of the given kind with a static reason tag.
func New(kind Kind, reason string) *Error {
	return &Error{kind: kind, reason: reason}
}

// InvalidInput builds a KindInvalidInput error.
func InvalidInput(reason string) *Error { return New(KindInvalidInput, reason) }

// SumcheckFailed builds a KindSumcheckFailed error.
func SumcheckFailed(reason string) *Error { return New(KindSumcheckFailed, reason) }

// ShplonkFailed builds a KindShplonkFailed error.
func ShplonkFailed(reason string) *Error { return New(KindShplonkFailed, reason) }

// Kind returns the error's kind.
func (e *Error) Kind() Kind { return e.kind }

// Reason returns the static reason tag.
func (e *Error) Reason() string { return e.reason }

func (e *Error) Error() string {
	return e.kind.String() + ": " + e.reason
}

// Unwrap lets errors.Is match against the kind sentinels.
func (e *Error) Unwrap() error {
	switch e.kind {
	case KindSumcheckFailed:
		return ErrSumcheckFailed
	case KindShplonkFailed:
		return ErrShplonkFailed
	default:
		return ErrInvalidInput
	}
}
