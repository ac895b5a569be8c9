// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package diag carries the verifier's advisory diagnostic events. Nothing
// here is load-bearing: a no-op Emitter and a silently-dropped event are
// both valid and do not change the accept/reject outcome of a verification.
package diag

import (
	log "github.com/luxfi/log"
)

// Topic strings for the events the verifier emits. These mirror the
// contract-level event topics a host runtime would see.
const (
	TopicVerifyStart    = "ver_start"
	TopicErrPublicInput = "err/pi_len"
	TopicErrSumcheck    = "err/sumcheck"
	TopicErrShplonk     = "err/shplonk"
)

// Event is one diagnostic emission.
type Event struct {
	Topic   string
	Payload []byte
}

// Emitter receives diagnostic events. Implementations must not block or
// panic; Verify does not check return values because emission failures are
// never fatal to verification.
type Emitter interface {
	Emit(Event)
}

// NoopEmitter discards every event. It is the default used when a caller
// does not supply one.
type NoopEmitter struct{}

// Emit implements Emitter.
func (NoopEmitter) Emit(Event) {}

// LogEmitter forwards events to a structured logger at debug level, useful
// for integrators who want to observe verification without changing its
// outcome.
type LogEmitter struct {
	Logger log.Logger
}

// NewLogEmitter wraps logger in an Emitter.
func NewLogEmitter(logger log.Logger) LogEmitter {
	return LogEmitter{Logger: logger}
}

// Emit implements Emitter.
func (e LogEmitter) Emit(ev Event) {
	if e.Logger == nil {
		return
	}
	e.Logger.Debug("verifier diagnostic event", "topic", ev.Topic, "payload_len", len(ev.Payload))
}
