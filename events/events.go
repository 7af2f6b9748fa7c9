// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package events defines the round engine's observable outcomes (spec §6):
// a sink interface the embedding application can implement to react to
// finalization, slashing, reputation changes, and emission — without the
// core depending on any particular event bus or message broker.
package events

import (
	"github.com/google/uuid"
	"github.com/luxfi/ids"

	"github.com/ippan/dlc/types"
)

// RoundFinalized is emitted once a round's canonical tip has been
// finalized (spec §4.9).
type RoundFinalized struct {
	ID           uuid.UUID
	Round        types.RoundID
	FinalizedTip ids.ID
}

// ValidatorSlashed is emitted each time BOND slashes a validator's bond for
// double-sign evidence (spec §4.5). Amount is the amount slashed; the bond
// is not necessarily in the terminal Slashed state afterwards.
type ValidatorSlashed struct {
	ID        uuid.UUID
	Validator ids.NodeID
	Round     types.RoundID
	Reason    types.EvidenceKind
	Amount    uint64
}

// ReputationUpdated is emitted whenever REP applies a delta to a
// validator's score (spec §4.4).
type ReputationUpdated struct {
	ID        uuid.UUID
	Validator ids.NodeID
	Round     types.RoundID
	Delta     int64
	NewScore  int64
}

// EmissionDistributed is emitted once EMIT has split a round's issuance
// across its contributors (spec §4.10).
type EmissionDistributed struct {
	ID      uuid.UUID
	Round   types.RoundID
	Issued  uint64
	Pooled  uint64
	Payouts map[ids.NodeID]uint64
}

// Sink receives round-engine events. Every method is best-effort from the
// core's perspective: a Sink that returns without error does not block
// round progression, and the core never retries a failed delivery — sinks
// own their own durability if they need it.
type Sink interface {
	OnRoundFinalized(RoundFinalized)
	OnValidatorSlashed(ValidatorSlashed)
	OnReputationUpdated(ReputationUpdated)
	OnEmissionDistributed(EmissionDistributed)
}

// NopSink implements Sink by discarding every event; it is the default
// when an embedding application does not care to observe round outcomes.
type NopSink struct{}

func (NopSink) OnRoundFinalized(RoundFinalized)           {}
func (NopSink) OnValidatorSlashed(ValidatorSlashed)       {}
func (NopSink) OnReputationUpdated(ReputationUpdated)     {}
func (NopSink) OnEmissionDistributed(EmissionDistributed) {}
