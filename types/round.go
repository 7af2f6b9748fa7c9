// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import "github.com/luxfi/ids"

// RoundID is a monotonically increasing round counter; round 0 is genesis.
type RoundID uint64

// RoundWindow is the [StartUS, EndUS) time window derived from the
// HashTimer median for a round (spec §3). EndUS-StartUS must fall in
// [100_000, 250_000] microseconds.
type RoundWindow struct {
	StartUS uint64
	EndUS   uint64
}

// RoundState is the round engine's lifecycle state (spec §4.9): Open →
// Collecting → Validating → Closing → Finalized.
type RoundState uint8

const (
	RoundOpen RoundState = iota
	RoundCollecting
	RoundValidating
	RoundClosing
	RoundFinalized
)

func (s RoundState) String() string {
	switch s {
	case RoundOpen:
		return "Open"
	case RoundCollecting:
		return "Collecting"
	case RoundValidating:
		return "Validating"
	case RoundClosing:
		return "Closing"
	case RoundFinalized:
		return "Finalized"
	default:
		return "Unknown"
	}
}

// Round tracks one round's proposals, verified set, finalized tip, and
// evidence (spec §3).
type Round struct {
	ID           RoundID
	Window       RoundWindow
	State        RoundState
	Proposals    map[ids.ID]struct{}
	Verified     map[ids.ID]struct{}
	FinalizedTip *ids.ID
	Evidence     []Evidence
}

// NewRound creates an empty Round in the Open state.
func NewRound(id RoundID, window RoundWindow) *Round {
	return &Round{
		ID:        id,
		Window:    window,
		State:     RoundOpen,
		Proposals: make(map[ids.ID]struct{}),
		Verified:  make(map[ids.ID]struct{}),
	}
}
