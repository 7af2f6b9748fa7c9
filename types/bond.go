// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

// BondStatusKind discriminates Bond.Status (spec §3). Unstaking carries an
// UnlockRound payload; the other three kinds carry none, so BondStatus is
// modeled as one small struct with a Kind tag rather than four separate
// interface implementations — the payload is a single optional uint64, not
// worth an interface's indirection.
type BondStatusKind uint8

const (
	BondActive BondStatusKind = iota
	BondUnstaking
	BondWithdrawn
	BondSlashed
)

func (k BondStatusKind) String() string {
	switch k {
	case BondActive:
		return "Active"
	case BondUnstaking:
		return "Unstaking"
	case BondWithdrawn:
		return "Withdrawn"
	case BondSlashed:
		return "Slashed"
	default:
		return "Unknown"
	}
}

// BondStatus is the current lifecycle state of a Bond.
type BondStatus struct {
	Kind        BondStatusKind
	UnlockRound RoundID // valid only when Kind == BondUnstaking
}

// Bond is a validator's staked amount and its lifecycle state (spec §3/§4.5).
type Bond struct {
	Amount         uint64
	Status         BondStatus
	LastChangeRound RoundID
}
