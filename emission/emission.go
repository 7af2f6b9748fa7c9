// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package emission computes the per-round reward schedule (spec §4.10,
// EMIT): a halving issuance curve clamped to a hard supply cap, split
// between a primary verifier and its shadows by role weight, with any
// unclaimed remainder rolled into an accrual pool rather than burned.
package emission

import (
	"errors"
	"fmt"

	"github.com/luxfi/ids"

	"github.com/ippan/dlc/types"
)

// ErrSupplyCapExceeded is returned when a round's computed issuance would
// push CumulativeEmitted past SupplyCap even after clamping (an internal
// invariant violation — Clamp should make this unreachable).
var ErrSupplyCapExceeded = errors.New("emission: supply cap exceeded")

// ErrEmissionAccounting is returned when Distribute's payouts do not sum to
// the round's issued amount (spec §4.10 I3: no value may be created or
// destroyed silently).
var ErrEmissionAccounting = errors.New("emission: payouts do not reconcile with issuance")

// Role weights applied to a verifier's contribution when splitting a
// round's issuance (spec §4.10).
const (
	PrimaryWeightNum = 12
	ShadowWeightNum  = 10
	WeightDenom      = 10
)

// RoundIssuance computes R(round) = max(1, r0 >> ((round-1)/halvingRounds)),
// the target issuance for round before clamping against the supply cap
// (spec §4.10 I1). Round 0 (genesis, spec §3) is treated like round 1:
// both get the full, un-halved r0 rate.
func RoundIssuance(round types.RoundID, r0, halvingRounds uint64) uint64 {
	if round == 0 {
		return r0
	}
	if halvingRounds == 0 {
		return r0
	}
	shift := uint64(round-1) / halvingRounds
	if shift >= 64 {
		return 1
	}
	issuance := r0 >> shift
	if issuance < 1 {
		return 1
	}
	return issuance
}

// Clamp caps issuance so CumulativeEmitted never exceeds SupplyCap,
// returning the amount actually available to issue this round (spec §4.10
// I2).
func Clamp(state types.EmissionState, issuance uint64) uint64 {
	remaining := state.SupplyCap - state.CumulativeEmitted
	if state.CumulativeEmitted >= state.SupplyCap {
		return 0
	}
	if issuance > remaining {
		return remaining
	}
	return issuance
}

// Contribution is one verifier's share of a round's work: its role
// (primary gets weight 1.2x, shadow 1.0x) and the number of blocks it
// contributed this round (normally 1, but the shape allows multi-block
// rounds without changing the distribution formula).
type Contribution struct {
	ID      ids.NodeID
	Primary bool
	Blocks  uint64
}

// Distribute splits amount across contributions proportionally to
// role-weight * blocks, returning each id's payout and any remainder
// that does not divide evenly. Contributions with zero combined weight
// (an empty round) yield no payouts and the whole amount is returned as
// pool accrual (spec §4.10 I4: undistributed rewards never vanish).
func Distribute(amount uint64, contributions []Contribution) (payouts map[ids.NodeID]uint64, pooled uint64, err error) {
	payouts = make(map[ids.NodeID]uint64, len(contributions))
	if amount == 0 || len(contributions) == 0 {
		return payouts, amount, nil
	}

	totalWeight := uint64(0)
	weights := make([]uint64, len(contributions))
	for i, c := range contributions {
		num := uint64(ShadowWeightNum)
		if c.Primary {
			num = uint64(PrimaryWeightNum)
		}
		w := num * c.Blocks
		weights[i] = w
		totalWeight += w
	}
	if totalWeight == 0 {
		return payouts, amount, nil
	}

	distributed := uint64(0)
	for i, c := range contributions {
		share := amount * weights[i] / totalWeight
		payouts[c.ID] += share
		distributed += share
	}

	pooled = amount - distributed
	if distributed+pooled != amount {
		return nil, 0, fmt.Errorf("%w: distributed %d + pooled %d != amount %d", ErrEmissionAccounting, distributed, pooled, amount)
	}
	return payouts, pooled, nil
}

// Validate reports ErrSupplyCapExceeded if state's CumulativeEmitted has
// somehow exceeded SupplyCap. Clamp makes this unreachable in normal
// operation; callers run it as a post-condition check after restoring state
// from storage.
func Validate(state types.EmissionState) error {
	if state.CumulativeEmitted > state.SupplyCap {
		return fmt.Errorf("%w: %d > %d", ErrSupplyCapExceeded, state.CumulativeEmitted, state.SupplyCap)
	}
	return nil
}

// Apply advances state by one round's worth of issuance: computes
// RoundIssuance, clamps it, and returns the updated state plus the amount
// actually issued this round (which Distribute then splits). The caller
// persists the returned state.
func Apply(state types.EmissionState, round types.RoundID) (types.EmissionState, uint64) {
	target := RoundIssuance(round, state.R0, state.HalvingRounds)
	issued := Clamp(state, target)
	state.CumulativeEmitted += issued
	return state, issued
}
