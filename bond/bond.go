// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package bond implements the validator bonding and slashing state machine
// (spec §4.5, BOND): Active -> Unstaking -> Withdrawn, with Active and
// Unstaking both able to transition directly to the terminal Slashed state
// once a slash drives the remaining amount below config.MinBond. BOND owns
// its own map keyed by validator id (spec §9 arena pattern) and never
// reaches into REP or VSET's state.
package bond

import (
	"errors"
	"fmt"
	"sync"

	"github.com/luxfi/ids"

	"github.com/ippan/dlc/config"
	"github.com/ippan/dlc/types"
)

// ErrInsufficientBond is returned when a requested bond amount falls below
// config.MinBond.
var ErrInsufficientBond = errors.New("bond: amount below minimum")

// ErrLockNotExpired is returned when Withdraw is called before UnlockRound.
var ErrLockNotExpired = errors.New("bond: unstake lock not yet expired")

// ErrInvalidTransition is returned when an operation is attempted from a
// bond status that does not permit it (spec §4.5 state machine).
var ErrInvalidTransition = errors.New("bond: invalid state transition")

// ErrUnknownValidator is returned when an operation targets a validator with
// no recorded bond.
var ErrUnknownValidator = errors.New("bond: unknown validator")

// ErrAlreadyBonded is returned by CreateBond when the validator already has
// a bond on record, whatever its status.
var ErrAlreadyBonded = errors.New("bond: validator already bonded")

// Store holds every validator's bond record.
type Store struct {
	mu    sync.Mutex
	bonds map[ids.NodeID]types.Bond
}

// New returns an empty Store.
func New() *Store {
	return &Store{bonds: make(map[ids.NodeID]types.Bond)}
}

// Get returns id's bond record and whether one exists.
func (s *Store) Get(id ids.NodeID) (types.Bond, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bonds[id]
	return b, ok
}

// CreateBond records a new Active bond of amount for id at round. Fails if
// amount is below config.MinBond or id already has a bond on record (spec
// §4.5).
func (s *Store) CreateBond(id ids.NodeID, amount uint64, round types.RoundID) error {
	if amount < config.MinBond {
		return fmt.Errorf("%w: %d < %d", ErrInsufficientBond, amount, config.MinBond)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.bonds[id]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyBonded, id)
	}
	s.bonds[id] = types.Bond{
		Amount:          amount,
		Status:          types.BondStatus{Kind: types.BondActive},
		LastChangeRound: round,
	}
	return nil
}

// RequestUnstake transitions id's bond from Active to Unstaking, recording
// the round at which it unlocks (spec §4.5).
func (s *Store) RequestUnstake(id ids.NodeID, round types.RoundID, lockRounds uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bonds[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownValidator, id)
	}
	if b.Status.Kind != types.BondActive {
		return fmt.Errorf("%w: cannot unstake from %s", ErrInvalidTransition, b.Status.Kind)
	}
	b.Status = types.BondStatus{Kind: types.BondUnstaking, UnlockRound: round + types.RoundID(lockRounds)}
	b.LastChangeRound = round
	s.bonds[id] = b
	return nil
}

// Withdraw transitions id's bond from Unstaking to Withdrawn once
// UnlockRound has passed, zeroing its amount. Returns the withdrawn amount.
func (s *Store) Withdraw(id ids.NodeID, round types.RoundID) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bonds[id]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownValidator, id)
	}
	if b.Status.Kind != types.BondUnstaking {
		return 0, fmt.Errorf("%w: cannot withdraw from %s", ErrInvalidTransition, b.Status.Kind)
	}
	if round < b.Status.UnlockRound {
		return 0, fmt.Errorf("%w: unlocks at round %d, currently %d", ErrLockNotExpired, b.Status.UnlockRound, round)
	}
	amount := b.Amount
	b.Amount = 0
	b.Status = types.BondStatus{Kind: types.BondWithdrawn}
	b.LastChangeRound = round
	s.bonds[id] = b
	return amount, nil
}

// Slash reduces id's bond by bps basis points, from either Active or
// Unstaking (spec §4.5: "applies bps; if resulting amount < MIN_BOND,
// transitions Active -> Slashed"). The bond only moves to the terminal
// Slashed state when the amount remaining after the deduction falls below
// config.MinBond; a slash that leaves enough bond posted keeps the
// validator's current status, just with a reduced amount. Returns the
// slashed amount.
func (s *Store) Slash(id ids.NodeID, round types.RoundID, bps int) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bonds[id]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownValidator, id)
	}
	if b.Status.Kind != types.BondActive && b.Status.Kind != types.BondUnstaking {
		return 0, fmt.Errorf("%w: cannot slash from %s", ErrInvalidTransition, b.Status.Kind)
	}
	slashed := b.Amount * uint64(bps) / 10_000
	b.Amount -= slashed
	if b.Amount < config.MinBond {
		b.Status = types.BondStatus{Kind: types.BondSlashed}
	}
	b.LastChangeRound = round
	s.bonds[id] = b
	return slashed, nil
}

// Snapshot returns a copy of every tracked validator's bond record.
func (s *Store) Snapshot() map[ids.NodeID]types.Bond {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[ids.NodeID]types.Bond, len(s.bonds))
	for k, v := range s.bonds {
		out[k] = v
	}
	return out
}
