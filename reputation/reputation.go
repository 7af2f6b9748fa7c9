// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package reputation tracks each validator's reputation score (spec §4.4,
// REP). It owns a single map keyed by validator id (spec §9 arena pattern) —
// no other package may hold reputation state, and REP never reaches into
// BOND or VSET's maps.
package reputation

import (
	"sync"

	"github.com/luxfi/ids"

	"github.com/ippan/dlc/config"
)

// Store holds every validator's reputation score. Construct it with New;
// the zero value has no map and panics on Apply. Unknown validators read as
// config.RepMin.
type Store struct {
	mu     sync.RWMutex
	scores map[ids.NodeID]int64
}

// New returns an empty Store.
func New() *Store {
	return &Store{scores: make(map[ids.NodeID]int64)}
}

// Get returns id's current reputation score, or config.RepMin if id has no
// recorded history.
func (s *Store) Get(id ids.NodeID) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	score, ok := s.scores[id]
	if !ok {
		return config.RepMin
	}
	return score
}

// Apply adds delta to id's score, clamped to [config.RepMin, config.RepMax]
// (spec §4.4 I1). The delta takes effect immediately, under the Store's
// lock.
func (s *Store) Apply(id ids.NodeID, delta int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.scores[id] + delta
	if next < config.RepMin {
		next = config.RepMin
	}
	if next > config.RepMax {
		next = config.RepMax
	}
	s.scores[id] = next
	return next
}

// ApplyBatch applies every delta in deltas atomically with respect to
// concurrent Get calls, each clamped as in Apply. Each validator appears at
// most once in deltas, so the map's iteration order does not affect the
// result.
func (s *Store) ApplyBatch(deltas map[ids.NodeID]int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, delta := range deltas {
		next := s.scores[id] + delta
		if next < config.RepMin {
			next = config.RepMin
		}
		if next > config.RepMax {
			next = config.RepMax
		}
		s.scores[id] = next
	}
}

// Snapshot returns a copy of every tracked validator's current score. The
// copy is safe for the caller to range over without holding the Store's
// lock (spec §4.6 feature extraction reads REP once per round).
func (s *Store) Snapshot() map[ids.NodeID]int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[ids.NodeID]int64, len(s.scores))
	for k, v := range s.scores {
		out[k] = v
	}
	return out
}

// MissedProposal, InvalidProposal, DowntimeRound, DoubleSign, ProposalFinalized
// and ShadowContribution apply the protocol's fixed reputation deltas (spec
// §4.4) for the named event, returning the validator's resulting score.
func (s *Store) ProposalFinalized(id ids.NodeID) int64 {
	return s.Apply(id, config.RepDeltaProposalFinalized)
}

func (s *Store) ShadowContribution(id ids.NodeID) int64 {
	return s.Apply(id, config.RepDeltaShadowContribution)
}

func (s *Store) MissedProposal(id ids.NodeID) int64 {
	return s.Apply(id, config.RepDeltaMissedProposal)
}

func (s *Store) InvalidProposal(id ids.NodeID) int64 {
	return s.Apply(id, config.RepDeltaInvalidProposal)
}

func (s *Store) DowntimeRound(id ids.NodeID) int64 {
	return s.Apply(id, config.RepDeltaDowntimePerRound)
}

func (s *Store) DoubleSign(id ids.NodeID) int64 {
	return s.Apply(id, config.RepDeltaDoubleSign)
}
