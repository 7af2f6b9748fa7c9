// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package validators maintains the active validator set and computes each
// member's per-round feature snapshot (spec §4.6, VSET) from REP and BOND.
// Rewritten from the teacher's weight-sampling validators.Manager/Set into a
// feature-snapshot join: VSET no longer samples by stake weight, it reads
// REP and BOND once per round and assembles the fixed-length vector D-GBDT
// scores (spec §9: VSET owns no reputation or bond state of its own, it only
// reads the other arenas' snapshots).
package validators

import (
	"sort"
	"sync"

	"github.com/luxfi/ids"

	"github.com/ippan/dlc/bond"
	"github.com/ippan/dlc/config"
	"github.com/ippan/dlc/reputation"
	"github.com/ippan/dlc/types"
)

// Set tracks which validator ids are currently active (spec §3). Joining
// and leaving happen out of band (governance / bonding events); Set itself
// only records membership, not eligibility — eligibility also depends on
// REP and BOND, checked at selection time.
type Set struct {
	mu     sync.RWMutex
	active map[ids.NodeID]types.RoundID // value = round joined
}

// NewSet returns an empty validator set.
func NewSet() *Set {
	return &Set{active: make(map[ids.NodeID]types.RoundID)}
}

// Add marks id active as of joinedRound. Re-adding an already active id is
// a no-op.
func (s *Set) Add(id ids.NodeID, joinedRound types.RoundID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.active[id]; !ok {
		s.active[id] = joinedRound
	}
}

// Remove drops id from the active set (used when a bond reaches Withdrawn
// or Slashed).
func (s *Set) Remove(id ids.NodeID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.active, id)
}

// Has reports whether id is currently active.
func (s *Set) Has(id ids.NodeID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.active[id]
	return ok
}

// Len returns the number of active validators.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.active)
}

// List returns every active validator id along with the round it joined,
// sorted by id for deterministic iteration (spec §4.7 requires a total
// order downstream; starting from a stable list avoids map-iteration
// nondeterminism leaking into selection).
func (s *Set) List() []Member {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Member, 0, len(s.active))
	for id, joined := range s.active {
		out = append(out, Member{ID: id, JoinedRound: joined})
	}
	sort.Slice(out, func(i, j int) bool {
		return lessID(out[i].ID, out[j].ID)
	})
	return out
}

// Member pairs a validator id with the round it joined the active set.
type Member struct {
	ID          ids.NodeID
	JoinedRound types.RoundID
}

func lessID(a, b ids.NodeID) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// FeatureInputs bundles everything SnapshotFeatures needs per validator for
// one round (spec §4.6). ProposalsThisEpoch/VerificationsThisEpoch and
// LatencyUS come from the round/transport layer, which is why they are
// passed in rather than owned by this package.
type FeatureInputs struct {
	LatencyUS              int64
	ProposalsThisEpoch     int64
	ExpectedProposals      int64
	VerificationsThisEpoch int64
	ExpectedVerifications  int64
	// MaxActiveBond is the largest bond amount among the currently active
	// set, supplied by the caller (it has visibility across all
	// validators; a single validator's snapshot does not). Zero disables
	// stake-weight scoring for the round (spec §4.6: an empty or
	// all-zero bond set yields a neutral score rather than a divide).
	MaxActiveBond uint64
}

// SnapshotFeatures joins REP, BOND, and the supplied per-round inputs into
// the fixed 7-feature vector D-GBDT scores (spec §4.6). Every component is
// scaled into [0, fx.Scale] before being placed in the vector; callers never
// feed raw unscaled units to D-GBDT.
func SnapshotFeatures(id ids.NodeID, round types.RoundID, rep *reputation.Store, bonds *bond.Store, in FeatureInputs) types.FeatureSnapshot {
	var f types.FeatureSnapshot

	b, _ := bonds.Get(id)

	f[types.FeatureUptime] = uptimeScore(in.ProposalsThisEpoch+in.VerificationsThisEpoch, in.ExpectedProposals+in.ExpectedVerifications)
	f[types.FeatureLatency] = latencyScore(in.LatencyUS)
	f[types.FeatureHonesty] = honestyScore(rep.Get(id))
	f[types.FeatureProposalRate] = rateScore(in.ProposalsThisEpoch, in.ExpectedProposals)
	f[types.FeatureVerificationRate] = rateScore(in.VerificationsThisEpoch, in.ExpectedVerifications)
	f[types.FeatureStakeWeight] = stakeWeightScore(b.Amount, in.MaxActiveBond)
	f[types.FeatureAge] = ageScore(round, b.LastChangeRound)

	return f
}

func uptimeScore(observed, expected int64) int64 {
	return rateScore(observed, expected)
}

func rateScore(observed, expected int64) int64 {
	if expected <= 0 {
		return 0
	}
	score := observed * config.Scale / expected
	if score > config.Scale {
		return config.Scale
	}
	if score < 0 {
		return 0
	}
	return score
}

// latencyScore maps observed latency to a score where lower latency scores
// higher: 0us -> Scale, >= 1s -> 0, linear in between.
func latencyScore(latencyUS int64) int64 {
	const ceiling int64 = 1_000_000 // 1 second, in microseconds
	if latencyUS <= 0 {
		return config.Scale
	}
	if latencyUS >= ceiling {
		return 0
	}
	return config.Scale - (latencyUS * config.Scale / ceiling)
}

func honestyScore(rep int64) int64 {
	if rep > config.RepMax {
		return config.Scale
	}
	if rep < config.RepMin {
		return 0
	}
	return rep * config.Scale / config.RepMax
}

func stakeWeightScore(amount, maxActive uint64) int64 {
	if maxActive == 0 {
		return 0
	}
	if amount >= maxActive {
		return config.Scale
	}
	return int64(amount) * config.Scale / int64(maxActive)
}

func ageScore(currentRound, joinedRound types.RoundID) int64 {
	const maturityRounds = types.RoundID(100_000)
	age := currentRound - joinedRound
	if age >= maturityRounds {
		return config.Scale
	}
	if age < 0 {
		return 0
	}
	return int64(age) * config.Scale / int64(maturityRounds)
}
