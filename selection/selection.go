// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package selection implements deterministic verifier selection (spec
// §4.7, SEL): score every eligible candidate with D-GBDT, sort by
// (score desc, HashTimer order key, validator id) for a total order with no
// randomness, then split into one primary plus a bounded number of shadows.
package selection

import (
	"sort"

	"github.com/luxfi/ids"

	"github.com/ippan/dlc/bond"
	"github.com/ippan/dlc/config"
	"github.com/ippan/dlc/dgbdt"
	"github.com/ippan/dlc/hashtimer"
	"github.com/ippan/dlc/reputation"
	"github.com/ippan/dlc/types"
	"github.com/ippan/dlc/validators"
)

// MinShadows and MaxShadows bound the configured shadow-verifier count
// (spec §4.7 I1): k = clamp(configured_k, MinShadows, MaxShadows).
const (
	MinShadows = 3
	MaxShadows = 5
)

// Candidate is one validator entering selection, along with the tie-break
// key its most recent accepted block contributed (spec §4.7 I2). A
// validator with no accepted block this epoch carries the zero OrderKey,
// which is the minimum under Less, so it sorts first among equal scores.
type Candidate struct {
	ID       ids.NodeID
	Features types.FeatureSnapshot
	TieBreak hashtimer.OrderKey
}

// Eligible filters the active set down to candidates that meet the minimum
// reputation and bond-active requirements (spec §4.7 I3): reputation must be
// >= MinReputationScore and, if RequireValidatorBond is set, the bond must
// be Active.
func Eligible(members []validators.Member, rep *reputation.Store, bonds *bond.Store, params config.Parameters) []ids.NodeID {
	out := make([]ids.NodeID, 0, len(members))
	for _, m := range members {
		if rep.Get(m.ID) < params.MinReputationScore {
			continue
		}
		if params.RequireValidatorBond {
			b, ok := bonds.Get(m.ID)
			if !ok || b.Status.Kind != types.BondActive {
				continue
			}
		}
		out = append(out, m.ID)
	}
	return out
}

// Score runs m against every candidate's feature snapshot, returning scored
// results in the same order as candidates.
func Score(m dgbdt.Model, candidates []Candidate) []types.ScoredValidator {
	out := make([]types.ScoredValidator, len(candidates))
	for i, c := range candidates {
		out[i] = types.ScoredValidator{ID: c.ID, Score: dgbdt.Score(m, c.Features)}
	}
	return out
}

// Order sorts candidates into the deterministic total order spec §4.7
// requires: score descending, then HashTimer order key ascending, then
// validator id ascending as the final tiebreak. It never shuffles or
// samples randomly.
func Order(candidates []Candidate, scores []types.ScoredValidator) []types.ScoredValidator {
	scoreByID := make(map[ids.NodeID]int64, len(scores))
	for _, s := range scores {
		scoreByID[s.ID] = s.Score
	}
	tieByID := make(map[ids.NodeID]hashtimer.OrderKey, len(candidates))
	for _, c := range candidates {
		tieByID[c.ID] = c.TieBreak
	}

	ordered := make([]types.ScoredValidator, len(scores))
	copy(ordered, scores)

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		ta, tb := tieByID[a.ID], tieByID[b.ID]
		if ta != tb {
			return ta.Less(tb)
		}
		return lessID(a.ID, b.ID)
	})
	return ordered
}

func lessID(a, b ids.NodeID) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// Select runs the full selection pipeline and returns the resulting
// VerifierSet for round: one primary (the top of the ordered list) plus
// clamp(shadowCount, MinShadows, MaxShadows) shadows, truncated if fewer
// candidates are available than the configured quorum (spec §4.7 I4).
func Select(round types.RoundID, m dgbdt.Model, candidates []Candidate, shadowCount int) types.VerifierSet {
	k := shadowCount
	if k < MinShadows {
		k = MinShadows
	}
	if k > MaxShadows {
		k = MaxShadows
	}

	scores := Score(m, candidates)
	ordered := Order(candidates, scores)

	vs := types.VerifierSet{Round: round, ScoredOrder: ordered}
	if len(ordered) == 0 {
		return vs
	}
	vs.Primary = ordered[0].ID

	shadowLimit := k
	if shadowLimit > len(ordered)-1 {
		shadowLimit = len(ordered) - 1
	}
	vs.Shadows = make([]ids.NodeID, shadowLimit)
	for i := 0; i < shadowLimit; i++ {
		vs.Shadows[i] = ordered[i+1].ID
	}
	return vs
}
