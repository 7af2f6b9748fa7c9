// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import "github.com/luxfi/ids"

// FeatureCount bounds FeatureSnapshot's fixed-length vector (spec §3: N in
// [4, 8]). This module uses the full 7-feature vector defined in spec §4.6.
const FeatureCount = 7

const (
	FeatureUptime           = 0
	FeatureLatency          = 1
	FeatureHonesty          = 2
	FeatureProposalRate     = 3
	FeatureVerificationRate = 4
	FeatureStakeWeight      = 5
	FeatureAge              = 6
)

// FeatureSnapshot is the fixed-length feature vector fed to D-GBDT
// inference (spec §3/§4.6). Every entry is an i64 micro-unit in
// [0, fx.Scale]. It is immutable for the round it was taken in.
type FeatureSnapshot [FeatureCount]int64

// ValidatorRecord is the per-validator state VSET/REP/BOND collectively
// describe (spec §3). Individual components (reputation, bond) own their
// own keyed maps (spec §9 arena pattern); ValidatorRecord is the read-only
// join of those maps taken at snapshot time, not a source of truth itself.
type ValidatorRecord struct {
	ID          ids.NodeID
	Bond        Bond
	Reputation  int64
	Features    FeatureSnapshot
	Active      bool
	JoinedRound RoundID
}

// VerifierSet is the deterministic selection result for one round (spec
// §3/§4.7): one primary plus k shadows, with the full scored order that
// produced them.
type VerifierSet struct {
	Round       RoundID
	Primary     ids.NodeID
	Shadows     []ids.NodeID
	ScoredOrder []ScoredValidator
}

// ScoredValidator pairs a candidate with its D-GBDT score, in the order SEL
// sorted them.
type ScoredValidator struct {
	ID    ids.NodeID
	Score int64
}

// IsVerifier reports whether id is the primary or one of the shadows.
func (vs VerifierSet) IsVerifier(id ids.NodeID) bool {
	if vs.Primary == id {
		return true
	}
	for _, s := range vs.Shadows {
		if s == id {
			return true
		}
	}
	return false
}

// IsShadow reports whether id is specifically a shadow (not the primary).
func (vs VerifierSet) IsShadow(id ids.NodeID) bool {
	for _, s := range vs.Shadows {
		if s == id {
			return true
		}
	}
	return false
}
