// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config holds the environment/configuration keys recognized by the
// DLC core (spec §6): round timing, verifier-set sizing, reputation and bond
// floors, the emission schedule, and DAG/model knobs. It never reaches into
// transport or storage — those are collaborator concerns.
package config

import "time"

// Parameters is the full set of tunables the core recognizes at startup.
// Field names mirror the environment keys in spec.md §6.
type Parameters struct {
	// Round timing.
	TemporalFinalityMS int `json:"temporal_finality_ms" yaml:"temporal_finality_ms"`

	// Verifier selection.
	ShadowVerifierCount int   `json:"shadow_verifier_count" yaml:"shadow_verifier_count"`
	MinReputationScore  int64 `json:"min_reputation_score" yaml:"min_reputation_score"`

	// Bonding.
	RequireValidatorBond bool   `json:"require_validator_bond" yaml:"require_validator_bond"`
	MinValidatorBond     uint64 `json:"min_validator_bond" yaml:"min_validator_bond"`
	UnstakeLockRounds    uint64 `json:"unstake_lock_rounds" yaml:"unstake_lock_rounds"`

	// Emission.
	R0             uint64 `json:"r0" yaml:"r0"`
	HalvingRounds  uint64 `json:"halving_rounds" yaml:"halving_rounds"`
	SupplyCap      uint64 `json:"supply_cap" yaml:"supply_cap"`
	FeeCapBps      int    `json:"fee_cap_bps" yaml:"fee_cap_bps"`

	// Model.
	ModelPath    string `json:"model_path" yaml:"model_path"`
	RequireModel bool   `json:"require_model" yaml:"require_model"`

	// DAG.
	MaxParents            int `json:"max_parents" yaml:"max_parents"`
	MaxReorgDepth         int `json:"max_reorg_depth" yaml:"max_reorg_depth"`
	FinalizationLagRounds int `json:"finalization_lag_rounds" yaml:"finalization_lag_rounds"`

	// CacheSizeMB is the size to pass to validators.NewSnapshotCache for
	// VSET's feature-snapshot cache; zero or less disables caching (see
	// SPEC_FULL.md's DOMAIN STACK section).
	CacheSizeMB int `json:"cache_size_mb" yaml:"cache_size_mb"`
}

// RoundWindow returns the [start_us, end_us) duration implied by
// TemporalFinalityMS.
func (p Parameters) RoundWindow() time.Duration {
	return time.Duration(p.TemporalFinalityMS) * time.Millisecond
}

// MinBond is the protocol floor below which a bond may not remain Active
// (spec §4.5). It is distinct from the operator-configured MinValidatorBond,
// which may only raise the floor, never lower it below MinBond.
const MinBond uint64 = 10_000_000 // 10 IPN in micro-IPN units.

// MaxBond is the default protocol ceiling on a single validator's bond.
const MaxBond uint64 = 10_000_000_000_000 // 10M IPN in micro-IPN units.

// Slash basis points (spec §4.5).
const (
	SlashBpsDoubleSign   = 5000
	SlashBpsInvalidBlock = 1000
	SlashBpsDowntime     = 100
)

// Reputation deltas (spec §4.4).
const (
	RepDeltaProposalFinalized   int64 = 50
	RepDeltaShadowContribution  int64 = 20
	RepDeltaMissedProposal      int64 = -200
	RepDeltaInvalidProposal     int64 = -500
	RepDeltaDowntimePerRound    int64 = -100
	RepDeltaDoubleSign          int64 = -10_000
	RepMax                      int64 = 100_000
	RepMin                      int64 = 0
	DowntimeGraceRounds               = 3
)

// FX scale (spec §4.1).
const Scale int64 = 1_000_000

// ClockTolUS is the HashTimer clock-skew tolerance in microseconds.
const ClockTolUS uint64 = 100_000
