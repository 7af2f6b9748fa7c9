// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import "errors"

// Validation errors for Parameters.
var (
	ErrTemporalFinalityOutOfRange = errors.New("temporal_finality_ms must be in [100, 250]")
	ErrShadowCountOutOfRange      = errors.New("shadow_verifier_count must be in [3, 5]")
	ErrMinReputationOutOfRange    = errors.New("min_reputation_score must be in [0, 100000]")
	ErrMinValidatorBondTooLow     = errors.New("min_validator_bond must be >= MinBond")
	ErrUnstakeLockRoundsTooLow    = errors.New("unstake_lock_rounds must be > 0")
	ErrR0TooLow                   = errors.New("r0 must be > 0")
	ErrHalvingRoundsTooLow        = errors.New("halving_rounds must be > 0")
	ErrSupplyCapTooLow            = errors.New("supply_cap must be > 0")
	ErrFeeCapBpsOutOfRange        = errors.New("fee_cap_bps must be in [0, 10000]")
	ErrModelPathEmpty             = errors.New("model_path must be set when require_model is true")
	ErrMaxParentsOutOfRange       = errors.New("max_parents must be in [2, 16]")
	ErrMaxReorgDepthTooLow        = errors.New("max_reorg_depth must be >= 1")
	ErrFinalizationLagTooLow      = errors.New("finalization_lag_rounds must be >= 1")
	ErrParametersInvalid          = errors.New("invalid consensus parameters")
)
