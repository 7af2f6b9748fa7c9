// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"strings"
)

// ValidationMode determines how strict validation should be.
type ValidationMode int

const (
	// StrictMode enforces every constraint as an error; used on Mainnet.
	StrictMode ValidationMode = iota
	// SoftMode downgrades non-safety-critical constraints to warnings;
	// used for local development.
	SoftMode
)

// ValidationError describes one violated constraint.
type ValidationError struct {
	Field      string
	Value      interface{}
	Constraint string
	Severity   string // "error" or "warning"
}

func (ve ValidationError) Error() string {
	return fmt.Sprintf("%s: %s=%v violates constraint: %s", ve.Severity, ve.Field, ve.Value, ve.Constraint)
}

// ValidationResult aggregates all errors and warnings found by a Validator
// pass over a Parameters value.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
	Valid    bool
}

// Validator validates Parameters before the core is allowed to start.
// Configuration/Model errors are fatal per spec §7: the core refuses to run.
type Validator struct {
	mode ValidationMode
}

// NewValidator creates a Validator in StrictMode.
func NewValidator() *Validator {
	return &Validator{mode: StrictMode}
}

// WithMode sets the validation mode and returns the Validator for chaining.
func (v *Validator) WithMode(mode ValidationMode) *Validator {
	v.mode = mode
	return v
}

// Validate returns a single combined error if p fails validation, nil
// otherwise.
func (v *Validator) Validate(p Parameters) error {
	result := v.ValidateDetailed(p)
	if !result.Valid {
		msgs := make([]string, 0, len(result.Errors))
		for _, e := range result.Errors {
			msgs = append(msgs, e.Error())
		}
		return fmt.Errorf("%w:\n%s", ErrParametersInvalid, strings.Join(msgs, "\n"))
	}
	return nil
}

// ValidateDetailed runs every constraint and returns the full result,
// including warnings, without short-circuiting on the first failure.
func (v *Validator) ValidateDetailed(p Parameters) *ValidationResult {
	result := &ValidationResult{Valid: true}

	v.check(result, p.TemporalFinalityMS < 100 || p.TemporalFinalityMS > 250,
		"temporal_finality_ms", p.TemporalFinalityMS, "must be in [100, 250]", "error")
	v.check(result, p.ShadowVerifierCount < 3 || p.ShadowVerifierCount > 5,
		"shadow_verifier_count", p.ShadowVerifierCount, "must be in [3, 5]", "error")
	v.check(result, p.MinReputationScore < 0 || p.MinReputationScore > RepMax,
		"min_reputation_score", p.MinReputationScore, "must be in [0, 100000]", "error")
	v.check(result, p.RequireValidatorBond && p.MinValidatorBond < MinBond,
		"min_validator_bond", p.MinValidatorBond, "must be >= protocol MinBond", "error")
	v.check(result, p.UnstakeLockRounds == 0,
		"unstake_lock_rounds", p.UnstakeLockRounds, "must be > 0", "warning")
	v.check(result, p.R0 == 0,
		"r0", p.R0, "must be > 0", "error")
	v.check(result, p.HalvingRounds == 0,
		"halving_rounds", p.HalvingRounds, "must be > 0", "error")
	v.check(result, p.SupplyCap == 0,
		"supply_cap", p.SupplyCap, "must be > 0", "error")
	v.check(result, p.FeeCapBps < 0 || p.FeeCapBps > 10_000,
		"fee_cap_bps", p.FeeCapBps, "must be in [0, 10000]", "error")
	v.check(result, p.RequireModel && p.ModelPath == "",
		"model_path", p.ModelPath, "must be set when require_model is true", "error")
	v.check(result, p.MaxParents < 2 || p.MaxParents > 16,
		"max_parents", p.MaxParents, "must be in [2, 16]", "error")
	v.check(result, p.MaxReorgDepth < 1,
		"max_reorg_depth", p.MaxReorgDepth, "must be >= 1", "error")
	v.check(result, p.FinalizationLagRounds < 1,
		"finalization_lag_rounds", p.FinalizationLagRounds, "must be >= 1", "error")

	return result
}

// check records a violated constraint. severity is the classification under
// StrictMode; a "warning"-severity violation is downgraded from Errors to
// Warnings only when the Validator is in SoftMode — "error"-severity
// constraints (safety-critical: bond floors, supply cap, reorg depth, …)
// are fatal in both modes.
func (v *Validator) check(result *ValidationResult, violated bool, field string, value interface{}, constraint, severity string) {
	if !violated {
		return
	}
	if severity == "warning" && v.mode == SoftMode {
		result.Warnings = append(result.Warnings, ValidationError{Field: field, Value: value, Constraint: constraint, Severity: severity})
		return
	}
	result.Errors = append(result.Errors, ValidationError{Field: field, Value: value, Constraint: constraint, Severity: severity})
	result.Valid = false
}
