// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

// Mainnet returns production parameters: strict round timing, a full shadow
// set, and the canonical emission schedule (21M IPN cap, ~630.72M round
// halving cadence at 200ms rounds ≈ 4 years).
func Mainnet() Parameters {
	return Parameters{
		TemporalFinalityMS:    200,
		ShadowVerifierCount:   5,
		MinReputationScore:    2500,
		RequireValidatorBond:  true,
		MinValidatorBond:      MinBond,
		UnstakeLockRounds:     1_440,
		R0:                    100,
		HalvingRounds:         630_720_000,
		SupplyCap:             21_000_000_000_000,
		FeeCapBps:             1000,
		RequireModel:          true,
		MaxParents:            8,
		MaxReorgDepth:         2,
		FinalizationLagRounds: 2,
	}
}

// Testnet relaxes bonding and shrinks the shadow set for smaller validator
// pools while keeping the rest of Mainnet's schedule.
func Testnet() Parameters {
	p := Mainnet()
	p.ShadowVerifierCount = 3
	p.MinReputationScore = 1000
	p.RequireValidatorBond = false
	return p
}

// Local is a single-node/dev preset: fastest round window, minimal shadow
// count, and no model/bond requirement so a node can be brought up without
// external fixtures.
func Local() Parameters {
	return Parameters{
		TemporalFinalityMS:    100,
		ShadowVerifierCount:   3,
		MinReputationScore:    0,
		RequireValidatorBond:  false,
		MinValidatorBond:      MinBond,
		UnstakeLockRounds:     10,
		R0:                    100,
		HalvingRounds:         1_000,
		SupplyCap:             21_000_000_000_000,
		FeeCapBps:             1000,
		RequireModel:          false,
		MaxParents:            4,
		MaxReorgDepth:         2,
		FinalizationLagRounds: 2,
	}
}

// PresetNames returns all available preset names.
func PresetNames() []string {
	return []string{"mainnet", "testnet", "local"}
}

// ByName returns the preset Parameters for name, or false if unknown.
func ByName(name string) (Parameters, bool) {
	switch name {
	case "mainnet":
		return Mainnet(), true
	case "testnet":
		return Testnet(), true
	case "local":
		return Local(), true
	default:
		return Parameters{}, false
	}
}
