// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPresetsValidateInStrictMode(t *testing.T) {
	v := NewValidator()
	for _, name := range PresetNames() {
		p, ok := ByName(name)
		require.True(t, ok, name)
		result := v.ValidateDetailed(p)
		require.Truef(t, result.Valid, "%s: %+v", name, result.Errors)
	}
}

func TestValidatorRejectsOutOfRangeShadowCount(t *testing.T) {
	p := Mainnet()
	p.ShadowVerifierCount = 1
	err := NewValidator().Validate(p)
	require.ErrorIs(t, err, ErrParametersInvalid)
}

func TestSoftModeDowngradesWarnings(t *testing.T) {
	p := Local()
	p.UnstakeLockRounds = 0

	strict := NewValidator().ValidateDetailed(p)
	require.False(t, strict.Valid)

	soft := NewValidator().WithMode(SoftMode).ValidateDetailed(p)
	require.True(t, soft.Valid)
	require.Len(t, soft.Warnings, 1)
}

func TestByNameUnknown(t *testing.T) {
	_, ok := ByName("nonexistent")
	require.False(t, ok)
}
