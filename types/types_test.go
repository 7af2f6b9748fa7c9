// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"testing"

	"github.com/luxfi/ids"
	"github.com/stretchr/testify/require"
)

func TestVerifierSetMembership(t *testing.T) {
	primary := ids.NodeID{1}
	shadow := ids.NodeID{2}
	other := ids.NodeID{3}

	vs := VerifierSet{Primary: primary, Shadows: []ids.NodeID{shadow}}
	require.True(t, vs.IsVerifier(primary))
	require.True(t, vs.IsVerifier(shadow))
	require.False(t, vs.IsVerifier(other))
	require.False(t, vs.IsShadow(primary))
	require.True(t, vs.IsShadow(shadow))
}

func TestEvidenceKindDispatch(t *testing.T) {
	var e Evidence = DoubleSignEvidence{ValidatorID: ids.NodeID{1}, RoundID: 5}
	require.Equal(t, EvidenceDoubleSign, e.Kind())
	require.Equal(t, RoundID(5), e.Round())

	e = InvalidBlockEvidence{ValidatorID: ids.NodeID{2}, RoundID: 6, Reason: "bad root"}
	require.Equal(t, EvidenceInvalidBlock, e.Kind())

	e = DowntimeEvidence{ValidatorID: ids.NodeID{3}, RoundID: 7, RoundsMissed: 4}
	require.Equal(t, EvidenceDowntime, e.Kind())
}

func TestBondStatusString(t *testing.T) {
	require.Equal(t, "Active", BondActive.String())
	require.Equal(t, "Unstaking", BondUnstaking.String())
	require.Equal(t, "Slashed", BondSlashed.String())
}

func TestRoundStateString(t *testing.T) {
	require.Equal(t, "Open", RoundOpen.String())
	require.Equal(t, "Finalized", RoundFinalized.String())
}

func TestNewRoundStartsOpen(t *testing.T) {
	r := NewRound(1, RoundWindow{StartUS: 0, EndUS: 200_000})
	require.Equal(t, RoundOpen, r.State)
	require.Empty(t, r.Proposals)
	require.Nil(t, r.FinalizedTip)
}
