// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package reputation

import (
	"testing"

	"github.com/luxfi/ids"
	"github.com/stretchr/testify/require"

	"github.com/ippan/dlc/config"
)

func TestGetUnknownValidatorReadsFloor(t *testing.T) {
	s := New()
	require.Equal(t, config.RepMin, s.Get(ids.NodeID{1}))
}

func TestApplyClampsToFloor(t *testing.T) {
	s := New()
	id := ids.NodeID{1}
	s.Apply(id, config.RepDeltaDoubleSign)
	require.Equal(t, config.RepMin, s.Get(id))
}

func TestApplyClampsToCeiling(t *testing.T) {
	s := New()
	id := ids.NodeID{1}
	for i := 0; i < 10_000; i++ {
		s.Apply(id, config.RepDeltaProposalFinalized)
	}
	require.Equal(t, config.RepMax, s.Get(id))
}

func TestApplyBatchSettlesAllDeltas(t *testing.T) {
	s := New()
	a, b := ids.NodeID{1}, ids.NodeID{2}
	s.ApplyBatch(map[ids.NodeID]int64{
		a: config.RepDeltaProposalFinalized,
		b: config.RepDeltaMissedProposal,
	})
	require.Equal(t, config.RepDeltaProposalFinalized, s.Get(a))
	require.Equal(t, config.RepMin, s.Get(b))
}

func TestSnapshotIsIndependentCopy(t *testing.T) {
	s := New()
	id := ids.NodeID{1}
	s.ProposalFinalized(id)
	snap := s.Snapshot()
	s.ProposalFinalized(id)
	require.Equal(t, config.RepDeltaProposalFinalized, snap[id])
	require.Equal(t, 2*config.RepDeltaProposalFinalized, s.Get(id))
}
