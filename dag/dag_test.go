// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dag

import (
	"context"
	"testing"

	"github.com/luxfi/ids"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/blake3"

	"github.com/ippan/dlc/choices"
	"github.com/ippan/dlc/hashtimer"
	"github.com/ippan/dlc/types"
)

func hash32(data []byte) [32]byte {
	var out [32]byte
	h := blake3.New()
	h.Write(data)
	h.Sum(out[:0])
	return out
}

func mkBlock(round types.RoundID, creator ids.NodeID, parents []ids.ID, idSeed byte) types.Block {
	parentsRoot := types.ParentsRootOf(hash32, parents)
	var payloadRoot [32]byte
	ht := hashtimer.Construct(hashtimer.RoundID(round), creator, parentsRoot, payloadRoot, nil, uint64(round)*1000, uint64(round)*1000, 1_000_000)

	b := types.Block{
		Creator:     creator,
		Round:       round,
		Parents:     parents,
		PayloadRoot: payloadRoot,
		ParentsRoot: parentsRoot,
		HashTimer:   ht,
	}
	b.ID = ids.ID{idSeed}
	return b
}

func alwaysAssigned(creator ids.NodeID) AssignedProposer {
	return func(types.RoundID) (ids.NodeID, []ids.NodeID, bool) { return creator, nil, true }
}

func assignedWithShadows(primary ids.NodeID, shadows ...ids.NodeID) AssignedProposer {
	return func(types.RoundID) (ids.NodeID, []ids.NodeID, bool) { return primary, shadows, true }
}

func wideWindow() RoundWindow {
	return func(round types.RoundID) (uint64, uint64) {
		return uint64(round) * 1000, uint64(round+1) * 1000
	}
}

func TestInsertRejectsUnknownParent(t *testing.T) {
	d := New(0)
	creator := ids.NodeID{1}
	b := mkBlock(1, creator, []ids.ID{{0xFF}}, 1)
	err := d.Insert(b, nil, alwaysAssigned(creator), wideWindow(), 10_000_000)
	require.ErrorIs(t, err, ErrUnknownParent)
}

func TestInsertRejectsWrongProposer(t *testing.T) {
	d := New(0)
	creator := ids.NodeID{1}
	other := ids.NodeID{2}
	b := mkBlock(1, creator, nil, 1)
	err := d.Insert(b, nil, alwaysAssigned(other), wideWindow(), 10_000_000)
	require.ErrorIs(t, err, ErrWrongProposer)
}

func TestInsertAcceptsShadowAuthoredBlock(t *testing.T) {
	d := New(0)
	primary := ids.NodeID{1}
	shadow := ids.NodeID{2}
	b := mkBlock(1, shadow, nil, 1)
	err := d.Insert(b, nil, assignedWithShadows(primary, shadow), wideWindow(), 10_000_000)
	require.NoError(t, err)
}

func TestInsertRejectsUnassignedCreator(t *testing.T) {
	d := New(0)
	primary := ids.NodeID{1}
	shadow := ids.NodeID{2}
	outsider := ids.NodeID{3}
	b := mkBlock(1, outsider, nil, 1)
	err := d.Insert(b, nil, assignedWithShadows(primary, shadow), wideWindow(), 10_000_000)
	require.ErrorIs(t, err, ErrWrongProposer)
}

func TestInsertRejectsDuplicate(t *testing.T) {
	d := New(0)
	creator := ids.NodeID{1}
	b := mkBlock(1, creator, nil, 1)
	require.NoError(t, d.Insert(b, nil, alwaysAssigned(creator), wideWindow(), 10_000_000))
	err := d.Insert(b, nil, alwaysAssigned(creator), wideWindow(), 10_000_000)
	require.ErrorIs(t, err, ErrDuplicate)
}

func TestTipsUpdateAsChildrenAdmitted(t *testing.T) {
	d := New(0)
	creator := ids.NodeID{1}
	root := mkBlock(1, creator, nil, 1)
	require.NoError(t, d.Insert(root, nil, alwaysAssigned(creator), wideWindow(), 10_000_000))
	require.Equal(t, []ids.ID{root.ID}, d.Tips())

	child := mkBlock(2, creator, []ids.ID{root.ID}, 2)
	require.NoError(t, d.Insert(child, nil, alwaysAssigned(creator), wideWindow(), 10_000_000))
	require.Equal(t, []ids.ID{child.ID}, d.Tips())
}

func TestCanonicalTipPrefersHigherWeight(t *testing.T) {
	d := New(0)
	creator := ids.NodeID{1}
	root := mkBlock(1, creator, nil, 1)
	require.NoError(t, d.Insert(root, nil, alwaysAssigned(creator), wideWindow(), 10_000_000))

	heavy := mkBlock(2, creator, []ids.ID{root.ID}, 2)
	require.NoError(t, d.Insert(heavy, nil, alwaysAssigned(creator), wideWindow(), 10_000_000))
	light := mkBlock(2, creator, []ids.ID{root.ID}, 4)
	require.NoError(t, d.Insert(light, nil, alwaysAssigned(creator), wideWindow(), 10_000_000))

	require.NoError(t, d.Confirm(heavy.ID))
	require.NoError(t, d.Confirm(heavy.ID))

	w, ok := d.Weight(heavy.ID)
	require.True(t, ok)
	require.Equal(t, uint64(3), w)

	tip, ok := d.CanonicalTip()
	require.True(t, ok)
	require.Equal(t, heavy.ID, tip)
}

func TestFinalizeWalksBackToRequestedRound(t *testing.T) {
	d := New(0)
	creator := ids.NodeID{1}
	root := mkBlock(1, creator, nil, 1)
	require.NoError(t, d.Insert(root, nil, alwaysAssigned(creator), wideWindow(), 10_000_000))
	child := mkBlock(2, creator, []ids.ID{root.ID}, 2)
	require.NoError(t, d.Insert(child, nil, alwaysAssigned(creator), wideWindow(), 10_000_000))

	finalized, err := d.Finalize(2)
	require.NoError(t, err)
	require.ElementsMatch(t, []ids.ID{root.ID, child.ID}, finalized)

	tip, ok := d.FinalizedTip()
	require.True(t, ok)
	require.Equal(t, child.ID, tip)
	require.True(t, d.IsFinalized(root.ID))
	require.True(t, d.IsFinalized(child.ID))
}

func TestFinalizeRejectsDeepReorg(t *testing.T) {
	d := New(1)
	creator := ids.NodeID{1}
	root := mkBlock(1, creator, nil, 1)
	require.NoError(t, d.Insert(root, nil, alwaysAssigned(creator), wideWindow(), 10_000_000))
	a := mkBlock(2, creator, []ids.ID{root.ID}, 2)
	require.NoError(t, d.Insert(a, nil, alwaysAssigned(creator), wideWindow(), 10_000_000))
	b := mkBlock(3, creator, []ids.ID{a.ID}, 3)
	require.NoError(t, d.Insert(b, nil, alwaysAssigned(creator), wideWindow(), 10_000_000))
	c := mkBlock(4, creator, []ids.ID{b.ID}, 4)
	require.NoError(t, d.Insert(c, nil, alwaysAssigned(creator), wideWindow(), 10_000_000))

	_, err := d.Finalize(4)
	require.NoError(t, err)

	// A competing chain forking off root at round 2 that, once confirmed
	// heavier than c, would overwrite round 2's already-finalized block
	// (a) more than maxReorgDepth=1 round behind the finalized frontier
	// (round 4).
	rival := mkBlock(2, creator, []ids.ID{root.ID}, 5)
	require.NoError(t, d.Insert(rival, nil, alwaysAssigned(creator), wideWindow(), 10_000_000))
	rivalChild := mkBlock(3, creator, []ids.ID{rival.ID}, 6)
	require.NoError(t, d.Insert(rivalChild, nil, alwaysAssigned(creator), wideWindow(), 10_000_000))
	rivalGrandchild := mkBlock(4, creator, []ids.ID{rivalChild.ID}, 7)
	require.NoError(t, d.Insert(rivalGrandchild, nil, alwaysAssigned(creator), wideWindow(), 10_000_000))
	require.NoError(t, d.Confirm(rivalGrandchild.ID))

	tip, ok := d.CanonicalTip()
	require.True(t, ok)
	require.Equal(t, rivalGrandchild.ID, tip)

	_, err = d.Finalize(2)
	require.ErrorIs(t, err, ErrReorgTooDeep)
}

func TestVerifyBatchPassesValidBlocksConcurrently(t *testing.T) {
	d := New(0)
	creator := ids.NodeID{1}
	root := mkBlock(1, creator, nil, 1)
	require.NoError(t, d.Insert(root, nil, alwaysAssigned(creator), wideWindow(), 10_000_000))

	blocks := []types.Block{
		mkBlock(2, creator, []ids.ID{root.ID}, 2),
		mkBlock(2, creator, []ids.ID{root.ID}, 3),
		mkBlock(2, creator, []ids.ID{root.ID}, 4),
	}
	err := d.VerifyBatch(context.Background(), blocks, alwaysAssigned(creator), wideWindow(), 10_000_000, nil)
	require.NoError(t, err)
}

func TestVerifyBatchRejectsBadProposerAmongGoodBlocks(t *testing.T) {
	d := New(0)
	creator := ids.NodeID{1}
	other := ids.NodeID{2}
	root := mkBlock(1, creator, nil, 1)
	require.NoError(t, d.Insert(root, nil, alwaysAssigned(creator), wideWindow(), 10_000_000))

	blocks := []types.Block{
		mkBlock(2, creator, []ids.ID{root.ID}, 2),
		mkBlock(2, other, []ids.ID{root.ID}, 3),
	}
	err := d.VerifyBatch(context.Background(), blocks, alwaysAssigned(creator), wideWindow(), 10_000_000, nil)
	require.ErrorIs(t, err, ErrWrongProposer)
}

func TestStatusOfReflectsLifecycle(t *testing.T) {
	d := New(0)
	creator := ids.NodeID{1}
	require.Equal(t, choices.Unknown, d.StatusOf(ids.ID{99}))

	root := mkBlock(1, creator, nil, 1)
	require.NoError(t, d.Insert(root, nil, alwaysAssigned(creator), wideWindow(), 10_000_000))
	require.Equal(t, choices.Processing, d.StatusOf(root.ID))

	_, err := d.Finalize(1)
	require.NoError(t, err)
	require.Equal(t, choices.Accepted, d.StatusOf(root.ID))
}

func TestRejectMarksBlockRejectedAndDropsTip(t *testing.T) {
	d := New(0)
	creator := ids.NodeID{1}
	root := mkBlock(1, creator, nil, 1)
	require.NoError(t, d.Insert(root, nil, alwaysAssigned(creator), wideWindow(), 10_000_000))

	require.True(t, d.Reject(root.ID))
	require.Equal(t, choices.Rejected, d.StatusOf(root.ID))
	require.NotContains(t, d.Tips(), root.ID)

	require.False(t, d.Reject(ids.ID{42}))
}
