// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storagemock

import (
	"context"
	"testing"

	"github.com/luxfi/ids"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ippan/dlc/types"
)

func TestMockStorageGetBlockRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := NewStorage(ctrl)

	block := types.Block{ID: ids.ID{9}}
	st.EXPECT().GetBlock(gomock.Any(), block.ID).Return(block, true, nil)

	got, ok, err := st.GetBlock(context.Background(), block.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, block, got)
}

func TestMockStorageGetBlockMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := NewStorage(ctrl)

	st.EXPECT().GetBlock(gomock.Any(), gomock.Any()).Return(types.Block{}, false, nil)

	_, ok, err := st.GetBlock(context.Background(), ids.ID{1})
	require.NoError(t, err)
	require.False(t, ok)
}
