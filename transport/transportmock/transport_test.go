// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package transportmock

import (
	"context"
	"errors"
	"testing"

	"github.com/luxfi/ids"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ippan/dlc/types"
)

func TestMockTransportGossipBlockRecordsExpectedCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	tp := NewTransport(ctrl)

	block := types.Block{ID: ids.ID{1}}
	tp.EXPECT().GossipBlock(gomock.Any(), block).Return(nil)

	require.NoError(t, tp.GossipBlock(context.Background(), block))
}

func TestMockTransportPropagatesGossipError(t *testing.T) {
	ctrl := gomock.NewController(t)
	tp := NewTransport(ctrl)

	want := errors.New("peer unreachable")
	tp.EXPECT().GossipBlock(gomock.Any(), gomock.Any()).Return(want)

	require.ErrorIs(t, tp.GossipBlock(context.Background(), types.Block{}), want)
}

func TestMockTransportNodeID(t *testing.T) {
	ctrl := gomock.NewController(t)
	tp := NewTransport(ctrl)

	id := ids.NodeID{7}
	tp.EXPECT().NodeID().Return(id)

	require.Equal(t, id, tp.NodeID())
}
