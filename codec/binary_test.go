// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"testing"

	"github.com/luxfi/ids"
	"github.com/stretchr/testify/require"

	"github.com/ippan/dlc/hashtimer"
	"github.com/ippan/dlc/types"
)

func sampleBlock() types.Block {
	b := types.Block{
		Creator: ids.NodeID{1, 2, 3},
		Round:   7,
		Parents: []ids.ID{{9}, {10}},
		HashTimer: hashtimer.HashTimer{
			Round:  7,
			TimeUS: 1_234_567,
			Nonce:  0,
		},
		Payload: []byte("hello dlc"),
	}
	b.ID = ids.ID{0xAB}
	b.PayloadRoot = [32]byte{0xCD}
	b.ParentsRoot = [32]byte{0xEF}
	b.HashTimer.Digest = [32]byte{0x01}
	b.Signature = [64]byte{0x02}
	return b
}

func TestBlockRoundTrip(t *testing.T) {
	b := sampleBlock()
	data, err := EncodeBlock(b)
	require.NoError(t, err)

	decoded, err := DecodeBlock(data)
	require.NoError(t, err)
	require.Equal(t, b, decoded)
}

func TestDecodeBlockRejectsTrailingBytes(t *testing.T) {
	b := sampleBlock()
	data, err := EncodeBlock(b)
	require.NoError(t, err)

	_, err = DecodeBlock(append(data, 0xFF))
	require.Error(t, err)
}

func TestEncodeBlockRejectsTooManyParents(t *testing.T) {
	b := sampleBlock()
	b.Parents = make([]ids.ID, types.MaxParents+1)
	_, err := EncodeBlock(b)
	require.Error(t, err)
}
