// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"github.com/luxfi/ids"

	"github.com/ippan/dlc/hashtimer"
)

// MaxParents bounds Block.Parents (spec §3, configurable 2..16 via
// config.Parameters.MaxParents; this is the hard ceiling the wire format
// allows regardless of configuration).
const MaxParents = 16

// Block is a single block proposed by a primary or shadow verifier during
// its round (spec §3). Blocks are immutable once constructed; ID is a
// content hash of the remaining fields.
type Block struct {
	ID          ids.ID
	Creator     ids.NodeID
	Round       RoundID
	Parents     []ids.ID
	PayloadRoot [32]byte
	ParentsRoot [32]byte
	HashTimer   hashtimer.HashTimer
	Signature   [64]byte
	Payload     []byte
}

// ParentsRootOf computes the digest committing to an ordered parent list,
// used both when constructing a Block and when verifying one that arrived
// over the wire.
func ParentsRootOf(hash func([]byte) [32]byte, parents []ids.ID) [32]byte {
	buf := make([]byte, 0, len(parents)*32)
	for _, p := range parents {
		buf = append(buf, p[:]...)
	}
	return hash(buf)
}
