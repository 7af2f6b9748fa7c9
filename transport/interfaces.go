// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package transport defines the networking collaborator boundary (spec §1,
// §6): the core depends on these interfaces but never implements them.
// Generalized from the teacher's generic vote-request/response Transport
// into the block/evidence/clock-sample surface the round engine needs.
package transport

import (
	"context"

	"github.com/luxfi/ids"

	"github.com/ippan/dlc/types"
)

// BlockHandler processes a block gossiped by a peer.
type BlockHandler func(ctx context.Context, from ids.NodeID, block types.Block)

// EvidenceHandler processes evidence gossiped by a peer.
type EvidenceHandler func(ctx context.Context, from ids.NodeID, evidence types.Evidence)

// ClockSample is one peer's observed wall-clock reading, used by HashTimer
// construction to compute a median time anchor (spec §4.2).
type ClockSample struct {
	From   ids.NodeID
	TimeUS uint64
}

// Transport is the networking surface the round engine depends on. The
// core never implements it — a concrete transport (libp2p, QUIC, or the
// node's existing gossip layer) is supplied by the embedding application.
type Transport interface {
	// NodeID returns the local node's id.
	NodeID() ids.NodeID

	// GossipBlock broadcasts a newly constructed block to the network.
	GossipBlock(ctx context.Context, block types.Block) error

	// OnBlock registers the handler invoked for each block received from a
	// peer.
	OnBlock(handler BlockHandler)

	// GossipEvidence broadcasts misbehavior evidence (spec §4.4/§4.5).
	GossipEvidence(ctx context.Context, evidence types.Evidence) error

	// OnEvidence registers the handler invoked for each piece of evidence
	// received from a peer.
	OnEvidence(handler EvidenceHandler)

	// ClockSamples returns the most recent clock sample from every
	// currently connected peer, used to construct the next HashTimer
	// (spec §4.2).
	ClockSamples(ctx context.Context) ([]ClockSample, error)
}
