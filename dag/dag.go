// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package dag implements the BlockDAG insertion, tip tracking, canonical-tip
// selection, and bounded finalization spec §4.8/§4.9 describe. Generalized
// from the teacher's generic DAG (blocks keyed by a bare [32]byte id, no
// validation) into a validating DAG whose Insert enforces parent existence,
// HashTimer validity, proposer identity, and signature before a block is
// ever admitted (spec §4.8 I1-I4), and whose Finalize enforces a bounded
// reorg depth (spec §4.9 I2).
package dag

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"sync"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/luxfi/ids"
	luxlog "github.com/luxfi/log"
	"golang.org/x/sync/errgroup"

	"github.com/ippan/dlc/choices"
	"github.com/ippan/dlc/hashtimer"
	dlclog "github.com/ippan/dlc/log"
	"github.com/ippan/dlc/types"
)

// Errors returned by Insert and Finalize.
var (
	ErrUnknownParent = errors.New("dag: unknown parent")
	ErrBadSignature  = errors.New("dag: signature invalid")
	ErrWrongProposer = errors.New("dag: creator is not the round's assigned proposer")
	ErrBadHashTimer  = errors.New("dag: hashtimer invalid")
	ErrReorgTooDeep  = errors.New("dag: finalization would reorg past max depth")
	ErrDuplicate     = errors.New("dag: block already known")
)

// node is the DAG's internal bookkeeping for one admitted block.
type node struct {
	block         types.Block
	confirmations uint64 // shadow verifiers that confirmed this block (spec §4.9 weight = 1 + confirmations)
	children      []ids.ID
	status        choices.Status
}

func (n *node) weight() uint64 {
	return 1 + n.confirmations
}

// DAG is the validating, weighted BlockDAG (spec §3/§4.8). Finalization is
// bounded to maxReorgDepth rounds: finalizing a chain that would overwrite
// an already-finalized round more than maxReorgDepth rounds behind the
// current finalized frontier fails instead of silently reorging past it.
type DAG struct {
	mu               sync.RWMutex
	nodes            map[ids.ID]*node
	tips             map[ids.ID]struct{}
	finalizedByRound map[types.RoundID]ids.ID
	lastFinalized    types.RoundID
	haveFinalized    bool
	maxReorgDepth    int
	log              luxlog.Logger
}

// New returns an empty DAG with the given reorg-depth bound (spec §6
// max_reorg_depth), logging to dlclog.NewNoOpLogger by default.
func New(maxReorgDepth int) *DAG {
	return &DAG{
		nodes:            make(map[ids.ID]*node),
		tips:             make(map[ids.ID]struct{}),
		finalizedByRound: make(map[types.RoundID]ids.ID),
		maxReorgDepth:    maxReorgDepth,
		log:              dlclog.NewNoOpLogger(),
	}
}

// SetLogger installs logger as the DAG's structured logger, replacing the
// no-op default.
func (d *DAG) SetLogger(logger luxlog.Logger) {
	if logger == nil {
		logger = dlclog.NewNoOpLogger()
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.log = logger
}

// AssignedProposer resolves the set of creators round will accept a
// proposal from: the primary and every shadow verifier (spec §4.8 Insert
// "creator is primary or shadow for block.round", §4.9 Collecting "accepts
// proposals from primary and shadows"). Callers supply it (typically built
// from the round's VerifierSet) since DAG itself holds no selection state.
type AssignedProposer func(round types.RoundID) (primary ids.NodeID, shadows []ids.NodeID, ok bool)

// RoundWindow resolves the [start_us, end_us) window for round, used to
// validate the embedded HashTimer (spec §4.2).
type RoundWindow func(round types.RoundID) (startUS, endUS uint64)

// Insert validates and admits b. It checks, in order: not already known,
// every parent already admitted, HashTimer.Verify against the round's
// window, creator is the round's primary or one of its shadows, and the
// signature over the HashTimer digest (spec §4.8 I1-I4). pubKey may be nil
// in tests that exercise DAG logic independent of signature verification.
func (d *DAG) Insert(b types.Block, pubKey *secp256k1.PublicKey, proposer AssignedProposer, window RoundWindow, clockTolUS uint64) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.nodes[b.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, b.ID)
	}
	for _, p := range b.Parents {
		if _, ok := d.nodes[p]; !ok {
			d.log.Warn("block rejected: unknown parent", "block", b.ID, "parent", p)
			return fmt.Errorf("%w: %s", ErrUnknownParent, p)
		}
	}

	if err := verifyOne(b, proposer, window, clockTolUS, pubKey); err != nil {
		d.log.Warn("block rejected", "block", b.ID, "round", b.Round, "error", err)
		return err
	}

	d.admit(b)
	return nil
}

// PubKeyResolver returns the secp256k1 public key that should have signed
// b, or nil to skip signature verification for it.
type PubKeyResolver func(b types.Block) *secp256k1.PublicKey

// verifyOne runs Insert's stateless checks (HashTimer, proposer identity,
// signature) against b without touching DAG state, so it is safe to call
// concurrently across a batch (spec §5: HashTimer and signature checks fan
// out across a worker pool, results reordered before mutation).
func verifyOne(b types.Block, proposer AssignedProposer, window RoundWindow, clockTolUS uint64, pubKey *secp256k1.PublicKey) error {
	startUS, endUS := window(b.Round)
	htRound := hashtimer.RoundID(b.Round)
	if err := hashtimer.Verify(b.HashTimer, htRound, b.Creator, b.ParentsRoot, b.PayloadRoot, startUS, endUS, clockTolUS); err != nil {
		return fmt.Errorf("%w: %v", ErrBadHashTimer, err)
	}
	if primary, shadows, ok := proposer(b.Round); ok && !isAssigned(b.Creator, primary, shadows) {
		return fmt.Errorf("%w: %s is neither primary nor shadow for round %d", ErrWrongProposer, b.Creator, b.Round)
	}
	if pubKey != nil {
		digest := sha256.Sum256(b.HashTimer.Digest[:])
		sig, err := ecdsa.ParseDERSignature(b.Signature[:])
		if err != nil || !sig.Verify(digest[:], pubKey) {
			return ErrBadSignature
		}
	}
	return nil
}

// isAssigned reports whether creator is the round's primary or one of its
// shadow verifiers.
func isAssigned(creator, primary ids.NodeID, shadows []ids.NodeID) bool {
	if creator == primary {
		return true
	}
	for _, s := range shadows {
		if creator == s {
			return true
		}
	}
	return false
}

// VerifyBatch validates every block in blocks concurrently (bounded by
// ctx's cancellation, not by a fixed worker count — errgroup schedules one
// goroutine per block, which is appropriate for the batch sizes a single
// round produces) and returns the first error encountered, if any. It does
// not mutate the DAG or admit any block; callers still call Insert, in
// their chosen order, for each block that passed verification.
func (d *DAG) VerifyBatch(ctx context.Context, blocks []types.Block, proposer AssignedProposer, window RoundWindow, clockTolUS uint64, pubKeyOf PubKeyResolver) error {
	d.mu.RLock()
	logger := d.log
	d.mu.RUnlock()

	g, _ := errgroup.WithContext(ctx)
	for _, b := range blocks {
		b := b
		g.Go(func() error {
			var pk *secp256k1.PublicKey
			if pubKeyOf != nil {
				pk = pubKeyOf(b)
			}
			if err := verifyOne(b, proposer, window, clockTolUS, pk); err != nil {
				logger.Warn("batch verification rejected block", "block", b.ID, "round", b.Round, "error", err)
				return fmt.Errorf("block %s: %w", b.ID, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func (d *DAG) admit(b types.Block) {
	n := &node{block: b, status: choices.Processing}
	d.nodes[b.ID] = n
	d.tips[b.ID] = struct{}{}

	for _, p := range b.Parents {
		delete(d.tips, p)
		if parent, ok := d.nodes[p]; ok {
			parent.children = append(parent.children, b.ID)
		}
	}
}

// Confirm records that a shadow verifier confirmed id as the correct tip
// candidate for its round, incrementing its weight (spec §4.9: weight = 1 +
// shadow confirmations). Confirmations arrive independently of DAG edges —
// a shadow confirms the primary's block without itself becoming a child.
func (d *DAG) Confirm(id ids.ID) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	n, ok := d.nodes[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownParent, id)
	}
	n.confirmations++
	return nil
}

// Weight returns id's current weight (1 + confirmations), if known.
func (d *DAG) Weight(id ids.ID) (uint64, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	n, ok := d.nodes[id]
	if !ok {
		return 0, false
	}
	return n.weight(), true
}

// Get returns the admitted block for id, if known.
func (d *DAG) Get(id ids.ID) (types.Block, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	n, ok := d.nodes[id]
	if !ok {
		return types.Block{}, false
	}
	return n.block, true
}

// Tips returns the current tip set: blocks with no admitted child.
func (d *DAG) Tips() []ids.ID {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]ids.ID, 0, len(d.tips))
	for id := range d.tips {
		out = append(out, id)
	}
	return out
}

// CanonicalTip returns the tip with the greatest weight, breaking ties by
// the tip's HashTimer order key, so every node computes the same canonical
// tip given the same DAG state (spec §4.9 I1).
func (d *DAG) CanonicalTip() (ids.ID, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.canonicalTipLocked()
}

func (d *DAG) canonicalTipLocked() (ids.ID, bool) {
	var best ids.ID
	var bestNode *node
	found := false

	for id := range d.tips {
		n := d.nodes[id]
		switch {
		case !found:
			best, bestNode, found = id, n, true
		case n.weight() > bestNode.weight():
			best, bestNode = id, n
		case n.weight() == bestNode.weight():
			bestKey := hashtimer.KeyFor(bestNode.block.HashTimer, bestNode.block.Creator)
			nKey := hashtimer.KeyFor(n.block.HashTimer, n.block.Creator)
			if nKey.Less(bestKey) {
				best, bestNode = id, n
			}
		}
	}
	return best, found
}

// Finalize walks the canonical tip's primary-parent chain (parents[0] by
// convention) back to the DAG's root and marks every block on that path at
// or before round finalized, including ancestors that an earlier call did
// not reach. If the path disagrees with an already-finalized round more than
// maxReorgDepth rounds behind the current finalized frontier, Finalize
// rejects the whole call rather than silently discarding history (spec §4.9
// I2).
func (d *DAG) Finalize(round types.RoundID) ([]ids.ID, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	tip, ok := d.canonicalTipLocked()
	if !ok {
		return nil, nil
	}

	path := d.pathToRound(tip, round)
	if len(path) == 0 {
		return nil, nil
	}

	if d.maxReorgDepth > 0 {
		for _, id := range path {
			n := d.nodes[id]
			existing, already := d.finalizedByRound[n.block.Round]
			if already && existing != id {
				depth := int(d.lastFinalized - n.block.Round)
				if depth < 0 {
					depth = 0
				}
				if depth > d.maxReorgDepth {
					d.log.Error("finalize rejected: reorg too deep", "round", n.block.Round, "depth", depth, "max", d.maxReorgDepth)
					return nil, fmt.Errorf("%w: round %d depth %d > %d", ErrReorgTooDeep, n.block.Round, depth, d.maxReorgDepth)
				}
			}
		}
	}

	var newlyFinalized []ids.ID
	for _, id := range path {
		n := d.nodes[id]
		if existing, ok := d.finalizedByRound[n.block.Round]; ok && existing == id {
			continue
		}
		d.finalizedByRound[n.block.Round] = id
		n.status = choices.Accepted
		newlyFinalized = append(newlyFinalized, id)
		if !d.haveFinalized || n.block.Round > d.lastFinalized {
			d.lastFinalized = n.block.Round
			d.haveFinalized = true
		}
	}
	return newlyFinalized, nil
}

// Reject marks id as rejected (spec §4.8: a block implicated by
// InvalidBlockEvidence is dropped from contention rather than merely
// penalizing its proposer's reputation). It removes id from the tip set, if
// present, so CanonicalTip never selects a rejected block. Reject reports
// false if id is not known to the DAG.
func (d *DAG) Reject(id ids.ID) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	n, ok := d.nodes[id]
	if !ok {
		return false
	}
	n.status = choices.Rejected
	delete(d.tips, id)
	return true
}

// StatusOf returns id's acceptance status: choices.Unknown if id has never
// been admitted, choices.Accepted once it is the finalized block for its
// round, choices.Rejected once evidence has invalidated it, and
// choices.Processing otherwise.
func (d *DAG) StatusOf(id ids.ID) choices.Status {
	d.mu.RLock()
	defer d.mu.RUnlock()
	n, ok := d.nodes[id]
	if !ok {
		return choices.Unknown
	}
	return n.status
}

// pathToRound walks the primary-parent (parents[0]) chain back from tip to
// the DAG's root and returns, oldest first, the blocks on it at or before
// round.
func (d *DAG) pathToRound(tip ids.ID, round types.RoundID) []ids.ID {
	var path []ids.ID
	cur := tip
	for {
		n, ok := d.nodes[cur]
		if !ok {
			break
		}
		if n.block.Round <= round {
			path = append([]ids.ID{cur}, path...)
		}
		if len(n.block.Parents) == 0 {
			break
		}
		cur = n.block.Parents[0]
	}
	return path
}

// FinalizedTip returns the id finalized at the highest round, if any.
func (d *DAG) FinalizedTip() (ids.ID, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if !d.haveFinalized {
		return ids.ID{}, false
	}
	return d.finalizedByRound[d.lastFinalized], true
}

// IsFinalized reports whether id is the finalized block for its round.
func (d *DAG) IsFinalized(id ids.ID) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	n, ok := d.nodes[id]
	if !ok {
		return false
	}
	existing, ok := d.finalizedByRound[n.block.Round]
	return ok && existing == id
}
