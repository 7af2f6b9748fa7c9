// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package round implements the round engine (spec §4.9, RE): the state
// machine that drives one round from Open through Finalized, wiring
// together SEL's verifier selection, DAG's insertion and finalization,
// REP/BOND's settlement, and EMIT's issuance into a single per-round
// pipeline.
package round

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/luxfi/ids"
	luxlog "github.com/luxfi/log"

	"github.com/ippan/dlc/bond"
	"github.com/ippan/dlc/config"
	"github.com/ippan/dlc/dag"
	"github.com/ippan/dlc/dgbdt"
	"github.com/ippan/dlc/emission"
	"github.com/ippan/dlc/events"
	"github.com/ippan/dlc/hashtimer"
	dlclog "github.com/ippan/dlc/log"
	"github.com/ippan/dlc/metrics"
	"github.com/ippan/dlc/reputation"
	"github.com/ippan/dlc/selection"
	"github.com/ippan/dlc/types"
	"github.com/ippan/dlc/validators"
)

// Engine ties REP, BOND, VSET, SEL, the DAG, and EMIT into the per-round
// pipeline spec §4.9 describes. It holds no network or storage state of
// its own and does not call transport.Transport or storage.Storage; the
// embedding application moves data between those collaborators and the
// Engine.
type Engine struct {
	Params config.Parameters
	DAG    *dag.DAG
	Rep    *reputation.Store
	Bonds  *bond.Store
	VSet   *validators.Set
	Model  dgbdt.Model
	Sink   events.Sink
	Log    luxlog.Logger

	// Metrics is optional; a nil Metrics disables Prometheus recording
	// without requiring callers to construct a no-op collector set.
	Metrics *metrics.ConsensusMetrics

	Emission types.EmissionState

	// proposals tracks each round's first-seen block per creator, so
	// ObserveProposal can detect a second, conflicting proposal from the
	// same creator in the same round (spec §4.9 Collecting: "duplicates by
	// same creator in same round are recorded as DoubleSign evidence").
	proposals map[types.RoundID]map[ids.NodeID]types.Block
}

// SetMetrics installs m as the Engine's Prometheus collector set. Passing
// nil disables metrics recording.
func (e *Engine) SetMetrics(m *metrics.ConsensusMetrics) {
	e.Metrics = m
}

// NewEngine constructs an Engine from its collaborating stores. A nil Sink
// is replaced with events.NopSink and a nil Logger with dlclog.NewNoOpLogger.
func NewEngine(params config.Parameters, d *dag.DAG, rep *reputation.Store, bonds *bond.Store, vset *validators.Set, model dgbdt.Model, emissionState types.EmissionState, sink events.Sink, logger luxlog.Logger) *Engine {
	if sink == nil {
		sink = events.NopSink{}
	}
	if logger == nil {
		logger = dlclog.NewNoOpLogger()
	}
	return &Engine{
		Params:    params,
		DAG:       d,
		Rep:       rep,
		Bonds:     bonds,
		VSet:      vset,
		Model:     model,
		Sink:      sink,
		Log:       logger,
		Emission:  emissionState,
		proposals: make(map[types.RoundID]map[ids.NodeID]types.Block),
	}
}

// ObserveProposal records b as round.Creator's proposal for the Collecting
// phase (spec §4.9). If b is the first proposal seen from its creator this
// round, it returns ok=false. If a distinct block already arrived from the
// same creator in the same round, it returns the DoubleSignEvidence pairing
// the two blocks, ok=true — the caller is expected to feed this straight
// into ProcessEvidence. A repeat of the exact same block is not a
// double-sign and returns ok=false.
func (e *Engine) ObserveProposal(b types.Block) (types.DoubleSignEvidence, bool) {
	if e.proposals == nil {
		e.proposals = make(map[types.RoundID]map[ids.NodeID]types.Block)
	}
	byCreator, ok := e.proposals[b.Round]
	if !ok {
		byCreator = make(map[ids.NodeID]types.Block)
		e.proposals[b.Round] = byCreator
	}
	first, seen := byCreator[b.Creator]
	if !seen {
		byCreator[b.Creator] = b
		return types.DoubleSignEvidence{}, false
	}
	if first.ID == b.ID {
		return types.DoubleSignEvidence{}, false
	}
	return types.DoubleSignEvidence{ValidatorID: b.Creator, RoundID: b.Round, BlockA: first, BlockB: b}, true
}

// SelectVerifiers runs SEL for round: it reads the active set, filters to
// eligible candidates (spec §4.7 I3), scores them with the installed
// D-GBDT model, and returns the resulting VerifierSet (spec §4.6/§4.7).
// featuresOf supplies each candidate's feature snapshot (built by the
// caller via validators.SnapshotFeatures, which needs per-round inputs
// this package does not own) and tieBreakOf supplies the HashTimer order
// key from each candidate's most recent accepted block.
func (e *Engine) SelectVerifiers(round types.RoundID, featuresOf func(ids.NodeID) types.FeatureSnapshot, tieBreakOf func(ids.NodeID) hashtimer.OrderKey) types.VerifierSet {
	members := e.VSet.List()
	eligible := selection.Eligible(members, e.Rep, e.Bonds, e.Params)

	candidates := make([]selection.Candidate, len(eligible))
	for i, id := range eligible {
		candidates[i] = selection.Candidate{
			ID:       id,
			Features: featuresOf(id),
			TieBreak: tieBreakOf(id),
		}
	}

	return selection.Select(round, e.Model, candidates, e.Params.ShadowVerifierCount)
}

// AssignedProposer builds a dag.AssignedProposer from a VerifierSet: it
// accepts proposals from vs.Primary and any member of vs.Shadows for
// vs.Round, and rejects every other round as unassigned.
func AssignedProposer(vs types.VerifierSet) dag.AssignedProposer {
	return func(round types.RoundID) (ids.NodeID, []ids.NodeID, bool) {
		if round != vs.Round {
			return ids.NodeID{}, nil, false
		}
		return vs.Primary, vs.Shadows, true
	}
}

// Outcome summarizes what CloseRound did, for logging and for the caller to
// relay to storage.
type Outcome struct {
	Round        types.RoundID
	FinalizedTip ids.ID
	Finalized    bool
	// NewlyFinalized lists every block id that crossed into the finalized
	// set as a result of this call, in round order. It has more than one
	// entry when Finalize backfilled rounds skipped by the previous call,
	// and is empty when the round closed with no canonical tip.
	NewlyFinalized []ids.ID
	Payouts        map[ids.NodeID]uint64
	Pooled         uint64
	Issued         uint64
}

// ProcessEvidence applies REP/BOND consequences for one piece of evidence
// (spec §4.4/§4.5) and emits the corresponding events. It is idempotent
// with respect to double application only insofar as the caller does not
// resubmit the same evidence twice — RE itself keeps no evidence log.
func (e *Engine) ProcessEvidence(round types.RoundID, ev types.Evidence) error {
	validator := ev.Validator()
	switch ev.Kind() {
	case types.EvidenceDoubleSign:
		e.Rep.DoubleSign(validator)
		amount, err := e.Bonds.Slash(validator, round, config.SlashBpsDoubleSign)
		if err != nil {
			return fmt.Errorf("round: slash double-sign for %s: %w", validator, err)
		}
		e.VSet.Remove(validator)
		e.Log.Warn("validator slashed for double-sign", "validator", validator, "round", round, "amount", amount)
		if e.Metrics != nil {
			e.Metrics.SlashesByReason.WithLabelValues(ev.Kind().String()).Inc()
		}
		e.Sink.OnValidatorSlashed(events.ValidatorSlashed{
			ID: uuid.New(), Validator: validator, Round: round, Reason: ev.Kind(), Amount: amount,
		})
	case types.EvidenceInvalidBlock:
		newScore := e.Rep.InvalidProposal(validator)
		if ib, ok := ev.(types.InvalidBlockEvidence); ok {
			if e.DAG.Reject(ib.BlockID) {
				e.Log.Warn("block rejected by evidence", "block", ib.BlockID, "validator", validator, "round", round)
			}
		}
		e.Sink.OnReputationUpdated(events.ReputationUpdated{
			ID: uuid.New(), Validator: validator, Round: round, Delta: config.RepDeltaInvalidProposal, NewScore: newScore,
		})
	case types.EvidenceDowntime:
		newScore := e.Rep.DowntimeRound(validator)
		e.Sink.OnReputationUpdated(events.ReputationUpdated{
			ID: uuid.New(), Validator: validator, Round: round, Delta: config.RepDeltaDowntimePerRound, NewScore: newScore,
		})
	}
	return nil
}

// CloseRound finalizes round's canonical tip (if one exists), settles REP
// for the accepted proposer and confirming shadows, and runs EMIT to split
// the round's issuance across contributions (spec §4.9/§4.10). It is the
// single entry point RE's Closing state invokes before transitioning to
// Finalized.
func (e *Engine) CloseRound(round types.RoundID, primary ids.NodeID, shadows []ids.NodeID) (Outcome, error) {
	out := Outcome{Round: round}

	// Each shadow verifier corroborates the primary's canonical tip before
	// fork-choice runs, so CanonicalTip's weight-based tie-break (spec §4.9
	// weight = 1 + shadow confirmations) reflects real shadow participation.
	if tip, ok := e.DAG.CanonicalTip(); ok {
		for range shadows {
			if err := e.DAG.Confirm(tip); err != nil {
				e.Log.Warn("shadow confirmation failed", "round", round, "tip", tip, "error", err)
			}
		}
	}

	finalized, err := e.DAG.Finalize(round)
	if err != nil {
		e.Log.Warn("round finalize rejected", "round", round, "error", err)
		return out, fmt.Errorf("round: finalize: %w", err)
	}
	out.NewlyFinalized = finalized
	tip, hasTip := e.DAG.FinalizedTip()
	out.Finalized = hasTip
	out.FinalizedTip = tip
	if hasTip {
		e.Log.Info("round finalized", "round", round, "tip", tip, "backfilled", len(finalized))
		if e.Metrics != nil {
			e.Metrics.RoundsFinalized.Inc()
		}
	} else {
		e.Log.Debug("round closed with no canonical tip", "round", round)
		if e.Metrics != nil {
			e.Metrics.RoundsEmpty.Inc()
		}
	}

	if hasTip {
		newScore := e.Rep.ProposalFinalized(primary)
		e.Sink.OnReputationUpdated(events.ReputationUpdated{
			ID: uuid.New(), Validator: primary, Round: round, Delta: config.RepDeltaProposalFinalized, NewScore: newScore,
		})
		for _, s := range shadows {
			newScore := e.Rep.ShadowContribution(s)
			e.Sink.OnReputationUpdated(events.ReputationUpdated{
				ID: uuid.New(), Validator: s, Round: round, Delta: config.RepDeltaShadowContribution, NewScore: newScore,
			})
		}
	}

	contributions := make([]emission.Contribution, 0, 1+len(shadows))
	if hasTip {
		contributions = append(contributions, emission.Contribution{ID: primary, Primary: true, Blocks: 1})
		for _, s := range shadows {
			contributions = append(contributions, emission.Contribution{ID: s, Primary: false, Blocks: 1})
		}
	}

	nextState, issued := emission.Apply(e.Emission, round)
	payouts, pooled, err := emission.Distribute(issued, contributions)
	if err != nil {
		return out, fmt.Errorf("round: distribute emission: %w", err)
	}
	nextState.Pool += pooled
	e.Emission = nextState

	out.Payouts = payouts
	out.Pooled = pooled
	out.Issued = issued

	delete(e.proposals, round)

	if e.Metrics != nil {
		e.Metrics.EmissionPerRound.Set(float64(issued))
	}

	if hasTip {
		e.Sink.OnRoundFinalized(events.RoundFinalized{ID: uuid.New(), Round: round, FinalizedTip: tip})
	}
	e.Sink.OnEmissionDistributed(events.EmissionDistributed{
		ID: uuid.New(), Round: round, Issued: issued, Pooled: pooled, Payouts: payouts,
	})

	return out, nil
}
