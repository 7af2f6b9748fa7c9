// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import "github.com/luxfi/ids"

// EvidenceKind discriminates the Evidence variants (spec §3). Evidence is
// modeled as a tagged variant rather than a shared base class (spec §9):
// each concrete type carries only the fields relevant to its kind, and
// Kind() is the single dispatch point callers need.
type EvidenceKind uint8

const (
	EvidenceDoubleSign EvidenceKind = iota
	EvidenceInvalidBlock
	EvidenceDowntime
)

func (k EvidenceKind) String() string {
	switch k {
	case EvidenceDoubleSign:
		return "DoubleSign"
	case EvidenceInvalidBlock:
		return "InvalidBlock"
	case EvidenceDowntime:
		return "Downtime"
	default:
		return "Unknown"
	}
}

// Evidence is satisfied by DoubleSignEvidence, InvalidBlockEvidence, and
// DowntimeEvidence.
type Evidence interface {
	Kind() EvidenceKind
	Validator() ids.NodeID
	Round() RoundID
}

// DoubleSignEvidence proves a validator proposed two distinct blocks for the
// same round.
type DoubleSignEvidence struct {
	ValidatorID ids.NodeID
	RoundID     RoundID
	BlockA      Block
	BlockB      Block
}

func (e DoubleSignEvidence) Kind() EvidenceKind   { return EvidenceDoubleSign }
func (e DoubleSignEvidence) Validator() ids.NodeID { return e.ValidatorID }
func (e DoubleSignEvidence) Round() RoundID        { return e.RoundID }

// InvalidBlockEvidence proves a submitted block failed structural or
// signature validation.
type InvalidBlockEvidence struct {
	ValidatorID ids.NodeID
	RoundID     RoundID
	BlockID     ids.ID
	Reason      string
}

func (e InvalidBlockEvidence) Kind() EvidenceKind   { return EvidenceInvalidBlock }
func (e InvalidBlockEvidence) Validator() ids.NodeID { return e.ValidatorID }
func (e InvalidBlockEvidence) Round() RoundID        { return e.RoundID }

// DowntimeEvidence records a validator's absence across consecutive rounds.
type DowntimeEvidence struct {
	ValidatorID  ids.NodeID
	RoundID      RoundID
	RoundsMissed uint64
}

func (e DowntimeEvidence) Kind() EvidenceKind   { return EvidenceDowntime }
func (e DowntimeEvidence) Validator() ids.NodeID { return e.ValidatorID }
func (e DowntimeEvidence) Round() RoundID        { return e.RoundID }
