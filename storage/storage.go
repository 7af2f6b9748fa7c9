// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package storage defines the persistence collaborator boundary (spec §1,
// §6). The core defines Storage but never implements it; a concrete
// store (badger, pebble, a SQL adapter) is supplied by the embedding
// application.
package storage

import (
	"context"

	"github.com/luxfi/ids"

	"github.com/ippan/dlc/dgbdt"
	"github.com/ippan/dlc/types"
)

// Storage is the durable-state surface for blocks, validators, emission
// state and the scoring model. The round engine and DAG keep their state in
// memory and do not call it.
type Storage interface {
	PutBlock(ctx context.Context, block types.Block) error
	GetBlock(ctx context.Context, id ids.ID) (types.Block, bool, error)
	ListTips(ctx context.Context) ([]ids.ID, error)

	PutValidator(ctx context.Context, record types.ValidatorRecord) error
	GetValidator(ctx context.Context, id ids.NodeID) (types.ValidatorRecord, bool, error)
	ListActiveValidators(ctx context.Context) ([]types.ValidatorRecord, error)

	PutEmissionState(ctx context.Context, state types.EmissionState) error
	GetEmissionState(ctx context.Context) (types.EmissionState, bool, error)

	PutModel(ctx context.Context, model dgbdt.Model) error
	GetModel(ctx context.Context) (dgbdt.Model, bool, error)
}
