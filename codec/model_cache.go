// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"github.com/dgraph-io/ristretto/v2"
	"github.com/zeebo/blake3"

	"github.com/ippan/dlc/dgbdt"
)

// ModelCache memoizes DecodeModel by the BLAKE3 hash of its raw input bytes,
// so a node that re-receives the same installed model across many rounds
// pays the JSON-decode and structural-validation cost once (spec §4.3: the
// model only changes on governance action, not per round).
type ModelCache struct {
	cache *ristretto.Cache[[32]byte, dgbdt.Model]
}

// NewModelCache returns a ModelCache bounded to roughly maxCostBytes of
// held model data (ristretto's approximate LFU eviction, not a hard cap).
func NewModelCache(maxCostBytes int64) (*ModelCache, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[[32]byte, dgbdt.Model]{
		NumCounters: maxCostBytes / 8,
		MaxCost:     maxCostBytes,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &ModelCache{cache: cache}, nil
}

// DecodeModel returns the cached Model for data if one was previously
// decoded, otherwise it decodes, validates, caches, and returns it.
func (c *ModelCache) DecodeModel(data []byte) (dgbdt.Model, error) {
	key := blake3.Sum256(data)
	if m, ok := c.cache.Get(key); ok {
		return m, nil
	}
	m, err := DecodeModel(data)
	if err != nil {
		return m, err
	}
	if err := m.Validate(); err != nil {
		return dgbdt.Model{}, err
	}
	c.cache.Set(key, m, int64(len(data)))
	c.cache.Wait()
	return m, nil
}

// Close releases the cache's background goroutines.
func (c *ModelCache) Close() {
	c.cache.Close()
}
