// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package validators

import (
	"encoding/binary"

	"github.com/VictoriaMetrics/fastcache"
	"github.com/luxfi/ids"

	"github.com/ippan/dlc/bond"
	"github.com/ippan/dlc/reputation"
	"github.com/ippan/dlc/types"
)

// SnapshotCache memoizes SnapshotFeatures results within a single round so
// repeated lookups (e.g. SEL scoring every candidate, then RE re-reading the
// same snapshot to log an outcome) don't recompute the REP/BOND join. Sized
// via config.Parameters.CacheSizeMB (see SPEC_FULL.md's DOMAIN STACK); a nil
// *SnapshotCache is valid and simply disables caching.
type SnapshotCache struct {
	c *fastcache.Cache
}

// NewSnapshotCache returns a cache bounded to sizeMB megabytes, or nil if
// sizeMB <= 0 (caching disabled).
func NewSnapshotCache(sizeMB int) *SnapshotCache {
	if sizeMB <= 0 {
		return nil
	}
	return &SnapshotCache{c: fastcache.New(sizeMB * 1024 * 1024)}
}

func snapshotCacheKey(round types.RoundID, id ids.NodeID) []byte {
	key := make([]byte, 8+len(id))
	binary.BigEndian.PutUint64(key, uint64(round))
	copy(key[8:], id[:])
	return key
}

// Get returns a previously stored snapshot for (round, id), if present.
func (sc *SnapshotCache) Get(round types.RoundID, id ids.NodeID) (types.FeatureSnapshot, bool) {
	if sc == nil {
		return types.FeatureSnapshot{}, false
	}
	raw, ok := sc.c.HasGet(nil, snapshotCacheKey(round, id))
	if !ok || len(raw) != types.FeatureCount*8 {
		return types.FeatureSnapshot{}, false
	}
	var f types.FeatureSnapshot
	for i := 0; i < types.FeatureCount; i++ {
		f[i] = int64(binary.BigEndian.Uint64(raw[i*8 : i*8+8]))
	}
	return f, true
}

// Put stores a computed snapshot for (round, id).
func (sc *SnapshotCache) Put(round types.RoundID, id ids.NodeID, f types.FeatureSnapshot) {
	if sc == nil {
		return
	}
	raw := make([]byte, types.FeatureCount*8)
	for i := 0; i < types.FeatureCount; i++ {
		binary.BigEndian.PutUint64(raw[i*8:i*8+8], uint64(f[i]))
	}
	sc.c.Set(snapshotCacheKey(round, id), raw)
}

// SnapshotFeaturesCached behaves like SnapshotFeatures but consults cache
// first and populates it on a miss. A nil cache always misses.
func SnapshotFeaturesCached(cache *SnapshotCache, id ids.NodeID, round types.RoundID, rep *reputation.Store, bonds *bond.Store, in FeatureInputs) types.FeatureSnapshot {
	if f, ok := cache.Get(round, id); ok {
		return f
	}
	f := SnapshotFeatures(id, round, rep, bonds, in)
	cache.Put(round, id, f)
	return f
}
