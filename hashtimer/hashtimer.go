// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package hashtimer implements the HashTimer deterministic time anchor
// (spec §4.2): it binds a round, a creator, parent/payload digests, and a
// bounded clock sample into a single order key every node recomputes
// identically. Hashing uses BLAKE3 (github.com/zeebo/blake3), the same
// primitive the D-GBDT model canonicalization uses (spec §4.10), so the
// module has one hash function end to end.
package hashtimer

import (
	"encoding/binary"
	"errors"
	"sort"

	"github.com/luxfi/ids"
	"github.com/zeebo/blake3"
)

// Errors returned by Verify.
var (
	ErrOutOfWindow    = errors.New("hashtimer: time_us out of round window")
	ErrDigestMismatch = errors.New("hashtimer: digest mismatch")
)

// RoundID mirrors types.RoundID without importing the types package, to
// keep hashtimer a leaf dependency (FX ← HT ← ...).
type RoundID uint64

// HashTimer is the deterministic time anchor described in spec §3.
type HashTimer struct {
	Round  RoundID
	TimeUS uint64
	Nonce  uint64
	Digest [32]byte
}

// domainTag prefixes every digest input, matching the teacher convention of
// domain-separating hash inputs by a short ASCII tag.
var domainTag = []byte("ht")

// Construct builds a HashTimer for round, anchored to the median of
// peerSamples plus the local clockSampleUS, clamped to
// [lastRoundEndUS, lastRoundEndUS+maxRoundWindowUS].
//
// Nonce is always 0: per spec §4.2 and the Open Questions in §9, the nonce
// is a pure domain separator, not a proof-of-work prefix requirement. It is
// retained as a field only so a future protocol revision could introduce
// one without changing the wire shape.
func Construct(round RoundID, creator ids.NodeID, parentsRoot, payloadRoot [32]byte, peerSamples []uint64, clockSampleUS, lastRoundEndUS, maxRoundWindowUS uint64) HashTimer {
	timeUS := median(append(append([]uint64{}, peerSamples...), clockSampleUS))
	if timeUS < lastRoundEndUS {
		timeUS = lastRoundEndUS
	}
	if ceil := lastRoundEndUS + maxRoundWindowUS; timeUS > ceil {
		timeUS = ceil
	}

	const nonce uint64 = 0
	digest := computeDigest(round, creator, parentsRoot, payloadRoot, timeUS, nonce)

	return HashTimer{Round: round, TimeUS: timeUS, Nonce: nonce, Digest: digest}
}

// median returns the median of samples; samples is sorted in place. Ties
// for an even count take the lower of the two central values so the result
// is a total function of the multiset, never an average that could
// introduce rounding differences across architectures.
func median(samples []uint64) uint64 {
	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })
	n := len(samples)
	if n == 0 {
		return 0
	}
	return samples[(n-1)/2]
}

func computeDigest(round RoundID, creator ids.NodeID, parentsRoot, payloadRoot [32]byte, timeUS, nonce uint64) [32]byte {
	h := blake3.New()
	h.Write(domainTag)

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(round))
	h.Write(buf[:])

	h.Write(creator[:])
	h.Write(parentsRoot[:])
	h.Write(payloadRoot[:])

	binary.BigEndian.PutUint64(buf[:], timeUS)
	h.Write(buf[:])

	binary.BigEndian.PutUint64(buf[:], nonce)
	h.Write(buf[:])

	var out [32]byte
	h.Sum(out[:0])
	return out
}

// Verify recomputes ht's digest from the block's fields and checks that
// ht.TimeUS falls within [roundStartUS-clockTolUS, roundEndUS+clockTolUS].
func Verify(ht HashTimer, round RoundID, creator ids.NodeID, parentsRoot, payloadRoot [32]byte, roundStartUS, roundEndUS, clockTolUS uint64) error {
	want := computeDigest(round, creator, parentsRoot, payloadRoot, ht.TimeUS, ht.Nonce)
	if want != ht.Digest {
		return ErrDigestMismatch
	}

	lo := uint64(0)
	if roundStartUS > clockTolUS {
		lo = roundStartUS - clockTolUS
	}
	hi := roundEndUS + clockTolUS
	if ht.TimeUS < lo || ht.TimeUS > hi {
		return ErrOutOfWindow
	}
	return nil
}

// OrderKey is the total order key for a HashTimer produced by a given
// creator: (round, digest, creator) lexicographic, per spec §4.2. Ties are
// impossible in practice (digest commits creator), but the full tuple keeps
// the comparison total and explicit rather than relying on that assumption.
type OrderKey struct {
	Round   RoundID
	Digest  [32]byte
	Creator ids.NodeID
}

// KeyFor builds the OrderKey for ht as produced by creator.
func KeyFor(ht HashTimer, creator ids.NodeID) OrderKey {
	return OrderKey{Round: ht.Round, Digest: ht.Digest, Creator: creator}
}

// Less implements the lexicographic comparison (a.round, a.digest,
// a.creator) vs (b.round, b.digest, b.creator).
func (k OrderKey) Less(other OrderKey) bool {
	if k.Round != other.Round {
		return k.Round < other.Round
	}
	if cmp := compareBytes(k.Digest[:], other.Digest[:]); cmp != 0 {
		return cmp < 0
	}
	return compareBytes(k.Creator[:], other.Creator[:]) < 0
}

func compareBytes(a, b []byte) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
