// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package codec provides the canonical wire encodings spec §6 requires:
// a fixed-width, big-endian, length-prefixed binary form for Block, and a
// canonical-JSON form (sorted keys, integers only) for D-GBDT models.
// Evidence has no binary encoding in this package. Generalized from the teacher's JSON-only codec.go into a
// binary codec because blocks are consensus-critical and must round-trip
// byte-for-byte (spec R1), not merely structurally.
package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/luxfi/ids"

	"github.com/ippan/dlc/hashtimer"
	"github.com/ippan/dlc/types"
)

// CodecVersion tags the wire format so future revisions can coexist.
type CodecVersion uint16

// CurrentVersion is the only version this build understands.
const CurrentVersion CodecVersion = 0

func putUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func putUint64(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	buf.Write(b[:])
}

func readUint32(r *bytes.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

func readUint64(r *bytes.Reader) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b[:]), nil
}

// EncodeBlock serializes b into the canonical binary form: version, id,
// creator, round, parent count + parents, payload/parents roots, hashtimer
// (round/time_us/nonce/digest), signature, and a length-prefixed payload.
func EncodeBlock(b types.Block) ([]byte, error) {
	if len(b.Parents) > types.MaxParents {
		return nil, fmt.Errorf("codec: too many parents: %d > %d", len(b.Parents), types.MaxParents)
	}

	var buf bytes.Buffer
	putUint32(&buf, uint32(CurrentVersion))
	buf.Write(b.ID[:])
	buf.Write(b.Creator[:])
	putUint64(&buf, uint64(b.Round))

	putUint32(&buf, uint32(len(b.Parents)))
	for _, p := range b.Parents {
		buf.Write(p[:])
	}

	buf.Write(b.PayloadRoot[:])
	buf.Write(b.ParentsRoot[:])

	putUint64(&buf, uint64(b.HashTimer.Round))
	putUint64(&buf, b.HashTimer.TimeUS)
	putUint64(&buf, b.HashTimer.Nonce)
	buf.Write(b.HashTimer.Digest[:])

	buf.Write(b.Signature[:])

	putUint32(&buf, uint32(len(b.Payload)))
	buf.Write(b.Payload)

	return buf.Bytes(), nil
}

// DecodeBlock parses the canonical binary form produced by EncodeBlock.
func DecodeBlock(data []byte) (types.Block, error) {
	r := bytes.NewReader(data)
	var b types.Block

	version, err := readUint32(r)
	if err != nil {
		return b, fmt.Errorf("codec: read version: %w", err)
	}
	if CodecVersion(version) != CurrentVersion {
		return b, fmt.Errorf("codec: unsupported version %d", version)
	}

	if _, err := io.ReadFull(r, b.ID[:]); err != nil {
		return b, fmt.Errorf("codec: read id: %w", err)
	}
	if _, err := io.ReadFull(r, b.Creator[:]); err != nil {
		return b, fmt.Errorf("codec: read creator: %w", err)
	}
	round, err := readUint64(r)
	if err != nil {
		return b, fmt.Errorf("codec: read round: %w", err)
	}
	b.Round = types.RoundID(round)

	parentCount, err := readUint32(r)
	if err != nil {
		return b, fmt.Errorf("codec: read parent count: %w", err)
	}
	if parentCount > types.MaxParents {
		return b, fmt.Errorf("codec: parent count %d exceeds max %d", parentCount, types.MaxParents)
	}
	b.Parents = make([]ids.ID, parentCount)
	for i := range b.Parents {
		if _, err := io.ReadFull(r, b.Parents[i][:]); err != nil {
			return b, fmt.Errorf("codec: read parent %d: %w", i, err)
		}
	}

	if _, err := io.ReadFull(r, b.PayloadRoot[:]); err != nil {
		return b, fmt.Errorf("codec: read payload root: %w", err)
	}
	if _, err := io.ReadFull(r, b.ParentsRoot[:]); err != nil {
		return b, fmt.Errorf("codec: read parents root: %w", err)
	}

	htRound, err := readUint64(r)
	if err != nil {
		return b, fmt.Errorf("codec: read hashtimer round: %w", err)
	}
	timeUS, err := readUint64(r)
	if err != nil {
		return b, fmt.Errorf("codec: read hashtimer time_us: %w", err)
	}
	nonce, err := readUint64(r)
	if err != nil {
		return b, fmt.Errorf("codec: read hashtimer nonce: %w", err)
	}
	b.HashTimer = hashtimer.HashTimer{Round: hashtimer.RoundID(htRound), TimeUS: timeUS, Nonce: nonce}
	if _, err := io.ReadFull(r, b.HashTimer.Digest[:]); err != nil {
		return b, fmt.Errorf("codec: read hashtimer digest: %w", err)
	}

	if _, err := io.ReadFull(r, b.Signature[:]); err != nil {
		return b, fmt.Errorf("codec: read signature: %w", err)
	}

	payloadLen, err := readUint32(r)
	if err != nil {
		return b, fmt.Errorf("codec: read payload length: %w", err)
	}
	b.Payload = make([]byte, payloadLen)
	if payloadLen > 0 {
		if _, err := io.ReadFull(r, b.Payload); err != nil {
			return b, fmt.Errorf("codec: read payload: %w", err)
		}
	}

	if r.Len() != 0 {
		return b, fmt.Errorf("codec: %d trailing bytes", r.Len())
	}

	return b, nil
}
