// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/ippan/dlc/dgbdt"
)

// EncodeModel renders m as canonical JSON: object keys sorted
// lexicographically at every level, integers only, no whitespace, so two
// processes given the same model always produce byte-identical output.
func EncodeModel(m dgbdt.Model) ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("codec: marshal model: %w", err)
	}
	// encoding/json emits struct fields in declaration order but map keys in
	// sorted order, so a pass through a generic value sorts every key.
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var generic interface{}
	if err := dec.Decode(&generic); err != nil {
		return nil, fmt.Errorf("codec: canonicalize model: %w", err)
	}
	data, err = json.Marshal(generic)
	if err != nil {
		return nil, fmt.Errorf("codec: canonicalize model: %w", err)
	}
	return data, nil
}

// DecodeModel parses the canonical JSON form produced by EncodeModel.
func DecodeModel(data []byte) (dgbdt.Model, error) {
	var m dgbdt.Model
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		return m, fmt.Errorf("codec: unmarshal model: %w", err)
	}
	return m, nil
}

// ModelHash returns the BLAKE3 digest of m's canonical encoding (spec §4.3
// model_hash), the identifier of a scoring model.
func ModelHash(m dgbdt.Model) ([32]byte, error) {
	var out [32]byte
	data, err := EncodeModel(m)
	if err != nil {
		return out, err
	}
	h := blake3.New()
	h.Write(data)
	copy(out[:], h.Sum(nil))
	return out, nil
}
