// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import "github.com/cockroachdb/errors"

// OpError wraps a failure from a Storage method with the operation and key
// that failed, using cockroachdb/errors so the original collaborator error
// (a driver timeout, a disk-full condition, whatever the concrete Storage
// implementation returns) survives as a secondary error a caller can still
// unwrap with errors.Is/As, instead of being flattened into a string (spec
// §7: Operational faults must not lose their causal chain, unlike the
// Structural/Economic/Evidence/Configuration classes, which compare with
// plain stdlib sentinels).
type OpError struct {
	Op  string
	Key string
	Err error
}

func (e *OpError) Error() string {
	return errors.Wrapf(e.Err, "storage: %s %s", e.Op, e.Key).Error()
}

func (e *OpError) Unwrap() error { return e.Err }

// Wrap builds an OpError for op against key, or returns nil if err is nil.
func Wrap(op, key string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Key: key, Err: err}
}
