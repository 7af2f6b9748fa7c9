// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapReturnsNilForNilError(t *testing.T) {
	require.NoError(t, Wrap("PutBlock", "abc", nil))
}

func TestWrapPreservesUnderlyingErrorForUnwrap(t *testing.T) {
	underlying := errors.New("disk full")
	err := Wrap("PutBlock", "abc", underlying)

	require.ErrorIs(t, err, underlying)
	require.Contains(t, err.Error(), "PutBlock")
	require.Contains(t, err.Error(), "abc")
}
