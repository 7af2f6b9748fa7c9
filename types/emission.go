// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

// EmissionState tracks the running total emitted against the protocol's
// supply cap, plus the current halving schedule parameters and the pool of
// undistributed rewards (spec §3/§4.10).
type EmissionState struct {
	CumulativeEmitted uint64
	SupplyCap         uint64
	R0                uint64
	HalvingRounds     uint64
	Pool              uint64
}
