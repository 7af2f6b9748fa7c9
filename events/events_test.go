// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package events

import "testing"

func TestNopSinkAcceptsEveryEvent(t *testing.T) {
	var s Sink = NopSink{}
	s.OnRoundFinalized(RoundFinalized{})
	s.OnValidatorSlashed(ValidatorSlashed{})
	s.OnReputationUpdated(ReputationUpdated{})
	s.OnEmissionDistributed(EmissionDistributed{})
}
