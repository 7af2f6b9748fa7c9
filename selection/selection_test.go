// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package selection

import (
	"testing"

	"github.com/luxfi/ids"
	"github.com/stretchr/testify/require"

	"github.com/ippan/dlc/bond"
	"github.com/ippan/dlc/config"
	"github.com/ippan/dlc/dgbdt"
	"github.com/ippan/dlc/hashtimer"
	"github.com/ippan/dlc/reputation"
	"github.com/ippan/dlc/types"
	"github.com/ippan/dlc/validators"
)

func identityModel() dgbdt.Model {
	return dgbdt.Model{
		LearningRate: 1_000_000,
		Trees: []dgbdt.Tree{{Nodes: []dgbdt.Node{
			{Left: -1, Right: -1, Value: 0},
		}}},
	}
}

func TestEligibleFiltersByReputationAndBond(t *testing.T) {
	rep := reputation.New()
	bonds := bond.New()
	params := config.Parameters{MinReputationScore: 100, RequireValidatorBond: true}

	low, high, noBond := ids.NodeID{1}, ids.NodeID{2}, ids.NodeID{3}
	rep.Apply(low, 50)
	rep.Apply(high, 200)
	rep.Apply(noBond, 200)
	require.NoError(t, bonds.CreateBond(high, config.MinBond, 0))

	members := []validators.Member{{ID: low}, {ID: high}, {ID: noBond}}
	eligible := Eligible(members, rep, bonds, params)
	require.Equal(t, []ids.NodeID{high}, eligible)
}

func TestOrderSortsByScoreThenTieBreakThenID(t *testing.T) {
	a := ids.NodeID{1}
	b := ids.NodeID{2}
	c := ids.NodeID{3}

	candidates := []Candidate{
		{ID: a, TieBreak: hashtimer.OrderKey{Round: 1}},
		{ID: b, TieBreak: hashtimer.OrderKey{Round: 2}},
		{ID: c, TieBreak: hashtimer.OrderKey{Round: 1}},
	}
	scores := []types.ScoredValidator{
		{ID: a, Score: 500_000},
		{ID: b, Score: 900_000},
		{ID: c, Score: 500_000},
	}

	ordered := Order(candidates, scores)
	require.Equal(t, []ids.NodeID{b, a, c}, []ids.NodeID{ordered[0].ID, ordered[1].ID, ordered[2].ID})
}

func TestSelectProducesPrimaryAndClampedShadows(t *testing.T) {
	candidates := make([]Candidate, 10)
	for i := range candidates {
		candidates[i] = Candidate{ID: ids.NodeID{byte(i + 1)}, TieBreak: hashtimer.OrderKey{Round: hashtimer.RoundID(i)}}
		candidates[i].Features[types.FeatureUptime] = int64(1000 - i)
	}

	vs := Select(1, identityModel(), candidates, 100)
	require.Len(t, vs.Shadows, MaxShadows)
	require.NotEqual(t, vs.Primary, ids.NodeID{})

	for _, s := range vs.Shadows {
		require.NotEqual(t, vs.Primary, s)
	}
}

func TestSelectTruncatesWhenFewerCandidatesThanQuorum(t *testing.T) {
	candidates := []Candidate{{ID: ids.NodeID{1}}, {ID: ids.NodeID{2}}}
	vs := Select(1, identityModel(), candidates, MinShadows)
	require.Len(t, vs.Shadows, 1)
}

func TestSelectEmptyCandidatesYieldsEmptySet(t *testing.T) {
	vs := Select(1, identityModel(), nil, MinShadows)
	require.Equal(t, ids.NodeID{}, vs.Primary)
	require.Empty(t, vs.Shadows)
}
