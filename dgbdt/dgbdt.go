// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package dgbdt implements deterministic gradient-boosted decision tree
// inference over the fixed-point feature vectors VSET produces (spec §3,
// §4.3). Every arithmetic step runs through fx so the result is bit-identical
// across architectures; no floating point appears anywhere in this package.
package dgbdt

import (
	"errors"
	"fmt"

	"github.com/ippan/dlc/fx"
	"github.com/ippan/dlc/types"
)

// ErrModelInvalid reports a structurally unsound model: an out-of-range
// feature index, a node index outside the tree, a cycle, or a non-positive
// learning rate (spec §4.3).
var ErrModelInvalid = errors.New("dgbdt: model invalid")

// ErrFeatureOutOfRange reports a split (internal node) referencing a
// feature index outside [0, types.FeatureCount); leaf feature fields are
// not checked.
var ErrFeatureOutOfRange = errors.New("dgbdt: feature index out of range")

// Node is one node of a decision tree. Leaves have Left == Right == -1 and
// carry a Value; internal nodes split on Feature <= Threshold and carry
// child indices into the same Tree.Nodes slice.
type Node struct {
	Feature   int   `json:"feature"`
	Threshold int64 `json:"threshold"`
	Left      int   `json:"left"`
	Right     int   `json:"right"`
	Value     int64 `json:"value"`
}

// IsLeaf reports whether n is a terminal node.
func (n Node) IsLeaf() bool {
	return n.Left < 0 && n.Right < 0
}

// Tree is one boosted tree: a flat node array rooted at index 0.
type Tree struct {
	Nodes []Node `json:"nodes"`
}

// Model is a full D-GBDT ensemble: an ordered list of trees plus the shared
// learning rate applied to every leaf contribution (spec §4.3).
type Model struct {
	Trees        []Tree `json:"trees"`
	LearningRate int64  `json:"learning_rate"`
	Bias         int64  `json:"bias"`
}

// Validate checks the structural invariants spec §4.3 requires before a
// model may be used for scoring: every feature index in range, every child
// index in range or a valid leaf marker, no cycles, and a positive learning
// rate. codec.ModelCache runs Validate on every model it decodes and rejects
// the whole model on failure; Score and round.NewEngine do not call it.
func (m Model) Validate() error {
	if m.LearningRate <= 0 {
		return fmt.Errorf("%w: learning_rate must be positive, got %d", ErrModelInvalid, m.LearningRate)
	}
	for ti, t := range m.Trees {
		if len(t.Nodes) == 0 {
			return fmt.Errorf("%w: tree %d has no nodes", ErrModelInvalid, ti)
		}
		for ni, n := range t.Nodes {
			if n.IsLeaf() {
				continue
			}
			if n.Feature < 0 || n.Feature >= types.FeatureCount {
				return fmt.Errorf("%w: tree %d node %d: %w (feature %d)", ErrModelInvalid, ti, ni, ErrFeatureOutOfRange, n.Feature)
			}
			if n.Left < 0 || n.Left >= len(t.Nodes) || n.Right < 0 || n.Right >= len(t.Nodes) {
				return fmt.Errorf("%w: tree %d node %d: child index out of range (left=%d right=%d len=%d)",
					ErrModelInvalid, ti, ni, n.Left, n.Right, len(t.Nodes))
			}
			if n.Left == ni || n.Right == ni {
				return fmt.Errorf("%w: tree %d node %d: self-referential child", ErrModelInvalid, ti, ni)
			}
		}
		if err := detectCycle(t); err != nil {
			return fmt.Errorf("%w: tree %d: %w", ErrModelInvalid, ti, err)
		}
	}
	return nil
}

func detectCycle(t Tree) error {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make([]int, len(t.Nodes))
	var visit func(i int) error
	visit = func(i int) error {
		switch color[i] {
		case black:
			return nil
		case gray:
			return errors.New("cycle detected")
		}
		color[i] = gray
		n := t.Nodes[i]
		if !n.IsLeaf() {
			if err := visit(n.Left); err != nil {
				return err
			}
			if err := visit(n.Right); err != nil {
				return err
			}
		}
		color[i] = black
		return nil
	}
	return visit(0)
}

// Score runs one validator's feature snapshot through every tree in m and
// returns the summed, fx-clamped fitness score in [0, fx.Scale] (spec §4.3
// D1/D2). Callers must have called Validate once at model-install time;
// Score assumes a valid model and does not re-check structural invariants
// on every call.
func Score(m Model, features types.FeatureSnapshot) int64 {
	acc := m.Bias
	for _, t := range m.Trees {
		leafValue := evalTree(t, features)
		acc = fx.Add(acc, fx.Mul(leafValue, m.LearningRate))
	}
	return fx.ClampUnit(acc)
}

func evalTree(t Tree, features types.FeatureSnapshot) int64 {
	i := 0
	for {
		n := t.Nodes[i]
		if n.IsLeaf() {
			return n.Value
		}
		if features[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}
