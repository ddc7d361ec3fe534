// Copyright (c) 2026, The Laminart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package laminart implements the temporal-dynamics and matching core of a
canonical laminar (Grossberg-style ART) circuit.

The main components are:

* Path: the temporal-dynamics decorator that wraps any signal-propagation
Pathway with fast shunting dynamics and slow habituative transmitter
gating, without altering the wrapped pathway's own behavior.

* MatchParams: the asymmetric ART match score, signed prediction-error
vector, and vigilance test that the surrounding category-learning loop
consumes.

* Predictor: learned per-category templates producing top-down expectation
patterns, with exponential template convergence.

* Layer: the temporal chunking layer, maintaining a bounded activation
history and forming, decaying, pruning, and merging temporal chunks, and
exposing a blended layer state of current activation plus chunk-derived
temporal context.  The layer also owns the lateral-inhibition kernel that
supplies inhibitory sums to the shunting dynamics.

* Coord: the multi-time-scale coordinator sequencing fast (per-step),
medium (chunking), and slow (transmitter) updates.

Data flows: input pattern -> Path (shunting + transmitter gating) -> Layer
(history + chunk formation) -> MatchParams (score against top-down
expectation) -> vigilance decision consumed by the external
category-learning loop -> Predictor produces the next top-down expectation.
*/
package laminart

import (
	"fmt"

	"github.com/chewxy/math32"
)

// CosineSim returns the cosine similarity of two equal-length vectors,
// 0 when either has zero norm (defined sentinel, never NaN).
func CosineSim(a, b []float32) float32 {
	var dot, na, nb float32
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math32.Sqrt(na) * math32.Sqrt(nb))
}

// MeanAbs returns the mean absolute value of v, 0 for an empty vector.
func MeanAbs(v []float32) float32 {
	if len(v) == 0 {
		return 0
	}
	var sum float32
	for _, x := range v {
		sum += math32.Abs(x)
	}
	return sum / float32(len(v))
}

// checkDims returns an error if a and b differ in length.  what names the
// operation for the error message.
func checkDims(what string, a, b []float32) error {
	if len(a) != len(b) {
		return fmt.Errorf("%s: dimension mismatch: %d != %d", what, len(a), len(b))
	}
	return nil
}

// checkPattern returns an error for a nil or empty pattern.
func checkPattern(what string, p []float32) error {
	if len(p) == 0 {
		return fmt.Errorf("%s: nil or empty pattern", what)
	}
	return nil
}
