// Copyright (c) 2026, The Laminart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package laminart

import (
	"fmt"

	"github.com/chewxy/math32"
)

// MatchParams computes the asymmetric ART match between a bottom-up input
// and a top-down expectation, and performs the vigilance test whose
// outcome (resonance vs. reset) the external category-learning loop
// consumes.
type MatchParams struct {
	Vigilance float32 `def:"0.75" min:"0" max:"1" desc:"ART vigilance threshold -- match score >= Vigilance means resonance (accept category), below means reset (search further); higher values demand more specific categories"`
}

func (mp *MatchParams) Defaults() {
	mp.Vigilance = 0.75
}

// Update must be called after any changes to parameters
func (mp *MatchParams) Update() {
}

// SetVigilance sets the vigilance threshold, which must be in [0,1].
func (mp *MatchParams) SetVigilance(v float32) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("MatchParams.SetVigilance: %v outside [0,1]", v)
	}
	mp.Vigilance = v
	return nil
}

// MatchScore returns the asymmetric ART match score
//
//	sum_i min(|input_i|, |expect_i|) / sum_i |input_i|
//
// defined as 0 when the input is all zeros (never NaN).  The asymmetry is
// intentional: a broad expectation covering a narrow input scores high,
// but a broad input against a narrow expectation scores low.
func (mp *MatchParams) MatchScore(input, expect []float32) (float32, error) {
	if err := checkPattern("MatchScore input", input); err != nil {
		return 0, err
	}
	if err := checkPattern("MatchScore expectation", expect); err != nil {
		return 0, err
	}
	if err := checkDims("MatchScore", input, expect); err != nil {
		return 0, err
	}
	var num, den float32
	for i := range input {
		ai := math32.Abs(input[i])
		ei := math32.Abs(expect[i])
		num += math32.Min(ai, ei)
		den += ai
	}
	if den == 0 {
		return 0, nil
	}
	return num / den, nil
}

// ErrorSignal returns the signed prediction-error vector
// input_i - expect_i, same dimension as the input.
func ErrorSignal(input, expect []float32) ([]float32, error) {
	if err := checkPattern("ErrorSignal input", input); err != nil {
		return nil, err
	}
	if err := checkDims("ErrorSignal", input, expect); err != nil {
		return nil, err
	}
	es := make([]float32, len(input))
	for i := range input {
		es[i] = input[i] - expect[i]
	}
	return es, nil
}

// VigilanceTest reports resonance: score >= Vigilance.  The boundary
// score == Vigilance resonates.
func (mp *MatchParams) VigilanceTest(score float32) bool {
	return score >= mp.Vigilance
}

// MatchStats is the full matching result for one input / expectation pair.
type MatchStats struct {
	Score     float32   `desc:"asymmetric ART match score in [0,1]"`
	Err       []float32 `desc:"signed prediction-error vector, input - expectation"`
	ErrMag    float32   `desc:"mean absolute error magnitude"`
	Resonates bool      `desc:"score >= vigilance"`
}

// Statistics computes the match score, signed error signal, mean error
// magnitude, and vigilance outcome for one input / expectation pair.
func (mp *MatchParams) Statistics(input, expect []float32) (*MatchStats, error) {
	score, err := mp.MatchScore(input, expect)
	if err != nil {
		return nil, err
	}
	es, err := ErrorSignal(input, expect)
	if err != nil {
		return nil, err
	}
	return &MatchStats{
		Score:     score,
		Err:       es,
		ErrMag:    MeanAbs(es),
		Resonates: mp.VigilanceTest(score),
	}, nil
}
