// Copyright (c) 2026, The Laminart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package laminart

import (
	"fmt"
	"sort"

	"github.com/chewxy/math32"
)

// PredictParams parameterize top-down expectation generation.
type PredictParams struct {
	Gain float32 `def:"0.5" min:"0" desc:"top-down gain applied to the blended template pattern before clamping -- expectations are deliberately weaker than bottom-up signals"`
}

func (pp *PredictParams) Defaults() {
	pp.Gain = 0.5
}

// Update must be called after any changes to parameters
func (pp *PredictParams) Update() {
}

// Predictor maintains one learned template per category id and produces
// top-down expectation patterns from category activations.  An uncommitted
// (never-updated) category has an all-ones template, the maximally
// unspecific expectation.  The template dimension is lazily bound by the
// first update or generation.
type Predictor struct {
	Params    PredictParams     `desc:"expectation generation parameters"`
	Dim       int               `inactive:"+" desc:"template dimension, 0 until lazily bound"`
	Templates map[int][]float32 `desc:"learned templates by category id -- missing ids are treated as all-ones"`
}

// NewPredictor returns a predictor with default parameters and no bound
// dimension.
func NewPredictor() *Predictor {
	pr := &Predictor{Templates: make(map[int][]float32)}
	pr.Params.Defaults()
	return pr
}

// bindDim binds the template dimension on first use.
func (pr *Predictor) bindDim(n int) error {
	if pr.Dim == 0 {
		pr.Dim = n
		return nil
	}
	if pr.Dim != n {
		return fmt.Errorf("Predictor: pattern dimension %d != bound dimension %d", n, pr.Dim)
	}
	return nil
}

// Template returns a copy of the template for the given category,
// all-ones if the category has never been updated.  Returns nil before
// the dimension is bound.
func (pr *Predictor) Template(cat int) []float32 {
	if pr.Dim == 0 {
		return nil
	}
	tmpl := make([]float32, pr.Dim)
	if lt, ok := pr.Templates[cat]; ok {
		copy(tmpl, lt)
		return tmpl
	}
	for i := range tmpl {
		tmpl[i] = 1
	}
	return tmpl
}

// UpdateTemplate moves the category template toward target by lrate:
// template += lrate * (target - template).  Repeated application
// converges exponentially to target with residual (1-lrate)^n after n
// updates.  lrate must be in (0,1].  An unseen category starts from
// all-ones.
func (pr *Predictor) UpdateTemplate(cat int, target []float32, lrate float32) error {
	if err := checkPattern("UpdateTemplate target", target); err != nil {
		return err
	}
	if lrate <= 0 || lrate > 1 {
		return fmt.Errorf("UpdateTemplate: learning rate %v outside (0,1]", lrate)
	}
	if err := pr.bindDim(len(target)); err != nil {
		return err
	}
	tmpl, ok := pr.Templates[cat]
	if !ok {
		tmpl = make([]float32, pr.Dim)
		for i := range tmpl {
			tmpl[i] = 1
		}
		pr.Templates[cat] = tmpl
	}
	for i := range tmpl {
		tmpl[i] += lrate * (target[i] - tmpl[i])
	}
	return nil
}

// GenerateExpectation produces the top-down expectation pattern for the
// given category activations: the activation-weighted blend of the
// corresponding templates, scaled by Gain and clamped to [0,1]
// element-wise.  Returns an all-zero pattern when all activations are zero
// (no division by zero).  The dimension must already be bound by a prior
// template update.
func (pr *Predictor) GenerateExpectation(catActs map[int]float32) ([]float32, error) {
	if pr.Dim == 0 {
		return nil, fmt.Errorf("GenerateExpectation: template dimension not yet bound")
	}
	if catActs == nil {
		return nil, fmt.Errorf("GenerateExpectation: nil category activations")
	}
	out := make([]float32, pr.Dim)
	var tot float32
	for _, a := range catActs {
		tot += a
	}
	if tot == 0 {
		return out, nil
	}
	// sorted ids for deterministic float accumulation order
	ids := make([]int, 0, len(catActs))
	for c := range catActs {
		ids = append(ids, c)
	}
	sort.Ints(ids)
	for _, c := range ids {
		a := catActs[c]
		if a == 0 {
			continue
		}
		tmpl := pr.Template(c)
		for i := range out {
			out[i] += a * tmpl[i]
		}
	}
	for i := range out {
		out[i] = math32.Min(1, math32.Max(0, pr.Params.Gain*out[i]/tot))
	}
	return out, nil
}
