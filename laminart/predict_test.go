// Copyright (c) 2026, The Laminart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package laminart

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestTemplateConvergence(t *testing.T) {
	// after n updates at rate r toward target T from all-ones:
	// |template - T| = |1 - T| * (1-r)^n
	pr := NewPredictor()
	target := []float32{0.2, 0.6, 1.0, 0.0}
	r := float32(0.5)
	n := 4
	for i := 0; i < n; i++ {
		if err := pr.UpdateTemplate(0, target, r); err != nil {
			t.Fatal(err)
		}
	}
	resid := math32.Pow(1-r, float32(n))
	tmpl := pr.Template(0)
	for i := range target {
		cor := target[i] + resid*(1-target[i])
		if dif := math32.Abs(tmpl[i] - cor); dif > 1.0e-6 {
			t.Errorf("template[%d] = %v, want %v", i, tmpl[i], cor)
		}
	}
}

func TestTemplateDefaults(t *testing.T) {
	pr := NewPredictor()
	if tmpl := pr.Template(3); tmpl != nil {
		t.Errorf("template before dimension bound = %v, want nil", tmpl)
	}
	if err := pr.UpdateTemplate(0, []float32{0.5, 0.5}, 0.1); err != nil {
		t.Fatal(err)
	}
	// unseen category: all-ones (maximally unspecific)
	tmpl := pr.Template(99)
	for i := range tmpl {
		if tmpl[i] != 1 {
			t.Errorf("uncommitted template[%d] = %v, want 1", i, tmpl[i])
		}
	}
}

func TestTemplateErrors(t *testing.T) {
	pr := NewPredictor()
	if err := pr.UpdateTemplate(0, nil, 0.5); err == nil {
		t.Error("nil target did not error")
	}
	if err := pr.UpdateTemplate(0, []float32{1}, 0); err == nil {
		t.Error("zero learning rate did not error")
	}
	if err := pr.UpdateTemplate(0, []float32{1}, 1.5); err == nil {
		t.Error("learning rate > 1 did not error")
	}
	if err := pr.UpdateTemplate(0, []float32{1, 2}, 0.5); err != nil {
		t.Fatal(err)
	}
	if err := pr.UpdateTemplate(1, []float32{1, 2, 3}, 0.5); err == nil {
		t.Error("dimension mismatch did not error")
	}
}

func TestGenerateExpectation(t *testing.T) {
	pr := NewPredictor()
	// commit two categories fully (rate 1 converges in one step)
	if err := pr.UpdateTemplate(0, []float32{1, 0, 0, 0}, 1); err != nil {
		t.Fatal(err)
	}
	if err := pr.UpdateTemplate(1, []float32{0, 1, 0, 0}, 1); err != nil {
		t.Fatal(err)
	}
	// weighted blend: (1*t0 + 3*t1)/4, scaled by gain 0.5
	exp, err := pr.GenerateExpectation(map[int]float32{0: 1, 1: 3})
	if err != nil {
		t.Fatal(err)
	}
	cor := []float32{0.125, 0.375, 0, 0}
	for i := range cor {
		if dif := math32.Abs(exp[i] - cor[i]); dif > 1.0e-6 {
			t.Errorf("expectation[%d] = %v, want %v", i, exp[i], cor[i])
		}
	}
}

func TestGenerateExpectationZero(t *testing.T) {
	pr := NewPredictor()
	if err := pr.UpdateTemplate(0, []float32{1, 1}, 1); err != nil {
		t.Fatal(err)
	}
	exp, err := pr.GenerateExpectation(map[int]float32{0: 0, 1: 0})
	if err != nil {
		t.Fatal(err)
	}
	for i := range exp {
		if exp[i] != 0 {
			t.Errorf("zero-activation expectation[%d] = %v, want 0", i, exp[i])
		}
		if math32.IsNaN(exp[i]) {
			t.Errorf("expectation[%d] is NaN", i)
		}
	}
}

func TestGenerateExpectationClamp(t *testing.T) {
	pr := NewPredictor()
	pr.Params.Gain = 3 // force values above 1 before clamping
	if err := pr.UpdateTemplate(0, []float32{1, 0.1}, 1); err != nil {
		t.Fatal(err)
	}
	exp, err := pr.GenerateExpectation(map[int]float32{0: 1})
	if err != nil {
		t.Fatal(err)
	}
	if exp[0] != 1 {
		t.Errorf("expectation[0] = %v, want clamped to 1", exp[0])
	}
	if dif := math32.Abs(exp[1] - 0.3); dif > 1.0e-6 {
		t.Errorf("expectation[1] = %v, want 0.3", exp[1])
	}
}

func TestGenerateExpectationUncommitted(t *testing.T) {
	pr := NewPredictor()
	if err := pr.UpdateTemplate(0, []float32{0, 0, 0}, 1); err != nil {
		t.Fatal(err)
	}
	// category 5 never seen: all-ones template at gain 0.5
	exp, err := pr.GenerateExpectation(map[int]float32{5: 2})
	if err != nil {
		t.Fatal(err)
	}
	for i := range exp {
		if dif := math32.Abs(exp[i] - 0.5); dif > 1.0e-6 {
			t.Errorf("uncommitted expectation[%d] = %v, want 0.5", i, exp[i])
		}
	}
}
