// Copyright (c) 2026, The Laminart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package shunt implements the fast shunting membrane dynamics of the laminar
circuit: bounded activations driven by multiplicative (shunting) excitation
and inhibition, per channel i:

	dX_i/dt = -A*X_i + (B - X_i)*S_i - X_i*I_i

where S_i is the instantaneous excitatory input (including any
self-excitation) and I_i is the lateral inhibitory sum, aggregated by the
surrounding layer from neighbor activations weighted by its connection
kernel.  The decay term is always <= 0, the excitatory term is >= 0 while
X_i <= B, so the continuous dynamics are self-bounding in [Lower, B].

With no lateral term and constant input S, the equilibrium has the closed
form X_eq = B*S / (A+S), exported as Equilibrium and used as the test
oracle.
*/
package shunt

import (
	"github.com/emer/etable/minmax"
)

// Params are the shunting equation coefficients.  All are non-negative and
// B > Lower.
type Params struct {
	A      float32 `def:"0.1" min:"0" desc:"passive decay rate -- pulls activation back toward the lower bound in the absence of input"`
	B      float32 `def:"1" min:"0" desc:"upper bound (excitatory saturation ceiling) -- the excitatory term vanishes as activation approaches B"`
	Lower  float32 `def:"0" min:"0" desc:"lower bound -- activations are clamped here after each discrete step"`
	SelfGe float32 `def:"0" min:"0" desc:"self-excitation gain -- adds SelfGe * X_i into the excitatory input, producing recurrent support for active channels"`
	LatGi  float32 `def:"1" min:"0" desc:"lateral-inhibition gain -- scales the externally supplied inhibitory sums"`

	Range minmax.F32 `inactive:"+" view:"-" json:"-" xml:"-" desc:"derived [Lower, B] clamp range -- set by Update"`
}

func (sp *Params) Defaults() {
	sp.A = 0.1
	sp.B = 1
	sp.Lower = 0
	sp.SelfGe = 0
	sp.LatGi = 1
	sp.Update()
}

// Update must be called after any changes to parameters
func (sp *Params) Update() {
	sp.Range.Set(sp.Lower, sp.B)
}

// Deriv computes the shunting derivative into dx for the given activations
// x, excitatory inputs ge, and lateral inhibitory sums inhib.  inhib may be
// nil for an isolated (no lateral interaction) channel set.  All slices
// must be the same length except nil inhib.  For finite, non-negative
// inputs the result is always finite.
func (sp *Params) Deriv(x, ge, inhib, dx []float32) {
	for i := range x {
		exc := ge[i] + sp.SelfGe*x[i]
		d := -sp.A*x[i] + (sp.B-x[i])*exc
		if inhib != nil {
			d -= x[i] * sp.LatGi * inhib[i]
		}
		dx[i] = d
	}
}

// Equilibrium returns the closed-form equilibrium activation for constant
// excitatory input s with no lateral term: B*s / (A+s).
// Returns Lower when A+s = 0 (no drive, no decay).
func (sp *Params) Equilibrium(s float32) float32 {
	den := sp.A + s
	if den == 0 {
		return sp.Lower
	}
	return sp.B * s / den
}

// State holds the per-channel shunting state: bounded activations and the
// paired instantaneous excitatory inputs, always the same length.
type State struct {
	Act []float32 `desc:"bounded activations, in [Lower, B]"`
	Ge  []float32 `desc:"instantaneous excitatory inputs driving the activations"`
}

// NewState returns a state of dimension n at the zero initial condition.
func NewState(n int) *State {
	st := &State{}
	st.SetDim(n)
	return st
}

// Dim returns the channel dimension, 0 if uninitialized.
func (st *State) Dim() int {
	return len(st.Act)
}

// SetDim sizes the state to n channels, resetting to the zero condition.
func (st *State) SetDim(n int) {
	st.Act = make([]float32, n)
	st.Ge = make([]float32, n)
}

// Init restores the zero initial condition without resizing.
func (st *State) Init() {
	for i := range st.Act {
		st.Act[i] = 0
		st.Ge[i] = 0
	}
}

// SetGe copies sig into the excitatory inputs.  sig must match Dim.
func (st *State) SetGe(sig []float32) {
	copy(st.Ge, sig)
}
