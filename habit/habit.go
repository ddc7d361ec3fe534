// Copyright (c) 2026, The Laminart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package habit implements the habituative transmitter-gating dynamics of the
laminar circuit: per-channel transmitter availability that depletes with
sustained presynaptic signal and recovers at rest, per channel i:

	dZ_i/dt = Recovery*(1-Z_i) - Z_i*(Deplete*S_i + QuadDeplete*S_i^2)

Levels live in [0,1]: 1 = fully available, 0 = fully depleted.  The
quadratic depletion term, when enabled, makes high-signal depletion
disproportionately faster than low-signal depletion, which is what produces
the primacy gradient over a sequence: later items arrive through
already-depleted gates.

Constant signal S has the closed-form equilibrium
Z_eq = Recovery / (Recovery + Deplete*S + QuadDeplete*S^2), monotonically
decreasing in S, exported as Equilibrium and used as the test oracle.
*/
package habit

// Params are the transmitter dynamics coefficients.  All rates are
// non-negative.
type Params struct {
	Recovery    float32 `def:"0.005" min:"0" desc:"recovery rate (epsilon) -- pulls levels back toward 1 at rest; much slower than depletion, which is what makes the gating habituative rather than instantaneous"`
	Deplete     float32 `def:"0.1" min:"0" desc:"linear depletion rate (lambda) -- scales depletion proportional to signal strength"`
	QuadDeplete float32 `def:"0.05" min:"0" desc:"quadratic depletion rate (mu) -- accelerates depletion disproportionately for strong signals; only applied when Quad is on"`
	Quad        bool    `def:"true" desc:"enable the quadratic depletion term"`
	Init        float32 `def:"1" min:"0" max:"1" desc:"initial transmitter level -- 1 = fully available"`
	Thresh      float32 `def:"0.1" min:"0" max:"1" desc:"depletion threshold -- levels below this count as functionally depleted for Depleted reporting"`
}

func (tp *Params) Defaults() {
	tp.Recovery = 0.005
	tp.Deplete = 0.1
	tp.QuadDeplete = 0.05
	tp.Quad = true
	tp.Init = 1
	tp.Thresh = 0.1
	tp.Update()
}

// Update must be called after any changes to parameters
func (tp *Params) Update() {
}

// DepletionRate returns the total depletion rate coefficient for signal
// strength s: Deplete*s + QuadDeplete*s^2 (quadratic term only if Quad).
func (tp *Params) DepletionRate(s float32) float32 {
	d := tp.Deplete * s
	if tp.Quad {
		d += tp.QuadDeplete * s * s
	}
	return d
}

// Deriv computes the transmitter derivative into dz for levels z and
// presynaptic signals sig.  For finite, non-negative inputs the recovery
// term is >= 0 while z <= 1 and the depletion term is >= 0, so the result
// is always finite and the continuous dynamics stay in [0,1].
func (tp *Params) Deriv(z, sig, dz []float32) {
	for i := range z {
		dz[i] = tp.Recovery*(1-z[i]) - z[i]*tp.DepletionRate(sig[i])
	}
}

// Equilibrium returns the closed-form equilibrium level for constant
// signal s: Recovery / (Recovery + Deplete*s + QuadDeplete*s^2).
// Returns 1 (fully available) when the denominator is 0, i.e. no recovery
// and no drive.
func (tp *Params) Equilibrium(s float32) float32 {
	den := tp.Recovery + tp.DepletionRate(s)
	if den == 0 {
		return 1
	}
	return tp.Recovery / den
}

// State holds the per-channel transmitter state: availability levels in
// [0,1] and the paired presynaptic signal strengths.  When TraceOn is set,
// Trace accumulates total depletion per channel, which exposes the primacy
// gradient over a sequence directly.
type State struct {
	Level   []float32 `desc:"transmitter availability levels in [0,1]"`
	Sig     []float32 `desc:"presynaptic signal strengths driving depletion"`
	Trace   []float32 `desc:"cumulative depletion per channel, only maintained when TraceOn"`
	TraceOn bool      `desc:"maintain the cumulative depletion trace"`
}

// NewState returns a state of dimension n at the fully-available initial
// condition given by init (normally Params.Init).
func NewState(n int, init float32) *State {
	st := &State{}
	st.SetDim(n, init)
	return st
}

// Dim returns the channel dimension, 0 if uninitialized.
func (st *State) Dim() int {
	return len(st.Level)
}

// SetDim sizes the state to n channels at level init.
func (st *State) SetDim(n int, init float32) {
	st.Level = make([]float32, n)
	st.Sig = make([]float32, n)
	st.Trace = make([]float32, n)
	for i := range st.Level {
		st.Level[i] = init
	}
}

// Init restores all levels to init and zeroes signals and trace, without
// resizing.
func (st *State) Init(init float32) {
	for i := range st.Level {
		st.Level[i] = init
		st.Sig[i] = 0
		st.Trace[i] = 0
	}
}

// SetSig copies sig into the presynaptic signal strengths.
func (st *State) SetSig(sig []float32) {
	copy(st.Sig, sig)
}

// RecordTrace accumulates the depletion between prev and current levels
// into the trace.  Called by the owner after each integration step when
// TraceOn.
func (st *State) RecordTrace(prev []float32) {
	if !st.TraceOn {
		return
	}
	for i := range st.Level {
		d := prev[i] - st.Level[i]
		if d > 0 {
			st.Trace[i] += d
		}
	}
}

// Depleted reports whether channel i is below the functional depletion
// threshold.
func (tp *Params) Depleted(st *State, i int) bool {
	return st.Level[i] < tp.Thresh
}
