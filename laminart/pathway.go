// Copyright (c) 2026, The Laminart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package laminart

import (
	"fmt"

	"github.com/artcog/laminart/habit"
	"github.com/artcog/laminart/integ"
	"github.com/artcog/laminart/shunt"
	"github.com/artcog/laminart/tscale"
	"github.com/chewxy/math32"
	"github.com/emer/emergent/erand"
)

// Pathway is any signal-propagation unit: it maps an input signal pattern
// to an output signal pattern.  The temporal-dynamics decorator wraps a
// Pathway without altering its base behavior.
type Pathway interface {
	Propagate(sig []float32) ([]float32, error)
}

// PathFunc adapts a plain function to the Pathway interface.
type PathFunc func(sig []float32) ([]float32, error)

func (pf PathFunc) Propagate(sig []float32) ([]float32, error) { return pf(sig) }

// Identity is a pass-through Pathway returning a copy of its input.
var Identity = PathFunc(func(sig []float32) ([]float32, error) {
	out := make([]float32, len(sig))
	copy(out, sig)
	return out, nil
})

// NoiseParams specifies optional noise added to the excitatory drive of a
// decorated pathway, off by default.
type NoiseParams struct {
	erand.RndParams
	On bool `desc:"add noise to the excitatory drive on each propagation"`
}

func (np *NoiseParams) Defaults() {
	np.On = false
	np.Dist = erand.Gaussian
	np.Mean = 0
	np.Var = 0.01
}

// PathParams are all the parameters of a temporal-dynamics decorated
// pathway.
type PathParams struct {
	On    bool              `def:"true" desc:"enable temporal dynamics -- when off, Propagate delegates directly to the wrapped pathway with identical behavior to undecorated use"`
	Scale tscale.TimeScales `desc:"time scale of this pathway -- sets the integration time step per propagation"`
	Shunt shunt.Params      `view:"inline" desc:"fast shunting activation dynamics parameters"`
	Habit habit.Params      `view:"inline" desc:"slow habituative transmitter-gating parameters"`
	Integ integ.Methods     `desc:"explicit integration method for both dynamics"`
	Noise NoiseParams       `view:"inline" desc:"optional noise on the excitatory drive"`
}

func (pp *PathParams) Defaults() {
	pp.On = true
	pp.Scale = tscale.Fast
	pp.Shunt.Defaults()
	pp.Habit.Defaults()
	pp.Integ = integ.Euler
	pp.Noise.Defaults()
	pp.Update()
}

// Update must be called after any changes to parameters
func (pp *PathParams) Update() {
	pp.Shunt.Update()
	pp.Habit.Update()
}

// InhibSource supplies per-channel lateral inhibitory sums for given
// activations.  The enclosing layer topology owns the connection weights;
// a nil source means no lateral interaction at this pathway.
type InhibSource interface {
	InhibSums(act []float32) []float32
}

// Path is the temporal-dynamics decorator: it wraps a Pathway and, on each
// propagation, updates shunting activation state from the incoming signal,
// gates the result through the current transmitter levels, forwards the
// gated signal to the wrapped pathway, and updates transmitter depletion
// from the raw signal.  Shunting and transmitter state are lazily sized to
// the first observed signal dimension and owned exclusively by this Path.
type Path struct {
	Params  PathParams   `desc:"all dynamics parameters"`
	Wrapped Pathway      `desc:"the wrapped signal-propagation unit"`
	Lateral InhibSource  `desc:"optional lateral inhibition source, owned by the enclosing layer; nil = no lateral term"`
	ShuntSt *shunt.State `desc:"shunting state, nil until the first propagation binds the dimension"`
	HabitSt *habit.State `desc:"transmitter state, nil until the first propagation binds the dimension"`

	shuntStep integ.Stepper `view:"-" desc:"integrator for shunting state"`
	habitStep integ.Stepper `view:"-" desc:"integrator for transmitter state"`
	lastShunt float32       `view:"-" desc:"max abs shunting derivative from the last step"`
	lastHabit float32       `view:"-" desc:"max abs transmitter derivative from the last step"`
	gated     []float32     `view:"-" desc:"scratch gated signal buffer"`
}

// NewPath returns a decorated pathway wrapping the given unit, with
// default parameters.
func NewPath(wrapped Pathway) *Path {
	pt := &Path{Wrapped: wrapped}
	pt.Params.Defaults()
	return pt
}

// SetDynamicsEnabled turns temporal dynamics on or off.  When off,
// Propagate is a byte-for-byte pass-through to the wrapped pathway.
func (pt *Path) SetDynamicsEnabled(on bool) {
	pt.Params.On = on
}

// DynamicsEnabled reports whether temporal dynamics are active.
func (pt *Path) DynamicsEnabled() bool {
	return pt.Params.On
}

// Dim returns the bound signal dimension, 0 before the first propagation.
func (pt *Path) Dim() int {
	if pt.ShuntSt == nil {
		return 0
	}
	return pt.ShuntSt.Dim()
}

// initState lazily binds the dynamics state to dimension n.
func (pt *Path) initState(n int) {
	pt.ShuntSt = shunt.NewState(n)
	pt.HabitSt = habit.NewState(n, pt.Params.Habit.Init)
	pt.gated = make([]float32, n)
	pt.shuntStep.Defaults()
	pt.shuntStep.Method = pt.Params.Integ
	pt.shuntStep.Bounds = pt.Params.Shunt.Range
	pt.habitStep.Defaults()
	pt.habitStep.Method = pt.Params.Integ
	pt.lastShunt = math32.MaxFloat32
	pt.lastHabit = math32.MaxFloat32
}

// checkSignal validates an incoming signal against the bound state.
func (pt *Path) checkSignal(sig []float32) error {
	if err := checkPattern("Path.Propagate", sig); err != nil {
		return err
	}
	if pt.ShuntSt != nil && pt.ShuntSt.Dim() != len(sig) {
		return fmt.Errorf("Path.Propagate: signal dimension %d != bound state dimension %d", len(sig), pt.ShuntSt.Dim())
	}
	for i, v := range sig {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return fmt.Errorf("Path.Propagate: signal[%d] = %v is not finite", i, v)
		}
	}
	return nil
}

// Propagate runs one decorated propagation: shunting update from sig,
// transmitter gating, transmitter depletion update from sig, then forwards
// the gated signal to the wrapped pathway and returns its result.
// With dynamics disabled it delegates directly to the wrapped pathway.
func (pt *Path) Propagate(sig []float32) ([]float32, error) {
	if !pt.Params.On {
		return pt.Wrapped.Propagate(sig)
	}
	if err := pt.checkSignal(sig); err != nil {
		return nil, err
	}
	if pt.ShuntSt == nil {
		pt.initState(len(sig))
	}
	dt := pt.Params.Scale.TimeStep()

	pt.ShuntSt.SetGe(sig)
	if pt.Params.Noise.On {
		for i := range pt.ShuntSt.Ge {
			pt.ShuntSt.Ge[i] += float32(pt.Params.Noise.Gen(-1))
		}
	}
	pt.stepShunt(dt)

	// gate through the transmitter levels as they stand now: depletion from
	// this signal applies to the next propagation, not this one
	for i := range pt.gated {
		pt.gated[i] = pt.ShuntSt.Act[i] * pt.HabitSt.Level[i]
	}

	// transmitter depletion is driven by the raw signal, not the gated output
	pt.HabitSt.SetSig(sig)
	pt.stepHabit(dt)

	return pt.Wrapped.Propagate(pt.gated)
}

func (pt *Path) stepShunt(dt float32) {
	var inhib []float32
	if pt.Lateral != nil {
		inhib = pt.Lateral.InhibSums(pt.ShuntSt.Act)
	}
	pt.lastShunt = pt.shuntStep.Step(pt.ShuntSt.Act, dt, func(x, dx []float32) {
		pt.Params.Shunt.Deriv(x, pt.ShuntSt.Ge, inhib, dx)
	})
}

func (pt *Path) stepHabit(dt float32) {
	var prev []float32
	if pt.HabitSt.TraceOn {
		prev = make([]float32, pt.HabitSt.Dim())
		copy(prev, pt.HabitSt.Level)
	}
	pt.lastHabit = pt.habitStep.Step(pt.HabitSt.Level, dt, func(z, dz []float32) {
		pt.Params.Habit.Deriv(z, pt.HabitSt.Sig, dz)
	})
	if prev != nil {
		pt.HabitSt.RecordTrace(prev)
	}
}

// UpdateDynamics advances both shunting and transmitter state by dt
// without a propagation, holding the current excitatory and presynaptic
// inputs.  Used for idle / rest-period evolution (set inputs to zero first
// for pure recovery).  No-op before the first propagation or when dynamics
// are disabled.
func (pt *Path) UpdateDynamics(dt float32) {
	if !pt.Params.On || pt.ShuntSt == nil {
		return
	}
	pt.stepShunt(dt)
	pt.stepHabit(dt)
}

// ResetDynamics restores shunting activations to zero and transmitter
// levels to fully available, without touching the wrapped pathway's own
// state.  Keeps the bound dimension.
func (pt *Path) ResetDynamics() {
	if pt.ShuntSt == nil {
		return
	}
	pt.ShuntSt.Init()
	pt.HabitSt.Init(pt.Params.Habit.Init)
	pt.lastShunt = math32.MaxFloat32
	pt.lastHabit = math32.MaxFloat32
}

// ReachedEquilibrium reports whether the magnitude of the most recent
// shunting and transmitter derivatives are both below thresh.  Always
// false before any dynamics step.
func (pt *Path) ReachedEquilibrium(thresh float32) bool {
	if pt.ShuntSt == nil {
		return false
	}
	return pt.lastShunt < thresh && pt.lastHabit < thresh
}
