// Copyright (c) 2026, The Laminart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package integ provides explicit bounded integration of the continuous-time
dynamics used in the laminar circuit (shunting activation, habituative
transmitter gating).

A Stepper advances any state vector exposed as a []float32 by one time
step of its derivative function, using either first-order Euler or
second-order Heun (explicit trapezoid) integration, and clamps the result
into a hard bounds range afterward.  The continuous dynamics are
self-bounding in theory; the clamp guards discretization overshoot.
*/
package integ

import (
	"github.com/chewxy/math32"
	"github.com/emer/etable/minmax"
	"github.com/goki/ki/kit"
)

// Deriv computes the derivative dx into dx given current state x.
// dx is always the same length as x and zeroed by the caller.
type Deriv func(x, dx []float32)

// Methods are the available explicit integration methods.
type Methods int

//go:generate stringer -type=Methods

var KiT_Methods = kit.Enums.AddEnum(MethodsN, kit.NotBitFlag, nil)

func (ev Methods) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Methods) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Euler is first-order explicit Euler: x += dt * f(x)
	Euler Methods = iota

	// Heun is the second-order explicit trapezoid method:
	// x += dt/2 * (f(x) + f(x + dt*f(x)))
	Heun

	MethodsN
)

// Stepper advances a state vector by its derivative function.
// The zero value uses Euler with no bounds clamp; use Defaults for the
// standard bounded [0,1] configuration.
type Stepper struct {
	Method Methods    `desc:"integration method -- Euler is the standard choice, Heun halves the per-step error at twice the derivative cost"`
	Clamp  bool       `desc:"clamp state into Bounds after each step -- hard numerical safety net over the self-bounding continuous dynamics"`
	Bounds minmax.F32 `viewif:"Clamp" desc:"hard bounds applied to each state variable after a step"`

	k1   []float32 `view:"-" json:"-" xml:"-" desc:"scratch derivative buffer"`
	k2   []float32 `view:"-" json:"-" xml:"-" desc:"scratch derivative buffer for Heun corrector"`
	xtmp []float32 `view:"-" json:"-" xml:"-" desc:"scratch predictor state for Heun"`
}

func (st *Stepper) Defaults() {
	st.Method = Euler
	st.Clamp = true
	st.Bounds.Set(0, 1)
}

// alloc sizes the scratch buffers for an n-dimensional state.
func (st *Stepper) alloc(n int) {
	if len(st.k1) == n {
		return
	}
	st.k1 = make([]float32, n)
	st.k2 = make([]float32, n)
	st.xtmp = make([]float32, n)
}

// Step advances x in place by one step of size dt using fun, and returns
// the maximum absolute derivative encountered, which callers use for
// equilibrium detection.  dt must be > 0.
func (st *Stepper) Step(x []float32, dt float32, fun Deriv) float32 {
	n := len(x)
	st.alloc(n)
	zero(st.k1)
	fun(x, st.k1)
	var md float32
	switch st.Method {
	case Heun:
		for i := range x {
			st.xtmp[i] = x[i] + dt*st.k1[i]
		}
		zero(st.k2)
		fun(st.xtmp, st.k2)
		for i := range x {
			d := 0.5 * (st.k1[i] + st.k2[i])
			x[i] += dt * d
			md = math32.Max(md, math32.Abs(d))
		}
	default:
		for i := range x {
			x[i] += dt * st.k1[i]
			md = math32.Max(md, math32.Abs(st.k1[i]))
		}
	}
	if st.Clamp {
		for i := range x {
			x[i] = st.Bounds.ClipVal(x[i])
		}
	}
	return md
}

func zero(v []float32) {
	for i := range v {
		v[i] = 0
	}
}
