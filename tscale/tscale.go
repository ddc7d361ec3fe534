// Copyright (c) 2026, The Laminart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package tscale provides the time-scale descriptors for the laminar circuit:
the coarse dynamical regimes (Fast, Medium, Slow, VerySlow) that the
multi-scale coordinator and the temporal-dynamics pathway decorator use to
select integration step sizes and update cadences.

Each scale carries a typical duration range in simulation milliseconds and
a separation factor relative to any other scale, which is always >= 1.
*/
package tscale

import (
	"github.com/goki/ki/kit"
)

// TimeScales are the coarse dynamical regimes of the circuit.  Shunting
// activation dynamics run at Fast, chunk formation at Medium, habituative
// transmitter dynamics at Slow, and long-term template adaptation at
// VerySlow.
type TimeScales int

//go:generate stringer -type=TimeScales

var KiT_TimeScales = kit.Enums.AddEnum(TimeScalesN, kit.NotBitFlag, nil)

func (ev TimeScales) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *TimeScales) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The time scales
const (
	// Fast is the per-cycle activation update regime: 10-100 msec.
	Fast TimeScales = iota

	// Medium is the chunk-formation regime: 100 msec - 1 sec.
	Medium

	// Slow is the habituative transmitter regime: 500 msec - 5 sec.
	Slow

	// VerySlow is the long-term adaptation regime: 5 sec and up.
	VerySlow

	TimeScalesN
)

// MinDuration returns the lower end of the typical duration range for this
// scale, in msec.
func (ts TimeScales) MinDuration() float32 {
	switch ts {
	case Fast:
		return 10
	case Medium:
		return 100
	case Slow:
		return 500
	default:
		return 5000
	}
}

// MaxDuration returns the upper end of the typical duration range for this
// scale, in msec.  VerySlow is open-ended; its Max is a nominal 60 sec.
func (ts TimeScales) MaxDuration() float32 {
	switch ts {
	case Fast:
		return 100
	case Medium:
		return 1000
	case Slow:
		return 5000
	default:
		return 60000
	}
}

// TypicalDuration returns the representative duration for this scale in
// msec, used for separation-factor computations.
func (ts TimeScales) TypicalDuration() float32 {
	switch ts {
	case Fast:
		return 50
	case Medium:
		return 500
	case Slow:
		return 2000
	default:
		return 10000
	}
}

// TimeStep returns the integration time step for dynamics operating at
// this scale, in seconds of simulation time: one typical duration per
// step, so slower scales take proportionally coarser steps.
func (ts TimeScales) TimeStep() float32 {
	switch ts {
	case Fast:
		return 0.05
	case Medium:
		return 0.1
	case Slow:
		return 0.5
	default:
		return 5
	}
}

// SeparationFactor returns the ratio of typical durations between this
// scale and the other, always >= 1 regardless of argument order.
func (ts TimeScales) SeparationFactor(ot TimeScales) float32 {
	a := ts.TypicalDuration()
	b := ot.TypicalDuration()
	if a > b {
		return a / b
	}
	return b / a
}
