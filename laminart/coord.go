// Copyright (c) 2026, The Laminart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package laminart

import (
	"fmt"

	"github.com/artcog/laminart/tscale"
)

// CoordParams configure the multi-time-scale update cadence, expressed as
// integer ratios relative to the fast step.
type CoordParams struct {
	ChunkInterval int     `def:"10" min:"1" desc:"run a medium (chunking) update every this many fast steps"`
	SlowInterval  int     `def:"50" min:"1" desc:"run a slow (transmitter) update every this many fast steps"`
	TimePerStep   float32 `def:"0.05" min:"0" desc:"simulated seconds advanced per fast step -- the Fast time-scale step by default"`
}

func (cp *CoordParams) Defaults() {
	cp.ChunkInterval = 10
	cp.SlowInterval = 50
	cp.TimePerStep = tscale.Fast.TimeStep()
}

// Update must be called after any changes to parameters
func (cp *CoordParams) Update() {
}

// Validate returns an error for non-positive intervals.
func (cp *CoordParams) Validate() error {
	if cp.ChunkInterval < 1 || cp.SlowInterval < 1 {
		return fmt.Errorf("CoordParams: intervals must be >= 1: chunk %d, slow %d", cp.ChunkInterval, cp.SlowInterval)
	}
	return nil
}

// Coord sequences fast (per-step), medium (chunking-interval), and slow
// (transmitter-interval) updates and accumulates timing statistics.
// The owner calls StepFast once per processing step and then checks
// ShouldUpdateChunking / ShouldUpdateSlowDynamics, which are true exactly
// when the corresponding counter reaches its interval, and reset it.
type Coord struct {
	Params   CoordParams `desc:"cadence parameters"`
	Time     float32     `inactive:"+" desc:"accumulated simulation time in seconds"`
	FastTot  int         `inactive:"+" desc:"cumulative count of fast steps"`
	ChunkTot int         `inactive:"+" desc:"cumulative count of medium (chunking) updates"`
	SlowTot  int         `inactive:"+" desc:"cumulative count of slow (transmitter) updates"`

	chunkCtr int `view:"-" desc:"fast steps since last chunking update"`
	slowCtr  int `view:"-" desc:"fast steps since last slow update"`
}

// NewCoord returns a coordinator with default cadence.
func NewCoord() *Coord {
	co := &Coord{}
	co.Params.Defaults()
	return co
}

// StepFast advances the fast-time counter by one processing step.
func (co *Coord) StepFast() {
	co.FastTot++
	co.chunkCtr++
	co.slowCtr++
	co.Time += co.Params.TimePerStep
}

// ShouldUpdateChunking reports whether a medium-scale (chunking) update is
// due: true exactly when the chunking counter has reached its interval,
// and resets the counter.
func (co *Coord) ShouldUpdateChunking() bool {
	if co.chunkCtr < co.Params.ChunkInterval {
		return false
	}
	co.chunkCtr = 0
	co.ChunkTot++
	return true
}

// ShouldUpdateSlowDynamics reports whether a slow-scale (transmitter)
// update is due: true exactly when the slow counter has reached its
// interval, and resets the counter.
func (co *Coord) ShouldUpdateSlowDynamics() bool {
	if co.slowCtr < co.Params.SlowInterval {
		return false
	}
	co.slowCtr = 0
	co.SlowTot++
	return true
}

// ChunkRatio returns the achieved fast-to-medium update ratio, 0 before
// any medium update.
func (co *Coord) ChunkRatio() float32 {
	if co.ChunkTot == 0 {
		return 0
	}
	return float32(co.FastTot) / float32(co.ChunkTot)
}

// SlowRatio returns the achieved fast-to-slow update ratio, 0 before any
// slow update.
func (co *Coord) SlowRatio() float32 {
	if co.SlowTot == 0 {
		return 0
	}
	return float32(co.FastTot) / float32(co.SlowTot)
}

// Reset zeroes all counters and accumulated time.
func (co *Coord) Reset() {
	co.Time = 0
	co.FastTot = 0
	co.ChunkTot = 0
	co.SlowTot = 0
	co.chunkCtr = 0
	co.slowCtr = 0
}
