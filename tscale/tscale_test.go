// Copyright (c) 2026, The Laminart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tscale

import "testing"

func TestDurationOrdering(t *testing.T) {
	scales := []TimeScales{Fast, Medium, Slow, VerySlow}
	for i, ts := range scales {
		if ts.MinDuration() >= ts.MaxDuration() {
			t.Errorf("%v: MinDuration %v not < MaxDuration %v", ts, ts.MinDuration(), ts.MaxDuration())
		}
		td := ts.TypicalDuration()
		if td < ts.MinDuration() || td > ts.MaxDuration() {
			t.Errorf("%v: TypicalDuration %v outside [%v, %v]", ts, td, ts.MinDuration(), ts.MaxDuration())
		}
		if i > 0 {
			prev := scales[i-1]
			if td <= prev.TypicalDuration() {
				t.Errorf("%v: TypicalDuration %v not > %v's %v", ts, td, prev, prev.TypicalDuration())
			}
		}
	}
}

func TestSeparationFactor(t *testing.T) {
	scales := []TimeScales{Fast, Medium, Slow, VerySlow}
	for _, a := range scales {
		for _, b := range scales {
			sf := a.SeparationFactor(b)
			if sf < 1 {
				t.Errorf("SeparationFactor(%v, %v) = %v < 1", a, b, sf)
			}
			if sf != b.SeparationFactor(a) {
				t.Errorf("SeparationFactor not symmetric for %v, %v", a, b)
			}
		}
	}
	if sf := Fast.SeparationFactor(Fast); sf != 1 {
		t.Errorf("self separation = %v, want 1", sf)
	}
	if sf := Fast.SeparationFactor(Slow); sf != 40 {
		t.Errorf("Fast vs Slow separation = %v, want 40", sf)
	}
}

func TestString(t *testing.T) {
	if Fast.String() != "Fast" || VerySlow.String() != "VerySlow" {
		t.Errorf("String() wrong: %v %v", Fast.String(), VerySlow.String())
	}
	var ts TimeScales
	if err := ts.FromString("Slow"); err != nil || ts != Slow {
		t.Errorf("FromString failed: %v %v", ts, err)
	}
}
