// Copyright (c) 2026, The Laminart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package laminart is the overall repository for the temporal-dynamics core of
a canonical laminar (Grossberg-style ART) circuit, implemented in the Go
language (golang).

This top-level of the repository has no functional code -- everything is
organized into the following sub-packages:

* laminart: the core circuit: the temporal-dynamics pathway decorator that
composes shunting and habituative transmitter dynamics onto any signal
pathway, the asymmetric ART matching / vigilance processor, the top-down
prediction (expectation) generator, the temporal chunking layer, and the
multi-time-scale update coordinator.

* shunt: the fast shunting (lateral inhibition / self-excitation) membrane
dynamics as a pure derivative function with closed-form equilibrium.

* habit: the slow habituative transmitter-gating dynamics (depletes with
use, recovers at rest), also with a closed-form equilibrium.

* integ: explicit bounded integration (Euler and Heun) over any state
exposing its variables as a float32 slice.

* tscale: the Fast / Medium / Slow / VerySlow time-scale descriptors and
their separation factors.

The category-learning search loop of the surrounding ART network (category
creation, winner selection, weight storage) is an external collaborator:
this repository only supplies match scores, gated signals, and top-down
expectations to that loop.
*/
package laminart
