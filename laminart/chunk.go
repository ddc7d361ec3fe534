// Copyright (c) 2026, The Laminart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package laminart

import (
	"sort"

	"github.com/chewxy/math32"
	"github.com/goki/ki/kit"
	"github.com/goki/mat32"
)

// ChunkTypes classify temporal chunks by item count, following the
// working-memory capacity bands.
type ChunkTypes int

//go:generate stringer -type=ChunkTypes

var KiT_ChunkTypes = kit.Enums.AddEnum(ChunkTypesN, kit.NotBitFlag, nil)

func (ev ChunkTypes) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *ChunkTypes) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// SmallChunk is 1-3 items
	SmallChunk ChunkTypes = iota

	// MediumChunk is 4-5 items
	MediumChunk

	// LargeChunk is 6-7 items
	LargeChunk

	// SuperChunk is 8-12 items, typically only produced by merging
	SuperChunk

	ChunkTypesN
)

// ChunkItem is one snapshot of layer activation captured into a chunk.
type ChunkItem struct {
	Pattern []float32 `desc:"activation pattern at capture time"`
	Act     float32   `desc:"overall activation strength of the pattern"`
	Time    float32   `desc:"simulation time of capture, in seconds"`
	Seq     int       `desc:"sequence position within the source history"`
}

// Chunk is an immutable-membership temporal chunk: a coherent run of
// sequential activation snapshots treated as one higher-level unit.
// Membership changes only via Merge, which produces a new chunk; the only
// mutable field is Strength, which decays over time.
type Chunk struct {
	Items    []ChunkItem `desc:"member items in time order"`
	ID       int         `desc:"unique, monotonically increasing chunk id assigned by the layer"`
	FormedAt float32     `desc:"simulation time of formation"`
	Strength float32     `desc:"current strength -- mean member activation at formation, decays exponentially"`
}

// NewChunk forms a chunk from the given items (copied), with strength set
// to the mean item activation.
func NewChunk(id int, formedAt float32, items []ChunkItem) *Chunk {
	ck := &Chunk{ID: id, FormedAt: formedAt}
	ck.Items = make([]ChunkItem, len(items))
	copy(ck.Items, items)
	var sum float32
	for _, it := range ck.Items {
		sum += it.Act
	}
	if len(ck.Items) > 0 {
		ck.Strength = sum / float32(len(ck.Items))
	}
	return ck
}

// Size returns the number of member items.
func (ck *Chunk) Size() int {
	return len(ck.Items)
}

// Type returns the capacity band for this chunk's size.
func (ck *Chunk) Type() ChunkTypes {
	n := ck.Size()
	switch {
	case n <= 3:
		return SmallChunk
	case n <= 5:
		return MediumChunk
	case n <= 7:
		return LargeChunk
	default:
		return SuperChunk
	}
}

// Coherence returns the mean cosine similarity of consecutive member
// items, 1 for a singleton or empty chunk.  Only adjacent pairs are
// compared: chunk coherence is about sequential continuity, not all-pairs
// homogeneity.
func (ck *Chunk) Coherence() float32 {
	n := ck.Size()
	if n < 2 {
		return 1
	}
	var sum float32
	for i := 1; i < n; i++ {
		sum += CosineSim(ck.Items[i-1].Pattern, ck.Items[i].Pattern)
	}
	return sum / float32(n-1)
}

// Decay applies exponential strength decay over elapsed time dt:
// strength *= exp(-rate*dt).
func (ck *Chunk) Decay(rate, dt float32) {
	ck.Strength *= mat32.FastExp(-rate * dt)
}

// Representative returns the activation-weighted average of member
// patterns, normalized by total weight.  Returns an all-zero pattern when
// the total weight is 0 (defined sentinel) and nil for an empty chunk.
func (ck *Chunk) Representative() []float32 {
	if ck.Size() == 0 {
		return nil
	}
	n := len(ck.Items[0].Pattern)
	rep := make([]float32, n)
	var tot float32
	for _, it := range ck.Items {
		tot += it.Act
	}
	if tot == 0 {
		return rep
	}
	for _, it := range ck.Items {
		for i := 0; i < n && i < len(it.Pattern); i++ {
			rep[i] += it.Act * it.Pattern[i]
		}
	}
	for i := range rep {
		rep[i] /= tot
	}
	return rep
}

// mergeTimeTol is the timestamp tolerance below which two items from
// merged chunks count as the same capture and are deduplicated.
const mergeTimeTol = 1.0e-6

// Merge combines this chunk with other into a new chunk with the given
// fresh id: items with near-identical timestamps are deduplicated, the
// union is re-sorted by time, sequence positions are renumbered, and the
// formation time is the earlier of the two.  Strength is recomputed as the
// mean member activation.  Neither source chunk is modified.
func (ck *Chunk) Merge(other *Chunk, id int) *Chunk {
	all := make([]ChunkItem, 0, ck.Size()+other.Size())
	all = append(all, ck.Items...)
	for _, it := range other.Items {
		dup := false
		for _, have := range all {
			if math32.Abs(have.Time-it.Time) < mergeTimeTol {
				dup = true
				break
			}
		}
		if !dup {
			all = append(all, it)
		}
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Time < all[j].Time })
	for i := range all {
		all[i].Seq = i
	}
	formed := ck.FormedAt
	if other.FormedAt < formed {
		formed = other.FormedAt
	}
	return NewChunk(id, formed, all)
}
