// Copyright (c) 2026, The Laminart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package laminart

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/goki/mat32"
)

func mkItems(pats [][]float32, acts []float32, t0, dt float32) []ChunkItem {
	items := make([]ChunkItem, len(pats))
	for i := range pats {
		items[i] = ChunkItem{Pattern: pats[i], Act: acts[i], Time: t0 + float32(i)*dt, Seq: i}
	}
	return items
}

func TestChunkStrength(t *testing.T) {
	items := mkItems([][]float32{{1, 0}, {1, 0}, {1, 0}}, []float32{0.6, 0.8, 1.0}, 0, 0.1)
	ck := NewChunk(0, 0.3, items)
	if dif := math32.Abs(ck.Strength - 0.8); dif > difTol {
		t.Errorf("strength = %v, want 0.8 (mean item activation)", ck.Strength)
	}
}

func TestChunkDecayLaw(t *testing.T) {
	items := mkItems([][]float32{{1, 0}}, []float32{0.8}, 0, 0.1)
	ck := NewChunk(0, 0, items)
	rate := float32(0.1)
	dt := float32(2)
	before := ck.Strength
	ck.Decay(rate, dt)
	cor := before * mat32.FastExp(-rate*dt)
	if dif := math32.Abs(ck.Strength - cor); dif > 1.0e-6 {
		t.Errorf("decayed strength = %v, want %v", ck.Strength, cor)
	}
}

func TestChunkCoherence(t *testing.T) {
	// singleton: 1 by definition
	one := NewChunk(0, 0, mkItems([][]float32{{1, 0}}, []float32{1}, 0, 0.1))
	if one.Coherence() != 1 {
		t.Errorf("singleton coherence = %v, want 1", one.Coherence())
	}
	// identical patterns: 1
	same := NewChunk(1, 0, mkItems([][]float32{{1, 1}, {1, 1}, {1, 1}}, []float32{1, 1, 1}, 0, 0.1))
	if dif := math32.Abs(same.Coherence() - 1); dif > difTol {
		t.Errorf("identical coherence = %v, want 1", same.Coherence())
	}
	// adjacent pairs only: [1,0],[1,0],[0,1] -> cos 1 then cos 0 -> 0.5
	mix := NewChunk(2, 0, mkItems([][]float32{{1, 0}, {1, 0}, {0, 1}}, []float32{1, 1, 1}, 0, 0.1))
	if dif := math32.Abs(mix.Coherence() - 0.5); dif > difTol {
		t.Errorf("mixed coherence = %v, want 0.5", mix.Coherence())
	}
}

func TestChunkTypes(t *testing.T) {
	sizes := map[int]ChunkTypes{
		1: SmallChunk, 3: SmallChunk,
		4: MediumChunk, 5: MediumChunk,
		6: LargeChunk, 7: LargeChunk,
		8: SuperChunk, 12: SuperChunk,
	}
	for n, typ := range sizes {
		pats := make([][]float32, n)
		acts := make([]float32, n)
		for i := range pats {
			pats[i] = []float32{1}
			acts[i] = 1
		}
		ck := NewChunk(0, 0, mkItems(pats, acts, 0, 0.1))
		if ck.Type() != typ {
			t.Errorf("size %d: type = %v, want %v", n, ck.Type(), typ)
		}
	}
}

func TestChunkRepresentative(t *testing.T) {
	// activation-weighted average: (1*[1,0] + 3*[0,1]) / 4 = [0.25, 0.75]
	ck := NewChunk(0, 0, mkItems([][]float32{{1, 0}, {0, 1}}, []float32{1, 3}, 0, 0.1))
	rep := ck.Representative()
	cor := []float32{0.25, 0.75}
	for i := range cor {
		if dif := math32.Abs(rep[i] - cor[i]); dif > difTol {
			t.Errorf("rep[%d] = %v, want %v", i, rep[i], cor[i])
		}
	}
	// zero total weight: defined all-zero sentinel, no NaN
	zk := NewChunk(1, 0, mkItems([][]float32{{1, 0}}, []float32{0}, 0, 0.1))
	zrep := zk.Representative()
	for i := range zrep {
		if zrep[i] != 0 || math32.IsNaN(zrep[i]) {
			t.Errorf("zero-weight rep[%d] = %v, want 0", i, zrep[i])
		}
	}
}

func TestChunkMerge(t *testing.T) {
	a := NewChunk(0, 1.0, mkItems([][]float32{{1, 0}, {1, 0}}, []float32{1, 1}, 0.0, 0.1))
	// second chunk shares the 0.1 timestamp (within 1e-6) and adds 0.2, 0.3
	b := NewChunk(1, 0.5, mkItems([][]float32{{1, 0}, {0, 1}, {0, 1}}, []float32{1, 1, 1}, 0.1, 0.1))

	mg := a.Merge(b, 2)
	if mg.ID != 2 {
		t.Errorf("merged id = %v, want 2", mg.ID)
	}
	if mg.Size() != 4 { // 0.0, 0.1 (dedup), 0.2, 0.3
		t.Fatalf("merged size = %v, want 4", mg.Size())
	}
	if mg.FormedAt != 0.5 {
		t.Errorf("merged formation time = %v, want min(1.0, 0.5) = 0.5", mg.FormedAt)
	}
	for i := 1; i < mg.Size(); i++ {
		if mg.Items[i].Time <= mg.Items[i-1].Time {
			t.Errorf("merged items not sorted by time at %d", i)
		}
		if mg.Items[i].Seq != i {
			t.Errorf("merged seq[%d] = %v, want %v", i, mg.Items[i].Seq, i)
		}
	}
	// sources unchanged
	if a.Size() != 2 || b.Size() != 3 {
		t.Errorf("merge modified source chunks: %d, %d", a.Size(), b.Size())
	}
}
