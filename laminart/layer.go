// Copyright (c) 2026, The Laminart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package laminart

import (
	"fmt"

	"github.com/emer/emergent/prjn"
	"github.com/emer/etable/etensor"
	"github.com/emer/etable/minmax"
	"github.com/goki/ki/ints"
	"github.com/goki/ki/kit"
)

// ChunkPhases are the states of the chunking state machine.
type ChunkPhases int

//go:generate stringer -type=ChunkPhases

var KiT_ChunkPhases = kit.Enums.AddEnum(ChunkPhasesN, kit.NotBitFlag, nil)

func (ev ChunkPhases) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *ChunkPhases) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Idle: no history accumulated yet
	Idle ChunkPhases = iota

	// Accumulating: history growing, formation conditions not yet met
	Accumulating

	// Candidate: formation conditions currently met; FormChunk will succeed
	Candidate

	ChunkPhasesN
)

// HistItem is one bounded-history snapshot of layer activation.
type HistItem struct {
	Pattern []float32 `desc:"activation pattern snapshot"`
	Act     float32   `desc:"mean absolute activation of the pattern"`
	Time    float32   `desc:"simulation time of the snapshot"`
}

// LateralParams configure the lateral-inhibition kernel the layer owns on
// behalf of its pathway's shunting dynamics.
type LateralParams struct {
	On  bool         `desc:"compute lateral inhibitory sums for the decorated pathway"`
	Gi  float32      `viewif:"On" def:"1" min:"0" desc:"overall lateral inhibition gain"`
	Pat prjn.Pattern `viewif:"On" desc:"connectivity pattern for the lateral kernel -- Full by default; self connections are always excluded"`
}

func (lp *LateralParams) Defaults() {
	lp.On = false
	lp.Gi = 1
	lp.Pat = prjn.NewFull()
}

// LayerParams are all the chunking-layer parameters.
type LayerParams struct {
	MinChunkSize int           `def:"3" min:"1" desc:"minimum history size and chunk size for formation"`
	MaxChunkSize int           `def:"7" min:"1" desc:"maximum number of most-recent items consumed into one chunk -- larger (Super) chunks arise only from merging"`
	MaxHistory   int           `def:"20" min:"1" desc:"bounded history size -- oldest snapshots evicted first"`
	FormThresh   float32       `def:"0.5" min:"0" desc:"minimum mean recent activation magnitude for chunk formation"`
	CoherThresh  float32       `def:"0.7" min:"0" max:"1" desc:"minimum mean pairwise coherence (adjacent cosine similarity) of recent items for chunk formation"`
	DecayRate    float32       `def:"0.1" min:"0" desc:"exponential strength decay rate for active chunks, per second of simulation time"`
	CtxWeight    float32       `def:"0.3" min:"0" max:"1" desc:"default blend weight of chunk-derived temporal context vs. current activation in the exposed layer state"`
	Lateral      LateralParams `view:"inline" desc:"lateral inhibition kernel configuration"`
}

func (lp *LayerParams) Defaults() {
	lp.MinChunkSize = 3
	lp.MaxChunkSize = 7
	lp.MaxHistory = 20
	lp.FormThresh = 0.5
	lp.CoherThresh = 0.7
	lp.DecayRate = 0.1
	lp.CtxWeight = 0.3
	lp.Lateral.Defaults()
	lp.Update()
}

// Update must be called after any changes to parameters
func (lp *LayerParams) Update() {
	if lp.MaxChunkSize < lp.MinChunkSize {
		lp.MaxChunkSize = lp.MinChunkSize
	}
}

// LayerState is the externally exposed layer snapshot: the current
// activation pattern plus the chunk-derived temporal context, if any chunk
// has formed yet.
type LayerState struct {
	Act     []float32 `desc:"current activation pattern"`
	Context []float32 `desc:"temporal context aggregated from active chunks, nil if none formed yet"`
	Time    float32   `desc:"simulation time of this state"`
}

// Combined blends activation and context linearly by weight w in [0,1]:
// (1-w)*act + w*context.  With no context it returns a copy of the
// activation regardless of w.
func (ls *LayerState) Combined(w float32) []float32 {
	out := make([]float32, len(ls.Act))
	if ls.Context == nil {
		copy(out, ls.Act)
		return out
	}
	for i := range ls.Act {
		out[i] = (1-w)*ls.Act[i] + w*ls.Context[i]
	}
	return out
}

// Layer is a temporal chunking layer: it maintains a bounded activation
// history, forms temporal chunks out of coherent runs of recent
// activations, decays, prunes, and merges chunks, and exposes a blended
// layer state combining current activation with chunk-derived temporal
// context.  It optionally owns a decorated pathway through which inputs
// are propagated, and the lateral-inhibition kernel that the pathway's
// shunting dynamics consume.
type Layer struct {
	Params  LayerParams `desc:"all chunking-layer parameters"`
	Path    *Path       `desc:"optional decorated pathway that inputs are propagated through -- nil means inputs are recorded as-is"`
	Dim     int         `inactive:"+" desc:"layer dimension, lazily bound on first input"`
	Hist    []HistItem  `desc:"bounded FIFO history of activation snapshots"`
	Chunks  []*Chunk    `desc:"currently active chunks"`
	NextID  int         `inactive:"+" desc:"monotonically increasing chunk id counter"`
	CurTime float32     `inactive:"+" desc:"current simulation time in seconds"`
	CurAct  []float32   `desc:"most recent activation pattern"`
	Phase   ChunkPhases `inactive:"+" desc:"current chunking state-machine phase"`

	HistAct minmax.AvgMax32 `inactive:"+" desc:"running avg/max of history activation magnitudes, for diagnostics"`

	kernel []float32 `view:"-" desc:"lateral weight kernel, Dim x Dim row-major, built from Params.Lateral.Pat"`
	inhib  []float32 `view:"-" desc:"scratch inhibitory sum buffer"`
}

// NewLayer returns a chunking layer with default parameters and no bound
// dimension.
func NewLayer() *Layer {
	ly := &Layer{}
	ly.Params.Defaults()
	return ly
}

// SetContextWeight overrides the context blend weight used by State.
// w must be in [0,1].
func (ly *Layer) SetContextWeight(w float32) error {
	if w < 0 || w > 1 {
		return fmt.Errorf("Layer.SetContextWeight: %v outside [0,1]", w)
	}
	ly.Params.CtxWeight = w
	return nil
}

// bindDim lazily binds the layer dimension and builds the lateral kernel.
func (ly *Layer) bindDim(n int) error {
	if ly.Dim != 0 {
		if ly.Dim != n {
			return fmt.Errorf("Layer: input dimension %d != bound dimension %d", n, ly.Dim)
		}
		return nil
	}
	ly.Dim = n
	ly.CurAct = make([]float32, n)
	ly.inhib = make([]float32, n)
	ly.buildKernel()
	if ly.Path != nil && ly.Params.Lateral.On {
		ly.Path.Lateral = ly
	}
	return nil
}

// buildKernel constructs the Dim x Dim lateral weight kernel from the
// configured connectivity pattern, excluding self connections.
func (ly *Layer) buildKernel() {
	n := ly.Dim
	ly.kernel = make([]float32, n*n)
	if !ly.Params.Lateral.On || ly.Params.Lateral.Pat == nil {
		return
	}
	shp := etensor.NewShape([]int{n}, nil, nil)
	_, _, cons := ly.Params.Lateral.Pat.Connect(shp, shp, true)
	cbits := cons.Values
	for ri := 0; ri < n; ri++ {
		for si := 0; si < n; si++ {
			if ri == si {
				continue
			}
			if cbits.Index(ri*n + si) {
				ly.kernel[ri*n+si] = 1
			}
		}
	}
}

// InhibSums returns the per-channel lateral inhibitory sums for the given
// activations: Gi * sum_j W_ij * act_j over j != i.  Implements the
// pathway InhibSource interface.  The returned slice is reused across
// calls.
func (ly *Layer) InhibSums(act []float32) []float32 {
	n := ly.Dim
	for ri := 0; ri < n; ri++ {
		var sum float32
		row := ly.kernel[ri*n : (ri+1)*n]
		for si, w := range row {
			if w != 0 {
				sum += w * act[si]
			}
		}
		ly.inhib[ri] = ly.Params.Lateral.Gi * sum
	}
	return ly.inhib
}

// ProcessWithChunking advances the layer by dt with the given input
// pattern: propagates through the decorated pathway if present, records
// the result into the bounded history, advances the chunking state
// machine (forming a chunk when all conditions hold), decays existing
// chunk strengths, and returns the blended layer state pattern.
func (ly *Layer) ProcessWithChunking(input []float32, dt float32) ([]float32, error) {
	if err := checkPattern("Layer.ProcessWithChunking", input); err != nil {
		return nil, err
	}
	if err := ly.bindDim(len(input)); err != nil {
		return nil, err
	}
	out := input
	if ly.Path != nil {
		po, err := ly.Path.Propagate(input)
		if err != nil {
			return nil, err
		}
		out = po
	}
	ly.CurTime += dt
	copy(ly.CurAct, out)
	ly.addToHistory(out)
	ly.decayChunks(dt)

	if ly.ShouldFormChunk() {
		ly.Phase = Candidate
		ly.FormChunk()
	} else if len(ly.Hist) > 0 {
		ly.Phase = Accumulating
	}

	st := ly.State()
	return st.Combined(ly.Params.CtxWeight), nil
}

// addToHistory appends a snapshot, evicting the oldest entries beyond
// MaxHistory (strict FIFO).
func (ly *Layer) addToHistory(pat []float32) {
	cp := make([]float32, len(pat))
	copy(cp, pat)
	hi := HistItem{Pattern: cp, Act: MeanAbs(cp), Time: ly.CurTime}
	ly.Hist = append(ly.Hist, hi)
	if over := len(ly.Hist) - ly.Params.MaxHistory; over > 0 {
		ly.Hist = ly.Hist[over:]
	}
	ly.HistAct.UpdateVal(hi.Act, int32(len(ly.Hist)-1))
	ly.HistAct.CalcAvg()
}

// recentWindow returns the most recent min(MaxChunkSize, len(Hist)) items.
func (ly *Layer) recentWindow() []HistItem {
	n := ints.MinInt(ly.Params.MaxChunkSize, len(ly.Hist))
	return ly.Hist[len(ly.Hist)-n:]
}

// ShouldFormChunk reports whether all chunk formation conditions hold:
// history size >= MinChunkSize, mean recent activation magnitude >=
// FormThresh, and mean adjacent coherence of the recent window >=
// CoherThresh.
func (ly *Layer) ShouldFormChunk() bool {
	if len(ly.Hist) < ly.Params.MinChunkSize {
		return false
	}
	win := ly.recentWindow()
	var act float32
	for _, it := range win {
		act += it.Act
	}
	act /= float32(len(win))
	if act < ly.Params.FormThresh {
		return false
	}
	return ly.windowCoherence(win) >= ly.Params.CoherThresh
}

// windowCoherence is the mean cosine similarity of consecutive window
// items, 1 for fewer than 2 items.
func (ly *Layer) windowCoherence(win []HistItem) float32 {
	if len(win) < 2 {
		return 1
	}
	var sum float32
	for i := 1; i < len(win); i++ {
		sum += CosineSim(win[i-1].Pattern, win[i].Pattern)
	}
	return sum / float32(len(win)-1)
}

// FormChunk consumes the most recent min(MaxChunkSize, history size) items
// into a new chunk with a fresh monotonically increasing id, returning nil
// if the formation conditions do not currently hold.  The consumed items
// are removed from the history, and the state machine returns to
// Accumulating.
func (ly *Layer) FormChunk() *Chunk {
	if !ly.ShouldFormChunk() {
		return nil
	}
	win := ly.recentWindow()
	items := make([]ChunkItem, len(win))
	for i, it := range win {
		items[i] = ChunkItem{Pattern: it.Pattern, Act: it.Act, Time: it.Time, Seq: i}
	}
	ck := NewChunk(ly.NextID, ly.CurTime, items)
	ly.NextID++
	ly.Chunks = append(ly.Chunks, ck)
	ly.Hist = ly.Hist[:len(ly.Hist)-len(win)]
	ly.Phase = Accumulating
	return ck
}

// decayChunks applies exponential strength decay to all active chunks.
func (ly *Layer) decayChunks(dt float32) {
	for _, ck := range ly.Chunks {
		ck.Decay(ly.Params.DecayRate, dt)
	}
}

// PruneChunks removes chunks whose strength has decayed below the given
// threshold, returning the number removed.
func (ly *Layer) PruneChunks(thresh float32) int {
	kept := ly.Chunks[:0]
	n := 0
	for _, ck := range ly.Chunks {
		if ck.Strength < thresh {
			n++
			continue
		}
		kept = append(kept, ck)
	}
	ly.Chunks = kept
	return n
}

// MergeChunks replaces chunks a and b (by position in Chunks) with their
// merge, which receives a fresh id.  Returns the merged chunk.
func (ly *Layer) MergeChunks(a, b int) (*Chunk, error) {
	if a == b || a < 0 || b < 0 || a >= len(ly.Chunks) || b >= len(ly.Chunks) {
		return nil, fmt.Errorf("Layer.MergeChunks: invalid chunk indexes %d, %d of %d", a, b, len(ly.Chunks))
	}
	mg := ly.Chunks[a].Merge(ly.Chunks[b], ly.NextID)
	ly.NextID++
	if a < b {
		a, b = b, a
	}
	// remove higher index first
	ly.Chunks = append(ly.Chunks[:a], ly.Chunks[a+1:]...)
	ly.Chunks = append(ly.Chunks[:b], ly.Chunks[b+1:]...)
	ly.Chunks = append(ly.Chunks, mg)
	return mg, nil
}

// TemporalContext aggregates all active chunks' representative patterns
// into one strength-weighted context pattern of layer dimension.
// Returns nil when no chunks are active.
func (ly *Layer) TemporalContext() []float32 {
	if len(ly.Chunks) == 0 || ly.Dim == 0 {
		return nil
	}
	ctx := make([]float32, ly.Dim)
	var tot float32
	for _, ck := range ly.Chunks {
		tot += ck.Strength
	}
	if tot == 0 {
		return ctx
	}
	for _, ck := range ly.Chunks {
		rep := ck.Representative()
		for i := 0; i < ly.Dim && i < len(rep); i++ {
			ctx[i] += ck.Strength * rep[i]
		}
	}
	for i := range ctx {
		ctx[i] /= tot
	}
	return ctx
}

// State returns the current layer state: activation, temporal context
// (nil if no chunks), and time.
func (ly *Layer) State() *LayerState {
	return &LayerState{
		Act:     ly.CurAct,
		Context: ly.TemporalContext(),
		Time:    ly.CurTime,
	}
}
