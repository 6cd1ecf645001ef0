package render

import (
	"time"

	"github.com/ImTheBus/insig/scene"
)

// Timings controls how a renderer paces its transitions.
type Timings struct {
	// TotalDuration is the overall animation length for one render call.
	TotalDuration time.Duration

	// PieceStagger is the delay between successive element animations.
	PieceStagger time.Duration
}

// DefaultTimings are the timings the engine uses when none are configured.
var DefaultTimings = Timings{
	TotalDuration: 900 * time.Millisecond,
	PieceStagger:  18 * time.Millisecond,
}

// Renderer consumes scene output from a live session.
//
// Renderers are NOT required to be thread-safe: the engine is
// single-threaded and issues calls sequentially. Both methods are
// fire-and-forget; they must not block on animation completion.
type Renderer interface {
	// RenderFull (re)draws a complete scene from scratch.
	RenderFull(elements []scene.Element, t Timings)

	// RenderDiff animates the transition between two scene snapshots.
	// Implementations reconcile the lists with scene.Diff (or receive an
	// equivalent delta) and animate only added and removed elements;
	// persisting IDs are left untouched.
	RenderDiff(old, new []scene.Element, t Timings)
}

// NopRenderer discards all render calls.
type NopRenderer struct{}

var _ Renderer = NopRenderer{}

func (NopRenderer) RenderFull([]scene.Element, Timings) {}

func (NopRenderer) RenderDiff([]scene.Element, []scene.Element, Timings) {}
