package render

import "github.com/ImTheBus/insig/scene"

// FrameKind distinguishes the two renderer entry points in a recording.
type FrameKind uint8

const (
	FrameFull FrameKind = iota
	FrameDiff
)

// Frame is one recorded renderer call.
type Frame struct {
	Kind    FrameKind
	Timings Timings

	// Elements is the full scene for FrameFull calls, the new scene for
	// FrameDiff calls.
	Elements []scene.Element

	// Diff is populated for FrameDiff calls.
	Diff scene.DiffResult
}

// Recorder is a Renderer that captures every call for later inspection.
// Tests assert against the recorded frames; the demo's replay mode prints
// them. The zero value is ready to use.
type Recorder struct {
	Frames []Frame
}

var _ Renderer = (*Recorder)(nil)

func (r *Recorder) RenderFull(elements []scene.Element, t Timings) {
	r.Frames = append(r.Frames, Frame{
		Kind:     FrameFull,
		Timings:  t,
		Elements: append([]scene.Element(nil), elements...),
	})
}

func (r *Recorder) RenderDiff(old, new []scene.Element, t Timings) {
	r.Frames = append(r.Frames, Frame{
		Kind:     FrameDiff,
		Timings:  t,
		Elements: append([]scene.Element(nil), new...),
		Diff:     scene.Diff(old, new),
	})
}

// Last returns the most recent frame, or nil if nothing was recorded.
func (r *Recorder) Last() *Frame {
	if len(r.Frames) == 0 {
		return nil
	}
	return &r.Frames[len(r.Frames)-1]
}
