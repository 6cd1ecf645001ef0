package insig

import "github.com/ImTheBus/insig/render"

// SessionOption configures a Session during creation.
// Use functional options to customize Session behavior.
//
// Example:
//
//	// Headless session (default)
//	s := insig.NewSession()
//
//	// Session driving a renderer with custom pacing
//	s := insig.NewSession(
//	    insig.WithRenderer(myRenderer),
//	    insig.WithTimings(render.Timings{TotalDuration: time.Second}),
//	)
type SessionOption func(*sessionOptions)

// sessionOptions holds optional configuration for Session creation.
type sessionOptions struct {
	renderer render.Renderer
	timings  render.Timings
}

// defaultSessionOptions returns the default session options.
func defaultSessionOptions() sessionOptions {
	return sessionOptions{
		renderer: render.NopRenderer{},
		timings:  render.DefaultTimings,
	}
}

// WithRenderer sets the renderer the session drives on every scene
// change. Use this for dependency injection of a real display renderer
// or a render.Recorder in tests.
func WithRenderer(r render.Renderer) SessionOption {
	return func(o *sessionOptions) {
		if r != nil {
			o.renderer = r
		}
	}
}

// WithTimings sets the animation pacing passed to every render call.
func WithTimings(t render.Timings) SessionOption {
	return func(o *sessionOptions) {
		o.timings = t
	}
}
