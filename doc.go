// Package insig grows a deterministic vector insignia from text and keeps
// it updated incrementally as the text is edited.
//
// # Overview
//
// insig is a pure Go generative-scene engine. Text is hashed into a
// parameter bundle, the bundle is grown into an ordered list of visual
// elements (see the scene package), and subsequent edits are applied as
// minimal element-set deltas instead of full regenerations: appending a
// character adds a small motif batch, deleting it removes exactly that
// batch, and every surviving element keeps its identity so renderers can
// animate only what changed.
//
// # Quick Start
//
//	import (
//	    "github.com/ImTheBus/insig"
//	    "github.com/ImTheBus/insig/scene"
//	)
//
//	s := insig.NewSession()
//	s.Update("ok", scene.ModeAuto)   // full build
//	s.Update("ok!", scene.ModeAuto)  // append: one rune motif added
//	s.Update("ok", scene.ModeAuto)   // truncate: that motif removed
//	elements := s.Elements()
//
// Hook a renderer in with options:
//
//	rec := &render.Recorder{}
//	s := insig.NewSession(insig.WithRenderer(rec))
//
// # Determinism
//
// For a fixed (text, palette mode) a full build is bit-for-bit
// reproducible. Incremental appends intentionally diverge from a full
// rebuild of the same final text, because they draw from per-character RNG
// streams seeded by the session's running hash, which is a different
// stream than the full build uses. Both results are valid insignias; the
// divergence is documented behavior, not a defect.
//
// # Concurrency
//
// A Session is single-threaded by design: all generation and diffing run
// synchronously on Update, and nothing else mutates session state. Use
// one Session per editing surface; independent Sessions never interfere.
package insig
