// Package render defines the rendering contract the live insignia engine
// drives its output through.
//
// The engine itself never touches a screen: it produces element lists and
// element-set deltas, and hands them to a Renderer. Renderer calls are
// fire-and-forget: the engine does not wait for visual transitions to
// finish before accepting the next edit, and a renderer must tolerate a
// new call arriving while a previous animation is still settling.
//
// Two implementations ship with the package:
//
//   - NopRenderer: discards everything; the default for headless use.
//   - Recorder: captures every call for inspection, used by tests and the
//     demo's replay mode.
//
// Real DOM/SVG/canvas renderers live outside this module and implement
// the same interface.
package render
