package insig

import (
	"log/slog"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/ImTheBus/insig/render"
	"github.com/ImTheBus/insig/scene"
)

// liveHashSeed is the fixed value the running hash is reseeded to whenever
// session state is cleared or a full rebuild discards incremental history.
const liveHashSeed uint32 = 0x811C9DC5

// Session is the live incremental editing state for one insignia.
//
// A Session tracks the committed text, the authoritative element list and,
// for every character index, the IDs that character contributed. Update
// classifies each text change as a full rebuild, a no-op, a pure append,
// a pure end-truncation or an arbitrary edit, and mutates the scene with
// the smallest delta the classification allows.
//
// Session is exclusively owned by its caller: all generation and diffing
// run synchronously inside Update, no other component writes to it, and
// it is not safe for concurrent use. Independent Sessions never interfere
// (the running hash is per-session state, not package state).
type Session struct {
	renderer render.Renderer
	timings  render.Timings

	initialised  bool
	mode         scene.PaletteMode
	text         []rune
	params       scene.Params
	elements     []scene.Element
	charElements [][]string
	liveHash     uint32
}

// NewSession creates an empty session. It becomes initialised on the
// first Update with non-empty text.
func NewSession(opts ...SessionOption) *Session {
	o := defaultSessionOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Session{
		renderer: o.renderer,
		timings:  o.timings,
		liveHash: liveHashSeed,
	}
}

// Update commits a text change. The raw text is NFC-normalized and
// trimmed before comparison; empty trimmed text clears all state.
//
// Update has no return value: its effect is mutating the session and
// issuing render calls. Render calls are fire-and-forget; Update does
// not wait for transitions.
func (s *Session) Update(raw string, mode scene.PaletteMode) {
	text := []rune(strings.TrimSpace(norm.NFC.String(raw)))

	switch {
	case len(text) == 0:
		s.clear()
	case !s.initialised:
		s.rebuild(text, mode, "init")
	case mode != s.mode:
		s.rebuild(text, mode, "palette")
	case runesEqual(text, s.text):
		// Idempotent no-op: no mutation, no render call.
	case runesHavePrefix(text, s.text):
		s.appendChars(text)
	case runesHavePrefix(s.text, text):
		s.truncate(text)
	default:
		// Arbitrary edit (paste, mid-string change). Minimal diffing of
		// these is out of scope; incremental history is discarded.
		s.rebuild(text, mode, "arbitrary")
	}
}

// clear resets the session to its uninitialised state. If a scene
// existed, its removal is animated as a diff against the empty list.
func (s *Session) clear() {
	if !s.initialised {
		return
	}
	old := s.elements
	s.initialised = false
	s.text = nil
	s.params = scene.Params{}
	s.elements = nil
	s.charElements = nil
	s.liveHash = liveHashSeed
	Logger().Debug("session cleared", slog.Int("removed", len(old)))
	s.renderer.RenderDiff(old, nil, s.timings)
}

// rebuild derives a fresh parameter bundle from the full text and grows
// the scene from scratch, discarding all incremental history. The old
// scene's element lifetime ends here; structural IDs restart.
func (s *Session) rebuild(text []rune, mode scene.PaletteMode, why string) {
	s.mode = mode
	s.params = scene.ParamsFromText(string(text), mode)
	s.elements = scene.Build(s.params)
	s.charElements = make([][]string, len(text))
	s.text = text
	s.liveHash = liveHashSeed
	s.initialised = true
	Logger().Debug("full rebuild",
		slog.String("cause", why),
		slog.Int("chars", len(text)),
		slog.Int("elements", len(s.elements)))
	s.renderer.RenderFull(s.elements, s.timings)
}

// appendChars handles a pure append: every newly appended character, in
// left-to-right order and at its absolute index, advances the running
// hash, draws its motif from an RNG seeded with the result, and records
// its element IDs in the character's provenance slot.
func (s *Session) appendChars(text []rune) {
	old := append([]scene.Element(nil), s.elements...)
	newChars := len(text) - len(s.text)
	for i := len(s.text); i < len(text); i++ {
		r := text[i]
		s.liveHash = scene.StepHash(s.liveHash, r, i)
		els := s.strokeFor(r, i)
		ids := make([]string, 0, len(els))
		for _, e := range els {
			ids = append(ids, e.ID)
		}
		s.charElements = append(s.charElements, ids)
		s.elements = append(s.elements, els...)
	}
	s.text = text
	Logger().Debug("append",
		slog.Int("chars", newChars),
		slog.Int("added", len(s.elements)-len(old)))
	s.renderer.RenderDiff(old, s.elements, s.timings)
}

// truncate handles a pure end-truncation: the tail provenance slots are
// dropped and exactly the elements they contributed are removed. The
// running hash is not rewound: a retyped character is a brand-new event
// with fresh draws and fresh IDs.
func (s *Session) truncate(text []rune) {
	old := s.elements
	drop := make(map[string]struct{})
	for _, slot := range s.charElements[len(text):] {
		for _, id := range slot {
			drop[id] = struct{}{}
		}
	}
	kept := make([]scene.Element, 0, len(old)-len(drop))
	for _, e := range old {
		if _, gone := drop[e.ID]; !gone {
			kept = append(kept, e)
		}
	}
	s.elements = kept
	s.charElements = s.charElements[:len(text)]
	s.text = text
	Logger().Debug("truncate", slog.Int("removed", len(drop)))
	s.renderer.RenderDiff(old, s.elements, s.timings)
}

// strokeFor dispatches one character event to its motif generator. A
// space legitimately produces zero elements. The consonant class spends
// one leading draw to pick between the arc and twig motifs.
func (s *Session) strokeFor(r rune, index int) []scene.Element {
	rng := scene.NewRNG(s.liveHash)
	switch Classify(r) {
	case ClassSpace:
		return nil
	case ClassVowel:
		return scene.StrokeSparks(rng, s.params, index)
	case ClassDigit:
		return scene.StrokePetals(rng, s.params, index)
	case ClassConsonant:
		if rng.Float() < 0.35 {
			return scene.StrokeArc(rng, s.params, index)
		}
		return scene.StrokeBranch(rng, s.params, index)
	default:
		return scene.StrokeRune(rng, s.params, index)
	}
}

// Initialised reports whether a scene currently exists.
func (s *Session) Initialised() bool { return s.initialised }

// Text returns the last-committed trimmed text.
func (s *Session) Text() string { return string(s.text) }

// Params returns the parameter bundle the current scene was grown from.
// The zero bundle is returned for an uninitialised session.
func (s *Session) Params() scene.Params { return s.params }

// Elements returns a copy of the current element list.
func (s *Session) Elements() []scene.Element {
	return append([]scene.Element(nil), s.elements...)
}

// CharElements returns a copy of the per-character provenance: one slot
// per character of Text, each holding the element IDs that character
// contributed. Characters present at the last full build own no slots'
// IDs (their elements belong to the build itself).
func (s *Session) CharElements() [][]string {
	out := make([][]string, len(s.charElements))
	for i, slot := range s.charElements {
		out[i] = append([]string(nil), slot...)
	}
	return out
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// runesHavePrefix reports whether a begins with b.
func runesHavePrefix(a, b []rune) bool {
	if len(b) > len(a) {
		return false
	}
	return runesEqual(a[:len(b)], b)
}
