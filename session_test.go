package insig

import (
	"reflect"
	"testing"

	"github.com/ImTheBus/insig/render"
	"github.com/ImTheBus/insig/scene"
)

func idSet(els []scene.Element) map[string]bool {
	set := make(map[string]bool, len(els))
	for _, e := range els {
		set[e.ID] = true
	}
	return set
}

func TestSession_FirstUpdateBuildsFullScene(t *testing.T) {
	rec := &render.Recorder{}
	s := NewSession(WithRenderer(rec))

	s.Update("ok", scene.ModeAuto)

	if !s.Initialised() {
		t.Fatal("session not initialised after first update")
	}
	if s.Text() != "ok" {
		t.Errorf("Text() = %q, want %q", s.Text(), "ok")
	}
	if len(s.Elements()) == 0 {
		t.Fatal("no elements after full build")
	}
	if len(s.CharElements()) != 2 {
		t.Fatalf("charElements has %d slots, want 2", len(s.CharElements()))
	}
	if len(rec.Frames) != 1 || rec.Frames[0].Kind != render.FrameFull {
		t.Fatalf("expected exactly one full frame, got %d frames", len(rec.Frames))
	}
}

// The concrete append/truncate scenario: "ok" -> "ok!" adds exactly one
// rune-family motif batch recorded at slot 2, and backspacing restores
// the original ID set.
func TestSession_AppendThenTruncate(t *testing.T) {
	rec := &render.Recorder{}
	s := NewSession(WithRenderer(rec))

	s.Update("ok", scene.ModeAuto)
	l1 := s.Elements()

	s.Update("ok!", scene.ModeAuto)
	l2 := s.Elements()

	if len(l2) <= len(l1) {
		t.Fatal("append added no elements")
	}
	f := rec.Last()
	if f.Kind != render.FrameDiff {
		t.Fatal("append did not emit a diff frame")
	}
	if len(f.Diff.RemovedIDs) != 0 {
		t.Errorf("append removed elements: %v", f.Diff.RemovedIDs)
	}

	slots := s.CharElements()
	if len(slots) != 3 {
		t.Fatalf("charElements has %d slots, want 3", len(slots))
	}
	wantNew := make([]string, 0)
	for _, e := range l2[len(l1):] {
		wantNew = append(wantNew, e.ID)
	}
	if !reflect.DeepEqual(slots[2], wantNew) {
		t.Errorf("slot 2 = %v, want %v", slots[2], wantNew)
	}
	// '!' is punctuation: a single rune-bar polygon.
	if len(wantNew) != 1 {
		t.Errorf("rune motif produced %d elements, want 1", len(wantNew))
	}
	if got := l2[len(l1)]; got.Type != scene.TypePolygon || got.Layer != scene.LayerAccents {
		t.Errorf("rune motif element is %v in %q", got.Type, got.Layer)
	}

	s.Update("ok", scene.ModeAuto)
	if !reflect.DeepEqual(idSet(s.Elements()), idSet(l1)) {
		t.Fatal("truncation did not restore the pre-append ID set")
	}
	f = rec.Last()
	if f.Kind != render.FrameDiff || len(f.Diff.Added) != 0 {
		t.Fatal("truncation frame should remove only")
	}
	if !reflect.DeepEqual(f.Diff.RemovedIDs, wantNew) {
		t.Errorf("truncation removed %v, want %v", f.Diff.RemovedIDs, wantNew)
	}
}

func TestSession_TruncationRemovesExactlyAppendedIDs(t *testing.T) {
	s := NewSession()
	s.Update("seed", scene.ModeAuto)
	before := idSet(s.Elements())

	s.Update("seedling", scene.ModeAuto)
	s.Update("seed", scene.ModeAuto)

	if !reflect.DeepEqual(idSet(s.Elements()), before) {
		t.Fatal("appending then truncating characters did not restore the ID set")
	}
	if len(s.CharElements()) != 4 {
		t.Fatalf("charElements has %d slots, want 4", len(s.CharElements()))
	}
}

func TestSession_IdempotentNoOp(t *testing.T) {
	rec := &render.Recorder{}
	s := NewSession(WithRenderer(rec))

	s.Update("stable", scene.ModeAuto)
	frames := len(rec.Frames)
	els := s.Elements()

	s.Update("stable", scene.ModeAuto)
	s.Update("  stable  ", scene.ModeAuto) // trims to the same text

	if len(rec.Frames) != frames {
		t.Fatalf("no-op updates issued %d extra frames", len(rec.Frames)-frames)
	}
	if !reflect.DeepEqual(s.Elements(), els) {
		t.Fatal("no-op update mutated the scene")
	}
}

func TestSession_ClearOnEmptyText(t *testing.T) {
	rec := &render.Recorder{}
	s := NewSession(WithRenderer(rec))

	s.Update("something", scene.ModeAuto)
	n := len(s.Elements())
	s.Update("   ", scene.ModeAuto)

	if s.Initialised() {
		t.Fatal("session still initialised after clearing")
	}
	if len(s.Elements()) != 0 {
		t.Fatal("elements survived clearing")
	}
	if got := s.Text(); got != "" {
		t.Errorf("Text() = %q after clear", got)
	}
	f := rec.Last()
	if f.Kind != render.FrameDiff || len(f.Diff.RemovedIDs) != n || len(f.Diff.Added) != 0 {
		t.Fatalf("clear frame = +%d -%d, want +0 -%d", len(f.Diff.Added), len(f.Diff.RemovedIDs), n)
	}

	// Clearing an already-empty session is silent.
	frames := len(rec.Frames)
	s.Update("", scene.ModeAuto)
	if len(rec.Frames) != frames {
		t.Fatal("clearing an empty session issued a frame")
	}
}

func TestSession_ArbitraryEditRebuilds(t *testing.T) {
	rec := &render.Recorder{}
	s := NewSession(WithRenderer(rec))

	s.Update("hello", scene.ModeAuto)
	s.Update("hxllo", scene.ModeAuto) // mid-string edit

	f := rec.Last()
	if f.Kind != render.FrameFull {
		t.Fatal("arbitrary edit did not fall back to a full rebuild")
	}
	if len(s.CharElements()) != 5 {
		t.Fatalf("charElements has %d slots after rebuild, want 5", len(s.CharElements()))
	}
	for i, slot := range s.CharElements() {
		if len(slot) != 0 {
			t.Errorf("slot %d not empty after rebuild: %v", i, slot)
		}
	}
}

func TestSession_PaletteChangeRebuilds(t *testing.T) {
	rec := &render.Recorder{}
	s := NewSession(WithRenderer(rec))

	s.Update("hue", scene.ModeEmber)
	s.Update("hue", scene.ModeTide)

	if rec.Last().Kind != render.FrameFull {
		t.Fatal("palette change did not rebuild")
	}
	if s.Params().Mode != scene.ModeTide {
		t.Errorf("Params().Mode = %v, want tide", s.Params().Mode)
	}
}

func TestSession_WhitespaceCharProducesNoElements(t *testing.T) {
	s := NewSession()
	s.Update("ab", scene.ModeAuto)
	n := len(s.Elements())

	// Trailing whitespace trims away; interior whitespace is a real
	// character event that contributes zero elements.
	s.Update("ab c", scene.ModeAuto)

	slots := s.CharElements()
	if len(slots) != 4 {
		t.Fatalf("charElements has %d slots, want 4", len(slots))
	}
	if len(slots[2]) != 0 {
		t.Errorf("space slot holds IDs: %v", slots[2])
	}
	if len(slots[3]) == 0 {
		t.Error("appended letter produced no elements")
	}
	if len(s.Elements()) <= n {
		t.Error("append produced no new elements at all")
	}
}

func TestSession_IDsUniqueThroughout(t *testing.T) {
	s := NewSession()
	inputs := []string{"a", "ab", "ab1", "ab1!", "ab1", "ab1x", "ab", "abba", "ab"}
	for _, text := range inputs {
		s.Update(text, scene.ModeAuto)
		seen := make(map[string]bool)
		for _, e := range s.Elements() {
			if seen[e.ID] {
				t.Fatalf("after %q: duplicate ID %q", text, e.ID)
			}
			seen[e.ID] = true
		}
	}
}

// Incremental appends draw from per-character streams; a full rebuild of
// the same final text draws from one scene stream. The results differ by
// design; this asserts the documented divergence.
func TestSession_AppendDivergesFromRebuild(t *testing.T) {
	typed := NewSession()
	typed.Update("a", scene.ModeAuto)
	typed.Update("ab", scene.ModeAuto)

	rebuilt := NewSession()
	rebuilt.Update("ab", scene.ModeAuto)

	if reflect.DeepEqual(typed.Elements(), rebuilt.Elements()) {
		t.Fatal("typed and rebuilt scenes are identical; expected divergence")
	}
}

// Re-typing a truncated character is a brand-new event: fresh IDs, no
// identity reuse.
func TestSession_RetypeMintsFreshIDs(t *testing.T) {
	s := NewSession()
	s.Update("ok", scene.ModeAuto)

	s.Update("ok!", scene.ModeAuto)
	first := s.CharElements()[2]

	s.Update("ok", scene.ModeAuto)
	s.Update("ok!", scene.ModeAuto)
	second := s.CharElements()[2]

	if len(first) == 0 || len(second) == 0 {
		t.Fatal("rune motif produced no elements")
	}
	for _, a := range first {
		for _, b := range second {
			if a == b {
				t.Fatalf("ID %q reused across distinct edit events", a)
			}
		}
	}
}
