package scene

import (
	"reflect"
	"testing"
)

func TestParamsFromText_Deterministic(t *testing.T) {
	a := ParamsFromText("hello insignia", ModeAuto)
	b := ParamsFromText("hello insignia", ModeAuto)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same input produced different bundles:\n%+v\n%+v", a, b)
	}
}

func TestParamsFromText_Bounds(t *testing.T) {
	inputs := []string{"", "a", "ok", "hello world", "日本語テキスト", "1234567890", "!@#$%^&*()"}
	for _, text := range inputs {
		t.Run(text, func(t *testing.T) {
			p := ParamsFromText(text, ModeAuto)
			if p.Symmetry < 3 || p.Symmetry > 8 {
				t.Errorf("Symmetry = %d, want [3,8]", p.Symmetry)
			}
			for name, v := range map[string]float64{
				"DetailLevel":    p.DetailLevel,
				"StructureLevel": p.StructureLevel,
				"CurveBias":      p.CurveBias,
				"AccentLevel":    p.AccentLevel,
			} {
				if v < 0 || v >= 1 {
					t.Errorf("%s = %v, want [0,1)", name, v)
				}
			}
			if p.LayoutMode < 0 || p.LayoutMode > 3 {
				t.Errorf("LayoutMode = %d, want [0,3]", p.LayoutMode)
			}
			if p.Mode == ModeAuto {
				t.Error("auto mode was not resolved to a concrete palette")
			}
		})
	}
}

func TestParamsFromText_ForcedPalette(t *testing.T) {
	p := ParamsFromText("anything", ModeTide)
	if p.Mode != ModeTide {
		t.Errorf("Mode = %v, want tide", p.Mode)
	}
	if p.Palette != palettes[int(ModeTide-ModeEmber)] {
		t.Error("palette does not match the forced mode")
	}
}

// Canonically equivalent input must hash identically: e-acute composed
// vs. e plus combining acute.
func TestParamsFromText_NFCEquivalence(t *testing.T) {
	a := ParamsFromText("café", ModeAuto)
	b := ParamsFromText("café", ModeAuto)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("canonically equivalent inputs produced different bundles")
	}
}

func TestParamsFromText_DifferentTextsDiffer(t *testing.T) {
	a := ParamsFromText("alpha", ModeAuto)
	b := ParamsFromText("beta", ModeAuto)
	if a.Seed == b.Seed {
		t.Error("different texts produced the same seed")
	}
}

func TestCenterSides(t *testing.T) {
	tests := []struct {
		name string
		mode int
		want int
	}{
		{"mode 0", 0, 4},
		{"mode 1", 1, 5},
		{"mode 2", 2, 6},
		{"mode 3", 3, 8},
		{"below range clamps low", -1, 4},
		{"above range clamps high", 99, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Params{LayoutMode: tt.mode}
			if got := p.CenterSides(); got != tt.want {
				t.Errorf("CenterSides() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPaletteMode_String(t *testing.T) {
	tests := []struct {
		mode PaletteMode
		want string
	}{
		{ModeAuto, "auto"},
		{ModeEmber, "ember"},
		{ModeTide, "tide"},
		{ModeMoss, "moss"},
		{ModeViolet, "violet"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}
