package scene

import "golang.org/x/text/unicode/norm"

// PaletteMode selects the color family used when deriving parameters from
// text. ModeAuto picks one of the named palettes from the text hash.
type PaletteMode uint8

const (
	ModeAuto PaletteMode = iota
	ModeEmber
	ModeTide
	ModeMoss
	ModeViolet
)

// String returns the lower-case mode name.
func (m PaletteMode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeEmber:
		return "ember"
	case ModeTide:
		return "tide"
	case ModeMoss:
		return "moss"
	case ModeViolet:
		return "violet"
	}
	return "auto"
}

// Palette holds the named color roles a scene draws with.
type Palette struct {
	Main1           string
	Main2           string
	Main3           string
	Subtle          string
	Highlight       string
	BackgroundInner string
	BackgroundOuter string
}

var palettes = [...]Palette{
	{ // ember
		Main1: "#e8603c", Main2: "#f2a541", Main3: "#d93b3b",
		Subtle: "#6b4a3f", Highlight: "#ffd9a0",
		BackgroundInner: "#2b1a17", BackgroundOuter: "#120a09",
	},
	{ // tide
		Main1: "#3c9ee8", Main2: "#41d6f2", Main3: "#3b5bd9",
		Subtle: "#3f566b", Highlight: "#a0ecff",
		BackgroundInner: "#17222b", BackgroundOuter: "#090e12",
	},
	{ // moss
		Main1: "#5fe83c", Main2: "#a9f241", Main3: "#3bd974",
		Subtle: "#4a6b3f", Highlight: "#d2ffa0",
		BackgroundInner: "#1a2b17", BackgroundOuter: "#0a1209",
	},
	{ // violet
		Main1: "#a03ce8", Main2: "#e841c7", Main3: "#6f3bd9",
		Subtle: "#5a3f6b", Highlight: "#e3a0ff",
		BackgroundInner: "#22172b", BackgroundOuter: "#0e0912",
	},
}

// Params is the immutable parameter bundle a full scene is grown from.
// A bundle is only ever produced whole by ParamsFromText; nothing mutates
// it afterwards. Incremental edits keep using the bundle of the last full
// build.
type Params struct {
	// Seed drives the full-scene RNG stream.
	Seed uint32

	Palette Palette
	Mode    PaletteMode

	// Symmetry is the radial fold count, in [3, 8].
	Symmetry int

	// Density/shape knobs, each in [0, 1).
	DetailLevel    float64
	StructureLevel float64
	CurveBias      float64
	AccentLevel    float64

	// LayoutMode indexes the center polygon side table; see CenterSides.
	LayoutMode int
}

// layoutSides maps LayoutMode to the center polygon side count.
var layoutSides = [...]int{4, 5, 6, 8}

// CenterSides returns the side count of the center polygon. An
// out-of-range LayoutMode is an upstream contract violation; the result
// for one is implementation-defined (here: clamped into the table).
func (p Params) CenterSides() int {
	m := p.LayoutMode
	if m < 0 {
		m = 0
	}
	if m >= len(layoutSides) {
		m = len(layoutSides) - 1
	}
	return layoutSides[m]
}

// ParamsFromText deterministically derives a parameter bundle from text.
// The text is NFC-normalized first so canonically equivalent input yields
// the same bundle. Same (text, mode) always produces an identical bundle.
func ParamsFromText(text string, mode PaletteMode) Params {
	text = norm.NFC.String(text)

	h := uint32(0x811C9DC5)
	for i, r := range []rune(text) {
		h = StepHash(h, r, i)
	}

	// Independent knob streams: re-avalanche the fold with distinct salts
	// so each knob uses decorrelated bits.
	seed := Hash32(h ^ 0x01)
	k1 := Hash32(h ^ 0x9E02)
	k2 := Hash32(h ^ 0x9E03)
	k3 := Hash32(h ^ 0x9E04)
	k4 := Hash32(h ^ 0x9E05)
	k5 := Hash32(h ^ 0x9E06)
	k6 := Hash32(h ^ 0x9E07)

	pal := mode
	if mode == ModeAuto {
		pal = PaletteMode(k6%uint32(len(palettes))) + ModeEmber
	}

	return Params{
		Seed:           seed,
		Palette:        palettes[int(pal-ModeEmber)%len(palettes)],
		Mode:           pal,
		Symmetry:       3 + int(k1%6),
		DetailLevel:    unitFloat(k2),
		StructureLevel: unitFloat(k3),
		CurveBias:      unitFloat(k4),
		AccentLevel:    unitFloat(k5),
		LayoutMode:     int(k6 % uint32(len(layoutSides))),
	}
}

// unitFloat maps a 32-bit hash to [0, 1).
func unitFloat(x uint32) float64 {
	return float64(x) / 4294967296.0
}
