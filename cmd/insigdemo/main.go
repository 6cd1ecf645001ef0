// Command insigdemo generates an insignia from text and writes it out as
// SVG or PNG. With -replay it feeds the text through a live session one
// rune at a time and logs the element delta of every edit.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/ImTheBus/insig"
	"github.com/ImTheBus/insig/raster"
	"github.com/ImTheBus/insig/render"
	"github.com/ImTheBus/insig/scene"
	"github.com/ImTheBus/insig/svg"
)

func main() {
	var (
		text    = flag.String("text", "insignia", "input text")
		palette = flag.String("palette", "auto", "palette mode: auto, ember, tide, moss, violet")
		output  = flag.String("o", "insignia.svg", "output file (.svg or .png)")
		size    = flag.Int("size", 800, "output size in pixels")
		asPNG   = flag.Bool("png", false, "write PNG instead of SVG")
		replay  = flag.Bool("replay", false, "replay the text rune by rune through a live session")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		insig.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	mode := paletteMode(*palette)

	var elements []scene.Element
	if *replay {
		elements = replaySession(*text, mode)
	} else {
		elements = scene.Build(scene.ParamsFromText(*text, mode))
	}

	if *asPNG {
		if err := raster.SavePNG(*output, elements, *size); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
	} else {
		doc := svg.Document(elements, *size)
		if err := os.WriteFile(*output, []byte(doc), 0o644); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
	}

	log.Printf("Insignia saved to %s (%d elements)\n", *output, len(elements))
}

// replaySession types the text into a session one rune at a time, the way
// a live editor would, and logs each resulting frame.
func replaySession(text string, mode scene.PaletteMode) []scene.Element {
	rec := &render.Recorder{}
	s := insig.NewSession(insig.WithRenderer(rec))

	runes := []rune(text)
	for i := 1; i <= len(runes); i++ {
		s.Update(string(runes[:i]), mode)
	}

	for i, f := range rec.Frames {
		switch f.Kind {
		case render.FrameFull:
			log.Printf("frame %d: full build, %d elements", i, len(f.Elements))
		case render.FrameDiff:
			log.Printf("frame %d: +%d -%d elements", i, len(f.Diff.Added), len(f.Diff.RemovedIDs))
		}
	}
	return s.Elements()
}

func paletteMode(name string) scene.PaletteMode {
	switch name {
	case "ember":
		return scene.ModeEmber
	case "tide":
		return scene.ModeTide
	case "moss":
		return scene.ModeMoss
	case "violet":
		return scene.ModeViolet
	default:
		return scene.ModeAuto
	}
}
