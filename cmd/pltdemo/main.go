// Command pltdemo renders the pltrs demo figures to PNG files.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/OliverKKY/pltrs"
	"github.com/OliverKKY/pltrs/backend/raster"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		dpi     = flag.Float64("dpi", 1, "display density")
		output  = flag.String("output", "demo.png", "output file; the gallery is written next to it")
		dark    = flag.Bool("dark", false, "use the dark theme for the gallery")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		pltrs.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	line := pltrs.DemoLine()
	if *width != 800 || *height != 600 || *dpi != 1 {
		line.Resize(uint32(*width), uint32(*height)) //nolint:gosec // flag values
		line.Size.DPI = float32(*dpi)
	}
	img, err := raster.Render(line)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if err := raster.SavePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, img.Bounds().Dx(), img.Bounds().Dy())

	theme := pltrs.DefaultTheme()
	if *dark {
		theme = pltrs.DarkTheme()
	}
	size := pltrs.Size{Width: uint32(*width), Height: uint32(*height), DPI: float32(*dpi)} //nolint:gosec // flag values
	gallery, err := raster.Render(pltrs.DemoGallery(size, theme))
	if err != nil {
		log.Fatalf("Failed to render gallery: %v", err)
	}
	galleryPath := galleryName(*output)
	if err := raster.SavePNG(galleryPath, gallery); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Gallery saved to %s\n", galleryPath)
}

// galleryName derives the gallery file name from the demo output path.
func galleryName(output string) string {
	ext := filepath.Ext(output)
	return strings.TrimSuffix(output, ext) + "_gallery" + ext
}
