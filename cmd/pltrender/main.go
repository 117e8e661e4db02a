// Command pltrender renders a figure document with a chosen backend.
//
// Usage:
//
//	pltrender -in plot.yaml -out plot.png
//	pltrender -in plot.json -backend term
//	pltrender -in plot.json -backend gpu -v
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/OliverKKY/pltrs"
	"github.com/OliverKKY/pltrs/backend"
	"github.com/OliverKKY/pltrs/backend/gpu"
	"github.com/OliverKKY/pltrs/backend/raster"
	"github.com/OliverKKY/pltrs/backend/term"
	"github.com/OliverKKY/pltrs/figfile"
)

func main() {
	var (
		in      = flag.String("in", "", "figure document (.json, .yaml, .yml); the demo figure when empty")
		out     = flag.String("out", "plot.png", "output PNG for the raster backend")
		name    = flag.String("backend", backend.BackendRaster, "backend: "+strings.Join(backend.Available(), ", "))
		cols    = flag.Int("cols", 80, "terminal columns for the term backend")
		rows    = flag.Int("rows", 24, "terminal rows for the term backend")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		pltrs.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	fig, err := loadFigure(*in)
	if err != nil {
		log.Fatal(err)
	}

	if err := render(fig, *name, *out, *cols, *rows); err != nil {
		log.Fatal(err)
	}
}

func loadFigure(path string) (*pltrs.Figure, error) {
	if path == "" {
		return pltrs.DemoLine(), nil
	}
	return figfile.LoadFigure(path)
}

func render(fig *pltrs.Figure, name, out string, cols, rows int) error {
	switch name {
	case backend.BackendRaster:
		img, err := raster.Render(fig)
		if err != nil {
			return err
		}
		if err := raster.SavePNG(out, img); err != nil {
			return err
		}
		log.Printf("Saved %s (%dx%d)\n", out, img.Bounds().Dx(), img.Bounds().Dy())
		return nil

	case backend.BackendTerm:
		b := term.New(term.WithOutput(os.Stdout))
		return drawOnce(b, backend.RenderTargetDesc{Width: cols, Height: rows}, fig)

	case backend.BackendGPU:
		b := gpu.New()
		if err := drawOnce(b, backend.DescFromSize(fig.Size), fig); err != nil {
			return err
		}
		f := b.LastFrame()
		fmt.Printf("frame %dx%d format=%v vertices=%d draws=%d\n",
			f.Width, f.Height, f.Format, f.VertexCount(), len(f.Draws))
		for i, d := range f.Draws {
			fmt.Printf("  draw %d: %v first=%d count=%d\n", i, d.Kind, d.FirstVertex, d.VertexCount)
		}
		return nil

	default:
		return fmt.Errorf("%w: %q", backend.ErrBackendNotAvailable, name)
	}
}

func drawOnce(b backend.RenderBackend, desc backend.RenderTargetDesc, fig *pltrs.Figure) error {
	if err := b.Init(desc); err != nil {
		return err
	}
	defer b.Close()
	return backend.DrawFrame(b, fig)
}
