package raster

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/OliverKKY/pltrs"
	"github.com/OliverKKY/pltrs/backend"
)

// Render draws fig once at its own size and returns the image.
func Render(fig *pltrs.Figure, opts ...Option) (*image.RGBA, error) {
	if fig == nil {
		return nil, backend.ErrNilFigure
	}

	b := New(opts...)
	if err := b.Init(backend.DescFromSize(fig.Size)); err != nil {
		return nil, fmt.Errorf("raster: init: %w", err)
	}
	defer b.Close()

	if err := backend.DrawFrame(b, fig); err != nil {
		return nil, err
	}
	return b.Image(), nil
}

// EncodePNG writes img to w in PNG format.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

// SavePNG writes img to a PNG file at path.
func SavePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("raster: %w", cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if err := EncodePNG(w, img); err != nil {
		return err
	}
	return w.Flush()
}
