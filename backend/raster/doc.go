// Package raster implements a CPU backend that rasterizes figures into an
// *image.RGBA.
//
// Importing the package registers it under backend.BackendRaster:
//
//	import _ "github.com/OliverKKY/pltrs/backend/raster"
//
// The one-shot helper Render draws a figure at its own size:
//
//	img, err := raster.Render(fig)
//	if err != nil {
//		return err
//	}
//	return raster.SavePNG("plot.png", img)
//
// Coordinates follow the figure convention: figure-normalized (x, y) maps to
// pixel (x*W, (1-y)*H), so y grows upward in the figure and downward in the
// image. Line widths and marker sizes are pixels at DPI 1 and scale with
// the target DPI.
//
// Each batch is filled in a single rasterizer pass, so overlapping stroke
// quads and round joins inside one line never double-blend a translucent
// color.
package raster
