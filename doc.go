// Package pltrs provides a declarative 2D plotting core for Go.
//
// # Overview
//
// Callers build an in-memory scene description (figure → axes → drawable
// nodes) and pltrs converts it into flat, renderer-agnostic vertex batches in
// figure-normalized coordinates. Rendering devices live behind the
// backend.RenderBackend boundary and never leak into this package.
//
// # Quick Start
//
//	import "github.com/OliverKKY/pltrs"
//
//	// One axes with default margins, x in [0, 10], y in [0, 1]
//	fig, ax := pltrs.SingleAxes(pltrs.Size{Width: 800, Height: 600, DPI: 1}, [2]float64{0, 10}, [2]float64{0, 1})
//
//	fig.Axes[ax].Add(pltrs.Line{
//		Xs:    []float64{0, 5, 10},
//		Ys:    []float64{0, 1, 0},
//		Color: pltrs.Blue,
//		Width: 2,
//	})
//
//	// Once per frame, usually from a backend
//	batches := pltrs.BuildBatches(fig)
//
// # Pipeline
//
// The core is organized leaf-first:
//   - Scale: numeric mapping from a data domain to a normalized range
//   - Scene model: Figure, Axes, Rect and the Line, Scatter and Bar nodes
//   - Layout: SingleAxes and Subplots derive axes rectangles from pixel margins
//   - Batcher: BuildBatches flattens a figure into LineBatch, MarkerBatch and
//     BarBatch slices
//
// # Coordinate System
//
// Figure-normalized coordinates span [0,1]×[0,1] over the whole figure:
//   - Origin (0,0) at bottom-left
//   - X increases right
//   - Y increases up
//
// A point at axes-local (u, v) lands at (rect.X + rect.W*u, rect.Y + rect.H*v).
// Out-of-range scales and rects are passed through unclamped.
//
// # Concurrency
//
// Scale.Map, the layout helpers and BuildBatches are pure functions over their
// inputs. Distinct figures may be batched in parallel; a figure must not be
// mutated while a batching pass reads it.
package pltrs

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
