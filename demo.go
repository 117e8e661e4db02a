package pltrs

import (
	"math"

	"github.com/aclements/go-moremath/vec"
)

// DemoLine returns a ready-made 800x600 figure with one axes covering the
// central 80% of the figure and a single sine line, x in [0, 10].
func DemoLine() *Figure {
	fig := NewFigure(Size{Width: 800, Height: 600, DPI: 1})
	ax := NewAxes(
		Rect{X: 0.1, Y: 0.1, W: 0.8, H: 0.8},
		Linear([2]float64{0, 10}, [2]float64{0, 1}),
		Linear([2]float64{0, 1}, [2]float64{0, 1}),
	)

	xs := vec.Linspace(0, 10, 101)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = math.Sin(0.5*x)*0.5 + 0.5
	}

	ax.Add(Line{
		Xs:    xs,
		Ys:    ys,
		Color: Color{R: 0.1, G: 0.2, B: 0.8, A: 1},
		Width: 2,
	})
	fig.AddAxes(ax)
	return fig
}

// DemoGallery returns a 2x2 subplot figure exercising every node kind:
// overlaid lines, a circle scatter, a square scatter and a bar chart.
func DemoGallery(size Size, theme Theme) *Figure {
	fig, idx := Subplots(size, 2, 2, [2]float64{0, 10}, [2]float64{-1, 1}, WithTheme(theme))
	xs := vec.Linspace(0, 10, 200)

	const waves = 3
	for k := 0; k < waves; k++ {
		ys := make([]float64, len(xs))
		for i, x := range xs {
			ys[i] = math.Sin(x + float64(k)*math.Pi/3)
		}
		fig.Axes[idx[0]].Add(Line{Xs: xs, Ys: ys, Color: theme.CycleColor(k, waves), Width: 2})
	}

	sx := vec.Linspace(0.5, 9.5, 19)
	sy := make([]float64, len(sx))
	for i, x := range sx {
		sy[i] = math.Cos(x) * math.Exp(-x/10)
	}
	fig.Axes[idx[1]].Add(Scatter{Xs: sx, Ys: sy, Color: theme.CycleColor(0, 2), Size: 8, Marker: MarkerCircle})
	fig.Axes[idx[2]].Add(Scatter{Xs: sx, Ys: sy, Color: theme.CycleColor(1, 2), Size: 8, Marker: MarkerSquare})

	bx := vec.Linspace(1, 9, 9)
	heights := make([]float64, len(bx))
	for i, x := range bx {
		heights[i] = math.Sin(x / 2)
	}
	fig.Axes[idx[3]].Add(Bar{Xs: bx, Heights: heights, Width: 0.6, Color: theme.CycleColor(2, 4)})
	fig.Axes[idx[3]].Add(Line{Xs: []float64{0, 10}, Ys: []float64{0, 0}, Color: theme.Foreground, Width: 1})
	return fig
}
