// Package window shows a figure in a desktop window.
//
// The window drives the raster backend once per ebiten frame and uploads
// the result to the screen. Resizing the window resizes the figure, so the
// plot is always drawn at the window's native size.
//
//	if err := window.Run(fig, window.WithTitle("demo")); err != nil {
//		log.Fatal(err)
//	}
package window

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OliverKKY/pltrs"
	"github.com/OliverKKY/pltrs/backend"
	"github.com/OliverKKY/pltrs/backend/raster"
)

// AnimateFunc updates fig before each frame. tick counts updates since start.
type AnimateFunc func(fig *pltrs.Figure, tick uint64)

// Option configures Run.
type Option func(*options)

type options struct {
	title   string
	tps     int
	animate AnimateFunc
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

// WithTPS sets the update rate. Defaults to 60.
func WithTPS(tps int) Option {
	return func(o *options) {
		if tps > 0 {
			o.tps = tps
		}
	}
}

// WithAnimation calls fn from every update, before the next frame is drawn.
func WithAnimation(fn AnimateFunc) Option {
	return func(o *options) {
		o.animate = fn
	}
}

// Run opens a window showing fig and blocks until it is closed or Escape
// or Q is pressed.
func Run(fig *pltrs.Figure, opts ...Option) error {
	if fig == nil {
		return backend.ErrNilFigure
	}
	o := options{title: "pltrs", tps: 60}
	for _, opt := range opts {
		opt(&o)
	}

	r := raster.New()
	if err := r.Init(backend.DescFromSize(fig.Size)); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	defer r.Close()

	g := &game{fig: fig, r: r, animate: o.animate}
	ebiten.SetWindowTitle(o.title)
	ebiten.SetWindowSize(int(fig.Size.Width), int(fig.Size.Height))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(o.tps)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type game struct {
	fig     *pltrs.Figure
	r       *raster.Backend
	img     *ebiten.Image
	animate AnimateFunc
	tick    uint64
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if g.animate != nil {
		g.animate(g.fig, g.tick)
	}
	g.tick++
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if err := backend.DrawFrame(g.r, g.fig); err != nil {
		pltrs.Logger().Warn("window: draw failed", slog.String("err", err.Error()))
		return
	}

	src := g.r.Image()
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	if g.img == nil || g.img.Bounds().Dx() != w || g.img.Bounds().Dy() != h {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(w, h)
	}
	g.img.WritePixels(src.Pix)
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := max(outsideWidth, 1), max(outsideHeight, 1)
	if uint32(w) != g.fig.Size.Width || uint32(h) != g.fig.Size.Height { //nolint:gosec // positive
		g.fig.Resize(uint32(w), uint32(h)) //nolint:gosec // positive
		g.r.Resize(w, h)
	}
	return w, h
}
