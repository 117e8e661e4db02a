// Command pltview previews a figure document interactively, in the terminal
// by default or in a desktop window with -window.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/OliverKKY/pltrs"
	"github.com/OliverKKY/pltrs/backend/term"
	"github.com/OliverKKY/pltrs/backend/window"
	"github.com/OliverKKY/pltrs/figfile"
)

func main() {
	var (
		in      = flag.String("in", "", "figure document (.json, .yaml, .yml); the demo gallery when empty")
		win     = flag.Bool("window", false, "open a desktop window instead of the terminal preview")
		animate = flag.Bool("animate", false, "animate the demo line (window only)")
		logFile = flag.String("log", "", "write debug logs to this file")
	)
	flag.Parse()

	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		pltrs.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	fig, title, err := load(*in, *animate)
	if err != nil {
		log.Fatal(err)
	}

	if *win {
		opts := []window.Option{window.WithTitle(title)}
		if *animate && *in == "" {
			opts = append(opts, window.WithAnimation(sweep))
		}
		err = window.Run(fig, opts...)
	} else {
		err = term.Run(fig, title)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func load(path string, animate bool) (*pltrs.Figure, string, error) {
	switch {
	case path != "":
		fig, err := figfile.LoadFigure(path)
		return fig, path, err
	case animate:
		return pltrs.DemoLine(), "demo", nil
	default:
		return pltrs.DemoGallery(pltrs.Size{Width: 800, Height: 600, DPI: 1}, pltrs.DefaultTheme()), "gallery", nil
	}
}

// sweep shifts the phase of the demo line every tick.
func sweep(fig *pltrs.Figure, tick uint64) {
	line, ok := fig.Axes[0].Children[0].(pltrs.Line)
	if !ok {
		return
	}
	phase := float64(tick) / 30
	for i, x := range line.Xs {
		line.Ys[i] = math.Sin(0.5*x+phase)*0.5 + 0.5
	}
}
