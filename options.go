package pltrs

// LayoutOption configures figure construction in SingleAxesWith and Subplots.
// Use functional options to customize margins and styling.
//
// Example:
//
//	// Default margins (60/20/20/40 px)
//	fig, ax := pltrs.SingleAxesWith(size, xlim, ylim)
//
//	// Tighter margins on a dark theme
//	fig, ax := pltrs.SingleAxesWith(size, xlim, ylim,
//		pltrs.WithMargins(pltrs.LayoutParams{Left: 10, Right: 10, Top: 10, Bottom: 10}),
//		pltrs.WithTheme(pltrs.DarkTheme()))
type LayoutOption func(*layoutOptions)

// layoutOptions holds optional configuration for layout helpers.
type layoutOptions struct {
	params LayoutParams
	theme  *Theme
	gap    float32
}

// defaultLayoutOptions returns the default layout options.
func defaultLayoutOptions() layoutOptions {
	return layoutOptions{
		params: DefaultLayoutParams(),
		theme:  nil, // Figure keeps its white clear color
		gap:    20,
	}
}

// WithMargins overrides the pixel margins around the axes area.
func WithMargins(p LayoutParams) LayoutOption {
	return func(o *layoutOptions) {
		o.params = p
	}
}

// WithTheme sets the figure clear color from the theme background.
func WithTheme(t Theme) LayoutOption {
	return func(o *layoutOptions) {
		o.theme = &t
	}
}

// WithGap sets the pixel gap between neighboring Subplots cells.
// It has no effect on SingleAxesWith.
func WithGap(px float32) LayoutOption {
	return func(o *layoutOptions) {
		o.gap = px
	}
}

func applyLayoutOptions(opts []LayoutOption) layoutOptions {
	o := defaultLayoutOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
