package term

import "io"

// Option configures a Backend.
type Option func(*options)

type options struct {
	out   io.Writer
	color bool
}

func defaultOptions() options {
	return options{color: true}
}

// WithOutput makes EndFrame write each finished frame to w.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// WithColor enables or disables per-cell color styling. Enabled by default.
func WithColor(enabled bool) Option {
	return func(o *options) {
		o.color = enabled
	}
}
