package raster

import "image"

// Option configures a Backend.
type Option func(*options)

type options struct {
	target     *PixmapTarget
	roundJoins bool
	onFrame    func(*image.RGBA)
}

func defaultOptions() options {
	return options{roundJoins: true}
}

// WithTarget makes the backend draw into an existing target instead of
// allocating one in Init. Init resizes it to the requested dimensions.
func WithTarget(t *PixmapTarget) Option {
	return func(o *options) {
		o.target = t
	}
}

// WithRoundJoins enables or disables round joins between line segments.
// Enabled by default.
func WithRoundJoins(enabled bool) Option {
	return func(o *options) {
		o.roundJoins = enabled
	}
}

// WithFrameHook registers fn to be called by EndFrame with the finished
// image. The image is reused by the next frame; copy it to keep it.
func WithFrameHook(fn func(*image.RGBA)) Option {
	return func(o *options) {
		o.onFrame = fn
	}
}
