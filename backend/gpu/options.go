package gpu

// Option configures a Backend.
type Option func(*options)

type options struct {
	handle     DeviceHandle
	submitter  Submitter
	roundJoins bool
}

func defaultOptions() options {
	return options{
		handle:     NullDeviceHandle{},
		roundJoins: true,
	}
}

// WithDevice sets the host device provider.
func WithDevice(h DeviceHandle) Option {
	return func(o *options) {
		if h != nil {
			o.handle = h
		}
	}
}

// WithSubmitter sets the host submitter that records frames.
func WithSubmitter(s Submitter) Option {
	return func(o *options) {
		o.submitter = s
	}
}

// WithRoundJoins enables or disables round joins between line segments.
func WithRoundJoins(enabled bool) Option {
	return func(o *options) {
		o.roundJoins = enabled
	}
}
