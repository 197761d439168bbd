package splice

import "github.com/go-kit/log"

type options struct {
	logger log.Logger
	name   string
}

// Option configures a Buffer or SafeBuffer.
type Option func(*options)

// WithLogger sets the logger used for reallocation and release events.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithName labels the buffer in log lines.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: log.NewNopLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.name != "" {
		o.logger = log.With(o.logger, "buffer", o.name)
	}
	return o
}
