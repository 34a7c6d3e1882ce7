package bitarray

type options struct {
	logger *Logger
}

// Option configures New.
type Option func(*options)

// WithLogger sets the logger that reports the tree shape chosen by New.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

func applyOptions(opts []Option) options {
	o := options{logger: NoopLogger()}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
