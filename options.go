package containers

import "log/slog"

type options struct {
	logger *slog.Logger
}

// Option configures a Table.
type Option func(*options)

// WithLogger sets the logger a Table reports resizes to, at debug level.
//
// If nil is passed, logging stays disabled.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
