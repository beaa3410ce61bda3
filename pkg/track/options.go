package track

import "log/slog"

// Option configures a Connector
type Option func(*Connector)

// WithLogger sets the logger used for connector diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(c *Connector) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithObserver registers an observer for connector activity
func WithObserver(observer Observer) Option {
	return func(c *Connector) {
		if observer != nil {
			c.observer = observer
		}
	}
}
