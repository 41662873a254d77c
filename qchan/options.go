package qchan

// Option configures a channel at construction time. See New and
// NewTimeSeries.
type Option func(*config)

type config struct {
	bounded  *int
	dispatch bool
}

func newConfig(opts []Option) config {
	var c config
	for _, o := range opts {
		o(&c)
	}
	return c
}

// WithBounded caps the live buffer at cap items; overflow head-drops the
// oldest item(s).
func WithBounded(cap int) Option {
	return func(c *config) { c.bounded = &cap }
}

// WithDispatch selects broadcast delivery: every receiver reads the full
// retained tail independently via its own cursor, instead of receivers
// competing to drain one shared queue.
func WithDispatch() Option {
	return func(c *config) { c.dispatch = true }
}
