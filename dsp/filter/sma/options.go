package sma

type config struct {
	initial float64
}

// Option configures a Filter.
type Option func(*config)

// WithInitialValue sets x[-N] ... x[-1] to v instead of zero.
func WithInitialValue(v float64) Option {
	return func(cfg *config) { cfg.initial = v }
}

func applyOptions(opts []Option) config {
	var cfg config
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	return cfg
}
