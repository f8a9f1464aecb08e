package iir

type config struct {
	deferred bool
}

// Option configures a Filter.
type Option func(*config)

// WithDeferredNormalization keeps the coefficients as given and divides each
// output by a[0] instead of dividing the coefficients once at construction.
// Coefficients that are exact integers then stay exact, which matters when
// a[0] does not divide them evenly. Outputs no longer match lfilter in the
// last bits when 1/a[0] is inexact.
func WithDeferredNormalization() Option {
	return func(cfg *config) { cfg.deferred = true }
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
