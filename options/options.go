package options

// Options are the per-call knobs of a traversal.
type Options struct {
	// Inherit makes mapping inputs visit keys reachable through embedding or
	// a prototype chain, not only directly owned keys.
	Inherit bool `yaml:"inherit"`
}

// Option changes Options.
type Option func(*Options)

// Inherit sets Options.Inherit.
func Inherit(on bool) Option {
	return func(o *Options) {
		o.Inherit = on
	}
}

// Apply returns base with every non-nil option applied in order.
func Apply(base Options, opts ...Option) Options {
	for _, opt := range opts {
		if opt != nil {
			opt(&base)
		}
	}

	return base
}
