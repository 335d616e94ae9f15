package bundle

// FilterOption configures how Load decides which edges to keep. At most
// one of the weight-threshold or percentile modes applies (with neither,
// every edge is kept); if both are
// supplied, weight wins and the conflict is logged at warn level, not
// returned as an error.
//
// Grounded on builder/config.go's functional-options pattern
// (BuilderOption/builderConfig).
type FilterOption func(*filterConfig)

// filterConfig holds the resolved filtering mode. A nil field means that
// mode was not requested.
type filterConfig struct {
	weightThreshold *float64
	percentile      *float64
}

// WithWeightThreshold keeps only edges whose weight strictly exceeds w.
func WithWeightThreshold(w float64) FilterOption {
	return func(cfg *filterConfig) {
		v := w
		cfg.weightThreshold = &v
	}
}

// WithPercentile keeps only the top p percent of edges by weight.
// Values of p outside [0, 100] are clamped to that range when Load filters.
func WithPercentile(p float64) FilterOption {
	return func(cfg *filterConfig) {
		v := p
		cfg.percentile = &v
	}
}

// newFilterConfig applies opts over a config with no filtering mode set,
// which keeps every edge.
func newFilterConfig(opts ...FilterOption) *filterConfig {
	cfg := &filterConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// conflict reports whether both a weight threshold and a percentile were
// requested: both set and the weight threshold wins, logged at warn.
func (cfg *filterConfig) conflict() bool {
	return cfg.weightThreshold != nil && cfg.percentile != nil
}
