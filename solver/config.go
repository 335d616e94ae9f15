package solver

import "github.com/fdebgo/fdeb/vector2"

// Default parameter values, ported from the original FDEB reference's
// graph-construction defaults and its command-line flag defaults. The
// gravity exponent default is beta = -2.0 (attractive, falling off with
// distance); only this sign yields a bounded energy.
const (
	DefaultK          = 0.1
	DefaultS          = 0.4
	DefaultIterations = 90
	DefaultCycles     = 5
	DefaultCompat     = 0.6
	DefaultSigma      = 3.0
	DefaultEpsilon    = 1e-4
	DefaultBeta       = -2.0
)

// GravityConfig enables the optional gravitational force term, pulling
// every subdivision point toward Center with falloff Exponent.
type GravityConfig struct {
	Center   vector2.V
	Exponent float64
}

// Config bundles the solver's parameters as a single configuration value,
// never a process-wide singleton.
type Config struct {
	K          float64
	S          float64
	Iterations int
	Cycles     int
	Compat     float64
	Sigma      float64
	Epsilon    float64
	Gravity    *GravityConfig
}

// Option customizes a Config before it is resolved by NewConfig. Grounded
// on builder/config.go's BuilderOption/builderConfig functional-options
// pattern.
type Option func(*Config)

// WithK overrides the spring stiffness K.
func WithK(k float64) Option {
	return func(cfg *Config) { cfg.K = k }
}

// WithS overrides the initial step size S.
func WithS(s float64) Option {
	return func(cfg *Config) { cfg.S = s }
}

// WithIterations overrides the initial per-cycle iteration count.
func WithIterations(i int) Option {
	return func(cfg *Config) { cfg.Iterations = i }
}

// WithCycles overrides the number of relaxation cycles.
func WithCycles(c int) Option {
	return func(cfg *Config) { cfg.Cycles = c }
}

// WithCompat overrides the compatibility threshold τ.
func WithCompat(tau float64) Option {
	return func(cfg *Config) { cfg.Compat = tau }
}

// WithSigma overrides the Gaussian smoothing width σ.
func WithSigma(sigma float64) Option {
	return func(cfg *Config) { cfg.Sigma = sigma }
}

// WithEpsilon overrides the electrostatic interaction floor ε.
func WithEpsilon(eps float64) Option {
	return func(cfg *Config) { cfg.Epsilon = eps }
}

// WithGravity enables the gravitational force term toward center with the
// given falloff exponent.
func WithGravity(center vector2.V, exponent float64) Option {
	return func(cfg *Config) {
		cfg.Gravity = &GravityConfig{Center: center, Exponent: exponent}
	}
}

// NewConfig returns a Config initialized with the spec's default
// parameters, then applies each opt in order; later options override
// earlier ones.
func NewConfig(opts ...Option) Config {
	cfg := Config{
		K:          DefaultK,
		S:          DefaultS,
		Iterations: DefaultIterations,
		Cycles:     DefaultCycles,
		Compat:     DefaultCompat,
		Sigma:      DefaultSigma,
		Epsilon:    DefaultEpsilon,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
