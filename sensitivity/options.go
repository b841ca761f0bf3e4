// SPDX-License-Identifier: MIT

package sensitivity

import "github.com/katalvlaran/seisgrad/symbolic"

// Defaults - single source of truth for zero-value behavior.
const (
	// DefaultDFTSubsampling is the DFT stride when WithDFTSubsampling is not given.
	DefaultDFTSubsampling = 1

	// DefaultISIC selects the plain correlation family.
	DefaultISIC = false
)

const (
	panicWeightNil      = "sensitivity: WithWeight: weight must be non-nil"
	panicSubsamplingBad = "sensitivity: WithDFTSubsampling: factor must be >= 1"
)

// Option configures imaging-condition construction.
type Option func(*Options)

// Options is the resolved configuration. Fields are unexported; build it
// through Option values.
type Options struct {
	weight  symbolic.Expr // nil: formula default (dt/rho for corr)
	freq    []float64     // literal frequencies, copied
	hasFreq bool          // WithFrequencies was given (even with zero values)
	dftSub  int           // >= 1
	isic    bool
}

// gatherOptions applies opts over the documented defaults; last writer wins.
func gatherOptions(opts ...Option) Options {
	o := Options{dftSub: DefaultDFTSubsampling, isic: DefaultISIC}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Condition returns the imaging condition these options select.
func (o Options) Condition() Condition { return SelectImagingCondition(o.hasFreq, o.isic) }

// WithWeight overrides the dt/rho weight of the corr condition. Other
// conditions carry physically fixed weights and ignore it.
// Panics on nil (programmer error).
func WithWeight(w symbolic.Expr) Option {
	if w == nil {
		panic(panicWeightNil)
	}

	return func(o *Options) { o.weight = w }
}

// WithFrequencies marks the frequency-domain family and sets the DFT
// frequencies. An empty list is recorded and rejected at construction with
// ErrEmptyFrequencies.
func WithFrequencies(freq []float64) Option {
	cp := append([]float64{}, freq...)

	return func(o *Options) {
		o.freq = cp
		o.hasFreq = true
	}
}

// WithDFTSubsampling sets the DFT accumulation stride. Panics if factor < 1.
func WithDFTSubsampling(factor int) Option {
	if factor < 1 {
		panic(panicSubsamplingBad)
	}

	return func(o *Options) { o.dftSub = factor }
}

// WithISIC selects the inverse-scattering family.
func WithISIC(on bool) Option {
	return func(o *Options) { o.isic = on }
}
