package model

// DefaultSpaceOrder is the finite-difference space order of a Model.
const DefaultSpaceOrder = 4

const panicSpaceOrderInvalid = "model: WithSpaceOrder: order must be even and >= 2"

// Option configures a Model.
type Option func(*options)

type options struct {
	spaceOrder int
	slowness2  []float64
	velocity   []float64
	density    []float64
	dm         []float64
}

// WithSpaceOrder sets the spatial stencil order. Panics unless order is even and >= 2.
func WithSpaceOrder(order int) Option {
	if order < 2 || order%2 != 0 {
		panic(panicSpaceOrderInvalid)
	}

	return func(o *options) { o.spaceOrder = order }
}

// WithVelocity sets m = 1/vp² from velocities (one value broadcasts).
// It overrides WithSquaredSlowness when both are given.
func WithVelocity(vp ...float64) Option {
	cp := append([]float64(nil), vp...)

	return func(o *options) { o.velocity = cp }
}

// WithSquaredSlowness sets m directly (one value broadcasts).
func WithSquaredSlowness(m ...float64) Option {
	cp := append([]float64(nil), m...)

	return func(o *options) { o.slowness2 = cp }
}

// WithDensity sets rho and derives irho = 1/rho (one value broadcasts).
func WithDensity(rho ...float64) Option {
	cp := append([]float64(nil), rho...)

	return func(o *options) { o.density = cp }
}

// WithPerturbation sets dm (one value broadcasts).
func WithPerturbation(dm ...float64) Option {
	cp := append([]float64(nil), dm...)

	return func(o *options) { o.dm = cp }
}
