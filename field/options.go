// SPDX-License-Identifier: MIT

package field

// Defaults - single source of truth for zero-value behavior.
const (
	// DefaultDT is the time step used when WithTime is not given.
	DefaultDT = 1.0

	// DefaultNT is the number of time steps used when WithTime is not given.
	DefaultNT = 1

	// DefaultSpaceOrder is the spatial finite-difference order of new functions.
	DefaultSpaceOrder = 2

	// DefaultTimeOrder is the temporal finite-difference order of new functions.
	DefaultTimeOrder = 2
)

const (
	panicTimeInvalid       = "field: WithTime: dt must be > 0 and nt >= 1"
	panicSpaceOrderInvalid = "field: WithSpaceOrder: order must be >= 1"
	panicTimeOrderInvalid  = "field: WithTimeOrder: order must be >= 1"
)

// GridOption configures a Grid.
type GridOption func(*gridConfig)

type gridConfig struct {
	dt float64
	nt int
}

// WithTime sets the time step and the number of time steps.
// Panics on dt <= 0 or nt < 1 (programmer error).
func WithTime(dt float64, nt int) GridOption {
	if !(dt > 0) || nt < 1 {
		panic(panicTimeInvalid)
	}

	return func(c *gridConfig) {
		c.dt = dt
		c.nt = nt
	}
}

// FunctionOption configures a Function.
type FunctionOption func(*functionConfig)

type functionConfig struct {
	spaceOrder int
	timeOrder  int
	values     []float64
}

func gatherFunctionOptions(opts ...FunctionOption) functionConfig {
	cfg := functionConfig{spaceOrder: DefaultSpaceOrder, timeOrder: DefaultTimeOrder}
	for _, o := range opts {
		o(&cfg)
	}

	return cfg
}

// WithSpaceOrder sets the spatial finite-difference order carried by the function.
func WithSpaceOrder(order int) FunctionOption {
	if order < 1 {
		panic(panicSpaceOrderInvalid)
	}

	return func(c *functionConfig) { c.spaceOrder = order }
}

// WithTimeOrder sets the temporal finite-difference order used by Dt2.
func WithTimeOrder(order int) FunctionOption {
	if order < 1 {
		panic(panicTimeOrderInvalid)
	}

	return func(c *functionConfig) { c.timeOrder = order }
}

// WithValues loads literal data (row-major, or a single broadcast value).
func WithValues(values ...float64) FunctionOption {
	cp := append([]float64(nil), values...)

	return func(c *functionConfig) { c.values = cp }
}
