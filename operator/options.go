package operator

// DefaultName labels log records of unnamed operators.
const DefaultName = "operator"

const panicNameEmpty = "operator: WithName: name must be non-empty"

// Option configures an Operator.
type Option func(*options)

type options struct {
	name string
}

// WithName sets the label used in log records. Panics on "".
func WithName(name string) Option {
	if name == "" {
		panic(panicNameEmpty)
	}

	return func(o *options) { o.name = name }
}
