package flatten

import "iter"

// Iterable is implemented by values that expose their members as a sequence.
// Values expands an Iterable through All instead of inspecting its fields.
type Iterable interface {
	All() iter.Seq[any]
}

// Option configures Values.
type Option func(*Options)

// Options holds the switches of Values.
type Options struct {
	// ReturnUnique drops repeated terminals, keeping first occurrences.
	// Comparable values are compared with ==, NaN matches NaN, and the rest
	// with reflect.DeepEqual.
	ReturnUnique bool

	// DropEmpty omits containers that yield nothing instead of emitting the
	// container itself.
	DropEmpty bool

	// MaxDepth, if non-negative, limits how many levels of containers are
	// expanded. 0 returns the input as a single terminal. Default is -1.
	MaxDepth int
}

// DefaultOptions returns Options with duplicates kept, empty containers
// emitted as terminals and no depth limit.
func DefaultOptions() Options {
	return Options{
		ReturnUnique: false,
		DropEmpty:    false,
		MaxDepth:     -1,
	}
}

// WithOptions replaces every switch at once.
func WithOptions(opts Options) Option {
	return func(o *Options) {
		*o = opts
	}
}

// WithReturnUnique enables de-duplication of the result.
func WithReturnUnique() Option {
	return WithUnique(true)
}

// WithUnique sets de-duplication explicitly.
func WithUnique(on bool) Option {
	return func(o *Options) {
		o.ReturnUnique = on
	}
}

// WithDropEmpty omits containers that yield no terminal.
func WithDropEmpty() Option {
	return func(o *Options) {
		o.DropEmpty = true
	}
}

// WithMaxDepth limits expansion to limit container levels.
// A negative limit means no limit.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}
