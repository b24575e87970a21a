package emptiness

// Option configures what IsEmpty treats as empty.
// Use with IsEmpty(v, opts...) or New(opts...).
type Option func(*Options)

// Options holds the switches of the emptiness predicate. It is resolved once
// per call and never mutated during traversal.
type Options struct {
	// EmptyStringIsEmpty makes "" empty. When false no string is ever empty.
	EmptyStringIsEmpty bool

	// WhitespaceIsEmpty trims Unicode whitespace (and U+FEFF) before the
	// EmptyStringIsEmpty check.
	WhitespaceIsEmpty bool

	// ZeroIsEmpty makes numeric zero empty. NaN is empty regardless.
	ZeroIsEmpty bool

	// FalseIsEmpty makes boolean false empty. true is never empty.
	FalseIsEmpty bool

	// TreatMapsAsObjects ignores map keys and inspects values only. When false
	// both keys and values must be empty.
	TreatMapsAsObjects bool
}

// DefaultOptions returns Options with:
//   - EmptyStringIsEmpty = true
//   - WhitespaceIsEmpty  = true
//   - ZeroIsEmpty        = false
//   - FalseIsEmpty       = false
//   - TreatMapsAsObjects = true
func DefaultOptions() Options {
	return Options{
		EmptyStringIsEmpty: true,
		WhitespaceIsEmpty:  true,
		ZeroIsEmpty:        false,
		FalseIsEmpty:       false,
		TreatMapsAsObjects: true,
	}
}

// WithOptions replaces every switch at once. Options listed after it still
// apply on top.
func WithOptions(opts Options) Option {
	return func(o *Options) {
		*o = opts
	}
}

// WithEmptyStringIsEmpty sets whether "" counts as empty.
func WithEmptyStringIsEmpty(on bool) Option {
	return func(o *Options) {
		o.EmptyStringIsEmpty = on
	}
}

// WithWhitespaceIsEmpty sets whether whitespace-only strings are trimmed to "".
func WithWhitespaceIsEmpty(on bool) Option {
	return func(o *Options) {
		o.WhitespaceIsEmpty = on
	}
}

// WithZeroIsEmpty sets whether numeric zero counts as empty.
func WithZeroIsEmpty(on bool) Option {
	return func(o *Options) {
		o.ZeroIsEmpty = on
	}
}

// WithFalseIsEmpty sets whether false counts as empty.
func WithFalseIsEmpty(on bool) Option {
	return func(o *Options) {
		o.FalseIsEmpty = on
	}
}

// WithTreatMapsAsObjects sets whether map keys are ignored.
func WithTreatMapsAsObjects(on bool) Option {
	return func(o *Options) {
		o.TreatMapsAsObjects = on
	}
}
