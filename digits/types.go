package digits

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFailedOutput is returned by ParseFailedOutput for an unrecognised mode.
var ErrUnknownFailedOutput = errors.New("digits: unknown failed output mode")

// ErrUnknownTrim is returned by ParseTrim for an unrecognised mode.
var ErrUnknownTrim = errors.New("digits: unknown trim mode")

// FailedOutput selects what Format returns when formatting fails.
type FailedOutput int

const (
	Empty    FailedOutput = iota // Empty: return "".
	Original                     // Original: return the input untouched.
	Digits                       // Digits: return the extracted digits.
)

// String returns the lower-case name of f.
func (f FailedOutput) String() string {
	switch f {
	case Empty:
		return "empty"
	case Original:
		return "original"
	case Digits:
		return "digits"
	}

	return fmt.Sprintf("failedOutput(%d)", int(f))
}

// ParseFailedOutput maps "empty", "original" and "digits" (case-insensitive)
// to a FailedOutput. The empty string selects Empty.
func ParseFailedOutput(s string) (FailedOutput, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "empty":
		return Empty, nil
	case "original":
		return Original, nil
	case "digits":
		return Digits, nil
	}

	return Empty, fmt.Errorf("%w: %q", ErrUnknownFailedOutput, s)
}

// Trim selects which zeros are stripped from the extracted digits.
type Trim int

const (
	TrimNone     Trim = iota // TrimNone: keep all zeros.
	TrimLeading              // TrimLeading: strip leading zeros.
	TrimTrailing             // TrimTrailing: strip trailing zeros.
	TrimBoth                 // TrimBoth: strip leading and trailing zeros.
)

// String returns the lower-case name of t.
func (t Trim) String() string {
	switch t {
	case TrimNone:
		return "none"
	case TrimLeading:
		return "leading"
	case TrimTrailing:
		return "trailing"
	case TrimBoth:
		return "both"
	}

	return fmt.Sprintf("trim(%d)", int(t))
}

// ParseTrim maps "none", "leading", "trailing" and "both" to a Trim.
// "" selects TrimNone and "true" is accepted as TrimBoth.
func ParseTrim(s string) (Trim, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "false":
		return TrimNone, nil
	case "leading":
		return TrimLeading, nil
	case "trailing":
		return TrimTrailing, nil
	case "both", "true":
		return TrimBoth, nil
	}

	return TrimNone, fmt.Errorf("%w: %q", ErrUnknownTrim, s)
}

// Option configures Format.
type Option func(*Options)

// Options holds the switches of Format.
type Options struct {
	FailedOutput     FailedOutput
	IncompleteFormat bool
	LastDigitEnds    bool
	Expand           bool
	Trim             Trim
}

// DefaultOptions returns Options with:
//   - FailedOutput     = Empty
//   - IncompleteFormat = true
//   - LastDigitEnds    = true
//   - Expand           = false
//   - Trim             = TrimNone
func DefaultOptions() Options {
	return Options{
		FailedOutput:     Empty,
		IncompleteFormat: true,
		LastDigitEnds:    true,
		Expand:           false,
		Trim:             TrimNone,
	}
}

// WithOptions replaces every switch at once.
func WithOptions(opts Options) Option {
	return func(o *Options) {
		*o = opts
	}
}

// WithFailedOutput sets what a failed format returns.
func WithFailedOutput(mode FailedOutput) Option {
	return func(o *Options) {
		o.FailedOutput = mode
	}
}

// WithIncompleteFormat sets whether too few digits still produce a partial format.
func WithIncompleteFormat(on bool) Option {
	return func(o *Options) {
		o.IncompleteFormat = on
	}
}

// WithLastDigitEnds sets whether output stops right after the last digit.
func WithLastDigitEnds(on bool) Option {
	return func(o *Options) {
		o.LastDigitEnds = on
	}
}

// WithExpand sets whether surplus digits are appended after the format.
func WithExpand(on bool) Option {
	return func(o *Options) {
		o.Expand = on
	}
}

// WithTrim sets which zeros are stripped before formatting.
func WithTrim(mode Trim) Option {
	return func(o *Options) {
		o.Trim = mode
	}
}
