package emptiness

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/katalvlaran/deepval/kind"
)

// Evaluator checks values against a fixed set of Options.
// The zero value is not usable; construct with New.
type Evaluator struct {
	opts Options
}

// New resolves opts over DefaultOptions into an Evaluator.
func New(opts ...Option) *Evaluator {
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	return &Evaluator{opts: o}
}

// Options returns the resolved switches of e.
func (e *Evaluator) Options() Options {
	return e.opts
}

// IsEmpty reports whether v is empty under e's options.
// Each call starts from a fresh visited-set.
func (e *Evaluator) IsEmpty(v any) bool {
	w := &emptyWalker{
		opts:    &e.opts,
		visited: make(map[kind.Ref]struct{}),
	}

	return w.isEmpty(reflect.ValueOf(v))
}

// IsEmpty reports whether v, and everything reachable from it, is empty.
// See the package documentation for the rules and DefaultOptions for the
// defaults that opts override.
func IsEmpty(v any, opts ...Option) bool {
	return New(opts...).IsEmpty(v)
}

// emptyWalker encapsulates state during one top-level IsEmpty call.
type emptyWalker struct {
	opts    *Options              // resolved switches, read-only
	visited map[kind.Ref]struct{} // identities already entered; grows only
}

// isEmpty classifies v once and dispatches on the class.
func (w *emptyWalker) isEmpty(v reflect.Value) bool {
	class := kind.Classify(v)

	// 1. Atomic dispatch
	switch class {
	case kind.Absent:
		return true
	case kind.String:
		return w.stringIsEmpty(kind.Indirect(v).String())
	case kind.Number:
		n := kind.Indirect(v)
		if kind.IsNaN(n) {
			return true
		}

		return w.opts.ZeroIsEmpty && kind.IsZeroNumber(n)
	case kind.Bool:
		return w.opts.FalseIsEmpty && !kind.Indirect(v).Bool()
	case kind.Opaque:
		return false
	}

	// 2. Cycle guard: a revisited identity contributes nothing
	target, refs := kind.Chain(v)
	var r kind.Ref
	for _, r = range refs {
		if _, seen := w.visited[r]; seen {
			return true
		}
	}

	// 3. Record before descending so self-references are caught
	for _, r = range refs {
		w.visited[r] = struct{}{}
	}

	// 4. Container dispatch
	switch class {
	case kind.Sequence, kind.Set, kind.Record:
		return w.every(kind.Members(target, class))
	case kind.Mapping:
		if w.opts.TreatMapsAsObjects {
			return w.every(kind.Values(target))
		}

		return w.every(kind.Keys(target)) && w.every(kind.Values(target))
	}

	return false
}

// every reports whether all members are empty. Zero members are vacuously empty.
func (w *emptyWalker) every(members []reflect.Value) bool {
	var m reflect.Value
	for _, m = range members {
		if !w.isEmpty(m) {
			return false
		}
	}

	return true
}

func (w *emptyWalker) stringIsEmpty(s string) bool {
	if !w.opts.EmptyStringIsEmpty {
		return false
	}
	if w.opts.WhitespaceIsEmpty {
		s = strings.TrimFunc(s, isTrimmable)
	}

	return s == ""
}

// isTrimmable matches the runes stripped before the empty-string check:
// Unicode white space plus the byte order mark.
func isTrimmable(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
