package flatten

import (
	"iter"
	"math"
	"math/cmplx"
	"reflect"

	"github.com/katalvlaran/deepval/kind"
)

// maxSeqNesting bounds how many iterators may be open on one descent path.
// Iterators have no identity to put on the path, so a sequence that yields
// itself is cut off here instead.
const maxSeqNesting = 1000

// flattener encapsulates state during one Values call.
type flattener struct {
	opts    Options
	path    map[kind.Ref]struct{} // identities on the current descent path
	seqOpen int                   // iterators being expanded on the current path
}

// Values returns every terminal value reachable from v in one flat slice.
// Values never returns nil: an input that yields nothing under WithDropEmpty
// gives an empty slice.
func Values(v any, opts ...Option) []any {
	// 1. Apply options
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	// 2. Descend
	f := &flattener{opts: o, path: make(map[kind.Ref]struct{})}
	out := f.walk(reflect.ValueOf(v), 0)
	if out == nil {
		out = []any{}
	}

	// 3. Collapse duplicates
	if o.ReturnUnique {
		out = unique(out)
	}

	return out
}

// walk flattens v found at the given container depth.
func (f *flattener) walk(v reflect.Value, depth int) []any {
	// 1. Terminals are wrapped as single-element results
	seq := asSeq(v)
	class := kind.Classify(v)
	if seq == nil && !class.IsContainer() {
		return []any{terminal(v)}
	}

	// 2. Depth limit: deeper containers stay whole
	if f.opts.MaxDepth >= 0 && depth >= f.opts.MaxDepth {
		return []any{terminal(v)}
	}

	// 3. Cycle guard: a container already being expanded contributes nothing
	target, refs := kind.Chain(v)
	var r kind.Ref
	for _, r = range refs {
		if _, onPath := f.path[r]; onPath {
			return nil
		}
	}
	for _, r = range refs {
		f.path[r] = struct{}{}
	}
	defer func() {
		for _, r := range refs {
			delete(f.path, r)
		}
	}()

	// 4. Expand one level, recurse and concatenate
	var members []reflect.Value
	if seq != nil {
		if f.seqOpen >= maxSeqNesting {
			return nil
		}
		f.seqOpen++
		defer func() { f.seqOpen-- }()
		for x := range seq {
			members = append(members, reflect.ValueOf(x))
		}
	} else {
		members = kind.Members(target, class)
	}

	var out []any
	var m reflect.Value
	for _, m = range members {
		out = append(out, f.walk(m, depth+1)...)
	}

	// 5. Dead ends stay visible unless dropped
	if len(out) == 0 && !f.opts.DropEmpty {
		return []any{terminal(v)}
	}

	return out
}

// asSeq returns the sequence exposed by v, or nil if v is not iterable.
func asSeq(v reflect.Value) iter.Seq[any] {
	if !v.IsValid() || !v.CanInterface() {
		return nil
	}
	switch it := v.Interface().(type) {
	case iter.Seq[any]:
		if it == nil {
			return nil
		}

		return it
	case func(func(any) bool):
		if it == nil {
			return nil
		}

		return it
	case Iterable:
		if kind.Classify(v) == kind.Absent {
			return nil // nil receiver
		}

		return it.All()
	}

	return nil
}

// terminal returns the Go value held by v.
func terminal(v reflect.Value) any {
	if !v.IsValid() || !v.CanInterface() {
		return nil
	}

	return v.Interface()
}

// unique keeps the first occurrence of every value.
func unique(values []any) []any {
	out := make([]any, 0, len(values))
	seen := make(map[any]struct{}, len(values))
	var loose []any // non-comparable values, compared with DeepEqual
	var sawNaN bool

	var x any
	for _, x = range values {
		switch {
		case isNaN(x):
			if sawNaN {
				continue
			}
			sawNaN = true
		case x == nil || reflect.ValueOf(x).Comparable():
			if _, dup := seen[x]; dup {
				continue
			}
			seen[x] = struct{}{}
		default:
			if containsDeep(loose, x) {
				continue
			}
			loose = append(loose, x)
		}
		out = append(out, x)
	}

	return out
}

func containsDeep(values []any, x any) bool {
	for _, y := range values {
		if reflect.DeepEqual(x, y) {
			return true
		}
	}

	return false
}

func isNaN(x any) bool {
	switch n := x.(type) {
	case float64:
		return math.IsNaN(n)
	case float32:
		return math.IsNaN(float64(n))
	case complex128:
		return cmplx.IsNaN(n)
	case complex64:
		return cmplx.IsNaN(complex128(n))
	}

	return false
}
