// Package emptiness implements a deep, configurable emptiness predicate over
// arbitrary Go values, safe on cyclic object graphs.
//
// What:
//
//   - IsEmpty(v, opts...): reports whether v, and everything reachable from
//     it, is empty.
//   - Evaluator: the same predicate with its options resolved once, for
//     callers checking many values under one configuration.
//
// A value is empty when it is:
//
//   - nil (untyped nil, nil pointer, nil map, nil slice, nil func, nil chan)
//   - an empty or whitespace-only string (both configurable)
//   - NaN; zero too with WithZeroIsEmpty(true)
//   - false, with WithFalseIsEmpty(true)
//   - a slice, array, set (map[K]struct{}) or struct whose members are all
//     empty; a struct's members are its exported fields
//   - a map whose values are all empty (keys ignored), or whose keys and
//     values are all empty with WithTreatMapsAsObjects(false)
//
// Errors, funcs, chans and any struct, map or slice type implementing
// fmt.Stringer (time.Time, *regexp.Regexp, net.IP …) are never empty.
//
// Cycles:
//
//	Every pointer, map and non-empty slice is recorded in a visited-set
//	before its members are inspected. Meeting a recorded identity again
//	contributes nothing, so a container reachable only from itself is
//	empty and termination is guaranteed.
//
// Complexity:
//
//   - Time:   O(N log N) where N is the number of reachable members (map keys are sorted).
//   - Memory: O(D + R), D = nesting depth (recursion), R = distinct references visited.
//
// IsEmpty never panics and holds no state between calls; it is safe for
// concurrent use.
package emptiness
