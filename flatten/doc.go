// Package flatten collects every terminal value reachable from a Go value
// into one flat slice.
//
// What:
//
//   - Values(v, opts...): depth-first descent through slices, arrays, sets
//     (map[K]struct{}, members are the keys), maps (values only, keys are
//     dropped), structs (exported fields), iter.Seq[any] functions and
//     Iterable implementations; everything else is a terminal.
//
// Rules:
//
//   - Strings are terminals; they are never split into runes or bytes.
//   - Atomic values and opaque values (errors, funcs, time.Time, any
//     fmt.Stringer composite) are returned as they are.
//   - A container that yields nothing (it is empty, or holds only a
//     reference back to itself) is returned as a terminal itself, so dead
//     ends stay visible. WithDropEmpty omits such containers instead.
//   - A container already on the current descent path is skipped, which
//     makes Values terminate on cyclic graphs. Shared, acyclic references are
//     flattened each time they occur.
//   - Iterators have no identity, so they cannot be recognised on the path.
//     At most 1000 iterators are expanded along one descent path; a deeper
//     iterator contributes nothing, which also stops sequences that yield
//     themselves.
//   - Map members follow sorted key order; the order of the result is
//     otherwise the depth-first visiting order and callers should not rely
//     on it.
//
// Options:
//
//   - WithReturnUnique()   drop repeated values, keeping first occurrences.
//   - WithDropEmpty()      omit containers that yield nothing.
//   - WithMaxDepth(limit)  expand at most limit levels of containers; deeper
//     containers are emitted as terminals. Default -1 (no limit).
//
// Complexity:
//
//   - Time:   O(N log N), N = reachable members; ReturnUnique adds O(U·K) for
//     K non-comparable terminals.
//   - Memory: O(D + N), D = nesting depth.
package flatten
