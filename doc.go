// Package deepval is a small toolbox for looking inside arbitrary Go values:
// deep emptiness checks, deep flattening and digit formatting.
//
// What is in the box:
//
//   - emptiness/    IsEmpty reports whether a value and everything reachable
//     from it is empty. Blank strings, zero, false and map keys are
//     configurable; self-referencing graphs are safe.
//   - flatten/      Values returns every terminal value reachable from a
//     value in one flat slice, optionally de-duplicated.
//   - digits/       Format lays the digits of a string into a '#' format such
//     as "(###) ###-####".
//   - kind/         the classification both traversals share: Absent, String,
//     Number, Bool, Sequence, Set, Mapping, Record, Opaque.
//   - cmd/deepval   a command-line front-end over YAML and JSON documents.
//
// Every function is pure and synchronous, holds no state between calls, and
// is safe for concurrent use.
//
// Quick example:
//
//	doc := map[string]any{"name": "  ", "tags": []any{nil, ""}}
//	emptiness.IsEmpty(doc)                        // true
//	flatten.Values([]any{1, []any{2, []any{3}}})  // [1 2 3]
//	digits.Format("5551234567", "(###) ###-####") // (555) 123-4567
//
//	go get github.com/katalvlaran/deepval
package deepval
