// Package kind classifies arbitrary Go values into the closed set of shapes
// the deep traversals in this module dispatch on.
//
// What:
//
//   - Classify / Of: map a reflect.Value (or any) onto exactly one Class:
//     Absent, String, Number, Bool (atomic), Sequence, Set, Mapping, Record
//     (containers) or Opaque (never decomposed).
//   - Chain: look through interfaces and pointers, collecting the reference
//     identities (Ref) passed on the way, for cycle detection.
//   - Members, Keys, Values: enumerate the direct members of a container in a
//     deterministic order.
//
// Classification rules, in priority order:
//
//  1. invalid values and nil pointers/interfaces/maps/slices/funcs/chans → Absent
//  2. anything implementing error → Opaque
//  3. string, numeric and bool kinds → String, Number, Bool
//  4. structs, maps, slices and arrays whose type (or pointer type)
//     implements fmt.Stringer → Opaque (time.Time, *regexp.Regexp, net.IP …)
//  5. slices and arrays → Sequence
//  6. maps with a struct{} element type → Set (members are the keys)
//  7. other maps → Mapping
//  8. structs → Record (members are the exported fields)
//  9. everything else (funcs, chans, unsafe pointers) → Opaque
//
// Complexity:
//
//   - Classify: O(p) where p is the pointer/interface depth.
//   - Members:  O(n) for sequences and records, O(n log n) for maps (keys are sorted).
package kind
