// Package kind defines the Class variants and the reference identity used
// for cycle detection.
package kind

import (
	"fmt"
	"reflect"
)

// Class is the shape of a value as seen by the deep traversals.
type Class int

const (
	Absent   Class = iota // Absent: nil or otherwise missing value.
	String                // String: any string kind.
	Number                // Number: integer, unsigned, float or complex kinds.
	Bool                  // Bool: boolean kind.
	Sequence              // Sequence: slice or array.
	Set                   // Set: map[K]struct{}; members are the keys.
	Mapping               // Mapping: any other map; members are the values.
	Record                // Record: struct; members are the exported fields.
	Opaque                // Opaque: present but never decomposed.
)

var classNames = [...]string{
	Absent:   "absent",
	String:   "string",
	Number:   "number",
	Bool:     "bool",
	Sequence: "sequence",
	Set:      "set",
	Mapping:  "mapping",
	Record:   "record",
	Opaque:   "opaque",
}

// String returns the lower-case name of c.
func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return fmt.Sprintf("class(%d)", int(c))
	}

	return classNames[c]
}

// IsAtomic reports whether c is one of the atomic classes.
func (c Class) IsAtomic() bool {
	return c == Absent || c == String || c == Number || c == Bool
}

// IsContainer reports whether values of class c have members.
func (c Class) IsContainer() bool {
	return c == Sequence || c == Set || c == Mapping || c == Record
}

// Ref is the identity of a reference-carrying value: a pointer, a map or a
// non-empty slice. Two Refs are equal iff they denote the same underlying
// object viewed through the same type.
type Ref struct {
	typ reflect.Type // static type, so *T and *T.firstField stay distinct
	ptr uintptr      // address of the pointee, map header or first element
	n   int          // slice length; zero for pointers and maps
}

var (
	errorType    = reflect.TypeOf((*error)(nil)).Elem()
	stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	emptyStruct  = reflect.TypeOf(struct{}{})
)
