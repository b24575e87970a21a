package kind

import (
	"math"
	"math/cmplx"
	"reflect"
)

// Of classifies x. It is shorthand for Classify(reflect.ValueOf(x)).
func Of(x any) Class {
	return Classify(reflect.ValueOf(x))
}

// Classify returns the Class of v, looking through interfaces and pointers.
// Classify never panics.
func Classify(v reflect.Value) Class {
	// 1. Peel interface and pointer layers, stopping at nil
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			return Absent
		}
		if v.Kind() == reflect.Pointer && opaqueType(v.Type()) {
			return Opaque
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return Absent
	}

	// 2. Nil reference kinds are absence markers
	switch v.Kind() {
	case reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		if v.IsNil() {
			return Absent
		}
	}

	// 3. Errors are always opaque, whatever their underlying kind
	t := v.Type()
	if implements(t, errorType) {
		return Opaque
	}

	// 4. Atomic kinds
	switch v.Kind() {
	case reflect.String:
		return String
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return Number
	case reflect.Bool:
		return Bool
	}

	// 5. Composites with a custom textual representation
	if opaqueType(t) {
		return Opaque
	}

	// 6. Containers
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return Sequence
	case reflect.Map:
		if t.Elem() == emptyStruct {
			return Set
		}

		return Mapping
	case reflect.Struct:
		return Record
	}

	return Opaque
}

// opaqueType reports whether t (a composite or a pointer to one) carries its
// own textual representation or error message.
func opaqueType(t reflect.Type) bool {
	base := t
	if base.Kind() == reflect.Pointer {
		base = base.Elem()
	}
	switch base.Kind() {
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array:
	default:
		return false
	}

	return implements(t, errorType) || implements(t, stringerType)
}

// implements reports whether t or *t implements iface.
func implements(t, iface reflect.Type) bool {
	if t.Implements(iface) {
		return true
	}

	return t.Kind() != reflect.Pointer && reflect.PointerTo(t).Implements(iface)
}

// Indirect strips interface and pointer layers from v. It stops at the first
// nil layer, returning it unchanged.
func Indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			return v
		}
		v = v.Elem()
	}

	return v
}

// Chain strips interface and pointer layers like Indirect and additionally
// returns the identities met on the way: every pointer, then the final map
// or non-empty slice.
func Chain(v reflect.Value) (reflect.Value, []Ref) {
	var refs []Ref
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			return v, refs
		}
		if r, ok := RefOf(v); ok {
			refs = append(refs, r)
		}
		v = v.Elem()
	}
	if r, ok := RefOf(v); ok {
		refs = append(refs, r)
	}

	return v, refs
}

// RefOf returns the identity of v if v is a non-nil pointer, a non-nil map
// or a non-empty slice. Arrays and structs have no identity of their own.
func RefOf(v reflect.Value) (Ref, bool) {
	if !v.IsValid() {
		return Ref{}, false
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Map:
		if v.IsNil() {
			return Ref{}, false
		}

		return Ref{typ: v.Type(), ptr: v.Pointer()}, true
	case reflect.Slice:
		if v.Len() == 0 {
			return Ref{}, false
		}

		return Ref{typ: v.Type(), ptr: v.Pointer(), n: v.Len()}, true
	}

	return Ref{}, false
}

// IsNaN reports whether the numeric value v is not-a-number. For complex
// kinds either part being NaN counts. Non-numeric kinds report false.
func IsNaN(v reflect.Value) bool {
	v = Indirect(v)
	if !v.IsValid() {
		return false
	}
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(v.Float())
	case reflect.Complex64, reflect.Complex128:
		return cmplx.IsNaN(v.Complex())
	}

	return false
}

// IsZeroNumber reports whether the numeric value v equals zero. Negative
// zero counts as zero. Non-numeric kinds report false.
func IsZeroNumber(v reflect.Value) bool {
	v = Indirect(v)
	if !v.IsValid() {
		return false
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Complex64, reflect.Complex128:
		return v.Complex() == 0
	}

	return false
}
