package kind

import (
	"fmt"
	"reflect"
	"sort"
)

// Members returns the direct members of the container v, which must already
// be stripped of interface and pointer layers (see Indirect and Chain).
//
//   - Sequence: the elements, in index order.
//   - Set:      the keys, sorted.
//   - Mapping:  the values, ordered by sorted key.
//   - Record:   the exported field values, in declaration order.
//
// Any other class yields nil.
func Members(v reflect.Value, c Class) []reflect.Value {
	switch c {
	case Sequence:
		out := make([]reflect.Value, v.Len())
		for i := range out {
			out[i] = v.Index(i)
		}

		return out
	case Set:
		return Keys(v)
	case Mapping:
		return Values(v)
	case Record:
		t := v.Type()
		out := make([]reflect.Value, 0, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue // unexported fields are not enumerable
			}
			out = append(out, v.Field(i))
		}

		return out
	}

	return nil
}

// Keys returns the keys of map v in sorted order.
func Keys(v reflect.Value) []reflect.Value {
	pairs := entries(v)
	out := make([]reflect.Value, len(pairs))
	for i, p := range pairs {
		out[i] = p.key
	}

	return out
}

// Values returns the values of map v ordered by sorted key.
func Values(v reflect.Value) []reflect.Value {
	pairs := entries(v)
	out := make([]reflect.Value, len(pairs))
	for i, p := range pairs {
		out[i] = p.value
	}

	return out
}

type entry struct {
	key, value reflect.Value
}

// entries reads the pairs of map v in one pass and sorts them by key.
// Looking values up by key would lose entries whose key is NaN.
func entries(v reflect.Value) []entry {
	out := make([]entry, 0, v.Len())
	it := v.MapRange()
	for it.Next() {
		out = append(out, entry{key: it.Key(), value: it.Value()})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return compareKeys(out[i].key, out[j].key) < 0
	})

	return out
}

// SortKeys sorts map keys in place so map traversal is deterministic.
// Keys of different kinds are ordered by kind; strings, integers, unsigned
// integers, floats and bools by value; anything else by its %v rendering.
func SortKeys(keys []reflect.Value) {
	sort.SliceStable(keys, func(i, j int) bool {
		return compareKeys(keys[i], keys[j]) < 0
	})
}

// compareKeys orders two map keys; it returns -1, 0 or +1.
func compareKeys(a, b reflect.Value) int {
	// map[any]V keys arrive wrapped in interfaces
	a, b = Indirect(a), Indirect(b)
	if a.Kind() != b.Kind() {
		return compare(a.Kind(), b.Kind())
	}

	switch a.Kind() {
	case reflect.Invalid:
		return 0
	case reflect.String:
		return compare(a.String(), b.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return compare(a.Float(), b.Float())
	case reflect.Bool:
		if a.Bool() == b.Bool() {
			return 0
		}
		if !a.Bool() {
			return -1
		}

		return 1
	}

	return compare(fmt.Sprint(a), fmt.Sprint(b))
}

func compare[T ~int | ~uint | ~int64 | ~uint64 | ~float64 | ~string](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}
