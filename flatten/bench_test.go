package flatten_test

import (
	"testing"

	"github.com/katalvlaran/deepval/flatten"
)

// deepSlice nests n one-element slices around a single terminal.
func deepSlice(n int) any {
	var v any = "leaf"
	for i := 0; i < n; i++ {
		v = []any{v}
	}

	return v
}

// BenchmarkValues_Deep measures a 1,000-level chain of slices.
func BenchmarkValues_Deep(b *testing.B) {
	in := deepSlice(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = flatten.Values(in)
	}
}

// BenchmarkValues_UniqueWide measures de-duplication of 10,000 terminals
// drawn from 100 distinct values.
func BenchmarkValues_UniqueWide(b *testing.B) {
	in := make([]any, 10000)
	for i := range in {
		in[i] = i % 100
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = flatten.Values(in, flatten.WithReturnUnique())
	}
}
