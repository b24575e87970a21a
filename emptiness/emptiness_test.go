package emptiness_test

import (
	"errors"
	"math"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/deepval/emptiness"
)

func TestIsEmpty_Absent(t *testing.T) {
	var nilPtr *string
	var nilMap map[string]any
	var nilSlice []int
	var nilIface error

	assert.True(t, emptiness.IsEmpty(nil))
	assert.True(t, emptiness.IsEmpty(nilPtr))
	assert.True(t, emptiness.IsEmpty(nilMap))
	assert.True(t, emptiness.IsEmpty(nilSlice))
	assert.True(t, emptiness.IsEmpty(nilIface))
}

func TestIsEmpty_Strings(t *testing.T) {
	assert.True(t, emptiness.IsEmpty(""))
	assert.False(t, emptiness.IsEmpty("string"))
	assert.True(t, emptiness.IsEmpty("    "))
	assert.True(t, emptiness.IsEmpty("\t\n\uFEFF "), "BOM and control whitespace are trimmed")
	assert.False(t, emptiness.IsEmpty("    ", emptiness.WithWhitespaceIsEmpty(false)))
	assert.False(t, emptiness.IsEmpty("", emptiness.WithEmptyStringIsEmpty(false)))
	assert.False(t, emptiness.IsEmpty("   ", emptiness.WithEmptyStringIsEmpty(false)),
		"with empty strings disabled no string is empty")
}

func TestIsEmpty_Numbers(t *testing.T) {
	assert.True(t, emptiness.IsEmpty(math.NaN()))
	assert.True(t, emptiness.IsEmpty(math.NaN(), emptiness.WithZeroIsEmpty(true)))
	assert.True(t, emptiness.IsEmpty(float32(math.NaN())))
	assert.False(t, emptiness.IsEmpty(10))
	assert.False(t, emptiness.IsEmpty(0))
	assert.False(t, emptiness.IsEmpty(uint16(0)))
	assert.True(t, emptiness.IsEmpty(0, emptiness.WithZeroIsEmpty(true)))
	assert.True(t, emptiness.IsEmpty(0.0, emptiness.WithZeroIsEmpty(true)))
	assert.False(t, emptiness.IsEmpty(-1, emptiness.WithZeroIsEmpty(true)))
	assert.False(t, emptiness.IsEmpty(math.Inf(1)))
}

func TestIsEmpty_SingleOptionKeepsOtherDefaults(t *testing.T) {
	assert.True(t, emptiness.IsEmpty("", emptiness.WithZeroIsEmpty(false)))
}

func TestIsEmpty_Booleans(t *testing.T) {
	assert.False(t, emptiness.IsEmpty(true))
	assert.False(t, emptiness.IsEmpty(false))
	assert.True(t, emptiness.IsEmpty(false, emptiness.WithFalseIsEmpty(true)))
	assert.False(t, emptiness.IsEmpty(true, emptiness.WithFalseIsEmpty(true)))
}

func TestIsEmpty_Sequences(t *testing.T) {
	assert.True(t, emptiness.IsEmpty([]any{}))
	assert.True(t, emptiness.IsEmpty([0]int{}))
	assert.True(t, emptiness.IsEmpty([]any{nil, nil, ""}))
	assert.False(t, emptiness.IsEmpty([]any{nil, nil, "", 4}))
	assert.True(t, emptiness.IsEmpty([]any{nil, "", []any{nil, nil}, []any{""}}))
	assert.True(t, emptiness.IsEmpty([3]string{" ", "", "\t"}))
	assert.False(t, emptiness.IsEmpty([]int{0, 0}))
	assert.True(t, emptiness.IsEmpty([]int{0, 0}, emptiness.WithZeroIsEmpty(true)))
}

func TestIsEmpty_Sets(t *testing.T) {
	assert.True(t, emptiness.IsEmpty(map[string]struct{}{}))
	assert.True(t, emptiness.IsEmpty(map[any]struct{}{nil: {}, "": {}}))
	assert.False(t, emptiness.IsEmpty(map[any]struct{}{nil: {}, "": {}, 4: {}}))
	assert.False(t, emptiness.IsEmpty(map[any]struct{}{nil: {}, 4: {}}, emptiness.WithTreatMapsAsObjects(false)),
		"set members are checked whatever the map switch says")
}

func TestIsEmpty_Maps(t *testing.T) {
	assert.True(t, emptiness.IsEmpty(map[string]any{}))
	assert.False(t, emptiness.IsEmpty(map[string]any{"prop": "blah"}))

	m := map[string]any{
		"prop1": "",
		"prop2": nil,
		"prop3": map[string]any{"prop3": nil, "prop4": ""},
	}
	assert.True(t, emptiness.IsEmpty(m), "keys are ignored by default")
	assert.False(t, emptiness.IsEmpty(m, emptiness.WithTreatMapsAsObjects(false)),
		"keys count when maps are not treated as objects")

	fullyEmpty := map[any]string{nil: ""}
	assert.True(t, emptiness.IsEmpty(fullyEmpty))
	assert.True(t, emptiness.IsEmpty(fullyEmpty, emptiness.WithTreatMapsAsObjects(false)))
}

func TestIsEmpty_NaNKeys(t *testing.T) {
	assert.False(t, emptiness.IsEmpty(map[float64]string{math.NaN(): "payload"}))
	assert.False(t, emptiness.IsEmpty(map[any]any{math.NaN(): "x", "k": ""}))
	assert.True(t, emptiness.IsEmpty(map[float64]string{math.NaN(): " "}))
	assert.True(t, emptiness.IsEmpty(map[float64]string{math.NaN(): ""}, emptiness.WithTreatMapsAsObjects(false)),
		"a NaN key is empty and so is its value")
}

type profile struct {
	Name    string
	Tags    []string
	Address *address
	secret  string
}

type address struct {
	Street string
	Lines  map[string]string
}

func TestIsEmpty_Records(t *testing.T) {
	assert.True(t, emptiness.IsEmpty(struct{}{}))
	assert.True(t, emptiness.IsEmpty(profile{}))
	assert.True(t, emptiness.IsEmpty(&profile{}))
	assert.True(t, emptiness.IsEmpty(profile{secret: "ignored"}), "unexported fields are not inspected")
	assert.True(t, emptiness.IsEmpty(profile{
		Name:    "  ",
		Tags:    []string{""},
		Address: &address{Lines: map[string]string{"1": ""}},
	}))
	assert.False(t, emptiness.IsEmpty(profile{Address: &address{Street: "Main"}}))
	assert.False(t, emptiness.IsEmpty(struct{ Count int }{}))
	assert.True(t, emptiness.IsEmpty(struct{ Count int }{}, emptiness.WithZeroIsEmpty(true)))
}

func TestIsEmpty_NestedEmptyDocument(t *testing.T) {
	veryBigEmpty := []any{
		map[string]any{
			"prop1": nil,
			"prop2": []any{map[string]any{"prop3": nil, "prop4": nil}},
			"prop5": map[string]any{
				"prop6": nil,
				"prop7": []any{"", map[string]any{"prop8": ""}},
			},
		},
	}
	assert.True(t, emptiness.IsEmpty(veryBigEmpty))
}

type stringer struct{}

func (stringer) String() string { return "Something Else" }

func TestIsEmpty_OpaqueNeverEmpty(t *testing.T) {
	opaque := []any{
		time.Time{},
		regexp.MustCompile(`regex`),
		errors.New(""),
		func() {},
		make(chan int),
		stringer{},
		&stringer{},
	}
	configs := [][]emptiness.Option{
		nil,
		{emptiness.WithZeroIsEmpty(true), emptiness.WithFalseIsEmpty(true)},
		{emptiness.WithTreatMapsAsObjects(false)},
	}
	for _, opts := range configs {
		for _, v := range opaque {
			assert.False(t, emptiness.IsEmpty(v, opts...), "%T must never be empty", v)
		}
	}
}

type circular struct {
	Self *circular
	A    *string
	B    *int
}

func TestIsEmpty_CircularNonEmptyRecord(t *testing.T) {
	a, b := "blah", 1
	obj := &circular{A: &a, B: &b}
	obj.Self = obj
	assert.False(t, emptiness.IsEmpty(obj))
	assert.False(t, emptiness.IsEmpty(*obj), "record copies still reach the cycle through Self")
}

func TestIsEmpty_CircularEmptyRecord(t *testing.T) {
	obj := &circular{}
	obj.Self = obj
	assert.True(t, emptiness.IsEmpty(obj))
}

func TestIsEmpty_CircularSlices(t *testing.T) {
	full := []any{nil, "blah", 3}
	full[0] = full
	assert.False(t, emptiness.IsEmpty(full))

	empty := []any{nil, nil, "", nil}
	empty[3] = empty
	assert.True(t, emptiness.IsEmpty(empty))

	only := []any{nil}
	only[0] = only
	assert.True(t, emptiness.IsEmpty(only))
}

func TestIsEmpty_CircularMaps(t *testing.T) {
	m := map[string]any{}
	m["self"] = m
	assert.True(t, emptiness.IsEmpty(m))

	m["value"] = 7
	assert.False(t, emptiness.IsEmpty(m))
	assert.False(t, emptiness.IsEmpty(m, emptiness.WithTreatMapsAsObjects(false)))
}

func TestIsEmpty_MutualCycle(t *testing.T) {
	a := map[string]any{}
	b := map[string]any{"a": a}
	a["b"] = b
	assert.True(t, emptiness.IsEmpty(a))

	b["x"] = "x"
	assert.False(t, emptiness.IsEmpty(a))
}

func TestIsEmpty_SharedReferences(t *testing.T) {
	shared := &address{Street: "Main"}
	assert.False(t, emptiness.IsEmpty([]any{shared, shared}))

	blank := &address{}
	assert.True(t, emptiness.IsEmpty([]any{blank, blank}))
}

func TestIsEmpty_Idempotent(t *testing.T) {
	arr := []any{nil, "", nil}
	arr[2] = arr
	first := emptiness.IsEmpty(arr)
	second := emptiness.IsEmpty(arr)
	assert.Equal(t, first, second)
	assert.True(t, first)
}

func TestEvaluator_Reuse(t *testing.T) {
	e := emptiness.New(emptiness.WithZeroIsEmpty(true))
	assert.True(t, e.Options().ZeroIsEmpty)
	assert.True(t, e.Options().EmptyStringIsEmpty, "defaults survive")
	assert.True(t, e.IsEmpty(0))
	assert.True(t, e.IsEmpty([]int{0, 0}))
	assert.False(t, e.IsEmpty([]int{0, 1}))
}

func TestWithOptions_ReplacesAll(t *testing.T) {
	opts := emptiness.Options{ZeroIsEmpty: true}
	e := emptiness.New(emptiness.WithOptions(opts))
	assert.Equal(t, opts, e.Options())
	assert.False(t, e.IsEmpty(""), "EmptyStringIsEmpty was switched off")

	e = emptiness.New(emptiness.WithOptions(opts), emptiness.WithEmptyStringIsEmpty(true))
	assert.True(t, e.IsEmpty(""), "later options apply on top")
}

func TestEvaluator_ConcurrentUse(t *testing.T) {
	e := emptiness.New()
	shared := []any{nil, "", map[string]any{"k": []any{" "}}}
	shared[0] = shared

	var wg sync.WaitGroup
	results := make([]bool, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = e.IsEmpty(shared)
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.True(t, r)
	}
}
