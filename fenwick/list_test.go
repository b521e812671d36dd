package fenwick

import (
	"errors"
	"math"
	"testing"

	rng "github.com/leesper/go_rng"
	"github.com/npillmayer/monoidal"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"gonum.org/v1/gonum/floats"
)

func TestPrefixSums(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	l, err := FromSlice[int](monoidal.Sum[int]{}, []int{5, 3, 7, 9, 8})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	for end, want := range []int{0, 5, 8, 15, 24, 32} {
		got, err := l.Sum(end)
		if err != nil {
			t.Fatalf("Sum(%d) failed: %v", end, err)
		}
		if got != want {
			t.Errorf("Sum(%d) = %d, want %d", end, got, want)
		}
	}
}

func TestLowerBound(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	l, err := FromSlice[int](monoidal.Sum[int]{}, []int{5, 3, 7, 9, 8})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	for _, tc := range []struct{ threshold, want int }{
		{-3, 0}, {0, 0}, {1, 0}, {5, 0}, {6, 1}, {8, 1}, {9, 2},
		{15, 2}, {16, 3}, {24, 3}, {32, 4}, {33, 5}, {100, 5},
	} {
		got, err := l.LowerBound(tc.threshold)
		if err != nil {
			t.Fatalf("LowerBound(%d) failed: %v", tc.threshold, err)
		}
		if got != tc.want {
			t.Errorf("LowerBound(%d) = %d, want %d", tc.threshold, got, tc.want)
		}
	}
}

func TestLowerBoundPreconditions(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	l, err := FromSlice[int](monoidal.Sum[int]{}, []int{1, -2, 3})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	if _, err := l.LowerBound(2); !errors.Is(err, monoidal.ErrNegativeValue) {
		t.Errorf("expected ErrNegativeValue, got %v", err)
	}
	if err := l.Add(1, 2); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if got, err := l.LowerBound(2); err != nil || got != 2 {
		t.Errorf("LowerBound(2) = %d, %v; want 2, nil", got, err)
	}
	if err := l.Set(0, -1); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, err := l.LowerBound(2); !errors.Is(err, monoidal.ErrNegativeValue) {
		t.Errorf("expected ErrNegativeValue after Set, got %v", err)
	}
	if err := l.Set(0, 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, err := l.LowerBound(2); err != nil {
		t.Errorf("expected LowerBound to succeed again, got %v", err)
	}
	x, err := New[uint8](monoidal.Xor[uint8]{}, 4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := x.LowerBound(1); !errors.Is(err, monoidal.ErrNotOrdered) {
		t.Errorf("expected ErrNotOrdered for xor group, got %v", err)
	}
}

func TestListBounds(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	if _, err := New[int](nil, 3); !errors.Is(err, monoidal.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for nil group, got %v", err)
	}
	if _, err := New[int](monoidal.Sum[int]{}, -1); !errors.Is(err, monoidal.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for negative length, got %v", err)
	}
	l, err := New[int](monoidal.Sum[int]{}, 3)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for _, index := range []int{-1, 3} {
		if err := l.Add(index, 1); !errors.Is(err, monoidal.ErrIndexOutOfBounds) {
			t.Errorf("Add(%d): expected ErrIndexOutOfBounds, got %v", index, err)
		}
		if _, err := l.Get(index); !errors.Is(err, monoidal.ErrIndexOutOfBounds) {
			t.Errorf("Get(%d): expected ErrIndexOutOfBounds, got %v", index, err)
		}
		if err := l.Set(index, 1); !errors.Is(err, monoidal.ErrIndexOutOfBounds) {
			t.Errorf("Set(%d): expected ErrIndexOutOfBounds, got %v", index, err)
		}
	}
	for _, end := range []int{-1, 4} {
		if _, err := l.Sum(end); !errors.Is(err, monoidal.ErrInvalidRange) {
			t.Errorf("Sum(%d): expected ErrInvalidRange, got %v", end, err)
		}
	}
	for _, r := range [][2]int{{-1, 2}, {0, 4}, {2, 1}} {
		if _, err := l.SumRange(r[0], r[1]); !errors.Is(err, monoidal.ErrInvalidRange) {
			t.Errorf("SumRange(%d,%d): expected ErrInvalidRange, got %v", r[0], r[1], err)
		}
	}
	if s, err := l.SumRange(2, 2); err != nil || s != 0 {
		t.Errorf("empty SumRange = %d, %v; want 0, nil", s, err)
	}
	if s, _ := l.Sum(3); s != 0 {
		t.Errorf("failed operations must not change the list, sum is %d", s)
	}
}

func TestGetSetAgainstModel(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	gen := rng.NewUniformGenerator(1234)
	for _, n := range []int{1, 2, 5, 8, 13, 64, 100} {
		model := make([]int64, n)
		l, err := New[int64](monoidal.Sum[int64]{}, n)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		for range 300 {
			i := int(gen.Int64Range(0, math.MaxInt32)) % n
			v := gen.Int64Range(-500, 500)
			if gen.Int64Range(0, 2) == 0 {
				model[i] += v
				err = l.Add(i, v)
			} else {
				model[i] = v
				err = l.Set(i, v)
			}
			if err != nil {
				t.Fatalf("update at %d failed: %v", i, err)
			}
		}
		var want int64
		for i := 0; i <= n; i++ {
			got, err := l.Sum(i)
			if err != nil {
				t.Fatalf("Sum(%d) failed: %v", i, err)
			}
			if got != want {
				t.Fatalf("n=%d: Sum(%d) = %d, want %d", n, i, got, want)
			}
			if i < n {
				if v, _ := l.Get(i); v != model[i] {
					t.Fatalf("n=%d: Get(%d) = %d, want %d", n, i, v, model[i])
				}
				want += model[i]
			}
		}
	}
}

func TestFloatListAgainstGonum(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	gen := rng.NewUniformGenerator(99)
	values := make([]float64, 50)
	for i := range values {
		values[i] = gen.Float64Range(0, 10)
	}
	l, err := FromSlice[float64](monoidal.Sum[float64]{}, values)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	for b := 0; b < len(values); b += 7 {
		for e := b; e <= len(values); e += 5 {
			got, err := l.SumRange(b, e)
			if err != nil {
				t.Fatalf("SumRange(%d,%d) failed: %v", b, e, err)
			}
			if want := floats.Sum(values[b:e]); math.Abs(got-want) > 1e-9 {
				t.Errorf("SumRange(%d,%d) = %g, want %g", b, e, got, want)
			}
		}
	}
	half := floats.Sum(values) / 2
	k, err := l.LowerBound(half)
	if err != nil {
		t.Fatalf("LowerBound failed: %v", err)
	}
	if s := floats.Sum(values[:k]); s >= half+1e-9 {
		t.Errorf("LowerBound(%g) = %d, but prefix sum %g already reaches it", half, k, s)
	}
	if s := floats.Sum(values[:k+1]); s < half-1e-9 {
		t.Errorf("LowerBound(%g) = %d, but prefix sum %g is still below", half, k, s)
	}
}

func FuzzLowerBound(f *testing.F) {
	f.Add(int64(7), uint8(10), int64(40))
	f.Add(int64(3), uint8(1), int64(0))
	f.Fuzz(func(t *testing.T, seed int64, size uint8, threshold int64) {
		gtrace.CoreTracer = gotestingadapter.New(t)
		teardown := gotestingadapter.RedirectTracing(t)
		defer teardown()
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
		//
		gen := rng.NewUniformGenerator(seed)
		values := make([]int64, int(size))
		for i := range values {
			values[i] = gen.Int64Range(0, 20)
		}
		l, err := FromSlice[int64](monoidal.Sum[int64]{}, values)
		if err != nil {
			t.Fatalf("FromSlice failed: %v", err)
		}
		want, sum := 0, int64(0)
		for want < len(values) && sum+values[want] < threshold {
			sum += values[want]
			want++
		}
		got, err := l.LowerBound(threshold)
		if err != nil {
			t.Fatalf("LowerBound failed: %v", err)
		}
		if got != want {
			t.Fatalf("LowerBound(%d) = %d, want %d for %v", threshold, got, want, values)
		}
	})
}

func TestFloatSignTrackingStaysExact(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	gen := rng.NewUniformGenerator(31415)
	for trial := range 5 {
		n := 16
		model := make([]float64, n)
		l, err := New[float64](monoidal.Sum[float64]{}, n)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		for step := range 200 {
			i := int(gen.Int64Range(0, math.MaxInt32)) % n
			var v float64
			switch gen.Int64Range(0, 4) {
			case 0:
				v = 0
			case 1:
				v = -0.1
			case 2:
				v = 0.3
			default:
				v = gen.Float64Range(0, 1) * 1e3
			}
			model[i] = v
			if err := l.Set(i, v); err != nil {
				t.Fatalf("Set(%d) failed: %v", i, err)
			}
			negatives := 0
			for _, x := range model {
				if x < 0 {
					negatives++
				}
			}
			if got, _ := l.Get(i); got != v {
				t.Fatalf("trial %d step %d: Get(%d) = %g, want %g", trial, step, i, got, v)
			}
			_, err := l.LowerBound(1)
			if negatives > 0 && !errors.Is(err, monoidal.ErrNegativeValue) {
				t.Fatalf("trial %d step %d: LowerBound with %d negative elements returned %v",
					trial, step, negatives, err)
			}
			if negatives == 0 && err != nil {
				t.Fatalf("trial %d step %d: LowerBound without negative elements failed: %v",
					trial, step, err)
			}
		}
	}
}
