package OrderedSet

import (
	"math"
	"math/rand"
	"slices"
	"testing"
)

func TestOrderedSet_From(t *testing.T) {
	rg := rand.New(rand.NewSource(0))
	a := make([]int, 5000)
	content := make(map[int]struct{})
	for i := range a {
		a[i] = rg.Intn(2000)
		content[a[i]] = struct{}{}
	}
	before := slices.Clone(a)
	s := From(a)
	if !slices.Equal(a, before) {
		t.Errorf("From modified its input")
	}
	if int(s.Size()) != len(content) {
		t.Fatalf("set size is %d, want %d", s.Size(), len(content))
	}
	sorted := s.Sorted()
	if !slices.IsSorted(sorted) {
		t.Errorf("sorted is not sorted")
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1] == sorted[i] {
			t.Errorf("repeated element %d", sorted[i])
		}
	}
	for _, v := range sorted {
		if _, in := content[v]; !in {
			t.Errorf("set has non existent element %d", v)
		}
	}
}

func TestOrderedSet_Put(t *testing.T) {
	s := New[string]()
	if !s.Put("b") || !s.Put("a") || s.Put("a") {
		t.Fatalf("wrong Put results")
	}
	if !slices.Equal(s.Sorted(), []string{"a", "b"}) {
		t.Errorf("wrong elements %v", s.Sorted())
	}
}

func TestOrderedSet_NaN(t *testing.T) {
	s := From([]float64{3, math.NaN(), 1, 2, math.NaN()})
	if s.Put(math.NaN()) {
		t.Errorf("NaN was put")
	}
	if got := s.Sorted(); !slices.Equal(got, []float64{1, 2, 3}) {
		t.Errorf("wrong elements %v", got)
	}
	if s.Size() != 3 {
		t.Errorf("set size is %d, want 3", s.Size())
	}
}
