package randx

import (
	"slices"
	"testing"
)

func TestSampleIsWithoutReplacement(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	src := New(42)
	for k := 0; k <= 10; k++ {
		got := Sample(src, items, k)
		want := min(k, len(items))
		if len(got) != want {
			t.Fatalf("Sample k=%d: got len=%d want=%d", k, len(got), want)
		}
		seen := map[int]bool{}
		for _, v := range got {
			if seen[v] {
				t.Fatalf("Sample k=%d: duplicate %d in %v", k, v, got)
			}
			seen[v] = true
			if !slices.Contains(items, v) {
				t.Fatalf("Sample k=%d: %d not in source", k, v)
			}
		}
	}
	if !slices.Equal(items, []int{1, 2, 3, 4, 5, 6, 7, 8}) {
		t.Fatalf("Sample mutated input: %v", items)
	}
}

func TestSameSeedSameDraws(t *testing.T) {
	a, b := New(7), New(7)
	for i := 0; i < 50; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d diverged: %d vs %d", i, x, y)
		}
	}
}

func TestChanceBounds(t *testing.T) {
	src := NewLocked(1)
	for i := 0; i < 100; i++ {
		if Chance(src, 0) {
			t.Fatal("Chance(0) returned true")
		}
		if !Chance(src, 1) {
			t.Fatal("Chance(1) returned false")
		}
	}
}

func TestWrapReusesLocked(t *testing.T) {
	l := NewLocked(3)
	if Wrap(l) != l {
		t.Fatal("Wrap should return the same *Locked")
	}
}
