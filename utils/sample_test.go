package utils

import "testing"

func TestSampleReturnsRequestedSize(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	got := Sample(items, 3)
	if len(got) != 3 {
		t.Fatalf("Sample returned %d items, want 3", len(got))
	}
}

func TestSampleWithoutReplacement(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	got := Sample(items, 5)
	seen := map[int]bool{}
	valid := map[int]bool{}
	for _, v := range items {
		valid[v] = true
	}
	for _, v := range got {
		if seen[v] {
			t.Fatalf("duplicate element %d in sample %v", v, got)
		}
		if !valid[v] {
			t.Fatalf("element %d not drawn from input", v)
		}
		seen[v] = true
	}
}

func TestSampleSmallerInputReturnsAll(t *testing.T) {
	items := []string{"a", "b"}

	got := Sample(items, 5)
	if len(got) != 2 {
		t.Fatalf("Sample returned %d items, want all 2", len(got))
	}
}

func TestSampleDoesNotMutateInput(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	_ = Sample(items, 5)
	for i, v := range items {
		if v != i+1 {
			t.Fatalf("input mutated: %v", items)
		}
	}
}
