package stateset

import "testing"

func TestSetBasic(t *testing.T) {
	s := New(100)

	if !s.IsEmpty() {
		t.Error("new set should be empty")
	}
	if s.Contains(0) {
		t.Error("empty set should not contain 0")
	}

	s.Insert(5)
	if !s.Contains(5) {
		t.Error("set should contain 5 after insert")
	}
	s.Insert(5)
	if s.Len() != 1 {
		t.Errorf("duplicate insert should not grow len, got %d", s.Len())
	}

	s.Insert(10)
	s.Insert(3)
	s.Insert(7)
	if s.Len() != 4 {
		t.Errorf("len should be 4, got %d", s.Len())
	}

	s.Clear()
	if !s.IsEmpty() {
		t.Error("set should be empty after clear")
	}
	if s.Contains(5) {
		t.Error("cleared set should not contain 5")
	}
}

func TestSetInsertionOrderPreserved(t *testing.T) {
	s := New(100)
	s.Insert(5)
	s.Insert(2)
	s.Insert(8)
	s.Insert(1)

	expected := []int{5, 2, 8, 1}
	values := s.Values()
	if len(values) != len(expected) {
		t.Fatalf("expected %d values, got %d", len(expected), len(values))
	}
	for i, v := range expected {
		if values[i] != v {
			t.Errorf("index %d: expected %d, got %d", i, v, values[i])
		}
	}
}

func TestSetSortedAndKey(t *testing.T) {
	a := New(10)
	a.Insert(3)
	a.Insert(1)
	a.Insert(2)

	b := New(10)
	b.Insert(2)
	b.Insert(1)
	b.Insert(3)

	if a.Key() != b.Key() {
		t.Errorf("sets with same members in different insertion order must produce the same key: %q vs %q", a.Key(), b.Key())
	}

	sorted := a.Sorted()
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1] > sorted[i] {
			t.Errorf("Sorted() not ascending: %v", sorted)
		}
	}
}

func TestSetEmptyKey(t *testing.T) {
	s := New(10)
	if s.Key() != "" {
		t.Errorf("empty set key should be empty string, got %q", s.Key())
	}
}
