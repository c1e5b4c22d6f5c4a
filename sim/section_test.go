package sim

import (
	"testing"
)

func TestSection_LIFO(t *testing.T) {
	s := &Section{}
	for _, id := range []int{3, 1, 7} {
		s.Push(id)
	}
	if s.Len() != 3 {
		t.Fatalf("Len: got %d, want 3", s.Len())
	}

	// Top of the pile comes out first.
	for _, want := range []int{7, 1, 3} {
		got, ok := s.Pop()
		if !ok || got != want {
			t.Errorf("Pop: got (%d, %v), want (%d, true)", got, ok, want)
		}
	}
	if _, ok := s.Pop(); ok {
		t.Errorf("Pop on empty section must report not-ok")
	}
}

func TestSection_ItemsBottomToTop(t *testing.T) {
	s := &Section{}
	s.Push(5)
	s.Push(2)
	items := s.Items()
	if len(items) != 2 || items[0] != 5 || items[1] != 2 {
		t.Errorf("Items: got %v, want [5 2]", items)
	}
}

func TestWarehouse_Resident(t *testing.T) {
	w := NewWarehouse(0, 3)
	w.Section(1).Push(10)
	w.Section(2).Push(11)
	w.Section(2).Push(12)
	got := w.Resident()
	want := []int{10, 11, 12}
	if len(got) != len(want) {
		t.Fatalf("Resident: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Resident[%d]: got %d, want %d", i, got[i], want[i])
		}
	}
}
