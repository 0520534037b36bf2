package mru_test

import (
	"reflect"
	"testing"

	"github.com/cascade-wm/cascade/internal/mru"
)

func TestPushMovesExistingToTop(t *testing.T) {
	l := mru.New[string]()
	l.Push("a")
	l.Push("b")
	l.Push("c")
	l.Push("a")

	if got, _ := l.Top(); got != "a" {
		t.Fatalf("Top() = %q, want %q", got, "a")
	}
	if got := l.Iter(); !reflect.DeepEqual(got, []string{"a", "c", "b"}) {
		t.Fatalf("Iter() = %v", got)
	}
}

func TestPushBottom(t *testing.T) {
	l := mru.New[int]()
	l.Push(1)
	l.Push(2)
	l.PushBottom(1)

	if got := l.Iter(); !reflect.DeepEqual(got, []int{2, 1}) {
		t.Fatalf("Iter() = %v", got)
	}
}

func TestPromotePanicsWhenAbsent(t *testing.T) {
	l := mru.New[int]()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic promoting an absent item")
		}
	}()
	l.Promote(42)
}

func TestPromoteMovesToTop(t *testing.T) {
	l := mru.New[int]()
	l.Push(1)
	l.Push(2)
	l.Push(3)
	l.Promote(1)

	if got, _ := l.Top(); got != 1 {
		t.Fatalf("Top() = %v, want 1", got)
	}
	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", l.Len())
	}
}

func TestRemove(t *testing.T) {
	l := mru.New[int]()
	l.Push(1)
	l.Push(2)

	if !l.Remove(1) {
		t.Fatal("Remove(1) = false, want true")
	}
	if l.Remove(1) {
		t.Fatal("Remove(1) second time = true, want false")
	}
	if l.Contains(1) {
		t.Fatal("Contains(1) = true after removal")
	}
}

func TestTopEmpty(t *testing.T) {
	l := mru.New[int]()
	if _, ok := l.Top(); ok {
		t.Fatal("Top() on empty list returned ok = true")
	}
}
