package data_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/ttn-nguyen42/chains/data"
)

func checkSingly[T comparable](t *testing.T, l *data.LinkedList[T], want ...T) {
	t.Helper()
	if l.Len() == 0 {
		if l.Head() != nil || l.Tail() != nil {
			t.Fatalf("empty list should have nil head and tail")
		}
	} else {
		if l.Head() == nil || l.Tail() == nil {
			t.Fatalf("non-empty list (len %d) has nil head or tail", l.Len())
		}
		if l.Tail().Next() != nil {
			t.Fatalf("tail.next should be nil")
		}
		count := 0
		var last *data.Node[T]
		for n := l.Head(); n != nil; n = n.Next() {
			last = n
			count += 1
			if count > l.Len() {
				t.Fatalf("chain is longer than length %d", l.Len())
			}
		}
		if count != l.Len() || last != l.Tail() {
			t.Fatalf("walked %d nodes for length %d, tail match %v", count, l.Len(), last == l.Tail())
		}
	}
	if got := l.Values(); !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestLinkedList_PushPopShiftUnshift(t *testing.T) {
	l := data.NewLinkedList[int]()
	l.Push(2)
	l.Push(3)
	l.Unshift(1)
	checkSingly(t, l, 1, 2, 3)

	n, ok := l.Pop()
	if !ok || n.Value != 3 || n.Next() != nil {
		t.Fatalf("expected detached 3 from pop")
	}
	checkSingly(t, l, 1, 2)

	n, ok = l.Shift()
	if !ok || n.Value != 1 || n.Next() != nil {
		t.Fatalf("expected detached 1 from shift")
	}
	checkSingly(t, l, 2)

	if n, ok = l.Pop(); !ok || n.Value != 2 {
		t.Fatalf("expected to pop 2")
	}
	checkSingly(t, l)

	if _, ok := l.Pop(); ok {
		t.Fatalf("pop on empty list should fail")
	}
	if _, ok := l.Shift(); ok {
		t.Fatalf("shift on empty list should fail")
	}
}

func TestLinkedList_Positional(t *testing.T) {
	l := data.NewLinkedList(1, 2, 3)

	if n, ok := l.Get(2); !ok || n.Value != 3 {
		t.Fatalf("expected 3 at index 2")
	}
	if _, ok := l.Get(3); ok {
		t.Fatalf("index 3 should not be found")
	}
	if _, ok := l.Get(-1); ok {
		t.Fatalf("index -1 should not be found")
	}

	if !l.Set(20, 1) || l.Set(0, 5) {
		t.Fatalf("unexpected set result")
	}
	checkSingly(t, l, 1, 20, 3)

	if !l.Insert(0, 0) || !l.Insert(10, 2) || !l.Insert(4, l.Len()) {
		t.Fatalf("inserts within range should succeed")
	}
	if l.Insert(9, -1) || l.Insert(9, l.Len()+1) {
		t.Fatalf("inserts out of range should fail")
	}
	checkSingly(t, l, 0, 1, 10, 20, 3, 4)

	if n, ok := l.Remove(2); !ok || n.Value != 10 {
		t.Fatalf("expected to remove 10")
	}
	if n, ok := l.Remove(l.Len() - 1); !ok || n.Value != 4 {
		t.Fatalf("expected to remove tail 4")
	}
	if n, ok := l.Remove(0); !ok || n.Value != 0 {
		t.Fatalf("expected to remove head 0")
	}
	if _, ok := l.Remove(3); ok {
		t.Fatalf("remove out of range should fail")
	}
	checkSingly(t, l, 1, 20, 3)

	l.Clear()
	checkSingly(t, l)
}

func TestLinkedList_Reverse(t *testing.T) {
	l := data.NewLinkedList(1, 2, 3, 4)
	head := l.Head()
	l.Reverse()
	checkSingly(t, l, 4, 3, 2, 1)
	if l.Tail() != head {
		t.Fatalf("old head should become the tail")
	}
	l.Reverse()
	checkSingly(t, l, 1, 2, 3, 4)

	empty := data.NewLinkedList[int]()
	empty.Reverse()
	checkSingly(t, empty)
}

func TestLinkedList_TwoPointer(t *testing.T) {
	if _, ok := data.NewLinkedList[int]().FindMiddleNode(); ok {
		t.Fatalf("empty list has no middle node")
	}
	if n, _ := data.NewLinkedList(1, 2, 3).FindMiddleNode(); n.Value != 2 {
		t.Fatalf("expected middle 2, got %d", n.Value)
	}
	if n, _ := data.NewLinkedList(1, 2, 3, 4).FindMiddleNode(); n.Value != 3 {
		t.Fatalf("expected middle 3, got %d", n.Value)
	}

	l := data.NewLinkedList(1, 2, 3)
	if l.HasLoop() {
		t.Fatalf("acyclic list reported a loop")
	}
	data.SetNext(l.Tail(), l.Head())
	if !l.HasLoop() {
		t.Fatalf("tail linked to head should be a loop")
	}

	single := data.NewLinkedList(1)
	data.SetNext(single.Head(), single.Head())
	if !single.HasLoop() {
		t.Fatalf("self referencing node should be a loop")
	}
}

func TestLinkedList_IsPalindrome(t *testing.T) {
	tests := []struct {
		values []int
		want   bool
	}{
		{[]int{}, true},
		{[]int{1}, true},
		{[]int{1, 1}, true},
		{[]int{1, 2}, false},
		{[]int{1, 2, 1}, true},
		{[]int{1, 2, 2, 1}, true},
		{[]int{1, 2, 3, 2, 1}, true},
		{[]int{1, 2, 3}, false},
		{[]int{1, 2, 3, 4}, false},
		{[]int{1, 2, 3, 1}, false},
	}
	for _, tt := range tests {
		l := data.NewLinkedList(tt.values...)
		if got := l.IsPalindrome(); got != tt.want {
			t.Errorf("%v: expected %v, got %v", tt.values, tt.want, got)
		}
		// the back half is restored
		checkSingly(t, l, tt.values...)
	}
}

func TestLinkedList_Rewiring(t *testing.T) {
	dup := data.NewLinkedList(1, 2, 2, 3, 1, 4, 4)
	if removed := dup.RemoveDuplicates(); removed != 3 {
		t.Fatalf("expected 3 removed, got %d", removed)
	}
	checkSingly(t, dup, 1, 2, 3, 4)

	part := data.NewLinkedList(1, 4, 3, 2, 5, 2)
	part.PartitionList(3)
	checkSingly(t, part, 1, 2, 2, 4, 3, 5)

	below := data.NewLinkedList(2, 1)
	below.PartitionList(3)
	checkSingly(t, below, 2, 1)

	rev := data.NewLinkedList(1, 2, 3, 4, 5)
	if !rev.ReverseBetween(1, 3) {
		t.Fatalf("expected reverse between 1 and 3 to apply")
	}
	checkSingly(t, rev, 1, 4, 3, 2, 5)
	if !rev.ReverseBetween(2, 4) {
		t.Fatalf("expected reverse between 2 and 4 to apply")
	}
	checkSingly(t, rev, 1, 4, 5, 2, 3)
	if rev.ReverseBetween(1, 1) || rev.ReverseBetween(4, 5) {
		t.Fatalf("no-op ranges should report false")
	}
	checkSingly(t, rev, 1, 4, 5, 2, 3)

	even := data.NewLinkedList(1, 2, 3, 4)
	even.SwapPairs()
	checkSingly(t, even, 2, 1, 4, 3)

	odd := data.NewLinkedList(1, 2, 3)
	odd.SwapPairs()
	checkSingly(t, odd, 2, 1, 3)
}

func TestLinkedList_BinaryToDecimal(t *testing.T) {
	got, err := data.NewLinkedList(1, 0, 1, 1).BinaryToDecimal()
	if err != nil || got != 11 {
		t.Fatalf("expected 11, got %d (%v)", got, err)
	}
	if _, err := data.NewLinkedList(1, 2, 0).BinaryToDecimal(); !errors.Is(err, data.ErrInvalidDigit) {
		t.Fatalf("expected ErrInvalidDigit, got %v", err)
	}
}

func TestLinkedList_String(t *testing.T) {
	if got := data.NewLinkedList("a", "b").String(); got != "[a -> b]" {
		t.Fatalf("unexpected string %q", got)
	}
}
