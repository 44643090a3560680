package data

import (
	"fmt"
	"iter"
	"strings"
)

// DNode is an element of a DoublyLinkedList. Only the owning list moves its links.
type DNode[T comparable] struct {
	Value T
	prev  *DNode[T]
	next  *DNode[T]
}

func (n *DNode[T]) Next() *DNode[T] {
	return n.next
}

func (n *DNode[T]) Prev() *DNode[T] {
	return n.prev
}

// DoublyLinkedList is a positional sequence. For adjacent nodes a, b with
// a.next == b it always holds that b.prev == a once a method returns.
type DoublyLinkedList[T comparable] struct {
	head *DNode[T]
	tail *DNode[T]
	size int
}

func NewDoublyLinkedList[T comparable](values ...T) *DoublyLinkedList[T] {
	l := &DoublyLinkedList[T]{
		head: nil,
		tail: nil,
		size: 0,
	}
	for _, value := range values {
		l.Push(value)
	}
	return l
}

func (l *DoublyLinkedList[T]) Head() *DNode[T] {
	return l.head
}

func (l *DoublyLinkedList[T]) Tail() *DNode[T] {
	return l.tail
}

func (l *DoublyLinkedList[T]) Len() int {
	return l.size
}

func (l *DoublyLinkedList[T]) IsEmpty() bool {
	return l.size == 0
}

// Clear drops every node reference held by the list.
func (l *DoublyLinkedList[T]) Clear() {
	l.head = nil
	l.tail = nil
	l.size = 0
}

func (l *DoublyLinkedList[T]) Push(value T) {
	n := &DNode[T]{Value: value, prev: l.tail, next: nil}
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.size += 1
}

func (l *DoublyLinkedList[T]) Unshift(value T) {
	n := &DNode[T]{Value: value, prev: nil, next: l.head}
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.size += 1
}

func (l *DoublyLinkedList[T]) Pop() (*DNode[T], bool) {
	if l.size == 0 {
		return nil, false
	}
	n := l.tail
	l.tail = n.prev
	if l.tail != nil {
		l.tail.next = nil
	} else {
		l.head = nil
	}
	n.prev = nil
	l.size -= 1
	return n, true
}

func (l *DoublyLinkedList[T]) Shift() (*DNode[T], bool) {
	if l.size == 0 {
		return nil, false
	}
	n := l.head
	l.head = n.next
	if l.head != nil {
		l.head.prev = nil
	} else {
		l.tail = nil
	}
	n.next = nil
	l.size -= 1
	return n, true
}

// Get walks from whichever end is closer to index.
func (l *DoublyLinkedList[T]) Get(index int) (*DNode[T], bool) {
	if index < 0 || index >= l.size {
		return nil, false
	}

	if index < l.size/2 {
		curr := l.head
		for i := 0; i < index; i += 1 {
			curr = curr.next
		}
		return curr, true
	}

	curr := l.tail
	for i := l.size - 1; i > index; i -= 1 {
		curr = curr.prev
	}
	return curr, true
}

func (l *DoublyLinkedList[T]) Set(value T, index int) bool {
	n, ok := l.Get(index)
	if !ok {
		return false
	}
	n.Value = value
	return true
}

// Insert places value so that it ends up at index. index may equal Len().
func (l *DoublyLinkedList[T]) Insert(value T, index int) bool {
	if index < 0 || index > l.size {
		return false
	}
	if index == 0 {
		l.Unshift(value)
		return true
	}
	if index == l.size {
		l.Push(value)
		return true
	}

	before, _ := l.Get(index - 1)
	after := before.next
	n := &DNode[T]{Value: value, prev: before, next: after}
	before.next = n
	after.prev = n
	l.size += 1
	return true
}

func (l *DoublyLinkedList[T]) Remove(index int) (*DNode[T], bool) {
	if index < 0 || index >= l.size {
		return nil, false
	}
	if index == 0 {
		return l.Shift()
	}
	if index == l.size-1 {
		return l.Pop()
	}

	n, _ := l.Get(index)
	l.unlink(n)
	return n, true
}

func (l *DoublyLinkedList[T]) unlink(n *DNode[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev = nil
	n.next = nil
	l.size -= 1
}

func (l *DoublyLinkedList[T]) Reverse() {
	curr := l.head
	for curr != nil {
		curr.prev, curr.next = curr.next, curr.prev
		// prev now holds the old next
		curr = curr.prev
	}
	l.head, l.tail = l.tail, l.head
}

// FindMiddleNode returns the second of the two middle nodes for even lengths.
func (l *DoublyLinkedList[T]) FindMiddleNode() (*DNode[T], bool) {
	if l.head == nil {
		return nil, false
	}
	slow, fast := l.head, l.head
	// an acyclic chain exhausts fast within size/2 steps; the bound only
	// matters once a cycle has been linked in by hand
	for steps := 0; steps < l.size && fast != nil && fast.next != nil; steps += 1 {
		slow = slow.next
		fast = fast.next.next
	}
	return slow, true
}

// HasLoop runs Floyd's cycle detection over the next links.
func (l *DoublyLinkedList[T]) HasLoop() bool {
	slow, fast := l.head, l.head
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
		if slow == fast {
			return true
		}
	}
	return false
}

func (l *DoublyLinkedList[T]) IsPalindrome() bool {
	left, right := l.head, l.tail
	for i := 0; i < l.size/2; i += 1 {
		if left.Value != right.Value {
			return false
		}
		left = left.next
		right = right.prev
	}
	return true
}

// ReverseBetween reverses positions m..n inclusive. It reports false and
// leaves the list untouched when the range is empty or out of bounds.
func (l *DoublyLinkedList[T]) ReverseBetween(m, n int) bool {
	if l.head == nil || m == n {
		return false
	}
	if m < 0 || m > n || n >= l.size {
		return false
	}

	var dummy DNode[T]
	dummy.next = l.head
	l.head.prev = &dummy

	before := &dummy
	for i := 0; i < m; i += 1 {
		before = before.next
	}

	// first ends up as the last node of the reversed range
	first := before.next
	for i := 0; i < n-m; i += 1 {
		move := first.next
		first.next = move.next
		if move.next != nil {
			move.next.prev = first
		}
		move.next = before.next
		before.next.prev = move
		before.next = move
		move.prev = before
	}

	if first.next == nil {
		l.tail = first
	}
	l.head = dummy.next
	l.head.prev = nil
	return true
}

// SwapPairs swaps nodes 0<->1, 2<->3, ... keeping node identity.
func (l *DoublyLinkedList[T]) SwapPairs() {
	if l.head == nil {
		return
	}

	var dummy DNode[T]
	dummy.next = l.head
	l.head.prev = &dummy

	prev := &dummy
	for prev.next != nil && prev.next.next != nil {
		first := prev.next
		second := first.next

		first.next = second.next
		if second.next != nil {
			second.next.prev = first
		}
		second.next = first
		first.prev = second
		prev.next = second
		second.prev = prev

		prev = first
	}

	// even length: the last swapped first node is now the tail
	if prev.next == nil {
		l.tail = prev
	}
	l.head = dummy.next
	l.head.prev = nil
}

// PartitionList stably moves every node whose value is numerically below x
// in front of the rest. Non-numeric values count as not below x.
func (l *DoublyLinkedList[T]) PartitionList(x float64) {
	var below, rest DNode[T]
	lt, ge := &below, &rest

	curr := l.head
	for curr != nil {
		next := curr.next
		curr.next = nil
		if v, ok := numeric(curr.Value); ok && v < x {
			lt.next = curr
			curr.prev = lt
			lt = curr
		} else {
			ge.next = curr
			curr.prev = ge
			ge = curr
		}
		curr = next
	}

	lt.next = rest.next
	if rest.next != nil {
		rest.next.prev = lt
	}

	l.head = below.next
	if l.head != nil {
		l.head.prev = nil
	}
	switch {
	case ge != &rest:
		l.tail = ge
	case lt != &below:
		l.tail = lt
	default:
		l.tail = nil
	}
}

// RemoveDuplicates keeps the first node holding each value and returns how
// many nodes were removed.
func (l *DoublyLinkedList[T]) RemoveDuplicates() int {
	seen := NewSet[T]()
	removed := 0

	curr := l.head
	for curr != nil {
		next := curr.next
		if !seen.Add(curr.Value) {
			l.unlink(curr)
			removed += 1
		}
		curr = next
	}
	return removed
}

// BinaryToDecimal reads the values head to tail as binary digits, most
// significant first.
func (l *DoublyLinkedList[T]) BinaryToDecimal() (int, error) {
	return decodeBinary(l.All())
}

func (l *DoublyLinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for curr := l.head; curr != nil; curr = curr.next {
			if !yield(curr.Value) {
				return
			}
		}
	}
}

func (l *DoublyLinkedList[T]) Values() []T {
	values := make([]T, 0, l.size)
	for v := range l.All() {
		values = append(values, v)
	}
	return values
}

func (l *DoublyLinkedList[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	i := 0
	for v := range l.All() {
		if i > 0 {
			sb.WriteString(" <-> ")
		}
		fmt.Fprintf(&sb, "%v", v)
		i += 1
	}
	sb.WriteString("]")
	return sb.String()
}
