package data

import (
	"fmt"
	"iter"
	"strings"
)

// Node is an element of a LinkedList. It only links forward.
type Node[T comparable] struct {
	Value T
	next  *Node[T]
}

func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// LinkedList is the singly linked counterpart of DoublyLinkedList. It offers
// the same operations, but anything that needs the node before another one
// has to walk from the head.
type LinkedList[T comparable] struct {
	head *Node[T]
	tail *Node[T]
	size int
}

func NewLinkedList[T comparable](values ...T) *LinkedList[T] {
	l := &LinkedList[T]{
		head: nil,
		tail: nil,
		size: 0,
	}
	for _, value := range values {
		l.Push(value)
	}
	return l
}

func (l *LinkedList[T]) Head() *Node[T] {
	return l.head
}

func (l *LinkedList[T]) Tail() *Node[T] {
	return l.tail
}

func (l *LinkedList[T]) Len() int {
	return l.size
}

func (l *LinkedList[T]) IsEmpty() bool {
	return l.size == 0
}

func (l *LinkedList[T]) Clear() {
	l.head = nil
	l.tail = nil
	l.size = 0
}

func (l *LinkedList[T]) Push(value T) {
	n := &Node[T]{Value: value, next: nil}
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.size += 1
}

func (l *LinkedList[T]) Unshift(value T) {
	n := &Node[T]{Value: value, next: l.head}
	if l.head == nil {
		l.tail = n
	}
	l.head = n
	l.size += 1
}

// Pop walks to the node before the tail.
func (l *LinkedList[T]) Pop() (*Node[T], bool) {
	if l.size == 0 {
		return nil, false
	}
	if l.size == 1 {
		n := l.head
		l.Clear()
		return n, true
	}

	prev := l.head
	for prev.next != l.tail {
		prev = prev.next
	}
	n := l.tail
	prev.next = nil
	l.tail = prev
	l.size -= 1
	return n, true
}

func (l *LinkedList[T]) Shift() (*Node[T], bool) {
	if l.size == 0 {
		return nil, false
	}
	n := l.head
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	}
	n.next = nil
	l.size -= 1
	return n, true
}

func (l *LinkedList[T]) Get(index int) (*Node[T], bool) {
	if index < 0 || index >= l.size {
		return nil, false
	}
	curr := l.head
	for i := 0; i < index; i += 1 {
		curr = curr.next
	}
	return curr, true
}

func (l *LinkedList[T]) Set(value T, index int) bool {
	n, ok := l.Get(index)
	if !ok {
		return false
	}
	n.Value = value
	return true
}

func (l *LinkedList[T]) Insert(value T, index int) bool {
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
	before.next = &Node[T]{Value: value, next: before.next}
	l.size += 1
	return true
}

func (l *LinkedList[T]) Remove(index int) (*Node[T], bool) {
	if index < 0 || index >= l.size {
		return nil, false
	}
	if index == 0 {
		return l.Shift()
	}
	if index == l.size-1 {
		return l.Pop()
	}

	before, _ := l.Get(index - 1)
	n := before.next
	before.next = n.next
	n.next = nil
	l.size -= 1
	return n, true
}

func (l *LinkedList[T]) Reverse() {
	l.tail = l.head
	l.head = reverseChain(l.head)
}

// reverseChain reverses the nil terminated chain starting at n and returns
// its new first node.
func reverseChain[T comparable](n *Node[T]) *Node[T] {
	var prev *Node[T]
	for n != nil {
		next := n.next
		n.next = prev
		prev = n
		n = next
	}
	return prev
}

func (l *LinkedList[T]) FindMiddleNode() (*Node[T], bool) {
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

func (l *LinkedList[T]) HasLoop() bool {
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

// IsPalindrome reverses the back half in place to walk it from the tail,
// then puts it back before returning.
func (l *LinkedList[T]) IsPalindrome() bool {
	if l.size < 2 {
		return true
	}

	// last node of the front half, the middle one included for odd lengths
	end := l.head
	for i := 1; i < (l.size+1)/2; i += 1 {
		end = end.next
	}
	back := reverseChain(end.next)

	result := true
	left, right := l.head, back
	for i := 0; i < l.size/2; i += 1 {
		if left.Value != right.Value {
			result = false
			break
		}
		left = left.next
		right = right.next
	}

	end.next = reverseChain(back)
	return result
}

func (l *LinkedList[T]) ReverseBetween(m, n int) bool {
	if l.head == nil || m == n {
		return false
	}
	if m < 0 || m > n || n >= l.size {
		return false
	}

	dummy := Node[T]{next: l.head}
	before := &dummy
	for i := 0; i < m; i += 1 {
		before = before.next
	}

	first := before.next
	for i := 0; i < n-m; i += 1 {
		move := first.next
		first.next = move.next
		move.next = before.next
		before.next = move
	}

	if first.next == nil {
		l.tail = first
	}
	l.head = dummy.next
	return true
}

func (l *LinkedList[T]) SwapPairs() {
	dummy := Node[T]{next: l.head}
	prev := &dummy
	for prev.next != nil && prev.next.next != nil {
		first := prev.next
		second := first.next

		first.next = second.next
		second.next = first
		prev.next = second

		prev = first
	}

	if prev != &dummy && prev.next == nil {
		l.tail = prev
	}
	l.head = dummy.next
}

func (l *LinkedList[T]) PartitionList(x float64) {
	var below, rest Node[T]
	lt, ge := &below, &rest

	curr := l.head
	for curr != nil {
		next := curr.next
		curr.next = nil
		if v, ok := numeric(curr.Value); ok && v < x {
			lt.next = curr
			lt = curr
		} else {
			ge.next = curr
			ge = curr
		}
		curr = next
	}

	lt.next = rest.next
	l.head = below.next
	switch {
	case ge != &rest:
		l.tail = ge
	case lt != &below:
		l.tail = lt
	default:
		l.tail = nil
	}
}

func (l *LinkedList[T]) RemoveDuplicates() int {
	seen := NewSet[T]()
	removed := 0

	var prev *Node[T]
	curr := l.head
	for curr != nil {
		next := curr.next
		if seen.Add(curr.Value) {
			prev = curr
		} else {
			// the head is never a duplicate, so prev is set here
			prev.next = next
			curr.next = nil
			l.size -= 1
			removed += 1
		}
		curr = next
	}
	l.tail = prev
	return removed
}

func (l *LinkedList[T]) BinaryToDecimal() (int, error) {
	return decodeBinary(l.All())
}

func (l *LinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for curr := l.head; curr != nil; curr = curr.next {
			if !yield(curr.Value) {
				return
			}
		}
	}
}

func (l *LinkedList[T]) Values() []T {
	values := make([]T, 0, l.size)
	for v := range l.All() {
		values = append(values, v)
	}
	return values
}

func (l *LinkedList[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	i := 0
	for v := range l.All() {
		if i > 0 {
			sb.WriteString(" -> ")
		}
		fmt.Fprintf(&sb, "%v", v)
		i += 1
	}
	sb.WriteString("]")
	return sb.String()
}
