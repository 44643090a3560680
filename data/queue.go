package data

// Queue is a FIFO on top of LinkedList: Push at the tail, Shift at the head,
// both constant time.
type Queue[T comparable] struct {
	items *LinkedList[T]
}

func NewQueue[T comparable]() *Queue[T] {
	return &Queue[T]{
		items: NewLinkedList[T](),
	}
}

func (q *Queue[T]) Enqueue(value T) {
	q.items.Push(value)
}

func (q *Queue[T]) Dequeue() (T, bool) {
	n, ok := q.items.Shift()
	if !ok {
		var empty T
		return empty, false
	}
	return n.Value, true
}

func (q *Queue[T]) Peek() (T, bool) {
	if q.items.IsEmpty() {
		var empty T
		return empty, false
	}
	return q.items.Head().Value, true
}

func (q *Queue[T]) Size() int {
	return q.items.Len()
}

func (q *Queue[T]) IsEmpty() bool {
	return q.items.IsEmpty()
}
