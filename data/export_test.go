package data

// Link overrides for building cycles and other shapes the public API never
// produces.

func SetDNext[T comparable](n, next *DNode[T]) {
	n.next = next
}

func SetDPrev[T comparable](n, prev *DNode[T]) {
	n.prev = prev
}

func SetNext[T comparable](n, next *Node[T]) {
	n.next = next
}
