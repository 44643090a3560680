package data

type Set[T comparable] struct {
	members map[T]bool
}

func NewSet[T comparable]() *Set[T] {
	return &Set[T]{
		members: make(map[T]bool),
	}
}

// Add reports whether member was not present before.
func (s *Set[T]) Add(member T) bool {
	_, exists := s.members[member]
	s.members[member] = true
	return !exists
}

func (s *Set[T]) Remove(member T) bool {
	_, exists := s.members[member]
	if exists {
		delete(s.members, member)
	}
	return exists
}

func (s *Set[T]) Contains(member T) bool {
	_, exists := s.members[member]
	return exists
}

func (s *Set[T]) Members() []T {
	members := make([]T, 0, len(s.members))
	for member := range s.members {
		members = append(members, member)
	}
	return members
}

func (s *Set[T]) Len() int {
	return len(s.members)
}

func (s *Set[T]) IsEmpty() bool {
	return len(s.members) == 0
}

func (s *Set[T]) Clear() {
	s.members = make(map[T]bool)
}
