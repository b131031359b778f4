package pathq

type stack[T any] struct {
	data []T
}

func (s *stack[T]) push(v T) {
	s.data = append(s.data, v)
}

func (s *stack[T]) pop() T {
	var zero T
	i := len(s.data) - 1
	v := s.data[i]
	s.data[i] = zero
	s.data = s.data[:i]
	return v
}

func (s *stack[T]) empty() bool {
	return len(s.data) == 0
}
