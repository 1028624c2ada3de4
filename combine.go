package rx

import (
	"slices"
	"sync"
)

// slots tracks the latest value of each of a fixed number of inputs, along
// with which inputs have emitted and which have completed. Emitted rows are
// copies, so they may be retained by downstream observers
type slots[T any] struct {
	values  []T
	filled  []bool
	done    []bool
	missing int
	pending int
	mu      sync.Mutex
}

// CombineLatest tracks the latest value of the source and of every other
// input. Each time any input emits, and once every input has emitted at
// least once, it emits a row holding the latest values in input order,
// source first. It completes once every input has completed
func CombineLatest[T any](others ...Observable[T]) Operator[T, []T] {
	return func(src Stream[T]) Stream[[]T] {
		inputs := withSource[T](src, others)
		return New[[]T](func(s *Subscriber[[]T]) Teardown {
			st := newSlots[T](len(inputs))
			group := NewSubscription()
			for i, in := range inputs {
				if s.Closed() {
					break
				}
				group.Add(in.Subscribe(Observer[T]{
					OnNext: func(v T) {
						if row, ok := st.set(i, v); ok {
							s.Next(row)
						}
					},
					OnError: failGroup(s, group),
					OnComplete: func() {
						if st.finish(i) {
							s.Complete()
						}
					},
				}))
			}
			return group.Unsubscribe
		})
	}
}

// WithLatestFrom combines every source value with the latest value of each
// other input, emitting a row that starts with the source value. Source
// values that arrive before every other input has emitted are dropped.
// Only the source's completion completes the result
func WithLatestFrom[T any](others ...Observable[T]) Operator[T, []T] {
	return func(src Stream[T]) Stream[[]T] {
		return New[[]T](func(s *Subscriber[[]T]) Teardown {
			st := newSlots[T](len(others))
			group := NewSubscription()
			for i, in := range others {
				if s.Closed() {
					return group.Unsubscribe
				}
				group.Add(in.Subscribe(Observer[T]{
					OnNext: func(v T) {
						st.set(i, v)
					},
					OnError: failGroup(s, group),
				}))
			}
			group.Add(src.Subscribe(Observer[T]{
				OnNext: func(v T) {
					if row, ok := st.prepend(v); ok {
						s.Next(row)
					}
				},
				OnError: failGroup(s, group),
				OnComplete: func() {
					s.Complete()
					group.Unsubscribe()
				},
			}))
			return group.Unsubscribe
		})
	}
}

func newSlots[T any](n int) *slots[T] {
	return &slots[T]{
		values:  make([]T, n),
		filled:  make([]bool, n),
		done:    make([]bool, n),
		missing: n,
		pending: n,
	}
}

// set records v as the latest value of input i and returns a copy of the
// row if every input has emitted
func (s *slots[T]) set(i int, v T) ([]T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[i] = v
	if !s.filled[i] {
		s.filled[i] = true
		s.missing--
	}
	if s.missing > 0 {
		return nil, false
	}
	return slices.Clone(s.values), true
}

// prepend returns v followed by the latest value of every input, if every
// input has emitted
func (s *slots[T]) prepend(v T) ([]T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.missing > 0 {
		return nil, false
	}
	row := make([]T, 0, len(s.values)+1)
	row = append(row, v)
	return append(row, s.values...), true
}

// finish marks input i as completed and reports whether it was the last
// one to do so
func (s *slots[T]) finish(i int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done[i] {
		return false
	}
	s.done[i] = true
	s.pending--
	return s.pending == 0
}
