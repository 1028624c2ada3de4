package rx

import "sync"

// Map applies fn to every value. Errors and completion pass through
func Map[T, U any](fn func(T) U) Operator[T, U] {
	return func(src Stream[T]) Stream[U] {
		return New[U](func(s *Subscriber[U]) Teardown {
			return src.Subscribe(Observer[T]{
				OnNext: func(v T) {
					if !s.Closed() {
						s.Next(fn(v))
					}
				},
				OnError:    s.Error,
				OnComplete: s.Complete,
			}).Unsubscribe
		})
	}
}

// Filter forwards only the values for which pred returns true
func Filter[T any](pred func(T) bool) Operator[T, T] {
	return func(src Stream[T]) Stream[T] {
		return New[T](func(s *Subscriber[T]) Teardown {
			return src.Subscribe(Observer[T]{
				OnNext: func(v T) {
					if pred(v) {
						s.Next(v)
					}
				},
				OnError:    s.Error,
				OnComplete: s.Complete,
			}).Unsubscribe
		})
	}
}

// Distinct forwards each value only the first time it is seen. The set of
// seen values belongs to a single subscription and grows without bound
func Distinct[T comparable]() Operator[T, T] {
	return func(src Stream[T]) Stream[T] {
		return New[T](func(s *Subscriber[T]) Teardown {
			var mu sync.Mutex
			seen := map[T]struct{}{}
			return src.Subscribe(Observer[T]{
				OnNext: func(v T) {
					mu.Lock()
					_, dup := seen[v]
					if !dup {
						seen[v] = struct{}{}
					}
					mu.Unlock()
					if !dup {
						s.Next(v)
					}
				},
				OnError:    s.Error,
				OnComplete: s.Complete,
			}).Unsubscribe
		})
	}
}

// DistinctUntilChanged forwards a value only when it differs from the last
// value forwarded
func DistinctUntilChanged[T comparable]() Operator[T, T] {
	return func(src Stream[T]) Stream[T] {
		return New[T](func(s *Subscriber[T]) Teardown {
			var (
				mu   sync.Mutex
				last T
				has  bool
			)
			return src.Subscribe(Observer[T]{
				OnNext: func(v T) {
					mu.Lock()
					changed := !has || last != v
					last, has = v, true
					mu.Unlock()
					if changed {
						s.Next(v)
					}
				},
				OnError:    s.Error,
				OnComplete: s.Complete,
			}).Unsubscribe
		})
	}
}
