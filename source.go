package rx

import "iter"

// Of emits v and then completes
func Of[T any](v T) Stream[T] {
	return New[T](func(s *Subscriber[T]) Teardown {
		s.Next(v)
		s.Complete()
		return nil
	})
}

// From emits each of the values in order and then completes
func From[T any](values ...T) Stream[T] {
	return FromSlice(values)
}

// FromSlice emits the elements of the slice in order and then completes.
// The slice is read at subscription time
func FromSlice[T any](values []T) Stream[T] {
	return New[T](func(s *Subscriber[T]) Teardown {
		for _, v := range values {
			if s.Closed() {
				return nil
			}
			s.Next(v)
		}
		s.Complete()
		return nil
	})
}

// FromSeq emits every element produced by the sequence and then completes.
// Iteration stops early once the Subscriber is closed
func FromSeq[T any](seq iter.Seq[T]) Stream[T] {
	return New[T](func(s *Subscriber[T]) Teardown {
		for v := range seq {
			if s.Closed() {
				return nil
			}
			s.Next(v)
		}
		s.Complete()
		return nil
	})
}

// FromChan emits values received from ch on a dedicated goroutine and
// completes when ch is closed. The goroutine exits as soon as the
// Subscriber is closed; the channel itself is never closed by the Stream
func FromChan[T any](ch <-chan T) Stream[T] {
	return New[T](func(s *Subscriber[T]) Teardown {
		done := s.Done()
		go func() {
			for {
				select {
				case <-done:
					return
				case v, ok := <-ch:
					if !ok {
						s.Complete()
						return
					}
					s.Next(v)
				}
			}
		}()
		return nil
	})
}

// Empty completes immediately without emitting
func Empty[T any]() Stream[T] {
	return New[T](func(s *Subscriber[T]) Teardown {
		s.Complete()
		return nil
	})
}

// Never neither emits nor terminates
func Never[T any]() Stream[T] {
	return Stream[T]{}
}

// Fail terminates immediately with err
func Fail[T any](err error) Stream[T] {
	return New[T](func(s *Subscriber[T]) Teardown {
		s.Error(err)
		return nil
	})
}
