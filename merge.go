package rx

import "sync/atomic"

// Merge forwards the values of the source and of every other input as
// they arrive. An error from any input is forwarded immediately;
// completion is forwarded once every input has completed. Inputs that
// follow one failing synchronously are never subscribed
func Merge[T any](others ...Observable[T]) Operator[T, T] {
	return func(src Stream[T]) Stream[T] {
		inputs := withSource[T](src, others)
		return New[T](func(s *Subscriber[T]) Teardown {
			var pending atomic.Int32
			pending.Store(int32(len(inputs)))

			group := NewSubscription()
			for _, in := range inputs {
				if s.Closed() {
					break
				}
				group.Add(in.Subscribe(Observer[T]{
					OnNext:  s.Next,
					OnError: failGroup(s, group),
					OnComplete: func() {
						if pending.Add(-1) == 0 {
							s.Complete()
						}
					},
				}))
			}
			return group.Unsubscribe
		})
	}
}

func withSource[T any](src Stream[T], others []Observable[T]) []Observable[T] {
	res := make([]Observable[T], 0, len(others)+1)
	res = append(res, src)
	return append(res, others...)
}

// failGroup forwards err to s and releases every input, so that inputs
// still running stop pushing into a terminated Subscriber
func failGroup[T any](s *Subscriber[T], group *Subscription) func(error) {
	return func(err error) {
		s.Error(err)
		group.Unsubscribe()
	}
}
