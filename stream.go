package rx

// Stream is a lazy, reusable description of how to push values into a
// Subscriber. Nothing runs until Subscribe is called, and every call runs
// the Producer again from scratch against a fresh Subscriber. The zero
// Stream never emits
type Stream[T any] struct {
	produce Producer[T]
}

// New creates a Stream from its execution procedure
func New[T any](produce Producer[T]) Stream[T] {
	return Stream[T]{produce: produce}
}

// Subscribe runs the Producer against a new Subscriber bound to o. The
// Producer runs on the calling goroutine, so notifications it issues
// directly are delivered before Subscribe returns. A panic raised by the
// Producer propagates to the caller
func (s Stream[T]) Subscribe(o Observer[T]) *Subscription {
	sub := NewSubscriber(o)
	var td Teardown
	if s.produce != nil {
		td = s.produce(sub)
	}
	return newSubscription(sub, td)
}

// SubscribeFunc subscribes with an Observer that only reacts to values
func (s Stream[T]) SubscribeFunc(onNext func(T)) *Subscription {
	return s.Subscribe(ObserveNext(onNext))
}

// Pipe applies the operators left to right
func (s Stream[T]) Pipe(ops ...Operator[T, T]) Stream[T] {
	res := s
	for _, op := range ops {
		res = op(res)
	}
	return res
}

// Pipe2 composes two operators that may change the element type
func Pipe2[A, B, C any](
	s Stream[A], op1 Operator[A, B], op2 Operator[B, C],
) Stream[C] {
	return op2(op1(s))
}

// Pipe3 composes three operators that may change the element type
func Pipe3[A, B, C, D any](
	s Stream[A], op1 Operator[A, B], op2 Operator[B, C], op3 Operator[C, D],
) Stream[D] {
	return op3(op2(op1(s)))
}

// Pipe4 composes four operators that may change the element type
func Pipe4[A, B, C, D, E any](
	s Stream[A], op1 Operator[A, B], op2 Operator[B, C],
	op3 Operator[C, D], op4 Operator[D, E],
) Stream[E] {
	return op4(op3(op2(op1(s))))
}

// AsStream adapts any Observable into a Stream so it can be piped
func AsStream[T any](o Observable[T]) Stream[T] {
	if s, ok := o.(Stream[T]); ok {
		return s
	}
	return New[T](func(s *Subscriber[T]) Teardown {
		return o.Subscribe(forward(s)).Unsubscribe
	})
}

// forward returns an Observer that relays every notification to s
func forward[T any](s *Subscriber[T]) Observer[T] {
	return Observer[T]{
		OnNext:     s.Next,
		OnError:    s.Error,
		OnComplete: s.Complete,
	}
}
