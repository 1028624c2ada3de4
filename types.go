package rx

type (
	// Observer is a set of callbacks, one for each kind of notification.
	// Observers have value semantics and may be freely copied. A nil
	// OnNext or OnComplete is ignored; a nil OnError hands the error to the
	// configured unhandled-error hook
	Observer[T any] struct {
		OnNext     func(T)
		OnError    func(error)
		OnComplete func()
	}

	// Observable is anything that can be subscribed to, which includes
	// every Stream and every Subject
	Observable[T any] interface {
		Subscribe(Observer[T]) *Subscription
	}

	// Teardown releases the resources held by one execution of a Stream.
	// It runs at most once. A nil Teardown does nothing
	Teardown func()

	// Producer is the execution procedure of a Stream. It pushes
	// notifications into the Subscriber and returns the Teardown to run
	// when the resulting Subscription is released
	Producer[T any] func(*Subscriber[T]) Teardown

	// Operator transforms a Stream into another Stream without side
	// effects at composition time
	Operator[T, U any] func(Stream[T]) Stream[U]
)

// ObserveNext returns an Observer that only reacts to Next notifications.
// Errors delivered to it reach the unhandled-error hook
func ObserveNext[T any](fn func(T)) Observer[T] {
	return Observer[T]{OnNext: fn}
}

func (o Observer[T]) next(v T) {
	if o.OnNext != nil {
		o.OnNext(v)
	}
}

func (o Observer[_]) fail(err error) {
	if o.OnError != nil {
		o.OnError(err)
		return
	}
	unhandled(err)
}

func (o Observer[_]) complete() {
	if o.OnComplete != nil {
		o.OnComplete()
	}
}

func (t Teardown) run() {
	if t != nil {
		t()
	}
}
