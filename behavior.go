package rx

import "sync"

type (
	// BehaviorSubject is a Subject that remembers the latest value it was
	// given, starting with an initial value, and replays it to every new
	// subscriber before registering it
	BehaviorSubject[T any] struct {
		*Subject[T]
		latest *latest[T]
	}

	latest[T any] struct {
		value T
		mu    sync.RWMutex
	}
)

// NewBehaviorSubject creates a BehaviorSubject holding initial
func NewBehaviorSubject[T any](initial T) *BehaviorSubject[T] {
	l := &latest[T]{value: initial}
	return &BehaviorSubject[T]{
		Subject: newSubject[T](l),
		latest:  l,
	}
}

// Value returns the latest value
func (b *BehaviorSubject[T]) Value() T {
	return b.latest.get()
}

func (l *latest[T]) get() T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.value
}

func (l *latest[T]) record(v T) {
	l.mu.Lock()
	l.value = v
	l.mu.Unlock()
}

func (l *latest[T]) replay(sub *Subscriber[T]) {
	sub.Next(l.get())
}
