package rx

import (
	"sync"
	"sync/atomic"
)

type (
	// Subscriber binds one Observer to one running execution. It enforces
	// the notification contract: once Error, Complete or Unsubscribe has
	// succeeded, nothing further reaches the Observer. Subscriber is safe
	// for concurrent use
	Subscriber[T any] struct {
		observer Observer[T]
		state    atomic.Int32
		mu       sync.Mutex
		done     chan struct{}
		signaled bool
	}

	// canceler is the untyped view of a Subscriber held by a Subscription
	canceler interface {
		Unsubscribe()
	}
)

const (
	stateActive int32 = iota
	stateTerminated
	stateUnsubscribed
)

// NewSubscriber binds the Observer to a new, active Subscriber
func NewSubscriber[T any](o Observer[T]) *Subscriber[T] {
	return &Subscriber[T]{observer: o}
}

// Next delivers v if the Subscriber is still active. A Next racing with a
// terminal transition may or may not be delivered
func (s *Subscriber[T]) Next(v T) {
	switch s.state.Load() {
	case stateActive:
		s.observer.next(v)
	case stateTerminated:
		violation(NextKind)
	}
}

// Error terminates the Subscriber with err. Only the first terminal call
// reaches the Observer
func (s *Subscriber[T]) Error(err error) {
	if s.state.CompareAndSwap(stateActive, stateTerminated) {
		s.signal()
		s.observer.fail(err)
		return
	}
	if s.state.Load() == stateTerminated {
		violation(ErrorKind)
	}
}

// Complete terminates the Subscriber successfully. Only the first terminal
// call reaches the Observer
func (s *Subscriber[T]) Complete() {
	if s.state.CompareAndSwap(stateActive, stateTerminated) {
		s.signal()
		s.observer.complete()
		return
	}
	if s.state.Load() == stateTerminated {
		violation(CompleteKind)
	}
}

// Unsubscribe deactivates the Subscriber without notifying the Observer
func (s *Subscriber[_]) Unsubscribe() {
	if s.state.CompareAndSwap(stateActive, stateUnsubscribed) {
		s.signal()
	}
}

// Closed reports whether the Subscriber has stopped accepting
// notifications. Producers running on other goroutines poll it to learn
// that they should stop
func (s *Subscriber[_]) Closed() bool {
	return s.state.Load() != stateActive
}

// Done returns a channel that is closed once the Subscriber stops
// accepting notifications, for producers that prefer to select
func (s *Subscriber[_]) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done == nil {
		s.done = make(chan struct{})
		if s.signaled {
			close(s.done)
		}
	}
	return s.done
}

func (s *Subscriber[_]) signal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.signaled = true
	if s.done != nil {
		close(s.done)
	}
}
