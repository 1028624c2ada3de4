package rx

import (
	"sync"

	"go.uber.org/zap"
)

type (
	// Subject is a Stream that multicasts the notifications passed to its
	// Next, Error and Complete methods to every live subscriber. Once
	// terminated, a Subject ignores further notifications and
	// subscriptions. Subject is safe for concurrent use
	Subject[T any] struct {
		Stream[T]
		registry *registry[T]
		cache    cache[T]
	}

	// registry tracks the Subscribers registered with a Subject.
	// Deactivated entries are removed lazily by prune
	registry[T any] struct {
		entries []*Subscriber[T]
		mu      sync.RWMutex
		stopped bool
	}

	// cache holds the state a Subject replays to new subscribers before
	// they are registered
	cache[T any] interface {
		record(T)
		replay(*Subscriber[T])
	}
)

// NewSubject creates a Subject that only delivers notifications issued
// after a subscriber registers
func NewSubject[T any]() *Subject[T] {
	return newSubject[T](nil)
}

func newSubject[T any](c cache[T]) *Subject[T] {
	s := &Subject[T]{
		registry: &registry[T]{},
		cache:    c,
	}
	s.Stream = New[T](s.register)
	return s
}

// Subscribe registers o with the Subject. Subscribing to a terminated
// Subject returns a Subscription that has already been torn down
func (s *Subject[T]) Subscribe(o Observer[T]) *Subscription {
	if s.Terminated() {
		return closedSubscription()
	}
	return s.Stream.Subscribe(o)
}

// SubscribeFunc registers an Observer that only reacts to values
func (s *Subject[T]) SubscribeFunc(onNext func(T)) *Subscription {
	return s.Subscribe(ObserveNext(onNext))
}

// Next forwards v to every registered subscriber in registration order
func (s *Subject[T]) Next(v T) {
	s.registry.prune()
	entries, ok := s.registry.snapshot()
	if !ok {
		return
	}
	for _, e := range entries {
		e.Next(v)
	}
	if s.cache != nil {
		s.cache.record(v)
	}
}

// Error terminates the Subject, forwarding err to every registered
// subscriber
func (s *Subject[T]) Error(err error) {
	entries, ok := s.registry.stop()
	if !ok {
		return
	}
	Logger().Debug("subject terminated",
		zap.Stringer("kind", ErrorKind),
		zap.Int("subscribers", len(entries)),
	)
	for _, e := range entries {
		e.Error(err)
	}
}

// Complete terminates the Subject, forwarding completion to every
// registered subscriber
func (s *Subject[T]) Complete() {
	entries, ok := s.registry.stop()
	if !ok {
		return
	}
	Logger().Debug("subject terminated",
		zap.Stringer("kind", CompleteKind),
		zap.Int("subscribers", len(entries)),
	)
	for _, e := range entries {
		e.Complete()
	}
}

// Observer exposes the Subject as an Observer so that it can be subscribed
// to another Stream
func (s *Subject[T]) Observer() Observer[T] {
	return Observer[T]{
		OnNext:     s.Next,
		OnError:    s.Error,
		OnComplete: s.Complete,
	}
}

// Count returns the number of registered subscribers that are still active
func (s *Subject[_]) Count() int {
	return s.registry.count()
}

// Terminated reports whether Error or Complete has been called
func (s *Subject[_]) Terminated() bool {
	s.registry.mu.RLock()
	defer s.registry.mu.RUnlock()
	return s.registry.stopped
}

func (s *Subject[T]) register(sub *Subscriber[T]) Teardown {
	if s.Terminated() {
		sub.Unsubscribe()
		return nil
	}
	if s.cache != nil {
		s.cache.replay(sub)
	}
	if !s.registry.add(sub) {
		sub.Unsubscribe()
	}
	return nil
}

func (r *registry[T]) add(sub *Subscriber[T]) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return false
	}
	r.entries = append(r.entries, sub)
	return true
}

// snapshot returns the current entries. The returned slice is never
// mutated in place, so it can be iterated without holding the lock
func (r *registry[T]) snapshot() ([]*Subscriber[T], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.entries, !r.stopped
}

func (r *registry[T]) stop() ([]*Subscriber[T], bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return nil, false
	}
	r.stopped = true
	entries := r.entries
	r.entries = nil
	return entries, true
}

// prune drops deactivated entries. It gives up rather than waiting when
// the registry is already locked
func (r *registry[T]) prune() {
	if !r.mu.TryLock() {
		return
	}
	defer r.mu.Unlock()

	live := 0
	for _, e := range r.entries {
		if !e.Closed() {
			live++
		}
	}
	if live == len(r.entries) {
		return
	}

	entries := make([]*Subscriber[T], 0, live)
	for _, e := range r.entries {
		if !e.Closed() {
			entries = append(entries, e)
		}
	}
	r.entries = entries
}

func (r *registry[T]) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := 0
	for _, e := range r.entries {
		if !e.Closed() {
			res++
		}
	}
	return res
}
