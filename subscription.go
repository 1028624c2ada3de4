package rx

import (
	"sync"
	"sync/atomic"
)

type (
	// Subscription is the disposal handle of a running execution. It owns
	// the execution's Subscriber and Teardown along with any child
	// Subscriptions added to it. The execution is torn down exactly once:
	// on the first Unsubscribe, or when the last handle is Released
	Subscription struct {
		exec     *execution
		children []*Subscription
		mu       sync.Mutex
		refs     atomic.Int32
	}

	execution struct {
		target   canceler
		teardown Teardown
		running  atomic.Bool
	}
)

// NewSubscription returns a Subscription with no execution of its own that
// takes ownership of the provided children
func NewSubscription(children ...*Subscription) *Subscription {
	s := newSubscription(nil, nil)
	for _, c := range children {
		s.Add(c)
	}
	return s
}

func newSubscription(target canceler, td Teardown) *Subscription {
	s := &Subscription{
		exec: &execution{
			target:   target,
			teardown: td,
		},
	}
	s.exec.running.Store(true)
	s.refs.Store(1)
	return s
}

// Add transfers ownership of child to this Subscription. Tearing this
// Subscription down tears the child down too. Adding to a Subscription
// that has already been torn down tears the child down immediately
func (s *Subscription) Add(child *Subscription) {
	if child == nil || child == s {
		return
	}
	s.mu.Lock()
	if !s.exec.running.Load() {
		s.mu.Unlock()
		child.Unsubscribe()
		return
	}
	s.children = append(s.children, child)
	s.mu.Unlock()
}

// Unsubscribe deactivates the Subscriber, runs the Teardown and then tears
// down every child. Calls after the first do nothing
func (s *Subscription) Unsubscribe() {
	if !s.exec.running.CompareAndSwap(true, false) {
		return
	}
	if s.exec.target != nil {
		s.exec.target.Unsubscribe()
	}
	s.exec.teardown.run()

	s.mu.Lock()
	children := s.children
	s.children = nil
	s.mu.Unlock()

	for _, c := range children {
		c.Unsubscribe()
	}
}

// Close implements io.Closer so a Subscription can be scoped with defer
func (s *Subscription) Close() error {
	s.Unsubscribe()
	return nil
}

// Closed reports whether the Subscription has been torn down
func (s *Subscription) Closed() bool {
	return !s.exec.running.Load()
}

// Retain registers an additional owner of the Subscription and returns it.
// Every Retain must be balanced by a Release
func (s *Subscription) Retain() *Subscription {
	s.refs.Add(1)
	return s
}

// Release drops one owner of the Subscription. Releasing the last owner
// tears the Subscription down
func (s *Subscription) Release() {
	if s.refs.Add(-1) == 0 {
		s.Unsubscribe()
	}
}

func closedSubscription() *Subscription {
	s := newSubscription(nil, nil)
	s.exec.running.Store(false)
	return s
}
