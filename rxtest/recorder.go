// Package rxtest provides helpers for testing code built on rx
package rxtest

import (
	"sync"

	"github.com/kode4food/rx"
)

// Recorder captures the notifications delivered to its Observer. It is
// safe for concurrent use
type Recorder[T any] struct {
	notes []rx.Notification[T]
	mu    sync.Mutex
}

// NewRecorder constructs an empty Recorder
func NewRecorder[T any]() *Recorder[T] {
	return &Recorder[T]{}
}

// Observer returns an Observer that records into r
func (r *Recorder[T]) Observer() rx.Observer[T] {
	return rx.Observer[T]{
		OnNext: func(v T) {
			r.record(rx.Next(v))
		},
		OnError: func(err error) {
			r.record(rx.Error[T](err))
		},
		OnComplete: func() {
			r.record(rx.Complete[T]())
		},
	}
}

// Notifications returns a snapshot copy of everything recorded so far
func (r *Recorder[T]) Notifications() []rx.Notification[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]rx.Notification[T], len(r.notes))
	copy(res, r.notes)
	return res
}

// Values returns the recorded Next values in delivery order
func (r *Recorder[T]) Values() []T {
	notes := r.Notifications()
	res := make([]T, 0, len(notes))
	for _, n := range notes {
		if n.Kind == rx.NextKind {
			res = append(res, n.Value)
		}
	}
	return res
}

// Err returns the first recorded error, if any
func (r *Recorder[_]) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notes {
		if n.Kind == rx.ErrorKind {
			return n.Err
		}
	}
	return nil
}

// Completed reports whether a Complete notification was recorded
func (r *Recorder[_]) Completed() bool {
	return r.count(rx.CompleteKind) > 0
}

// Terminals returns the number of Error and Complete notifications
// recorded. A well-behaved stream never records more than one
func (r *Recorder[_]) Terminals() int {
	return r.count(rx.ErrorKind) + r.count(rx.CompleteKind)
}

// Reset clears the Recorder
func (r *Recorder[_]) Reset() {
	r.mu.Lock()
	r.notes = nil
	r.mu.Unlock()
}

func (r *Recorder[T]) record(n rx.Notification[T]) {
	r.mu.Lock()
	r.notes = append(r.notes, n)
	r.mu.Unlock()
}

func (r *Recorder[_]) count(k rx.Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := 0
	for _, n := range r.notes {
		if n.Kind == k {
			res++
		}
	}
	return res
}
