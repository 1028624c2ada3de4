package rx

import "fmt"

type (
	// Kind identifies the type of a Notification
	Kind int

	// Notification is a single Next, Error or Complete signal captured as a
	// value
	Notification[T any] struct {
		Value T
		Err   error
		Kind  Kind
	}
)

const (
	// NextKind carries a value
	NextKind Kind = iota

	// ErrorKind terminates a sequence with an error
	ErrorKind

	// CompleteKind terminates a sequence successfully
	CompleteKind
)

// Next captures a value notification
func Next[T any](v T) Notification[T] {
	return Notification[T]{Kind: NextKind, Value: v}
}

// Error captures an error notification
func Error[T any](err error) Notification[T] {
	return Notification[T]{Kind: ErrorKind, Err: err}
}

// Complete captures a completion notification
func Complete[T any]() Notification[T] {
	return Notification[T]{Kind: CompleteKind}
}

// IsTerminal reports whether nothing may follow this notification
func (n Notification[_]) IsTerminal() bool {
	return n.Kind != NextKind
}

// Accept delivers the notification to the Observer
func (n Notification[T]) Accept(o Observer[T]) {
	switch n.Kind {
	case NextKind:
		o.next(n.Value)
	case ErrorKind:
		o.fail(n.Err)
	case CompleteKind:
		o.complete()
	}
}

// Send delivers the notification to the Subscriber, which enforces the
// terminal contract
func (n Notification[T]) Send(s *Subscriber[T]) {
	switch n.Kind {
	case NextKind:
		s.Next(n.Value)
	case ErrorKind:
		s.Error(n.Err)
	case CompleteKind:
		s.Complete()
	}
}

func (n Notification[T]) String() string {
	switch n.Kind {
	case NextKind:
		return fmt.Sprintf("Next(%v)", n.Value)
	case ErrorKind:
		return fmt.Sprintf("Error(%v)", n.Err)
	default:
		return "Complete"
	}
}

func (k Kind) String() string {
	switch k {
	case NextKind:
		return "next"
	case ErrorKind:
		return "error"
	case CompleteKind:
		return "complete"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}
