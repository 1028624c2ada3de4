// Package rx implements push-based event streams. A Stream lazily describes
// how values are produced; each call to Subscribe runs that description
// against a fresh Subscriber that enforces the notification contract: zero
// or more Next notifications followed by at most one Error or Complete.
//
// Typical usage looks like:
//   - Build a Stream with New, Of, From, FromSeq or FromChan
//   - Compose it with operators (Map, Filter, Distinct, Merge,
//     CombineLatest, WithLatestFrom) through Pipe or the PipeN helpers
//   - Pipe only accepts operators that keep the element type. Operators
//     that change it, such as Map or CombineLatest, go through Pipe2,
//     Pipe3 or Pipe4, or are applied directly: CombineLatest[int](b)(a)
//   - Subscribe an Observer and keep the returned Subscription
//   - Unsubscribe (or Release the last handle) to run the teardown
//
// Subject, BehaviorSubject and ReplaySubject multicast a single series of
// notifications to every live subscriber.
//
// The package never starts goroutines on its own behalf, with the exception
// of FromChan. Producers that hand off to other goroutines must stop calling
// into their Subscriber once it reports Closed.
//
// The examples/ directory contains a runnable sensor workflow that exercises
// the API in a small domain.
package rx
