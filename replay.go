package rx

import (
	"container/list"
	"sync"
)

type (
	// ReplaySubject is a Subject that remembers the values it was given and
	// replays them, oldest first, to every new subscriber before
	// registering it
	ReplaySubject[T any] struct {
		*Subject[T]
		history *history[T]
	}

	// history is a FIFO of recorded values bounded by maxSize. A maxSize of
	// zero keeps everything
	history[T any] struct {
		items   *list.List
		maxSize int
		mu      sync.Mutex
	}
)

// NewReplaySubject creates a ReplaySubject that keeps the most recent size
// values. A size of zero keeps every value
func NewReplaySubject[T any](size int) *ReplaySubject[T] {
	h := newHistory[T](size)
	return &ReplaySubject[T]{
		Subject: newSubject[T](h),
		history: h,
	}
}

// Values returns the values that would be replayed to a new subscriber
func (r *ReplaySubject[T]) Values() []T {
	return r.history.values()
}

func newHistory[T any](maxSize int) *history[T] {
	if maxSize < 0 {
		maxSize = DefaultReplaySize
	}
	return &history[T]{
		items:   list.New(),
		maxSize: maxSize,
	}
}

func (h *history[T]) record(v T) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.items.PushBack(v)
	if h.maxSize > 0 && h.items.Len() > h.maxSize {
		h.evictOldest()
	}
}

func (h *history[T]) replay(sub *Subscriber[T]) {
	for _, v := range h.values() {
		sub.Next(v)
	}
}

func (h *history[T]) values() []T {
	h.mu.Lock()
	defer h.mu.Unlock()

	res := make([]T, 0, h.items.Len())
	for e := h.items.Front(); e != nil; e = e.Next() {
		v, _ := e.Value.(T)
		res = append(res, v)
	}
	return res
}

func (h *history[T]) evictOldest() {
	front := h.items.Front()
	if front != nil {
		h.items.Remove(front)
	}
}
