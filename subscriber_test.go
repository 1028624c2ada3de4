package rx_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kode4food/rx"
	"github.com/kode4food/rx/rxtest"
)

var errBoom = errors.New("boom")

func TestSubscriberSingleTerminal(t *testing.T) {
	rec := rxtest.NewRecorder[int]()
	sub := rx.NewSubscriber(rec.Observer())

	sub.Next(1)
	sub.Complete()
	sub.Next(2)
	sub.Error(errBoom)
	sub.Complete()

	assert.Equal(t, []rx.Notification[int]{
		rx.Next(1), rx.Complete[int](),
	}, rec.Notifications())
	assert.True(t, sub.Closed())
}

func TestSubscriberErrorFirst(t *testing.T) {
	rec := rxtest.NewRecorder[int]()
	sub := rx.NewSubscriber(rec.Observer())

	sub.Error(errBoom)
	sub.Complete()
	sub.Error(errors.New("second"))

	assert.Equal(t, 1, rec.Terminals())
	assert.ErrorIs(t, rec.Err(), errBoom)
	assert.False(t, rec.Completed())
}

func TestSubscriberUnsubscribeIsSilent(t *testing.T) {
	rec := rxtest.NewRecorder[int]()
	sub := rx.NewSubscriber(rec.Observer())

	sub.Next(1)
	sub.Unsubscribe()
	sub.Next(2)
	sub.Complete()
	sub.Error(errBoom)

	assert.Equal(t, []int{1}, rec.Values())
	assert.Equal(t, 0, rec.Terminals())
	assert.True(t, sub.Closed())
}

func TestSubscriberConcurrentTerminals(t *testing.T) {
	rec := rxtest.NewRecorder[int]()
	sub := rx.NewSubscriber(rec.Observer())

	var wg sync.WaitGroup
	for i := range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				sub.Complete()
				return
			}
			sub.Error(errBoom)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, rec.Terminals())
}

func TestSubscriberDone(t *testing.T) {
	sub := rx.NewSubscriber(rx.Observer[int]{})
	done := sub.Done()

	select {
	case <-done:
		t.Fatal("done before terminal")
	default:
	}

	sub.Complete()
	<-done
	<-sub.Done()
}

func TestSubscriberDoneAfterClose(t *testing.T) {
	sub := rx.NewSubscriber(rx.Observer[int]{})
	sub.Unsubscribe()
	<-sub.Done()
}

func TestSubscriberNilCallbacks(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	useConfig(t, rx.Config{Logger: zap.New(core)})

	sub := rx.NewSubscriber(rx.Observer[int]{})
	assert.NotPanics(t, func() {
		sub.Next(1)
		sub.Error(errBoom)
	})

	entries := logs.FilterMessage("unhandled stream error").All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "boom", entries[0].ContextMap()["error"])
	}
}

func TestSubscriberStrictContract(t *testing.T) {
	useConfig(t, rx.Config{
		Logger:         zap.NewNop(),
		StrictContract: true,
	})

	sub := rx.NewSubscriber(rx.Observer[int]{})
	sub.Complete()

	assert.PanicsWithError(t,
		"notification after terminal: next",
		func() { sub.Next(1) },
	)

	unsub := rx.NewSubscriber(rx.Observer[int]{})
	unsub.Unsubscribe()
	assert.NotPanics(t, func() { unsub.Next(1) })
}

func TestSubscriberViolationLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	useConfig(t, rx.Config{Logger: zap.New(core)})

	sub := rx.NewSubscriber(rx.Observer[int]{})
	sub.Complete()
	sub.Next(1)
	sub.Complete()

	entries := logs.FilterMessage("dropped notification after terminal").All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, "next", entries[0].ContextMap()["kind"])
		assert.Equal(t, "complete", entries[1].ContextMap()["kind"])
	}
}

func useConfig(t *testing.T, cfg rx.Config) {
	t.Helper()
	assert.NoError(t, rx.Configure(cfg))
	t.Cleanup(func() {
		_ = rx.Configure(rx.DefaultConfig())
	})
}
