package rx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kode4food/rx"
	"github.com/kode4food/rx/rxtest"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "next", rx.NextKind.String())
	assert.Equal(t, "error", rx.ErrorKind.String())
	assert.Equal(t, "complete", rx.CompleteKind.String())
}

func TestNotificationTerminal(t *testing.T) {
	assert.False(t, rx.Next(1).IsTerminal())
	assert.True(t, rx.Error[int](errBoom).IsTerminal())
	assert.True(t, rx.Complete[int]().IsTerminal())
}

func TestNotificationAccept(t *testing.T) {
	rec := rxtest.NewRecorder[string]()
	o := rec.Observer()

	rx.Next("a").Accept(o)
	rx.Error[string](errBoom).Accept(o)
	rx.Complete[string]().Accept(o)

	assert.Equal(t, []rx.Notification[string]{
		rx.Next("a"), rx.Error[string](errBoom), rx.Complete[string](),
	}, rec.Notifications())
}

func TestNotificationSend(t *testing.T) {
	rec := rxtest.NewRecorder[int]()
	sub := rx.NewSubscriber(rec.Observer())

	rx.Next(1).Send(sub)
	rx.Complete[int]().Send(sub)
	rx.Next(2).Send(sub)

	assert.Equal(t, []int{1}, rec.Values())
	assert.True(t, rec.Completed())
}

func TestNotificationStringer(t *testing.T) {
	assert.Contains(t, rx.Next(42).String(), "42")
	assert.Contains(t, rx.Error[int](errBoom).String(), "boom")
	assert.Equal(t, "Complete", rx.Complete[int]().String())
}
