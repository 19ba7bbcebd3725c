package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"timeplay/internal/domain"
)

func TestPublishDeliversInOrder(t *testing.T) {
	b := New()
	defer b.Close()

	got := make(chan int, 10)
	b.Subscribe(EventPlaybackStatus, func(e DomainEvent) {
		got <- e.(PlaybackStatusEvent).Position
	})

	for i := 0; i < 5; i++ {
		b.Publish(PlaybackStatusEvent{Status: domain.Playing, Position: i})
	}

	for i := 0; i < 5; i++ {
		select {
		case pos := <-got:
			require.Equal(t, i, pos, "events should arrive in publish order")
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for event %d", i)
		}
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New()
	defer b.Close()

	first := make(chan struct{}, 10)
	second := make(chan struct{}, 10)
	unsub := b.Subscribe(EventSelectionCleared, func(DomainEvent) { first <- struct{}{} })
	b.Subscribe(EventSelectionCleared, func(DomainEvent) { second <- struct{}{} })

	unsub()
	b.Publish(SelectionClearedEvent{})

	select {
	case <-second:
	case <-time.After(time.Second):
		t.Fatal("remaining subscriber should still receive events")
	}
	require.Len(t, first, 0, "unsubscribed handler must not be called")
}

func TestHandlerPanicDoesNotStopDispatcher(t *testing.T) {
	b := New()
	defer b.Close()

	done := make(chan struct{}, 1)
	b.Subscribe(EventError, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventError, func(DomainEvent) { done <- struct{}{} })

	b.Publish(ErrorEvent{Message: "test"})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler after a panicking handler should still run")
	}
}

func TestPublishAfterCloseIsIgnored(t *testing.T) {
	b := New()
	b.Close()

	require.NotPanics(t, func() {
		b.Publish(SelectionClearedEvent{})
		b.Close()
	})
}
