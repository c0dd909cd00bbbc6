package shell

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestDispatcher_DeliversToSubscriber(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	d := NewDispatcher(8, zerolog.Nop())
	d.Start(ctx)

	ch, unsubscribe := d.Subscribe()
	defer unsubscribe()

	d.Notify("Mug added to cart", false)

	select {
	case n := <-ch:
		if n.Message != "Mug added to cart" || n.IsError {
			t.Errorf("unexpected notification: %+v", n)
		}
	case <-time.After(time.Second):
		t.Fatal("notification not delivered")
	}
}

func TestDispatcher_UnsubscribeClosesChannel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	d := NewDispatcher(8, zerolog.Nop())
	d.Start(ctx)

	ch, unsubscribe := d.Subscribe()
	unsubscribe()

	select {
	case _, ok := <-ch:
		if ok {
			t.Error("expected closed channel after unsubscribe")
		}
	case <-time.After(time.Second):
		t.Fatal("channel not closed")
	}
}

func TestDispatcher_NotifyNeverBlocks(t *testing.T) {
	// Worker not started: the queue fills up and further sends must drop
	// instead of blocking the caller.
	d := NewDispatcher(2, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			d.Notify("overflow", true)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked on a full queue")
	}
}
