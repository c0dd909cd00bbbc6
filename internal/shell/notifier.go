// Package shell hosts the view/navigation collaborators the core calls into
// but does not own. The notification dispatcher is the service rendition of
// the UI toast: the core fires messages at it and moves on.
package shell

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/minimarket/storefront-system/internal/api/metrics"
	"github.com/minimarket/storefront-system/internal/core/ports"
)

const defaultQueueSize = 64

var _ ports.Notifier = (*Dispatcher)(nil)

// Notification is a single user-facing toast message.
type Notification struct {
	Message string `json:"message"`
	IsError bool   `json:"is_error"`
}

// Dispatcher buffers notifications on a channel and fans them out to
// subscribers from a background worker. Notify never blocks the caller: when
// the queue is full the notification is dropped and counted.
type Dispatcher struct {
	queue chan Notification
	log   zerolog.Logger

	mu          sync.Mutex
	nextID      int
	subscribers map[int]chan Notification
}

// NewDispatcher creates a Dispatcher with the given queue capacity.
// If queueSize <= 0, defaultQueueSize is used.
func NewDispatcher(queueSize int, log zerolog.Logger) *Dispatcher {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	return &Dispatcher{
		queue:       make(chan Notification, queueSize),
		log:         log,
		subscribers: make(map[int]chan Notification),
	}
}

// Start launches the fan-out worker. The worker stops when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	go d.run(ctx)
}

// Notify satisfies ports.Notifier. Fire-and-forget.
func (d *Dispatcher) Notify(message string, isError bool) {
	select {
	case d.queue <- Notification{Message: message, IsError: isError}:
	default:
		metrics.NotificationsDroppedTotal.Inc()
		d.log.Warn().Str("message", message).Msg("notification queue full, dropping")
	}
}

// Subscribe registers a listener and returns its channel plus a cancel
// function that must be called when the listener goes away.
func (d *Dispatcher) Subscribe() (<-chan Notification, func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := d.nextID
	d.nextID++
	ch := make(chan Notification, 8)
	d.subscribers[id] = ch

	cancel := func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if sub, ok := d.subscribers[id]; ok {
			delete(d.subscribers, id)
			close(sub)
		}
	}
	return ch, cancel
}

func (d *Dispatcher) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-d.queue:
			if !ok {
				return
			}
			d.log.Info().Str("message", n.Message).Bool("is_error", n.IsError).Msg("notification")
			d.fanOut(n)
		}
	}
}

// fanOut delivers to every subscriber without blocking: a slow listener
// misses notifications rather than stalling the worker.
func (d *Dispatcher) fanOut(n Notification) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, sub := range d.subscribers {
		select {
		case sub <- n:
		default:
		}
	}
}
