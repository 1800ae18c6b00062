package mailer

import (
	"log"

	"storefront-api/internal/models"
)

// Sender sends one order notification. *Mailer is the production sender.
type Sender interface {
	SendOrderNotification(order models.InkOrder, business models.Business) error
}

type task struct {
	order    models.InkOrder
	business models.Business
}

// Dispatcher runs order notifications off the request path through a bounded
// queue. Delivery is best-effort: a task is dropped when the queue is full,
// and send failures are logged and discarded. Nothing here ever reaches the
// customer who placed the order.
type Dispatcher struct {
	sender Sender
	queue  chan task
	done   chan struct{}
}

func NewDispatcher(sender Sender, queueSize int) *Dispatcher {
	return &Dispatcher{
		sender: sender,
		queue:  make(chan task, queueSize),
		done:   make(chan struct{}),
	}
}

// Start launches the worker. Call once.
func (d *Dispatcher) Start() {
	go d.run()
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for t := range d.queue {
		if err := d.sender.SendOrderNotification(t.order, t.business); err != nil {
			log.Printf("[mailer] notification for order by %s discarded: %v", t.order.CustomerEmail, err)
		}
	}
}

// Enqueue schedules a notification without blocking. It reports false when
// the queue is full and the task was dropped.
func (d *Dispatcher) Enqueue(order models.InkOrder, business models.Business) bool {
	select {
	case d.queue <- task{order: order, business: business}:
		return true
	default:
		return false
	}
}

// Stop closes the queue and waits for the worker to finish the tasks that
// were already accepted.
func (d *Dispatcher) Stop() {
	close(d.queue)
	<-d.done
}
