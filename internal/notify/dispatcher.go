package notify

import (
	"time"

	"go.uber.org/zap"

	"github.com/f1rstwash/booking-api/internal/logger"
	"github.com/f1rstwash/booking-api/internal/metrics"
)

// Event carries what the business owner needs to see for a new booking.
// Start is already in the business timezone.
type Event struct {
	Name  string
	Email string
	Start time.Time
}

type Sender interface {
	Send(ev Event) error
}

// Notifier is what the booking path depends on; failures never reach it.
type Notifier interface {
	Dispatch(ev Event)
}

// Dispatcher decouples booking creation from delivery: events go through
// a buffered channel to a background worker, and a full queue drops the
// event rather than block the API.
type Dispatcher struct {
	sender Sender
	queue  chan Event
}

func NewDispatcher(sender Sender) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sender.Send(ev); err != nil {
			metrics.NotificationsSent.WithLabelValues("error").Inc()
			logger.L().Warn("booking notification failed",
				zap.String("customer", ev.Name),
				zap.Error(err),
			)
			continue
		}
		metrics.NotificationsSent.WithLabelValues("ok").Inc()
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		logger.L().Warn("notification queue full, dropping event",
			zap.String("customer", ev.Name),
		)
	}
}

var _ Notifier = (*Dispatcher)(nil)
