package notify

import "log"

const (
	KindBookingCreated = "booking_created"
	KindBookingBlocked = "booking_blocked"
)

type Event struct {
	UserID    uint
	BookingID *uint
	Kind      string
	Message   string
}

// Notifier is the side channel usecases publish on. Delivery is
// best-effort; a failed or dropped notification never fails the caller.
type Notifier interface {
	Dispatch(ev Event)
}

// Dispatcher delivers notifications on a best-effort side channel. A full
// queue drops the event rather than blocking a request.
type Dispatcher struct {
	store *Store
	queue chan Event
}

func NewDispatcher(store *Store) *Dispatcher {
	d := &Dispatcher{
		store: store,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.store.Save(ev); err != nil {
			log.Println("notify error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Println("notify queue full, dropping event")
	}
}

// Compile-time check
var _ Notifier = (*Dispatcher)(nil)
