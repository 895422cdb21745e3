package notify

import (
	"errors"
	"testing"
	"time"
)

type chanSender struct {
	received chan Event
	err      error
}

func (s *chanSender) Send(ev Event) error {
	s.received <- ev
	return s.err
}

func TestDispatcher_DeliversInBackground(t *testing.T) {
	sender := &chanSender{received: make(chan Event, 1)}
	d := NewDispatcher(sender)

	d.Dispatch(Event{Name: "Max", Start: time.Now()})

	select {
	case ev := <-sender.received:
		if ev.Name != "Max" {
			t.Errorf("unexpected event: %+v", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("event never reached the sender")
	}
}

func TestDispatcher_SenderErrorIsSwallowed(t *testing.T) {
	sender := &chanSender{
		received: make(chan Event, 2),
		err:      errors.New("smtp down"),
	}
	d := NewDispatcher(sender)

	// A failing sender must not break subsequent dispatches.
	d.Dispatch(Event{Name: "first"})
	d.Dispatch(Event{Name: "second"})

	for _, want := range []string{"first", "second"} {
		select {
		case ev := <-sender.received:
			if ev.Name != want {
				t.Errorf("expected %s, got %s", want, ev.Name)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("event %s never delivered", want)
		}
	}
}

func TestDispatcher_FullQueueDropsInsteadOfBlocking(t *testing.T) {
	// An unbuffered channel with no reader wedges the worker after the
	// first event; the queue then fills and further dispatches must
	// return immediately.
	sender := &chanSender{received: make(chan Event)}
	d := NewDispatcher(sender)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 150; i++ {
			d.Dispatch(Event{Name: "overflow"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Dispatch blocked on a full queue")
	}
}
