package booking

import (
	"context"
	"testing"
	"time"

	"github.com/f1rstwash/booking-api/internal/config"
	dbpkg "github.com/f1rstwash/booking-api/internal/db"
	"github.com/f1rstwash/booking-api/internal/httperr"
	infraRepo "github.com/f1rstwash/booking-api/internal/infra/repository"
	"github.com/f1rstwash/booking-api/internal/models"
	"github.com/f1rstwash/booking-api/internal/notify"
	"github.com/f1rstwash/booking-api/internal/timezone"
)

type recordingNotifier struct {
	events []notify.Event
}

func (n *recordingNotifier) Dispatch(ev notify.Event) {
	n.events = append(n.events, ev)
}

func testConfig() *config.Config {
	return &config.Config{
		DBPath:          ":memory:",
		Timezone:        "Europe/Berlin",
		OpenHour:        10,
		CloseHour:       20,
		SlotIntervalMin: 15,
		Capacity:        2,
	}
}

func newCreateUC(t *testing.T) (*CreateBooking, *recordingNotifier) {
	t.Helper()
	cfg := testConfig()
	repo := infraRepo.NewBookingGormRepository(dbpkg.NewDB(cfg))
	notifier := &recordingNotifier{}
	return NewCreateBooking(repo, cfg, notifier), notifier
}

// tomorrowAt returns tomorrow at the given local wall-clock time, which
// is always in the future and inside a fresh day's window.
func tomorrowAt(hour, min int) time.Time {
	now := timezone.NowIn("Europe/Berlin")
	d := now.AddDate(0, 0, 1)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, min, 0, 0, now.Location())
}

func validInput(start time.Time) CreateBookingInput {
	return CreateBookingInput{
		ServiceID: "exterior",
		Start:     start.Format(time.RFC3339),
		Name:      "Max Mustermann",
		Phone:     "+49 30 1234567",
	}
}

func TestCreateBooking_Success(t *testing.T) {
	uc, notifier := newCreateUC(t)

	start := tomorrowAt(12, 0)
	in := validInput(start)
	in.Email = "  max@example.com  "

	b, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if b.ID == "" {
		t.Error("expected generated id")
	}
	if b.Status != models.StatusConfirmed {
		t.Errorf("expected status confirmed, got %s", b.Status)
	}
	if b.StartTS != start.UnixMilli() {
		t.Errorf("unexpected start: %d", b.StartTS)
	}
	if got := b.EndTS - b.StartTS; got != 30*60*1000 {
		t.Errorf("expected end = start + 30min, got %dms", got)
	}
	if b.CustomerEmail != "max@example.com" {
		t.Errorf("expected trimmed email, got %q", b.CustomerEmail)
	}

	if len(notifier.events) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.events))
	}
	if notifier.events[0].Name != "Max Mustermann" {
		t.Errorf("unexpected notification payload: %+v", notifier.events[0])
	}
}

func TestCreateBooking_MissingFields(t *testing.T) {
	uc, _ := newCreateUC(t)
	start := tomorrowAt(12, 0)

	cases := []struct {
		name   string
		mutate func(*CreateBookingInput)
		code   string
	}{
		{"service", func(in *CreateBookingInput) { in.ServiceID = " " }, httperr.CodeMissingService},
		{"start", func(in *CreateBookingInput) { in.Start = "" }, httperr.CodeMissingStart},
		{"name", func(in *CreateBookingInput) { in.Name = "   " }, httperr.CodeMissingName},
		{"phone", func(in *CreateBookingInput) { in.Phone = "" }, httperr.CodeMissingPhone},
	}

	for _, tc := range cases {
		in := validInput(start)
		tc.mutate(&in)
		_, err := uc.Execute(context.Background(), in)
		if !httperr.IsBusiness(err, tc.code) {
			t.Errorf("%s: expected %s, got %v", tc.name, tc.code, err)
		}
	}
}

func TestCreateBooking_UnknownService(t *testing.T) {
	uc, _ := newCreateUC(t)

	in := validInput(tomorrowAt(12, 0))
	in.ServiceID = "jetski"

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, httperr.CodeServiceUnknown) {
		t.Fatalf("expected service_not_found, got %v", err)
	}
}

func TestCreateBooking_InvalidStart(t *testing.T) {
	uc, _ := newCreateUC(t)

	in := validInput(tomorrowAt(12, 0))
	in.Start = "next tuesday"

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, httperr.CodeInvalidStart) {
		t.Fatalf("expected invalid_start, got %v", err)
	}
}

func TestCreateBooking_BusinessHoursBoundaries(t *testing.T) {
	uc, _ := newCreateUC(t)
	ctx := context.Background()

	// Before open.
	_, err := uc.Execute(ctx, validInput(tomorrowAt(9, 0)))
	if !httperr.IsBusiness(err, httperr.CodeOutsideHours) {
		t.Errorf("09:00 start: expected outside_hours, got %v", err)
	}

	// Ends past close (19:45 + 30min = 20:15).
	_, err = uc.Execute(ctx, validInput(tomorrowAt(19, 45)))
	if !httperr.IsBusiness(err, httperr.CodeOutsideHours) {
		t.Errorf("19:45 start: expected outside_hours, got %v", err)
	}

	// Ends exactly at close (19:30 + 30min = 20:00): accepted.
	if _, err := uc.Execute(ctx, validInput(tomorrowAt(19, 30))); err != nil {
		t.Errorf("19:30 start: expected success, got %v", err)
	}
}

func TestCreateBooking_PastTime(t *testing.T) {
	uc, notifier := newCreateUC(t)

	// Yesterday noon is inside business hours for its own day, so only
	// the past-time rule can reject it.
	now := timezone.NowIn("Europe/Berlin")
	d := now.AddDate(0, 0, -1)
	start := time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, now.Location())

	_, err := uc.Execute(context.Background(), validInput(start))
	if !httperr.IsBusiness(err, httperr.CodePastTime) {
		t.Fatalf("expected past_time, got %v", err)
	}
	if len(notifier.events) != 0 {
		t.Error("rejected booking must not notify")
	}
}

func TestCreateBooking_CapacityConflict(t *testing.T) {
	uc, _ := newCreateUC(t)
	ctx := context.Background()
	start := tomorrowAt(14, 0)

	for i := 0; i < 2; i++ {
		if _, err := uc.Execute(ctx, validInput(start)); err != nil {
			t.Fatalf("booking %d within capacity failed: %v", i+1, err)
		}
	}

	_, err := uc.Execute(ctx, validInput(start))
	if !httperr.IsBusiness(err, httperr.CodeSlotTaken) {
		t.Fatalf("expected slot_taken, got %v", err)
	}
}
