package booking

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/f1rstwash/booking-api/internal/config"
	domain "github.com/f1rstwash/booking-api/internal/domain/booking"
	"github.com/f1rstwash/booking-api/internal/httperr"
	"github.com/f1rstwash/booking-api/internal/metrics"
	"github.com/f1rstwash/booking-api/internal/models"
	"github.com/f1rstwash/booking-api/internal/notify"
	"github.com/f1rstwash/booking-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ServiceID string
	Start     string // ISO-8601 instant, interpreted in the business timezone

	Name  string
	Phone string
	Email string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	cfg      *config.Config
	notifier notify.Notifier
}

func NewCreateBooking(
	repo domain.Repository,
	cfg *config.Config,
	notifier notify.Notifier,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		cfg:      cfg,
		notifier: notifier,
	}
}

// layouts accepted for the start instant; offset-less forms are read in
// the business timezone.
var startLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func (uc *CreateBooking) parseStart(raw string) (time.Time, error) {
	loc := timezone.Location(uc.cfg.Timezone)

	var lastErr error
	for _, layout := range startLayouts {
		t, err := time.ParseInLocation(layout, raw, loc)
		if err == nil {
			return t.In(loc), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// Required fields
	// --------------------------------------------------
	serviceID := strings.TrimSpace(in.ServiceID)
	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)
	email := strings.TrimSpace(in.Email)

	if serviceID == "" {
		return nil, httperr.ErrBusiness(httperr.CodeMissingService)
	}
	if strings.TrimSpace(in.Start) == "" {
		return nil, httperr.ErrBusiness(httperr.CodeMissingStart)
	}
	if name == "" {
		return nil, httperr.ErrBusiness(httperr.CodeMissingName)
	}
	if phone == "" {
		return nil, httperr.ErrBusiness(httperr.CodeMissingPhone)
	}

	// --------------------------------------------------
	// Service
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, serviceID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeServiceUnknown)
	}

	// --------------------------------------------------
	// Start / end in the business timezone
	// --------------------------------------------------
	start, err := uc.parseStart(strings.TrimSpace(in.Start))
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidStart)
	}

	end := start.Add(time.Duration(service.DurationMin) * time.Minute)

	// --------------------------------------------------
	// Business hours, then past-time
	// --------------------------------------------------
	dayOpen, dayClose := dayWindow(uc.cfg, start)
	if start.Before(dayOpen) || end.After(dayClose) {
		return nil, httperr.ErrBusiness(httperr.CodeOutsideHours)
	}

	now := timezone.NowIn(uc.cfg.Timezone)
	if !start.After(now) {
		return nil, httperr.ErrBusiness(httperr.CodePastTime)
	}

	// --------------------------------------------------
	// Capacity re-check + insert (atomic)
	// --------------------------------------------------
	b := &models.Booking{
		ID:            uuid.NewString(),
		ServiceID:     service.ID,
		StartTS:       start.UnixMilli(),
		EndTS:         end.UnixMilli(),
		CustomerName:  name,
		CustomerPhone: phone,
		CustomerEmail: email,
		Status:        models.StatusConfirmed,
	}

	if err := uc.repo.CreateBooking(ctx, b, uc.cfg.Capacity); err != nil {
		if httperr.IsBusiness(err, httperr.CodeSlotTaken) {
			metrics.BookingConflicts.Inc()
			return nil, err
		}
		return nil, httperr.ErrBusiness(httperr.CodeStorageFailed)
	}

	metrics.BookingsCreated.Inc()

	// Fire-and-forget; delivery failures never surface to the client.
	uc.notifier.Dispatch(notify.Event{
		Name:  name,
		Email: email,
		Start: start,
	})

	return b, nil
}
