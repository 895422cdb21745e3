package booking

import (
	"context"
	"time"

	"github.com/f1rstwash/booking-api/internal/config"
	domain "github.com/f1rstwash/booking-api/internal/domain/booking"
	"github.com/f1rstwash/booking-api/internal/models"
)

const recentBookingsLimit = 200

type ListBookingsInput struct {
	// Day, when set, is midnight of the requested calendar day in the
	// business timezone. Nil lists the newest bookings overall.
	Day *time.Time
}

type ListBookings struct {
	repo domain.Repository
	cfg  *config.Config
}

func NewListBookings(repo domain.Repository, cfg *config.Config) *ListBookings {
	return &ListBookings{repo: repo, cfg: cfg}
}

func (uc *ListBookings) Execute(
	ctx context.Context,
	in ListBookingsInput,
) ([]models.Booking, error) {

	if in.Day == nil {
		return uc.repo.ListRecentBookings(ctx, recentBookingsLimit)
	}

	dayStart := *in.Day
	dayEnd := dayStart.AddDate(0, 0, 1)

	return uc.repo.ListBookingsForDay(
		ctx,
		dayStart.UnixMilli(),
		dayEnd.UnixMilli(),
	)
}
