package booking

import (
	"context"

	"github.com/f1rstwash/booking-api/internal/models"
)

type Repository interface {
	// -------- Services (catalog) --------
	ListServices(
		ctx context.Context,
	) ([]models.Service, error)

	GetService(
		ctx context.Context,
		id string,
	) (*models.Service, error)

	// -------- Committed intervals --------
	ListCommitted(
		ctx context.Context,
		rangeStartTS int64,
		rangeEndTS int64,
	) ([]Interval, error)

	// -------- Booking (create / conflict) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
		capacity int,
	) error

	// -------- Admin reads --------
	ListBookingsForDay(
		ctx context.Context,
		dayStartTS int64,
		dayEndTS int64,
	) ([]models.Booking, error)

	ListRecentBookings(
		ctx context.Context,
		limit int,
	) ([]models.Booking, error)

	// -------- Blocks --------
	CreateBlock(
		ctx context.Context,
		blk *models.Block,
	) error
}
