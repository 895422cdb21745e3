package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/f1rstwash/booking-api/internal/domain/booking"
	"github.com/f1rstwash/booking-api/internal/httperr"
	"github.com/f1rstwash/booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *BookingGormRepository) ListServices(
	ctx context.Context,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("duration_min ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id string,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Committed intervals
// --------------------------------------------------

func (r *BookingGormRepository) ListCommitted(
	ctx context.Context,
	rangeStartTS int64,
	rangeEndTS int64,
) ([]domain.Interval, error) {

	committed := []domain.Interval{}

	var bookings []domain.Interval
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("start_ts", "end_ts").
		Where(
			"status = ? AND start_ts < ? AND end_ts > ?",
			models.StatusConfirmed, rangeEndTS, rangeStartTS,
		).
		Scan(&bookings).Error; err != nil {
		return nil, err
	}
	committed = append(committed, bookings...)

	var blocks []domain.Interval
	if err := r.db.WithContext(ctx).
		Model(&models.Block{}).
		Select("start_ts", "end_ts").
		Where("start_ts < ? AND end_ts > ?", rangeEndTS, rangeStartTS).
		Scan(&blocks).Error; err != nil {
		return nil, err
	}
	committed = append(committed, blocks...)

	return committed, nil
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

// CreateBooking re-checks capacity and inserts inside one transaction.
// SQLite's single writer serializes concurrent calls, so two requests can
// never both observe free capacity and jointly exceed it.
func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
	capacity int,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var bookings int64
		if err := tx.
			Model(&models.Booking{}).
			Where(
				"status = ? AND start_ts < ? AND end_ts > ?",
				models.StatusConfirmed, b.EndTS, b.StartTS,
			).
			Count(&bookings).Error; err != nil {
			return err
		}

		var blocks int64
		if err := tx.
			Model(&models.Block{}).
			Where("start_ts < ? AND end_ts > ?", b.EndTS, b.StartTS).
			Count(&blocks).Error; err != nil {
			return err
		}

		if bookings+blocks >= int64(capacity) {
			return httperr.ErrBusiness(httperr.CodeSlotTaken)
		}

		return tx.Create(b).Error
	})
}

// --------------------------------------------------
// Admin reads
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsForDay(
	ctx context.Context,
	dayStartTS int64,
	dayEndTS int64,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("start_ts >= ? AND start_ts < ?", dayStartTS, dayEndTS).
		Order("start_ts ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListRecentBookings(
	ctx context.Context,
	limit int,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Order("start_ts DESC").
		Limit(limit).
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// --------------------------------------------------
// Blocks
// --------------------------------------------------

func (r *BookingGormRepository) CreateBlock(
	ctx context.Context,
	blk *models.Block,
) error {
	return r.db.WithContext(ctx).Create(blk).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
