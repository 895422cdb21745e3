package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/f1rstwash/booking-api/internal/config"
	dbpkg "github.com/f1rstwash/booking-api/internal/db"
	"github.com/f1rstwash/booking-api/internal/httperr"
	"github.com/f1rstwash/booking-api/internal/models"
)

func newTestRepo(t *testing.T) *BookingGormRepository {
	t.Helper()
	cfg := &config.Config{DBPath: ":memory:"}
	return NewBookingGormRepository(dbpkg.NewDB(cfg))
}

func testBooking(startTS, endTS int64) *models.Booking {
	return &models.Booking{
		ID:            uuid.NewString(),
		ServiceID:     "exterior",
		StartTS:       startTS,
		EndTS:         endTS,
		CustomerName:  "Max Mustermann",
		CustomerPhone: "+49 30 1234567",
		Status:        models.StatusConfirmed,
	}
}

func TestListServices_SeededAndOrdered(t *testing.T) {
	repo := newTestRepo(t)

	services, err := repo.ListServices(context.Background())
	if err != nil {
		t.Fatalf("ListServices failed: %v", err)
	}

	if len(services) != 4 {
		t.Fatalf("expected 4 seeded services, got %d", len(services))
	}
	for i := 1; i < len(services); i++ {
		if services[i].DurationMin < services[i-1].DurationMin {
			t.Fatalf("services not ordered by duration ascending")
		}
	}
}

func TestGetService_UnknownAndInactive(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if _, err := repo.GetService(ctx, "exterior"); err != nil {
		t.Fatalf("expected seeded service, got error: %v", err)
	}
	if _, err := repo.GetService(ctx, "nope"); err == nil {
		t.Fatal("expected error for unknown service")
	}
}

func TestCreateBooking_CapacityConflict(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	start := time.Now().Add(48 * time.Hour).UnixMilli()
	end := start + 30*60*1000

	if err := repo.CreateBooking(ctx, testBooking(start, end), 2); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}
	if err := repo.CreateBooking(ctx, testBooking(start, end), 2); err != nil {
		t.Fatalf("second booking within capacity failed: %v", err)
	}

	err := repo.CreateBooking(ctx, testBooking(start, end), 2)
	if !httperr.IsBusiness(err, httperr.CodeSlotTaken) {
		t.Fatalf("expected slot_taken at capacity, got %v", err)
	}
}

func TestCreateBooking_BlocksConsumeCapacity(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	start := time.Now().Add(48 * time.Hour).UnixMilli()
	end := start + 30*60*1000

	if err := repo.CreateBlock(ctx, &models.Block{
		ID:      uuid.NewString(),
		StartTS: start,
		EndTS:   end,
		Reason:  "maintenance",
	}); err != nil {
		t.Fatalf("CreateBlock failed: %v", err)
	}

	err := repo.CreateBooking(ctx, testBooking(start, end), 1)
	if !httperr.IsBusiness(err, httperr.CodeSlotTaken) {
		t.Fatalf("expected block to consume capacity, got %v", err)
	}
}

func TestCreateBooking_ConcurrentNeverExceedsCapacity(t *testing.T) {
	repo := newTestRepo(t)

	const capacity = 2
	const attempts = capacity + 3

	start := time.Now().Add(48 * time.Hour).UnixMilli()
	end := start + 30*60*1000

	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- repo.CreateBooking(context.Background(), testBooking(start, end), capacity)
		}()
	}
	wg.Wait()
	close(results)

	successes, conflicts := 0, 0
	for err := range results {
		switch {
		case err == nil:
			successes++
		case httperr.IsBusiness(err, httperr.CodeSlotTaken):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if successes != capacity {
		t.Errorf("expected exactly %d successes, got %d", capacity, successes)
	}
	if conflicts != attempts-capacity {
		t.Errorf("expected %d conflicts, got %d", attempts-capacity, conflicts)
	}
}

func TestListCommitted_HalfOpenRange(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	base := time.Now().Add(48 * time.Hour).UnixMilli()
	hour := int64(60 * 60 * 1000)

	// Ends exactly at range start: out. Starts exactly at range end: out.
	// Straddles the range start: in.
	if err := repo.CreateBooking(ctx, testBooking(base-hour, base), 10); err != nil {
		t.Fatalf("seed booking failed: %v", err)
	}
	if err := repo.CreateBooking(ctx, testBooking(base+10*hour, base+11*hour), 10); err != nil {
		t.Fatalf("seed booking failed: %v", err)
	}
	if err := repo.CreateBooking(ctx, testBooking(base-hour, base+hour), 10); err != nil {
		t.Fatalf("seed booking failed: %v", err)
	}

	committed, err := repo.ListCommitted(ctx, base, base+10*hour)
	if err != nil {
		t.Fatalf("ListCommitted failed: %v", err)
	}
	if len(committed) != 1 {
		t.Fatalf("expected 1 overlapping interval, got %d", len(committed))
	}
	if committed[0].StartTS != base-hour || committed[0].EndTS != base+hour {
		t.Errorf("unexpected interval: %+v", committed[0])
	}
}

func TestListBookingsForDay_Ordering(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	base := time.Now().Add(48 * time.Hour).UnixMilli()
	hour := int64(60 * 60 * 1000)

	for _, offset := range []int64{3, 1, 2} {
		b := testBooking(base+offset*hour, base+offset*hour+30*60*1000)
		if err := repo.CreateBooking(ctx, b, 10); err != nil {
			t.Fatalf("seed booking failed: %v", err)
		}
	}

	bookings, err := repo.ListBookingsForDay(ctx, base, base+24*hour)
	if err != nil {
		t.Fatalf("ListBookingsForDay failed: %v", err)
	}
	if len(bookings) != 3 {
		t.Fatalf("expected 3 bookings, got %d", len(bookings))
	}
	for i := 1; i < len(bookings); i++ {
		if bookings[i].StartTS < bookings[i-1].StartTS {
			t.Fatal("day listing not ordered by start ascending")
		}
	}

	recent, err := repo.ListRecentBookings(ctx, 200)
	if err != nil {
		t.Fatalf("ListRecentBookings failed: %v", err)
	}
	for i := 1; i < len(recent); i++ {
		if recent[i].StartTS > recent[i-1].StartTS {
			t.Fatal("recent listing not ordered newest-first")
		}
	}
}
