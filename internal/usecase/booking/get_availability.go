package booking

import (
	"context"
	"time"

	"github.com/f1rstwash/booking-api/internal/config"
	domain "github.com/f1rstwash/booking-api/internal/domain/booking"
	"github.com/f1rstwash/booking-api/internal/httperr"
	"github.com/f1rstwash/booking-api/internal/timezone"
)

type GetAvailability struct {
	repo domain.Repository
	cfg  *config.Config
}

func NewGetAvailability(repo domain.Repository, cfg *config.Config) *GetAvailability {
	return &GetAvailability{repo: repo, cfg: cfg}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (*domain.AvailabilityResult, error) {

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeServiceUnknown)
	}

	dayOpen, dayClose := dayWindow(uc.cfg, in.Date)

	committed, err := uc.repo.ListCommitted(
		ctx,
		dayOpen.UnixMilli(),
		dayClose.UnixMilli(),
	)
	if err != nil {
		return nil, err
	}

	slots := domain.ComputeSlots(domain.SlotRequest{
		DayOpen:   dayOpen,
		DayClose:  dayClose,
		Duration:  time.Duration(service.DurationMin) * time.Minute,
		Interval:  time.Duration(uc.cfg.SlotIntervalMin) * time.Minute,
		Capacity:  uc.cfg.Capacity,
		Committed: committed,
		Now:       timezone.NowIn(uc.cfg.Timezone),
	})

	return &domain.AvailabilityResult{
		Service: service,
		Slots:   slots,
	}, nil
}
