package booking

import (
	"time"

	"github.com/f1rstwash/booking-api/internal/models"
)

type AvailabilityInput struct {
	ServiceID string
	// Date is midnight of the requested calendar day in the business
	// timezone.
	Date time.Time
}

type AvailabilityResult struct {
	Service *models.Service
	Slots   []Slot
}
