package booking

import (
	"time"

	"github.com/f1rstwash/booking-api/internal/config"
)

// dayWindow resolves the business-hours window for the calendar date of t,
// in t's location.
func dayWindow(cfg *config.Config, t time.Time) (dayOpen, dayClose time.Time) {
	y, m, d := t.Date()
	loc := t.Location()

	dayOpen = time.Date(y, m, d, cfg.OpenHour, 0, 0, 0, loc)
	dayClose = time.Date(y, m, d, cfg.CloseHour, 0, 0, 0, loc)
	return dayOpen, dayClose
}
