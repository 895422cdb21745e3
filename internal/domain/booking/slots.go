package booking

import "time"

type Slot struct {
	Start time.Time
	End   time.Time
	Label string
}

type SlotRequest struct {
	// DayOpen and DayClose bound the business-hours window for one
	// calendar date, already resolved in the business timezone.
	DayOpen  time.Time
	DayClose time.Time

	Duration time.Duration
	Interval time.Duration
	Capacity int

	// Committed holds every confirmed booking and block overlapping the
	// day window.
	Committed []Interval

	// Now is evaluated once per request; candidates at or before it are
	// never offered.
	Now time.Time
}

// ComputeSlots enumerates bookable start times for one day, ascending.
// A candidate is offered only when its full duration fits before close,
// it lies strictly in the future, and fewer than Capacity committed
// intervals overlap it. An empty result is a valid outcome.
func ComputeSlots(req SlotRequest) []Slot {
	loc := req.DayOpen.Location()

	openTS := req.DayOpen.UnixMilli()
	closeTS := req.DayClose.UnixMilli()
	durationMS := req.Duration.Milliseconds()
	intervalMS := req.Interval.Milliseconds()
	nowTS := req.Now.UnixMilli()

	if durationMS <= 0 || intervalMS <= 0 {
		return []Slot{}
	}

	slots := []Slot{}
	for startTS := openTS; startTS+durationMS <= closeTS; startTS += intervalMS {
		if startTS <= nowTS {
			continue
		}

		endTS := startTS + durationMS
		if CountOverlapping(req.Committed, startTS, endTS) >= req.Capacity {
			continue
		}

		start := time.UnixMilli(startTS).In(loc)
		slots = append(slots, Slot{
			Start: start,
			End:   time.UnixMilli(endTS).In(loc),
			Label: start.Format("15:04"),
		})
	}

	return slots
}
