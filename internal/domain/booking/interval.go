package booking

// Interval is a half-open [StartTS, EndTS) range in epoch milliseconds.
// Confirmed bookings and admin blocks both reduce to this for capacity
// counting.
type Interval struct {
	StartTS int64
	EndTS   int64
}

// Overlaps reports whether two half-open intervals intersect. An interval
// ending exactly when another begins does not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd int64) bool {
	return aStart < bEnd && aEnd > bStart
}

// CountOverlapping counts committed intervals intersecting [startTS, endTS).
func CountOverlapping(committed []Interval, startTS, endTS int64) int {
	n := 0
	for _, iv := range committed {
		if Overlaps(iv.StartTS, iv.EndTS, startTS, endTS) {
			n++
		}
	}
	return n
}
