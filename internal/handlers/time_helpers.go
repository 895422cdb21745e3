package handlers

import (
	"regexp"
	"time"
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func isValidDate(s string) bool {
	return dateRe.MatchString(s)
}

func parseDateIn(dateStr string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, loc)
}

func formatTS(ts int64, loc *time.Location) string {
	return time.UnixMilli(ts).In(loc).Format(time.RFC3339)
}
