package utils

import "time"

// Pacific time, where most of the catalog's retreats run (PT, -08:00/-07:00)
var ptLoc = func() *time.Location {
	if loc, err := time.LoadLocation("America/Los_Angeles"); err == nil {
		return loc
	}
	return time.FixedZone("PST", -8*3600)
}()

// Use explicit "seconds" variant for DB storage
func NowUnixSeconds() int64 { return time.Now().Unix() }

// Convert an epoch value in seconds to PT.
// Returns zero time if t<=0 to let callers decide how to render.
func FromUnixSecondsPT(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(ptLoc)
}

func FormatRFC3339PT(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(ptLoc).Format(time.RFC3339)
}

func FormatDisplayDatePT(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(ptLoc).Format("2006-01-02")
}
