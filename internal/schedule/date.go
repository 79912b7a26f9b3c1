// Package schedule resolves broadcast dates and proxies the upstream
// program-schedule API.
package schedule

import (
	"fmt"
	"regexp"
	"time"

	"github.com/radichu/radichu-serve/internal/apperrors"
)

// rolloverHour is the boundary of the broadcast day: hours 00:00-04:59 in
// the reference timezone belong to the previous calendar day's schedule.
const rolloverHour = 5

// dateFormat renders a time as a YYYYMMDD broadcast date.
const dateFormat = "20060102"

var datePattern = regexp.MustCompile(`^\d{8}$`)

// Resolver computes broadcast dates in a fixed reference timezone.
type Resolver struct {
	location *time.Location
}

// NewResolver creates a resolver for the given IANA timezone name.
func NewResolver(timezone string) (*Resolver, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", timezone, err)
	}
	return &Resolver{location: loc}, nil
}

// Resolve returns the broadcast date for a schedule query.
//
// A non-empty explicit value must be exactly 8 digits and is taken as
// YYYYMMDD. Its components are not range-checked: out-of-range months or
// days normalize the way time.Date does (20241301 becomes 20250101), so
// any calendar-valid input round-trips unchanged.
//
// An empty explicit value resolves "now" in the reference timezone with
// the broadcast-day rollover applied.
func (r *Resolver) Resolve(explicit string, now time.Time) (string, error) {
	if explicit != "" {
		if !datePattern.MatchString(explicit) {
			return "", apperrors.InvalidInput("date must be 8 digits (YYYYMMDD)")
		}
		year := atoi(explicit[0:4])
		month := atoi(explicit[4:6])
		day := atoi(explicit[6:8])
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, r.location).Format(dateFormat), nil
	}

	local := now.In(r.location)
	if local.Hour() < rolloverHour {
		local = local.AddDate(0, 0, -1)
	}
	return local.Format(dateFormat), nil
}

// atoi converts a digits-only substring. Inputs are pre-validated by
// datePattern, so no error path exists.
func atoi(s string) int {
	n := 0
	for _, ch := range s {
		n = n*10 + int(ch-'0')
	}
	return n
}
