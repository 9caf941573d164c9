// Package timezone resolves the calendar zone used to derive "today".
// The zone is resolved once at startup and injected into everything that
// does date arithmetic, so schedules stay testable with a fixed clock.
package timezone

import "time"

// DefaultZone is used when neither the configured zone nor the system
// local zone can be resolved.
const DefaultZone = "Asia/Shanghai"

// defaultOffset matches DefaultZone (UTC+8) for hosts without tzdata.
const defaultOffset = 8 * 60 * 60

// Resolver provides the effective local calendar zone and the current
// calendar date within it.
type Resolver struct {
	loc *time.Location
	now func() time.Time
}

// NewResolver resolves the calendar zone. Resolution order: the named zone
// (if non-empty), the system local zone, then DefaultZone. A zone is always
// returned; resolution never fails.
func NewResolver(name string) *Resolver {
	return &Resolver{loc: resolve(name), now: time.Now}
}

// NewFixedResolver returns a resolver whose Today is pinned to the calendar
// date of the given instant, in that instant's location. For tests.
func NewFixedResolver(instant time.Time) *Resolver {
	return &Resolver{
		loc: instant.Location(),
		now: func() time.Time { return instant },
	}
}

func resolve(name string) *time.Location {
	if name != "" {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	if time.Local != nil {
		return time.Local
	}
	if loc, err := time.LoadLocation(DefaultZone); err == nil {
		return loc
	}
	return time.FixedZone("CST", defaultOffset)
}

// Location returns the resolved zone.
func (r *Resolver) Location() *time.Location {
	return r.loc
}

// Today returns the start of the current day in the resolved zone.
func (r *Resolver) Today() time.Time {
	now := r.now().In(r.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, r.loc)
}
