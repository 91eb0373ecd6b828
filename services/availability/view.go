package availability

import (
	"time"

	"servineo/models"
)

// LoadingTimeout is how long a loading result blocks a new fetch for the
// same date. Past it the earlier fetch is presumed lost.
const LoadingTimeout = 30 * time.Second

// View holds the slot result for the currently selected date. Results for
// any other date are discarded, so a slow answer for an abandoned date never
// replaces the one the user is looking at.
type View struct {
	current models.AvailabilityResult
}

// ViewFrom restores a view from a persisted result.
func ViewFrom(res models.AvailabilityResult) *View {
	return &View{current: res}
}

// Begin switches the view to dateKey. It returns false when dateKey already
// has a settled result or a fetch younger than LoadingTimeout in flight, in
// which case no new fetch is needed.
func (v *View) Begin(dateKey string, now time.Time) bool {
	if v.current.DateKey == dateKey {
		switch v.current.Status {
		case "":
		case models.AvailabilityLoading:
			if now.Sub(time.UnixMilli(v.current.StartedAt)) < LoadingTimeout {
				return false
			}
		default:
			return false
		}
	}
	v.current = models.AvailabilityResult{
		DateKey:   dateKey,
		Status:    models.AvailabilityLoading,
		StartedAt: now.UnixMilli(),
	}
	return true
}

// Apply stores res if it belongs to the current date and reports whether it did.
func (v *View) Apply(res models.AvailabilityResult) bool {
	if res.DateKey != v.current.DateKey {
		return false
	}
	v.current = res
	return true
}

// Reset forgets the current date, invalidating any result still in flight.
func (v *View) Reset() {
	v.current = models.AvailabilityResult{}
}

// Current returns the result being displayed.
func (v *View) Current() models.AvailabilityResult {
	return v.current
}

// Slots returns the slots when the current result is a success.
func (v *View) Slots() []models.TimeSlot {
	if v.current.Status != models.AvailabilitySuccess {
		return nil
	}
	return v.current.Slots
}
