package models

import "fmt"

// TimeSlot is a bookable interval offered by a fixer on one day.
type TimeSlot struct {
	StartTime  string  `json:"startTime"` // HH:MM
	EndTime    string  `json:"endTime"`   // HH:MM
	HourlyRate float64 `json:"hourlyRate"`
	Currency   string  `json:"currency"`
}

// Range renders the slot as HH:MM-HH:MM.
func (s TimeSlot) Range() string {
	return fmt.Sprintf("%s-%s", s.StartTime, s.EndTime)
}

// DayAvailability is the backend's answer for one (fixer, date) pair.
// Message is set when the backend explains why there is nothing to book.
type DayAvailability struct {
	Slots   []TimeSlot `json:"slots"`
	Message string     `json:"message,omitempty"`
}

type AvailabilityStatus string

const (
	AvailabilityLoading AvailabilityStatus = "loading"
	AvailabilitySuccess AvailabilityStatus = "success"
	AvailabilityEmpty   AvailabilityStatus = "empty"
	AvailabilityError   AvailabilityStatus = "error"
)

// AvailabilityResult is the classified outcome of a slot fetch for DateKey.
type AvailabilityResult struct {
	DateKey string             `json:"dateKey"`
	Status  AvailabilityStatus `json:"status"`
	Slots   []TimeSlot         `json:"slots,omitempty"`
	Message string             `json:"message,omitempty"`
	// StartedAt is when a loading result began, in unix millis.
	StartedAt int64 `json:"startedAt,omitempty"`
}
