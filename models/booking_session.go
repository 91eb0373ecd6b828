package models

import "time"

type BookingStep string

const (
	StepCalendar BookingStep = "calendar"
	StepSlots    BookingStep = "slots"
)

// BookingSession holds a client's progress from day selection to job request.
type BookingSession struct {
	SessionID     string             `json:"sessionId"`
	ProviderID    string             `json:"providerId"`
	Step          BookingStep        `json:"step"`
	Calendar      CalendarState      `json:"calendar"`
	Availability  AvailabilityResult `json:"availability"`
	SelectedSlots []int              `json:"selectedSlots,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// BookingSessionView is the response body for session endpoints.
type BookingSessionView struct {
	SessionID     string              `json:"sessionId"`
	ProviderID    string              `json:"providerId"`
	Step          BookingStep         `json:"step"`
	Grid          MonthGrid           `json:"grid"`
	Selected      *CalendarDate       `json:"selected,omitempty"`
	CanProceed    bool                `json:"canProceed"`
	Availability  *AvailabilityResult `json:"availability,omitempty"`
	SelectedSlots []int               `json:"selectedSlots,omitempty"`
	CanSubmit     bool                `json:"canSubmit"`
}
