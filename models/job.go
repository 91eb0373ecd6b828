package models

type JobStatus string

const (
	JobConfirmed JobStatus = "confirmed"
	JobPending   JobStatus = "pending"
	JobDone      JobStatus = "done"
	JobCancelled JobStatus = "cancelled"
)

// JobStatuses lists statuses in tab order.
var JobStatuses = []JobStatus{JobConfirmed, JobPending, JobCancelled, JobDone}

// Valid reports whether s is a known status.
func (s JobStatus) Valid() bool {
	switch s {
	case JobConfirmed, JobPending, JobDone, JobCancelled:
		return true
	}
	return false
}

// Label is the chip text shown next to a job.
func (s JobStatus) Label() string {
	switch s {
	case JobConfirmed:
		return "CONFIRMADO"
	case JobPending:
		return "PENDIENTE"
	case JobDone:
		return "TERMINADO"
	default:
		return "CANCELADO"
	}
}

// Color is the chip colour for the status.
func (s JobStatus) Color() string {
	switch s {
	case JobConfirmed:
		return "#1366FD"
	case JobPending:
		return "#F0D92B"
	case JobDone:
		return "#31C950"
	default:
		return "#E84141"
	}
}

// JobRecord is a scheduled job as returned by the backend.
type JobRecord struct {
	ID         string    `json:"id"`
	ClientName string    `json:"clientName"`
	Service    string    `json:"service"`
	StartISO   string    `json:"startISO"`
	EndISO     string    `json:"endISO"`
	Status     JobStatus `json:"status"`
}

// StatusCounts tallies jobs per status.
type StatusCounts struct {
	Confirmed int `json:"confirmed"`
	Pending   int `json:"pending"`
	Cancelled int `json:"cancelled"`
	Done      int `json:"done"`
}

// Total is the "all" tab badge.
func (c StatusCounts) Total() int {
	return c.Confirmed + c.Pending + c.Cancelled + c.Done
}

// Of returns the count for one status.
func (c StatusCounts) Of(s JobStatus) int {
	switch s {
	case JobConfirmed:
		return c.Confirmed
	case JobPending:
		return c.Pending
	case JobCancelled:
		return c.Cancelled
	case JobDone:
		return c.Done
	}
	return 0
}
