package booking

import (
	"context"
	"time"

	"servineo/metrics"
	"servineo/models"
	"servineo/services/availability"

	"go.uber.org/zap"
)

type Direction string

const (
	DirectionPrev Direction = "prev"
	DirectionNext Direction = "next"
)

// BookingSessionService drives one client's calendar → slots → request flow.
type BookingSessionService interface {
	InitiateSession(ctx context.Context, providerID string) (*models.BookingSessionView, error)
	GetSession(ctx context.Context, sessionID string) (*models.BookingSessionView, error)
	ChangeMonth(ctx context.Context, sessionID string, dir Direction) (*models.BookingSessionView, error)
	SelectDate(ctx context.Context, sessionID string, day int) (*models.BookingSessionView, error)
	Proceed(ctx context.Context, sessionID string) (*models.BookingSessionView, error)
	Back(ctx context.Context, sessionID string) (*models.BookingSessionView, error)
	SelectSlots(ctx context.Context, sessionID string, indices []int) (*models.BookingSessionView, error)
	ToggleSlot(ctx context.Context, sessionID string, index int) (*models.BookingSessionView, error)
	SubmitRequest(ctx context.Context, sessionID string) (string, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// DefaultBookingSessionService implements BookingSessionService.
type DefaultBookingSessionService struct {
	Store      SessionStore
	Fetcher    *availability.Fetcher
	Now        func() time.Time
	TargetPath string
	Logger     *zap.Logger
	Metrics    *metrics.FlowMetrics
}
