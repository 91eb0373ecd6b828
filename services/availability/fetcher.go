// Package availability turns backend slot lookups into displayable outcomes.
package availability

import (
	"context"
	"errors"

	"servineo/metrics"
	"servineo/models"

	"go.uber.org/zap"
)

const (
	// MsgNoSlots is shown when the backend returns an empty list without explanation.
	MsgNoSlots = "No hay horarios disponibles para esta fecha"
	// MsgFetchFailed is the only text users see for transport or parse failures.
	MsgFetchFailed = "No se pudieron cargar los horarios. Intenta más tarde."
)

// SlotSource is the backend call behind a fetch.
type SlotSource interface {
	GetDaySlots(ctx context.Context, providerID, dateKey string) (*models.DayAvailability, error)
}

// Fetcher classifies slot lookups.
type Fetcher struct {
	source  SlotSource
	logger  *zap.Logger
	metrics *metrics.FlowMetrics
}

func NewFetcher(source SlotSource, logger *zap.Logger, m *metrics.FlowMetrics) *Fetcher {
	if logger == nil {
		logger = zap.L()
	}
	return &Fetcher{source: source, logger: logger, metrics: m}
}

// Fetch asks the backend for providerID's slots on dateKey. It never returns
// an error: failures become an AvailabilityError result.
func (f *Fetcher) Fetch(ctx context.Context, providerID, dateKey string) models.AvailabilityResult {
	res := f.fetch(ctx, providerID, dateKey)
	f.metrics.ObserveAvailability(string(res.Status))
	return res
}

func (f *Fetcher) fetch(ctx context.Context, providerID, dateKey string) models.AvailabilityResult {
	day, err := f.source.GetDaySlots(ctx, providerID, dateKey)
	if err == nil && day == nil {
		err = errors.New("empty availability response")
	}
	if err != nil {
		f.logger.Error("Failed to load slots",
			zap.String("providerID", providerID),
			zap.String("date", dateKey),
			zap.Error(err),
		)
		return models.AvailabilityResult{DateKey: dateKey, Status: models.AvailabilityError, Message: MsgFetchFailed}
	}

	switch {
	case day.Message != "":
		return models.AvailabilityResult{DateKey: dateKey, Status: models.AvailabilityEmpty, Message: day.Message}
	case len(day.Slots) == 0:
		return models.AvailabilityResult{DateKey: dateKey, Status: models.AvailabilityEmpty, Message: MsgNoSlots}
	}
	return models.AvailabilityResult{DateKey: dateKey, Status: models.AvailabilitySuccess, Slots: day.Slots}
}
