package booking

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"servineo/models"
	"servineo/services/availability"
	"servineo/services/calendar"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultBookingSessionService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *DefaultBookingSessionService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.L()
	}
	return s.Logger
}

func (s *DefaultBookingSessionService) InitiateSession(ctx context.Context, providerID string) (*models.BookingSessionView, error) {
	providerID = strings.TrimSpace(providerID)
	if providerID == "" {
		return nil, NewSessionError("missingProvider", "providerId is required")
	}

	sel := calendar.New(s.now)
	session := &models.BookingSession{
		SessionID:  uuid.New().String(),
		ProviderID: providerID,
		Step:       models.StepCalendar,
		Calendar:   sel.State(),
		CreatedAt:  s.now(),
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to cache booking session: %w", err)
	}
	s.logger().Debug("Booking session started",
		zap.String("sessionID", session.SessionID),
		zap.String("providerID", providerID),
	)
	return s.view(session), nil
}

func (s *DefaultBookingSessionService) GetSession(ctx context.Context, sessionID string) (*models.BookingSessionView, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.view(session), nil
}

// ChangeMonth pages the calendar; the selection and any slot result are dropped.
func (s *DefaultBookingSessionService) ChangeMonth(ctx context.Context, sessionID string, dir Direction) (*models.BookingSessionView, error) {
	return s.mutate(ctx, sessionID, func(session *models.BookingSession, sel *calendar.Selector) error {
		switch dir {
		case DirectionPrev:
			sel.PrevMonth()
		case DirectionNext:
			sel.NextMonth()
		default:
			return NewSessionError("invalidDirection", fmt.Sprintf("direction must be %q or %q", DirectionPrev, DirectionNext))
		}
		resetToCalendar(session)
		return nil
	})
}

// SelectDate picks a day; past days leave the session untouched.
func (s *DefaultBookingSessionService) SelectDate(ctx context.Context, sessionID string, day int) (*models.BookingSessionView, error) {
	return s.mutate(ctx, sessionID, func(session *models.BookingSession, sel *calendar.Selector) error {
		prev, hadPrev := sel.Selected()
		if !sel.SelectDate(day) {
			return nil
		}
		if cur, _ := sel.Selected(); !hadPrev || cur != prev {
			resetToCalendar(session)
		}
		return nil
	})
}

// Proceed moves to the slot step and fetches slots for the selected date,
// unless that date already has a result.
func (s *DefaultBookingSessionService) Proceed(ctx context.Context, sessionID string) (*models.BookingSessionView, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	sel := calendar.FromState(session.Calendar, s.now)
	date, err := sel.Proceed()
	if err != nil {
		return nil, NewSessionError("noDateSelected", "select a date before continuing")
	}
	dateKey := date.Key()

	view := availability.ViewFrom(session.Availability)
	session.Step = models.StepSlots
	if !view.Begin(dateKey, s.now()) {
		if err := s.Store.Save(ctx, session); err != nil {
			return nil, err
		}
		return s.view(session), nil
	}
	session.Availability = view.Current()
	session.SelectedSlots = nil
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}

	res := s.Fetcher.Fetch(ctx, session.ProviderID, dateKey)

	// The session may have moved on while the backend answered.
	latest, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	latestView := availability.ViewFrom(latest.Availability)
	if !latestView.Apply(res) {
		s.logger().Debug("Discarding stale slot result",
			zap.String("sessionID", sessionID),
			zap.String("date", dateKey),
			zap.String("current", latest.Availability.DateKey),
		)
		return s.view(latest), nil
	}
	latest.Availability = latestView.Current()
	if err := s.Store.Save(ctx, latest); err != nil {
		return nil, err
	}
	return s.view(latest), nil
}

// Back returns to the calendar with no date selected.
func (s *DefaultBookingSessionService) Back(ctx context.Context, sessionID string) (*models.BookingSessionView, error) {
	return s.mutate(ctx, sessionID, func(session *models.BookingSession, sel *calendar.Selector) error {
		sel.ClearSelection()
		resetToCalendar(session)
		return nil
	})
}

// SelectSlots replaces the slot selection with indices into the current slot list.
func (s *DefaultBookingSessionService) SelectSlots(ctx context.Context, sessionID string, indices []int) (*models.BookingSessionView, error) {
	return s.mutate(ctx, sessionID, func(session *models.BookingSession, _ *calendar.Selector) error {
		slots, err := selectableSlots(session)
		if err != nil {
			return err
		}
		seen := make(map[int]bool, len(indices))
		picked := make([]int, 0, len(indices))
		for _, i := range indices {
			if i < 0 || i >= len(slots) {
				return NewSessionError("invalidSlot", fmt.Sprintf("slot %d does not exist", i))
			}
			if !seen[i] {
				seen[i] = true
				picked = append(picked, i)
			}
		}
		sort.Ints(picked)
		session.SelectedSlots = picked
		return nil
	})
}

// ToggleSlot adds index to the selection, or removes it when already chosen.
func (s *DefaultBookingSessionService) ToggleSlot(ctx context.Context, sessionID string, index int) (*models.BookingSessionView, error) {
	return s.mutate(ctx, sessionID, func(session *models.BookingSession, _ *calendar.Selector) error {
		slots, err := selectableSlots(session)
		if err != nil {
			return err
		}
		if index < 0 || index >= len(slots) {
			return NewSessionError("invalidSlot", fmt.Sprintf("slot %d does not exist", index))
		}
		picked := make([]int, 0, len(session.SelectedSlots)+1)
		found := false
		for _, i := range session.SelectedSlots {
			if i == index {
				found = true
				continue
			}
			picked = append(picked, i)
		}
		if !found {
			picked = append(picked, index)
			sort.Ints(picked)
		}
		session.SelectedSlots = picked
		return nil
	})
}

func selectableSlots(session *models.BookingSession) ([]models.TimeSlot, error) {
	slots := availability.ViewFrom(session.Availability).Slots()
	if session.Step != models.StepSlots || slots == nil {
		return nil, NewSessionError("noSlots", "there are no slots to choose from")
	}
	return slots, nil
}

// SubmitRequest composes the navigation target for the job request page.
func (s *DefaultBookingSessionService) SubmitRequest(ctx context.Context, sessionID string) (string, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}
	slots := availability.ViewFrom(session.Availability).Slots()
	chosen := make([]models.TimeSlot, 0, len(session.SelectedSlots))
	for _, i := range session.SelectedSlots {
		if i >= 0 && i < len(slots) {
			chosen = append(chosen, slots[i])
		}
	}
	target, err := BuildRequestTarget(s.TargetPath, session.Availability.DateKey, chosen)
	if err != nil {
		return "", err
	}
	s.Metrics.ObserveJobRequest(len(chosen))
	s.logger().Info("Job request composed",
		zap.String("sessionID", sessionID),
		zap.String("providerID", session.ProviderID),
		zap.Int("slots", len(chosen)),
	)
	return target, nil
}

func (s *DefaultBookingSessionService) CancelSession(ctx context.Context, sessionID string) error {
	return s.Store.Delete(ctx, sessionID)
}

func (s *DefaultBookingSessionService) mutate(ctx context.Context, sessionID string, fn func(*models.BookingSession, *calendar.Selector) error) (*models.BookingSessionView, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	sel := calendar.FromState(session.Calendar, s.now)
	if err := fn(session, sel); err != nil {
		return nil, err
	}
	session.Calendar = sel.State()
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update booking session: %w", err)
	}
	return s.view(session), nil
}

func resetToCalendar(session *models.BookingSession) {
	session.Step = models.StepCalendar
	session.Availability = models.AvailabilityResult{}
	session.SelectedSlots = nil
}

func (s *DefaultBookingSessionService) view(session *models.BookingSession) *models.BookingSessionView {
	sel := calendar.FromState(session.Calendar, s.now)
	v := &models.BookingSessionView{
		SessionID:     session.SessionID,
		ProviderID:    session.ProviderID,
		Step:          session.Step,
		Grid:          sel.Grid(),
		CanProceed:    sel.CanProceed(),
		SelectedSlots: session.SelectedSlots,
		CanSubmit:     len(session.SelectedSlots) > 0,
	}
	if d, ok := sel.Selected(); ok {
		v.Selected = &d
	}
	if session.Availability.DateKey != "" {
		res := session.Availability
		v.Availability = &res
	}
	return v
}
