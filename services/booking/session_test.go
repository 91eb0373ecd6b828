package booking

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"servineo/models"
	"servineo/services/availability"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSlots struct {
	calls  int
	result *models.DayAvailability
	err    error
}

func (f *fakeSlots) GetDaySlots(_ context.Context, _, _ string) (*models.DayAvailability, error) {
	f.calls++
	return f.result, f.err
}

func fixedNow() time.Time {
	return time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
}

func newTestService(t *testing.T, src *fakeSlots) (*DefaultBookingSessionService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return &DefaultBookingSessionService{
		Store:   NewRedisSessionStore(client, 30*time.Minute),
		Fetcher: availability.NewFetcher(src, zap.NewNop(), nil),
		Now:     fixedNow,
		Logger:  zap.NewNop(),
	}, mr
}

func twoSlots() *models.DayAvailability {
	return &models.DayAvailability{Slots: []models.TimeSlot{
		{StartTime: "08:00", EndTime: "09:00", HourlyRate: 50, Currency: "Bs/Hr."},
		{StartTime: "10:00", EndTime: "11:00", HourlyRate: 50, Currency: "Bs/Hr."},
	}}
}

func TestInitiateSessionOpensCurrentMonth(t *testing.T) {
	svc, mr := newTestService(t, &fakeSlots{})
	ctx := context.Background()

	view, err := svc.InitiateSession(ctx, "fixer-1")
	require.NoError(t, err)
	assert.Equal(t, models.StepCalendar, view.Step)
	assert.Equal(t, 2024, view.Grid.Year)
	assert.Equal(t, time.March, view.Grid.Month)
	assert.False(t, view.CanProceed)
	assert.Nil(t, view.Selected)
	assert.True(t, mr.Exists(sessionKeyPrefix+view.SessionID))
	assert.Greater(t, mr.TTL(sessionKeyPrefix+view.SessionID), time.Duration(0))
}

func TestInitiateSessionRequiresProvider(t *testing.T) {
	svc, _ := newTestService(t, &fakeSlots{})
	_, err := svc.InitiateSession(context.Background(), "  ")
	var se *SessionError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "missingProvider", se.Code)
}

func TestGetUnknownSession(t *testing.T) {
	svc, _ := newTestService(t, &fakeSlots{})
	_, err := svc.GetSession(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSelectPastDateIsIgnored(t *testing.T) {
	svc, _ := newTestService(t, &fakeSlots{})
	ctx := context.Background()
	view, err := svc.InitiateSession(ctx, "fixer-1")
	require.NoError(t, err)

	view, err = svc.SelectDate(ctx, view.SessionID, 5)
	require.NoError(t, err)
	assert.Nil(t, view.Selected)
	assert.False(t, view.CanProceed)

	view, err = svc.SelectDate(ctx, view.SessionID, 10)
	require.NoError(t, err)
	require.NotNil(t, view.Selected)
	assert.Equal(t, "2024-03-10", view.Selected.Key())
	assert.True(t, view.CanProceed)
}

func TestChangeMonthClearsSelection(t *testing.T) {
	svc, _ := newTestService(t, &fakeSlots{})
	ctx := context.Background()
	view, _ := svc.InitiateSession(ctx, "fixer-1")
	view, _ = svc.SelectDate(ctx, view.SessionID, 20)
	require.NotNil(t, view.Selected)

	view, err := svc.ChangeMonth(ctx, view.SessionID, DirectionNext)
	require.NoError(t, err)
	assert.Equal(t, time.April, view.Grid.Month)
	assert.Nil(t, view.Selected)

	_, err = svc.ChangeMonth(ctx, view.SessionID, Direction("sideways"))
	var se *SessionError
	assert.ErrorAs(t, err, &se)
}

func TestProceedWithoutDate(t *testing.T) {
	svc, _ := newTestService(t, &fakeSlots{})
	ctx := context.Background()
	view, _ := svc.InitiateSession(ctx, "fixer-1")

	_, err := svc.Proceed(ctx, view.SessionID)
	var se *SessionError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "noDateSelected", se.Code)
}

func TestProceedLoadsSlotsOnce(t *testing.T) {
	src := &fakeSlots{result: twoSlots()}
	svc, _ := newTestService(t, src)
	ctx := context.Background()
	view, _ := svc.InitiateSession(ctx, "fixer-1")
	view, _ = svc.SelectDate(ctx, view.SessionID, 15)

	view, err := svc.Proceed(ctx, view.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepSlots, view.Step)
	require.NotNil(t, view.Availability)
	assert.Equal(t, models.AvailabilitySuccess, view.Availability.Status)
	assert.Equal(t, "2024-03-15", view.Availability.DateKey)
	assert.Len(t, view.Availability.Slots, 2)

	_, err = svc.Proceed(ctx, view.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 1, src.calls)
}

// reentrantSlots proceeds the same session again while its own fetch is in
// flight, as a double click on "continue" does.
type reentrantSlots struct {
	svc       *DefaultBookingSessionService
	sessionID string
	calls     int
	inner     *models.BookingSessionView
	innerErr  error
}

func (r *reentrantSlots) GetDaySlots(ctx context.Context, _, _ string) (*models.DayAvailability, error) {
	r.calls++
	if r.calls == 1 {
		r.inner, r.innerErr = r.svc.Proceed(ctx, r.sessionID)
	}
	return twoSlots(), nil
}

func TestProceedWhileFetchInFlightDoesNotRefetch(t *testing.T) {
	src := &reentrantSlots{}
	svc, _ := newTestService(t, &fakeSlots{})
	svc.Fetcher = availability.NewFetcher(src, zap.NewNop(), nil)
	src.svc = svc
	ctx := context.Background()

	view, _ := svc.InitiateSession(ctx, "fixer-1")
	view, _ = svc.SelectDate(ctx, view.SessionID, 15)
	src.sessionID = view.SessionID

	view, err := svc.Proceed(ctx, view.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 1, src.calls)

	require.NoError(t, src.innerErr)
	require.NotNil(t, src.inner.Availability)
	assert.Equal(t, models.AvailabilityLoading, src.inner.Availability.Status)

	require.NotNil(t, view.Availability)
	assert.Equal(t, models.AvailabilitySuccess, view.Availability.Status)
}

func TestProceedFailureIsTerminalForDate(t *testing.T) {
	src := &fakeSlots{err: errors.New("connection refused")}
	svc, _ := newTestService(t, src)
	ctx := context.Background()
	view, _ := svc.InitiateSession(ctx, "fixer-1")
	view, _ = svc.SelectDate(ctx, view.SessionID, 15)

	view, err := svc.Proceed(ctx, view.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.AvailabilityError, view.Availability.Status)
	assert.Equal(t, availability.MsgFetchFailed, view.Availability.Message)

	_, _ = svc.Proceed(ctx, view.SessionID)
	assert.Equal(t, 1, src.calls)

	view, _ = svc.SelectDate(ctx, view.SessionID, 16)
	assert.Equal(t, models.StepCalendar, view.Step)
	assert.Nil(t, view.Availability)
	_, _ = svc.Proceed(ctx, view.SessionID)
	assert.Equal(t, 2, src.calls)
}

func TestSelectSlotsValidatesAndSorts(t *testing.T) {
	svc, _ := newTestService(t, &fakeSlots{result: twoSlots()})
	ctx := context.Background()
	view, _ := svc.InitiateSession(ctx, "fixer-1")

	_, err := svc.SelectSlots(ctx, view.SessionID, []int{0})
	var se *SessionError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "noSlots", se.Code)

	view, _ = svc.SelectDate(ctx, view.SessionID, 15)
	view, _ = svc.Proceed(ctx, view.SessionID)

	_, err = svc.SelectSlots(ctx, view.SessionID, []int{2})
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "invalidSlot", se.Code)

	view, err = svc.SelectSlots(ctx, view.SessionID, []int{1, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, view.SelectedSlots)
	assert.True(t, view.CanSubmit)
}

func TestToggleSlot(t *testing.T) {
	svc, _ := newTestService(t, &fakeSlots{result: twoSlots()})
	ctx := context.Background()
	view, _ := svc.InitiateSession(ctx, "fixer-1")
	view, _ = svc.SelectDate(ctx, view.SessionID, 15)
	view, _ = svc.Proceed(ctx, view.SessionID)

	view, err := svc.ToggleSlot(ctx, view.SessionID, 1)
	require.NoError(t, err)
	view, err = svc.ToggleSlot(ctx, view.SessionID, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, view.SelectedSlots)

	view, err = svc.ToggleSlot(ctx, view.SessionID, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, view.SelectedSlots)
	view, err = svc.ToggleSlot(ctx, view.SessionID, 0)
	require.NoError(t, err)
	assert.Empty(t, view.SelectedSlots)
	assert.False(t, view.CanSubmit)

	_, err = svc.ToggleSlot(ctx, view.SessionID, -1)
	var se *SessionError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "invalidSlot", se.Code)
}

func TestSubmitRequestComposesTarget(t *testing.T) {
	svc, _ := newTestService(t, &fakeSlots{result: twoSlots()})
	ctx := context.Background()
	view, _ := svc.InitiateSession(ctx, "fixer-1")
	view, _ = svc.SelectDate(ctx, view.SessionID, 15)
	view, _ = svc.Proceed(ctx, view.SessionID)

	_, err := svc.SubmitRequest(ctx, view.SessionID)
	assert.ErrorIs(t, err, ErrNoSlotsSelected)

	_, _ = svc.SelectSlots(ctx, view.SessionID, []int{0, 1})
	target, err := svc.SubmitRequest(ctx, view.SessionID)
	require.NoError(t, err)

	path, query, ok := strings.Cut(target, "?")
	require.True(t, ok)
	assert.Equal(t, DefaultRequestPath, path)
	params, err := url.ParseQuery(query)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", params.Get("date"))
	assert.Equal(t, []string{"08:00-09:00", "10:00-11:00"}, params["s"])
}

func TestBackReturnsToCalendar(t *testing.T) {
	svc, _ := newTestService(t, &fakeSlots{result: twoSlots()})
	ctx := context.Background()
	view, _ := svc.InitiateSession(ctx, "fixer-1")
	view, _ = svc.SelectDate(ctx, view.SessionID, 15)
	view, _ = svc.Proceed(ctx, view.SessionID)
	_, _ = svc.SelectSlots(ctx, view.SessionID, []int{0})

	view, err := svc.Back(ctx, view.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepCalendar, view.Step)
	assert.Nil(t, view.Selected)
	assert.Nil(t, view.Availability)
	assert.Empty(t, view.SelectedSlots)
}

func TestCancelSession(t *testing.T) {
	svc, mr := newTestService(t, &fakeSlots{})
	ctx := context.Background()
	view, _ := svc.InitiateSession(ctx, "fixer-1")

	require.NoError(t, svc.CancelSession(ctx, view.SessionID))
	assert.False(t, mr.Exists(sessionKeyPrefix+view.SessionID))
	assert.ErrorIs(t, svc.CancelSession(ctx, view.SessionID), ErrSessionNotFound)
}
