package booking

import (
	"strings"
	"testing"

	"servineo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRequestTargetRoundTrip(t *testing.T) {
	slots := []models.TimeSlot{
		{StartTime: "08:00", EndTime: "09:00"},
		{StartTime: "14:30", EndTime: "15:30"},
	}
	target, err := BuildRequestTarget("", "2024-03-15", slots)
	require.NoError(t, err)
	assert.Contains(t, target, DefaultRequestPath+"?")

	_, query, _ := strings.Cut(target, "?")
	date, ranges, err := ParseRequestTarget(query)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", date)
	assert.Equal(t, []string{"08:00-09:00", "14:30-15:30"}, ranges)
}

func TestBuildRequestTargetNeedsSlots(t *testing.T) {
	_, err := BuildRequestTarget("/x", "2024-03-15", nil)
	assert.ErrorIs(t, err, ErrNoSlotsSelected)
}

func TestBuildRequestTargetCustomPath(t *testing.T) {
	target, err := BuildRequestTarget("/reservar", "2024-03-15", []models.TimeSlot{{StartTime: "08:00", EndTime: "09:00"}})
	require.NoError(t, err)
	path, _, _ := strings.Cut(target, "?")
	assert.Equal(t, "/reservar", path)
}
