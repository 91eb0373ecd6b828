package tutorial

import (
	"testing"

	"servineo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeMachine(t *testing.T) *Machine {
	t.Helper()
	m := NewMachine(len(DefaultSteps))
	require.True(t, m.OpenStartPanel())
	require.True(t, m.Apply(ActionStart))
	require.Equal(t, models.TutorialActive, m.Phase())
	return m
}

func TestNextStepCountTimesCompletes(t *testing.T) {
	m := activeMachine(t)
	for i := 0; i < m.StepCount()-1; i++ {
		require.True(t, m.Apply(ActionNext))
		assert.Equal(t, i+1, m.State().CurrentStepIndex)
	}
	require.True(t, m.Apply(ActionNext))
	assert.Equal(t, models.TutorialCompleted, m.Phase())
	assert.Equal(t, models.TutorialState{IsCompleted: true}, m.State())
}

func TestPrevAtFirstStepStays(t *testing.T) {
	m := activeMachine(t)
	assert.False(t, m.Apply(ActionPrev))
	assert.Equal(t, models.TutorialActive, m.Phase())
	assert.Equal(t, 0, m.State().CurrentStepIndex)

	m.Apply(ActionNext)
	m.Apply(ActionNext)
	assert.True(t, m.Apply(ActionPrev))
	assert.Equal(t, 1, m.State().CurrentStepIndex)
}

func TestSkipFromStartPanelAndActive(t *testing.T) {
	m := NewMachine(6)
	m.OpenStartPanel()
	assert.True(t, m.Apply(ActionSkip))
	assert.Equal(t, models.TutorialIdle, m.Phase())

	m = activeMachine(t)
	m.Apply(ActionNext)
	assert.True(t, m.Apply(ActionSkip))
	assert.Equal(t, models.TutorialState{}, m.State())
}

func TestCompletedRestartAndClose(t *testing.T) {
	m := activeMachine(t)
	for i := 0; i < m.StepCount(); i++ {
		m.Apply(ActionNext)
	}
	require.Equal(t, models.TutorialCompleted, m.Phase())
	assert.False(t, m.Apply(ActionSkip))
	assert.True(t, m.Apply(ActionRestart))
	assert.Equal(t, models.TutorialState{IsActive: true}, m.State())

	for i := 0; i < m.StepCount(); i++ {
		m.Apply(ActionNext)
	}
	assert.True(t, m.Apply(ActionClose))
	assert.Equal(t, models.TutorialIdle, m.Phase())
}

func TestStartOnlyFromStartPanel(t *testing.T) {
	m := NewMachine(6)
	assert.False(t, m.Apply(ActionStart))
	assert.False(t, m.Apply(ActionNext))
	assert.Equal(t, models.TutorialIdle, m.Phase())

	m = activeMachine(t)
	assert.False(t, m.OpenStartPanel())
}

func TestShowFromAnyPhase(t *testing.T) {
	m := activeMachine(t)
	m.Apply(ActionNext)
	m.Apply(ActionNext)
	assert.True(t, m.Show())
	assert.Equal(t, models.TutorialState{IsActive: true}, m.State())
}

func TestHandleKey(t *testing.T) {
	m := NewMachine(6)
	assert.False(t, m.HandleKey("Enter"))
	m.OpenStartPanel()
	assert.False(t, m.HandleKey("ArrowRight"))
	assert.True(t, m.HandleKey("Enter"))
	assert.Equal(t, models.TutorialActive, m.Phase())

	assert.True(t, m.HandleKey("ArrowRight"))
	assert.True(t, m.HandleKey("ArrowLeft"))
	assert.False(t, m.HandleKey("Enter"))
	assert.False(t, m.HandleKey("Tab"))
	assert.True(t, m.HandleKey("Escape"))
	assert.Equal(t, models.TutorialIdle, m.Phase())

	m.OpenStartPanel()
	assert.True(t, m.HandleKey("Escape"))
	assert.Equal(t, models.TutorialIdle, m.Phase())

	m.Show()
	for i := 0; i < 6; i++ {
		m.HandleKey("ArrowRight")
	}
	require.Equal(t, models.TutorialCompleted, m.Phase())
	assert.True(t, m.HandleKey("Escape"))
	assert.Equal(t, models.TutorialIdle, m.Phase())
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction("restart")
	require.NoError(t, err)
	assert.Equal(t, ActionRestart, a)

	_, err = ParseAction("jump")
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestDefaultSteps(t *testing.T) {
	require.Len(t, DefaultSteps, 6)
	keys := make([]string, 0, len(DefaultSteps))
	for _, s := range DefaultSteps {
		keys = append(keys, s.TargetElementKey)
	}
	assert.Equal(t, []string{"search-bar", "become-fixer", "recent-jobs", "quick-actions", "tutorial-video", "support-section"}, keys)
}
