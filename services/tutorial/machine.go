// Package tutorial runs the guided tour shown on the home page.
package tutorial

import (
	"errors"
	"fmt"

	"servineo/models"
)

type Action string

const (
	ActionStart   Action = "start"
	ActionNext    Action = "next"
	ActionPrev    Action = "prev"
	ActionSkip    Action = "skip"
	ActionClose   Action = "close"
	ActionRestart Action = "restart"
)

var ErrUnknownAction = errors.New("unknown tutorial action")

// ParseAction validates a client supplied action name.
func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case ActionStart, ActionNext, ActionPrev, ActionSkip, ActionClose, ActionRestart:
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// Machine is the tour state machine. At most one of the start panel, an
// active step or the completion panel is showing at a time.
type Machine struct {
	state     models.TutorialState
	stepCount int
}

func NewMachine(stepCount int) *Machine {
	return &Machine{stepCount: stepCount}
}

func (m *Machine) State() models.TutorialState { return m.state }
func (m *Machine) Phase() models.TutorialPhase { return m.state.Phase() }
func (m *Machine) StepCount() int              { return m.stepCount }

// OpenStartPanel offers the tour. Only an idle tour can be offered.
func (m *Machine) OpenStartPanel() bool {
	if m.Phase() != models.TutorialIdle {
		return false
	}
	m.state = models.TutorialState{ShowStartPanel: true}
	return true
}

// Show jumps straight to the first step from any phase.
func (m *Machine) Show() bool {
	if m.stepCount == 0 {
		return false
	}
	m.state = models.TutorialState{IsActive: true}
	return true
}

// Apply performs action and reports whether the state changed.
func (m *Machine) Apply(action Action) bool {
	phase := m.Phase()
	switch action {
	case ActionStart:
		if phase == models.TutorialStartPanel {
			return m.Show()
		}
	case ActionRestart:
		if phase == models.TutorialCompleted {
			return m.Show()
		}
	case ActionNext:
		if phase != models.TutorialActive {
			return false
		}
		if m.state.CurrentStepIndex+1 < m.stepCount {
			m.state.CurrentStepIndex++
		} else {
			m.state = models.TutorialState{IsCompleted: true}
		}
		return true
	case ActionPrev:
		if phase != models.TutorialActive || m.state.CurrentStepIndex == 0 {
			return false
		}
		m.state.CurrentStepIndex--
		return true
	case ActionSkip:
		if phase == models.TutorialActive || phase == models.TutorialStartPanel {
			m.state = models.TutorialState{}
			return true
		}
	case ActionClose:
		if phase == models.TutorialCompleted {
			m.state = models.TutorialState{}
			return true
		}
	}
	return false
}

// HandleKey maps keyboard keys to actions for the current phase.
func (m *Machine) HandleKey(key string) bool {
	phase := m.Phase()
	switch key {
	case "ArrowRight":
		return m.Apply(ActionNext)
	case "ArrowLeft":
		return m.Apply(ActionPrev)
	case "Escape":
		if phase == models.TutorialCompleted {
			return m.Apply(ActionClose)
		}
		return m.Apply(ActionSkip)
	case "Enter":
		return m.Apply(ActionStart)
	}
	return false
}
