package models

type CardPosition string

const (
	PositionTop    CardPosition = "top"
	PositionBottom CardPosition = "bottom"
	PositionLeft   CardPosition = "left"
	PositionRight  CardPosition = "right"
)

// TutorialStep is one stop of the guided tour.
type TutorialStep struct {
	ID                int          `json:"id" yaml:"id"`
	Title             string       `json:"title" yaml:"title"`
	Description       string       `json:"description" yaml:"description"`
	TargetElementKey  string       `json:"targetElementKey" yaml:"target"`
	PreferredPosition CardPosition `json:"preferredPosition" yaml:"position"`
	Icon              string       `json:"icon,omitempty" yaml:"icon,omitempty"`
}

type TutorialPhase string

const (
	TutorialIdle       TutorialPhase = "idle"
	TutorialStartPanel TutorialPhase = "startPanel"
	TutorialActive     TutorialPhase = "active"
	TutorialCompleted  TutorialPhase = "completed"
)

// TutorialState mirrors the flags the front end renders from.
type TutorialState struct {
	IsActive         bool `json:"isActive"`
	CurrentStepIndex int  `json:"currentStep"`
	IsCompleted      bool `json:"isCompleted"`
	ShowStartPanel   bool `json:"showStartPanel"`
}

// Phase derives the state machine phase from the flags.
func (s TutorialState) Phase() TutorialPhase {
	switch {
	case s.IsActive:
		return TutorialActive
	case s.ShowStartPanel:
		return TutorialStartPanel
	case s.IsCompleted:
		return TutorialCompleted
	}
	return TutorialIdle
}

// Rect is an on-screen box in CSS pixels.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r Rect) Right() float64  { return r.Left + r.Width }
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Size is a width/height pair.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Point is an x/y offset.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type ViewportEventKind string

const (
	ViewportResize ViewportEventKind = "resize"
	ViewportScroll ViewportEventKind = "scroll"
)

// ViewportEvent describes the viewport after a resize or scroll.
type ViewportEvent struct {
	Kind     ViewportEventKind `json:"event"`
	Viewport Size              `json:"viewport"`
	Scroll   Point             `json:"scroll"`
}

// SpotlightView is what the overlay draws for the active step.
type SpotlightView struct {
	TargetKey string `json:"targetKey"`
	Found     bool   `json:"found"`
	Hole      Rect   `json:"hole"`
	Card      Point  `json:"card"`
}

// TutorialView bundles state, the current step and spotlight for clients.
type TutorialView struct {
	InstallationID string         `json:"installationId"`
	Phase          TutorialPhase  `json:"phase"`
	State          TutorialState  `json:"state"`
	StepCount      int            `json:"stepCount"`
	Step           *TutorialStep  `json:"step,omitempty"`
	Spotlight      *SpotlightView `json:"spotlight,omitempty"`
}
