package tutorial

import (
	"sync"

	"servineo/models"
	"servineo/services/events"
)

const (
	cardGap        = 10.0
	viewportMargin = 20.0
)

// DefaultCardSize approximates the rendered step card.
var DefaultCardSize = models.Size{Width: 384, Height: 220}

// Registry maps tour target keys to their boxes in page coordinates.
type Registry struct {
	mu      sync.RWMutex
	targets map[string]models.Rect
}

func NewRegistry() *Registry {
	return &Registry{targets: make(map[string]models.Rect)}
}

func (r *Registry) Set(key string, rect models.Rect) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.targets[key] = rect
}

func (r *Registry) Remove(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.targets, key)
}

func (r *Registry) Lookup(key string) (models.Rect, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rect, ok := r.targets[key]
	return rect, ok
}

// PlaceCard positions a card of size card next to target (viewport
// coordinates) and keeps it inside the viewport.
func PlaceCard(target models.Rect, card, viewport models.Size, pos models.CardPosition) models.Point {
	top := target.Bottom() + cardGap
	left := target.Left

	switch pos {
	case models.PositionTop:
		top = target.Top - card.Height - cardGap
	case models.PositionLeft:
		top = target.Top
		left = target.Left - card.Width - cardGap
	case models.PositionRight:
		top = target.Top
		left = target.Right() + cardGap
	}

	if top+card.Height > viewport.Height {
		top = viewport.Height - card.Height - viewportMargin
	}
	if top < viewportMargin {
		top = viewportMargin
	}
	if left+card.Width > viewport.Width {
		left = viewport.Width - card.Width - viewportMargin
	}
	if left < viewportMargin {
		left = viewportMargin
	}
	return models.Point{X: left, Y: top}
}

// ViewportNotice is the payload of events.TopicViewport.
type ViewportNotice struct {
	InstallationID string
	Event          models.ViewportEvent
}

// Spotlight keeps the highlighted box and card aligned with the active
// step's target. It listens for viewport changes only while active.
type Spotlight struct {
	installationID string
	bus            *events.Bus
	registry       *Registry
	card           models.Size

	mu          sync.Mutex
	step        *models.TutorialStep
	viewport    models.ViewportEvent
	view        models.SpotlightView
	unsubscribe func()
}

func NewSpotlight(installationID string, bus *events.Bus, registry *Registry, card models.Size) *Spotlight {
	return &Spotlight{
		installationID: installationID,
		bus:            bus,
		registry:       registry,
		card:           card,
	}
}

// Activate points the spotlight at step and measures it.
func (s *Spotlight) Activate(step models.TutorialStep) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.step = &step
	if s.unsubscribe == nil {
		s.unsubscribe = s.bus.Subscribe(events.TopicViewport, s.onViewport)
	}
	s.measureLocked()
}

// Deactivate stops listening for viewport changes.
func (s *Spotlight) Deactivate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	s.step = nil
	s.view = models.SpotlightView{}
}

// Active reports whether the spotlight is following a step.
func (s *Spotlight) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step != nil
}

// SetViewport records the viewport without an event round trip.
func (s *Spotlight) SetViewport(ev models.ViewportEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewport = ev
	s.measureLocked()
}

// Remeasure recomputes the view, e.g. after a target moved.
func (s *Spotlight) Remeasure() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.measureLocked()
}

func (s *Spotlight) View() (models.SpotlightView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view, s.step != nil
}

func (s *Spotlight) onViewport(payload any) {
	notice, ok := payload.(ViewportNotice)
	if !ok || notice.InstallationID != s.installationID {
		return
	}
	s.SetViewport(notice.Event)
}

func (s *Spotlight) measureLocked() {
	if s.step == nil {
		return
	}
	view := models.SpotlightView{TargetKey: s.step.TargetElementKey}
	rect, ok := s.registry.Lookup(s.step.TargetElementKey)
	if ok {
		hole := models.Rect{
			Left:   rect.Left - s.viewport.Scroll.X,
			Top:    rect.Top - s.viewport.Scroll.Y,
			Width:  rect.Width,
			Height: rect.Height,
		}
		view.Found = true
		view.Hole = hole
		view.Card = PlaceCard(hole, s.card, s.viewport.Viewport, s.step.PreferredPosition)
	}
	s.view = view
}
