package tutorial

import (
	"context"
	"errors"
	"sync"
	"time"

	"servineo/metrics"
	"servineo/models"
	"servineo/services/events"

	"go.uber.org/zap"
)

var ErrNoVisit = errors.New("no tutorial visit for installation")

const DefaultStartDelay = time.Second

// Manager tracks one tour per installation currently on the home page.
type Manager struct {
	Bus        *events.Bus
	Seen       SeenStore
	Steps      []models.TutorialStep
	StartDelay time.Duration
	CardSize   models.Size
	Logger     *zap.Logger
	Metrics    *metrics.FlowMetrics
	Now        func() time.Time

	mu     sync.Mutex
	visits map[string]*visit
}

type visit struct {
	id        string
	mu        sync.Mutex
	machine   *Machine
	registry  *Registry
	spotlight *Spotlight
	timer     *time.Timer
	unsubShow func()
	closed    bool
	lastSeen  time.Time // guarded by Manager.mu
}

func NewManager(bus *events.Bus, seen SeenStore, logger *zap.Logger, m *metrics.FlowMetrics) *Manager {
	if logger == nil {
		logger = zap.L()
	}
	return &Manager{
		Bus:        bus,
		Seen:       seen,
		Steps:      DefaultSteps,
		StartDelay: DefaultStartDelay,
		CardSize:   DefaultCardSize,
		Logger:     logger,
		Metrics:    m,
		Now:        time.Now,
		visits:     make(map[string]*visit),
	}
}

// Visit opens the tour for installationID. On a first ever visit the start
// panel is offered once after StartDelay and the installation is marked seen.
func (mgr *Manager) Visit(ctx context.Context, installationID string) (models.TutorialView, error) {
	mgr.mu.Lock()
	v, ok := mgr.visits[installationID]
	if !ok {
		registry := NewRegistry()
		v = &visit{
			id:        installationID,
			machine:   NewMachine(len(mgr.Steps)),
			registry:  registry,
			spotlight: NewSpotlight(installationID, mgr.Bus, registry, mgr.CardSize),
		}
		mgr.visits[installationID] = v
		v.unsubShow = mgr.Bus.Subscribe(events.TopicShowTutorial, func(payload any) {
			if target, _ := payload.(string); target != "" && target != installationID {
				return
			}
			mgr.transition(v, func(m *Machine) bool { return m.Show() })
		})
	}
	v.lastSeen = mgr.Now()
	mgr.mu.Unlock()

	if ok {
		return mgr.view(v), nil
	}

	seen, err := mgr.Seen.HasSeen(ctx, installationID)
	if err != nil {
		mgr.Logger.Error("Failed to read tutorial flag",
			zap.String("installationID", installationID),
			zap.Error(err),
		)
		view := mgr.view(v)
		mgr.mu.Lock()
		if mgr.visits[installationID] == v {
			delete(mgr.visits, installationID)
		}
		mgr.mu.Unlock()
		mgr.close(v)
		return view, err
	}
	if !seen {
		v.mu.Lock()
		v.timer = time.AfterFunc(mgr.StartDelay, func() { mgr.offer(v) })
		v.mu.Unlock()
	}
	return mgr.view(v), nil
}

func (mgr *Manager) offer(v *visit) {
	v.mu.Lock()
	closed := v.closed
	v.mu.Unlock()
	if closed {
		return
	}
	mgr.transition(v, func(m *Machine) bool { return m.OpenStartPanel() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := mgr.Seen.MarkSeen(ctx, v.id); err != nil {
		mgr.Logger.Error("Failed to persist tutorial flag",
			zap.String("installationID", v.id),
			zap.Error(err),
		)
	}
}

// Leave ends the visit and releases its listeners and timer.
func (mgr *Manager) Leave(installationID string) error {
	mgr.mu.Lock()
	v, ok := mgr.visits[installationID]
	delete(mgr.visits, installationID)
	mgr.mu.Unlock()
	if !ok {
		return ErrNoVisit
	}

	mgr.close(v)
	return nil
}

func (mgr *Manager) close(v *visit) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
	if v.timer != nil {
		v.timer.Stop()
	}
	v.unsubShow()
	v.spotlight.Deactivate()
}

func (mgr *Manager) lookup(installationID string) (*visit, error) {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	v, ok := mgr.visits[installationID]
	if !ok {
		return nil, ErrNoVisit
	}
	v.lastSeen = mgr.Now()
	return v, nil
}

// ReapIdle ends visits nobody has touched for longer than maxIdle and returns
// their installation ids.
func (mgr *Manager) ReapIdle(maxIdle time.Duration) []string {
	cutoff := mgr.Now().Add(-maxIdle)
	mgr.mu.Lock()
	var idle []string
	for id, v := range mgr.visits {
		if v.lastSeen.Before(cutoff) {
			idle = append(idle, id)
		}
	}
	mgr.mu.Unlock()

	reaped := idle[:0]
	for _, id := range idle {
		if err := mgr.Leave(id); err == nil {
			reaped = append(reaped, id)
		}
	}
	return reaped
}

func (mgr *Manager) View(installationID string) (models.TutorialView, error) {
	v, err := mgr.lookup(installationID)
	if err != nil {
		return models.TutorialView{}, err
	}
	return mgr.view(v), nil
}

// Act applies a button action such as next or skip.
func (mgr *Manager) Act(installationID string, action Action) (models.TutorialView, error) {
	v, err := mgr.lookup(installationID)
	if err != nil {
		return models.TutorialView{}, err
	}
	mgr.transition(v, func(m *Machine) bool { return m.Apply(action) })
	return mgr.view(v), nil
}

// Key applies a keyboard key.
func (mgr *Manager) Key(installationID, key string) (models.TutorialView, error) {
	v, err := mgr.lookup(installationID)
	if err != nil {
		return models.TutorialView{}, err
	}
	mgr.transition(v, func(m *Machine) bool { return m.HandleKey(key) })
	return mgr.view(v), nil
}

// Show asks the installation's tour to start at the first step. An empty id
// reaches every open visit.
func (mgr *Manager) Show(installationID string) {
	mgr.Bus.Publish(events.TopicShowTutorial, installationID)
}

// SetTarget records where a tour target sits on the page.
func (mgr *Manager) SetTarget(installationID, key string, rect models.Rect) (models.TutorialView, error) {
	v, err := mgr.lookup(installationID)
	if err != nil {
		return models.TutorialView{}, err
	}
	v.registry.Set(key, rect)
	v.spotlight.Remeasure()
	return mgr.view(v), nil
}

// Viewport reports a resize or scroll. Active spotlights receive it through
// the bus; idle ones just remember it.
func (mgr *Manager) Viewport(installationID string, ev models.ViewportEvent) (models.TutorialView, error) {
	v, err := mgr.lookup(installationID)
	if err != nil {
		return models.TutorialView{}, err
	}
	if v.spotlight.Active() {
		mgr.Bus.Publish(events.TopicViewport, ViewportNotice{InstallationID: installationID, Event: ev})
	} else {
		v.spotlight.SetViewport(ev)
	}
	return mgr.view(v), nil
}

func (mgr *Manager) transition(v *visit, fn func(*Machine) bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}

	before := v.machine.Phase()
	if !fn(v.machine) {
		return
	}
	state := v.machine.State()
	if state.IsActive {
		v.spotlight.Activate(mgr.Steps[state.CurrentStepIndex])
	} else {
		v.spotlight.Deactivate()
	}
	if after := v.machine.Phase(); after != before {
		mgr.Metrics.ObserveTutorialPhase(string(after))
		mgr.Logger.Debug("Tutorial phase changed",
			zap.String("installationID", v.id),
			zap.String("from", string(before)),
			zap.String("to", string(after)),
		)
	}
}

func (mgr *Manager) view(v *visit) models.TutorialView {
	v.mu.Lock()
	state := v.machine.State()
	v.mu.Unlock()

	out := models.TutorialView{
		InstallationID: v.id,
		Phase:          state.Phase(),
		State:          state,
		StepCount:      len(mgr.Steps),
	}
	if state.IsActive {
		step := mgr.Steps[state.CurrentStepIndex]
		out.Step = &step
		if sv, ok := v.spotlight.View(); ok {
			out.Spotlight = &sv
		}
	}
	return out
}
