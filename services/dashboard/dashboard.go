// Package dashboard classifies and paginates a provider's scheduled jobs.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"servineo/metrics"
	"servineo/models"

	"go.uber.org/zap"
)

const PageSize = 5

const (
	MsgNoJobs      = "No tienes trabajos agendados."
	MsgLoadFailed  = "No se pudieron cargar los trabajos. Intenta más tarde."
	detailsPath    = "/epic_VerDetallesAmbos"
	emptyTabFormat = "No hay trabajos en estado %q actualmente."
)

var ErrUnknownTab = errors.New("unknown status tab")

type Tab string

const TabAll Tab = "all"

// ParseTab accepts "all" or a job status; an empty string means "all".
func ParseTab(s string) (Tab, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == string(TabAll) {
		return TabAll, nil
	}
	if models.JobStatus(s).Valid() {
		return Tab(s), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownTab, s)
}

type ViewState string

const (
	StateLoading  ViewState = "loading"
	StateError    ViewState = "error"
	StateEmptyAll ViewState = "emptyAll"
	StateEmptyTab ViewState = "emptyTab"
	StateReady    ViewState = "ready"
)

// JobSource is the backend call that lists a provider's jobs.
type JobSource interface {
	GetProviderJobs(ctx context.Context, providerID string) ([]models.JobRecord, error)
}

type TabBadge struct {
	Tab   Tab `json:"tab"`
	Count int `json:"count"`
}

// JobCard is one row of the job list.
type JobCard struct {
	models.JobRecord
	Label       string `json:"label"`
	Color       string `json:"color"`
	Date        string `json:"date"`
	TimeRange   string `json:"timeRange"`
	DetailsPath string `json:"detailsPath"`
}

type View struct {
	State      ViewState           `json:"state"`
	Message    string              `json:"message,omitempty"`
	Tab        Tab                 `json:"tab"`
	Tabs       []TabBadge          `json:"tabs"`
	Counts     models.StatusCounts `json:"counts"`
	Page       int                 `json:"page"`
	TotalPages int                 `json:"totalPages"`
	HasPrev    bool                `json:"hasPrev"`
	HasNext    bool                `json:"hasNext"`
	Jobs       []JobCard           `json:"jobs"`
}

// Dashboard holds one provider's job list and the tab/page being viewed.
type Dashboard struct {
	source  JobSource
	logger  *zap.Logger
	metrics *metrics.FlowMetrics
	loc     *time.Location

	jobs   []models.JobRecord
	counts models.StatusCounts
	failed bool
	tab    Tab
	page   int
}

func New(source JobSource, logger *zap.Logger, m *metrics.FlowMetrics, loc *time.Location) *Dashboard {
	if logger == nil {
		logger = zap.L()
	}
	if loc == nil {
		loc = time.Local
	}
	return &Dashboard{source: source, logger: logger, metrics: m, loc: loc, tab: TabAll, page: 1}
}

// Load fetches the provider's jobs. On failure the dashboard shows the error
// state until a later Load succeeds.
func (d *Dashboard) Load(ctx context.Context, providerID string) error {
	jobs, err := d.source.GetProviderJobs(ctx, providerID)
	d.metrics.ObserveDashboardLoad(err == nil)
	if err != nil {
		d.logger.Error("Failed to load provider jobs",
			zap.String("providerID", providerID),
			zap.Error(err),
		)
		d.jobs = nil
		d.counts = models.StatusCounts{}
		d.failed = true
		return err
	}

	d.failed = false
	d.jobs = make([]models.JobRecord, 0, len(jobs))
	d.counts = models.StatusCounts{}
	for _, j := range jobs {
		switch j.Status {
		case models.JobConfirmed:
			d.counts.Confirmed++
		case models.JobPending:
			d.counts.Pending++
		case models.JobCancelled:
			d.counts.Cancelled++
		case models.JobDone:
			d.counts.Done++
		default:
			d.logger.Warn("Skipping job with unknown status",
				zap.String("jobID", j.ID),
				zap.String("status", string(j.Status)),
			)
			continue
		}
		d.jobs = append(d.jobs, j)
	}
	return nil
}

// Loaded reports whether a job list is available.
func (d *Dashboard) Loaded() bool {
	return d.jobs != nil
}

func (d *Dashboard) Counts() models.StatusCounts {
	return d.counts
}

// SelectTab switches the filter and goes back to the first page.
func (d *Dashboard) SelectTab(tab Tab) {
	d.tab = tab
	d.page = 1
}

func (d *Dashboard) SetPage(page int) {
	d.page = page
}

func (d *Dashboard) NextPage() {
	if d.page < d.totalPages(len(d.filtered())) {
		d.page++
	}
}

func (d *Dashboard) PrevPage() {
	if d.page > 1 {
		d.page--
	}
}

func (d *Dashboard) filtered() []models.JobRecord {
	if d.tab == TabAll {
		return d.jobs
	}
	out := make([]models.JobRecord, 0, d.counts.Of(models.JobStatus(d.tab)))
	for _, j := range d.jobs {
		if Tab(j.Status) == d.tab {
			out = append(out, j)
		}
	}
	return out
}

func (d *Dashboard) totalPages(n int) int {
	return (n + PageSize - 1) / PageSize
}

// View renders the current tab and page. A page past the end of the filtered
// list falls back to page 1.
func (d *Dashboard) View() View {
	v := View{Tab: d.tab, Counts: d.counts, Tabs: d.badges(), Page: 1, Jobs: []JobCard{}}

	switch {
	case d.failed:
		v.State = StateError
		v.Message = MsgLoadFailed
		return v
	case d.jobs == nil:
		v.State = StateLoading
		return v
	}

	filtered := d.filtered()
	if len(filtered) == 0 {
		if d.tab == TabAll {
			v.State = StateEmptyAll
			v.Message = MsgNoJobs
		} else {
			v.State = StateEmptyTab
			v.Message = fmt.Sprintf(emptyTabFormat, string(d.tab))
		}
		d.page = 1
		return v
	}

	total := d.totalPages(len(filtered))
	if d.page < 1 || d.page > total {
		d.page = 1
	}
	start := (d.page - 1) * PageSize
	end := start + PageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	v.State = StateReady
	v.Page = d.page
	v.TotalPages = total
	v.HasPrev = d.page > 1
	v.HasNext = d.page < total
	for _, j := range filtered[start:end] {
		v.Jobs = append(v.Jobs, d.card(j))
	}
	return v
}

func (d *Dashboard) badges() []TabBadge {
	out := make([]TabBadge, 0, len(models.JobStatuses)+1)
	out = append(out, TabBadge{Tab: TabAll, Count: d.counts.Total()})
	for _, s := range models.JobStatuses {
		out = append(out, TabBadge{Tab: Tab(s), Count: d.counts.Of(s)})
	}
	return out
}

func (d *Dashboard) card(j models.JobRecord) JobCard {
	c := JobCard{
		JobRecord:   j,
		Label:       j.Status.Label(),
		Color:       j.Status.Color(),
		DetailsPath: detailsPath + "?id=" + url.QueryEscape(j.ID),
	}
	start, errStart := time.Parse(time.RFC3339, j.StartISO)
	end, errEnd := time.Parse(time.RFC3339, j.EndISO)
	if errStart == nil {
		start = start.In(d.loc)
		c.Date = start.Format("2006/01/02")
		c.TimeRange = start.Format("15:04")
		if errEnd == nil {
			c.TimeRange += " - " + end.In(d.loc).Format("15:04")
		}
		c.TimeRange = trimHourZero(c.TimeRange)
	}
	return c
}

// trimHourZero turns "08:00 - 09:30" into "8:00 - 9:30".
func trimHourZero(r string) string {
	parts := strings.Split(r, " - ")
	for i, p := range parts {
		if len(p) == 5 && p[0] == '0' {
			parts[i] = p[1:]
		}
	}
	return strings.Join(parts, " - ")
}
