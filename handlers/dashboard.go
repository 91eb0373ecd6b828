package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"servineo/metrics"
	"servineo/services/dashboard"
	"servineo/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type jobInvalidator interface {
	Invalidate(ctx context.Context, providerID string) error
}

// DashboardHandler renders a provider's scheduled jobs. When Jobs caches,
// tab and page changes reuse the cached list and ?refresh=true reloads it.
type DashboardHandler struct {
	Jobs     dashboard.JobSource
	Metrics  *metrics.FlowMetrics
	Location *time.Location
}

// GetProviderJobs handles GET /api/providers/:id/jobs?tab=&page=&refresh=.
func (h *DashboardHandler) GetProviderJobs(c *gin.Context) {
	tab, err := dashboard.ParseTab(c.Query("tab"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid tab", err.Error())
		return
	}
	page := 1
	if raw := c.Query("page"); raw != "" {
		if page, err = strconv.Atoi(raw); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid page", err.Error())
			return
		}
	}

	if c.Query("refresh") == "true" {
		if inv, ok := h.Jobs.(jobInvalidator); ok {
			if err := inv.Invalidate(c.Request.Context(), c.Param("id")); err != nil {
				getLogger(c).Warn("Failed to drop cached job list", zap.Error(err))
			}
		}
	}

	d := dashboard.New(h.Jobs, getLogger(c), h.Metrics, h.Location)
	loadErr := d.Load(c.Request.Context(), c.Param("id"))
	d.SelectTab(tab)
	d.SetPage(page)

	status := http.StatusOK
	if loadErr != nil {
		status = http.StatusBadGateway
	}
	c.JSON(status, d.View())
}
