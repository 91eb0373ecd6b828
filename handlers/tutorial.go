package handlers

import (
	"errors"
	"net/http"

	"servineo/models"
	"servineo/services/tutorial"
	"servineo/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TutorialHandler exposes the home page tour of one installation.
type TutorialHandler struct {
	Mgr *tutorial.Manager
}

func (h *TutorialHandler) respond(c *gin.Context, view models.TutorialView, err error) {
	if errors.Is(err, tutorial.ErrNoVisit) {
		utils.JSONError(c, http.StatusNotFound, "no tutorial visit for this installation", err.Error())
		return
	}
	if err != nil {
		getLogger(c).Error("tutorial request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "tutorial unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, view)
}

// Visit handles POST /api/tutorial/:installationID/visit.
func (h *TutorialHandler) Visit(c *gin.Context) {
	view, err := h.Mgr.Visit(c.Request.Context(), c.Param("installationID"))
	h.respond(c, view, err)
}

// Get handles GET /api/tutorial/:installationID.
func (h *TutorialHandler) Get(c *gin.Context) {
	view, err := h.Mgr.View(c.Param("installationID"))
	h.respond(c, view, err)
}

// Action handles POST /api/tutorial/:installationID/action.
func (h *TutorialHandler) Action(c *gin.Context) {
	var body struct {
		Action string `json:"action" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	action, err := tutorial.ParseAction(body.Action)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid action", err.Error())
		return
	}
	view, err := h.Mgr.Act(c.Param("installationID"), action)
	h.respond(c, view, err)
}

// Key handles POST /api/tutorial/:installationID/key.
func (h *TutorialHandler) Key(c *gin.Context) {
	var body struct {
		Key string `json:"key" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	view, err := h.Mgr.Key(c.Param("installationID"), body.Key)
	h.respond(c, view, err)
}

// Show handles POST /api/tutorial/:installationID/show, the help page's
// "Comenzar tour" button.
func (h *TutorialHandler) Show(c *gin.Context) {
	id := c.Param("installationID")
	if _, err := h.Mgr.View(id); err != nil {
		h.respond(c, models.TutorialView{}, err)
		return
	}
	h.Mgr.Show(id)
	view, err := h.Mgr.View(id)
	h.respond(c, view, err)
}

// SetTarget handles PUT /api/tutorial/:installationID/targets/:key.
func (h *TutorialHandler) SetTarget(c *gin.Context) {
	var body struct {
		Rect models.Rect `json:"rect"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	view, err := h.Mgr.SetTarget(c.Param("installationID"), c.Param("key"), body.Rect)
	h.respond(c, view, err)
}

// Viewport handles POST /api/tutorial/:installationID/viewport.
func (h *TutorialHandler) Viewport(c *gin.Context) {
	var ev models.ViewportEvent
	if err := c.ShouldBindJSON(&ev); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if ev.Kind != models.ViewportResize && ev.Kind != models.ViewportScroll {
		utils.JSONError(c, http.StatusBadRequest, "invalid viewport event", string(ev.Kind))
		return
	}
	view, err := h.Mgr.Viewport(c.Param("installationID"), ev)
	h.respond(c, view, err)
}

// Leave handles DELETE /api/tutorial/:installationID.
func (h *TutorialHandler) Leave(c *gin.Context) {
	if err := h.Mgr.Leave(c.Param("installationID")); err != nil {
		h.respond(c, models.TutorialView{}, err)
		return
	}
	c.Status(http.StatusNoContent)
}
