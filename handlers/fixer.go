package handlers

import (
	"errors"
	"net/http"

	"servineo/models"
	"servineo/services/backend"
	"servineo/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FixerHandler proxies fixer profile and onboarding calls to the backend.
type FixerHandler struct {
	Client *backend.Client
}

func NewFixerHandler(client *backend.Client) *FixerHandler {
	return &FixerHandler{Client: client}
}

func (h *FixerHandler) fail(c *gin.Context, err error) {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		utils.JSONError(c, apiErr.Status, apiErr.Message, "")
		return
	}
	getLogger(c).Error("backend request failed", zap.Error(err))
	utils.JSONError(c, http.StatusBadGateway, "backend unavailable", err.Error())
}

func (h *FixerHandler) reply(c *gin.Context, fixer *models.Fixer, err error) {
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": fixer})
}

func (h *FixerHandler) GetFixer(c *gin.Context) {
	fixer, err := h.Client.GetFixer(c.Request.Context(), c.Param("id"))
	h.reply(c, fixer, err)
}

// GetFixerByUser answers 404 when the user has no fixer profile yet.
func (h *FixerHandler) GetFixerByUser(c *gin.Context) {
	fixer, err := h.Client.GetFixerByUser(c.Request.Context(), c.Param("userID"))
	if err == nil && fixer == nil {
		utils.JSONError(c, http.StatusNotFound, "fixer not found", "")
		return
	}
	h.reply(c, fixer, err)
}

func (h *FixerHandler) GetFixersByCategory(c *gin.Context) {
	groups, err := h.Client.GetFixersByCategory(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": groups})
}

func (h *FixerHandler) CheckCI(c *gin.Context) {
	ci := c.Query("ci")
	if ci == "" {
		utils.JSONError(c, http.StatusBadRequest, "ci is required", "")
		return
	}
	res, err := h.Client.CheckCI(c.Request.Context(), ci, c.Query("excludeId"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *FixerHandler) CreateFixer(c *gin.Context) {
	var in models.CreateFixerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if in.UserID == "" || in.CI == "" {
		utils.JSONError(c, http.StatusBadRequest, "userId and ci are required", "")
		return
	}
	fixer, err := h.Client.CreateFixer(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": fixer})
}

func (h *FixerHandler) UpdateIdentity(c *gin.Context) {
	var body struct {
		CI string `json:"ci" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	fixer, err := h.Client.UpdateIdentity(c.Request.Context(), c.Param("id"), body.CI)
	h.reply(c, fixer, err)
}

func (h *FixerHandler) UpdateLocation(c *gin.Context) {
	var loc models.Location
	if err := c.ShouldBindJSON(&loc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	fixer, err := h.Client.UpdateLocation(c.Request.Context(), c.Param("id"), loc)
	h.reply(c, fixer, err)
}

func (h *FixerHandler) UpdateCategories(c *gin.Context) {
	var in models.UpdateCategoriesInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	fixer, err := h.Client.UpdateCategories(c.Request.Context(), c.Param("id"), in)
	h.reply(c, fixer, err)
}

func (h *FixerHandler) UpdatePayments(c *gin.Context) {
	var in models.UpdatePaymentsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	fixer, err := h.Client.UpdatePayments(c.Request.Context(), c.Param("id"), in)
	h.reply(c, fixer, err)
}

func (h *FixerHandler) AcceptTerms(c *gin.Context) {
	fixer, err := h.Client.AcceptTerms(c.Request.Context(), c.Param("id"))
	h.reply(c, fixer, err)
}
