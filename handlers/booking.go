package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"servineo/services/booking"
	"servineo/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the calendar → slots → request flow.
type BookingHandler struct {
	Svc booking.BookingSessionService
}

func NewBookingHandler(svc booking.BookingSessionService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

func (h *BookingHandler) fail(c *gin.Context, op string, err error) {
	var se *booking.SessionError
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking session not found", err.Error())
	case errors.Is(err, booking.ErrNoSlotsSelected):
		utils.JSONError(c, http.StatusConflict, "select at least one slot", err.Error())
	case errors.As(err, &se):
		utils.JSONError(c, http.StatusConflict, se.Message, se.Code)
	default:
		getLogger(c).Error(op+": booking session failure", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to update booking session", err.Error())
	}
}

// InitiateSession handles POST /api/booking/session.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	var body struct {
		ProviderID string `json:"providerId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	view, err := h.Svc.InitiateSession(c.Request.Context(), body.ProviderID)
	if err != nil {
		h.fail(c, "InitiateSession", err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// GetSession handles GET /api/booking/session/:sessionID.
func (h *BookingHandler) GetSession(c *gin.Context) {
	view, err := h.Svc.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.fail(c, "GetSession", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ChangeMonth handles PUT /api/booking/session/:sessionID/month.
func (h *BookingHandler) ChangeMonth(c *gin.Context) {
	var body struct {
		Direction booking.Direction `json:"direction" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	view, err := h.Svc.ChangeMonth(c.Request.Context(), c.Param("sessionID"), body.Direction)
	if err != nil {
		h.fail(c, "ChangeMonth", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SelectDate handles PUT /api/booking/session/:sessionID/date.
func (h *BookingHandler) SelectDate(c *gin.Context) {
	var body struct {
		Day int `json:"day" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	view, err := h.Svc.SelectDate(c.Request.Context(), c.Param("sessionID"), body.Day)
	if err != nil {
		h.fail(c, "SelectDate", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Proceed handles POST /api/booking/session/:sessionID/proceed.
func (h *BookingHandler) Proceed(c *gin.Context) {
	view, err := h.Svc.Proceed(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.fail(c, "Proceed", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Back handles POST /api/booking/session/:sessionID/back.
func (h *BookingHandler) Back(c *gin.Context) {
	view, err := h.Svc.Back(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.fail(c, "Back", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SelectSlots handles PUT /api/booking/session/:sessionID/slots.
func (h *BookingHandler) SelectSlots(c *gin.Context) {
	var body struct {
		Indices []int `json:"indices"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	view, err := h.Svc.SelectSlots(c.Request.Context(), c.Param("sessionID"), body.Indices)
	if err != nil {
		h.fail(c, "SelectSlots", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ToggleSlot handles POST /api/booking/session/:sessionID/slots/:index/toggle.
func (h *BookingHandler) ToggleSlot(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid slot index", err.Error())
		return
	}
	view, err := h.Svc.ToggleSlot(c.Request.Context(), c.Param("sessionID"), index)
	if err != nil {
		h.fail(c, "ToggleSlot", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SubmitRequest handles POST /api/booking/session/:sessionID/request.
func (h *BookingHandler) SubmitRequest(c *gin.Context) {
	target, err := h.Svc.SubmitRequest(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.fail(c, "SubmitRequest", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"target": target})
}

// CancelSession handles DELETE /api/booking/session/:sessionID.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Svc.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.fail(c, "CancelSession", err)
		return
	}
	c.Status(http.StatusNoContent)
}
