package handlers

import (
	"errors"
	"net/http"
	"time"

	"servineo/services/socialAuth"
	"servineo/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NextAfterGoogleSignup is where a verified Google sign-up continues.
const NextAfterGoogleSignup = "/ImagenLocalizacion"

const defaultStateMaxAge = 10 * time.Minute

type AuthHandler struct {
	ClientID    string
	RedirectURI string
	Verifier    *socialAuth.GoogleVerifier
	StateMaxAge time.Duration
	Now         func() time.Time
}

func NewAuthHandler(clientID, redirectURI string, verifier *socialAuth.GoogleVerifier) *AuthHandler {
	return &AuthHandler{
		ClientID:    clientID,
		RedirectURI: redirectURI,
		Verifier:    verifier,
		StateMaxAge: defaultStateMaxAge,
		Now:         time.Now,
	}
}

// GoogleAuthURL handles GET /api/auth/google?type=register|login.
func (h *AuthHandler) GoogleAuthURL(c *gin.Context) {
	authType, err := socialAuth.ParseAuthType(c.Query("type"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid auth type", err.Error())
		return
	}
	req, err := socialAuth.BuildAuthURL(h.ClientID, h.RedirectURI, authType, h.Now())
	if err != nil {
		getLogger(c).Error("cannot build google auth url", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Error al conectar con Google", err.Error())
		return
	}
	c.JSON(http.StatusOK, req)
}

// GoogleCallback handles POST /api/auth/google/callback.
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	var body struct {
		State   string `json:"state" binding:"required"`
		IDToken string `json:"idToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	state, err := socialAuth.DecodeState(body.State, h.StateMaxAge, h.Now())
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, socialAuth.ErrStateExpired) {
			status = http.StatusUnauthorized
		}
		utils.JSONError(c, status, "invalid oauth state", err.Error())
		return
	}

	profile, err := h.Verifier.Validate(c.Request.Context(), body.IDToken, h.ClientID)
	if err != nil {
		getLogger(c).Warn("google token rejected", zap.Error(err))
		utils.JSONError(c, http.StatusUnauthorized, "invalid google token", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"type":    state.Type,
		"profile": profile,
		"next":    NextAfterGoogleSignup,
	})
}
