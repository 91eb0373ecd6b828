package handlers

import (
	"errors"
	"net/http"

	"servineo/services/help"
	"servineo/utils"

	"github.com/gin-gonic/gin"
)

// HelpHandler serves the help guide.
type HelpHandler struct {
	Guide *help.Guide
}

func (h *HelpHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, help.ErrUnknownCategory), errors.Is(err, help.ErrUnknownItem):
		utils.JSONError(c, http.StatusNotFound, "help page not found", err.Error())
	case errors.Is(err, help.ErrNotAFolder):
		utils.JSONError(c, http.StatusBadRequest, "category has no sub-pages", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "help unavailable", err.Error())
	}
}

// ListCategories handles GET /api/help/categories.
func (h *HelpHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": h.Guide.Summaries(),
		"view":       help.NewNavigator(h.Guide).View(),
	})
}

// GetCategory handles GET /api/help/categories/:key.
func (h *HelpHandler) GetCategory(c *gin.Context) {
	nav := help.NewNavigator(h.Guide)
	if err := nav.SelectCategory(c.Param("key")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, nav.View())
}

// GetItem handles GET /api/help/categories/:key/items/:itemID.
func (h *HelpHandler) GetItem(c *gin.Context) {
	nav := help.NewNavigator(h.Guide)
	if err := nav.SelectSubItem(c.Param("key"), c.Param("itemID")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, nav.View())
}

// Search handles GET /api/help/search?q=.
func (h *HelpHandler) Search(c *gin.Context) {
	nav := help.NewNavigator(h.Guide)
	nav.Search(c.Query("q"))
	c.JSON(http.StatusOK, nav.View())
}
