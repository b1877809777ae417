package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"folio/internal/logger"
	"folio/internal/services"
)

// SymbolHandler handles symbol autocomplete requests.
type SymbolHandler struct {
	symbolService services.SymbolServicer
}

// NewSymbolHandler creates a new SymbolHandler.
func NewSymbolHandler(symbolService services.SymbolServicer) *SymbolHandler {
	return &SymbolHandler{symbolService: symbolService}
}

// SearchSymbols handles symbol autocomplete queries.
//
// Lookup failures deliberately degrade to an empty suggestion list instead
// of an error payload: a broken search box is worse than an empty one. The
// cause is logged server-side only.
//
// @Summary     Search symbols
// @Description Autocomplete tradable symbols by name substring or symbol prefix
// @Tags        symbols
// @Produce     json
// @Param       q query string false "Partial symbol or company name"
// @Success     200 {array} services.SymbolMatch "Up to 20 candidates, name ascending"
// @Failure     500 {array} services.SymbolMatch "Empty array on lookup failure"
// @Router      /symbols [get]
func (h *SymbolHandler) SearchSymbols(c *gin.Context) {
	matches, err := h.symbolService.Search(c.Query("q"))
	if err != nil {
		logger.Get().Errorw("symbol search failed",
			"query", c.Query("q"),
			"error", err.Error(),
		)
		c.JSON(http.StatusInternalServerError, []services.SymbolMatch{})
		return
	}

	c.JSON(http.StatusOK, matches)
}
