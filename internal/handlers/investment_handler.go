package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "folio/internal/errors"
	"folio/internal/services"
)

// InvestmentHandler handles investment-related requests.
type InvestmentHandler struct {
	investmentService services.InvestmentServicer
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(investmentService services.InvestmentServicer) *InvestmentHandler {
	return &InvestmentHandler{investmentService: investmentService}
}

// CreateInvestmentRequest represents the request payload for creating an investment.
// Field names follow the web client's camelCase wire format.
type CreateInvestmentRequest struct {
	Name         string           `json:"name" binding:"required"`
	Symbol       string           `json:"symbol" binding:"required"`
	Type         string           `json:"type" binding:"required"`
	Shares       *decimal.Decimal `json:"shares" binding:"required"`
	BuyPrice     *decimal.Decimal `json:"buyPrice" binding:"required"`
	CurrentPrice *decimal.Decimal `json:"currentPrice" binding:"required"`
}

// UpdateInvestmentRequest represents a partial update. Absent fields are
// left unchanged on the stored record.
type UpdateInvestmentRequest struct {
	Name         *string          `json:"name"`
	Symbol       *string          `json:"symbol"`
	Type         *string          `json:"type"`
	Shares       *decimal.Decimal `json:"shares"`
	BuyPrice     *decimal.Decimal `json:"buyPrice"`
	CurrentPrice *decimal.Decimal `json:"currentPrice"`
}

// ListInvestments handles listing the caller's investments.
// @Summary     List investments
// @Description Get all investments owned by the authenticated user, newest first
// @Tags        investments
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Investment "Owned investments"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments [get]
func (h *InvestmentHandler) ListInvestments(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	investments, err := h.investmentService.ListInvestments(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, investments)
}

// CreateInvestment handles adding a new investment.
// @Summary     Create investment
// @Description Add an investment owned by the authenticated user
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateInvestmentRequest true "Investment details"
// @Success     201 {object} models.Investment "Investment created"
// @Failure     400 {object} ErrorResponse "Missing required fields"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments [post]
func (h *InvestmentHandler) CreateInvestment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	investment, err := h.investmentService.CreateInvestment(userID, services.CreateInvestmentInput{
		Name:         req.Name,
		Symbol:       req.Symbol,
		Type:         req.Type,
		Shares:       *req.Shares,
		BuyPrice:     *req.BuyPrice,
		CurrentPrice: *req.CurrentPrice,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, investment)
}

// UpdateInvestment handles a partial update of an owned investment.
// @Summary     Update investment
// @Description Apply a partial update to an investment; omitted fields keep their values
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                  true "Investment ID"
// @Param       request body UpdateInvestmentRequest true "Fields to update"
// @Success     200 {object} models.Investment "Updated investment"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Owned by another user"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/{id} [put]
func (h *InvestmentHandler) UpdateInvestment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	investment, err := h.investmentService.UpdateInvestment(userID, c.Param("id"), services.UpdateInvestmentInput{
		Name:         req.Name,
		Symbol:       req.Symbol,
		Type:         req.Type,
		Shares:       req.Shares,
		BuyPrice:     req.BuyPrice,
		CurrentPrice: req.CurrentPrice,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, investment)
}

// DeleteInvestment handles removing an owned investment.
// @Summary     Delete investment
// @Description Remove an investment; responds with the deleted record's prior contents
// @Tags        investments
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Investment ID"
// @Success     200 {object} map[string]interface{} "Success flag and deleted record"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Owned by another user"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/{id} [delete]
func (h *InvestmentHandler) DeleteInvestment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	investment, err := h.investmentService.DeleteInvestment(userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "investment": investment})
}

// ErrorResponse documents the error envelope for Swagger.
type ErrorResponse struct {
	Error apperrors.AppError `json:"error"`
}
