package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "folio/internal/errors"
	"folio/internal/models"
	"folio/internal/uuid"
)

// investmentService handles investment-related business logic.
type investmentService struct {
	db *gorm.DB
}

// NewInvestmentService creates a new InvestmentServicer.
func NewInvestmentService(db *gorm.DB) InvestmentServicer {
	return &investmentService{db: db}
}

// ListInvestments returns all investments owned by the user, newest first.
func (s *investmentService) ListInvestments(userID string) ([]models.Investment, error) {
	var investments []models.Investment
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&investments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return investments, nil
}

// CreateInvestment persists a new investment owned by the caller. The
// owner is always the authenticated user; a user id supplied in any
// payload is never accepted.
func (s *investmentService) CreateInvestment(userID string, input CreateInvestmentInput) (*models.Investment, error) {
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Symbol) == "" ||
		strings.TrimSpace(input.Type) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Missing required fields")
	}
	if input.Shares.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Shares must be non-negative")
	}

	investment := &models.Investment{
		UserID:       userID,
		Name:         input.Name,
		Symbol:       strings.ToUpper(input.Symbol),
		Type:         input.Type,
		Shares:       input.Shares,
		BuyPrice:     input.BuyPrice,
		CurrentPrice: input.CurrentPrice,
	}

	if err := s.db.Create(investment).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return investment, nil
}

// getOwnedInvestment loads a record and verifies ownership. Returns
// INVESTMENT_NOT_FOUND if the record does not exist and FORBIDDEN if it
// belongs to someone else, before any mutation happens.
func (s *investmentService) getOwnedInvestment(userID, investmentID string) (*models.Investment, error) {
	if !uuid.IsValid(investmentID) {
		return nil, apperrors.ErrInvestmentNotFound
	}

	var investment models.Investment
	if err := s.db.First(&investment, "id = ?", investmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvestmentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if investment.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return &investment, nil
}

// UpdateInvestment applies a partial update to an owned record. Only
// non-nil input fields are written; omitted fields keep their prior values.
func (s *investmentService) UpdateInvestment(userID, investmentID string, input UpdateInvestmentInput) (*models.Investment, error) {
	investment, err := s.getOwnedInvestment(userID, investmentID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Symbol != nil {
		updates["symbol"] = strings.ToUpper(*input.Symbol)
	}
	if input.Type != nil {
		updates["type"] = *input.Type
	}
	if input.Shares != nil {
		if input.Shares.IsNegative() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Shares must be non-negative")
		}
		updates["shares"] = *input.Shares
	}
	if input.BuyPrice != nil {
		updates["buy_price"] = *input.BuyPrice
	}
	if input.CurrentPrice != nil {
		updates["current_price"] = *input.CurrentPrice
	}

	if len(updates) == 0 {
		return investment, nil
	}

	if err := s.db.Model(investment).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return investment, nil
}

// DeleteInvestment removes an owned record and returns its prior contents.
func (s *investmentService) DeleteInvestment(userID, investmentID string) (*models.Investment, error) {
	investment, err := s.getOwnedInvestment(userID, investmentID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(investment).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return investment, nil
}
