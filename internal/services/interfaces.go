package services

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"folio/internal/models"
)

// CreateInvestmentInput carries the validated fields for a new investment.
type CreateInvestmentInput struct {
	Name         string
	Symbol       string
	Type         string
	Shares       decimal.Decimal
	BuyPrice     decimal.Decimal
	CurrentPrice decimal.Decimal
}

// UpdateInvestmentInput carries a partial update. Nil fields are left
// unchanged on the stored record.
type UpdateInvestmentInput struct {
	Name         *string
	Symbol       *string
	Type         *string
	Shares       *decimal.Decimal
	BuyPrice     *decimal.Decimal
	CurrentPrice *decimal.Decimal
}

// InvestmentServicer defines the contract for investment-related business logic.
// Every operation takes the verified caller's user id and enforces ownership
// before touching a record.
type InvestmentServicer interface {
	ListInvestments(userID string) ([]models.Investment, error)
	CreateInvestment(userID string, input CreateInvestmentInput) (*models.Investment, error)
	UpdateInvestment(userID, investmentID string, input UpdateInvestmentInput) (*models.Investment, error)
	DeleteInvestment(userID, investmentID string) (*models.Investment, error)
}

// SymbolMatch is one autocomplete candidate. Exchange is null and Metadata
// an empty map when the catalog row carries no value, regardless of what
// the store returned.
type SymbolMatch struct {
	Symbol   string            `json:"symbol"`
	Name     string            `json:"name"`
	Exchange *string           `json:"exchange"`
	Metadata datatypes.JSONMap `json:"metadata"`
}

// SymbolServicer defines the contract for symbol autocomplete lookups.
type SymbolServicer interface {
	Search(query string) ([]SymbolMatch, error)
}
