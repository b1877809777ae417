package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"folio/internal/models"
	"folio/internal/uuid"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// NewUserID returns a fresh opaque user identifier, standing in for one
// issued by the identity provider.
func NewUserID() string {
	return uuid.New()
}

// CreateTestInvestment creates an investment owned by the given user.
func CreateTestInvestment(t *testing.T, db *gorm.DB, userID string) *models.Investment {
	t.Helper()

	n := nextID()
	investment := &models.Investment{
		UserID:       userID,
		Name:         fmt.Sprintf("Test Holding %d", n),
		Symbol:       fmt.Sprintf("TST%d", n),
		Type:         models.InvestmentTypeStock,
		Shares:       decimal.NewFromInt(10),
		BuyPrice:     decimal.NewFromInt(100),
		CurrentPrice: decimal.NewFromInt(150),
	}
	if err := db.Create(investment).Error; err != nil {
		t.Fatalf("failed to create test investment: %v", err)
	}
	return investment
}

// CreateTestSymbol creates a catalog row with the given symbol and name.
func CreateTestSymbol(t *testing.T, db *gorm.DB, symbol, name string) *models.Symbol {
	t.Helper()

	row := &models.Symbol{
		Symbol:   symbol,
		Name:     name,
		Metadata: datatypes.JSONMap{},
	}
	if err := db.Create(row).Error; err != nil {
		t.Fatalf("failed to create test symbol: %v", err)
	}
	return row
}
