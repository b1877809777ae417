package models

import "github.com/shopspring/decimal"

// InvestmentType is a commonly used value for Investment.Type. The column
// deliberately accepts arbitrary strings; the web client offers these as
// dropdown options but the server does not enforce the set.
type InvestmentType = string

const (
	InvestmentTypeStock      InvestmentType = "Stock"
	InvestmentTypeETF        InvestmentType = "ETF"
	InvestmentTypeBond       InvestmentType = "Bond"
	InvestmentTypeCrypto     InvestmentType = "Crypto"
	InvestmentTypeMutualFund InvestmentType = "Mutual Fund"
)

// Investment represents one user's position in an instrument. The symbol is
// free text: it usually references a row in the symbols table, but there is
// no foreign key, so manually entered tickers are allowed.
type Investment struct {
	Base
	UserID       string          `gorm:"not null;index" json:"user_id"`
	Name         string          `gorm:"not null" json:"name"`
	Symbol       string          `gorm:"not null" json:"symbol"`
	Type         string          `gorm:"not null" json:"type"`
	Shares       decimal.Decimal `gorm:"type:numeric(20,8);not null" json:"shares"`
	BuyPrice     decimal.Decimal `gorm:"type:numeric(20,8);not null" json:"buy_price"`
	CurrentPrice decimal.Decimal `gorm:"type:numeric(20,8);not null" json:"current_price"`
}
