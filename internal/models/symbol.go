package models

import "gorm.io/datatypes"

// Symbol is one row of the shared reference catalog of tradable
// instruments, used only for search suggestions. Rows are written by the
// import job (upsert keyed on symbol), never by end-user actions.
type Symbol struct {
	Base
	Symbol   string            `gorm:"not null;uniqueIndex:uq_symbols_symbol" json:"symbol"`
	Name     string            `gorm:"not null" json:"name"`
	Exchange *string           `json:"exchange"`
	ISIN     *string           `json:"isin"`
	Metadata datatypes.JSONMap `gorm:"type:jsonb" json:"metadata"`
}
