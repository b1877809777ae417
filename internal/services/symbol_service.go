package services

import (
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	apperrors "folio/internal/errors"
	"folio/internal/models"
)

// maxSymbolMatches caps autocomplete result sets.
const maxSymbolMatches = 20

// symbolService handles symbol autocomplete lookups against the shared
// reference catalog.
type symbolService struct {
	db *gorm.DB
}

// NewSymbolService creates a new SymbolServicer.
func NewSymbolService(db *gorm.DB) SymbolServicer {
	return &symbolService{db: db}
}

// Search returns up to 20 candidates whose name contains the query or whose
// symbol starts with it, case-insensitively, ordered by name. An empty or
// whitespace query returns an empty result without touching the store.
func (s *symbolService) Search(query string) ([]SymbolMatch, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []SymbolMatch{}, nil
	}

	var rows []models.Symbol
	if err := s.db.
		Where("LOWER(name) LIKE ? OR LOWER(symbol) LIKE ?", "%"+q+"%", q+"%").
		Order("name ASC").
		Limit(maxSymbolMatches).
		Find(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	matches := make([]SymbolMatch, 0, len(rows))
	for _, row := range rows {
		metadata := row.Metadata
		if metadata == nil {
			metadata = datatypes.JSONMap{}
		}
		matches = append(matches, SymbolMatch{
			Symbol:   strings.ToUpper(row.Symbol),
			Name:     row.Name,
			Exchange: row.Exchange,
			Metadata: metadata,
		})
	}
	return matches, nil
}
