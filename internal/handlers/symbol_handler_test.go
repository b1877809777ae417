package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "folio/internal/errors"
	"folio/internal/services"
)

// mockSymbolService implements services.SymbolServicer.
type mockSymbolService struct {
	searchFn func(query string) ([]services.SymbolMatch, error)
}

func (m *mockSymbolService) Search(query string) ([]services.SymbolMatch, error) {
	return m.searchFn(query)
}

var _ services.SymbolServicer = (*mockSymbolService)(nil)

func symbolRouter(svc services.SymbolServicer) *gin.Engine {
	router := gin.New()
	router.GET("/symbols", NewSymbolHandler(svc).SearchSymbols)
	return router
}

func TestSearchSymbolsHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &mockSymbolService{
			searchFn: func(query string) ([]services.SymbolMatch, error) {
				if query != "rel" {
					t.Errorf("expected query rel, got %q", query)
				}
				return []services.SymbolMatch{
					{Symbol: "RELIANCE", Name: "Reliance Industries"},
				}, nil
			},
		}
		router := symbolRouter(svc)

		w := doRequest(router, http.MethodGet, "/symbols?q=rel", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		matches := parseJSONArray(t, w)
		if len(matches) != 1 || matches[0]["symbol"] != "RELIANCE" {
			t.Errorf("unexpected matches: %v", matches)
		}
	})

	t.Run("missing_query_param", func(t *testing.T) {
		svc := &mockSymbolService{
			searchFn: func(query string) ([]services.SymbolMatch, error) {
				if query != "" {
					t.Errorf("expected empty query, got %q", query)
				}
				return []services.SymbolMatch{}, nil
			},
		}
		router := symbolRouter(svc)

		w := doRequest(router, http.MethodGet, "/symbols", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := w.Body.String(); body != "[]" {
			t.Errorf("expected empty array body, got %q", body)
		}
	})

	t.Run("lookup_failure_degrades_to_empty_list", func(t *testing.T) {
		svc := &mockSymbolService{
			searchFn: func(string) ([]services.SymbolMatch, error) {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, http.ErrServerClosed)
			},
		}
		router := symbolRouter(svc)

		w := doRequest(router, http.MethodGet, "/symbols?q=rel", nil)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if body := w.Body.String(); body != "[]" {
			t.Errorf("expected empty array body on failure, got %q", body)
		}
	})
}
