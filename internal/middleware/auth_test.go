package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"folio/internal/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubVerifier accepts a single known token.
type stubVerifier struct {
	token    string
	identity *auth.Identity
}

func (s *stubVerifier) Verify(tokenString string) (*auth.Identity, error) {
	if tokenString == s.token {
		return s.identity, nil
	}
	return nil, errors.New("unknown token")
}

func protectedRouter(verifier auth.Verifier) *gin.Engine {
	router := gin.New()
	router.GET("/me", Auth(verifier), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID": c.GetString("userID"),
			"email":  c.GetString("email"),
		})
	})
	return router
}

func request(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse error body %q: %v", w.Body.String(), err)
	}
	if body.Error.Code != "UNAUTHORIZED" {
		t.Errorf("expected UNAUTHORIZED code, got %q", body.Error.Code)
	}
	return body.Error.Message
}

func TestAuth(t *testing.T) {
	verifier := &stubVerifier{
		token:    "good-token",
		identity: &auth.Identity{UserID: "user-1", Email: "user@example.com"},
	}

	t.Run("valid_token_sets_identity", func(t *testing.T) {
		router := protectedRouter(verifier)

		w := request(router, "Bearer good-token")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to parse body: %v", err)
		}
		if body["userID"] != "user-1" {
			t.Errorf("expected userID user-1, got %q", body["userID"])
		}
		if body["email"] != "user@example.com" {
			t.Errorf("expected email, got %q", body["email"])
		}
	})

	t.Run("missing_header", func(t *testing.T) {
		router := protectedRouter(verifier)

		w := request(router, "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if msg := errorMessage(t, w); msg != "Authorization header is required" {
			t.Errorf("unexpected message: %q", msg)
		}
	})

	t.Run("malformed_header", func(t *testing.T) {
		router := protectedRouter(verifier)

		for _, header := range []string{"good-token", "Basic good-token", "Bearer a b"} {
			w := request(router, header)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("header %q: expected 401, got %d", header, w.Code)
				continue
			}
			if msg := errorMessage(t, w); msg != "Invalid authorization header format" {
				t.Errorf("header %q: unexpected message %q", header, msg)
			}
		}
	})

	t.Run("rejected_token", func(t *testing.T) {
		router := protectedRouter(verifier)

		w := request(router, "Bearer bad-token")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if msg := errorMessage(t, w); msg != "Invalid or expired token" {
			t.Errorf("unexpected message: %q", msg)
		}
	})
}
