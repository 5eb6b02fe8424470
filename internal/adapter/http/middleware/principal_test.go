package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"grafica_xpto/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

func principalTestRouter(t *testing.T) (*gin.Engine, *entities.Principal) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var captured entities.Principal
	r := gin.New()
	r.Use(Principal())
	r.GET("/probe", func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			t.Fatalf("principal missing from context")
		}
		captured = p
		c.Status(http.StatusNoContent)
	})
	return r, &captured
}

func TestPrincipal_ValidHeaders(t *testing.T) {
	r, captured := principalTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set(HeaderUserID, "42")
	req.Header.Set(HeaderUserEmail, "mod@grafica.com")
	req.Header.Set(HeaderUserRole, "moderator")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("unexpected status: %d body=%s", w.Code, w.Body.String())
	}
	if captured.ID != 42 || captured.Email != "mod@grafica.com" || captured.Role != entities.RoleModerator {
		t.Fatalf("unexpected principal: %+v", captured)
	}
}

func TestPrincipal_RejectsBadHeaders(t *testing.T) {
	cases := []struct {
		name  string
		id    string
		email string
		role  string
	}{
		{"missing id", "", "user@grafica.com", "USER"},
		{"non numeric id", "abc", "user@grafica.com", "USER"},
		{"zero id", "0", "user@grafica.com", "USER"},
		{"missing email", "42", "", "USER"},
		{"missing role", "42", "user@grafica.com", ""},
		{"unknown role", "42", "user@grafica.com", "SUPERVISOR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.Use(Principal())
			r.GET("/probe", func(c *gin.Context) { c.Status(http.StatusNoContent) })

			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			if tc.id != "" {
				req.Header.Set(HeaderUserID, tc.id)
			}
			if tc.email != "" {
				req.Header.Set(HeaderUserEmail, tc.email)
			}
			if tc.role != "" {
				req.Header.Set(HeaderUserRole, tc.role)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", w.Code)
			}
		})
	}
}

func TestRequestID_MintsAndPropagates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/probe", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	// Minted when absent.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
	if w.Header().Get(HeaderRequestID) == "" {
		t.Fatalf("request id not minted")
	}

	// Propagated when present.
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set(HeaderRequestID, "req-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(HeaderRequestID); got != "req-123" {
		t.Fatalf("request id not propagated: %q", got)
	}
}
