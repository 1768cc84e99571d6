package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"print_shop/internal/models"

	"github.com/gin-gonic/gin"
)

const testSecret = "test-secret"

func newAuthRouter(secret string) (*gin.Engine, *models.Actor, *uint) {
	gin.SetMode(gin.TestMode)
	var seenActor models.Actor
	var seenOrg uint

	router := gin.New()
	router.GET("/protected", JWTAuth(secret), func(c *gin.Context) {
		seenActor = ActorFrom(c)
		seenOrg = OrgID(c)
		c.Status(http.StatusOK)
	})
	return router, &seenActor, &seenOrg
}

func TestJWTAuthResolvesTenantContext(t *testing.T) {
	user := &models.User{
		ID:             7,
		OrganizationID: 1,
		Name:           "alice",
		Role:           models.RoleManager,
	}
	token, err := IssueToken(testSecret, user, time.Hour)
	if err != nil {
		t.Fatalf("issuing token: %v", err)
	}

	router, actor, org := newAuthRouter(testSecret)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if *org != 1 {
		t.Errorf("org = %d, want 1", *org)
	}
	if actor.UserID != 7 || actor.Name != "alice" || actor.Role != models.RoleManager {
		t.Errorf("actor = %+v, want the token claims", actor)
	}
}

func TestJWTAuthRejections(t *testing.T) {
	user := &models.User{ID: 7, OrganizationID: 1, Name: "alice", Role: models.RoleManager}

	cases := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			"missing header",
			func(t *testing.T) string { return "" },
		},
		{
			"wrong secret",
			func(t *testing.T) string {
				token, err := IssueToken("other-secret", user, time.Hour)
				if err != nil {
					t.Fatalf("issuing token: %v", err)
				}
				return token
			},
		},
		{
			"expired token",
			func(t *testing.T) string {
				token, err := IssueToken(testSecret, user, -time.Minute)
				if err != nil {
					t.Fatalf("issuing token: %v", err)
				}
				return token
			},
		},
		{
			"token without an organization",
			func(t *testing.T) string {
				orphan := &models.User{ID: 7, Name: "alice", Role: models.RoleManager}
				token, err := IssueToken(testSecret, orphan, time.Hour)
				if err != nil {
					t.Fatalf("issuing token: %v", err)
				}
				return token
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			router, _, _ := newAuthRouter(testSecret)
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if token := c.token(t); token != "" {
				req.Header.Set("Authorization", "Bearer "+token)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
		})
	}
}

func TestRequestIDEchoesHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("preserves an incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "req-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if got := w.Header().Get("X-Request-ID"); got != "req-123" {
			t.Errorf("X-Request-ID = %s, want req-123", got)
		}
	})

	t.Run("generates one when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Header().Get("X-Request-ID") == "" {
			t.Error("expected a generated request id")
		}
	})
}
