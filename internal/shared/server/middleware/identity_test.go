package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func identityRouter(env string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Identity(env))
	router.GET("/api/v1/interviews", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": UserIDFromContext(c)})
	})
	return router
}

func TestIdentityUsesForwardedHeader(t *testing.T) {
	router := identityRouter("production")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/interviews", nil)
	req.Header.Set("X-User-Id", "user-42")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if body := resp.Body.String(); body != `{"userId":"user-42"}` {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestIdentityRejectsMissingHeaderInProduction(t *testing.T) {
	router := identityRouter("production")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/interviews", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestIdentityDevFallbackUser(t *testing.T) {
	router := identityRouter("dev")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/interviews", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if body := resp.Body.String(); body != `{"userId":"dev-user"}` {
		t.Fatalf("unexpected body: %s", body)
	}
}
