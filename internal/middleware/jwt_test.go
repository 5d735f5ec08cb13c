package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/coursebay/coursebay-backend/internal/config"
	"github.com/coursebay/coursebay-backend/internal/service"
)

func newTestAuthService() *service.AuthService {
	return service.NewAuthService(&config.Config{
		JWTSecretAdmin: "admin-test-secret",
		JWTSecretUser:  "user-test-secret",
		JWTExpiry:      time.Hour,
		BcryptCost:     bcrypt.MinCost,
	})
}

// probeRouter guards a single route with the given middleware and reports
// the subject ID the middleware attached.
func probeRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", mw, func(c *gin.Context) {
		id, ok := GetSubjectID(c)
		if !ok {
			c.String(http.StatusInternalServerError, "no subject")
			return
		}
		c.String(http.StatusOK, id.String())
	})
	return r
}

func doProbe(t *testing.T, r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAdminToken_MissingOrMalformedHeader(t *testing.T) {
	auth := newTestAuthService()
	r := probeRouter(RequireAdminToken(auth))

	for _, header := range []string{
		"",
		"Bearer",
		"Bearer ",
		"Basic dXNlcjpwYXNz",
		"some-raw-token",
	} {
		w := doProbe(t, r, header)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: got %d want 401", header, w.Code)
		}
	}
}

func TestRequireAdminToken_InvalidToken(t *testing.T) {
	auth := newTestAuthService()
	r := probeRouter(RequireAdminToken(auth))

	w := doProbe(t, r, "Bearer not.a.jwt")
	if w.Code != http.StatusForbidden {
		t.Fatalf("got %d want 403", w.Code)
	}
}

func TestRequireAdminToken_ExpiredToken(t *testing.T) {
	expired := service.NewAuthService(&config.Config{
		JWTSecretAdmin: "admin-test-secret",
		JWTSecretUser:  "user-test-secret",
		JWTExpiry:      -time.Minute,
	})
	token, err := expired.GenerateToken(uuid.New(), service.NamespaceAdmin)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	r := probeRouter(RequireAdminToken(newTestAuthService()))
	w := doProbe(t, r, "Bearer "+token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("got %d want 403", w.Code)
	}
}

func TestRequireAdminToken_RejectsUserToken(t *testing.T) {
	auth := newTestAuthService()
	token, err := auth.GenerateToken(uuid.New(), service.NamespaceUser)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	r := probeRouter(RequireAdminToken(auth))
	w := doProbe(t, r, "Bearer "+token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("user token on admin route: got %d want 403", w.Code)
	}
}

func TestRequireUserToken_AttachesSubject(t *testing.T) {
	auth := newTestAuthService()
	subjectID := uuid.New()
	token, err := auth.GenerateToken(subjectID, service.NamespaceUser)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	r := probeRouter(RequireUserToken(auth))
	w := doProbe(t, r, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("got %d want 200 (body %q)", w.Code, w.Body.String())
	}
	if w.Body.String() != subjectID.String() {
		t.Fatalf("subject mismatch: got %q want %q", w.Body.String(), subjectID)
	}
}

func TestRequireUserToken_CaseInsensitiveBearer(t *testing.T) {
	auth := newTestAuthService()
	token, err := auth.GenerateToken(uuid.New(), service.NamespaceUser)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	r := probeRouter(RequireUserToken(auth))
	w := doProbe(t, r, "bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("got %d want 200", w.Code)
	}
}
