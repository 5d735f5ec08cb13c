package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/coursebay/coursebay-backend/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecretAdmin: "admin-test-secret",
		JWTSecretUser:  "user-test-secret",
		JWTExpiry:      time.Hour,
		BcryptCost:     bcrypt.MinCost,
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	s := NewAuthService(testConfig())

	hash, err := s.HashPassword("secret12")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "secret12" {
		t.Fatal("hash equals plaintext")
	}

	if err := s.CheckPassword(hash, "secret12"); err != nil {
		t.Fatalf("CheckPassword error: %v", err)
	}

	if err := s.CheckPassword(hash, "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestCheckPassword_CorruptDigest(t *testing.T) {
	t.Parallel()

	s := NewAuthService(testConfig())

	err := s.CheckPassword("not-a-bcrypt-digest", "secret12")
	if err == nil {
		t.Fatal("expected error for corrupt digest")
	}
	// A corrupt digest must be distinguishable from a plain mismatch.
	if errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("corrupt digest reported as credential mismatch: %v", err)
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()

	s := NewAuthService(testConfig())
	subjectID := uuid.New()

	for _, ns := range []TokenNamespace{NamespaceAdmin, NamespaceUser} {
		token, err := s.GenerateToken(subjectID, ns)
		if err != nil {
			t.Fatalf("GenerateToken(%s) error: %v", ns, err)
		}

		got, err := s.ValidateToken(token, ns)
		if err != nil {
			t.Fatalf("ValidateToken(%s) error: %v", ns, err)
		}
		if got != subjectID {
			t.Fatalf("subject mismatch: got %s want %s", got, subjectID)
		}
	}
}

func TestValidateToken_CrossNamespace(t *testing.T) {
	t.Parallel()

	s := NewAuthService(testConfig())

	adminToken, err := s.GenerateToken(uuid.New(), NamespaceAdmin)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	userToken, err := s.GenerateToken(uuid.New(), NamespaceUser)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := s.ValidateToken(adminToken, NamespaceUser); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("admin token in user namespace: expected ErrTokenInvalid, got %v", err)
	}
	if _, err := s.ValidateToken(userToken, NamespaceAdmin); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("user token in admin namespace: expected ErrTokenInvalid, got %v", err)
	}
}

func TestValidateToken_SameSecretNamespaceClaim(t *testing.T) {
	t.Parallel()

	// With identical secrets the signature alone cannot tell the
	// namespaces apart; the namespace claim must.
	cfg := testConfig()
	cfg.JWTSecretUser = cfg.JWTSecretAdmin
	s := NewAuthService(cfg)

	userToken, err := s.GenerateToken(uuid.New(), NamespaceUser)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := s.ValidateToken(userToken, NamespaceAdmin); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestValidateToken_Expired(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.JWTExpiry = -1 * time.Minute
	s := NewAuthService(cfg)

	token, err := s.GenerateToken(uuid.New(), NamespaceAdmin)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := s.ValidateToken(token, NamespaceAdmin); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidateToken_Malformed(t *testing.T) {
	t.Parallel()

	s := NewAuthService(testConfig())

	for _, tok := range []string{"", "not.a.jwt", "aaaa.bbbb.cccc"} {
		if _, err := s.ValidateToken(tok, NamespaceAdmin); !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("token %q: expected ErrTokenInvalid, got %v", tok, err)
		}
	}
}
