package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/coursebay/coursebay-backend/internal/config"
)

// Common auth errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenRequired      = errors.New("token required")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrTokenExpired       = errors.New("token expired")
)

// TokenNamespace distinguishes admin vs user tokens. Each namespace signs
// with its own secret, so a token is never valid outside the namespace it
// was issued in.
type TokenNamespace string

const (
	NamespaceAdmin TokenNamespace = "admin"
	NamespaceUser  TokenNamespace = "user"
)

// Claims extends JWT standard claims with the issuing namespace.
type Claims struct {
	jwt.RegisteredClaims
	Namespace TokenNamespace `json:"namespace"`
}

// AuthService handles password hashing and namespace-scoped JWTs.
type AuthService struct {
	cfg *config.Config
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{cfg: cfg}
}

// HashPassword hashes a password with the configured bcrypt cost.
// Default cost is 10. Adjustable via BCRYPT_COST env.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	return string(hash), err
}

// CheckPassword compares a plaintext password against a bcrypt hash.
// A plain mismatch returns ErrInvalidCredentials; a malformed hash
// surfaces the bcrypt error unchanged.
func (s *AuthService) CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidCredentials
		}
		return err
	}
	return nil
}

// GenerateToken creates a JWT for the given subject in the given namespace,
// expiring after the configured lifetime (1 hour by default).
func (s *AuthService) GenerateToken(subjectID uuid.UUID, ns TokenNamespace) (string, error) {
	secret, err := s.secretFor(ns)
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   subjectID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiry)),
		},
		Namespace: ns,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and validates a JWT against the given namespace,
// returning the subject ID. Expired tokens yield ErrTokenExpired. Any other
// failure (bad signature, bad structure, or a token from the other
// namespace) yields ErrTokenInvalid.
func (s *AuthService) ValidateToken(tokenStr string, ns TokenNamespace) (uuid.UUID, error) {
	secret, err := s.secretFor(ns)
	if err != nil {
		return uuid.Nil, err
	}

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, ErrTokenExpired
		}
		return uuid.Nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return uuid.Nil, ErrTokenInvalid
	}

	// Distinct secrets already reject cross-namespace tokens; the claim
	// check guards against the two secrets being configured identically.
	if claims.Namespace != ns {
		return uuid.Nil, ErrTokenInvalid
	}

	subjectID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrTokenInvalid
	}
	return subjectID, nil
}

func (s *AuthService) secretFor(ns TokenNamespace) ([]byte, error) {
	switch ns {
	case NamespaceAdmin:
		return []byte(s.cfg.JWTSecretAdmin), nil
	case NamespaceUser:
		return []byte(s.cfg.JWTSecretUser), nil
	default:
		return nil, fmt.Errorf("unknown token namespace: %q", ns)
	}
}
