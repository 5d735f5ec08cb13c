package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/coursebay/coursebay-backend/internal/model"
	"github.com/coursebay/coursebay-backend/internal/repository"
)

// Account errors.
var (
	// ErrEmailTaken is returned when the email is already registered in
	// the same collection.
	ErrEmailTaken = errors.New("email already in use")
)

// AdminStore is the admin persistence surface the account service needs.
type AdminStore interface {
	GetByEmail(ctx context.Context, email string) (*model.Admin, error)
	Create(ctx context.Context, a *model.Admin) error
}

// UserStore is the user persistence surface the account service needs.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, u *model.User) error
}

// AccountService handles admin and user registration and sign-in.
type AccountService struct {
	admins AdminStore
	users  UserStore
	auth   *AuthService
	log    zerolog.Logger
}

// NewAccountService creates a new AccountService.
func NewAccountService(admins AdminStore, users UserStore, auth *AuthService, log zerolog.Logger) *AccountService {
	return &AccountService{
		admins: admins,
		users:  users,
		auth:   auth,
		log:    log.With().Str("component", "account_service").Logger(),
	}
}

// SignupAdmin registers a new admin account. The email pre-check is not
// atomic with the insert; the unique constraint catches the race and both
// paths surface as ErrEmailTaken.
func (s *AccountService) SignupAdmin(ctx context.Context, req model.SignupRequest) (*model.Admin, error) {
	if _, err := s.admins.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	admin := &model.Admin{Name: req.Name, Email: req.Email, PasswordHash: hash}
	if err := s.admins.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.log.Info().Str("admin_id", admin.ID.String()).Msg("admin registered")
	return admin, nil
}

// SigninAdmin verifies admin credentials and issues an admin-namespace token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AccountService) SigninAdmin(ctx context.Context, req model.SigninRequest) (*model.Admin, string, error) {
	admin, err := s.admins.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := s.auth.CheckPassword(admin.PasswordHash, req.Password); err != nil {
		s.log.Debug().Str("email", req.Email).Msg("admin signin rejected")
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.auth.GenerateToken(admin.ID, NamespaceAdmin)
	if err != nil {
		return nil, "", err
	}
	return admin, token, nil
}

// SignupUser registers a new user account. Same race handling as SignupAdmin.
func (s *AccountService) SignupUser(ctx context.Context, req model.SignupRequest) (*model.User, error) {
	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{Name: req.Name, Email: req.Email, PasswordHash: hash}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID.String()).Msg("user registered")
	return user, nil
}

// SigninUser verifies user credentials and issues a user-namespace token.
func (s *AccountService) SigninUser(ctx context.Context, req model.SigninRequest) (*model.User, string, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := s.auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		s.log.Debug().Str("email", req.Email).Msg("user signin rejected")
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.auth.GenerateToken(user.ID, NamespaceUser)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
