// Package services contains server-side business logic. This file implements
// UserService, which handles registration, credential verification, and
// issuing/verifying session tokens.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/syp-project/authd/internal/common"
	"github.com/syp-project/authd/internal/server/auth"
	"github.com/syp-project/authd/internal/server/config"
	"github.com/syp-project/authd/internal/server/models"
	usersrepo "github.com/syp-project/authd/internal/server/repositories/users"
	"golang.org/x/crypto/bcrypt"
)

// IdentityView is the plain identity returned alongside a token at login.
type IdentityView struct {
	Email    string
	FullName string
}

// LoginResult bundles a freshly issued session token with the identity it
// asserts.
type LoginResult struct {
	Token string
	User  IdentityView
}

// UserService provides authentication-related operations:
// - Register: validate input and create principals
// - Login: verify credentials and mint a session token
// - VerifyToken: check a presented token and return its claims
//
// The service holds no state of its own beyond configuration; all principal
// state lives in the repository, and session state lives in the token itself.
type UserService struct {
	repo                  usersrepo.Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
	passwordHashCost      int
}

// NewUserService constructs a UserService over the given credential store.
func NewUserService(repo usersrepo.Repository, cfg *config.Config) *UserService {
	return &UserService{
		repo:                  repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
		passwordHashCost:      cfg.PasswordHashCost,
	}
}

// Register creates a new principal. All three fields are required; the first
// empty one, checked in order fullName, email, password, is reported via
// *common.MissingFieldError. A taken email yields common.ErrorEmailTaken.
// Registration does not issue a token.
func (s *UserService) Register(ctx context.Context, fullName, email, password string) error {
	for _, f := range []struct {
		name, value string
	}{
		{"fullName", fullName},
		{"email", email},
		{"password", password},
	} {
		if f.value == "" {
			return &common.MissingFieldError{Field: f.name}
		}
	}

	// The hash is computed before touching the store, so a slow hash never
	// delays unrelated requests behind the store's lock.
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.passwordHashCost)
	if err != nil {
		return common.ErrorInternal
	}

	user := &models.User{
		Email:        email,
		FullName:     fullName,
		PasswordHash: hash,
	}

	if _, err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return common.ErrorEmailTaken
		}
		return common.ErrorInternal
	}

	return nil
}

// Login verifies the credentials and, on success, returns a signed session
// token plus the asserted identity. Unknown email and wrong password both
// fail with common.ErrorInvalidCredentials; the store's answer is never
// reflected in the error.
func (s *UserService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		return nil, common.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, common.ErrorInvalidCredentials
	}

	token, err := auth.GenerateToken(user.Email, user.FullName, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &LoginResult{
		Token: token,
		User:  IdentityView{Email: user.Email, FullName: user.FullName},
	}, nil
}

// VerifyToken checks a presented session token and returns the claims it
// asserts. It is a pure function of the token and the signing secret; no
// store is consulted.
func (s *UserService) VerifyToken(tokenString string) (*auth.Claims, error) {
	return auth.ParseClaims(tokenString, s.jwtSecret)
}
