// Package identity owns user accounts and session tokens.
package identity

import (
	"context"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mindscope-app/mindscope/internal/domain"
	"github.com/mindscope-app/mindscope/internal/repository"
)

// Service implements registration, login, and token verification over the
// users partition of the store. Failures surface to callers as a success
// flag, never as raw errors.
type Service struct {
	store     repository.Store
	jwtSecret []byte
	tokenTTL  time.Duration
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new identity service.
func NewService(store repository.Store, jwtSecret string, tokenTTL time.Duration, log *slog.Logger) *Service {
	return &Service{
		store:     store,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		log:       log,
		now:       time.Now,
	}
}

// Register creates an account and returns a session token. Returns ok=false
// when the email is already taken or the account cannot be created.
func (s *Service) Register(ctx context.Context, username, email, password string) (token string, user *domain.User, ok bool) {
	existing, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		s.log.Error("failed to look up user", "error", err)
		return "", nil, false
	}
	if existing != nil {
		return "", nil, false
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.log.Error("failed to hash password", "error", err)
		return "", nil, false
	}

	user = &domain.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		s.log.Error("failed to create user", "error", err)
		return "", nil, false
	}

	token, err = s.issueToken(user.ID)
	if err != nil {
		s.log.Error("failed to issue token", "error", err)
		return "", nil, false
	}
	return token, user, true
}

// Login verifies credentials and returns a session token.
func (s *Service) Login(ctx context.Context, email, password string) (token string, user *domain.User, ok bool) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		s.log.Error("failed to look up user", "error", err)
		return "", nil, false
	}
	if user == nil {
		return "", nil, false
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, false
	}

	token, err = s.issueToken(user.ID)
	if err != nil {
		s.log.Error("failed to issue token", "error", err)
		return "", nil, false
	}
	return token, user, true
}

// UserFromToken resolves the user carried by a session token. Returns nil
// for invalid, expired, or unknown-subject tokens.
func (s *Service) UserFromToken(ctx context.Context, tokenStr string) *domain.User {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return nil
	}

	user, err := s.store.GetUser(ctx, claims.Subject)
	if err != nil {
		s.log.Error("failed to load user for token", "error", err)
		return nil
	}
	return user
}

func (s *Service) issueToken(userID string) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}
