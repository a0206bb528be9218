package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"blog-cms/internal/domain"
	"blog-cms/internal/logger"
	"blog-cms/internal/metrics"
	"blog-cms/internal/repository"
	"blog-cms/internal/validator"
)

// Login results reported to metrics.
const (
	loginSuccess     = "success"
	loginInvalid     = "invalid_credentials"
	loginBadRequest  = "bad_request"
	loginServerError = "error"
)

// ErrInvalidToken is returned by ParseToken for a token that is malformed,
// expired or signed with another key.
var ErrInvalidToken = errors.New("invalid session token")

// Session is a signed-in author's token.
type Session struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expires_at"`
	Author    *domain.Author `json:"author"`
}

// sessionClaims is the JWT payload. The author id is carried in sub.
type sessionClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService issues and verifies session tokens.
type AuthService struct {
	authors   repository.AuthorRepository
	validator *validator.Validator
	secret    []byte
	ttl       time.Duration
	now       func() time.Time
}

// NewAuthService creates a new AuthService signing with secret.
func NewAuthService(authors repository.AuthorRepository, v *validator.Validator, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		authors:   authors,
		validator: v,
		secret:    []byte(secret),
		ttl:       ttl,
		now:       time.Now,
	}
}

// Login verifies creds and returns a new session. Unknown emails and wrong
// passwords both yield domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) (*Session, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if err := s.validator.ValidateCredentials(&creds); err != nil {
		metrics.ObserveLogin(loginBadRequest)
		return nil, err
	}

	author, err := s.authors.GetByEmail(ctx, creds.Email)
	if err != nil {
		metrics.ObserveLogin(loginServerError)
		return nil, err
	}
	if author == nil {
		metrics.ObserveLogin(loginInvalid)
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(author.PasswordHash), []byte(creds.Password)); err != nil {
		metrics.ObserveLogin(loginInvalid)
		logger.WarnContext(ctx, "Login rejected", "author_id", author.ID)
		return nil, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := s.IssueToken(author)
	if err != nil {
		metrics.ObserveLogin(loginServerError)
		return nil, err
	}

	metrics.ObserveLogin(loginSuccess)
	logger.InfoContext(ctx, "Author signed in", "author_id", author.ID, "role", author.Role)
	return &Session{Token: token, ExpiresAt: expiresAt, Author: author}, nil
}

// IssueToken signs a session token for author.
func (s *AuthService) IssueToken(author *domain.Author) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)

	claims := sessionClaims{
		Email: author.Email,
		Role:  string(author.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(author.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session: %w", err)
	}
	return token, expiresAt, nil
}

// ParseToken verifies token and returns the viewer it names. A verified
// token whose role claim is unknown still yields an authenticated viewer so
// that access checks can reject it as malformed.
func (s *AuthService) ParseToken(token string) (domain.Viewer, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return domain.Anonymous(), fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return domain.Anonymous(), fmt.Errorf("%w: subject %q", ErrInvalidToken, claims.Subject)
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		role = domain.Role(claims.Role)
	}
	return domain.Authenticated(id, role), nil
}

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
