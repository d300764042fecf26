// internal/service/auth_service.go
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

	appErrors "github.com/Abubaker23alluhaibi/isbyanSystem/internal/errors"
	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/model"
	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/repository"
)

// Auth failure modes surfaced to the middleware and controllers.
var (
	ErrBadCredentials = errors.New("invalid username or password")
	ErrTokenMissing   = errors.New("authentication token not provided")
	ErrTokenExpired   = errors.New("authentication token expired")
	ErrTokenInvalid   = errors.New("invalid authentication token")
)

// AuthService checks credentials and issues/verifies HS256 bearer tokens.
type AuthService struct {
	UserRepo repository.UserRepositoryInterface
	Secret   string
	TokenTTL time.Duration
}

// Login matches the login string against username or email, checks the
// bcrypt hash, and returns a signed token plus the user record.
func (s *AuthService) Login(ctx context.Context, login, password string) (string, *model.User, error) {
	if strings.TrimSpace(login) == "" || password == "" {
		return "", nil, appErrors.NewValidation("username and password are required")
	}

	user, err := s.UserRepo.GetByUsernameOrEmail(ctx, login)
	if err != nil {
		return "", nil, appErrors.NewStoreUnavailable(err)
	}
	if user == nil {
		return "", nil, ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrBadCredentials
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// IssueToken signs an HS256 token for the user ID.
func (s *AuthService) IssueToken(userID int) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(userID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.TokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.Secret))
}

// VerifyToken parses and validates a bearer token and returns the user ID.
func (s *AuthService) VerifyToken(tokenString string) (int, error) {
	if tokenString == "" {
		return 0, ErrTokenMissing
	}
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		return []byte(s.Secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenInvalid
	}
	sub, err := token.Claims.GetSubject()
	if err != nil {
		return 0, ErrTokenInvalid
	}
	id, err := strconv.Atoi(sub)
	if err != nil {
		return 0, ErrTokenInvalid
	}
	return id, nil
}

// CurrentUser resolves a verified token to the user record.
func (s *AuthService) CurrentUser(ctx context.Context, tokenString string) (*model.User, error) {
	id, err := s.VerifyToken(tokenString)
	if err != nil {
		return nil, err
	}
	user, err := s.UserRepo.GetByID(ctx, id)
	if err != nil {
		return nil, appErrors.NewStoreUnavailable(err)
	}
	if user == nil {
		return nil, ErrTokenInvalid
	}
	return user, nil
}

// EnsureDefaultAdmin creates the default admin account when no user with
// username "admin" exists yet, mirroring first-run behavior of the legacy
// backend.
func (s *AuthService) EnsureDefaultAdmin(ctx context.Context) error {
	existing, err := s.UserRepo.GetByUsernameOrEmail(ctx, "admin")
	if err != nil {
		return fmt.Errorf("look up admin user: %w", err)
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash default admin password: %w", err)
	}
	admin := &model.User{
		Username: "admin",
		Email:    "admin@istbyan.com",
		Password: string(hash),
		Name:     "مدير النظام",
		Role:     model.RoleAdmin,
	}
	return s.UserRepo.Create(ctx, admin)
}
