package auth

import (
	"context"
	"strings"

	"hireme/internal/domain"
	"hireme/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash keeps Login timing similar for unknown emails.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("hireme-dummy-password"), bcrypt.DefaultCost)

// Service contains the business logic for authentication
type Service struct {
	users UserRepositoryInterface
	jwt   tokenIssuer
}

func NewService(users UserRepositoryInterface, jwt tokenIssuer) *Service {
	return &Service{users: users, jwt: jwt}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        &email,
		PasswordHash: hashedPassword,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}
	return s.issue(user)
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil || user.IsAnonymous {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(req.Password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issue(user)
}

// SignInAnonymous creates a guest identity with no credentials. The token is
// the only way back into the account.
func (s *Service) SignInAnonymous(ctx context.Context) (*AuthResult, error) {
	user := &domain.User{IsAnonymous: true}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return s.issue(user)
}

func (s *Service) GetMe(ctx context.Context, userID int64) (*domain.User, error) {
	if userID == 0 {
		return nil, ErrUnauthorized
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *Service) issue(user *domain.User) (*AuthResult, error) {
	token, err := s.jwt.GenerateToken(user.ID, user.IsAnonymous)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, AccessToken: token, TokenType: "Bearer"}, nil
}

func (s *Service) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
