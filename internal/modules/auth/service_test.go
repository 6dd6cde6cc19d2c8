package auth

import (
	"context"
	"testing"

	"hireme/internal/domain"
	"hireme/internal/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Mock User Repository implementing the interface
type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if args.Error(0) == nil {
		u.ID = 77
	}
	return args.Error(0)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type mockJWT struct {
	mock.Mock
}

func (m *mockJWT) GenerateToken(userID int64, anonymous bool) (string, error) {
	args := m.Called(userID, anonymous)
	return args.String(0), args.Error(1)
}

func TestRegister_Success(t *testing.T) {
	repo := new(mockUserRepo)
	jwt := new(mockJWT)
	svc := NewService(repo, jwt)
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "ann@example.com").Return(nil, nil)
	repo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return *u.Email == "ann@example.com" &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password123")) == nil
	})).Return(nil)
	jwt.On("GenerateToken", int64(77), false).Return("token", nil)

	res, err := svc.Register(ctx, RegisterRequest{Email: " Ann@Example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "token", res.AccessToken)
	assert.Equal(t, "Bearer", res.TokenType)
	repo.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewService(repo, new(mockJWT))
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "ann@example.com").Return(&domain.User{ID: 1}, nil)

	_, err := svc.Register(ctx, RegisterRequest{Email: "ann@example.com", Password: "password123"})
	assert.ErrorIs(t, err, apperr.ErrAlreadyExists)
}

func TestRegister_RaceOnUniqueIndex(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewService(repo, new(mockJWT))
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "ann@example.com").Return(nil, nil)
	repo.On("Create", ctx, mock.Anything).Return(gorm.ErrDuplicatedKey)

	_, err := svc.Register(ctx, RegisterRequest{Email: "ann@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	email := "ann@example.com"
	user := &domain.User{ID: 3, Email: &email, PasswordHash: string(hash)}
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		repo := new(mockUserRepo)
		jwt := new(mockJWT)
		repo.On("GetByEmail", ctx, email).Return(user, nil)
		jwt.On("GenerateToken", int64(3), false).Return("tok", nil)

		res, err := NewService(repo, jwt).Login(ctx, LoginRequest{Email: email, Password: "correct-horse"})
		require.NoError(t, err)
		assert.Equal(t, "tok", res.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("GetByEmail", ctx, email).Return(user, nil)

		_, err := NewService(repo, new(mockJWT)).Login(ctx, LoginRequest{Email: email, Password: "nope"})
		assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("GetByEmail", ctx, "who@example.com").Return(nil, nil)

		_, err := NewService(repo, new(mockJWT)).Login(ctx, LoginRequest{Email: "who@example.com", Password: "x"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestSignInAnonymous(t *testing.T) {
	repo := new(mockUserRepo)
	jwt := new(mockJWT)
	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.IsAnonymous && u.Email == nil
	})).Return(nil)
	jwt.On("GenerateToken", int64(77), true).Return("anon-token", nil)

	res, err := NewService(repo, jwt).SignInAnonymous(ctx)
	require.NoError(t, err)
	assert.True(t, res.User.IsAnonymous)
	assert.Equal(t, "anon-token", res.AccessToken)
}

func TestGetMe(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewService(repo, new(mockJWT))
	ctx := context.Background()

	_, err := svc.GetMe(ctx, 0)
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)

	repo.On("GetByID", ctx, int64(9)).Return(nil, nil)
	_, err = svc.GetMe(ctx, 9)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
