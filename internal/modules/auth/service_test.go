package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"petemporio/internal/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

type MockResetTokenRepository struct {
	mock.Mock
}

func (m *MockResetTokenRepository) Save(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, token, expiresAt)
	return args.Error(0)
}

func (m *MockResetTokenRepository) Consume(ctx context.Context, token string, now time.Time) (int64, error) {
	args := m.Called(ctx, token, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockJWT struct {
	mock.Mock
}

func (m *MockJWT) GenerateToken(userID int64, role domain.Role) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(h)
}

func TestLogin_Success(t *testing.T) {
	users := new(MockUserRepository)
	resets := new(MockResetTokenRepository)
	j := new(MockJWT)

	u := &domain.User{ID: 42, Email: "ana@example.com", PasswordHash: hashOf(t, "secret123"), Role: domain.RoleCustomer}
	users.On("GetByEmail", mock.Anything, "ana@example.com").Return(u, nil)
	j.On("GenerateToken", int64(42), domain.RoleCustomer).Return("token-abc", nil)

	s := NewService(users, resets, j)
	res, err := s.Login(context.Background(), LoginRequest{Email: "ana@example.com", Password: "secret123"})

	assert.NoError(t, err)
	assert.Equal(t, "token-abc", res.AccessToken)
	assert.Empty(t, res.User.PasswordHash)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	u := &domain.User{ID: 42, PasswordHash: hashOf(t, "secret123")}
	users.On("GetByEmail", mock.Anything, "ana@example.com").Return(u, nil)

	s := NewService(users, new(MockResetTokenRepository), new(MockJWT))
	_, err := s.Login(context.Background(), LoginRequest{Email: "ana@example.com", Password: "wrong"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

	s := NewService(users, new(MockResetTokenRepository), new(MockJWT))
	_, err := s.Login(context.Background(), LoginRequest{Email: "nobody@example.com", Password: "whatever"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_LockedAccount(t *testing.T) {
	users := new(MockUserRepository)
	u := &domain.User{ID: 42, PasswordHash: hashOf(t, "secret123"), Locked: true}
	users.On("GetByEmail", mock.Anything, "ana@example.com").Return(u, nil)

	s := NewService(users, new(MockResetTokenRepository), new(MockJWT))
	_, err := s.Login(context.Background(), LoginRequest{Email: "ana@example.com", Password: "secret123"})

	assert.ErrorIs(t, err, ErrAccountLocked)
}

func TestRegister_CreatesCustomer(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	s := NewService(users, new(MockResetTokenRepository), new(MockJWT))
	u, err := s.Register(context.Background(), RegisterRequest{
		Name:     "New Customer",
		Email:    "new@example.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, u.Role)
	assert.Empty(t, u.PasswordHash)
	assert.Equal(t, int64(999), u.ID)
}

func TestRegister_EmailTaken(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "taken@example.com").Return(&domain.User{ID: 1}, nil)

	s := NewService(users, new(MockResetTokenRepository), new(MockJWT))
	_, err := s.Register(context.Background(), RegisterRequest{
		Name: "X", Email: "taken@example.com", Password: "secret123",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRequestPasswordReset_UnknownEmailIsSilent(t *testing.T) {
	users := new(MockUserRepository)
	resets := new(MockResetTokenRepository)
	users.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

	s := NewService(users, resets, new(MockJWT))
	err := s.RequestPasswordReset(context.Background(), "nobody@example.com")

	assert.NoError(t, err)
	resets.AssertNotCalled(t, "Save")
}

func TestRequestPasswordReset_SavesToken(t *testing.T) {
	users := new(MockUserRepository)
	resets := new(MockResetTokenRepository)
	users.On("GetByEmail", mock.Anything, "ana@example.com").Return(&domain.User{ID: 42}, nil)
	resets.On("Save", mock.Anything, int64(42), mock.Anything, mock.Anything).Return(nil)

	s := NewService(users, resets, new(MockJWT))
	err := s.RequestPasswordReset(context.Background(), "ana@example.com")

	assert.NoError(t, err)
	resets.AssertExpectations(t)
}

func TestResetPassword_InvalidToken(t *testing.T) {
	resets := new(MockResetTokenRepository)
	resets.On("Consume", mock.Anything, "bad-token", mock.Anything).Return(int64(0), nil)

	s := NewService(new(MockUserRepository), resets, new(MockJWT))
	err := s.ResetPassword(context.Background(), ResetPasswordRequest{Token: "bad-token", NewPassword: "secret123"})

	assert.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestResetPassword_Success(t *testing.T) {
	users := new(MockUserRepository)
	resets := new(MockResetTokenRepository)

	resets.On("Consume", mock.Anything, "good-token", mock.Anything).Return(int64(42), nil)
	u := &domain.User{ID: 42, PasswordHash: hashOf(t, "old")}
	users.On("GetByID", mock.Anything, int64(42)).Return(u, nil)
	users.On("Update", mock.Anything, mock.Anything).Return(nil)

	s := NewService(users, resets, new(MockJWT))
	err := s.ResetPassword(context.Background(), ResetPasswordRequest{Token: "good-token", NewPassword: "secret456"})

	assert.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret456")))
}
