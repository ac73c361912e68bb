package staff

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"petemporio/internal/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	u.ID = 999 // simulate DB insert
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

func (m *MockUserRepository) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) SetLocked(ctx context.Context, id int64, locked bool) error {
	args := m.Called(ctx, id, locked)
	return args.Error(0)
}

func TestCreateEmployee_HashesPasswordAndClearsHash(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users)

	users.On("GetByEmail", mock.Anything, "groomer@petemporio.com").Return(nil, nil)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		if u.Role != domain.RoleEmployee {
			return false
		}
		return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("staff123")) == nil
	})).Return(nil)

	u, err := svc.CreateEmployee(context.Background(), CreateEmployeeRequest{
		Email:    "groomer@petemporio.com",
		Password: "staff123",
		Name:     "Bianca",
		JobTitle: "Groomer",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(999), u.ID)
	assert.Empty(t, u.PasswordHash)
	users.AssertExpectations(t)
}

func TestCreateEmployee_EmailTaken(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users)

	users.On("GetByEmail", mock.Anything, "groomer@petemporio.com").
		Return(&domain.User{ID: 3, Email: "groomer@petemporio.com"}, nil)

	_, err := svc.CreateEmployee(context.Background(), CreateEmployeeRequest{
		Email:    "groomer@petemporio.com",
		Password: "staff123",
		Name:     "Bianca",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestListEmployees_ClearsHashes(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users)

	users.On("ListByRole", mock.Anything, domain.RoleEmployee).Return([]domain.User{
		{ID: 3, Name: "Bianca", PasswordHash: "secret"},
		{ID: 4, Name: "Rafael", PasswordHash: "secret"},
	}, nil)

	out, err := svc.ListEmployees(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	for _, u := range out {
		assert.Empty(t, u.PasswordHash)
	}
}

func TestUpdateEmployee_PatchesOnlyProvidedFields(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users)

	users.On("GetByID", mock.Anything, int64(3)).Return(&domain.User{
		ID:       3,
		Role:     domain.RoleEmployee,
		Name:     "Bianca",
		Phone:    "555-0101",
		JobTitle: "Groomer",
	}, nil)
	users.On("Update", mock.Anything, mock.Anything).Return(nil)

	title := "Senior Groomer"
	u, err := svc.UpdateEmployee(context.Background(), 3, UpdateEmployeeRequest{JobTitle: &title})
	require.NoError(t, err)
	assert.Equal(t, "Senior Groomer", u.JobTitle)
	assert.Equal(t, "Bianca", u.Name)
	assert.Equal(t, "555-0101", u.Phone)
}

func TestUpdateEmployee_RejectsNonEmployee(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users)

	users.On("GetByID", mock.Anything, int64(42)).Return(&domain.User{
		ID:   42,
		Role: domain.RoleCustomer,
	}, nil)

	_, err := svc.UpdateEmployee(context.Background(), 42, UpdateEmployeeRequest{})
	assert.ErrorIs(t, err, ErrUserNotFound)
	users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSetLocked_UnknownUser(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users)

	users.On("SetLocked", mock.Anything, int64(404), true).Return(gorm.ErrRecordNotFound)

	err := svc.SetLocked(context.Background(), 404, true)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
