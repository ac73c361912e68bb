package pets

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"petemporio/internal/domain"
)

type MockPetRepository struct {
	mock.Mock
}

func (m *MockPetRepository) Create(ctx context.Context, p *domain.Pet) error {
	args := m.Called(ctx, p)
	if p != nil {
		p.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockPetRepository) GetActive(ctx context.Context, id int64) (*domain.Pet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pet), args.Error(1)
}

func (m *MockPetRepository) ByOwner(ctx context.Context, ownerID int64) ([]domain.Pet, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Pet), args.Error(1)
}

func (m *MockPetRepository) Update(ctx context.Context, p *domain.Pet) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPetRepository) Deactivate(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBreedRepository struct {
	mock.Mock
}

func (m *MockBreedRepository) Create(ctx context.Context, b *domain.Breed) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBreedRepository) GetByID(ctx context.Context, id int64) (*domain.Breed, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Breed), args.Error(1)
}

func (m *MockBreedRepository) List(ctx context.Context) ([]domain.Breed, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Breed), args.Error(1)
}

func (m *MockBreedRepository) Update(ctx context.Context, b *domain.Breed) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBreedRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetCustomer(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var (
	petOwner = domain.Principal{UserID: 42, Role: domain.RoleCustomer}
	adminP   = domain.Principal{UserID: 1, Role: domain.RoleAdmin}
)

func TestCreatePet_CustomerOwnsIt(t *testing.T) {
	pets := new(MockPetRepository)
	pets.On("Create", mock.Anything, mock.Anything).Return(nil)

	s := NewService(pets, new(MockBreedRepository), new(MockUserRepository))
	p, err := s.Create(context.Background(), petOwner, CreatePetRequest{Name: "Rex"})

	assert.NoError(t, err)
	assert.Equal(t, petOwner.UserID, p.OwnerID)
	assert.True(t, p.Active)
}

func TestCreatePet_CustomerCannotSetOwner(t *testing.T) {
	s := NewService(new(MockPetRepository), new(MockBreedRepository), new(MockUserRepository))

	other := int64(777)
	_, err := s.Create(context.Background(), petOwner, CreatePetRequest{Name: "Rex", OwnerID: &other})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreatePet_AdminForCustomer(t *testing.T) {
	pets := new(MockPetRepository)
	users := new(MockUserRepository)

	users.On("GetCustomer", mock.Anything, int64(42)).Return(&domain.User{ID: 42, Role: domain.RoleCustomer}, nil)
	pets.On("Create", mock.Anything, mock.Anything).Return(nil)

	s := NewService(pets, new(MockBreedRepository), users)
	target := int64(42)
	p, err := s.Create(context.Background(), adminP, CreatePetRequest{Name: "Rex", OwnerID: &target})

	assert.NoError(t, err)
	assert.Equal(t, int64(42), p.OwnerID)
}

func TestCreatePet_UnknownBreed(t *testing.T) {
	breeds := new(MockBreedRepository)
	breeds.On("GetByID", mock.Anything, int64(404)).Return(nil, nil)

	s := NewService(new(MockPetRepository), breeds, new(MockUserRepository))
	bad := int64(404)
	_, err := s.Create(context.Background(), petOwner, CreatePetRequest{Name: "Rex", BreedID: &bad})

	assert.ErrorIs(t, err, ErrBreedNotFound)
}

func TestGetPet_ForeignOwner(t *testing.T) {
	pets := new(MockPetRepository)
	pets.On("GetActive", mock.Anything, int64(3)).Return(&domain.Pet{ID: 3, OwnerID: 777, Active: true}, nil)

	s := NewService(pets, new(MockBreedRepository), new(MockUserRepository))
	_, err := s.Get(context.Background(), petOwner, 3)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestGetPet_AdminSeesAny(t *testing.T) {
	pets := new(MockPetRepository)
	pets.On("GetActive", mock.Anything, int64(3)).Return(&domain.Pet{ID: 3, OwnerID: 777, Active: true}, nil)

	s := NewService(pets, new(MockBreedRepository), new(MockUserRepository))
	p, err := s.Get(context.Background(), adminP, 3)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), p.ID)
}

func TestDeactivatePet_OwnerOnly(t *testing.T) {
	pets := new(MockPetRepository)
	pets.On("GetActive", mock.Anything, int64(3)).Return(&domain.Pet{ID: 3, OwnerID: 777, Active: true}, nil)

	s := NewService(pets, new(MockBreedRepository), new(MockUserRepository))

	assert.ErrorIs(t, s.Deactivate(context.Background(), petOwner, 3), ErrForbidden)
	pets.AssertNotCalled(t, "Deactivate")
}

func TestCreatePet_InvalidBirthDate(t *testing.T) {
	s := NewService(new(MockPetRepository), new(MockBreedRepository), new(MockUserRepository))

	bad := "31-12-2020"
	_, err := s.Create(context.Background(), petOwner, CreatePetRequest{Name: "Rex", BirthDate: &bad})

	assert.ErrorIs(t, err, ErrValidation)
}
