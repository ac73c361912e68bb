package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"petemporio/internal/domain"
)

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	args := m.Called(ctx, rv)
	if rv != nil {
		rv.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockReviewRepository) ExistsForAppointment(ctx context.Context, appointmentID int64) (bool, error) {
	args := m.Called(ctx, appointmentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewRepository) ByService(ctx context.Context, serviceID int64) ([]domain.Review, error) {
	args := m.Called(ctx, serviceID)
	return args.Get(0).([]domain.Review), args.Error(1)
}

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Appointment), args.Error(1)
}

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

var owner = domain.Principal{UserID: 42, Role: domain.RoleCustomer}

func completedAppt(ownerID int64) *domain.Appointment {
	return &domain.Appointment{
		ID:     11,
		Status: domain.AppointmentCompleted,
		Pet:    &domain.Pet{ID: 3, OwnerID: ownerID},
	}
}

func TestCreateReview_Success(t *testing.T) {
	reviews := new(MockReviewRepository)
	appts := new(MockAppointmentRepository)

	appts.On("GetByID", mock.Anything, int64(11)).Return(completedAppt(owner.UserID), nil)
	reviews.On("ExistsForAppointment", mock.Anything, int64(11)).Return(false, nil)
	reviews.On("Create", mock.Anything, mock.Anything).Return(nil)

	s := NewService(reviews, appts, new(MockServiceRepository))
	rv, err := s.Create(context.Background(), owner, CreateReviewRequest{AppointmentID: 11, Rating: 5, Comment: "Great"})

	assert.NoError(t, err)
	assert.Equal(t, int64(999), rv.ID)
	assert.Equal(t, 5, rv.Rating)
}

func TestCreateReview_OnlyOwner(t *testing.T) {
	reviews := new(MockReviewRepository)
	appts := new(MockAppointmentRepository)

	appts.On("GetByID", mock.Anything, int64(11)).Return(completedAppt(777), nil)

	s := NewService(reviews, appts, new(MockServiceRepository))
	_, err := s.Create(context.Background(), owner, CreateReviewRequest{AppointmentID: 11, Rating: 4})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreateReview_RequiresCompletion(t *testing.T) {
	reviews := new(MockReviewRepository)
	appts := new(MockAppointmentRepository)

	a := completedAppt(owner.UserID)
	a.Status = domain.AppointmentScheduled
	appts.On("GetByID", mock.Anything, int64(11)).Return(a, nil)

	s := NewService(reviews, appts, new(MockServiceRepository))
	_, err := s.Create(context.Background(), owner, CreateReviewRequest{AppointmentID: 11, Rating: 4})

	assert.ErrorIs(t, err, ErrNotReviewable)
}

func TestCreateReview_OncePerAppointment(t *testing.T) {
	reviews := new(MockReviewRepository)
	appts := new(MockAppointmentRepository)

	appts.On("GetByID", mock.Anything, int64(11)).Return(completedAppt(owner.UserID), nil)
	reviews.On("ExistsForAppointment", mock.Anything, int64(11)).Return(true, nil)

	s := NewService(reviews, appts, new(MockServiceRepository))
	_, err := s.Create(context.Background(), owner, CreateReviewRequest{AppointmentID: 11, Rating: 4})

	assert.ErrorIs(t, err, ErrAlreadyReviewed)
	reviews.AssertNotCalled(t, "Create")
}

func TestCreateReview_RatingBounds(t *testing.T) {
	s := NewService(new(MockReviewRepository), new(MockAppointmentRepository), new(MockServiceRepository))

	_, err := s.Create(context.Background(), owner, CreateReviewRequest{AppointmentID: 11, Rating: 6})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.Create(context.Background(), owner, CreateReviewRequest{AppointmentID: 11, Rating: 0})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestByService_UnknownService(t *testing.T) {
	svcs := new(MockServiceRepository)
	svcs.On("GetByID", mock.Anything, int64(404)).Return(nil, nil)

	s := NewService(new(MockReviewRepository), new(MockAppointmentRepository), svcs)
	_, err := s.ByService(context.Background(), 404)

	assert.ErrorIs(t, err, ErrServiceNotFound)
}
