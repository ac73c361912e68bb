package review

import (
	"context"

	"petemporio/internal/domain"
	"petemporio/internal/pkg/validator"
)

type Service struct {
	reviews      ReviewRepository
	appointments AppointmentRepository
	services     ServiceRepository
}

func NewService(reviews ReviewRepository, appointments AppointmentRepository, services ServiceRepository) *Service {
	return &Service{reviews: reviews, appointments: appointments, services: services}
}

// Create lets the pet's owner review a completed appointment once.
func (s *Service) Create(ctx context.Context, p domain.Principal, req CreateReviewRequest) (*domain.Review, error) {
	if !p.IsCustomer() {
		return nil, ErrForbidden
	}
	candidate := domain.Review{
		AppointmentID: req.AppointmentID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	}
	if violations := validator.Validate(candidate); violations != nil {
		return nil, ErrValidation
	}
	a, err := s.appointments.GetByID(ctx, req.AppointmentID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrAppointmentNotFound
	}
	if a.Pet == nil || a.Pet.OwnerID != p.UserID {
		return nil, ErrForbidden
	}
	if a.Status != domain.AppointmentCompleted {
		return nil, ErrNotReviewable
	}
	exists, err := s.reviews.ExistsForAppointment(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyReviewed
	}
	if err := s.reviews.Create(ctx, &candidate); err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (s *Service) ByService(ctx context.Context, serviceID int64) ([]domain.Review, error) {
	svc, err := s.services.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	return s.reviews.ByService(ctx, serviceID)
}
