package review

import (
	"context"

	"petemporio/internal/domain"
)

type ReviewRepository interface {
	Create(ctx context.Context, rv *domain.Review) error
	ExistsForAppointment(ctx context.Context, appointmentID int64) (bool, error)
	ByService(ctx context.Context, serviceID int64) ([]domain.Review, error)
}

type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
}

type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}
