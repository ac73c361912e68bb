package invoice

import (
	"context"
	"time"

	"petemporio/internal/domain"
	"petemporio/internal/repository"
)

type InvoiceRepository interface {
	CreateWithAppointments(ctx context.Context, inv *domain.Invoice, appointmentIDs []int64) error
	GetByID(ctx context.Context, id int64) (*domain.Invoice, error)
	Find(ctx context.Context, f repository.InvoiceFilter) ([]domain.Invoice, int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.InvoiceStatus, paidAt *time.Time) error
}

type AppointmentRepository interface {
	GetAllByIDs(ctx context.Context, ids []int64) ([]domain.Appointment, error)
}

type UserRepository interface {
	GetCustomer(ctx context.Context, id int64) (*domain.User, error)
}
