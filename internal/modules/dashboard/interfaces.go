package dashboard

import (
	"context"
	"time"

	"petemporio/internal/domain"
)

type AppointmentRepository interface {
	CountStartingBetween(ctx context.Context, from, to time.Time) (int64, error)
	Recent(ctx context.Context, limit int) ([]domain.Appointment, error)
}

type UserRepository interface {
	CountCustomersCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
	RecentCustomers(ctx context.Context, limit int) ([]domain.User, error)
}

type InvoiceRepository interface {
	SumPaidBetween(ctx context.Context, from, to time.Time) (float64, error)
}
