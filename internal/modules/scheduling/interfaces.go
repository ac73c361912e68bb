package scheduling

import (
	"context"
	"time"

	"petemporio/internal/domain"
	"petemporio/internal/repository"
)

// AppointmentRepository is the persistence contract of the scheduling engine.
type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) error
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	ForEmployeesInRange(ctx context.Context, employeeIDs []int64, from, to time.Time, excluded []domain.AppointmentStatus) ([]domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	Find(ctx context.Context, f repository.AppointmentFilter) ([]domain.Appointment, int64, error)
	UpcomingForPets(ctx context.Context, petIDs []int64, after time.Time, statuses []domain.AppointmentStatus) ([]domain.Appointment, error)
	BillableByCustomer(ctx context.Context, customerID int64) ([]domain.Appointment, error)
}

type ServiceRepository interface {
	GetWithQualifiedEmployees(ctx context.Context, id int64) (*domain.Service, error)
}

type UserRepository interface {
	GetEmployee(ctx context.Context, id int64) (*domain.User, error)
	GetCustomer(ctx context.Context, id int64) (*domain.User, error)
}

type PetRepository interface {
	GetActive(ctx context.Context, id int64) (*domain.Pet, error)
	IDsByOwner(ctx context.Context, ownerID int64) ([]int64, error)
}

// BoardNotifier pushes appointment changes to the live staff schedule board.
// Optional; a nil notifier disables the feed.
type BoardNotifier interface {
	AppointmentCreated(a *domain.Appointment)
	AppointmentStatusChanged(a *domain.Appointment)
}
