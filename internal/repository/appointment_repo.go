package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"petemporio/internal/domain"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) Create(ctx context.Context, a *domain.Appointment) error {
	return r.db.WithContext(ctx).Omit("Service", "Pet", "Employee").Create(a).Error
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	var a domain.Appointment
	tx := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Pet").
		Preload("Employee").
		First(&a, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &a, nil
}

// ForEmployeesInRange bulk-loads every appointment for the given employees
// whose [start, end) interval intersects [from, to), skipping the excluded
// statuses. One query for the whole candidate set, never one per employee.
func (r *AppointmentRepository) ForEmployeesInRange(ctx context.Context, employeeIDs []int64, from, to time.Time, excluded []domain.AppointmentStatus) ([]domain.Appointment, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}
	var out []domain.Appointment
	tx := r.db.WithContext(ctx).
		Where("employee_id IN ?", employeeIDs).
		Where("start_time < ? AND end_time > ?", to, from).
		Where("status NOT IN ?", statusStrings(excluded)).
		Order("start_time ASC").
		Find(&out)
	return out, tx.Error
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.Appointment{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}

type AppointmentFilter struct {
	MinDate    *time.Time
	MaxDate    *time.Time
	EmployeeID *int64
	Status     *domain.AppointmentStatus
	PetIDs     []int64
	Page       int
	Size       int
}

// Find returns a page of appointments matching the filter, newest first,
// together with the total match count.
func (r *AppointmentRepository) Find(ctx context.Context, f AppointmentFilter) ([]domain.Appointment, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Appointment{})
	if f.MinDate != nil {
		q = q.Where("start_time >= ?", *f.MinDate)
	}
	if f.MaxDate != nil {
		q = q.Where("start_time < ?", *f.MaxDate)
	}
	if f.EmployeeID != nil {
		q = q.Where("employee_id = ?", *f.EmployeeID)
	}
	if f.Status != nil {
		q = q.Where("status = ?", string(*f.Status))
	}
	if f.PetIDs != nil {
		if len(f.PetIDs) == 0 {
			return []domain.Appointment{}, 0, nil
		}
		q = q.Where("pet_id IN ?", f.PetIDs)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Size <= 0 {
		f.Size = 20
	}
	if f.Page < 0 {
		f.Page = 0
	}

	var out []domain.Appointment
	tx := q.
		Preload("Service").
		Preload("Pet").
		Preload("Pet.Owner").
		Preload("Employee").
		Order("start_time DESC").
		Limit(f.Size).
		Offset(f.Page * f.Size).
		Find(&out)
	return out, total, tx.Error
}

func (r *AppointmentRepository) UpcomingForPets(ctx context.Context, petIDs []int64, after time.Time, statuses []domain.AppointmentStatus) ([]domain.Appointment, error) {
	if len(petIDs) == 0 {
		return nil, nil
	}
	var out []domain.Appointment
	tx := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Pet").
		Preload("Employee").
		Where("pet_id IN ?", petIDs).
		Where("start_time > ?", after).
		Where("status IN ?", statusStrings(statuses)).
		Order("start_time ASC").
		Find(&out)
	return out, tx.Error
}

// BillableByCustomer returns the customer's completed appointments not yet
// attached to an invoice, oldest first.
func (r *AppointmentRepository) BillableByCustomer(ctx context.Context, customerID int64) ([]domain.Appointment, error) {
	var out []domain.Appointment
	tx := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Pet").
		Joins("JOIN pets ON pets.id = appointments.pet_id").
		Where("pets.owner_id = ?", customerID).
		Where("appointments.status = ?", string(domain.AppointmentCompleted)).
		Where("appointments.invoice_id IS NULL").
		Order("appointments.start_time ASC").
		Find(&out)
	return out, tx.Error
}

func (r *AppointmentRepository) GetAllByIDs(ctx context.Context, ids []int64) ([]domain.Appointment, error) {
	var out []domain.Appointment
	tx := r.db.WithContext(ctx).
		Preload("Pet").
		Where("id IN ?", ids).
		Find(&out)
	return out, tx.Error
}

func (r *AppointmentRepository) CountStartingBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&domain.Appointment{}).
		Where("start_time >= ? AND start_time < ?", from, to).
		Count(&cnt)
	return cnt, tx.Error
}

func (r *AppointmentRepository) Recent(ctx context.Context, limit int) ([]domain.Appointment, error) {
	var out []domain.Appointment
	tx := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Pet").
		Order("start_time DESC").
		Limit(limit).
		Find(&out)
	return out, tx.Error
}

func statusStrings(ss []domain.AppointmentStatus) []string {
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		out = append(out, string(s))
	}
	return out
}
