package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"petemporio/internal/domain"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	return r.db.WithContext(ctx).Omit("QualifiedEmployees").Create(s).Error
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	var s domain.Service
	tx := r.db.WithContext(ctx).First(&s, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &s, nil
}

// GetWithQualifiedEmployees eager-loads the qualification set so the slot
// search never goes back to the database per employee.
func (r *ServiceRepository) GetWithQualifiedEmployees(ctx context.Context, id int64) (*domain.Service, error) {
	var s domain.Service
	tx := r.db.WithContext(ctx).
		Preload("QualifiedEmployees").
		First(&s, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &s, nil
}

func (r *ServiceRepository) List(ctx context.Context, activeOnly bool) ([]domain.Service, error) {
	q := r.db.WithContext(ctx).Model(&domain.Service{})
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	var out []domain.Service
	tx := q.Order("name ASC").Find(&out)
	return out, tx.Error
}

func (r *ServiceRepository) Update(ctx context.Context, s *domain.Service) error {
	return r.db.WithContext(ctx).Omit("QualifiedEmployees").Save(s).Error
}

func (r *ServiceRepository) SetActive(ctx context.Context, id int64, active bool) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Service{}).
		Where("id = ?", id).
		Update("active", active)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReplaceQualifiedEmployees swaps the service's qualification set with the
// given employees.
func (r *ServiceRepository) ReplaceQualifiedEmployees(ctx context.Context, serviceID int64, employees []domain.User) error {
	s := domain.Service{ID: serviceID}
	return r.db.WithContext(ctx).
		Model(&s).
		Association("QualifiedEmployees").
		Replace(employeePointers(employees))
}

func employeePointers(users []domain.User) []*domain.User {
	out := make([]*domain.User, 0, len(users))
	for i := range users {
		out = append(out, &users[i])
	}
	return out
}
