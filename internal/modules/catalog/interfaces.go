package catalog

import (
	"context"

	"petemporio/internal/domain"
)

type ServiceRepository interface {
	Create(ctx context.Context, s *domain.Service) error
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	GetWithQualifiedEmployees(ctx context.Context, id int64) (*domain.Service, error)
	List(ctx context.Context, activeOnly bool) ([]domain.Service, error)
	Update(ctx context.Context, s *domain.Service) error
	SetActive(ctx context.Context, id int64, active bool) error
	ReplaceQualifiedEmployees(ctx context.Context, serviceID int64, employees []domain.User) error
}

type UserRepository interface {
	GetEmployee(ctx context.Context, id int64) (*domain.User, error)
}
