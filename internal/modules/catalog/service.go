package catalog

import (
	"context"

	"petemporio/internal/domain"
)

type Service struct {
	services ServiceRepository
	users    UserRepository
}

func NewService(services ServiceRepository, users UserRepository) *Service {
	return &Service{services: services, users: users}
}

func (s *Service) Create(ctx context.Context, req CreateServiceRequest) (*domain.Service, error) {
	svc := &domain.Service{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Active:          true,
		Featured:        req.Featured,
		ImageURL:        req.ImageURL,
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	return svc, nil
}

// List returns the catalog. Customers only see active services; staff and
// admin see everything.
func (s *Service) List(ctx context.Context, p domain.Principal) ([]domain.Service, error) {
	activeOnly := !p.IsStaff() && !p.IsAdmin()
	return s.services.List(ctx, activeOnly)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateServiceRequest) (*domain.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, ErrValidation
		}
		svc.Price = *req.Price
	}
	if req.DurationMinutes != nil {
		if *req.DurationMinutes <= 0 {
			return nil, ErrValidation
		}
		svc.DurationMinutes = *req.DurationMinutes
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}
	if req.Featured != nil {
		svc.Featured = *req.Featured
	}
	if req.ImageURL != nil {
		svc.ImageURL = *req.ImageURL
	}

	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// Deactivate removes a service from the bookable catalog without touching
// its appointment history.
func (s *Service) Deactivate(ctx context.Context, id int64) error {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if svc == nil {
		return ErrServiceNotFound
	}
	return s.services.SetActive(ctx, id, false)
}

// SetQualifiedEmployees replaces the set of employees allowed to perform the
// service.
func (s *Service) SetQualifiedEmployees(ctx context.Context, serviceID int64, employeeIDs []int64) (*domain.Service, error) {
	svc, err := s.services.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	employees := make([]domain.User, 0, len(employeeIDs))
	for _, id := range employeeIDs {
		e, err := s.users.GetEmployee(ctx, id)
		if err != nil {
			return nil, err
		}
		if e == nil {
			return nil, ErrEmployeeNotFound
		}
		employees = append(employees, *e)
	}

	if err := s.services.ReplaceQualifiedEmployees(ctx, serviceID, employees); err != nil {
		return nil, err
	}
	return s.services.GetWithQualifiedEmployees(ctx, serviceID)
}

// QualifiedEmployees lists who can perform the service.
func (s *Service) QualifiedEmployees(ctx context.Context, serviceID int64) ([]domain.User, error) {
	svc, err := s.services.GetWithQualifiedEmployees(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	for i := range svc.QualifiedEmployees {
		svc.QualifiedEmployees[i].PasswordHash = ""
	}
	return svc.QualifiedEmployees, nil
}
