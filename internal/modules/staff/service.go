package staff

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"petemporio/internal/domain"
)

type Service struct {
	users UserRepository
}

func NewService(users UserRepository) *Service {
	return &Service{users: users}
}

func (s *Service) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*domain.User, error) {
	existing, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &domain.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Phone:        req.Phone,
		Document:     req.Document,
		Role:         domain.RoleEmployee,
		JobTitle:     req.JobTitle,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	u.PasswordHash = ""
	return u, nil
}

func (s *Service) ListEmployees(ctx context.Context) ([]domain.User, error) {
	out, err := s.users.ListByRole(ctx, domain.RoleEmployee)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].PasswordHash = ""
	}
	return out, nil
}

func (s *Service) ListCustomers(ctx context.Context) ([]domain.User, error) {
	out, err := s.users.ListByRole(ctx, domain.RoleCustomer)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].PasswordHash = ""
	}
	return out, nil
}

func (s *Service) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	u.PasswordHash = ""
	return u, nil
}

func (s *Service) UpdateEmployee(ctx context.Context, id int64, req UpdateEmployeeRequest) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil || u.Role != domain.RoleEmployee {
		return nil, ErrUserNotFound
	}
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Phone != nil {
		u.Phone = *req.Phone
	}
	if req.JobTitle != nil {
		u.JobTitle = *req.JobTitle
	}
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	u.PasswordHash = ""
	return u, nil
}

// SetLocked flips account access. A locked employee stops being offered for
// new appointments and a locked user cannot sign in.
func (s *Service) SetLocked(ctx context.Context, id int64, locked bool) error {
	err := s.users.SetLocked(ctx, id, locked)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	return err
}
