package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"petemporio/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	u.Email = strings.TrimSpace(strings.ToLower(u.Email))
	return r.db.WithContext(ctx).Omit("SkilledServices").Create(u).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	tx := r.db.WithContext(ctx).First(&u, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	tx := r.db.WithContext(ctx).
		Where("email = ?", strings.TrimSpace(strings.ToLower(email))).
		First(&u)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &u, nil
}

// GetEmployee loads a user and returns nil when it does not exist or is not
// an employee.
func (r *UserRepository) GetEmployee(ctx context.Context, id int64) (*domain.User, error) {
	u, err := r.GetByID(ctx, id)
	if err != nil || u == nil {
		return u, err
	}
	if u.Role != domain.RoleEmployee {
		return nil, nil
	}
	return u, nil
}

// GetCustomer loads a user and returns nil when it does not exist or is not
// a customer.
func (r *UserRepository) GetCustomer(ctx context.Context, id int64) (*domain.User, error) {
	u, err := r.GetByID(ctx, id)
	if err != nil || u == nil {
		return u, err
	}
	if u.Role != domain.RoleCustomer {
		return nil, nil
	}
	return u, nil
}

func (r *UserRepository) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	var out []domain.User
	tx := r.db.WithContext(ctx).
		Where("role = ?", string(role)).
		Order("name ASC").
		Find(&out)
	return out, tx.Error
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Omit("SkilledServices").Save(u).Error
}

func (r *UserRepository) SetLocked(ctx context.Context, id int64, locked bool) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", id).
		Update("locked", locked)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *UserRepository) CountCustomersCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("role = ?", string(domain.RoleCustomer)).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&cnt)
	return cnt, tx.Error
}

func (r *UserRepository) RecentCustomers(ctx context.Context, limit int) ([]domain.User, error) {
	var out []domain.User
	tx := r.db.WithContext(ctx).
		Where("role = ?", string(domain.RoleCustomer)).
		Order("created_at DESC").
		Limit(limit).
		Find(&out)
	return out, tx.Error
}
