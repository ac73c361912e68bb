package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"petemporio/internal/domain"
)

type PetRepository struct {
	db *gorm.DB
}

func NewPetRepository(db *gorm.DB) *PetRepository {
	return &PetRepository{db: db}
}

func (r *PetRepository) Create(ctx context.Context, p *domain.Pet) error {
	return r.db.WithContext(ctx).Omit("Owner", "Breed").Create(p).Error
}

// GetActive returns the pet only when its active flag is set; deactivated
// pets are invisible to every caller.
func (r *PetRepository) GetActive(ctx context.Context, id int64) (*domain.Pet, error) {
	var p domain.Pet
	tx := r.db.WithContext(ctx).
		Preload("Breed").
		Where("active = ?", true).
		First(&p, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &p, nil
}

func (r *PetRepository) ByOwner(ctx context.Context, ownerID int64) ([]domain.Pet, error) {
	var out []domain.Pet
	tx := r.db.WithContext(ctx).
		Preload("Breed").
		Where("owner_id = ? AND active = ?", ownerID, true).
		Order("name ASC").
		Find(&out)
	return out, tx.Error
}

func (r *PetRepository) IDsByOwner(ctx context.Context, ownerID int64) ([]int64, error) {
	var ids []int64
	tx := r.db.WithContext(ctx).
		Model(&domain.Pet{}).
		Where("owner_id = ? AND active = ?", ownerID, true).
		Pluck("id", &ids)
	return ids, tx.Error
}

func (r *PetRepository) Update(ctx context.Context, p *domain.Pet) error {
	return r.db.WithContext(ctx).Omit("Owner", "Breed").Save(p).Error
}

// Deactivate soft-deletes the pet. History (appointments, invoices) keeps
// referencing it.
func (r *PetRepository) Deactivate(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Pet{}).
		Where("id = ? AND active = ?", id, true).
		Update("active", false)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
