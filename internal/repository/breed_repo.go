package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"petemporio/internal/domain"
)

type BreedRepository struct {
	db *gorm.DB
}

func NewBreedRepository(db *gorm.DB) *BreedRepository {
	return &BreedRepository{db: db}
}

func (r *BreedRepository) Create(ctx context.Context, b *domain.Breed) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BreedRepository) GetByID(ctx context.Context, id int64) (*domain.Breed, error) {
	var b domain.Breed
	tx := r.db.WithContext(ctx).First(&b, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &b, nil
}

func (r *BreedRepository) List(ctx context.Context) ([]domain.Breed, error) {
	var out []domain.Breed
	tx := r.db.WithContext(ctx).Order("name ASC").Find(&out)
	return out, tx.Error
}

func (r *BreedRepository) Update(ctx context.Context, b *domain.Breed) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BreedRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Breed{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
