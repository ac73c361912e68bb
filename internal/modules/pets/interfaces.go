package pets

import (
	"context"

	"petemporio/internal/domain"
)

type PetRepository interface {
	Create(ctx context.Context, p *domain.Pet) error
	GetActive(ctx context.Context, id int64) (*domain.Pet, error)
	ByOwner(ctx context.Context, ownerID int64) ([]domain.Pet, error)
	Update(ctx context.Context, p *domain.Pet) error
	Deactivate(ctx context.Context, id int64) error
}

type BreedRepository interface {
	Create(ctx context.Context, b *domain.Breed) error
	GetByID(ctx context.Context, id int64) (*domain.Breed, error)
	List(ctx context.Context) ([]domain.Breed, error)
	Update(ctx context.Context, b *domain.Breed) error
	Delete(ctx context.Context, id int64) error
}

type UserRepository interface {
	GetCustomer(ctx context.Context, id int64) (*domain.User, error)
}
