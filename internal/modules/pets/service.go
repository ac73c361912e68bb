package pets

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"petemporio/internal/domain"
)

type Service struct {
	pets   PetRepository
	breeds BreedRepository
	users  UserRepository
}

func NewService(pets PetRepository, breeds BreedRepository, users UserRepository) *Service {
	return &Service{pets: pets, breeds: breeds, users: users}
}

// Create registers a pet. Customers register pets for themselves; admins may
// pass owner_id to register one on behalf of a customer.
func (s *Service) Create(ctx context.Context, p domain.Principal, req CreatePetRequest) (*domain.Pet, error) {
	ownerID := p.UserID
	if req.OwnerID != nil {
		if !p.IsAdmin() {
			return nil, ErrForbidden
		}
		owner, err := s.users.GetCustomer(ctx, *req.OwnerID)
		if err != nil {
			return nil, err
		}
		if owner == nil {
			return nil, ErrCustomerNotFound
		}
		ownerID = owner.ID
	} else if !p.IsCustomer() {
		return nil, ErrForbidden
	}

	pet := &domain.Pet{
		Name:    req.Name,
		OwnerID: ownerID,
		Notes:   req.Notes,
		Active:  true,
	}
	if req.BreedID != nil {
		breed, err := s.breeds.GetByID(ctx, *req.BreedID)
		if err != nil {
			return nil, err
		}
		if breed == nil {
			return nil, ErrBreedNotFound
		}
		pet.BreedID = req.BreedID
	}
	if req.BirthDate != nil {
		bd, err := parseBirthDate(*req.BirthDate)
		if err != nil {
			return nil, ErrValidation
		}
		pet.BirthDate = bd
	}
	if err := s.pets.Create(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

func (s *Service) Get(ctx context.Context, p domain.Principal, id int64) (*domain.Pet, error) {
	pet, err := s.pets.GetActive(ctx, id)
	if err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}
	if p.IsCustomer() && pet.OwnerID != p.UserID {
		return nil, ErrForbidden
	}
	return pet, nil
}

func (s *Service) Mine(ctx context.Context, p domain.Principal) ([]domain.Pet, error) {
	if !p.IsCustomer() {
		return nil, ErrForbidden
	}
	return s.pets.ByOwner(ctx, p.UserID)
}

func (s *Service) ByOwner(ctx context.Context, p domain.Principal, ownerID int64) ([]domain.Pet, error) {
	if !p.IsStaff() && !p.IsAdmin() {
		return nil, ErrForbidden
	}
	owner, err := s.users.GetCustomer(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, ErrCustomerNotFound
	}
	return s.pets.ByOwner(ctx, ownerID)
}

func (s *Service) Update(ctx context.Context, p domain.Principal, id int64, req UpdatePetRequest) (*domain.Pet, error) {
	pet, err := s.Get(ctx, p, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		pet.Name = *req.Name
	}
	if req.BreedID != nil {
		breed, err := s.breeds.GetByID(ctx, *req.BreedID)
		if err != nil {
			return nil, err
		}
		if breed == nil {
			return nil, ErrBreedNotFound
		}
		pet.BreedID = req.BreedID
	}
	if req.BirthDate != nil {
		bd, err := parseBirthDate(*req.BirthDate)
		if err != nil {
			return nil, ErrValidation
		}
		pet.BirthDate = bd
	}
	if req.Notes != nil {
		pet.Notes = *req.Notes
	}
	pet.Breed = nil
	if err := s.pets.Update(ctx, pet); err != nil {
		return nil, err
	}
	return s.pets.GetActive(ctx, id)
}

func (s *Service) Deactivate(ctx context.Context, p domain.Principal, id int64) error {
	if _, err := s.Get(ctx, p, id); err != nil {
		return err
	}
	return s.pets.Deactivate(ctx, id)
}

func (s *Service) CreateBreed(ctx context.Context, req BreedRequest) (*domain.Breed, error) {
	b := &domain.Breed{Name: req.Name, Species: req.Species}
	if err := s.breeds.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) ListBreeds(ctx context.Context) ([]domain.Breed, error) {
	return s.breeds.List(ctx)
}

func (s *Service) UpdateBreed(ctx context.Context, id int64, req BreedRequest) (*domain.Breed, error) {
	b, err := s.breeds.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBreedNotFound
	}
	b.Name = req.Name
	b.Species = req.Species
	if err := s.breeds.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) DeleteBreed(ctx context.Context, id int64) error {
	err := s.breeds.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrBreedNotFound
	}
	return err
}

func parseBirthDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(birthDateLayout, raw, time.Local)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
