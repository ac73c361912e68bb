package domain

import "time"

type Breed struct {
	ID      int64  `json:"id"`
	Name    string `json:"name" validate:"required"`
	Species string `json:"species,omitempty"`
}

type Pet struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name" validate:"required"`
	OwnerID   int64      `json:"owner_id"`
	BreedID   *int64     `json:"breed_id,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Notes     string     `json:"notes,omitempty" gorm:"type:text"`
	// Soft-delete flag. Every query path filters on it explicitly.
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Owner *User  `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Breed *Breed `json:"breed,omitempty" gorm:"foreignKey:BreedID"`
}
