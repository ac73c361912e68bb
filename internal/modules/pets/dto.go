package pets

type CreatePetRequest struct {
	Name      string  `json:"name" binding:"required"`
	BreedID   *int64  `json:"breed_id"`
	BirthDate *string `json:"birth_date"`
	Notes     string  `json:"notes"`
	// OwnerID is honored for admins only; customers always own the pets
	// they register.
	OwnerID *int64 `json:"owner_id"`
}

type UpdatePetRequest struct {
	Name      *string `json:"name"`
	BreedID   *int64  `json:"breed_id"`
	BirthDate *string `json:"birth_date"`
	Notes     *string `json:"notes"`
}

type BreedRequest struct {
	Name    string `json:"name" binding:"required"`
	Species string `json:"species" binding:"required"`
}

const birthDateLayout = "2006-01-02"
