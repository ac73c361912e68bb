package domain

import "time"

// Service is a bookable grooming/veterinary service from the catalog.
type Service struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name" validate:"required"`
	Description     string    `json:"description,omitempty" gorm:"type:text"`
	Price           float64   `json:"price" validate:"gte=0"`
	DurationMinutes int       `json:"duration_minutes" validate:"gt=0"`
	Active          bool      `json:"active"`
	Featured        bool      `json:"featured"`
	ImageURL        string    `json:"image_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	QualifiedEmployees []User `json:"qualified_employees,omitempty" gorm:"many2many:employee_services"`
}

func (s *Service) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}
