package domain

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	Document     string    `json:"document,omitempty"`
	Role         Role      `json:"role"`
	JobTitle     string    `json:"job_title,omitempty"`
	Locked       bool      `json:"locked"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Services this employee is qualified to perform. Empty for customers.
	SkilledServices []Service `json:"skilled_services,omitempty" gorm:"many2many:employee_services"`
}

// Principal is the acting identity of a request, resolved once by the auth
// middleware and passed explicitly into services. Exactly one of the role
// predicates is true.
type Principal struct {
	UserID int64
	Role   Role
}

func (p Principal) IsCustomer() bool { return p.Role == RoleCustomer }
func (p Principal) IsStaff() bool    { return p.Role == RoleEmployee }
func (p Principal) IsAdmin() bool    { return p.Role == RoleAdmin }
