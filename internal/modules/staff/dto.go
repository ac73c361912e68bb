package staff

type CreateEmployeeRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone"`
	Document string `json:"document"`
	JobTitle string `json:"job_title"`
}

type UpdateEmployeeRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	JobTitle *string `json:"job_title"`
}

type LockRequest struct {
	Locked *bool `json:"locked" binding:"required"`
}
