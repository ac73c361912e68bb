package catalog

type CreateServiceRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	Price           float64 `json:"price" binding:"required,gte=0"`
	DurationMinutes int     `json:"duration_minutes" binding:"required,gt=0"`
	Featured        bool    `json:"featured"`
	ImageURL        string  `json:"image_url"`
}

type UpdateServiceRequest struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price"`
	DurationMinutes *int     `json:"duration_minutes"`
	Active          *bool    `json:"active"`
	Featured        *bool    `json:"featured"`
	ImageURL        *string  `json:"image_url"`
}

type SetEmployeesRequest struct {
	EmployeeIDs []int64 `json:"employee_ids" binding:"required"`
}
