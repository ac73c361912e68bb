package invoice

type CreateInvoiceRequest struct {
	CustomerID     int64   `json:"customer_id" binding:"required"`
	AppointmentIDs []int64 `json:"appointment_ids" binding:"required,min=1"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

type ListQuery struct {
	CustomerID *int64
	Status     *string
	Page       int
	Size       int
}
