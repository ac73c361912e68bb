package scheduling

import "time"

// LocalDateTimeLayout is the naive local wall-clock format used on the wire;
// the shop runs in a single time zone and never converts.
const LocalDateTimeLayout = "2006-01-02T15:04:05"

const DateLayout = "2006-01-02"

type CreateAppointmentRequest struct {
	ServiceID  int64  `json:"service_id" binding:"required"`
	PetID      int64  `json:"pet_id" binding:"required"`
	EmployeeID *int64 `json:"employee_id"`
	// Naive local date-time, e.g. "2026-09-01T14:30:00".
	StartDateTime string `json:"start_date_time" binding:"required"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

type ListQuery struct {
	MinDate    *time.Time
	MaxDate    *time.Time
	EmployeeID *int64
	Status     string
	Page       int
	Size       int
}
