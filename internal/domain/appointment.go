package domain

import "time"

type AppointmentStatus string

const (
	AppointmentScheduled  AppointmentStatus = "scheduled"
	AppointmentInProgress AppointmentStatus = "in_progress"
	AppointmentCompleted  AppointmentStatus = "completed"
	AppointmentCanceled   AppointmentStatus = "canceled"
	AppointmentNoShow     AppointmentStatus = "no_show"
)

// ConflictExcludedStatuses do not occupy staff time: appointments in these
// states never count when computing availability or overlap conflicts.
var ConflictExcludedStatuses = []AppointmentStatus{
	AppointmentCanceled,
	AppointmentNoShow,
}

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentScheduled, AppointmentInProgress, AppointmentCompleted,
		AppointmentCanceled, AppointmentNoShow:
		return true
	}
	return false
}

// Appointment times are naive local wall-clock values; the shop runs in a
// single time zone and no conversion is done anywhere.
type Appointment struct {
	ID         int64             `json:"id"`
	ServiceID  int64             `json:"service_id"`
	PetID      int64             `json:"pet_id"`
	EmployeeID int64             `json:"employee_id"`
	StartTime  time.Time         `json:"start_time"`
	EndTime    time.Time         `json:"end_time"`
	Status     AppointmentStatus `json:"status"`
	// Snapshot of the service price at booking time. Later catalog price
	// changes never touch it.
	ChargedAmount float64   `json:"charged_amount"`
	InvoiceID     *int64    `json:"invoice_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Service  *Service `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	Pet      *Pet     `json:"pet,omitempty" gorm:"foreignKey:PetID"`
	Employee *User    `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
}

// Overlaps reports whether the [start, end) interval of a intersects the
// given interval.
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return start.Before(a.EndTime) && end.After(a.StartTime)
}
