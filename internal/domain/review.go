package domain

import "time"

// Review is a customer rating of a completed appointment, one per appointment.
type Review struct {
	ID            int64     `json:"id"`
	AppointmentID int64     `json:"appointment_id" gorm:"uniqueIndex"`
	Rating        int       `json:"rating" validate:"required,min=1,max=5"`
	Comment       string    `json:"comment,omitempty" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at"`

	Appointment *Appointment `json:"appointment,omitempty" gorm:"foreignKey:AppointmentID"`
}
