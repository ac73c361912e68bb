package domain

import "time"

type InvoiceStatus string

const (
	InvoiceAwaitingPayment InvoiceStatus = "awaiting_payment"
	InvoicePaid            InvoiceStatus = "paid"
	InvoiceCanceled        InvoiceStatus = "canceled"
)

type Invoice struct {
	ID          int64         `json:"id"`
	Number      string        `json:"number"`
	CustomerID  int64         `json:"customer_id"`
	TotalAmount float64       `json:"total_amount"`
	Status      InvoiceStatus `json:"status"`
	IssuedAt    time.Time     `json:"issued_at"`
	PaidAt      *time.Time    `json:"paid_at,omitempty"`

	Customer     *User         `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Appointments []Appointment `json:"appointments,omitempty" gorm:"foreignKey:InvoiceID"`
}
