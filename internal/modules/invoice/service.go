package invoice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"petemporio/internal/domain"
	"petemporio/internal/repository"
)

type Service struct {
	invoices     InvoiceRepository
	appointments AppointmentRepository
	users        UserRepository

	now func() time.Time
}

func NewService(invoices InvoiceRepository, appointments AppointmentRepository, users UserRepository) *Service {
	return &Service{
		invoices:     invoices,
		appointments: appointments,
		users:        users,
		now:          time.Now,
	}
}

// Create issues an invoice over a set of completed, not yet invoiced
// appointments belonging to the customer's pets. The total is the sum of the
// amounts charged at booking time.
func (s *Service) Create(ctx context.Context, p domain.Principal, req CreateInvoiceRequest) (*domain.Invoice, error) {
	if !p.IsStaff() && !p.IsAdmin() {
		return nil, ErrForbidden
	}
	customer, err := s.users.GetCustomer(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	appts, err := s.appointments.GetAllByIDs(ctx, req.AppointmentIDs)
	if err != nil {
		return nil, err
	}
	if len(appts) != len(req.AppointmentIDs) {
		return nil, ErrAppointmentNotFound
	}

	var total float64
	for i := range appts {
		a := &appts[i]
		if a.Status != domain.AppointmentCompleted || a.InvoiceID != nil {
			return nil, ErrNotBillable
		}
		if a.Pet == nil || a.Pet.OwnerID != customer.ID {
			return nil, fmt.Errorf("%w: appointment %d does not belong to customer %d", ErrNotBillable, a.ID, customer.ID)
		}
		total += a.ChargedAmount
	}

	inv := &domain.Invoice{
		Number:      uuid.NewString(),
		CustomerID:  customer.ID,
		TotalAmount: total,
		Status:      domain.InvoiceAwaitingPayment,
		IssuedAt:    s.now(),
	}
	if err := s.invoices.CreateWithAppointments(ctx, inv, req.AppointmentIDs); err != nil {
		return nil, err
	}
	return s.invoices.GetByID(ctx, inv.ID)
}

func (s *Service) Get(ctx context.Context, p domain.Principal, id int64) (*domain.Invoice, error) {
	inv, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, ErrInvoiceNotFound
	}
	if p.IsCustomer() && inv.CustomerID != p.UserID {
		return nil, ErrForbidden
	}
	if inv.Customer != nil {
		inv.Customer.PasswordHash = ""
	}
	return inv, nil
}

// Find lists invoices. Customers only ever see their own regardless of the
// filter they send.
func (s *Service) Find(ctx context.Context, p domain.Principal, q ListQuery) ([]domain.Invoice, int64, error) {
	f := repository.InvoiceFilter{Page: q.Page, Size: q.Size}
	if p.IsCustomer() {
		id := p.UserID
		f.CustomerID = &id
	} else if q.CustomerID != nil {
		f.CustomerID = q.CustomerID
	}
	if q.Status != nil {
		st := domain.InvoiceStatus(*q.Status)
		if !validStatus(st) {
			return nil, 0, ErrValidation
		}
		f.Status = &st
	}
	out, total, err := s.invoices.Find(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	for i := range out {
		if out[i].Customer != nil {
			out[i].Customer.PasswordHash = ""
		}
	}
	return out, total, nil
}

// UpdateStatus moves an invoice between awaiting_payment, paid and canceled.
// Paid invoices are final.
func (s *Service) UpdateStatus(ctx context.Context, p domain.Principal, id int64, raw string) (*domain.Invoice, error) {
	if !p.IsStaff() && !p.IsAdmin() {
		return nil, ErrForbidden
	}
	status := domain.InvoiceStatus(raw)
	if !validStatus(status) {
		return nil, ErrValidation
	}
	inv, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, ErrInvoiceNotFound
	}
	if inv.Status == domain.InvoicePaid {
		return nil, ErrInvalidStatus
	}
	var paidAt *time.Time
	if status == domain.InvoicePaid {
		t := s.now()
		paidAt = &t
	}
	if err := s.invoices.UpdateStatus(ctx, id, status, paidAt); err != nil {
		return nil, err
	}
	return s.invoices.GetByID(ctx, id)
}

func validStatus(st domain.InvoiceStatus) bool {
	switch st {
	case domain.InvoiceAwaitingPayment, domain.InvoicePaid, domain.InvoiceCanceled:
		return true
	}
	return false
}
