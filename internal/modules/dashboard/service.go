package dashboard

import (
	"context"
	"time"
)

const recentLimit = 10

type Service struct {
	appointments AppointmentRepository
	users        UserRepository
	invoices     InvoiceRepository

	now func() time.Time
}

func NewService(appointments AppointmentRepository, users UserRepository, invoices InvoiceRepository) *Service {
	return &Service{
		appointments: appointments,
		users:        users,
		invoices:     invoices,
		now:          time.Now,
	}
}

// Summary compares today's appointments with yesterday's, this month's new
// customers and paid revenue with last month's.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prevMonthStart := monthStart.AddDate(0, -1, 0)
	nextMonthStart := monthStart.AddDate(0, 1, 0)

	out := &Summary{}

	var err error
	if out.AppointmentsToday.Current, err = s.appointments.CountStartingBetween(ctx, today, tomorrow); err != nil {
		return nil, err
	}
	if out.AppointmentsToday.Previous, err = s.appointments.CountStartingBetween(ctx, yesterday, today); err != nil {
		return nil, err
	}
	if out.NewCustomers.Current, err = s.users.CountCustomersCreatedBetween(ctx, monthStart, nextMonthStart); err != nil {
		return nil, err
	}
	if out.NewCustomers.Previous, err = s.users.CountCustomersCreatedBetween(ctx, prevMonthStart, monthStart); err != nil {
		return nil, err
	}
	if out.Revenue.Current, err = s.invoices.SumPaidBetween(ctx, monthStart, nextMonthStart); err != nil {
		return nil, err
	}
	if out.Revenue.Previous, err = s.invoices.SumPaidBetween(ctx, prevMonthStart, monthStart); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) RecentActivity(ctx context.Context) (*Activity, error) {
	appts, err := s.appointments.Recent(ctx, recentLimit)
	if err != nil {
		return nil, err
	}
	customers, err := s.users.RecentCustomers(ctx, recentLimit)
	if err != nil {
		return nil, err
	}
	for i := range customers {
		customers[i].PasswordHash = ""
	}
	return &Activity{RecentAppointments: appts, RecentCustomers: customers}, nil
}
