package dashboard

import "petemporio/internal/domain"

type CountMetric struct {
	Current  int64 `json:"current"`
	Previous int64 `json:"previous"`
}

type RevenueMetric struct {
	Current  float64 `json:"current"`
	Previous float64 `json:"previous"`
}

type Summary struct {
	AppointmentsToday CountMetric   `json:"appointments_today"`
	NewCustomers      CountMetric   `json:"new_customers"`
	Revenue           RevenueMetric `json:"revenue"`
}

type Activity struct {
	RecentAppointments []domain.Appointment `json:"recent_appointments"`
	RecentCustomers    []domain.User        `json:"recent_customers"`
}
