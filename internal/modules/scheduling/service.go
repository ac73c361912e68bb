package scheduling

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"petemporio/internal/config"
	"petemporio/internal/domain"
	"petemporio/internal/repository"
)

type Service struct {
	appointments AppointmentRepository
	services     ServiceRepository
	users        UserRepository
	pets         PetRepository
	calendar     config.CalendarPolicy
	board        BoardNotifier

	now func() time.Time
}

func NewService(
	appointments AppointmentRepository,
	services ServiceRepository,
	users UserRepository,
	pets PetRepository,
	calendar config.CalendarPolicy,
	board BoardNotifier,
) *Service {
	return &Service{
		appointments: appointments,
		services:     services,
		users:        users,
		pets:         pets,
		calendar:     calendar,
		board:        board,
		now:          time.Now,
	}
}

// AvailableTimes computes every start instant on the given date at which the
// service can be booked with at least one qualified, unlocked employee free.
// An empty result is a normal outcome, not an error.
func (s *Service) AvailableTimes(ctx context.Context, serviceID int64, date time.Time, employeeID *int64) ([]time.Time, error) {
	svc, err := s.services.GetWithQualifiedEmployees(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	candidates, err := s.resolveQualified(ctx, svc, employeeID)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return []time.Time{}, nil
	}

	workStart, workEnd, lunchStart, lunchEnd := s.calendar.Workday(date)
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	ids := make([]int64, 0, len(candidates))
	for _, e := range candidates {
		ids = append(ids, e.ID)
	}
	booked, err := s.appointments.ForEmployeesInRange(ctx, ids, dayStart, dayEnd, domain.ConflictExcludedStatuses)
	if err != nil {
		return nil, err
	}

	byEmployee := make(map[int64][]domain.Appointment, len(candidates))
	for _, a := range booked {
		byEmployee[a.EmployeeID] = append(byEmployee[a.EmployeeID], a)
	}

	params := slotParams{
		workStart:  workStart,
		workEnd:    workEnd,
		lunchStart: lunchStart,
		lunchEnd:   lunchEnd,
		duration:   svc.Duration(),
		increment:  s.calendar.SlotIncrement,
		buffer:     s.calendar.Buffer,
	}

	sets := make([][]time.Time, 0, len(candidates))
	for _, e := range candidates {
		sets = append(sets, startsForEmployee(params, byEmployee[e.ID]))
	}
	return mergeStarts(sets...), nil
}

// resolveQualified narrows the service's qualification set to bookable
// employees. A requested employee who is locked or unqualified yields an
// empty set, not an error; an unknown employee id is ErrEmployeeNotFound.
func (s *Service) resolveQualified(ctx context.Context, svc *domain.Service, employeeID *int64) ([]domain.User, error) {
	if employeeID != nil {
		e, err := s.users.GetEmployee(ctx, *employeeID)
		if err != nil {
			return nil, err
		}
		if e == nil {
			return nil, ErrEmployeeNotFound
		}
		if e.Locked || !isQualified(svc, e.ID) {
			return nil, nil
		}
		return []domain.User{*e}, nil
	}

	out := make([]domain.User, 0, len(svc.QualifiedEmployees))
	for _, e := range svc.QualifiedEmployees {
		if !e.Locked {
			out = append(out, e)
		}
	}
	return out, nil
}

func isQualified(svc *domain.Service, employeeID int64) bool {
	for _, e := range svc.QualifiedEmployees {
		if e.ID == employeeID {
			return true
		}
	}
	return false
}

// Create books an appointment for the acting customer. The requested slot is
// revalidated against a freshly loaded conflict set; the database exclusion
// constraint turns the remaining write race into ErrSlotTaken for the loser.
func (s *Service) Create(ctx context.Context, p domain.Principal, serviceID, petID int64, employeeID *int64, start time.Time) (*domain.Appointment, error) {
	if !p.IsCustomer() {
		return nil, ErrForbidden
	}
	if !start.After(s.now()) {
		return nil, ErrValidation
	}

	svc, err := s.services.GetWithQualifiedEmployees(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	if !svc.Active {
		return nil, ErrServiceInactive
	}

	pet, err := s.pets.GetActive(ctx, petID)
	if err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}
	if pet.OwnerID != p.UserID {
		return nil, ErrForbidden
	}

	end := start.Add(svc.Duration())

	var designated *domain.User
	if employeeID != nil {
		chosen, err := s.users.GetEmployee(ctx, *employeeID)
		if err != nil {
			return nil, err
		}
		if chosen == nil {
			return nil, ErrEmployeeNotFound
		}
		free, err := s.AvailableTimes(ctx, svc.ID, start, employeeID)
		if err != nil {
			return nil, err
		}
		if !isQualified(svc, chosen.ID) || !containsStart(free, start) {
			return nil, ErrSlotTaken
		}
		designated = chosen
	} else {
		designated, err = s.firstFreeEmployee(ctx, svc, start, end)
		if err != nil {
			return nil, err
		}
	}

	// The qualification check above can race with an admin locking the
	// account; re-check before writing.
	if designated.Locked {
		return nil, ErrStaffUnavailable
	}

	a := &domain.Appointment{
		ServiceID:     svc.ID,
		PetID:         pet.ID,
		EmployeeID:    designated.ID,
		StartTime:     start,
		EndTime:       end,
		Status:        domain.AppointmentScheduled,
		ChargedAmount: svc.Price,
	}
	if err := s.appointments.Create(ctx, a); err != nil {
		if isOverlapViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	if s.board != nil {
		s.board.AppointmentCreated(a)
	}
	return a, nil
}

// firstFreeEmployee assigns the first qualified, unlocked employee with no
// conflicting appointment over [start, end).
func (s *Service) firstFreeEmployee(ctx context.Context, svc *domain.Service, start, end time.Time) (*domain.User, error) {
	candidates := make([]domain.User, 0, len(svc.QualifiedEmployees))
	ids := make([]int64, 0, len(svc.QualifiedEmployees))
	for _, e := range svc.QualifiedEmployees {
		if !e.Locked {
			candidates = append(candidates, e)
			ids = append(ids, e.ID)
		}
	}
	if len(candidates) == 0 {
		return nil, ErrNoStaffAvailable
	}

	dayStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	booked, err := s.appointments.ForEmployeesInRange(ctx, ids, dayStart, dayStart.AddDate(0, 0, 1), domain.ConflictExcludedStatuses)
	if err != nil {
		return nil, err
	}

	for i := range candidates {
		free := true
		for _, a := range booked {
			if a.EmployeeID == candidates[i].ID && a.Overlaps(start, end) {
				free = false
				break
			}
		}
		if free {
			return &candidates[i], nil
		}
	}
	return nil, ErrNoStaffAvailable
}

// UpdateStatus sets a new status on behalf of staff or admin. Completed
// appointments cannot be moved to canceled; other transitions are
// unconditional.
func (s *Service) UpdateStatus(ctx context.Context, p domain.Principal, id int64, status domain.AppointmentStatus) (*domain.Appointment, error) {
	if !p.IsStaff() && !p.IsAdmin() {
		return nil, ErrForbidden
	}
	if !status.Valid() {
		return nil, ErrValidation
	}

	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrAppointmentNotFound
	}
	if status == domain.AppointmentCanceled && a.Status == domain.AppointmentCompleted {
		return nil, ErrNotCancellable
	}

	if err := s.appointments.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	a.Status = status

	if s.board != nil {
		s.board.AppointmentStatusChanged(a)
	}
	return a, nil
}

// Cancel transitions an appointment to canceled. Staff and admin may cancel
// anything not completed; a customer may cancel only their own appointment,
// only while more than the configured lead time remains before the start.
func (s *Service) Cancel(ctx context.Context, p domain.Principal, id int64) error {
	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a == nil {
		return ErrAppointmentNotFound
	}

	switch {
	case p.IsAdmin() || p.IsStaff():
		if a.Status == domain.AppointmentCompleted {
			return ErrNotCancellable
		}

	case p.IsCustomer():
		if a.Pet == nil || a.Pet.OwnerID != p.UserID {
			return ErrForbidden
		}
		if !s.now().Add(s.calendar.CancelLead).Before(a.StartTime) {
			return ErrTooLateToCancel
		}
		if a.Status == domain.AppointmentCompleted || a.Status == domain.AppointmentCanceled {
			return ErrNotCancellable
		}

	default:
		return ErrForbidden
	}

	if err := s.appointments.UpdateStatus(ctx, id, domain.AppointmentCanceled); err != nil {
		return err
	}
	a.Status = domain.AppointmentCanceled

	if s.board != nil {
		s.board.AppointmentStatusChanged(a)
	}
	return nil
}

// Find returns a filtered page of appointments for staff or admin.
func (s *Service) Find(ctx context.Context, p domain.Principal, q ListQuery) ([]domain.Appointment, int64, error) {
	if !p.IsStaff() && !p.IsAdmin() {
		return nil, 0, ErrForbidden
	}
	f := repository.AppointmentFilter{
		MinDate:    q.MinDate,
		MaxDate:    q.MaxDate,
		EmployeeID: q.EmployeeID,
		Page:       q.Page,
		Size:       q.Size,
	}
	if q.Status != "" {
		st := domain.AppointmentStatus(q.Status)
		if !st.Valid() {
			return nil, 0, ErrValidation
		}
		f.Status = &st
	}
	return s.appointments.Find(ctx, f)
}

// FindMine returns the acting customer's appointment history.
func (s *Service) FindMine(ctx context.Context, p domain.Principal, q ListQuery) ([]domain.Appointment, int64, error) {
	if !p.IsCustomer() {
		return nil, 0, ErrForbidden
	}
	petIDs, err := s.pets.IDsByOwner(ctx, p.UserID)
	if err != nil {
		return nil, 0, err
	}
	if len(petIDs) == 0 {
		return []domain.Appointment{}, 0, nil
	}
	f := repository.AppointmentFilter{
		MinDate: q.MinDate,
		MaxDate: q.MaxDate,
		PetIDs:  petIDs,
		Page:    q.Page,
		Size:    q.Size,
	}
	if q.Status != "" {
		st := domain.AppointmentStatus(q.Status)
		if !st.Valid() {
			return nil, 0, ErrValidation
		}
		f.Status = &st
	}
	return s.appointments.Find(ctx, f)
}

// Upcoming returns the acting customer's scheduled and in-progress
// appointments after now, soonest first.
func (s *Service) Upcoming(ctx context.Context, p domain.Principal) ([]domain.Appointment, error) {
	if !p.IsCustomer() {
		return nil, ErrForbidden
	}
	petIDs, err := s.pets.IDsByOwner(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	if len(petIDs) == 0 {
		return []domain.Appointment{}, nil
	}
	return s.appointments.UpcomingForPets(ctx, petIDs, s.now(), []domain.AppointmentStatus{
		domain.AppointmentScheduled,
		domain.AppointmentInProgress,
	})
}

// Billable lists a customer's completed, not yet invoiced appointments for
// the invoicing flow.
func (s *Service) Billable(ctx context.Context, p domain.Principal, customerID int64) ([]domain.Appointment, error) {
	if !p.IsStaff() && !p.IsAdmin() {
		return nil, ErrForbidden
	}
	customer, err := s.users.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return s.appointments.BillableByCustomer(ctx, customerID)
}

// isOverlapViolation detects the Postgres exclusion/unique constraint that
// guards against two concurrent inserts for the same employee and interval.
func isOverlapViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	if pgErr.Code != "23P01" && pgErr.Code != "23505" {
		return false
	}
	return pgErr.ConstraintName == "appointments_no_overlap"
}
