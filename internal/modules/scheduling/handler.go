package scheduling

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"petemporio/internal/domain"
	"petemporio/internal/middleware"
	"petemporio/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the appointment endpoints on an authenticated group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/appointments/availability", h.Availability)
	rg.POST("/appointments", h.Create)
	rg.GET("/appointments", h.List)
	rg.GET("/me/appointments", h.ListMine)
	rg.GET("/me/appointments/upcoming", h.Upcoming)
	rg.GET("/appointments/billable", h.Billable)
	rg.PATCH("/appointments/:id/status", h.UpdateStatus)
	rg.DELETE("/appointments/:id", h.Cancel)
}

func (h *Handler) Availability(c *gin.Context) {
	serviceID, err := strconv.ParseInt(c.Query("service_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "service_id is required")
		return
	}
	date, err := time.ParseInLocation(DateLayout, c.Query("date"), time.Local)
	if err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "date must be YYYY-MM-DD")
		return
	}
	var employeeID *int64
	if raw := c.Query("employee_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "employee_id must be an integer")
			return
		}
		employeeID = &id
	}

	starts, err := h.service.AvailableTimes(c.Request.Context(), serviceID, date, employeeID)
	if err != nil {
		h.fail(c, err)
		return
	}

	out := make([]string, 0, len(starts))
	for _, t := range starts {
		out = append(out, t.Format(LocalDateTimeLayout))
	}
	response.Success(c, http.StatusOK, gin.H{"available_times": out})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	start, err := time.ParseInLocation(LocalDateTimeLayout, req.StartDateTime, time.Local)
	if err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "start_date_time must be a local date-time like 2026-09-01T14:30:00")
		return
	}
	if !start.After(time.Now()) {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "start_date_time must be in the future")
		return
	}

	p := middleware.PrincipalFrom(c)
	a, err := h.service.Create(c.Request.Context(), p, req.ServiceID, req.PetID, req.EmployeeID, start)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"appointment": a})
}

func (h *Handler) List(c *gin.Context) {
	q, ok := parseListQuery(c)
	if !ok {
		return
	}
	p := middleware.PrincipalFrom(c)
	items, total, err := h.service.Find(c.Request.Context(), p, q)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"appointments": items,
		"total":        total,
		"page":         q.Page,
		"size":         q.Size,
	})
}

func (h *Handler) ListMine(c *gin.Context) {
	q, ok := parseListQuery(c)
	if !ok {
		return
	}
	p := middleware.PrincipalFrom(c)
	items, total, err := h.service.FindMine(c.Request.Context(), p, q)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"appointments": items,
		"total":        total,
		"page":         q.Page,
		"size":         q.Size,
	})
}

func (h *Handler) Upcoming(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	items, err := h.service.Upcoming(c.Request.Context(), p)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"appointments": items})
}

func (h *Handler) Billable(c *gin.Context) {
	customerID, err := strconv.ParseInt(c.Query("customer_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "customer_id is required")
		return
	}
	p := middleware.PrincipalFrom(c)
	items, err := h.service.Billable(c.Request.Context(), p, customerID)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"appointments": items})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid appointment id")
		return
	}
	var req StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p := middleware.PrincipalFrom(c)
	a, err := h.service.UpdateStatus(c.Request.Context(), p, id, domain.AppointmentStatus(req.Status))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"appointment": a})
}

func (h *Handler) Cancel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid appointment id")
		return
	}
	p := middleware.PrincipalFrom(c)
	if err := h.service.Cancel(c.Request.Context(), p, id); err != nil {
		h.fail(c, err)
		return
	}
	response.NoContent(c)
}

func parseListQuery(c *gin.Context) (ListQuery, bool) {
	var q ListQuery
	if raw := c.Query("min_date"); raw != "" {
		d, err := time.ParseInLocation(DateLayout, raw, time.Local)
		if err != nil {
			response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "min_date must be YYYY-MM-DD")
			return q, false
		}
		q.MinDate = &d
	}
	if raw := c.Query("max_date"); raw != "" {
		d, err := time.ParseInLocation(DateLayout, raw, time.Local)
		if err != nil {
			response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "max_date must be YYYY-MM-DD")
			return q, false
		}
		// max_date is inclusive; the filter's upper bound is exclusive.
		end := d.AddDate(0, 0, 1)
		q.MaxDate = &end
	}
	if raw := c.Query("employee_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "employee_id must be an integer")
			return q, false
		}
		q.EmployeeID = &id
	}
	q.Status = c.Query("status")
	q.Page, _ = strconv.Atoi(c.DefaultQuery("page", "0"))
	q.Size, _ = strconv.Atoi(c.DefaultQuery("size", "20"))
	return q, true
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrServiceNotFound),
		errors.Is(err, ErrPetNotFound),
		errors.Is(err, ErrEmployeeNotFound),
		errors.Is(err, ErrAppointmentNotFound),
		errors.Is(err, ErrCustomerNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())

	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())

	case errors.Is(err, ErrServiceInactive),
		errors.Is(err, ErrSlotTaken),
		errors.Is(err, ErrNoStaffAvailable),
		errors.Is(err, ErrStaffUnavailable),
		errors.Is(err, ErrTooLateToCancel),
		errors.Is(err, ErrNotCancellable):
		response.Error(c, http.StatusConflict, "CONFLICT", err.Error())

	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error())

	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
