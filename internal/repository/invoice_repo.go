package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"petemporio/internal/domain"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// CreateWithAppointments persists the invoice and attaches the appointments
// in one transaction; a failure leaves nothing written.
func (r *InvoiceRepository) CreateWithAppointments(ctx context.Context, inv *domain.Invoice, appointmentIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Customer", "Appointments").Create(inv).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Appointment{}).
			Where("id IN ?", appointmentIDs).
			Update("invoice_id", inv.ID).Error
	})
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	var inv domain.Invoice
	tx := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Appointments").
		Preload("Appointments.Service").
		Preload("Appointments.Pet").
		First(&inv, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &inv, nil
}

type InvoiceFilter struct {
	CustomerID *int64
	MinDate    *time.Time
	MaxDate    *time.Time
	Status     *domain.InvoiceStatus
	Page       int
	Size       int
}

func (r *InvoiceRepository) Find(ctx context.Context, f InvoiceFilter) ([]domain.Invoice, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Invoice{})
	if f.CustomerID != nil {
		q = q.Where("customer_id = ?", *f.CustomerID)
	}
	if f.MinDate != nil {
		q = q.Where("issued_at >= ?", *f.MinDate)
	}
	if f.MaxDate != nil {
		q = q.Where("issued_at < ?", *f.MaxDate)
	}
	if f.Status != nil {
		q = q.Where("status = ?", string(*f.Status))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Size <= 0 {
		f.Size = 20
	}
	if f.Page < 0 {
		f.Page = 0
	}

	var out []domain.Invoice
	tx := q.
		Preload("Customer").
		Order("issued_at DESC").
		Limit(f.Size).
		Offset(f.Page * f.Size).
		Find(&out)
	return out, total, tx.Error
}

func (r *InvoiceRepository) UpdateStatus(ctx context.Context, id int64, status domain.InvoiceStatus, paidAt *time.Time) error {
	updates := map[string]any{"status": string(status)}
	if paidAt != nil {
		updates["paid_at"] = *paidAt
	}
	tx := r.db.WithContext(ctx).
		Model(&domain.Invoice{}).
		Where("id = ?", id).
		Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *InvoiceRepository) SumPaidBetween(ctx context.Context, from, to time.Time) (float64, error) {
	var sum *float64
	tx := r.db.WithContext(ctx).
		Model(&domain.Invoice{}).
		Select("SUM(total_amount)").
		Where("status = ?", string(domain.InvoicePaid)).
		Where("issued_at >= ? AND issued_at < ?", from, to).
		Scan(&sum)
	if tx.Error != nil {
		return 0, tx.Error
	}
	if sum == nil {
		return 0, nil
	}
	return *sum, nil
}
