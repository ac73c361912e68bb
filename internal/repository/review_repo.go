package repository

import (
	"context"

	"gorm.io/gorm"

	"petemporio/internal/domain"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Omit("Appointment").Create(rv).Error
}

func (r *ReviewRepository) ExistsForAppointment(ctx context.Context, appointmentID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&domain.Review{}).
		Where("appointment_id = ?", appointmentID).
		Count(&cnt)
	return cnt > 0, tx.Error
}

func (r *ReviewRepository) ByService(ctx context.Context, serviceID int64) ([]domain.Review, error) {
	var out []domain.Review
	tx := r.db.WithContext(ctx).
		Joins("JOIN appointments ON appointments.id = reviews.appointment_id").
		Where("appointments.service_id = ?", serviceID).
		Order("reviews.created_at DESC").
		Find(&out)
	return out, tx.Error
}
