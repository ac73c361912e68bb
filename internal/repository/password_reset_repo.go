package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type passwordResetRow struct {
	ID        int64      `gorm:"column:id;primaryKey"`
	UserID    int64      `gorm:"column:user_id"`
	Token     string     `gorm:"column:token;uniqueIndex"`
	ExpiresAt time.Time  `gorm:"column:expires_at"`
	UsedAt    *time.Time `gorm:"column:used_at"`
	CreatedAt time.Time  `gorm:"column:created_at"`
}

func (passwordResetRow) TableName() string { return "password_reset_tokens" }

type PasswordResetRepository struct {
	db *gorm.DB
}

func NewPasswordResetRepository(db *gorm.DB) *PasswordResetRepository {
	return &PasswordResetRepository{db: db}
}

func (r *PasswordResetRepository) Migrate() error {
	return r.db.AutoMigrate(&passwordResetRow{})
}

func (r *PasswordResetRepository) Save(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	row := passwordResetRow{
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

// Consume marks the token used and returns its user, or 0 when the token is
// unknown, expired, or already spent.
func (r *PasswordResetRepository) Consume(ctx context.Context, token string, now time.Time) (int64, error) {
	var row passwordResetRow
	tx := r.db.WithContext(ctx).
		Where("token = ? AND used_at IS NULL AND expires_at > ?", token, now).
		First(&row)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, tx.Error
	}
	if err := r.db.WithContext(ctx).
		Model(&passwordResetRow{}).
		Where("id = ?", row.ID).
		Update("used_at", now).Error; err != nil {
		return 0, err
	}
	return row.UserID, nil
}
