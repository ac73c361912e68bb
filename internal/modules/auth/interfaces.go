package auth

import (
	"context"
	"time"

	"petemporio/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
}

type ResetTokenRepository interface {
	Save(ctx context.Context, userID int64, token string, expiresAt time.Time) error
	Consume(ctx context.Context, token string, now time.Time) (int64, error)
}
