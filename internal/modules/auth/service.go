package auth

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"petemporio/internal/domain"
)

const resetTokenTTL = 30 * time.Minute

type jwtService interface {
	GenerateToken(userID int64, role domain.Role) (string, error)
}

type Service struct {
	users  UserRepository
	resets ResetTokenRepository
	jwt    jwtService

	now func() time.Time
}

type LoginResult struct {
	User        *domain.User
	AccessToken string
}

func NewService(users UserRepository, resets ResetTokenRepository, jwt jwtService) *Service {
	return &Service{
		users:  users,
		resets: resets,
		jwt:    jwt,
		now:    time.Now,
	}
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if u.Locked {
		return nil, ErrAccountLocked
	}

	token, err := s.jwt.GenerateToken(u.ID, u.Role)
	if err != nil {
		return nil, err
	}

	u.PasswordHash = ""
	return &LoginResult{User: u, AccessToken: token}, nil
}

// Register creates a customer account. Employees and admins are provisioned
// through the staff module instead.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	existing, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Phone:        req.Phone,
		Document:     req.Document,
		Role:         domain.RoleCustomer,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	u.PasswordHash = ""
	return u, nil
}

// RequestPasswordReset issues a reset token. The token is logged rather than
// emailed; delivery is outside this system. An unknown email is not an
// error, so the endpoint does not reveal which addresses exist.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if u == nil {
		return nil
	}

	token := uuid.NewString()
	if err := s.resets.Save(ctx, u.ID, token, s.now().Add(resetTokenTTL)); err != nil {
		return err
	}

	log.Printf("password_reset user_id=%d token=%s", u.ID, token)
	return nil
}

func (s *Service) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	userID, err := s.resets.Consume(ctx, req.Token, s.now())
	if err != nil {
		return err
	}
	if userID == 0 {
		return ErrInvalidResetToken
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return s.users.Update(ctx, u)
}

func (s *Service) Me(ctx context.Context, p domain.Principal) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	u.PasswordHash = ""
	return u, nil
}
