package user

import (
	"fmt"
	"log/slog"

	"github.com/frahmantamala/hr-payroll/internal/auth"
	"golang.org/x/crypto/bcrypt"
)

// Repository defines the data access methods for account administration.
type Repository interface {
	GetAll() ([]*User, error)
	GetByID(id int64) (*User, error)
	UsernameExists(username string) (bool, error)
	Create(u *User) error
	UpdateFields(id int64, fields map[string]interface{}) error
	Delete(id int64) error
}

type Service struct {
	repo       Repository
	bcryptCost int
	logger     *slog.Logger
}

func NewService(repo Repository, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:       repo,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

func (s *Service) ListUsers() ([]*User, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}

func (s *Service) CreateUser(dto CreateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	taken, err := s.repo.UsernameExists(dto.Username)
	if err != nil {
		s.logger.Error("failed to check username", "error", err)
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := dto.AccountType
	if role == "" {
		role = string(auth.RoleEmployee)
	}

	u := &User{
		Username:     dto.Username,
		PasswordHash: string(hash),
		AccountType:  string(auth.NormalizeRole(role)),
	}
	if err := s.repo.Create(u); err != nil {
		s.logger.Error("failed to create user", "error", err, "username", dto.Username)
		return nil, err
	}

	s.logger.Info("user created", "user_id", u.ID, "username", u.Username, "role", u.AccountType)
	return u, nil
}

// UpdateUser applies the non-empty fields of the DTO. An empty DTO is a
// no-op: changed comes back false and nothing is written.
func (s *Service) UpdateUser(id int64, dto UpdateUserDTO) (changed bool, err error) {
	if dto.Empty() {
		return false, nil
	}

	if _, err := s.repo.GetByID(id); err != nil {
		return false, ErrUserNotFound
	}

	fields := map[string]interface{}{}
	if dto.Username != "" {
		fields["username"] = dto.Username
	}
	if dto.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
		if err != nil {
			return false, fmt.Errorf("failed to hash password: %w", err)
		}
		fields["password_hash"] = string(hash)
	}
	if dto.AccountType != "" {
		fields["account_type"] = string(auth.NormalizeRole(dto.AccountType))
	}

	if err := s.repo.UpdateFields(id, fields); err != nil {
		s.logger.Error("failed to update user", "error", err, "user_id", id)
		return false, err
	}

	s.logger.Info("user updated", "user_id", id)
	return true, nil
}

// DeleteUser removes an account. The session's own account is protected:
// deleting it is refused.
func (s *Service) DeleteUser(id int64, sessionUsername string) error {
	u, err := s.repo.GetByID(id)
	if err != nil {
		return ErrUserNotFound
	}

	if u.Username == sessionUsername {
		return ErrSelfDelete
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete user", "error", err, "user_id", id)
		return err
	}

	s.logger.Info("user deleted", "user_id", id, "username", u.Username)
	return nil
}
