package user

import "github.com/frahmantamala/hr-payroll/internal"

// User is an application account. PasswordHash never leaves the service
// layer.
type User struct {
	ID           int64  `json:"id" gorm:"primaryKey"`
	Username     string `json:"username"`
	PasswordHash string `json:"-" gorm:"column:password_hash"`
	AccountType  string `json:"account_type" gorm:"column:account_type"`
}

func (User) TableName() string {
	return "users"
}

// CreateUserDTO is an admin's new-account request.
type CreateUserDTO struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	AccountType string `json:"account_type"`
}

func (dto CreateUserDTO) Validate() error {
	if dto.Username == "" {
		return internal.NewValidationError("username is required", internal.ErrCodeValidationFailed)
	}
	if dto.Password == "" {
		return internal.NewValidationError("password is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

// UpdateUserDTO carries a partial account update: only non-empty fields are
// applied.
type UpdateUserDTO struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	AccountType string `json:"account_type"`
}

// Empty reports whether the update carries no changes at all.
func (dto UpdateUserDTO) Empty() bool {
	return dto.Username == "" && dto.Password == "" && dto.AccountType == ""
}

var (
	ErrUserNotFound  = internal.NewNotFoundError("user not found", internal.ErrCodeUserNotFound)
	ErrUsernameTaken = internal.NewConflictError("username already taken", internal.ErrCodeDuplicateUsername)
	ErrSelfDelete    = internal.NewValidationError("you cannot delete your own account", internal.ErrCodeSelfDelete)
)
