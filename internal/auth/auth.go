package auth

import (
	"context"
	"strings"
	"time"

	"github.com/frahmantamala/hr-payroll/internal"
	"github.com/golang-jwt/jwt/v5"
)

// Role is a normalized account category controlling endpoint access.
type Role string

const (
	RoleAdmin            Role = "ADMIN"
	RoleManager          Role = "MANAGER"
	RoleAssistantManager Role = "ASSISTANT MANAGER"
	RoleEmployee         Role = "EMPLOYEE"
)

// NormalizeRole maps a stored account_type onto a Role: trimmed, upper-cased,
// EMPLOYEE when absent or blank.
func NormalizeRole(raw string) Role {
	r := strings.ToUpper(strings.TrimSpace(raw))
	if r == "" {
		return RoleEmployee
	}
	return Role(r)
}

// Session is the request-scoped identity established at login.
type Session struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// Claims represents JWT token claims
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenGenerator creates and validates session tokens.
type TokenGenerator interface {
	GenerateAccessToken(username string, role Role) (token string, err error)
	ValidateToken(tokenString string) (*Claims, error)
}

// ServiceAPI performs authentication-related business logic.
type ServiceAPI interface {
	Authenticate(dto LoginDTO) (AuthTokens, error)
	Register(dto RegisterDTO) error
	ValidateAccessToken(tokenString string) (*Claims, error)
}

type AuthTokens struct {
	AccessToken string `json:"access_token"`
	Username    string `json:"username"`
	Role        Role   `json:"role"`
}

type JWTTokenGenerator struct {
	Secret   []byte
	TokenTTL time.Duration
}

var (
	ErrInvalidCredentials = internal.ErrInvalidCredentials
	ErrInvalidToken       = internal.ErrInvalidToken
	ErrTokenExpired       = internal.ErrTokenExpired
	ErrUsernameTaken      = internal.NewConflictError("username already taken", internal.ErrCodeDuplicateUsername)
)

type ctxKey string

const contextSessionKey ctxKey = "session"

// SessionFromContext returns the session placed by the auth middleware.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(contextSessionKey).(*Session)
	return s, ok
}

func ContextWithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextSessionKey, s)
}
