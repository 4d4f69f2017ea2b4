package auth

import (
	"log/slog"
	"net/http"

	"github.com/frahmantamala/hr-payroll/internal"
	"github.com/frahmantamala/hr-payroll/internal/transport"
)

// RoleGuard wraps endpoints with a role allow-list. It assumes the session
// guard already ran: a missing session is a 401, a role outside the allow-list
// a 403. An empty allow-list passes any authenticated session — several routes
// rely on that.
type RoleGuard struct {
	*transport.BaseHandler
	logger *slog.Logger
}

func NewRoleGuard(logger *slog.Logger) *RoleGuard {
	return &RoleGuard{
		BaseHandler: transport.NewBaseHandler(logger),
		logger:      logger,
	}
}

// RequireRoles builds a middleware allowing only the given roles. Comparison
// is case-insensitive: both sides are normalized. Denials carry the same JSON
// error envelope as every other error response.
func (g *RoleGuard) RequireRoles(allowed ...Role) func(http.Handler) http.Handler {
	allowSet := make(map[Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowSet[NormalizeRole(string(role))] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := SessionFromContext(r.Context())
			if !ok || session == nil {
				g.logger.Warn("role guard: no session in context", "path", r.URL.Path)
				g.HandleServiceError(w, internal.NewUnauthorizedError("authentication required", internal.ErrCodeInvalidToken))
				return
			}

			if len(allowSet) > 0 {
				if _, allowed := allowSet[NormalizeRole(string(session.Role))]; !allowed {
					g.logger.Warn("access denied: role not permitted",
						"username", session.Username,
						"role", session.Role,
						"path", r.URL.Path)
					g.HandleServiceError(w, internal.ErrRoleDenied)
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireStaff allows the three management roles that gate most mutations.
func (g *RoleGuard) RequireStaff() func(http.Handler) http.Handler {
	return g.RequireRoles(RoleAdmin, RoleManager, RoleAssistantManager)
}

// RequireAdmin allows only administrators.
func (g *RoleGuard) RequireAdmin() func(http.Handler) http.Handler {
	return g.RequireRoles(RoleAdmin)
}
