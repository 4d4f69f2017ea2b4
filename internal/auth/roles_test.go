package auth

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/frahmantamala/hr-payroll/internal"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Role Guard", func() {
	var (
		guard   *RoleGuard
		next    http.Handler
		invoked bool
	)

	ginkgo.BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		guard = NewRoleGuard(logger)
		invoked = false
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			invoked = true
			w.WriteHeader(http.StatusOK)
		})
	})

	request := func(session *Session) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if session != nil {
			req = req.WithContext(ContextWithSession(req.Context(), session))
		}
		return req
	}

	ginkgo.It("returns a 401 JSON envelope without a session", func() {
		rec := httptest.NewRecorder()
		guard.RequireStaff()(next).ServeHTTP(rec, request(nil))
		gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))
		gomega.Expect(rec.Header().Get("Content-Type")).To(gomega.Equal("application/json"))
		gomega.Expect(rec.Body.String()).To(gomega.ContainSubstring("authentication required"))
		gomega.Expect(invoked).To(gomega.BeFalse())
	})

	ginkgo.It("passes staff roles through the staff guard", func() {
		for _, role := range []Role{RoleAdmin, RoleManager, RoleAssistantManager} {
			invoked = false
			rec := httptest.NewRecorder()
			guard.RequireStaff()(next).ServeHTTP(rec, request(&Session{Username: "u", Role: role}))
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(invoked).To(gomega.BeTrue())
		}
	})

	ginkgo.It("returns a 403 JSON envelope for an employee on the staff guard", func() {
		rec := httptest.NewRecorder()
		guard.RequireStaff()(next).ServeHTTP(rec, request(&Session{Username: "u", Role: RoleEmployee}))
		gomega.Expect(rec.Code).To(gomega.Equal(http.StatusForbidden))
		gomega.Expect(rec.Header().Get("Content-Type")).To(gomega.Equal("application/json"))
		gomega.Expect(rec.Body.String()).To(gomega.ContainSubstring("do not have permission"))
		gomega.Expect(rec.Body.String()).To(gomega.ContainSubstring(string(internal.ErrCodeRoleDenied)))
		gomega.Expect(invoked).To(gomega.BeFalse())
	})

	ginkgo.It("compares roles case-insensitively", func() {
		rec := httptest.NewRecorder()
		guard.RequireAdmin()(next).ServeHTTP(rec, request(&Session{Username: "u", Role: Role("admin")}))
		gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
	})

	ginkgo.It("restricts the admin guard to administrators", func() {
		rec := httptest.NewRecorder()
		guard.RequireAdmin()(next).ServeHTTP(rec, request(&Session{Username: "u", Role: RoleManager}))
		gomega.Expect(rec.Code).To(gomega.Equal(http.StatusForbidden))
	})

	ginkgo.It("passes any authenticated session through an empty allow-list", func() {
		rec := httptest.NewRecorder()
		guard.RequireRoles()(next).ServeHTTP(rec, request(&Session{Username: "u", Role: RoleEmployee}))
		gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
	})
})
