package middleware

import (
	"net/http"

	"github.com/asifshaikgit/workforce-sub004/internal/domain/user"
	"github.com/asifshaikgit/workforce-sub004/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequirePayrollManager requires payroll_manager or admin role
func RequirePayrollManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Payroll manager access required")
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.Forbidden(w, "Payroll manager access required")
			return
		}

		role := user.Role(roleStr)
		if role != user.RolePayrollManager && role != user.RoleAdmin {
			response.Forbidden(w, "Payroll manager access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAdmin requires admin role
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Admin access required")
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(user.RoleAdmin) {
			response.Forbidden(w, "Admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
