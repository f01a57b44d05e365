package response

import (
	"errors"
	"net/http"

	"github.com/asifshaikgit/workforce-sub004/internal/domain/auth"
	"github.com/asifshaikgit/workforce-sub004/internal/domain/employee"
	"github.com/asifshaikgit/workforce-sub004/internal/domain/ledger"
	"github.com/asifshaikgit/workforce-sub004/internal/domain/paycycle"
	"github.com/asifshaikgit/workforce-sub004/internal/domain/payrun"
	"github.com/asifshaikgit/workforce-sub004/internal/domain/user"
	"github.com/asifshaikgit/workforce-sub004/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Every rejection keeps
// its single specific reason so callers can tell "fix your input" apart
// from "try again later".
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// Pay cycle domain errors
	case errors.Is(err, paycycle.ErrSettingNotFound):
		NotFound(w, "Pay cycle setting not found")
	case errors.Is(err, paycycle.ErrSettingNameExists):
		Conflict(w, "Pay cycle setting name already exists")
	case errors.Is(err, paycycle.ErrSettingLocked):
		Conflict(w, "Pay cycle setting has generated periods, dates are locked")
	case errors.Is(err, paycycle.ErrInvalidCycleType),
		errors.Is(err, paycycle.ErrDateOrderMismatch),
		errors.Is(err, paycycle.ErrCheckDateMismatch),
		errors.Is(err, paycycle.ErrCheckDateBeforeClose),
		errors.Is(err, paycycle.ErrSecondHalfMismatch),
		errors.Is(err, paycycle.ErrSecondHalfRequired),
		errors.Is(err, paycycle.ErrSecondHalfForbidden):
		BadRequest(w, err.Error(), nil)

	// Pay run domain errors
	case errors.Is(err, payrun.ErrInstanceNotFound):
		NotFound(w, "Pay period instance not found")
	case errors.Is(err, payrun.ErrOrderViolation),
		errors.Is(err, payrun.ErrAlreadyResolved),
		errors.Is(err, payrun.ErrFinalizePending),
		errors.Is(err, payrun.ErrDuplicatePeriod):
		Conflict(w, err.Error())

	// Ledger domain errors
	case errors.Is(err, ledger.ErrPaymentNotFound):
		NotFound(w, "Payment detail not found")
	case errors.Is(err, ledger.ErrFinalizeNotAllowed),
		errors.Is(err, ledger.ErrNonZeroAmountBlocked),
		errors.Is(err, ledger.ErrFinalizeRequiredForPayment),
		errors.Is(err, ledger.ErrAlreadyFinalized),
		errors.Is(err, ledger.ErrPeriodResolved):
		Conflict(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
