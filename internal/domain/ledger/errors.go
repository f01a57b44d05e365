package ledger

import "errors"

var (
	ErrPaymentNotFound            = errors.New("payment detail not found")
	ErrFinalizeNotAllowed         = errors.New("cannot finalize while a timesheet approval is pending")
	ErrNonZeroAmountBlocked       = errors.New("amount must be zero while a timesheet approval is pending")
	ErrFinalizeRequiredForPayment = errors.New("non-draft payment with a positive amount must be finalized")
	ErrAlreadyFinalized           = errors.New("payment detail is finalized and can no longer change")
	ErrPeriodResolved             = errors.New("period is already submitted or skipped, payments are closed")
)
