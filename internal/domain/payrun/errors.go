package payrun

import "errors"

var (
	ErrInstanceNotFound = errors.New("pay period instance not found")
	ErrOrderViolation   = errors.New("an earlier period under this setting is still unresolved")
	ErrAlreadyResolved  = errors.New("period is already submitted or skipped")
	ErrFinalizePending  = errors.New("period has unfinalized payments with a non-zero amount")
	ErrDuplicatePeriod  = errors.New("a period instance already exists for this from date")
)
