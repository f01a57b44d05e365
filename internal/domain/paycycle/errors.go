package paycycle

import "errors"

var (
	ErrInvalidCycleType    = errors.New("invalid cycle type")
	ErrDateOrderMismatch   = errors.New("to date does not match the cycle derivation")
	ErrCheckDateMismatch   = errors.New("actual check date does not adjust onto the check date")
	ErrCheckDateBeforeClose = errors.New("actual check date precedes the period close")
	ErrSecondHalfMismatch  = errors.New("second half dates do not match the cycle derivation")
	ErrSecondHalfRequired  = errors.New("semimonthly settings require second half dates")
	ErrSecondHalfForbidden = errors.New("second half dates are only valid for semimonthly settings")
	ErrSettingNotFound     = errors.New("pay cycle setting not found")
	ErrSettingNameExists   = errors.New("pay cycle setting name already exists")
	ErrSettingLocked       = errors.New("pay cycle setting has resolved periods, dates are locked")
)
