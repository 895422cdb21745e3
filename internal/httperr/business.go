package httperr

import "errors"

// Business rule violation codes. Handlers translate these into HTTP
// statuses and the public error messages.
const (
	CodeMissingService = "missing_service"
	CodeMissingStart   = "missing_start"
	CodeMissingName    = "missing_name"
	CodeMissingPhone   = "missing_phone"
	CodeInvalidStart   = "invalid_start"
	CodeServiceUnknown = "service_not_found"
	CodeOutsideHours   = "outside_hours"
	CodePastTime       = "past_time"
	CodeSlotTaken      = "slot_taken"
	CodeStorageFailed  = "storage_unavailable"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extracts the code from a business error, or "" when the
// error is of any other kind.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
