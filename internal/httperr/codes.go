package httperr

import "net/http"

const (
	CodeInvalidRequest          = "invalid_request"
	CodeInvalidTimeWindow       = "invalid_time_window"
	CodeOutOfHours              = "out_of_hours"
	CodeLimitExceeded           = "limit_exceeded"
	CodeNoProfessionalAvailable = "no_professional_available"
	CodeSlotConflict            = "slot_conflict"
	CodePastDate                = "past_date"
	CodeNotFound                = "not_found"
	CodeNotConfigured           = "not_configured"
	CodeNoMatchingLock          = "no_matching_lock"
	CodeAlreadyCancelled        = "already_cancelled"
	CodePastCancellationWindow  = "past_cancellation_window"
	CodeTooEarly                = "too_early"
	CodeForbidden               = "forbidden"
	CodeScheduleClosed          = "schedule_closed"
	CodeInvalidRole             = "invalid_role"
	CodeUnauthenticated         = "unauthenticated"
	CodeAlreadyDisabled         = "already_disabled"
	CodeInvalidCredentials      = "invalid_credentials"
	CodeUsernameTaken           = "username_taken"
	CodeInvalidEmail            = "invalid_email"
)

var statusByCode = map[string]int{
	CodeInvalidRequest:          http.StatusBadRequest,
	CodeInvalidTimeWindow:       http.StatusUnprocessableEntity,
	CodeOutOfHours:              http.StatusUnprocessableEntity,
	CodeLimitExceeded:           http.StatusUnprocessableEntity,
	CodeNoProfessionalAvailable: http.StatusConflict,
	CodeSlotConflict:            http.StatusConflict,
	CodePastDate:                http.StatusUnprocessableEntity,
	CodeNotFound:                http.StatusNotFound,
	CodeNotConfigured:           http.StatusUnprocessableEntity,
	CodeNoMatchingLock:          http.StatusConflict,
	CodeAlreadyCancelled:        http.StatusConflict,
	CodePastCancellationWindow:  http.StatusUnprocessableEntity,
	CodeTooEarly:                http.StatusUnprocessableEntity,
	CodeForbidden:               http.StatusForbidden,
	CodeScheduleClosed:          http.StatusConflict,
	CodeInvalidRole:             http.StatusUnprocessableEntity,
	CodeUnauthenticated:         http.StatusUnauthorized,
	CodeAlreadyDisabled:         http.StatusConflict,
	CodeInvalidCredentials:      http.StatusUnauthorized,
	CodeUsernameTaken:           http.StatusConflict,
	CodeInvalidEmail:            http.StatusBadRequest,
}

// StatusFor returns the HTTP status for a business code; unknown codes are
// client errors.
func StatusFor(code string) int {
	if s, ok := statusByCode[code]; ok {
		return s
	}
	return http.StatusBadRequest
}
