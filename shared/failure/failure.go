package failure

import (
	"errors"
	"net/http"
)

// Failure is an error that already knows its HTTP status. Details carries
// field errors, conflicting reservations or the recomputed quote.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

func (e *Failure) Error() string {
	return e.Message
}

func newFailure(code int, message string, details any) error {
	return &Failure{Code: code, Message: message, Details: details}
}

// BadRequest maps err to a 400, keeping nil as nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return newFailure(http.StatusBadRequest, err.Error(), nil)
}

func BadRequestFromString(msg string) error {
	return newFailure(http.StatusBadRequest, msg, nil)
}

// BadRequestWithDetails returns a 400 carrying per-field messages.
func BadRequestWithDetails(msg string, details any) error {
	return newFailure(http.StatusBadRequest, msg, details)
}

func Unauthorized(msg string) error {
	return newFailure(http.StatusUnauthorized, msg, nil)
}

func Forbidden(msg string) error {
	return newFailure(http.StatusForbidden, msg, nil)
}

// NotFound takes the user facing message, usually "<entity> not found".
func NotFound(msg string) error {
	return newFailure(http.StatusNotFound, msg, nil)
}

func Conflict(msg string) error {
	return newFailure(http.StatusConflict, msg, nil)
}

// ConflictWithDetails returns a 409 with the conflicting resources attached.
func ConflictWithDetails(msg string, details any) error {
	return newFailure(http.StatusConflict, msg, details)
}

// Unprocessable is for well-formed requests the business rules refuse, such
// as a price mismatch or an address outside the delivery radius.
func Unprocessable(msg string, details any) error {
	return newFailure(http.StatusUnprocessableEntity, msg, details)
}

// GetCode returns the status of the first Failure in err's chain, 500 otherwise.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

func GetDetails(err error) any {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Details
	}

	return nil
}
