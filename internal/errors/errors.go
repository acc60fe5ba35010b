package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	// Unknown email and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("Invalid credentials")
	// ErrMissingFields is returned when a required registration field is blank.
	ErrMissingFields = errors.New("Missing required fields")
	// ErrUserExists is returned when the username or email is already taken.
	ErrUserExists = errors.New("Username or email already exists")
	// ErrUserNotFound is returned when the token identity no longer resolves to a user.
	ErrUserNotFound = errors.New("User not found")
	// ErrTaskNotFound is returned when no task matches (id, owner).
	ErrTaskNotFound = errors.New("Task not found")
	// ErrInvalidDueDate is returned when a due date string is not an ISO date.
	ErrInvalidDueDate = errors.New("Invalid due date")
)

// ErrorResponse is the JSON body returned on every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HTTPError pairs a domain error message with an HTTP status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Message: e.Message}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrMissingFields), errors.Is(err, ErrInvalidDueDate):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrUserExists):
		return NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrTaskNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
}
