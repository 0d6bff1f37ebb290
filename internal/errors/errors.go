package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrWrongCredentials is returned when the login credential pair does not match.
	ErrWrongCredentials = errors.New("wrong credentials")
	// ErrMissingCredentials is returned when credentials or the bearer token are absent.
	ErrMissingCredentials = errors.New("missing credentials")
	// ErrInvalidToken is returned when a bearer token fails verification or has expired.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenCreation is returned when signing a token fails.
	ErrTokenCreation = errors.New("token creation failed")

	// ErrCannotCreateExistingUser is returned when a create request carries an id.
	ErrCannotCreateExistingUser = errors.New("cannot create user with existing id")
	// ErrMissingID is returned when an update request carries no id.
	ErrMissingID = errors.New("missing id")
	// ErrNotFound is returned when no user matches the requested id.
	ErrNotFound = errors.New("user not found")
)

// FailedRequestError carries the detail of a storage-level request failure.
type FailedRequestError struct {
	Detail string
}

func (e *FailedRequestError) Error() string {
	return e.Detail
}

// NewFailedRequest creates a FailedRequestError with the given detail.
func NewFailedRequest(detail string) *FailedRequestError {
	return &FailedRequestError{Detail: detail}
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps the closed error taxonomy to HTTP errors. Anything
// outside the taxonomy renders as an internal error.
func MapErrorToHTTP(err error) *HTTPError {
	var failed *FailedRequestError
	switch {
	case errors.Is(err, ErrWrongCredentials):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "WRONG_CREDENTIALS")
	case errors.Is(err, ErrMissingCredentials):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MISSING_CREDENTIALS")
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_TOKEN")
	case errors.Is(err, ErrTokenCreation):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "TOKEN_CREATION")
	case errors.Is(err, ErrCannotCreateExistingUser):
		return NewHTTPError(http.StatusConflict, err.Error(), "CANNOT_CREATE_EXISTING_USER")
	case errors.Is(err, ErrMissingID):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MISSING_ID")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.As(err, &failed):
		return NewHTTPError(http.StatusInternalServerError, failed.Detail, "FAILED_REQUEST")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
