package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrAlreadyExists      = errors.New("resource already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrBadRequest         = errors.New("bad request")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")

	// Seller application workflow
	ErrAlreadySeller        = errors.New("already registered as a seller")
	ErrAlreadyApproved      = errors.New("seller application already approved")
	ErrDuplicateApplication = errors.New("seller application already pending")
	ErrTermsNotAccepted     = errors.New("terms and conditions not accepted")
	ErrTargetNotApplicant   = errors.New("user is not a seller applicant")
	ErrInvalidDecision      = errors.New("invalid review decision")
	ErrNoApplication        = errors.New("no seller application found")

	// Product lifecycle
	ErrSellerNotApproved       = errors.New("seller account not approved")
	ErrNotOwner                = errors.New("not the product owner")
	ErrAssetTooLarge           = errors.New("asset exceeds maximum allowed size")
	ErrAssetTypeNotAllowed     = errors.New("asset content type not allowed")
	ErrThumbnailTypeNotAllowed = errors.New("thumbnail content type not allowed")
)

// AppError represents application error with HTTP status
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrInvalidInput)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, message, ErrForbidden)
}

func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, message, ErrAlreadyExists)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "internal server error", err)
}

// HTTPStatus maps a domain error to its HTTP status. Authorization kinds map
// to 403, validation kinds to 400, lookups to 404.
func HTTPStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}

	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrNoApplication):
		return http.StatusNotFound
	case errors.Is(err, ErrForbidden),
		errors.Is(err, ErrNotOwner),
		errors.Is(err, ErrSellerNotApproved):
		return http.StatusForbidden
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrBadRequest),
		errors.Is(err, ErrAlreadySeller),
		errors.Is(err, ErrAlreadyApproved),
		errors.Is(err, ErrDuplicateApplication),
		errors.Is(err, ErrTermsNotAccepted),
		errors.Is(err, ErrTargetNotApplicant),
		errors.Is(err, ErrInvalidDecision),
		errors.Is(err, ErrAssetTooLarge),
		errors.Is(err, ErrAssetTypeNotAllowed),
		errors.Is(err, ErrThumbnailTypeNotAllowed):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
