package service

import "errors"

var (
	ErrUserNotFound          = errors.New("no account found with this mobile number")
	ErrBadPassword           = errors.New("incorrect password")
	ErrAccountDisabled       = errors.New("this account has been disabled")
	ErrPasswordMismatch      = errors.New("passwords don't match")
	ErrDuplicateMobileNumber = errors.New("mobile number already registered")
	ErrInvalidOldPassword    = errors.New("invalid old password")
	ErrInvalidMobileNumber   = errors.New("invalid mobile number")
	ErrInvalidEmail          = errors.New("invalid email address")

	ErrServiceNotFound = errors.New("service not found")
	ErrOrderNotFound   = errors.New("order not found")

	ErrFieldRequired         = errors.New("field is required")
	ErrInvalidQuantity       = errors.New("quantity must be a positive number")
	ErrInvalidDeliveryCost   = errors.New("delivery cost must not be negative")
	ErrInvalidPaymentMethod  = errors.New("payment method must be cash or card")
	ErrInvalidStatus         = errors.New("invalid order status")
	ErrInvalidDeliveryWindow = errors.New("estimated delivery time must be positive")
)

// ValidationError scopes a caller-fixable input problem to a single field.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }

func invalid(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Err: err}
}
