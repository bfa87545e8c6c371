package services

import "github.com/pkg/errors"

// ErrForbidden is returned when the caller exists-checked a record it does not own.
var ErrForbidden = errors.New("caller is not the owner of this shop")

// ErrInvalidCredentials is returned on a failed login attempt.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ErrInvalidToken is returned when a refresh token cannot be verified.
var ErrInvalidToken = errors.New("invalid or expired token")

// ErrDuplicateVendor is returned when a username or email is already taken.
var ErrDuplicateVendor = errors.New("username or email already exists")

// ValidationError reports a request field constraint violation. The detail is
// safe to surface to the caller verbatim.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Detail
}
