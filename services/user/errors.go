package user

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAuthFailed         = errors.New("authentication failed, please try again")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
)

// InputError reports a malformed sign-in or sign-up request.
type InputError struct {
	Message string
}

func (e InputError) Error() string {
	return e.Message
}
