package model

import "errors"

// Error codes
const (
	ErrCodeInvalidCredentials = "USR001"
	ErrCodeStorageUnavailable = "USR002"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrStorageUnavailable = errors.New("users table not available")
)

const (
	MsgInvalidCredentials     = "Invalid credentials"
	MsgUsersTableMissing      = "Users sheet not found"
	MsgUsersTableMissingSetup = "Users sheet not found. Please create a sheet named 'Users'."
	MsgUsersTableFound        = "Users sheet found!"
)

// AuthError carries a code and the user-facing message.
type AuthError struct {
	Code    string
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func NewInvalidCredentialsError() *AuthError {
	return &AuthError{
		Code:    ErrCodeInvalidCredentials,
		Message: MsgInvalidCredentials,
		Err:     ErrInvalidCredentials,
	}
}

func NewStorageUnavailableError(message string) *AuthError {
	return &AuthError{
		Code:    ErrCodeStorageUnavailable,
		Message: message,
		Err:     ErrStorageUnavailable,
	}
}
