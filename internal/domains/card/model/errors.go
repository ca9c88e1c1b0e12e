package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeCardNotFound       = "CARD001"
	ErrCodeAlreadyAdopted     = "CARD002"
	ErrCodeUserHasCard        = "CARD003"
	ErrCodeNotAuthor          = "CARD004"
	ErrCodeStorageUnavailable = "CARD005"
	ErrCodeMalformedRequest   = "CARD006"
)

// Errors
var (
	ErrCardNotFound       = errors.New("card not found")
	ErrAlreadyAdopted     = errors.New("card already adopted by another user")
	ErrUserHasCard        = errors.New("user already holds an adopted card")
	ErrNotAuthor          = errors.New("only the card author can release it")
	ErrStorageUnavailable = errors.New("cards table not available")
	ErrMalformedRequest   = errors.New("malformed request")
)

// CardError carries a code and the user-facing message.
// Message is product copy (partly Catalan) and is returned verbatim to clients.
type CardError struct {
	Code    string
	Message string
	Err     error
}

func (e *CardError) Error() string {
	return e.Message
}

func (e *CardError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewCardNotFoundError(cardID string) *CardError {
	return &CardError{
		Code:    ErrCodeCardNotFound,
		Message: "Fitxa no trobada: " + cardID,
		Err:     ErrCardNotFound,
	}
}

// NewUnknownCardError is the read-path variant of NewCardNotFoundError.
func NewUnknownCardError() *CardError {
	return &CardError{
		Code:    ErrCodeCardNotFound,
		Message: "Card not found",
		Err:     ErrCardNotFound,
	}
}

func NewAlreadyAdoptedError(author string) *CardError {
	return &CardError{
		Code:    ErrCodeAlreadyAdopted,
		Message: "Aquesta fitxa ja ha estat adoptada per " + author,
		Err:     ErrAlreadyAdopted,
	}
}

func NewUserHasCardError(cardID string) *CardError {
	return &CardError{
		Code:    ErrCodeUserHasCard,
		Message: fmt.Sprintf("Ja tens una fitxa adoptada: %s. Allibera-la primer.", cardID),
		Err:     ErrUserHasCard,
	}
}

func NewNotAuthorError() *CardError {
	return &CardError{
		Code:    ErrCodeNotAuthor,
		Message: "Només l'autor de la fitxa pot alliberar-la",
		Err:     ErrNotAuthor,
	}
}

func NewStorageUnavailableError(message string) *CardError {
	return &CardError{
		Code:    ErrCodeStorageUnavailable,
		Message: message,
		Err:     ErrStorageUnavailable,
	}
}

func NewMalformedRequestError(err error) *CardError {
	return &CardError{
		Code:    ErrCodeMalformedRequest,
		Message: err.Error(),
		Err:     ErrMalformedRequest,
	}
}
