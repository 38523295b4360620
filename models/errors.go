package models

import (
	"errors"
	"fmt"
)

// ValidationError reports invalid client input: an empty required field, a
// length bound exceeded, a numeric field out of range or an unknown enum value.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an identifier that does not exist or refers to a
// soft-deleted record.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
}

func NewHotelNotFound(id uint) *NotFoundError {
	return &NotFoundError{Entity: "hotel", ID: id}
}

func NewRoomTypeNotFound(id uint) *NotFoundError {
	return &NotFoundError{Entity: "room type", ID: id}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
