// internal/errors/errors.go
package appErrors

import (
	"errors"
	"fmt"
)

// NotFoundError means an identifier did not resolve to an existing row.
type NotFoundError struct {
	Entity string
	ID     int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Entity, e.ID)
}

// Helper constructors
func NewBrandNotFound(id int) error     { return &NotFoundError{Entity: "brand", ID: id} }
func NewCampaignNotFound(id int) error  { return &NotFoundError{Entity: "campaign", ID: id} }
func NewProgramNotFound(id int) error   { return &NotFoundError{Entity: "program", ID: id} }
func NewPlacementNotFound(id int) error { return &NotFoundError{Entity: "placement", ID: id} }

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ValidationError means the input was rejected before any row was written.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func NewValidation(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
