package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/samandr77/crm/internal/entity"
)

const (
	FullNameMinLen = 3
	FullNameMaxLen = 50
)

// ValidateClientInput checks the field contract for create and update.
// All failing fields are reported in one error, not just the first.
func ValidateClientInput(input entity.ClientInput) error {
	var fields []string

	nameLen := utf8.RuneCountInString(input.FullName)
	if nameLen < FullNameMinLen || nameLen > FullNameMaxLen {
		fields = append(fields, "fullName")
	}

	if input.Email == "" {
		fields = append(fields, "email")
	}

	if input.Description == "" {
		fields = append(fields, "description")
	}

	if len(fields) > 0 {
		return fmt.Errorf("%w: %s", entity.ErrValidation, strings.Join(fields, ", "))
	}

	return nil
}

func ValidateRequestInput(input entity.RequestInput) error {
	var fields []string

	if input.FullName == "" {
		fields = append(fields, "fullName")
	}

	if input.Title == "" {
		fields = append(fields, "title")
	}

	if !input.Status.IsValid() {
		fields = append(fields, "status")
	}

	if len(fields) > 0 {
		return fmt.Errorf("%w: %s", entity.ErrValidation, strings.Join(fields, ", "))
	}

	return nil
}
