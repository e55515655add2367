package user

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/landing-builder-backend/internal/domain"
)

const maxDisplayNameLen = 100

// UpdateDisplayNameInput holds the new display name.
type UpdateDisplayNameInput struct {
	DisplayName string
}

// Validate validates the update input.
func (i UpdateDisplayNameInput) Validate() error {
	name := strings.TrimSpace(i.DisplayName)
	switch {
	case name == "":
		return domain.NewValidationError("display_name", "required")
	case utf8.RuneCountInString(name) > maxDisplayNameLen:
		return domain.NewValidationError("display_name", "too long")
	}
	return nil
}
