package validation

import (
	"strings"

	"github.com/google/uuid"
)

const (
	// ProjectNameMaxLength bounds project names; there is no practical
	// reason for longer names in a personal time log.
	ProjectNameMaxLength = 255
)

// Validator provides common validation utilities
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidNameLength checks if a name length is within limits
func (v *Validator) IsValidNameLength(name string) bool {
	length := len(strings.TrimSpace(name))
	return length >= 1 && length <= ProjectNameMaxLength
}

// IsValidID checks if an id is a well-formed UUID
func (v *Validator) IsValidID(id string) bool {
	return uuid.Validate(id) == nil
}

// IsValidTimestamp checks if an epoch-ms timestamp is plausible
func (v *Validator) IsValidTimestamp(ts int64) bool {
	return ts > 0
}

// IsValidInterval checks that an optional end does not precede its start
func (v *Validator) IsValidInterval(startAt int64, endAt *int64) bool {
	if endAt == nil {
		return true // open interval
	}
	return *endAt >= startAt
}

// TrimName trims whitespace and returns the cleaned name
func (v *Validator) TrimName(s string) string {
	return strings.TrimSpace(s)
}
