package validation

// ProjectValidator provides validation for project-related operations
type ProjectValidator struct {
	validator *Validator
}

// NewProjectValidator creates a new project validator
func NewProjectValidator() *ProjectValidator {
	return &ProjectValidator{validator: NewValidator()}
}

// ValidateName validates a project name for creation or rename
func (pv *ProjectValidator) ValidateName(name string) error {
	ve := NewValidationError()

	trimmed := pv.validator.TrimName(name)
	if !pv.validator.IsNonEmptyString(trimmed) {
		ve.AddRequiredError("project name")
	} else if !pv.validator.IsValidNameLength(trimmed) {
		ve.AddInvalidLengthError("project name", name, 1, ProjectNameMaxLength)
	}

	return ve.OrNil()
}

// ValidateID validates a project id
func (pv *ProjectValidator) ValidateID(id string) error {
	ve := NewValidationError()
	if !pv.validator.IsValidID(id) {
		ve.AddInvalidFormatError("project id", id, "UUID")
	}
	return ve.OrNil()
}

// CleanName returns the trimmed project name
func (pv *ProjectValidator) CleanName(name string) string {
	return pv.validator.TrimName(name)
}
