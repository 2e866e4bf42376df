package validation

// SessionValidator provides validation for session-related operations
type SessionValidator struct {
	validator *Validator
}

// NewSessionValidator creates a new session validator
func NewSessionValidator() *SessionValidator {
	return &SessionValidator{validator: NewValidator()}
}

// ValidateID validates a session id
func (sv *SessionValidator) ValidateID(id string) error {
	ve := NewValidationError()
	if !sv.validator.IsValidID(id) {
		ve.AddInvalidFormatError("session id", id, "UUID")
	}
	return ve.OrNil()
}

// ValidateInterval validates a session's start/end pair. The end may be
// nil (in progress); a non-nil end must not precede the start.
func (sv *SessionValidator) ValidateInterval(startAt int64, endAt *int64) error {
	ve := NewValidationError()

	if !sv.validator.IsValidTimestamp(startAt) {
		ve.AddInvalidValueError("start time", startAt, "must be a positive epoch-ms timestamp")
	}
	if endAt != nil && !sv.validator.IsValidTimestamp(*endAt) {
		ve.AddInvalidValueError("end time", *endAt, "must be a positive epoch-ms timestamp")
	}
	if !sv.validator.IsValidInterval(startAt, endAt) {
		ve.AddInvalidRangeError("time range", map[string]interface{}{
			"start": startAt,
			"end":   endAt,
		}, "end time must not be before start time")
	}

	return ve.OrNil()
}
