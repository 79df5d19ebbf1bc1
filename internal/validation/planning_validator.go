package validation

import (
	"blockday/internal/domain"
)

// PlanningValidator provides validation for planning goal operations
type PlanningValidator struct {
	validator *Validator
}

// NewPlanningValidator creates a new planning validator
func NewPlanningValidator() *PlanningValidator {
	return &PlanningValidator{
		validator: NewValidator(),
	}
}

// ValidateGoalForCreation validates a new planning goal before it is stored
func (pv *PlanningValidator) ValidateGoalForCreation(goal domain.PlanningTask) error {
	validationError := NewValidationError()

	trimmed := pv.validator.TrimAndValidateString(goal.Title)
	if !pv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("title")
	} else if !pv.validator.IsValidTitleLength(trimmed) {
		validationError.AddInvalidLengthError("title", trimmed, titleMinLength, titleMaxLength)
	}

	if !goal.Category.IsValid() {
		validationError.AddInvalidValueError("category", goal.Category, "must be monthly or weekly")
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateGoalID validates a planning goal ID
func (pv *PlanningValidator) ValidateGoalID(id int64) error {
	if !pv.validator.IsValidID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("goal_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}
