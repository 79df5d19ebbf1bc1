package validation

import (
	"blockday/internal/domain"
)

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateTitle validates a task title for creation or update
func (tv *TaskValidator) ValidateTitle(title string) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimAndValidateString(title)
	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("title")
		return validationError
	}
	if !tv.validator.IsValidTitleLength(trimmed) {
		validationError.AddInvalidLengthError("title", trimmed, titleMinLength, titleMaxLength)
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateTaskForCreation validates a new task before it is stored.
// A stake and a checklist on the same task are rejected here even
// though the scoring engine would pick the checklist path; the
// combination is always a user mistake.
func (tv *TaskValidator) ValidateTaskForCreation(task domain.Task) error {
	validationError := NewValidationError()

	if titleErr := tv.ValidateTitle(task.Title); titleErr != nil {
		if titleValidationErr, ok := titleErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, titleValidationErr.Errors...)
		}
	}

	if !task.Priority.IsValid() {
		validationError.AddInvalidValueError("priority", task.Priority, "must be low, medium or high")
	}
	if !task.Profile.IsValid() {
		validationError.AddInvalidValueError("profile", task.Profile, "must be standard or deep")
	}
	if task.Schedule != nil && !tv.validator.IsValidSchedule(*task.Schedule) {
		validationError.AddInvalidRangeError("schedule", task.Schedule, "start must be a time of day and duration positive")
	}
	if task.XPStakes != nil {
		if !tv.validator.IsValidStake(*task.XPStakes) {
			validationError.AddInvalidRangeError("xp_stakes", *task.XPStakes, "must be between 1 and 10000")
		}
		if len(task.SubTasks) > 0 {
			validationError.AddInvalidValueError("xp_stakes", *task.XPStakes, "a staked task cannot carry a checklist")
		}
	}
	for _, subTask := range task.SubTasks {
		if !subTask.IsValid() {
			validationError.AddInvalidValueError("sub_tasks", subTask.Title, "each item needs a title and non-negative XP")
		}
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if !tv.validator.IsValidID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("task_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

// ValidateSubTaskID validates a checklist item ID
func (tv *TaskValidator) ValidateSubTaskID(id int64) error {
	if !tv.validator.IsValidID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("sub_task_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}
