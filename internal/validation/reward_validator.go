package validation

import (
	"blockday/internal/domain"
)

// RewardValidator provides validation for Reward-related operations
type RewardValidator struct {
	validator *Validator
}

// NewRewardValidator creates a new reward validator
func NewRewardValidator() *RewardValidator {
	return &RewardValidator{
		validator: NewValidator(),
	}
}

// ValidateRewardForCreation validates a new reward before it is stored
func (rv *RewardValidator) ValidateRewardForCreation(reward domain.Reward) error {
	validationError := NewValidationError()

	trimmed := rv.validator.TrimAndValidateString(reward.Title)
	if !rv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("title")
	} else if !rv.validator.IsValidTitleLength(trimmed) {
		validationError.AddInvalidLengthError("title", trimmed, titleMinLength, titleMaxLength)
	}

	if !rv.validator.IsValidRewardCost(reward.Cost) {
		validationError.AddInvalidRangeError("cost", reward.Cost, "must be between 1 and 100000")
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateRewardID validates a reward ID
func (rv *RewardValidator) ValidateRewardID(id int64) error {
	if !rv.validator.IsValidID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("reward_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}
