package validation

import (
	"strings"

	"blockday/internal/domain"
)

const (
	titleMinLength = 1
	titleMaxLength = 255
	maxStake       = 10000
	maxRewardCost  = 100000
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

// IsValidTitleLength checks if a title length is within limits
func (v *Validator) IsValidTitleLength(title string) bool {
	length := len(strings.TrimSpace(title))
	return length >= titleMinLength && length <= titleMaxLength
}

// IsValidID checks if an entity ID is valid (positive)
func (v *Validator) IsValidID(id int64) bool {
	return id > 0
}

// IsValidSchedule checks a schedule block against the 0-23 hour and
// 0-59 minute bounds with a positive duration
func (v *Validator) IsValidSchedule(block domain.ScheduleBlock) bool {
	return block.IsValid()
}

// IsValidStake checks if a wager amount is positive and sane
func (v *Validator) IsValidStake(stake int) bool {
	return stake > 0 && stake <= maxStake
}

// IsValidRewardCost checks if a reward cost is positive and sane
func (v *Validator) IsValidRewardCost(cost int) bool {
	return cost > 0 && cost <= maxRewardCost
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}
