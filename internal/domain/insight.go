package domain

import (
	"time"
)

// Insight is the latest parsed response from the insights model.
// It lives in its own slot, read-only for presentation; a failed
// request leaves the previous insight in place.
type Insight struct {
	RequestID       string
	Score           float64
	Summary         string
	Recommendations []string
	CreatedAt       time.Time
}

// IsValid checks that the score sits in the documented 0-100 range
// and a summary is present.
func (i Insight) IsValid() bool {
	return i.Score >= 0 && i.Score <= 100 && i.Summary != ""
}
