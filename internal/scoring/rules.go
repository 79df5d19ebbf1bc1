package scoring

// Rules holds the XP economy tunables. Magnitudes live here rather
// than inline in the engine so alternate difficulty modes stay a
// constructor away.
type Rules struct {
	// Checklist tasks
	SubTaskXP           int `json:"sub_task_xp"`
	CompletionBonus     int `json:"completion_bonus"`
	NonStartPenalty     int `json:"non_start_penalty"`
	DeepSubTaskXP       int `json:"deep_sub_task_xp"`
	DeepCompletionBonus int `json:"deep_completion_bonus"`
	DeepNonStartPenalty int `json:"deep_non_start_penalty"`

	// Plain tasks
	PlainDoneXP    int `json:"plain_done_xp"`
	PlainPartialXP int `json:"plain_partial_xp"`

	// Priority multipliers, applied only to positive bases of done tasks
	HighPriorityMultiplier float64 `json:"high_priority_multiplier"`
	LowPriorityMultiplier  float64 `json:"low_priority_multiplier"`

	// Focus bonus
	FocusBlockSeconds int64 `json:"focus_block_seconds"`
	FocusBlockXP      int   `json:"focus_block_xp"`

	// Adherence multiplier
	AdherenceThreshold  float64 `json:"adherence_threshold"`
	AdherenceMultiplier float64 `json:"adherence_multiplier"`
}

// Default returns the standard economy: 10 XP per checklist item with a
// +25/-25 bonus/penalty pair, doubled magnitudes for deep routines, a
// +5 XP bonus per cumulative half hour of focus, and a 1.1x multiplier
// once 80% of the day is done.
func Default() Rules {
	return Rules{
		SubTaskXP:              10,
		CompletionBonus:        25,
		NonStartPenalty:        25,
		DeepSubTaskXP:          20,
		DeepCompletionBonus:    40,
		DeepNonStartPenalty:    50,
		PlainDoneXP:            50,
		PlainPartialXP:         20,
		HighPriorityMultiplier: 1.2,
		LowPriorityMultiplier:  0.8,
		FocusBlockSeconds:      1800,
		FocusBlockXP:           5,
		AdherenceThreshold:     0.8,
		AdherenceMultiplier:    1.1,
	}
}

// Hardcore returns a stricter economy for users who want skipped
// checklists to sting more.
func Hardcore() Rules {
	r := Default()
	r.NonStartPenalty = 40
	r.DeepNonStartPenalty = 80
	r.PlainPartialXP = 10
	r.AdherenceThreshold = 0.9
	return r
}

// ForMode maps a configured mode name to its rule set. Unknown modes
// fall back to the default economy.
func ForMode(mode string) Rules {
	if mode == "hardcore" {
		return Hardcore()
	}
	return Default()
}
