package scoring

import (
	"math"

	"blockday/internal/domain"
)

// Result is the full scoring breakdown for one evaluation.
type Result struct {
	TotalXP             int     `json:"total_xp"`
	RawXP               float64 `json:"raw_xp"`
	FocusBonus          int     `json:"focus_bonus"`
	AdherenceRate       float64 `json:"adherence_rate"`
	AdherenceMultiplier float64 `json:"adherence_multiplier"`
}

// Evaluate computes the XP total from scratch. It is a pure function of
// its inputs: no caching, no incremental state, safe to call on every
// query. Cost is linear in sub-tasks plus logs, which is fine at
// personal-productivity scale.
//
// Per task: stake tasks win or lose their wager on done/todo, checklist
// tasks earn linearly per ticked item with a bonus when complete and a
// penalty when untouched, plain tasks earn fixed done/partial amounts.
// Any positive base of a done task is scaled by its priority
// multiplier; negative bases never are. The focus bonus adds a fixed
// amount per cumulative focus block across all logs, the adherence
// multiplier scales the sum once enough of the day is done, and the
// final total is clamped at zero after round-half-away-from-zero.
func Evaluate(tasks []domain.Task, logs []domain.TimeLog, rules Rules) Result {
	rawXP := 0.0
	doneCount := 0
	for _, t := range tasks {
		rawXP += taskBase(t, rules)
		if t.EffectiveStatus() == domain.StatusDone {
			doneCount++
		}
	}

	var focusSeconds int64
	for _, l := range logs {
		focusSeconds += l.DurationSeconds
	}
	focusBonus := 0
	if rules.FocusBlockSeconds > 0 {
		focusBonus = int(focusSeconds/rules.FocusBlockSeconds) * rules.FocusBlockXP
	}

	adherenceRate := 0.0
	if len(tasks) > 0 {
		adherenceRate = float64(doneCount) / float64(len(tasks))
	}
	adherenceMultiplier := 1.0
	if len(tasks) > 0 && adherenceRate >= rules.AdherenceThreshold {
		adherenceMultiplier = rules.AdherenceMultiplier
	}

	total := math.Round((rawXP + float64(focusBonus)) * adherenceMultiplier)
	if total < 0 {
		total = 0
	}

	return Result{
		TotalXP:             int(total),
		RawXP:               rawXP,
		FocusBonus:          focusBonus,
		AdherenceRate:       adherenceRate,
		AdherenceMultiplier: adherenceMultiplier,
	}
}

// Balance derives the spendable balance from an evaluation and the
// ledger's spent accumulator. It can go negative only if spending
// outpaced a later re-evaluation; callers gate redemptions on it.
func Balance(result Result, spentXP int) int {
	return result.TotalXP - spentXP
}

// taskBase computes one task's signed contribution before the
// adherence multiplier. The priority multiplier applies uniformly
// whenever the base is positive and the task is done, stake wins
// included.
func taskBase(t domain.Task, rules Rules) float64 {
	status := t.EffectiveStatus()
	base := 0.0

	switch {
	case t.IsStake():
		switch status {
		case domain.StatusDone:
			base = float64(*t.XPStakes)
		case domain.StatusTodo:
			base = -float64(*t.XPStakes)
		}
	case t.HasSubTasks():
		perItem := rules.SubTaskXP
		bonus := rules.CompletionBonus
		penalty := rules.NonStartPenalty
		if t.Profile == domain.ProfileDeep {
			perItem = rules.DeepSubTaskXP
			bonus = rules.DeepCompletionBonus
			penalty = rules.DeepNonStartPenalty
		}
		completed := t.CompletedSubTasks()
		base = float64(completed * perItem)
		switch status {
		case domain.StatusDone:
			base += float64(bonus)
		case domain.StatusTodo:
			base -= float64(penalty)
		}
	default:
		switch status {
		case domain.StatusDone:
			base = float64(rules.PlainDoneXP)
		case domain.StatusPartial:
			base = float64(rules.PlainPartialXP)
		}
	}

	if base > 0 && status == domain.StatusDone {
		base *= priorityMultiplier(t.Priority, rules)
	}
	return base
}

func priorityMultiplier(p domain.Priority, rules Rules) float64 {
	switch p {
	case domain.PriorityHigh:
		return rules.HighPriorityMultiplier
	case domain.PriorityLow:
		return rules.LowPriorityMultiplier
	default:
		return 1.0
	}
}
