package domain

// Reward represents a self-defined item redeemable for accumulated XP.
// RedeemedCount grows by one on every successful redemption; rewards
// are never deleted automatically.
type Reward struct {
	ID            int64
	Title         string
	Cost          int
	Icon          string
	RedeemedCount int
}

// NewReward creates a redeemable reward with the given cost.
func NewReward(title string, cost int, icon string) Reward {
	return Reward{
		Title: title,
		Cost:  cost,
		Icon:  icon,
	}
}

// IsValid checks if the reward has valid data.
func (r Reward) IsValid() bool {
	return r.Title != "" && r.Cost > 0
}
