package entities

// Tier is a named payment level gating feature access.
type Tier string

const (
	TierFree      Tier = "free"
	TierEssential Tier = "essential"
	TierPremium   Tier = "premium"
	TierVIP       Tier = "vip"
)

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierFree, TierEssential, TierPremium, TierVIP:
		return true
	}
	return false
}

// Goal is the user's stated primary financial goal.
type Goal string

const (
	GoalEmergency Goal = "emergency"
	GoalDebt      Goal = "debt"
	GoalSave      Goal = "save"
	GoalInvest    Goal = "invest"
)
