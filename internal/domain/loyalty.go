package domain

type LoyaltyTier string

const (
	LoyaltyTierBronze LoyaltyTier = "Bronze"
	LoyaltyTierSilver LoyaltyTier = "Silver"
	LoyaltyTierGold   LoyaltyTier = "Gold"
)

const (
	SilverTierThreshold = 50
	GoldTierThreshold   = 100
)

// TierForPoints maps a point balance onto its tier:
// Bronze [0,50), Silver [50,100), Gold [100,∞).
func TierForPoints(points int) LoyaltyTier {
	switch {
	case points >= GoldTierThreshold:
		return LoyaltyTierGold
	case points >= SilverTierThreshold:
		return LoyaltyTierSilver
	default:
		return LoyaltyTierBronze
	}
}

// Benefits is the advertised perk text for the tier. No discount is applied to
// rental cost.
func (t LoyaltyTier) Benefits() string {
	switch t {
	case LoyaltyTierGold:
		return "10% discount + premium support + free upgrades"
	case LoyaltyTierSilver:
		return "5% discount + priority booking"
	default:
		return "Standard service"
	}
}
