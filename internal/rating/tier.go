package rating

import (
	"fmt"
	"summoner-rating/internal/domain"
)

var tierMultipliers = map[domain.Tier]int{
	domain.TierChallenger:  50,
	domain.TierGrandmaster: 40,
	domain.TierMaster:      30,
	domain.TierDiamond:     20,
	domain.TierPlatinum:    10,
	domain.TierGold:        7,
	domain.TierSilver:      5,
	domain.TierBronze:      3,
	domain.TierIron:        2,
	domain.TierUnranked:    1,
}

// Multiplier resolves a tier name, case-insensitively, to its score
// multiplier. Unknown tiers are an error rather than a neutral default.
func Multiplier(tier domain.Tier) (int, error) {
	m, ok := tierMultipliers[domain.NormalizeTier(string(tier))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownTier, string(tier))
	}
	return m, nil
}
