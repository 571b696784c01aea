package domain

import "strings"

type Tier string

const (
	TierChallenger  Tier = "challenger"
	TierGrandmaster Tier = "grandmaster"
	TierMaster      Tier = "master"
	TierDiamond     Tier = "diamond"
	TierPlatinum    Tier = "platinum"
	TierGold        Tier = "gold"
	TierSilver      Tier = "silver"
	TierBronze      Tier = "bronze"
	TierIron        Tier = "iron"
	TierUnranked    Tier = "unranked"
)

// NormalizeTier lowercases and trims a tier name as reported by the league
// endpoint ("DIAMOND" -> "diamond"). It does not validate the result.
func NormalizeTier(s string) Tier {
	return Tier(strings.ToLower(strings.TrimSpace(s)))
}
