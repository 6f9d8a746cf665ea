package chancing

// NormalizeAcceptanceRate returns the acceptance rate as a percentage.
// Rates <= 1 are read as fractions, so a genuine 1% rate cannot be told apart from 1.0.
func NormalizeAcceptanceRate(rate float64) float64 {
	if rate <= 1 {
		return rate * 100
	}
	return rate
}

// ResolveTier maps an acceptance rate percentage to its selectivity tier.
// Band upper bounds are inclusive; rates above every band (or NaN) fall in the last tier.
func (c Config) ResolveTier(ratePct float64) Tier {
	for _, tier := range c.Tiers {
		if ratePct <= tier.MaxRate {
			return tier
		}
	}
	return c.Tiers[len(c.Tiers)-1]
}
