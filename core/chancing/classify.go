package chancing

// Classify labels a chance as Safety, Target or Reach and picks its recommendation.
// The acceptance rate is consulted first: the most selective colleges are always a Reach.
func (cc ClassifierConfig) Classify(chance int, ratePct float64) (Category, string) {
	var (
		category Category
		key      RecommendationKey
	)

	switch {
	case ratePct <= cc.ReachOnlyRate:
		category = CategoryReach
		if chance >= cc.StrongReachChance {
			key = RecHighlySelectiveStrong
		} else {
			key = RecHighlySelective
		}
	case ratePct <= cc.SelectiveRate:
		if chance >= cc.SelectiveTarget {
			category, key = CategoryTarget, RecSelectiveTarget
		} else {
			category, key = CategoryReach, RecSelectiveReach
		}
	case ratePct <= cc.ModerateRate:
		category, key = bandCategory(chance, cc.ModerateSafety, cc.ModerateTarget, RecSafety)
	default:
		category, key = bandCategory(chance, cc.OpenSafety, cc.OpenTarget, RecLikely)
	}
	return category, cc.Recommendations[key]
}

func bandCategory(chance, safetyAt, targetAt int, safetyKey RecommendationKey) (Category, RecommendationKey) {
	switch {
	case chance >= safetyAt:
		return CategorySafety, safetyKey
	case chance >= targetAt:
		return CategoryTarget, RecTarget
	default:
		return CategoryReach, RecReach
	}
}
