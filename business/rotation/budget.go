package rotation

import "math"

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Reallocate splits totalBudget across the scored campaigns proportional
// to their raw composite scores, holding every campaign between the
// configured min and max share of the total. Clamping and rounding leave
// a residual, which goes entirely to the top scorer so the allocations
// still sum to totalBudget; that can push the top campaign past the max
// share, which is accepted in favour of budget conservation.
//
// With no performance signal (all scores zero) the budget is split
// equally. An empty input returns an empty map.
func Reallocate(cfg Config, scored []ScoredCampaign, totalBudget float64) map[string]float64 {
	allocations := make(map[string]float64, len(scored))
	if len(scored) == 0 {
		return allocations
	}

	sumScores := 0.0
	for _, sc := range scored {
		sumScores += sc.RawScore
	}

	if sumScores == 0 {
		equal := round2(totalBudget / float64(len(scored)))
		for _, sc := range scored {
			allocations[sc.Campaign.ID] = equal
		}
		return allocations
	}

	minAlloc := cfg.MinBudgetShare * totalBudget
	maxAlloc := cfg.MaxBudgetShare * totalBudget

	allocated := 0.0
	topID := scored[0].Campaign.ID
	topScore := scored[0].RawScore

	for _, sc := range scored {
		amount := totalBudget * (sc.RawScore / sumScores)
		if amount < minAlloc {
			amount = minAlloc
		}
		if amount > maxAlloc {
			amount = maxAlloc
		}
		amount = round2(amount)

		allocations[sc.Campaign.ID] = amount
		allocated += amount

		if sc.RawScore > topScore {
			topID = sc.Campaign.ID
			topScore = sc.RawScore
		}
	}

	// hand the clamping/rounding residual to the best performer
	residual := round2(totalBudget - allocated)
	if residual != 0 {
		allocations[topID] = round2(allocations[topID] + residual)
	}

	return allocations
}
