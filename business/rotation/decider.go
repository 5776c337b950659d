package rotation

import (
	"fmt"
	"sort"
	"strings"

	"brandBOS/domain"
)

const reasonInsufficientCampaigns = "Insufficient campaigns for rotation analysis"

// Decide compares the best and worst adjusted scores across the active
// campaigns and recommends pausing the worst performer when all gates
// hold: the gap exceeds the rotation threshold, the worst campaign has
// run its minimum duration, it sits below the underperformance floor,
// and there is a queued campaign to take its slot. At most one pause is
// recommended per run.
func Decide(cfg Config, scored []ScoredCampaign, queued []domain.Campaign) domain.RotationRecommendation {
	ranked := make([]ScoredCampaign, len(scored))
	copy(ranked, scored)

	// ties keep input order
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AdjustedScore > ranked[j].AdjustedScore
	})

	currentIDs := make([]string, 0, len(ranked))
	for _, sc := range ranked {
		currentIDs = append(currentIDs, sc.Campaign.ID)
	}

	rec := domain.RotationRecommendation{
		CurrentCampaignIDs: currentIDs,
		Status:             domain.RecommendationStatusPending,
	}

	if len(ranked) < 2 {
		rec.Reasoning = reasonInsufficientCampaigns
		return rec
	}

	best := ranked[0]
	worst := ranked[len(ranked)-1]
	gap := best.AdjustedScore - worst.AdjustedScore

	gapExceeded := gap > cfg.RotationThreshold
	oldEnough := worst.AgeDays >= cfg.MinCampaignDurationDays
	underperforming := worst.AdjustedScore < cfg.UnderperformanceScore
	queueReady := len(queued) > 0

	if gapExceeded && oldEnough && underperforming && queueReady {
		pauseID := worst.Campaign.ID
		promote := domain.PromoteNextInQueue

		rec.CampaignToPause = &pauseID
		rec.CampaignToPromote = &promote
		rec.RequiresAction = true
		rec.Reasoning = fmt.Sprintf(
			"Campaign '%s' underperforming with score %.1f vs top performer at %.1f. Performance gap of %.1f points.",
			worst.Campaign.Title, worst.AdjustedScore, best.AdjustedScore, gap,
		)
		return rec
	}

	// The underperformance floor is deliberately not enumerated here;
	// only the gap, age and queue gates are reported back.
	var reasons []string
	if !gapExceeded {
		reasons = append(reasons, fmt.Sprintf("Performance gap of %.1f points is within the %.0f point rotation threshold", gap, cfg.RotationThreshold))
	}
	if !oldEnough {
		reasons = append(reasons, fmt.Sprintf("Lowest performer is only %d days old, below the %d day minimum run", worst.AgeDays, cfg.MinCampaignDurationDays))
	}
	if !queueReady {
		reasons = append(reasons, "No queued campaigns available for promotion")
	}

	if len(reasons) == 0 {
		rec.Reasoning = "All campaigns performing acceptably"
	} else {
		rec.Reasoning = strings.Join(reasons, ". ")
	}

	return rec
}
