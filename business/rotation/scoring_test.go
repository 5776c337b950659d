package rotation

import (
	"testing"
	"time"

	"brandBOS/domain"
)

func TestCompositeScoreStaysInRange(t *testing.T) {
	cfg := DefaultConfig()

	cases := []domain.CampaignMetrics{
		{},
		{CTR: 5, ConversionRate: 10, AuthorityImpact: 100, CostPerAcquisition: 0},
		{CTR: 50, ConversionRate: 90, AuthorityImpact: 500, CostPerAcquisition: 0},
		{CTR: 1.2, ConversionRate: 3.4, AuthorityImpact: 42, CostPerAcquisition: 65},
	}

	for _, m := range cases {
		score := CompositeScore(cfg, m)
		if score < 0 || score > 100 {
			t.Errorf("CompositeScore(%+v) = %v, out of [0,100]", m, score)
		}
	}
}

func TestCompositeScorePerfectMetrics(t *testing.T) {
	cfg := DefaultConfig()

	m := domain.CampaignMetrics{CTR: 5, ConversionRate: 10, AuthorityImpact: 100, CostPerAcquisition: 0}
	if got := CompositeScore(cfg, m); got != 100 {
		t.Errorf("CompositeScore(perfect) = %v, want 100", got)
	}
}

func TestCompositeScoreWeighting(t *testing.T) {
	cfg := DefaultConfig()

	// only conversion rate present: 5% -> normalized 50, weighted 0.30
	m := domain.CampaignMetrics{ConversionRate: 5, CostPerAcquisition: 100}
	want := 0.30 * 50
	if got := CompositeScore(cfg, m); got != want {
		t.Errorf("CompositeScore = %v, want %v", got, want)
	}
}

func TestAdjustForAgeBounds(t *testing.T) {
	cfg := DefaultConfig()

	for _, raw := range []float64{0, 12.5, 50, 81, 100} {
		if got := AdjustForAge(cfg, raw, 0); got != 0.7*raw {
			t.Errorf("AdjustForAge(%v, 0) = %v, want %v", raw, got, 0.7*raw)
		}
		if got := AdjustForAge(cfg, raw, 30); got != raw {
			t.Errorf("AdjustForAge(%v, 30) = %v, want %v", raw, got, raw)
		}
		if got := AdjustForAge(cfg, raw, 365); got != raw {
			t.Errorf("AdjustForAge(%v, 365) = %v, want %v", raw, got, raw)
		}
	}
}

func TestAdjustForAgeNeverExceedsRaw(t *testing.T) {
	cfg := DefaultConfig()

	for age := 0; age <= 60; age++ {
		got := AdjustForAge(cfg, 80, age)
		if got > 80 {
			t.Fatalf("AdjustForAge(80, %d) = %v, exceeds raw score", age, got)
		}
	}
}

func TestAdjustForAgeMonotonic(t *testing.T) {
	cfg := DefaultConfig()

	prev := AdjustForAge(cfg, 64, 0)
	for age := 1; age <= 45; age++ {
		cur := AdjustForAge(cfg, 64, age)
		if cur < prev {
			t.Fatalf("AdjustForAge decreased from %v to %v at age %d", prev, cur, age)
		}
		prev = cur
	}
}

func TestScoringIdempotent(t *testing.T) {
	cfg := DefaultConfig()
	m := domain.CampaignMetrics{CTR: 1.7, ConversionRate: 4.2, AuthorityImpact: 63, CostPerAcquisition: 38}

	first := CompositeScore(cfg, m)
	second := CompositeScore(cfg, m)
	if first != second {
		t.Errorf("CompositeScore not idempotent: %v vs %v", first, second)
	}

	adjFirst := AdjustForAge(cfg, first, 12)
	adjSecond := AdjustForAge(cfg, first, 12)
	if adjFirst != adjSecond {
		t.Errorf("AdjustForAge not idempotent: %v vs %v", adjFirst, adjSecond)
	}
}

func TestScoreCampaign(t *testing.T) {
	cfg := DefaultConfig()

	start := time.Now().AddDate(0, 0, -10)
	c := domain.Campaign{
		ID:                 "cmp-1",
		Title:              "Authority Builder",
		StartDate:          &start,
		CTR:                2.5,
		ConversionRate:     5,
		AuthorityImpact:    60,
		CostPerAcquisition: 40,
	}

	sc := ScoreCampaign(cfg, c, time.Now())

	if sc.AgeDays != 10 {
		t.Errorf("AgeDays = %d, want 10", sc.AgeDays)
	}
	if sc.AdjustedScore > sc.RawScore {
		t.Errorf("adjusted %v exceeds raw %v", sc.AdjustedScore, sc.RawScore)
	}

	// 0.25*50 + 0.30*50 + 0.25*60 + 0.20*60 = 54.5
	if sc.RawScore != 54.5 {
		t.Errorf("RawScore = %v, want 54.5", sc.RawScore)
	}
}

func TestScoreCampaignNoStartDate(t *testing.T) {
	cfg := DefaultConfig()

	c := domain.Campaign{ID: "cmp-2", CTR: 5}
	sc := ScoreCampaign(cfg, c, time.Now())

	if sc.AgeDays != 0 {
		t.Errorf("AgeDays = %d, want 0 for unlaunched campaign", sc.AgeDays)
	}
	if sc.AdjustedScore != 0.7*sc.RawScore {
		t.Errorf("AdjustedScore = %v, want full damping at age 0", sc.AdjustedScore)
	}
}
