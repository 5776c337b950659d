package rotation

import (
	"strings"
	"testing"

	"brandBOS/domain"
)

func scoredFixture(id, title string, adjusted float64, ageDays int) ScoredCampaign {
	return ScoredCampaign{
		Campaign:      domain.Campaign{ID: id, Title: title},
		RawScore:      adjusted,
		AdjustedScore: adjusted,
		AgeDays:       ageDays,
	}
}

func queueFixture(n int) []domain.Campaign {
	queued := make([]domain.Campaign, 0, n)
	for i := 0; i < n; i++ {
		queued = append(queued, domain.Campaign{ID: "queued", Status: domain.CampaignStatusQueued})
	}
	return queued
}

func TestDecideRotationFires(t *testing.T) {
	cfg := DefaultConfig()

	scored := []ScoredCampaign{
		scoredFixture("cmp-best", "Flagship", 81.0, 40),
		scoredFixture("cmp-worst", "Slow Burner", 42.0, 10),
	}

	rec := Decide(cfg, scored, queueFixture(1))

	if !rec.RequiresAction {
		t.Fatal("expected rotation to fire")
	}
	if rec.CampaignToPause == nil || *rec.CampaignToPause != "cmp-worst" {
		t.Errorf("CampaignToPause = %v, want cmp-worst", rec.CampaignToPause)
	}
	if rec.CampaignToPromote == nil || *rec.CampaignToPromote != domain.PromoteNextInQueue {
		t.Errorf("CampaignToPromote = %v, want %q", rec.CampaignToPromote, domain.PromoteNextInQueue)
	}

	wantReasoning := "Campaign 'Slow Burner' underperforming with score 42.0 vs top performer at 81.0. Performance gap of 39.0 points."
	if rec.Reasoning != wantReasoning {
		t.Errorf("Reasoning = %q, want %q", rec.Reasoning, wantReasoning)
	}
}

func TestDecideEmptyQueueBlocksRotation(t *testing.T) {
	cfg := DefaultConfig()

	scored := []ScoredCampaign{
		scoredFixture("cmp-best", "Flagship", 81.0, 40),
		scoredFixture("cmp-worst", "Slow Burner", 42.0, 10),
	}

	rec := Decide(cfg, scored, nil)

	if rec.RequiresAction {
		t.Fatal("rotation must not fire without a queued replacement")
	}
	if rec.CampaignToPause != nil {
		t.Errorf("CampaignToPause = %v, want nil", *rec.CampaignToPause)
	}
	if rec.CampaignToPromote != nil {
		t.Errorf("CampaignToPromote = %v, want nil", *rec.CampaignToPromote)
	}
	if !strings.Contains(rec.Reasoning, "No queued campaigns") {
		t.Errorf("Reasoning = %q, should mention the empty queue", rec.Reasoning)
	}
}

func TestDecideSingleCampaign(t *testing.T) {
	cfg := DefaultConfig()

	rec := Decide(cfg, []ScoredCampaign{scoredFixture("cmp-1", "Solo", 12.0, 90)}, queueFixture(3))

	if rec.RequiresAction {
		t.Fatal("a single campaign can never rotate")
	}
	if rec.Reasoning != "Insufficient campaigns for rotation analysis" {
		t.Errorf("Reasoning = %q", rec.Reasoning)
	}
	if len(rec.CurrentCampaignIDs) != 1 || rec.CurrentCampaignIDs[0] != "cmp-1" {
		t.Errorf("CurrentCampaignIDs = %v", rec.CurrentCampaignIDs)
	}
}

func TestDecideEmptyInput(t *testing.T) {
	cfg := DefaultConfig()

	rec := Decide(cfg, nil, queueFixture(1))

	if rec.RequiresAction {
		t.Fatal("no campaigns, no action")
	}
	if rec.Reasoning != "Insufficient campaigns for rotation analysis" {
		t.Errorf("Reasoning = %q", rec.Reasoning)
	}
}

func TestDecideYoungCampaignProtected(t *testing.T) {
	cfg := DefaultConfig()

	scored := []ScoredCampaign{
		scoredFixture("cmp-best", "Flagship", 81.0, 40),
		scoredFixture("cmp-worst", "Fresh Launch", 42.0, 3),
	}

	rec := Decide(cfg, scored, queueFixture(1))

	if rec.RequiresAction {
		t.Fatal("campaign under minimum duration must not be paused")
	}
	if !strings.Contains(rec.Reasoning, "days old") {
		t.Errorf("Reasoning = %q, should mention the age gate", rec.Reasoning)
	}
}

func TestDecideSmallGapHolds(t *testing.T) {
	cfg := DefaultConfig()

	scored := []ScoredCampaign{
		scoredFixture("cmp-a", "A", 55.0, 40),
		scoredFixture("cmp-b", "B", 45.0, 40),
	}

	rec := Decide(cfg, scored, queueFixture(1))

	if rec.RequiresAction {
		t.Fatal("10 point gap must not trigger rotation")
	}
	if !strings.Contains(rec.Reasoning, "rotation threshold") {
		t.Errorf("Reasoning = %q, should mention the gap gate", rec.Reasoning)
	}
}

// A worst performer above the absolute floor holds the rotation even when
// the gap is wide; the floor is not called out in the reasoning, so every
// other gate passing yields the default text.
func TestDecideUnderperformanceFloor(t *testing.T) {
	cfg := DefaultConfig()

	scored := []ScoredCampaign{
		scoredFixture("cmp-a", "A", 90.0, 40),
		scoredFixture("cmp-b", "B", 55.0, 40),
	}

	rec := Decide(cfg, scored, queueFixture(1))

	if rec.RequiresAction {
		t.Fatal("worst score above 50 must not trigger rotation")
	}
	if rec.Reasoning != "All campaigns performing acceptably" {
		t.Errorf("Reasoning = %q", rec.Reasoning)
	}
}

func TestDecideRankingOrder(t *testing.T) {
	cfg := DefaultConfig()

	scored := []ScoredCampaign{
		scoredFixture("cmp-mid", "Mid", 60.0, 40),
		scoredFixture("cmp-top", "Top", 88.0, 40),
		scoredFixture("cmp-low", "Low", 30.0, 40),
	}

	rec := Decide(cfg, scored, nil)

	want := []string{"cmp-top", "cmp-mid", "cmp-low"}
	if len(rec.CurrentCampaignIDs) != len(want) {
		t.Fatalf("CurrentCampaignIDs = %v", rec.CurrentCampaignIDs)
	}
	for i, id := range want {
		if rec.CurrentCampaignIDs[i] != id {
			t.Errorf("CurrentCampaignIDs[%d] = %s, want %s", i, rec.CurrentCampaignIDs[i], id)
		}
	}
}

func TestDecideStableTieOrder(t *testing.T) {
	cfg := DefaultConfig()

	scored := []ScoredCampaign{
		scoredFixture("cmp-first", "First", 50.0, 40),
		scoredFixture("cmp-second", "Second", 50.0, 40),
		scoredFixture("cmp-third", "Third", 50.0, 40),
	}

	rec := Decide(cfg, scored, nil)

	want := []string{"cmp-first", "cmp-second", "cmp-third"}
	for i, id := range want {
		if rec.CurrentCampaignIDs[i] != id {
			t.Errorf("tie order broken: CurrentCampaignIDs[%d] = %s, want %s", i, rec.CurrentCampaignIDs[i], id)
		}
	}
}

func TestDecidePausesOnlyOne(t *testing.T) {
	cfg := DefaultConfig()

	// three campaigns below the floor, only the worst gets paused
	scored := []ScoredCampaign{
		scoredFixture("cmp-top", "Top", 85.0, 40),
		scoredFixture("cmp-bad1", "Bad One", 40.0, 40),
		scoredFixture("cmp-bad2", "Bad Two", 35.0, 40),
		scoredFixture("cmp-bad3", "Bad Three", 22.0, 40),
	}

	rec := Decide(cfg, scored, queueFixture(5))

	if !rec.RequiresAction {
		t.Fatal("expected rotation to fire")
	}
	if *rec.CampaignToPause != "cmp-bad3" {
		t.Errorf("CampaignToPause = %s, want cmp-bad3", *rec.CampaignToPause)
	}
}

func TestDecideDoesNotMutateInput(t *testing.T) {
	cfg := DefaultConfig()

	scored := []ScoredCampaign{
		scoredFixture("cmp-low", "Low", 30.0, 40),
		scoredFixture("cmp-top", "Top", 88.0, 40),
	}

	_ = Decide(cfg, scored, nil)

	if scored[0].Campaign.ID != "cmp-low" || scored[1].Campaign.ID != "cmp-top" {
		t.Error("Decide reordered the caller's slice")
	}
}
