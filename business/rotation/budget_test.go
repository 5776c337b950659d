package rotation

import (
	"math"
	"testing"
)

func TestReallocateProportional(t *testing.T) {
	cfg := DefaultConfig()

	scored := []ScoredCampaign{
		scoredFixture("cmp-a", "A", 85, 40),
		scoredFixture("cmp-b", "B", 72, 40),
		scoredFixture("cmp-c", "C", 65, 40),
		scoredFixture("cmp-d", "D", 58, 40),
	}

	allocations := Reallocate(cfg, scored, 10000)

	if len(allocations) != 4 {
		t.Fatalf("got %d allocations, want 4", len(allocations))
	}

	// 85/280, 72/280, 65/280, 58/280 of $10,000, none hitting the clamps
	want := map[string]float64{
		"cmp-a": 3035.71,
		"cmp-b": 2571.43,
		"cmp-c": 2321.43,
		"cmp-d": 2071.43,
	}
	for id, amount := range want {
		if allocations[id] != amount {
			t.Errorf("allocations[%s] = %v, want %v", id, allocations[id], amount)
		}
	}

	sum := 0.0
	for _, amount := range allocations {
		sum += amount
	}
	if math.Abs(sum-10000) > 0.005 {
		t.Errorf("allocations sum to %v, want exactly 10000.00", sum)
	}
}

func TestReallocateZeroScoresSplitsEqually(t *testing.T) {
	cfg := DefaultConfig()

	scored := []ScoredCampaign{
		scoredFixture("cmp-a", "A", 0, 40),
		scoredFixture("cmp-b", "B", 0, 40),
		scoredFixture("cmp-c", "C", 0, 40),
		scoredFixture("cmp-d", "D", 0, 40),
	}

	allocations := Reallocate(cfg, scored, 10000)

	for id, amount := range allocations {
		if amount != 2500.00 {
			t.Errorf("allocations[%s] = %v, want 2500.00", id, amount)
		}
	}
}

func TestReallocateEmptyInput(t *testing.T) {
	cfg := DefaultConfig()

	allocations := Reallocate(cfg, nil, 10000)
	if len(allocations) != 0 {
		t.Errorf("got %d allocations, want 0", len(allocations))
	}
}

func TestReallocateClampsAndConserves(t *testing.T) {
	cfg := DefaultConfig()

	// dominant campaign hits the 40% ceiling, the laggards get pulled up
	// to the 15% floor, and the residual lands on the top scorer
	scored := []ScoredCampaign{
		scoredFixture("cmp-star", "Star", 100, 40),
		scoredFixture("cmp-weak1", "Weak One", 5, 40),
		scoredFixture("cmp-weak2", "Weak Two", 5, 40),
	}

	allocations := Reallocate(cfg, scored, 1000)

	if allocations["cmp-weak1"] != 150 || allocations["cmp-weak2"] != 150 {
		t.Errorf("floor clamp failed: %v", allocations)
	}

	// 400 at the ceiling plus the 300 residual
	if allocations["cmp-star"] != 700 {
		t.Errorf("allocations[cmp-star] = %v, want 700", allocations["cmp-star"])
	}

	sum := allocations["cmp-star"] + allocations["cmp-weak1"] + allocations["cmp-weak2"]
	if math.Abs(sum-1000) > 0.005 {
		t.Errorf("allocations sum to %v, want 1000", sum)
	}
}

func TestReallocateResidualGoesToTopScorer(t *testing.T) {
	cfg := DefaultConfig()

	// two campaigns, 90 vs 10: raw shares 900/100 clamp to 400/150,
	// residual 450 tops up the leader
	scored := []ScoredCampaign{
		scoredFixture("cmp-lead", "Lead", 90, 40),
		scoredFixture("cmp-tail", "Tail", 10, 40),
	}

	allocations := Reallocate(cfg, scored, 1000)

	if allocations["cmp-tail"] != 150 {
		t.Errorf("allocations[cmp-tail] = %v, want 150", allocations["cmp-tail"])
	}
	if allocations["cmp-lead"] != 850 {
		t.Errorf("allocations[cmp-lead] = %v, want 850", allocations["cmp-lead"])
	}
}

func TestReallocateIdempotent(t *testing.T) {
	cfg := DefaultConfig()

	scored := []ScoredCampaign{
		scoredFixture("cmp-a", "A", 64.2, 40),
		scoredFixture("cmp-b", "B", 41.7, 40),
		scoredFixture("cmp-c", "C", 55.9, 40),
	}

	first := Reallocate(cfg, scored, 7500)
	second := Reallocate(cfg, scored, 7500)

	for id, amount := range first {
		if second[id] != amount {
			t.Errorf("Reallocate not deterministic for %s: %v vs %v", id, amount, second[id])
		}
	}
}
