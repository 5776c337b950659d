package rotation

import "testing"

func TestNormalizeCTR(t *testing.T) {
	cases := []struct {
		raw  float64
		want float64
	}{
		{0, 0},
		{2.5, 50},
		{5.0, 100},
		{7.5, 100}, // capped
	}

	for _, tc := range cases {
		got := Normalize(MetricCTR, tc.raw)
		if got != tc.want {
			t.Errorf("Normalize(CTR, %v) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeConversionRate(t *testing.T) {
	cases := []struct {
		raw  float64
		want float64
	}{
		{0, 0},
		{5, 50},
		{10, 100},
		{25, 100}, // capped
	}

	for _, tc := range cases {
		got := Normalize(MetricConversionRate, tc.raw)
		if got != tc.want {
			t.Errorf("Normalize(ConversionRate, %v) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeAuthorityImpact(t *testing.T) {
	cases := []struct {
		raw  float64
		want float64
	}{
		{-10, 0},
		{0, 0},
		{55.5, 55.5},
		{100, 100},
		{140, 100},
	}

	for _, tc := range cases {
		got := Normalize(MetricAuthorityImpact, tc.raw)
		if got != tc.want {
			t.Errorf("Normalize(AuthorityImpact, %v) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeCostPerAcquisition(t *testing.T) {
	cases := []struct {
		raw  float64
		want float64
	}{
		{0, 100},
		{40, 60},
		{100, 0},
		{150, 0}, // clamped, not -50
	}

	for _, tc := range cases {
		got := Normalize(MetricCostPerAcquisition, tc.raw)
		if got != tc.want {
			t.Errorf("Normalize(CostPerAcquisition, %v) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeUnknownKindPassesThrough(t *testing.T) {
	got := Normalize(MetricKind("bounce_rate"), 123.45)
	if got != 123.45 {
		t.Errorf("Normalize(unknown, 123.45) = %v, want raw value back", got)
	}
}
