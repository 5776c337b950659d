package rotation

type MetricKind string

const (
	MetricCTR                MetricKind = "ctr"
	MetricConversionRate     MetricKind = "conversion_rate"
	MetricAuthorityImpact    MetricKind = "authority_impact"
	MetricCostPerAcquisition MetricKind = "cost_per_acquisition"
)

// Normalize maps a raw metric value onto a common 0-100 "higher is
// better" scale.
//
//   - CTR: 5% is a perfect score
//   - conversion rate: 10% is a perfect score
//   - authority impact: already 0-100, clamped
//   - CPA: inverted, $0 scores 100 and $100+ scores 0
//
// Unknown kinds pass the raw value through unchanged.
func Normalize(kind MetricKind, raw float64) float64 {
	switch kind {
	case MetricCTR:
		v := raw * 20
		if v > 100 {
			return 100
		}
		return v
	case MetricConversionRate:
		v := raw * 10
		if v > 100 {
			return 100
		}
		return v
	case MetricAuthorityImpact:
		if raw < 0 {
			return 0
		}
		if raw > 100 {
			return 100
		}
		return raw
	case MetricCostPerAcquisition:
		v := 100 - raw
		if v < 0 {
			return 0
		}
		return v
	default:
		return raw
	}
}
