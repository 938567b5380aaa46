package booking

import "math"

const (
	PolicyPerHead = "per_head"
	PolicyTiered  = "tiered"

	TypeIndividual = "individual"
	TypeFamily     = "family"

	MinCount = 1
	MaxCount = 10

	// familyMultiplier prices a family booking as four heads.
	familyMultiplier = 4
	// MaxFamilySize is shown to devotees; it does not affect the total.
	MaxFamilySize = 6
)

// PricingPolicy turns a seva base price into a booking total.
type PricingPolicy interface {
	Name() string
	Total(base float64, count int, bookingType string) float64
}

// PerHeadPolicy charges the base price once per person.
type PerHeadPolicy struct{}

func (PerHeadPolicy) Name() string { return PolicyPerHead }

func (PerHeadPolicy) Total(base float64, count int, _ string) float64 {
	return Calculate(base, count)
}

// TieredPolicy charges a flat family rate and per head otherwise.
type TieredPolicy struct{}

func (TieredPolicy) Name() string { return PolicyTiered }

func (TieredPolicy) Total(base float64, count int, bookingType string) float64 {
	if bookingType == TypeFamily {
		return roundMoney(base * familyMultiplier)
	}
	return Calculate(base, count)
}

// PolicyFor returns the policy registered under name, defaulting to per head.
func PolicyFor(name string) PricingPolicy {
	if name == PolicyTiered {
		return TieredPolicy{}
	}
	return PerHeadPolicy{}
}

// Calculate is base × count with count clamped to [MinCount, MaxCount].
func Calculate(base float64, count int) float64 {
	return roundMoney(base * float64(ClampCount(count)))
}

func ClampCount(count int) int {
	if count < MinCount {
		return MinCount
	}
	if count > MaxCount {
		return MaxCount
	}
	return count
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
