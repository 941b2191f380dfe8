package model

// RiskTier classifies how urgent a person's remaining workload is,
// driven by the required daily pace. Ordering is from least to most severe.
type RiskTier int

const (
	TierDone RiskTier = iota
	TierComfortable
	TierGoodPace
	TierAttention
	TierCritical
	TierActionPlan
)

// Label returns the display name for the tier.
func (t RiskTier) Label() string {
	switch t {
	case TierDone:
		return "Done"
	case TierComfortable:
		return "Comfortable"
	case TierGoodPace:
		return "Good pace"
	case TierAttention:
		return "Attention"
	case TierCritical:
		return "Critical"
	default:
		return "Action plan"
	}
}

// PacedPerson extends PersonProgress with the daily pace required to close
// the remaining gap before the deadline, and the reference pace had the
// person started from zero on day one.
type PacedPerson struct {
	PersonProgress

	RequiredDailyPace float64 // hours per effective day, rounded to 2 decimals
	IdealDailyPace    float64
	Tier              RiskTier
}

// PaceReport is the full output of a pace projection run: one PacedPerson
// per plan entry, sorted ascending by required pace, plus the run-level
// day counters used for explanatory text.
type PaceReport struct {
	People []PacedPerson

	CalendarDaysRemaining int // deadline minus as-of date; negative when past
	UsableDays            int // weekdays minus holidays in [as-of, deadline]
	EffectiveDays         int // floor(UsableDays * discount)

	// DeadlinePassed is set when EffectiveDays <= 0 while hours remain;
	// required pace is then undefined and affected people short-circuit
	// to the most severe tier.
	DeadlinePassed bool
}
