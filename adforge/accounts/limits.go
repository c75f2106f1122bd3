package accounts

import (
	"os"
	"strconv"
)

// Unlimited disables the quota guard for a plan.
const Unlimited = -1

// per-plan monthly generation limits
type Limits map[Plan]int

// returns the standard limit table: FREE 5, STARTER 50, PRO 200, AGENCY
// unlimited
func DefaultLimits() Limits {
	return Limits{
		PlanFree:    5,
		PlanStarter: 50,
		PlanPro:     200,
		PlanAgency:  Unlimited,
	}
}

// returns the limit table with per-tier environment overrides applied
// (ADFORGE_LIMIT_FREE, ADFORGE_LIMIT_STARTER, ...)
func LimitsFromEnv() Limits {
	limits := DefaultLimits()

	overrides := map[Plan]string{
		PlanFree:    "ADFORGE_LIMIT_FREE",
		PlanStarter: "ADFORGE_LIMIT_STARTER",
		PlanPro:     "ADFORGE_LIMIT_PRO",
		PlanAgency:  "ADFORGE_LIMIT_AGENCY",
	}

	for plan, envVar := range overrides {
		if raw := os.Getenv(envVar); raw != "" {
			if val, err := strconv.Atoi(raw); err == nil {
				limits[plan] = val
			}
		}
	}

	return limits
}

// returns the monthly limit for a plan, treating unknown plans as FREE
func (l Limits) LimitFor(plan Plan) int {
	if limit, ok := l[plan]; ok {
		return limit
	}

	return l[PlanFree]
}
