package subscription

import "errors"

var ErrInvalidPlan = errors.New("invalid subscription plan")

type Plan string

const (
	PlanDaily   Plan = "daily"
	PlanWeekly  Plan = "weekly"
	PlanMonthly Plan = "monthly"
	PlanYearly  Plan = "yearly"
)

func (p Plan) String() string {
	return string(p)
}

func (p Plan) IsValid() bool {
	switch p {
	case PlanDaily, PlanWeekly, PlanMonthly, PlanYearly:
		return true
	default:
		return false
	}
}

// DurationDays is the fixed plan-to-days mapping: 1/7/30/365.
func (p Plan) DurationDays() int {
	switch p {
	case PlanDaily:
		return 1
	case PlanWeekly:
		return 7
	case PlanMonthly:
		return 30
	case PlanYearly:
		return 365
	default:
		return 0
	}
}

func NewPlan(s string) (Plan, error) {
	plan := Plan(s)
	if !plan.IsValid() {
		return "", ErrInvalidPlan
	}
	return plan, nil
}
