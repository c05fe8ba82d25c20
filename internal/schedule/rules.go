package schedule

import (
	"time"

	"github.com/username/clinic-scheduler/pkg/dateutil"
)

// Half-day boundaries imposed when a rule takes away one half of a working day
const (
	AfternoonStart = "14:00"
	MorningEnd     = "13:00"
)

// Applies reports whether the rule covers the given date.
// A rule for another weekday, an unknown type or missing type-specific
// fields never applies.
func (r RecurringRule) Applies(date time.Time, weekday time.Weekday) bool {
	if r.DayOfWeek != weekday {
		return false
	}

	switch r.Type {
	case RuleWeekly:
		return true
	case RuleBiweekly:
		return r.appliesBiweekly(date)
	case RuleMonthly:
		return r.WeekOfMonth > 0 && dateutil.WeekOfMonth(date) == r.WeekOfMonth
	default:
		return false
	}
}

// appliesBiweekly: weeks at an even distance from ReferenceDate are off weeks.
// IsOffWeek selects whether the rule fires on off weeks or on the others.
func (r RecurringRule) appliesBiweekly(date time.Time) bool {
	if r.ReferenceDate == "" {
		return false
	}
	ref, err := time.Parse(dateutil.ISODate, r.ReferenceDate)
	if err != nil {
		return false
	}

	weeks := dateutil.WeeksBetween(ref, date)
	offWeek := weeks%2 == 0
	if r.IsOffWeek {
		return offWeek
	}
	return !offWeek
}

// apply takes the period away from the current entry. Half-day periods only
// act on a full working day; anything else passes through untouched.
func (p Period) apply(current DoctorDaySchedule) DoctorDaySchedule {
	switch p {
	case PeriodAll:
		return DoctorDaySchedule{Status: StatusOff}
	case PeriodMorning:
		if current.IsFullWork() {
			return DoctorDaySchedule{Status: StatusAfternoon, Start: AfternoonStart, End: current.End}
		}
	case PeriodAfternoon:
		if current.IsFullWork() {
			return DoctorDaySchedule{Status: StatusMorning, Start: current.Start, End: MorningEnd}
		}
	}
	return current
}

// ApplyRecurringRules folds every rule of the doctor that applies on date over
// base, in slice order. Later rules see the result of earlier ones.
func ApplyRecurringRules(rules []RecurringRule, doctorID string, date time.Time, weekday time.Weekday, base DoctorDaySchedule) DoctorDaySchedule {
	result := base
	for _, rule := range rules {
		if rule.DoctorID != doctorID || !rule.Applies(date, weekday) {
			continue
		}
		result = rule.Period.apply(result)
	}
	return result
}
