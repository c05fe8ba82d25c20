package schedule

import (
	"fmt"
	"time"

	"github.com/username/clinic-scheduler/pkg/dateutil"
)

// Interval used when a day that was off is switched back to work by hand
const (
	DefaultWorkStart = "09:00"
	DefaultWorkEnd   = "18:00"
)

// ManualOff is a hand-set day off
func ManualOff() DoctorDaySchedule {
	return DoctorDaySchedule{Status: StatusOff, IsManualEdit: true}
}

// ManualWork is a hand-set full working day
func ManualWork(start, end string) DoctorDaySchedule {
	return DoctorDaySchedule{Status: StatusWork, Start: start, End: end, IsManualEdit: true}
}

// ToggleOff flips an entry between off and a default working day.
// A missing entry counts as off.
func ToggleOff(current *DoctorDaySchedule) DoctorDaySchedule {
	if current == nil || current.Status == StatusOff {
		return ManualWork(DefaultWorkStart, DefaultWorkEnd)
	}
	return ManualOff()
}

// ResetEntry returns what a reset puts back for one doctor on one date: the
// plain weekly default, or off when there is none. Recurring rules and
// holidays are deliberately not consulted, unlike a full regeneration.
func ResetEntry(cfg *Config, doctorID string, date time.Time) DoctorDaySchedule {
	if cfg == nil {
		return DoctorDaySchedule{Status: StatusOff}
	}
	return defaultEntry(cfg, doctorID, date.Weekday())
}

// ValidateInterval checks that start and end are "HH:MM" and start is before end
func ValidateInterval(start, end string) error {
	interval := DaySchedule{Start: start, End: end}
	if err := validate.Struct(interval); err != nil {
		return fmt.Errorf("invalid interval: %w", err)
	}
	return checkOrder(start, end)
}

// ValidateEntry checks a hand-set entry: the status must be known and every
// working status needs an "HH:MM" interval with start before end
func ValidateEntry(e DoctorDaySchedule) error {
	if err := validate.Struct(e); err != nil {
		return fmt.Errorf("invalid entry: %w", err)
	}
	if e.Status == StatusOff {
		return nil
	}
	return checkOrder(e.Start, e.End)
}

// checkOrder expects bounds that already passed the datetime=15:04 tag
func checkOrder(start, end string) error {
	from, err := dateutil.ParseClock(start)
	if err != nil {
		return err
	}
	to, err := dateutil.ParseClock(end)
	if err != nil {
		return err
	}
	if from >= to {
		return fmt.Errorf("start %s must be before end %s", start, end)
	}
	return nil
}
