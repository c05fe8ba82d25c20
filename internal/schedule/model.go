package schedule

import (
	"time"

	"github.com/username/clinic-scheduler/pkg/dateutil"
)

// DayOfWeek is the key of a weekday in a weekly schedule
type DayOfWeek string

const (
	Sunday    DayOfWeek = "sun"
	Monday    DayOfWeek = "mon"
	Tuesday   DayOfWeek = "tue"
	Wednesday DayOfWeek = "wed"
	Thursday  DayOfWeek = "thu"
	Friday    DayOfWeek = "fri"
	Saturday  DayOfWeek = "sat"
)

// DayOfWeekOf converts a time.Weekday into its schedule key
func DayOfWeekOf(weekday time.Weekday) DayOfWeek {
	return DayOfWeek(dateutil.WeekdayKey(weekday))
}

// Doctor represents a staff member with an individually colored, ordered track
type Doctor struct {
	ID     string `json:"id" validate:"required"`
	Name   string `json:"name" validate:"required"`
	Color  string `json:"color" validate:"omitempty,hexcolor"`
	Order  int    `json:"order"`
	Active bool   `json:"active"`
}

// DaySchedule is a work interval in "HH:MM" form
type DaySchedule struct {
	Start string `json:"start" validate:"required,datetime=15:04"`
	End   string `json:"end" validate:"required,datetime=15:04"`
}

// WeeklySchedule maps every weekday key to a work interval; nil means day off
type WeeklySchedule map[DayOfWeek]*DaySchedule

// RuleType selects how a recurring rule decides which dates it covers
type RuleType string

const (
	RuleWeekly   RuleType = "weekly"
	RuleBiweekly RuleType = "biweekly"
	RuleMonthly  RuleType = "monthly"
)

// Period is the portion of the day a recurring rule takes away
type Period string

const (
	PeriodAll       Period = "all"
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
)

// RecurringRule is a periodic exception layered over a doctor's weekly default
type RecurringRule struct {
	ID          string       `json:"id"`
	DoctorID    string       `json:"doctorId" validate:"required"`
	Type        RuleType     `json:"type" validate:"oneof=weekly biweekly monthly"`
	DayOfWeek   time.Weekday `json:"dayOfWeek" validate:"min=0,max=6"`
	Period      Period       `json:"period" validate:"oneof=all morning afternoon"`
	Description string       `json:"description"`

	// biweekly
	IsOffWeek     bool   `json:"isOffWeek,omitempty"`
	ReferenceDate string `json:"referenceDate,omitempty" validate:"required_if=Type biweekly,omitempty,datetime=2006-01-02"`

	// monthly
	WeekOfMonth int `json:"weekOfMonth,omitempty" validate:"required_if=Type monthly,omitempty,min=1,max=6"`
}

// HolidayType distinguishes one-off and annually recurring hospital holidays
type HolidayType string

const (
	HolidayFixed  HolidayType = "fixed"
	HolidayYearly HolidayType = "yearly"
)

// HospitalHoliday is an institution-defined non-working day
type HospitalHoliday struct {
	ID    string      `json:"id"`
	Type  HolidayType `json:"type" validate:"oneof=fixed yearly"`
	Date  string      `json:"date,omitempty" validate:"required_if=Type fixed,omitempty,datetime=2006-01-02"`
	Month int         `json:"month,omitempty" validate:"required_if=Type yearly,omitempty,min=1,max=12"`
	Day   int         `json:"day,omitempty" validate:"required_if=Type yearly,omitempty,min=1,max=31"`
	Name  string      `json:"name" validate:"required"`
}

// Matches reports whether the holiday falls on the given calendar date
func (h HospitalHoliday) Matches(date time.Time) bool {
	switch h.Type {
	case HolidayFixed:
		return h.Date == dateutil.FormatDate(date)
	case HolidayYearly:
		return h.Month == int(date.Month()) && h.Day == date.Day()
	default:
		return false
	}
}

// PublicHoliday is an externally supplied, calendar-wide non-working day
type PublicHoliday struct {
	Date string `json:"date"` // YYYY-MM-DD
	Name string `json:"name"`
}

// Hospital holds clinic-wide display attributes
type Hospital struct {
	Name string `json:"name"`
}

// Config is the full scheduling intent of a clinic
type Config struct {
	Hospital         Hospital                  `json:"hospital"`
	Doctors          []Doctor                  `json:"doctors"`
	DefaultSchedule  map[string]WeeklySchedule `json:"defaultSchedule"` // doctor id -> pattern
	RecurringRules   []RecurringRule           `json:"recurringRules"`
	HospitalHolidays []HospitalHoliday         `json:"hospitalHolidays"`
}

// NewConfig returns an empty configuration with initialized collections
func NewConfig() *Config {
	return &Config{
		Doctors:          []Doctor{},
		DefaultSchedule:  make(map[string]WeeklySchedule),
		RecurringRules:   []RecurringRule{},
		HospitalHolidays: []HospitalHoliday{},
	}
}

// DayStatus is the resolved working state of a doctor on one day
type DayStatus string

const (
	StatusWork      DayStatus = "work"
	StatusOff       DayStatus = "off"
	StatusMorning   DayStatus = "morning"   // works the morning only
	StatusAfternoon DayStatus = "afternoon" // works the afternoon only
)

// DoctorDaySchedule is the resolved entry for one doctor on one day.
// IsManualEdit is the only thing that protects an entry from regeneration.
type DoctorDaySchedule struct {
	Status       DayStatus `json:"status" validate:"oneof=work off morning afternoon"`
	Start        string    `json:"start,omitempty" validate:"required_unless=Status off,omitempty,datetime=15:04"`
	End          string    `json:"end,omitempty" validate:"required_unless=Status off,omitempty,datetime=15:04"`
	IsManualEdit bool      `json:"isManualEdit"`
}

// IsFullWork reports whether the entry is a whole working day with both bounds set
func (s DoctorDaySchedule) IsFullWork() bool {
	return s.Status == StatusWork && s.Start != "" && s.End != ""
}

// DayData is one calendar day of a month schedule
type DayData struct {
	IsHoliday   bool                         `json:"isHoliday"`
	HolidayName string                       `json:"holidayName,omitempty"`
	Doctors     map[string]DoctorDaySchedule `json:"doctors"` // doctor id -> entry
}

// MonthSchedule is the resolved per-day, per-doctor grid for one month
type MonthSchedule struct {
	Year        int                `json:"year"`
	Month       time.Month         `json:"month"`
	GeneratedAt time.Time          `json:"generatedAt"`
	Days        map[string]DayData `json:"days"` // day of month ("1".."31") -> data
	NoticeText  string             `json:"noticeText,omitempty"`
}

// Day returns the data stored for a day of the month
func (m *MonthSchedule) Day(day int) (DayData, bool) {
	if m == nil {
		return DayData{}, false
	}
	d, ok := m.Days[dayKey(day)]
	return d, ok
}
