package schedule

import (
	"strconv"
	"time"

	"github.com/username/clinic-scheduler/pkg/dateutil"
)

// Generator builds month schedules. It holds no state besides its clock and
// never mutates its arguments, so one Generator may be shared by goroutines.
type Generator struct {
	now func() time.Time
}

// GeneratorOption configures a Generator
type GeneratorOption func(*Generator)

// WithClock overrides the clock used for MonthSchedule.GeneratedAt
func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) {
		g.now = now
	}
}

// NewGenerator creates a new Generator
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GenerateMonthSchedule generates a month with the wall clock as GeneratedAt
func GenerateMonthSchedule(year int, month time.Month, cfg *Config, publicHolidays []PublicHoliday, existing *MonthSchedule, defaultNotice string) *MonthSchedule {
	return NewGenerator().Generate(year, month, cfg, publicHolidays, existing, defaultNotice)
}

// Generate resolves every day of the month for every active doctor.
//
// Manual edits found in existing are copied through verbatim. The notice text
// of existing wins over defaultNotice.
func (g *Generator) Generate(year int, month time.Month, cfg *Config, publicHolidays []PublicHoliday, existing *MonthSchedule, defaultNotice string) *MonthSchedule {
	if cfg == nil {
		cfg = NewConfig()
	}

	active := activeDoctors(cfg.Doctors)
	daysInMonth := dateutil.DaysInMonth(year, month)
	days := make(map[string]DayData, daysInMonth)

	for day := 1; day <= daysInMonth; day++ {
		date := dateutil.CivilDate(year, month, day)
		prev, _ := existing.Day(day)

		isHoliday, holidayName := holidayStatus(date, publicHolidays, cfg.HospitalHolidays)

		doctors := make(map[string]DoctorDaySchedule, len(active))
		for _, doctor := range active {
			entry := resolvedDay{
				date:     date,
				weekday:  date.Weekday(),
				holiday:  isHoliday,
				doctorID: doctor.ID,
				cfg:      cfg,
			}
			if prevEntry, ok := prev.Doctors[doctor.ID]; ok {
				entry.previous = &prevEntry
			}
			doctors[doctor.ID] = entry.resolve()
		}

		days[dayKey(day)] = DayData{
			IsHoliday:   isHoliday,
			HolidayName: holidayName,
			Doctors:     doctors,
		}
	}

	notice := defaultNotice
	if existing != nil && existing.NoticeText != "" {
		notice = existing.NoticeText
	}

	return &MonthSchedule{
		Year:        year,
		Month:       month,
		GeneratedAt: g.now().UTC(),
		Days:        days,
		NoticeText:  notice,
	}
}

// resolvedDay is the input of the override stages for one doctor on one day
type resolvedDay struct {
	date     time.Time
	weekday  time.Weekday
	holiday  bool
	doctorID string
	previous *DoctorDaySchedule
	cfg      *Config
}

// stage refines the entry produced by the earlier stages. Returning true
// settles the entry and skips every later stage.
type stage func(d *resolvedDay, current DoctorDaySchedule) (DoctorDaySchedule, bool)

// stages in precedence order: manual edit > holiday > weekly default > recurring rules
var stages = []stage{
	keepManualEdit,
	holidayOff,
	weeklyDefault,
	recurringRules,
}

func (d *resolvedDay) resolve() DoctorDaySchedule {
	current := DoctorDaySchedule{Status: StatusOff}
	for _, s := range stages {
		var settled bool
		current, settled = s(d, current)
		if settled {
			break
		}
	}
	return current
}

func keepManualEdit(d *resolvedDay, current DoctorDaySchedule) (DoctorDaySchedule, bool) {
	if d.previous != nil && d.previous.IsManualEdit {
		return *d.previous, true
	}
	return current, false
}

func holidayOff(d *resolvedDay, current DoctorDaySchedule) (DoctorDaySchedule, bool) {
	if d.holiday {
		return DoctorDaySchedule{Status: StatusOff}, true
	}
	return current, false
}

func weeklyDefault(d *resolvedDay, _ DoctorDaySchedule) (DoctorDaySchedule, bool) {
	return defaultEntry(d.cfg, d.doctorID, d.weekday), false
}

func recurringRules(d *resolvedDay, current DoctorDaySchedule) (DoctorDaySchedule, bool) {
	return ApplyRecurringRules(d.cfg.RecurringRules, d.doctorID, d.date, d.weekday, current), true
}

// defaultEntry is the doctor's weekly template for the weekday, off when absent
func defaultEntry(cfg *Config, doctorID string, weekday time.Weekday) DoctorDaySchedule {
	interval := cfg.DefaultSchedule[doctorID][DayOfWeekOf(weekday)]
	if interval == nil {
		return DoctorDaySchedule{Status: StatusOff}
	}
	return DoctorDaySchedule{
		Status: StatusWork,
		Start:  interval.Start,
		End:    interval.End,
	}
}

// holidayStatus merges public and hospital holidays; the public name wins
func holidayStatus(date time.Time, public []PublicHoliday, hospital []HospitalHoliday) (bool, string) {
	iso := dateutil.FormatDate(date)

	var publicHit, hospitalHit bool
	var publicName, hospitalName string

	for _, h := range public {
		if h.Date == iso {
			publicHit, publicName = true, h.Name
			break
		}
	}
	for _, h := range hospital {
		if h.Matches(date) {
			hospitalHit, hospitalName = true, h.Name
			break
		}
	}

	name := publicName
	if name == "" {
		name = hospitalName
	}
	return publicHit || hospitalHit, name
}

func activeDoctors(doctors []Doctor) []Doctor {
	active := make([]Doctor, 0, len(doctors))
	for _, d := range doctors {
		if d.Active {
			active = append(active, d)
		}
	}
	return active
}

func dayKey(day int) string {
	return strconv.Itoa(day)
}
