package schedule

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/username/clinic-scheduler/pkg/dateutil"
)

var (
	ErrDoctorNotFound  = errors.New("doctor not found")
	ErrRuleNotFound    = errors.New("recurring rule not found")
	ErrHolidayNotFound = errors.New("hospital holiday not found")
	ErrInvalidDay      = errors.New("day is outside the month")
)

var validate = validator.New()

// DefaultWeeklySchedule is the pattern a new doctor starts with
func DefaultWeeklySchedule() WeeklySchedule {
	return WeeklySchedule{
		Sunday:    nil,
		Monday:    {Start: "09:00", End: "18:00"},
		Tuesday:   {Start: "09:00", End: "18:00"},
		Wednesday: {Start: "09:00", End: "18:00"},
		Thursday:  {Start: "09:00", End: "18:00"},
		Friday:    {Start: "09:00", End: "18:00"},
		Saturday:  {Start: "09:00", End: "13:00"},
	}
}

// Doctor looks a doctor up by id
func (c *Config) Doctor(id string) (Doctor, bool) {
	for _, d := range c.Doctors {
		if d.ID == id {
			return d, true
		}
	}
	return Doctor{}, false
}

// ActiveDoctors returns the active doctors in display order
func (c *Config) ActiveDoctors() []Doctor {
	active := activeDoctors(c.Doctors)
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Order < active[j].Order
	})
	return active
}

// AddDoctor appends a doctor at the end of the display order and seeds the
// default weekly schedule. An empty id is replaced with a fresh UUID.
func (c *Config) AddDoctor(d Doctor) (Doctor, error) {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if err := validate.Struct(d); err != nil {
		return Doctor{}, fmt.Errorf("invalid doctor: %w", err)
	}
	if _, exists := c.Doctor(d.ID); exists {
		return Doctor{}, fmt.Errorf("doctor %s already exists", d.ID)
	}

	d.Order = len(c.Doctors)
	c.Doctors = append(c.Doctors, d)
	if c.DefaultSchedule == nil {
		c.DefaultSchedule = make(map[string]WeeklySchedule)
	}
	c.DefaultSchedule[d.ID] = DefaultWeeklySchedule()
	return d, nil
}

// UpdateDoctor replaces the stored doctor with the same id
func (c *Config) UpdateDoctor(d Doctor) error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("invalid doctor: %w", err)
	}
	for i := range c.Doctors {
		if c.Doctors[i].ID == d.ID {
			c.Doctors[i] = d
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrDoctorNotFound, d.ID)
}

// RemoveDoctor deletes a doctor together with its weekly schedule and rules.
// Entries already stored in month schedules are left alone.
func (c *Config) RemoveDoctor(id string) error {
	idx := -1
	for i, d := range c.Doctors {
		if d.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrDoctorNotFound, id)
	}

	c.Doctors = append(c.Doctors[:idx:idx], c.Doctors[idx+1:]...)
	c.dropDoctorData(map[string]bool{id: true})
	return nil
}

// dropDoctorData deletes the weekly schedules and rules of the given doctors
func (c *Config) dropDoctorData(ids map[string]bool) {
	for id := range ids {
		delete(c.DefaultSchedule, id)
	}

	rules := make([]RecurringRule, 0, len(c.RecurringRules))
	for _, r := range c.RecurringRules {
		if !ids[r.DoctorID] {
			rules = append(rules, r)
		}
	}
	c.RecurringRules = rules
}

// ReorderDoctors sets the display order to the position in ids.
// Unknown ids are ignored. Doctors missing from ids are dropped together with
// their weekly schedules and rules, as RemoveDoctor does.
func (c *Config) ReorderDoctors(ids []string) {
	reordered := make([]Doctor, 0, len(ids))
	kept := make(map[string]bool, len(ids))
	for _, id := range ids {
		d, ok := c.Doctor(id)
		if !ok || kept[id] {
			continue
		}
		kept[id] = true
		d.Order = len(reordered)
		reordered = append(reordered, d)
	}

	dropped := make(map[string]bool)
	for _, d := range c.Doctors {
		if !kept[d.ID] {
			dropped[d.ID] = true
		}
	}
	c.Doctors = reordered
	c.dropDoctorData(dropped)
}

// IsDoctorPermutation reports whether ids names every doctor exactly once
func (c *Config) IsDoctorPermutation(ids []string) bool {
	if len(ids) != len(c.Doctors) {
		return false
	}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if _, ok := c.Doctor(id); !ok || seen[id] {
			return false
		}
		seen[id] = true
	}
	return true
}

// SetDefaultSchedule replaces a doctor's weekly pattern
func (c *Config) SetDefaultSchedule(doctorID string, ws WeeklySchedule) error {
	if _, ok := c.Doctor(doctorID); !ok {
		return fmt.Errorf("%w: %s", ErrDoctorNotFound, doctorID)
	}
	for key, interval := range ws {
		switch key {
		case Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday:
		default:
			return fmt.Errorf("unknown weekday key %q", key)
		}
		if interval == nil {
			continue
		}
		if err := validate.Struct(*interval); err != nil {
			return fmt.Errorf("%s: invalid interval: %w", key, err)
		}
		if err := checkOrder(interval.Start, interval.End); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}

	if c.DefaultSchedule == nil {
		c.DefaultSchedule = make(map[string]WeeklySchedule)
	}
	c.DefaultSchedule[doctorID] = ws
	return nil
}

// AddRule validates and appends a recurring rule
func (c *Config) AddRule(r RecurringRule) (RecurringRule, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if err := c.validateRule(r); err != nil {
		return RecurringRule{}, err
	}
	c.RecurringRules = append(c.RecurringRules, r)
	return r, nil
}

// UpdateRule replaces the stored rule with the same id, keeping its position
func (c *Config) UpdateRule(r RecurringRule) error {
	if err := c.validateRule(r); err != nil {
		return err
	}
	for i := range c.RecurringRules {
		if c.RecurringRules[i].ID == r.ID {
			c.RecurringRules[i] = r
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrRuleNotFound, r.ID)
}

// RemoveRule deletes a recurring rule
func (c *Config) RemoveRule(id string) error {
	for i, r := range c.RecurringRules {
		if r.ID == id {
			c.RecurringRules = append(c.RecurringRules[:i:i], c.RecurringRules[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrRuleNotFound, id)
}

func (c *Config) validateRule(r RecurringRule) error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid recurring rule: %w", err)
	}
	if _, ok := c.Doctor(r.DoctorID); !ok {
		return fmt.Errorf("%w: %s", ErrDoctorNotFound, r.DoctorID)
	}
	return nil
}

// AddHospitalHoliday validates and appends a hospital holiday
func (c *Config) AddHospitalHoliday(h HospitalHoliday) (HospitalHoliday, error) {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	if err := validate.Struct(h); err != nil {
		return HospitalHoliday{}, fmt.Errorf("invalid hospital holiday: %w", err)
	}
	// 2024 is a leap year, so February 29 stays valid
	if h.Type == HolidayYearly && h.Day > dateutil.DaysInMonth(2024, time.Month(h.Month)) {
		return HospitalHoliday{}, fmt.Errorf("invalid hospital holiday: %02d-%02d never occurs", h.Month, h.Day)
	}
	c.HospitalHolidays = append(c.HospitalHolidays, h)
	return h, nil
}

// RemoveHospitalHoliday deletes a hospital holiday
func (c *Config) RemoveHospitalHoliday(id string) error {
	for i, h := range c.HospitalHolidays {
		if h.ID == id {
			c.HospitalHolidays = append(c.HospitalHolidays[:i:i], c.HospitalHolidays[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrHolidayNotFound, id)
}
