package planner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/username/clinic-scheduler/internal/calendar"
	"github.com/username/clinic-scheduler/internal/schedule"
	"github.com/username/clinic-scheduler/internal/store"
	"github.com/username/clinic-scheduler/pkg/dateutil"
)

// Manager ties the schedule engine to persistence and the holiday source
type Manager struct {
	store         *store.Store
	holidays      calendar.HolidaySource
	generator     *schedule.Generator
	defaultNotice string
	logger        *zap.Logger

	// serializes load-modify-save cycles
	mu sync.Mutex
}

// NewManager creates a new schedule manager
func NewManager(
	st *store.Store,
	holidays calendar.HolidaySource,
	generator *schedule.Generator,
	defaultNotice string,
	logger *zap.Logger,
) *Manager {
	if generator == nil {
		generator = schedule.NewGenerator()
	}
	return &Manager{
		store:         st,
		holidays:      holidays,
		generator:     generator,
		defaultNotice: defaultNotice,
		logger:        logger,
	}
}

// Config returns the stored clinic configuration
func (m *Manager) Config() (*schedule.Config, error) {
	return m.store.LoadConfig()
}

// UpdateConfig loads the configuration, applies fn and saves the result.
// Nothing is saved when fn fails.
func (m *Manager) UpdateConfig(fn func(cfg *schedule.Config) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cfg, err := m.store.LoadConfig()
	if err != nil {
		return err
	}
	if err := fn(cfg); err != nil {
		return err
	}
	return m.store.SaveConfig(cfg)
}

// Month returns the stored schedule of a month
func (m *Manager) Month(year int, month time.Month) (*schedule.MonthSchedule, error) {
	return m.store.LoadMonth(year, month)
}

// GenerateMonth builds the schedule of a month from the current configuration
// and public holidays, keeping manual edits of a previously stored schedule.
func (m *Manager) GenerateMonth(ctx context.Context, year int, month time.Month) (*schedule.MonthSchedule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Info("Generating month schedule",
		zap.Int("year", year),
		zap.Int("month", int(month)))

	cfg, err := m.store.LoadConfig()
	if err != nil {
		return nil, err
	}

	existing, err := m.store.LoadMonth(year, month)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		existing = nil
	}

	publicHolidays, err := m.publicHolidays(ctx, year, month)
	if err != nil {
		return nil, err
	}

	ms := m.generator.Generate(year, month, cfg, publicHolidays, existing, m.defaultNotice)
	if err := m.store.SaveMonth(ms); err != nil {
		return nil, err
	}

	m.logger.Info("Month schedule generated",
		zap.Int("year", year),
		zap.Int("month", int(month)),
		zap.Int("doctors", len(cfg.ActiveDoctors())),
		zap.Int("public_holidays", len(publicHolidays)),
		zap.Bool("regenerated", existing != nil))

	return ms, nil
}

// publicHolidays asks the holiday source for the month. A year the source
// does not cover yields no holidays rather than an error.
func (m *Manager) publicHolidays(ctx context.Context, year int, month time.Month) ([]schedule.PublicHoliday, error) {
	if m.holidays == nil {
		return nil, nil
	}

	holidays, err := m.holidays.Holidays(ctx, year, month)
	if err != nil {
		if errors.Is(err, calendar.ErrYearNotCovered) {
			m.logger.Warn("No public holiday data, generating without public holidays",
				zap.Int("year", year),
				zap.Error(err))
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get public holidays: %w", err)
	}
	return holidays, nil
}

// EditDay stores a manual entry for one doctor on one day. The entry is
// flagged as a manual edit so later regenerations keep it.
func (m *Manager) EditDay(year int, month time.Month, day int, doctorID string, entry schedule.DoctorDaySchedule) (*schedule.MonthSchedule, error) {
	if err := schedule.ValidateEntry(entry); err != nil {
		return nil, err
	}
	if entry.Status == schedule.StatusOff {
		entry = schedule.ManualOff()
	}
	entry.IsManualEdit = true

	return m.updateDoctorDay(year, month, day, doctorID, "Manual edit saved",
		func(_ *schedule.Config, _ *schedule.DoctorDaySchedule) schedule.DoctorDaySchedule {
			return entry
		})
}

// ToggleDay flips a doctor between off and a full working day
func (m *Manager) ToggleDay(year int, month time.Month, day int, doctorID string) (*schedule.MonthSchedule, error) {
	return m.updateDoctorDay(year, month, day, doctorID, "Day toggled",
		func(_ *schedule.Config, current *schedule.DoctorDaySchedule) schedule.DoctorDaySchedule {
			return schedule.ToggleOff(current)
		})
}

// ResetDay drops a manual edit and restores the doctor's weekly default.
// Recurring rules and holidays are not re-applied until the next generation.
func (m *Manager) ResetDay(year int, month time.Month, day int, doctorID string) (*schedule.MonthSchedule, error) {
	date := dateutil.CivilDate(year, month, day)
	return m.updateDoctorDay(year, month, day, doctorID, "Day reset to weekly default",
		func(cfg *schedule.Config, _ *schedule.DoctorDaySchedule) schedule.DoctorDaySchedule {
			return schedule.ResetEntry(cfg, doctorID, date)
		})
}

// UpdateDayData replaces the whole data of one day. It is not a merge:
// doctors missing from data.Doctors lose their entry for that day, and the
// holiday flag and name are taken from data as given.
func (m *Manager) UpdateDayData(year int, month time.Month, day int, data schedule.DayData) (*schedule.MonthSchedule, error) {
	for doctorID, entry := range data.Doctors {
		if err := schedule.ValidateEntry(entry); err != nil {
			return nil, fmt.Errorf("doctor %s: %w", doctorID, err)
		}
	}

	return m.updateMonth(year, month, func(_ *schedule.Config, ms *schedule.MonthSchedule) error {
		if err := checkDay(year, month, day); err != nil {
			return err
		}
		if data.Doctors == nil {
			data.Doctors = make(map[string]schedule.DoctorDaySchedule)
		}
		ms.Days[dayKey(day)] = data

		m.logger.Info("Day data updated",
			zap.Int("year", year),
			zap.Int("month", int(month)),
			zap.Int("day", day),
			zap.Bool("holiday", data.IsHoliday))
		return nil
	})
}

// SetNotice replaces the notice text of a month. An empty notice counts as
// unset, so while a default notice is configured the next GenerateMonth
// puts the default back.
func (m *Manager) SetNotice(year int, month time.Month, text string) (*schedule.MonthSchedule, error) {
	return m.updateMonth(year, month, func(_ *schedule.Config, ms *schedule.MonthSchedule) error {
		ms.NoticeText = text

		m.logger.Info("Notice text updated",
			zap.Int("year", year),
			zap.Int("month", int(month)),
			zap.Int("length", len(text)))
		return nil
	})
}

// ClearMonth deletes the stored schedule of a month
func (m *Manager) ClearMonth(year int, month time.Month) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.DeleteMonth(year, month); err != nil {
		return err
	}

	m.logger.Info("Month schedule cleared",
		zap.Int("year", year),
		zap.Int("month", int(month)))
	return nil
}

type entryFunc func(cfg *schedule.Config, current *schedule.DoctorDaySchedule) schedule.DoctorDaySchedule

func (m *Manager) updateDoctorDay(year int, month time.Month, day int, doctorID, msg string, fn entryFunc) (*schedule.MonthSchedule, error) {
	return m.updateMonth(year, month, func(cfg *schedule.Config, ms *schedule.MonthSchedule) error {
		if err := checkDay(year, month, day); err != nil {
			return err
		}
		if _, ok := cfg.Doctor(doctorID); !ok {
			return fmt.Errorf("%w: %s", schedule.ErrDoctorNotFound, doctorID)
		}

		key := dayKey(day)
		data := ms.Days[key]
		if data.Doctors == nil {
			data.Doctors = make(map[string]schedule.DoctorDaySchedule)
		}

		var current *schedule.DoctorDaySchedule
		if entry, ok := data.Doctors[doctorID]; ok {
			current = &entry
		}
		updated := fn(cfg, current)
		data.Doctors[doctorID] = updated
		ms.Days[key] = data

		m.logger.Info(msg,
			zap.Int("year", year),
			zap.Int("month", int(month)),
			zap.Int("day", day),
			zap.String("doctor", doctorID),
			zap.String("status", string(updated.Status)),
			zap.Bool("manual", updated.IsManualEdit))
		return nil
	})
}

// updateMonth loads a stored month, applies fn and saves it. A month that has
// not been generated yet fails with store.ErrNotFound.
func (m *Manager) updateMonth(year int, month time.Month, fn func(cfg *schedule.Config, ms *schedule.MonthSchedule) error) (*schedule.MonthSchedule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ms, err := m.store.LoadMonth(year, month)
	if err != nil {
		return nil, err
	}
	cfg, err := m.store.LoadConfig()
	if err != nil {
		return nil, err
	}

	if ms.Days == nil {
		ms.Days = make(map[string]schedule.DayData)
	}
	if err := fn(cfg, ms); err != nil {
		return nil, err
	}

	if err := m.store.SaveMonth(ms); err != nil {
		return nil, err
	}
	return ms, nil
}
