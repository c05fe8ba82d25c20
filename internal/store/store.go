package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/username/clinic-scheduler/internal/schedule"
	"github.com/username/clinic-scheduler/pkg/dateutil"
)

// ErrNotFound is returned when no schedule is stored for a month
var ErrNotFound = errors.New("schedule not found")

const (
	configFile  = "config.json"
	scheduleDir = "schedules"
)

// Store keeps the clinic configuration and the generated month schedules as
// pretty-printed JSON files under one directory:
//
//	<dir>/config.json
//	<dir>/schedules/YYYY-MM.json
type Store struct {
	dir    string
	logger *zap.Logger
	mu     sync.RWMutex
}

// New creates a store rooted at dir
func New(dir string, logger *zap.Logger) *Store {
	return &Store{
		dir:    dir,
		logger: logger,
	}
}

// Dir returns the root directory of the store
func (s *Store) Dir() string {
	return s.dir
}

// LoadConfig reads the clinic configuration. A missing file yields an empty
// configuration so a fresh store is usable right away.
func (s *Store) LoadConfig() (*schedule.Config, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cfg := schedule.NewConfig()
	found, err := s.readJSON(filepath.Join(s.dir, configFile), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if !found {
		s.logger.Debug("Config file not found, using empty config", zap.String("dir", s.dir))
		return cfg, nil
	}

	if cfg.DefaultSchedule == nil {
		cfg.DefaultSchedule = make(map[string]schedule.WeeklySchedule)
	}
	return cfg, nil
}

// SaveConfig writes the clinic configuration
func (s *Store) SaveConfig(cfg *schedule.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writeJSON(filepath.Join(s.dir, configFile), cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	s.logger.Info("Config saved",
		zap.Int("doctors", len(cfg.Doctors)),
		zap.Int("rules", len(cfg.RecurringRules)),
		zap.Int("hospital_holidays", len(cfg.HospitalHolidays)))

	return nil
}

// LoadMonth reads the schedule stored for a month
func (s *Store) LoadMonth(year int, month time.Month) (*schedule.MonthSchedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key := dateutil.MonthKey(year, month)
	var ms schedule.MonthSchedule
	found, err := s.readJSON(s.monthPath(key), &ms)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule %s: %w", key, err)
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return &ms, nil
}

// SaveMonth writes a month schedule, replacing any previous copy
func (s *Store) SaveMonth(ms *schedule.MonthSchedule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := dateutil.MonthKey(ms.Year, ms.Month)
	if err := s.writeJSON(s.monthPath(key), ms); err != nil {
		return fmt.Errorf("failed to save schedule %s: %w", key, err)
	}

	s.logger.Info("Schedule saved",
		zap.String("month", key),
		zap.Int("days", len(ms.Days)))

	return nil
}

// DeleteMonth removes the schedule of a month
func (s *Store) DeleteMonth(year int, month time.Month) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := dateutil.MonthKey(year, month)
	if err := os.Remove(s.monthPath(key)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return fmt.Errorf("failed to delete schedule %s: %w", key, err)
	}

	s.logger.Info("Schedule deleted", zap.String("month", key))
	return nil
}

// Months lists the keys ("YYYY-MM") of every stored schedule in order
func (s *Store) Months() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.monthKeys()
}

// LoadAll reads every stored schedule keyed by "YYYY-MM"
func (s *Store) LoadAll() (map[string]*schedule.MonthSchedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys, err := s.monthKeys()
	if err != nil {
		return nil, err
	}

	all := make(map[string]*schedule.MonthSchedule, len(keys))
	for _, key := range keys {
		var ms schedule.MonthSchedule
		if _, err := s.readJSON(s.monthPath(key), &ms); err != nil {
			return nil, fmt.Errorf("failed to load schedule %s: %w", key, err)
		}
		all[key] = &ms
	}
	return all, nil
}

func (s *Store) monthKeys() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.dir, scheduleDir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}

	keys := []string{}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		key := strings.TrimSuffix(name, ".json")
		if _, _, err := dateutil.ParseMonthKey(key); err != nil {
			s.logger.Warn("Skipping unexpected file in schedule directory", zap.String("file", name))
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *Store) monthPath(key string) string {
	return filepath.Join(s.dir, scheduleDir, key+".json")
}

func (s *Store) readJSON(path string, v any) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return true, nil
}

func (s *Store) writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
