package calendar

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/username/clinic-scheduler/internal/schedule"
)

// FileHolidays reads a public holiday dataset from a local JSON file
type FileHolidays struct {
	filePath string
	logger   *zap.Logger

	mu   sync.RWMutex
	data Dataset
}

// NewFileHolidays creates a new FileHolidays instance
func NewFileHolidays(filePath string, logger *zap.Logger) *FileHolidays {
	return &FileHolidays{
		filePath: filePath,
		logger:   logger,
	}
}

// Load loads holiday data from file
func (fh *FileHolidays) Load() error {
	raw, err := os.ReadFile(fh.filePath)
	if err != nil {
		return fmt.Errorf("failed to read holiday file: %w", err)
	}

	ds, err := ParseDataset(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", fh.filePath, err)
	}

	fh.mu.Lock()
	fh.data = ds
	fh.mu.Unlock()

	fh.logger.Info("Holiday file loaded",
		zap.String("file", fh.filePath),
		zap.Int("years", len(ds)))

	return nil
}

// Holidays returns the holidays of a month, loading the file on first use
func (fh *FileHolidays) Holidays(_ context.Context, year int, month time.Month) ([]schedule.PublicHoliday, error) {
	fh.mu.RLock()
	ds := fh.data
	fh.mu.RUnlock()

	if ds == nil {
		if err := fh.Load(); err != nil {
			return nil, err
		}
		fh.mu.RLock()
		ds = fh.data
		fh.mu.RUnlock()
	}

	return ds.month(year, month)
}
