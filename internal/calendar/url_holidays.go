package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/username/clinic-scheduler/internal/schedule"
)

const (
	defaultHTTPTimeout = 10 * time.Second
	defaultCacheTTL    = 24 * time.Hour
)

// URLHolidays downloads one year of public holidays at a time from an HTTP
// endpoint. The URL template carries a {year} placeholder and must answer with
// a JSON array of {"date", "name"} objects.
type URLHolidays struct {
	httpClient *http.Client
	logger     *zap.Logger
	urlPattern string

	cache    map[int]*cachedYear
	cacheMu  sync.RWMutex
	cacheTTL time.Duration
	now      func() time.Time
}

type cachedYear struct {
	holidays  []schedule.PublicHoliday
	fetchedAt time.Time
}

// NewURLHolidays creates a new URLHolidays instance
func NewURLHolidays(urlPattern string, cacheTTL time.Duration, logger *zap.Logger) *URLHolidays {
	if cacheTTL == 0 {
		cacheTTL = defaultCacheTTL
	}

	return &URLHolidays{
		httpClient: &http.Client{
			Timeout: defaultHTTPTimeout,
		},
		logger:     logger,
		urlPattern: urlPattern,
		cache:      make(map[int]*cachedYear),
		cacheTTL:   cacheTTL,
		now:        time.Now,
	}
}

// Holidays returns the holidays of a month, downloading the year if the
// cached copy is missing or stale
func (u *URLHolidays) Holidays(ctx context.Context, year int, month time.Month) ([]schedule.PublicHoliday, error) {
	yearData, err := u.year(ctx, year)
	if err != nil {
		return nil, err
	}

	ds := Dataset{strconv.Itoa(year): yearData}
	return ds.HolidaysForMonth(year, month), nil
}

func (u *URLHolidays) year(ctx context.Context, year int) ([]schedule.PublicHoliday, error) {
	u.cacheMu.RLock()
	if cached, ok := u.cache[year]; ok && u.now().Sub(cached.fetchedAt) < u.cacheTTL {
		u.cacheMu.RUnlock()
		u.logger.Debug("Using cached holidays", zap.Int("year", year))
		return cached.holidays, nil
	}
	u.cacheMu.RUnlock()

	holidays, err := u.download(ctx, year)
	if err != nil {
		return nil, err
	}

	u.cacheMu.Lock()
	u.cache[year] = &cachedYear{
		holidays:  holidays,
		fetchedAt: u.now(),
	}
	u.cacheMu.Unlock()

	return holidays, nil
}

func (u *URLHolidays) download(ctx context.Context, year int) ([]schedule.PublicHoliday, error) {
	url := strings.ReplaceAll(u.urlPattern, "{year}", strconv.Itoa(year))

	u.logger.Info("Downloading holiday data",
		zap.String("url", url),
		zap.Int("year", year))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch holiday data: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %d", ErrYearNotCovered, year)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("holiday API returned status %d", resp.StatusCode)
	}

	var holidays []schedule.PublicHoliday
	if err := json.NewDecoder(resp.Body).Decode(&holidays); err != nil {
		return nil, fmt.Errorf("failed to parse holiday JSON: %w", err)
	}

	if err := checkDates(holidays); err != nil {
		return nil, fmt.Errorf("holiday data for %d: %w", year, err)
	}

	u.logger.Info("Holiday data downloaded",
		zap.Int("year", year),
		zap.Int("holidays", len(holidays)))

	return holidays, nil
}

// ClearCache drops every cached year
func (u *URLHolidays) ClearCache() {
	u.cacheMu.Lock()
	defer u.cacheMu.Unlock()

	u.cache = make(map[int]*cachedYear)
	u.logger.Info("Holiday cache cleared")
}
