package calendar

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Source kinds accepted by New
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourceURL      = "url"
)

// Options selects and configures a holiday source
type Options struct {
	Source   string
	File     string
	URL      string
	CacheTTL time.Duration
}

// New builds the holiday source described by opts. File and URL sources fall
// back to the embedded dataset, and a URL source also tries the file first
// when one is configured.
func New(opts Options, logger *zap.Logger) (HolidaySource, error) {
	embedded, err := NewEmbeddedHolidays()
	if err != nil {
		return nil, err
	}

	switch opts.Source {
	case "", SourceEmbedded:
		return embedded, nil

	case SourceFile:
		if opts.File == "" {
			return nil, fmt.Errorf("holiday source %q requires a file path", opts.Source)
		}
		return NewCompositeHolidays(NewFileHolidays(opts.File, logger), embedded, logger), nil

	case SourceURL:
		if opts.URL == "" {
			return nil, fmt.Errorf("holiday source %q requires a URL", opts.Source)
		}
		var fallback HolidaySource = embedded
		if opts.File != "" {
			fallback = NewCompositeHolidays(NewFileHolidays(opts.File, logger), embedded, logger)
		}
		return NewCompositeHolidays(NewURLHolidays(opts.URL, opts.CacheTTL, logger), fallback, logger), nil

	default:
		return nil, fmt.Errorf("unknown holiday source %q", opts.Source)
	}
}
