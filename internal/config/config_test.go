package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
store:
  dir: /var/lib/clinic
holidays:
  source: url
  url: https://holidays.example.com/kr/{year}.json
  cache_ttl: 6h
log:
  level: debug
schedule:
  default_notice: "Closed on public holidays"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Store.Dir != "/var/lib/clinic" {
		t.Errorf("Store.Dir = %q, want /var/lib/clinic", cfg.Store.Dir)
	}
	if cfg.Holidays.Source != "url" || cfg.Holidays.URL != "https://holidays.example.com/kr/{year}.json" {
		t.Errorf("Holidays = %+v, want url source", cfg.Holidays)
	}
	if got := cfg.Holidays.GetCacheTTL(); got != 6*time.Hour {
		t.Errorf("GetCacheTTL() = %v, want 6h", got)
	}
	if cfg.Log.GetLevel() != "debug" {
		t.Errorf("Log.GetLevel() = %q, want debug", cfg.Log.GetLevel())
	}
	if cfg.Schedule.DefaultNotice != "Closed on public holidays" {
		t.Errorf("Schedule.DefaultNotice = %q", cfg.Schedule.DefaultNotice)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "schedule:\n  default_notice: hi\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Store.Dir != "data" {
		t.Errorf("Store.Dir = %q, want data", cfg.Store.Dir)
	}
	if cfg.Holidays.Source != "embedded" {
		t.Errorf("Holidays.Source = %q, want embedded", cfg.Holidays.Source)
	}
	if cfg.Log.GetLevel() != "info" {
		t.Errorf("Log.GetLevel() = %q, want info", cfg.Log.GetLevel())
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CLINIC_SCHEDULER_STORE_DIR", "/tmp/clinic-env")
	t.Setenv("CLINIC_SCHEDULER_HOLIDAYS_SOURCE", "file")
	t.Setenv("CLINIC_SCHEDULER_HOLIDAYS_FILE", "/etc/holidays.json")

	cfg, err := Load(writeConfig(t, "store:\n  dir: from-file\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Store.Dir != "/tmp/clinic-env" {
		t.Errorf("Store.Dir = %q, want env override", cfg.Store.Dir)
	}
	if cfg.Holidays.Source != "file" || cfg.Holidays.File != "/etc/holidays.json" {
		t.Errorf("Holidays = %+v, want file source from env", cfg.Holidays)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("Load(missing file) error = nil, want error")
	}
	if _, err := Load(writeConfig(t, "holidays:\n  source: ical\n")); err == nil {
		t.Errorf("Load(unknown source) error = nil, want error")
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	if err := LoadEnvFile(filepath.Join(dir, ".env")); err != nil {
		t.Errorf("LoadEnvFile(missing) error = %v, want nil", err)
	}

	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("CLINIC_SCHEDULER_LOG_LEVEL=warn\n"), 0644); err != nil {
		t.Fatal(err)
	}
	// registered so the variable is removed again after the test
	t.Setenv("CLINIC_SCHEDULER_LOG_LEVEL", "")
	os.Unsetenv("CLINIC_SCHEDULER_LOG_LEVEL")

	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("LoadEnvFile() error = %v", err)
	}
	if got := os.Getenv("CLINIC_SCHEDULER_LOG_LEVEL"); got != "warn" {
		t.Errorf("CLINIC_SCHEDULER_LOG_LEVEL = %q, want warn", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"embedded", Config{Store: StoreConfig{Dir: "data"}}, false},
		{"missing store dir", Config{}, true},
		{"file source", Config{Store: StoreConfig{Dir: "data"}, Holidays: HolidaysConfig{Source: "file", File: "h.json"}}, false},
		{"file source without file", Config{Store: StoreConfig{Dir: "data"}, Holidays: HolidaysConfig{Source: "file"}}, true},
		{"url source without url", Config{Store: StoreConfig{Dir: "data"}, Holidays: HolidaysConfig{Source: "url"}}, true},
		{"unknown source", Config{Store: StoreConfig{Dir: "data"}, Holidays: HolidaysConfig{Source: "ical"}}, true},
		{"bad log level", Config{Store: StoreConfig{Dir: "data"}, Log: LogConfig{Level: "verbose"}}, true},
		{"upper case log level", Config{Store: StoreConfig{Dir: "data"}, Log: LogConfig{Level: "WARN"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestHolidaysConfig_GetCacheTTL(t *testing.T) {
	tests := []struct {
		value string
		want  time.Duration
	}{
		{"", 24 * time.Hour},
		{"30m", 30 * time.Minute},
		{"soon", 24 * time.Hour},
		{"-1h", 24 * time.Hour},
	}

	for _, tt := range tests {
		c := HolidaysConfig{CacheTTL: tt.value}
		if got := c.GetCacheTTL(); got != tt.want {
			t.Errorf("GetCacheTTL(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
