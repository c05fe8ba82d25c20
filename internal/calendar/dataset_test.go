package calendar

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/username/clinic-scheduler/internal/schedule"
)

func TestParseDataset(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{"valid", `{"2025": [{"date": "2025-01-01", "name": "New Year"}]}`, false},
		{"empty year", `{"2025": []}`, false},
		{"bad date", `{"2025": [{"date": "2025/01/01", "name": "New Year"}]}`, true},
		{"not json", `holidays`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDataset([]byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDataset() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDataset_HolidaysForMonth(t *testing.T) {
	ds := Dataset{
		"2024": {
			{Date: "2024-09-18", Name: "C"},
			{Date: "2024-09-16", Name: "A"},
			{Date: "2024-10-03", Name: "D"},
			{Date: "2024-09-17", Name: "B"},
		},
	}

	got := ds.HolidaysForMonth(2024, time.September)
	want := []schedule.PublicHoliday{
		{Date: "2024-09-16", Name: "A"},
		{Date: "2024-09-17", Name: "B"},
		{Date: "2024-09-18", Name: "C"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("HolidaysForMonth(2024, September) = %v, want %v", got, want)
	}

	if got := ds.HolidaysForMonth(2024, time.January); got == nil || len(got) != 0 {
		t.Errorf("HolidaysForMonth(2024, January) = %#v, want empty non-nil slice", got)
	}
	if got := ds.HolidaysForMonth(2030, time.September); len(got) != 0 {
		t.Errorf("HolidaysForMonth(2030, September) = %v, want empty", got)
	}
}

func TestDataset_HolidayOn(t *testing.T) {
	ds := Dataset{"2024": {{Date: "2024-03-01", Name: "삼일절"}}}

	h, ok := ds.HolidayOn(time.Date(2024, time.March, 1, 10, 0, 0, 0, time.Local))
	if !ok || h.Name != "삼일절" {
		t.Errorf("HolidayOn(2024-03-01) = %v, %v, want 삼일절, true", h, ok)
	}
	if _, ok := ds.HolidayOn(time.Date(2024, time.March, 2, 0, 0, 0, 0, time.Local)); ok {
		t.Errorf("HolidayOn(2024-03-02) found a holiday, want none")
	}
}

func TestEmbeddedHolidays(t *testing.T) {
	src, err := NewEmbeddedHolidays()
	if err != nil {
		t.Fatalf("NewEmbeddedHolidays() error = %v", err)
	}

	for _, year := range []int{2024, 2025, 2026} {
		if !src.Dataset().Covers(year) {
			t.Errorf("embedded dataset does not cover %d", year)
		}
	}

	got, err := src.Holidays(context.Background(), 2024, time.March)
	if err != nil {
		t.Fatalf("Holidays(2024, March) error = %v", err)
	}
	want := []schedule.PublicHoliday{{Date: "2024-03-01", Name: "삼일절"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Holidays(2024, March) = %v, want %v", got, want)
	}

	got, err = src.Holidays(context.Background(), 2024, time.September)
	if err != nil || len(got) != 3 {
		t.Errorf("Holidays(2024, September) = %v, %v, want 3 holidays", got, err)
	}

	if _, err := src.Holidays(context.Background(), 1999, time.March); !errors.Is(err, ErrYearNotCovered) {
		t.Errorf("Holidays(1999, March) error = %v, want ErrYearNotCovered", err)
	}
}
