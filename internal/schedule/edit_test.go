package schedule

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
)

func TestToggleOff(t *testing.T) {
	working := DoctorDaySchedule{Status: StatusWork, Start: "09:00", End: "18:00"}
	morning := DoctorDaySchedule{Status: StatusMorning, Start: "09:00", End: "13:00"}
	off := DoctorDaySchedule{Status: StatusOff}

	tests := []struct {
		name    string
		current *DoctorDaySchedule
		want    DoctorDaySchedule
	}{
		{"missing entry becomes work", nil, ManualWork("09:00", "18:00")},
		{"off becomes work", &off, ManualWork("09:00", "18:00")},
		{"work becomes off", &working, ManualOff()},
		{"half day becomes off", &morning, ManualOff()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToggleOff(tt.current)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ToggleOff() = %+v, want %+v", got, tt.want)
			}
			if !got.IsManualEdit {
				t.Errorf("ToggleOff() IsManualEdit = false, want true")
			}
		})
	}
}

// Reset only restores the weekly template. A full regeneration also applies
// recurring rules and holidays, so the two can disagree for the same day.
func TestResetEntry_IgnoresRulesAndHolidays(t *testing.T) {
	cfg := newTestConfig()
	cfg.RecurringRules = []RecurringRule{
		{DoctorID: "d1", Type: RuleWeekly, DayOfWeek: time.Monday, Period: PeriodAll},
	}
	cfg.HospitalHolidays = []HospitalHoliday{
		{Type: HolidayFixed, Date: "2024-03-11", Name: "Closed"},
	}

	generated := GenerateMonthSchedule(2024, time.March, cfg, nil, nil, "")
	templateDay := DoctorDaySchedule{Status: StatusWork, Start: "09:00", End: "18:00"}

	tests := []struct {
		name          string
		day           int
		wantGenerated DoctorDaySchedule
	}{
		{"rule day", 4, DoctorDaySchedule{Status: StatusOff}},
		{"holiday", 11, DoctorDaySchedule{Status: StatusOff}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := generated.Days[dayKey(tt.day)].Doctors["d1"]
			if !reflect.DeepEqual(gen, tt.wantGenerated) {
				t.Errorf("generated = %+v, want %+v", gen, tt.wantGenerated)
			}

			reset := ResetEntry(cfg, "d1", date(2024, time.March, tt.day))
			if !reflect.DeepEqual(reset, templateDay) {
				t.Errorf("ResetEntry() = %+v, want %+v", reset, templateDay)
			}
		})
	}
}

func TestResetEntry_NoTemplate(t *testing.T) {
	cfg := newTestConfig()
	want := DoctorDaySchedule{Status: StatusOff}

	if got := ResetEntry(cfg, "d1", date(2024, 3, 5)); !reflect.DeepEqual(got, want) {
		t.Errorf("ResetEntry(Tuesday) = %+v, want %+v", got, want)
	}
	if got := ResetEntry(cfg, "unknown", date(2024, 3, 4)); !reflect.DeepEqual(got, want) {
		t.Errorf("ResetEntry(unknown doctor) = %+v, want %+v", got, want)
	}
	if got := ResetEntry(nil, "d1", date(2024, 3, 4)); !reflect.DeepEqual(got, want) {
		t.Errorf("ResetEntry(nil config) = %+v, want %+v", got, want)
	}
}

func TestValidateInterval(t *testing.T) {
	tests := []struct {
		start   string
		end     string
		wantErr bool
	}{
		{"09:00", "18:00", false},
		{"14:00", "18:30", false},
		{"18:00", "09:00", true},
		{"09:00", "09:00", true},
		{"9", "18:00", true},
		{"09:00", "25:00", true},
	}

	for _, tt := range tests {
		err := ValidateInterval(tt.start, tt.end)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateInterval(%q, %q) error = %v, wantErr %v", tt.start, tt.end, err, tt.wantErr)
		}
	}
}

func TestValidateEntry(t *testing.T) {
	tests := []struct {
		name    string
		entry   DoctorDaySchedule
		wantTag string // failing validator tag, "" for a plain error
		wantErr bool
	}{
		{"full day", DoctorDaySchedule{Status: StatusWork, Start: "09:00", End: "18:00"}, "", false},
		{"afternoon", DoctorDaySchedule{Status: StatusAfternoon, Start: "14:00", End: "18:00"}, "", false},
		{"off without times", DoctorDaySchedule{Status: StatusOff}, "", false},
		{"off keeps stray times", DoctorDaySchedule{Status: StatusOff, Start: "09:00", End: "18:00"}, "", false},
		{"malformed start", DoctorDaySchedule{Status: StatusWork, Start: "9:5", End: "18:00"}, "datetime", true},
		{"hour out of range", DoctorDaySchedule{Status: StatusMorning, Start: "09:00", End: "25:00"}, "datetime", true},
		{"missing end", DoctorDaySchedule{Status: StatusWork, Start: "09:00"}, "required_unless", true},
		{"unknown status", DoctorDaySchedule{Status: "vacation", Start: "09:00", End: "18:00"}, "oneof", true},
		{"empty status", DoctorDaySchedule{Start: "09:00", End: "18:00"}, "oneof", true},
		{"inverted interval", DoctorDaySchedule{Status: StatusWork, Start: "18:00", End: "09:00"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEntry(tt.entry)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateEntry(%+v) error = %v, wantErr %v", tt.entry, err, tt.wantErr)
			}
			if tt.wantTag == "" {
				return
			}
			var verrs validator.ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("ValidateEntry(%+v) error = %v, want validation errors", tt.entry, err)
			}
			if got := verrs[0].Tag(); got != tt.wantTag {
				t.Errorf("ValidateEntry(%+v) failed tag = %q, want %q", tt.entry, got, tt.wantTag)
			}
		})
	}
}
