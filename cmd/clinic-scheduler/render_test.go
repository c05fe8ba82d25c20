package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/username/clinic-scheduler/internal/schedule"
)

func TestCellText(t *testing.T) {
	tests := []struct {
		entry schedule.DoctorDaySchedule
		want  string
	}{
		{schedule.DoctorDaySchedule{Status: schedule.StatusWork, Start: "09:00", End: "18:00"}, "09:00-18:00"},
		{schedule.DoctorDaySchedule{Status: schedule.StatusMorning, Start: "09:00", End: "13:00"}, "AM 09:00-13:00"},
		{schedule.DoctorDaySchedule{Status: schedule.StatusAfternoon, Start: "14:00", End: "18:00"}, "PM 14:00-18:00"},
		{schedule.DoctorDaySchedule{Status: schedule.StatusOff}, "off"},
		{schedule.ManualOff(), "off*"},
		{schedule.DoctorDaySchedule{}, "-"},
	}

	for _, tt := range tests {
		if got := cellText(tt.entry); got != tt.want {
			t.Errorf("cellText(%+v) = %q, want %q", tt.entry, got, tt.want)
		}
	}
}

func TestRenderMonth(t *testing.T) {
	clinic := schedule.NewConfig()
	clinic.Hospital.Name = "Hanbit Clinic"
	if _, err := clinic.AddDoctor(schedule.Doctor{ID: "d1", Name: "Dr. Kim", Active: true}); err != nil {
		t.Fatalf("AddDoctor() error = %v", err)
	}
	if _, err := clinic.AddDoctor(schedule.Doctor{ID: "d2", Name: "Dr. Park", Active: false}); err != nil {
		t.Fatalf("AddDoctor() error = %v", err)
	}

	gen := schedule.NewGenerator(schedule.WithClock(func() time.Time { return time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC) }))
	ms := gen.Generate(2024, time.March, clinic,
		[]schedule.PublicHoliday{{Date: "2024-03-01", Name: "삼일절"}}, nil, "Closed on public holidays")
	ms.Days["4"].Doctors["d1"] = schedule.ManualOff()

	var buf bytes.Buffer
	renderMonth(&buf, ms, clinic, time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local))
	out := buf.String()

	for _, want := range []string{
		"Hanbit Clinic 2024-03",
		"Notice: Closed on public holidays",
		"Fri 1 H",
		"[Fri 15]",
		"Sat 2",
		"09:00-13:00",
		"off*",
		"Holidays: 1: 삼일절",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("renderMonth() output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Dr. Park") {
		t.Errorf("renderMonth() printed inactive doctor:\n%s", out)
	}
}
