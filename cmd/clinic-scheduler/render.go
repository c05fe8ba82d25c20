package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/username/clinic-scheduler/internal/calendar"
	"github.com/username/clinic-scheduler/internal/schedule"
	"github.com/username/clinic-scheduler/pkg/dateutil"
)

const cellWidth = 13

var weekdayHeader = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// cellText is the short form of an entry: "09:00-18:00", "AM 09:00-13:00",
// "PM 14:00-18:00" or "off". Manual edits carry a trailing "*".
func cellText(e schedule.DoctorDaySchedule) string {
	var text string
	switch e.Status {
	case schedule.StatusWork:
		text = e.Start + "-" + e.End
	case schedule.StatusMorning:
		text = "AM " + e.Start + "-" + e.End
	case schedule.StatusAfternoon:
		text = "PM " + e.Start + "-" + e.End
	case schedule.StatusOff:
		text = "off"
	default:
		return "-"
	}
	if e.IsManualEdit {
		text += "*"
	}
	return text
}

// renderMonth prints a month as Sunday-first weeks: a header row with the
// day numbers, then one row per active doctor
func renderMonth(w io.Writer, ms *schedule.MonthSchedule, clinic *schedule.Config, today time.Time) {
	title := dateutil.MonthKey(ms.Year, ms.Month)
	if clinic.Hospital.Name != "" {
		title = clinic.Hospital.Name + " " + title
	}
	fmt.Fprintln(w, title)
	if ms.NoticeText != "" {
		fmt.Fprintf(w, "Notice: %s\n", ms.NoticeText)
	}

	doctors := clinic.ActiveDoctors()
	nameWidth := 6
	for _, d := range doctors {
		if n := len([]rune(d.Name)); n > nameWidth {
			nameWidth = n
		}
	}

	grid := calendar.MonthGrid(ms.Year, ms.Month, today)
	var holidayNotes []string

	for week := 0; week*7 < len(grid); week++ {
		row := grid[week*7 : week*7+7]
		fmt.Fprintln(w)

		fmt.Fprint(w, pad("", nameWidth))
		for i, cell := range row {
			label := ""
			if cell.InMonth {
				label = fmt.Sprintf("%s %d", weekdayHeader[i], cell.Day)
				if data, ok := ms.Day(cell.Day); ok && data.IsHoliday {
					label += " H"
					holidayNotes = append(holidayNotes, fmt.Sprintf("%d: %s", cell.Day, data.HolidayName))
				}
				if cell.IsToday {
					label = "[" + label + "]"
				}
			}
			fmt.Fprint(w, " "+pad(label, cellWidth))
		}
		fmt.Fprintln(w)

		for _, d := range doctors {
			fmt.Fprint(w, pad(d.Name, nameWidth))
			for _, cell := range row {
				text := ""
				if cell.InMonth {
					data, _ := ms.Day(cell.Day)
					text = cellText(data.Doctors[d.ID])
				}
				fmt.Fprint(w, " "+pad(text, cellWidth))
			}
			fmt.Fprintln(w)
		}
	}

	if len(holidayNotes) > 0 {
		fmt.Fprintf(w, "\nHolidays: %s\n", strings.Join(holidayNotes, ", "))
	}
	fmt.Fprintln(w, "\n* manual edit")
}

func pad(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
