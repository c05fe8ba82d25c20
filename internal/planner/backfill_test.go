package planner

import (
	"context"
	"testing"
	"time"
)

func TestManager_GenerateRange(t *testing.T) {
	m := newTestManager(t, march1st())

	result, err := m.GenerateRange(context.Background(), 2024, time.November, 2025, time.February)
	if err != nil {
		t.Fatalf("GenerateRange() error = %v", err)
	}

	want := []string{"2024-11", "2024-12", "2025-01", "2025-02"}
	if result.ProcessedMonths != len(want) {
		t.Fatalf("ProcessedMonths = %d, want %d", result.ProcessedMonths, len(want))
	}
	for i, mr := range result.Months {
		if mr.Key != want[i] || !mr.Success {
			t.Errorf("Months[%d] = %+v, want successful %s", i, mr, want[i])
		}
		year, month := 2024, time.November+time.Month(i)
		if month > time.December {
			year, month = 2025, month-12
		}
		if _, err := m.Month(year, month); err != nil {
			t.Errorf("Month(%s) not stored: %v", want[i], err)
		}
	}
}

func TestManager_GenerateRange_SingleMonth(t *testing.T) {
	m := newTestManager(t, march1st())

	result, err := m.GenerateRange(context.Background(), 2024, time.March, 2024, time.March)
	if err != nil {
		t.Fatalf("GenerateRange() error = %v", err)
	}
	if result.ProcessedMonths != 1 || result.Months[0].Holidays != 1 {
		t.Errorf("GenerateRange(2024-03) = %+v, want one month with one holiday", result)
	}
}

func TestManager_GenerateRange_Invalid(t *testing.T) {
	m := newTestManager(t, nil)

	if _, err := m.GenerateRange(context.Background(), 2024, time.May, 2024, time.March); err == nil {
		t.Errorf("GenerateRange(reversed) error = nil, want error")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := m.GenerateRange(ctx, 2024, time.March, 2024, time.April); err == nil {
		t.Errorf("GenerateRange(canceled) error = nil, want context error")
	}
}
