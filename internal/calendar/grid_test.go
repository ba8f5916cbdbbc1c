package calendar

import (
	"testing"
	"time"
)

func TestMonthGridShape(t *testing.T) {
	for year := 2024; year <= 2027; year++ {
		for month := time.January; month <= time.December; month++ {
			ref := time.Date(year, month, 17, 15, 30, 0, 0, time.UTC)
			days := MonthGrid(ref)
			if len(days) != GridSize {
				t.Fatalf("%s: expected %d cells, got %d", ref.Format(MonthLayout), GridSize, len(days))
			}
			if days[0].Weekday() != time.Sunday {
				t.Fatalf("%s: grid starts on %s", ref.Format(MonthLayout), days[0].Weekday())
			}
			for i := 1; i < len(days); i++ {
				if !SameDay(days[i], days[i-1].AddDate(0, 0, 1)) {
					t.Fatalf("%s: cell %d is %s, previous %s", ref.Format(MonthLayout), i, days[i].Format(DayLayout), days[i-1].Format(DayLayout))
				}
			}
			first := FirstOfMonth(ref)
			offset := int(first.Weekday())
			if !SameDay(days[offset], first) {
				t.Fatalf("%s: expected the 1st at index %d, got %s", ref.Format(MonthLayout), offset, days[offset].Format(DayLayout))
			}
		}
	}
}

func TestMonthGridFillers(t *testing.T) {
	tests := []struct {
		name     string
		ref      time.Time
		leading  int
		trailing int
	}{
		{name: "starts on wednesday", ref: time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC), leading: 3, trailing: 8},
		{name: "31 days starting sunday", ref: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), leading: 0, trailing: 11},
		{name: "28 days starting sunday", ref: time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC), leading: 0, trailing: 14},
		{name: "31 days starting saturday", ref: time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC), leading: 6, trailing: 5},
		{name: "leap february", ref: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), leading: 4, trailing: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := MonthGrid(tt.ref)
			leading, trailing := 0, 0
			for i, d := range days {
				if SameMonth(d, tt.ref) {
					continue
				}
				if i < Weekdays {
					leading++
				} else {
					trailing++
				}
			}
			if leading != tt.leading {
				t.Errorf("expected %d leading days, got %d", tt.leading, leading)
			}
			if trailing != tt.trailing {
				t.Errorf("expected %d trailing days, got %d", tt.trailing, trailing)
			}
		})
	}
}

func TestMonthGridKeepsLocation(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	ref := time.Date(2026, time.October, 1, 0, 30, 0, 0, loc)
	for _, d := range MonthGrid(ref) {
		if d.Location() != loc {
			t.Fatalf("expected location %v, got %v", loc, d.Location())
		}
		if d.Hour() != 0 || d.Minute() != 0 {
			t.Fatalf("expected midnight, got %s", d.Format(time.RFC3339))
		}
	}
}

func TestMonthGridAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	days := MonthGrid(time.Date(2026, time.March, 15, 12, 0, 0, 0, loc))
	for i := 1; i < len(days); i++ {
		if !SameDay(days[i], days[i-1].AddDate(0, 0, 1)) {
			t.Fatalf("cell %d is %s, previous %s", i, days[i].Format(DayLayout), days[i-1].Format(DayLayout))
		}
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC)
	b := time.Date(2026, time.October, 14, 23, 59, 59, 0, time.UTC)
	c := time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC)
	d := time.Date(2025, time.October, 14, 0, 0, 0, 0, time.UTC)

	if !SameDay(a, a) {
		t.Fatal("expected reflexive")
	}
	if !SameDay(a, b) || !SameDay(b, a) {
		t.Fatal("expected same day regardless of time of day")
	}
	if SameDay(a, c) || SameDay(c, a) {
		t.Fatal("expected different days")
	}
	if SameDay(a, d) {
		t.Fatal("expected different years to differ")
	}
}

func TestFirstLastOfMonth(t *testing.T) {
	ref := time.Date(2024, time.February, 10, 8, 0, 0, 0, time.UTC)
	if got := FirstOfMonth(ref); !got.Equal(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected first of month %s", got)
	}
	if got := LastOfMonth(ref); !got.Equal(time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected last of month %s", got)
	}
	if got := DaysInMonth(time.February, 2023); got != 28 {
		t.Fatalf("expected 28 days, got %d", got)
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		ref  time.Time
		n    int
		want time.Time
	}{
		{time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC), 1, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)},
		{time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC), -1, time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)},
		{time.Date(2026, time.December, 5, 0, 0, 0, 0, time.UTC), 1, time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC), 0, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		if got := AddMonths(tt.ref, tt.n); !got.Equal(tt.want) {
			t.Errorf("AddMonths(%s, %d) = %s, want %s", tt.ref.Format(DayLayout), tt.n, got.Format(DayLayout), tt.want.Format(DayLayout))
		}
	}
}
