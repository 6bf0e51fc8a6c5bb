package domain

import (
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	got, err := ParseTimeOfDay("09:30")
	if err != nil {
		t.Fatalf("ParseTimeOfDay error: %v", err)
	}
	if got != NewTimeOfDay(9, 30) {
		t.Fatalf("got %v, want %v", got, NewTimeOfDay(9, 30))
	}
	if got.String() != "09:30" {
		t.Fatalf("String = %q, want %q", got.String(), "09:30")
	}

	for _, bad := range []string{"", "9:30am", "25:00", "12:60", "noon"} {
		if _, err := ParseTimeOfDay(bad); err == nil {
			t.Errorf("ParseTimeOfDay(%q) expected error", bad)
		}
	}
}

func TestWeekdayIndex_MondayBased(t *testing.T) {
	// 2026-03-02 is a Monday.
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		if got := WeekdayIndex(monday.AddDate(0, 0, i)); got != int16(i) {
			t.Errorf("WeekdayIndex(+%dd) = %d, want %d", i, got, i)
		}
	}
}

func TestAvailabilityWindowMatchesDate(t *testing.T) {
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)
	day := int16(0)

	recurring := AvailabilityWindow{
		DayOfWeek:   &day,
		StartTime:   NewTimeOfDay(9, 0),
		EndTime:     NewTimeOfDay(17, 0),
		IsRecurring: true,
	}
	if !recurring.MatchesDate(monday) {
		t.Fatalf("recurring Monday window should match a Monday")
	}
	if recurring.MatchesDate(tuesday) {
		t.Fatalf("recurring Monday window should not match a Tuesday")
	}

	oneOff := AvailabilityWindow{
		SpecificDate: &tuesday,
		StartTime:    NewTimeOfDay(10, 0),
		EndTime:      NewTimeOfDay(12, 0),
	}
	if !oneOff.MatchesDate(tuesday.Add(15 * time.Hour)) {
		t.Fatalf("one-off window should match any instant of its date")
	}
	if oneOff.MatchesDate(monday) {
		t.Fatalf("one-off window should not match another date")
	}

	// A non-recurring window with only a weekday never matches.
	stale := AvailabilityWindow{DayOfWeek: &day, IsRecurring: false}
	if stale.MatchesDate(monday) {
		t.Fatalf("non-recurring weekday-only window should not match")
	}
}

func TestAvailabilityWindowCovers_BoundariesInside(t *testing.T) {
	w := AvailabilityWindow{
		StartTime: NewTimeOfDay(9, 0),
		EndTime:   NewTimeOfDay(17, 0),
	}
	at := func(h, m int) time.Time { return time.Date(2026, 3, 2, h, m, 0, 0, time.UTC) }

	if !w.Covers(at(9, 0), at(17, 0)) {
		t.Fatalf("full window should be covered")
	}
	if !w.Covers(at(10, 0), at(11, 0)) {
		t.Fatalf("interior interval should be covered")
	}
	if w.Covers(at(8, 59), at(10, 0)) {
		t.Fatalf("interval starting before the window should not be covered")
	}
	if w.Covers(at(16, 30), at(17, 1)) {
		t.Fatalf("interval ending after the window should not be covered")
	}
}

func TestWindowsOn_UnionAndOrdering(t *testing.T) {
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	day := int16(0)
	otherDay := int16(3)

	windows := []AvailabilityWindow{
		{DayOfWeek: &day, StartTime: NewTimeOfDay(13, 0), EndTime: NewTimeOfDay(17, 0), IsRecurring: true},
		{SpecificDate: &monday, StartTime: NewTimeOfDay(9, 0), EndTime: NewTimeOfDay(12, 0)},
		{DayOfWeek: &otherDay, StartTime: NewTimeOfDay(9, 0), EndTime: NewTimeOfDay(17, 0), IsRecurring: true},
	}

	got := WindowsOn(windows, monday)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// The one-off morning window sorts before the recurring afternoon one.
	if got[0].StartTime != NewTimeOfDay(9, 0) || got[1].StartTime != NewTimeOfDay(13, 0) {
		t.Fatalf("windows out of order: %v then %v", got[0].StartTime, got[1].StartTime)
	}
}

func TestAnyWindowCovers(t *testing.T) {
	day := int16(0)
	windows := []AvailabilityWindow{
		{DayOfWeek: &day, StartTime: NewTimeOfDay(9, 0), EndTime: NewTimeOfDay(12, 0), IsRecurring: true},
		{DayOfWeek: &day, StartTime: NewTimeOfDay(14, 0), EndTime: NewTimeOfDay(17, 0), IsRecurring: true},
	}
	at := func(h, m int) time.Time { return time.Date(2026, 3, 2, h, m, 0, 0, time.UTC) }

	if !AnyWindowCovers(windows, at(10, 0), at(11, 0)) {
		t.Fatalf("morning interval should be covered")
	}
	if AnyWindowCovers(windows, at(11, 30), at(14, 30)) {
		t.Fatalf("interval spanning the gap must not be covered by either window")
	}
	if AnyWindowCovers(windows, at(12, 30), at(13, 30)) {
		t.Fatalf("interval in the gap should not be covered")
	}
	if AnyWindowCovers(nil, at(10, 0), at(11, 0)) {
		t.Fatalf("no windows should cover nothing")
	}
}
