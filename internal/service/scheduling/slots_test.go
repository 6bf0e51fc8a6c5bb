package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"bookline/backend/internal/domain"
)

func TestServiceFreeSlots_DurationBounds(t *testing.T) {
	svc := NewService(&fakeRepo{}, nil, Config{})
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	for _, d := range []time.Duration{0, 30 * time.Second, 481 * time.Minute} {
		_, err := svc.FreeSlots(context.Background(), FreeSlotsInput{
			StaffID: "s1", Date: date, Duration: d,
		})
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Errorf("duration %v: error type = %T, want *ValidationError", d, err)
		}
	}
}

func TestServiceFreeSlots_NoWindowsSkipsAppointmentQuery(t *testing.T) {
	// listScheduledFn stays nil: reaching it panics. With no windows on the
	// date the service must return early.
	repo := &fakeRepo{
		listWindowsFn: func(ctx context.Context, staffID string) ([]domain.AvailabilityWindow, error) {
			return nil, nil
		},
	}
	svc := NewService(repo, nil, Config{})

	slots, err := svc.FreeSlots(context.Background(), FreeSlotsInput{
		StaffID:  "s1",
		Date:     time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Duration: time.Hour,
	})
	if err != nil {
		t.Fatalf("FreeSlots error: %v", err)
	}
	if slots != nil {
		t.Fatalf("slots = %v, want nil", slots)
	}
}

func TestServiceFreeSlots_ExcludesBookedIntervals(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // a Monday
	day := int16(0)
	windows := []domain.AvailabilityWindow{{
		StaffID:     "s1",
		DayOfWeek:   &day,
		StartTime:   domain.NewTimeOfDay(9, 0),
		EndTime:     domain.NewTimeOfDay(12, 0),
		IsRecurring: true,
	}}

	var gotStart, gotEnd time.Time
	repo := &fakeRepo{
		listWindowsFn: func(ctx context.Context, staffID string) ([]domain.AvailabilityWindow, error) {
			return windows, nil
		},
		listScheduledFn: func(ctx context.Context, staffID string, windowStart, windowEnd time.Time) ([]domain.Appointment, error) {
			gotStart, gotEnd = windowStart, windowEnd
			return []domain.Appointment{{
				StaffID:   staffID,
				StartTime: date.Add(10 * time.Hour),
				EndTime:   date.Add(11 * time.Hour),
				Status:    domain.StatusScheduled,
			}}, nil
		},
	}
	svc := NewService(repo, nil, Config{})

	slots, err := svc.FreeSlots(context.Background(), FreeSlotsInput{
		StaffID:  "s1",
		Date:     date.Add(15 * time.Hour), // any instant of the day works
		Duration: time.Hour,
	})
	if err != nil {
		t.Fatalf("FreeSlots error: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("len(slots) = %d, want 2", len(slots))
	}
	if !slots[0].Start.Equal(date.Add(9*time.Hour)) || !slots[1].Start.Equal(date.Add(11*time.Hour)) {
		t.Fatalf("slots = %v, %v", slots[0].Start, slots[1].Start)
	}
	if !gotStart.Equal(date) || !gotEnd.Equal(date.AddDate(0, 0, 1)) {
		t.Fatalf("appointment query window = [%v, %v), want the full day", gotStart, gotEnd)
	}
}
