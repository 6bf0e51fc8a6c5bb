package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"bookline/backend/internal/domain"
)

func TestServiceCreateAvailability_StaffOwnWindowsOnly(t *testing.T) {
	repo := &fakeRepo{
		createWindowFn: func(ctx context.Context, w domain.AvailabilityWindow) (domain.AvailabilityWindow, error) {
			return w, nil
		},
	}
	svc := NewService(repo, nil, Config{})
	day := int16(0)

	_, err := svc.CreateAvailability(context.Background(), CreateAvailabilityInput{
		CallerID:    "s1",
		CallerRole:  domain.RoleStaff,
		StaffID:     "s2",
		DayOfWeek:   &day,
		StartTime:   domain.NewTimeOfDay(9, 0),
		EndTime:     domain.NewTimeOfDay(17, 0),
		IsRecurring: true,
	})
	var permErr *PermissionError
	if !errors.As(err, &permErr) {
		t.Fatalf("error type = %T, want *PermissionError", err)
	}

	// Admins may publish for anyone.
	w, err := svc.CreateAvailability(context.Background(), CreateAvailabilityInput{
		CallerID:    "a1",
		CallerRole:  domain.RoleAdmin,
		StaffID:     "s2",
		DayOfWeek:   &day,
		StartTime:   domain.NewTimeOfDay(9, 0),
		EndTime:     domain.NewTimeOfDay(17, 0),
		IsRecurring: true,
	})
	if err != nil {
		t.Fatalf("CreateAvailability error: %v", err)
	}
	if w.StaffID != "s2" {
		t.Fatalf("staff_id = %q, want %q", w.StaffID, "s2")
	}
}

func TestServiceCreateAvailability_ClientDenied(t *testing.T) {
	svc := NewService(&fakeRepo{}, nil, Config{})
	day := int16(0)

	_, err := svc.CreateAvailability(context.Background(), CreateAvailabilityInput{
		CallerID:    "c1",
		CallerRole:  domain.RoleClient,
		StaffID:     "c1",
		DayOfWeek:   &day,
		StartTime:   domain.NewTimeOfDay(9, 0),
		EndTime:     domain.NewTimeOfDay(17, 0),
		IsRecurring: true,
	})
	var permErr *PermissionError
	if !errors.As(err, &permErr) {
		t.Fatalf("error type = %T, want *PermissionError", err)
	}
}

func TestServiceCreateAvailability_RuleValidation(t *testing.T) {
	svc := NewService(&fakeRepo{}, nil, Config{})
	day := int16(0)
	badDay := int16(7)
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   CreateAvailabilityInput
	}{
		{"end before start", CreateAvailabilityInput{
			StaffID: "s1", DayOfWeek: &day,
			StartTime: domain.NewTimeOfDay(17, 0), EndTime: domain.NewTimeOfDay(9, 0),
			IsRecurring: true,
		}},
		{"day out of range", CreateAvailabilityInput{
			StaffID: "s1", DayOfWeek: &badDay,
			StartTime: domain.NewTimeOfDay(9, 0), EndTime: domain.NewTimeOfDay(17, 0),
			IsRecurring: true,
		}},
		{"recurring without weekday", CreateAvailabilityInput{
			StaffID:   "s1",
			StartTime: domain.NewTimeOfDay(9, 0), EndTime: domain.NewTimeOfDay(17, 0),
			IsRecurring: true,
		}},
		{"one-off without date", CreateAvailabilityInput{
			StaffID:   "s1",
			StartTime: domain.NewTimeOfDay(9, 0), EndTime: domain.NewTimeOfDay(17, 0),
		}},
		{"missing staff", CreateAvailabilityInput{
			SpecificDate: &date,
			StartTime:    domain.NewTimeOfDay(9, 0), EndTime: domain.NewTimeOfDay(17, 0),
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.in.CallerID = "a1"
			tc.in.CallerRole = domain.RoleAdmin
			_, err := svc.CreateAvailability(context.Background(), tc.in)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("error type = %T, want *ValidationError", err)
			}
		})
	}
}

func TestServiceCreateAvailability_NormalizesSpecificDate(t *testing.T) {
	var got domain.AvailabilityWindow
	repo := &fakeRepo{
		createWindowFn: func(ctx context.Context, w domain.AvailabilityWindow) (domain.AvailabilityWindow, error) {
			got = w
			return w, nil
		},
	}
	svc := NewService(repo, nil, Config{})

	date := time.Date(2026, 3, 2, 14, 35, 12, 0, time.UTC)
	_, err := svc.CreateAvailability(context.Background(), CreateAvailabilityInput{
		CallerID:     "s1",
		CallerRole:   domain.RoleStaff,
		StaffID:      "s1",
		SpecificDate: &date,
		StartTime:    domain.NewTimeOfDay(9, 0),
		EndTime:      domain.NewTimeOfDay(12, 0),
	})
	if err != nil {
		t.Fatalf("CreateAvailability error: %v", err)
	}
	want := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	if got.SpecificDate == nil || !got.SpecificDate.Equal(want) {
		t.Fatalf("specific_date = %v, want %v", got.SpecificDate, want)
	}
}

func TestServiceDeleteAvailability_OwnerOrAdmin(t *testing.T) {
	id := uuid.MustParse("00000000-0000-0000-0000-000000000040")
	deleted := 0
	repo := &fakeRepo{
		getWindowFn: func(ctx context.Context, got uuid.UUID) (domain.AvailabilityWindow, error) {
			return domain.AvailabilityWindow{ID: id, StaffID: "s1"}, nil
		},
		deleteWindowFn: func(ctx context.Context, got uuid.UUID) error {
			deleted++
			return nil
		},
	}
	svc := NewService(repo, nil, Config{})

	var permErr *PermissionError
	if err := svc.DeleteAvailability(context.Background(), id, "s2", domain.RoleStaff); !errors.As(err, &permErr) {
		t.Fatalf("error type = %T, want *PermissionError", err)
	}
	if err := svc.DeleteAvailability(context.Background(), id, "c1", domain.RoleClient); !errors.As(err, &permErr) {
		t.Fatalf("error type = %T, want *PermissionError", err)
	}
	if deleted != 0 {
		t.Fatalf("delete reached the store %d times before authorization", deleted)
	}

	if err := svc.DeleteAvailability(context.Background(), id, "s1", domain.RoleStaff); err != nil {
		t.Fatalf("DeleteAvailability error: %v", err)
	}
	if err := svc.DeleteAvailability(context.Background(), id, "a1", domain.RoleAdmin); err != nil {
		t.Fatalf("DeleteAvailability error: %v", err)
	}
	if deleted != 2 {
		t.Fatalf("deleted = %d, want 2", deleted)
	}
}
