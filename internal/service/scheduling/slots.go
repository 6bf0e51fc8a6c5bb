package scheduling

import (
	"context"
	"fmt"
	"time"

	"bookline/backend/internal/domain"
)

type FreeSlotsInput struct {
	StaffID string
	// Date identifies the calendar day to enumerate; the time of day is
	// ignored.
	Date     time.Time
	Duration time.Duration
}

// FreeSlots enumerates the bookable slots of the given duration for a staff
// member on one date. Read-only: it takes no lock, so a slot can be taken by
// a concurrent booking between enumeration and a create call.
func (s *Service) FreeSlots(ctx context.Context, in FreeSlotsInput) ([]domain.Slot, error) {
	if in.StaffID == "" {
		return nil, validationError("staff_id is required")
	}
	if in.Date.IsZero() {
		return nil, validationError("date is required")
	}
	if in.Duration < s.cfg.MinSlotDuration || in.Duration > s.cfg.MaxSlotDuration {
		return nil, validationError(fmt.Sprintf(
			"slot duration must be between %s and %s", s.cfg.MinSlotDuration, s.cfg.MaxSlotDuration))
	}

	windows, err := s.repo.ListAvailabilityWindows(ctx, in.StaffID)
	if err != nil {
		return nil, err
	}

	day := startOfDay(in.Date)
	if len(domain.WindowsOn(windows, day)) == 0 {
		return nil, nil
	}

	booked, err := s.repo.ListScheduledAppointments(ctx, in.StaffID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	busy := make([]domain.Interval, 0, len(booked))
	for _, a := range booked {
		busy = append(busy, domain.Interval{Start: a.StartTime, End: a.EndTime})
	}

	return domain.FreeSlots(windows, busy, day, in.Duration), nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
