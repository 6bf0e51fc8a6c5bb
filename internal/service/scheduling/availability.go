package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"

	"bookline/backend/internal/domain"
)

type CreateAvailabilityInput struct {
	CallerID   string
	CallerRole domain.Role

	StaffID      string
	DayOfWeek    *int16
	SpecificDate *time.Time
	StartTime    domain.TimeOfDay
	EndTime      domain.TimeOfDay
	IsRecurring  bool
}

// CreateAvailability publishes an open window for a staff member. Staff may
// only manage their own windows; admins may manage anyone's. Windows are
// immutable: replacing one is delete plus create.
func (s *Service) CreateAvailability(ctx context.Context, in CreateAvailabilityInput) (domain.AvailabilityWindow, error) {
	if err := validateCaller(in.CallerID, in.CallerRole); err != nil {
		return domain.AvailabilityWindow{}, err
	}
	if in.CallerRole != domain.RoleAdmin && in.CallerRole != domain.RoleStaff {
		return domain.AvailabilityWindow{}, &PermissionError{}
	}
	if in.StaffID == "" {
		return domain.AvailabilityWindow{}, validationError("staff_id is required")
	}
	if in.CallerRole == domain.RoleStaff && in.StaffID != in.CallerID {
		return domain.AvailabilityWindow{}, &PermissionError{}
	}

	if !in.StartTime.Valid() || !in.EndTime.Valid() {
		return domain.AvailabilityWindow{}, validationError("start_time and end_time must be valid times of day")
	}
	if in.EndTime <= in.StartTime {
		return domain.AvailabilityWindow{}, validationError("end_time must be after start_time")
	}
	if in.DayOfWeek != nil && (*in.DayOfWeek < 0 || *in.DayOfWeek > 6) {
		return domain.AvailabilityWindow{}, validationError("day_of_week must be between 0 (Monday) and 6 (Sunday)")
	}
	if in.IsRecurring && in.DayOfWeek == nil {
		return domain.AvailabilityWindow{}, validationError("day_of_week is required for a recurring window")
	}
	if !in.IsRecurring && in.SpecificDate == nil {
		return domain.AvailabilityWindow{}, validationError("specific_date is required for a one-off window")
	}

	var specificDate *time.Time
	if in.SpecificDate != nil {
		d := startOfDay(*in.SpecificDate)
		specificDate = &d
	}

	return s.repo.CreateAvailabilityWindow(ctx, domain.AvailabilityWindow{
		StaffID:      in.StaffID,
		DayOfWeek:    in.DayOfWeek,
		SpecificDate: specificDate,
		StartTime:    in.StartTime,
		EndTime:      in.EndTime,
		IsRecurring:  in.IsRecurring,
	})
}

func (s *Service) ListAvailability(ctx context.Context, staffID string) ([]domain.AvailabilityWindow, error) {
	if staffID == "" {
		return nil, validationError("staff_id is required")
	}
	return s.repo.ListAvailabilityWindows(ctx, staffID)
}

func (s *Service) DeleteAvailability(ctx context.Context, id uuid.UUID, callerID string, role domain.Role) error {
	if err := validateCaller(callerID, role); err != nil {
		return err
	}
	if role != domain.RoleAdmin && role != domain.RoleStaff {
		return &PermissionError{}
	}

	w, err := s.repo.GetAvailabilityWindow(ctx, id)
	if err != nil {
		return err
	}
	if role != domain.RoleAdmin && w.StaffID != callerID {
		return &PermissionError{}
	}
	return s.repo.DeleteAvailabilityWindow(ctx, id)
}
