package scheduling

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"bookline/backend/internal/domain"
	"bookline/backend/internal/store"
)

const (
	DefaultCutoffWindow         = 2 * time.Hour
	DefaultNoShowBlockThreshold = 3
	DefaultMinSlotDuration      = time.Minute
	DefaultMaxSlotDuration      = 480 * time.Minute

	DefaultListLimit = 100
	MaxListLimit     = 500
)

type Config struct {
	// CutoffWindow is the minimum lead time before an appointment's start
	// during which it may no longer be changed.
	CutoffWindow time.Duration
	// NoShowBlockThreshold is the no-show count at which a client is blocked
	// from booking.
	NoShowBlockThreshold int
	MinSlotDuration      time.Duration
	MaxSlotDuration      time.Duration
}

func (c Config) withDefaults() Config {
	if c.CutoffWindow <= 0 {
		c.CutoffWindow = DefaultCutoffWindow
	}
	if c.NoShowBlockThreshold <= 0 {
		c.NoShowBlockThreshold = DefaultNoShowBlockThreshold
	}
	if c.MinSlotDuration <= 0 {
		c.MinSlotDuration = DefaultMinSlotDuration
	}
	if c.MaxSlotDuration <= 0 {
		c.MaxSlotDuration = DefaultMaxSlotDuration
	}
	return c
}

// Notifier receives lifecycle events after they commit. Delivery is
// fire-and-forget: implementations log failures and never propagate them
// back into the booking operation.
type Notifier interface {
	AppointmentBooked(ctx context.Context, appt domain.Appointment)
	AppointmentUpdated(ctx context.Context, appt domain.Appointment)
	AppointmentRescheduled(ctx context.Context, appt domain.Appointment, oldStart, oldEnd time.Time)
}

type NopNotifier struct{}

func (NopNotifier) AppointmentBooked(context.Context, domain.Appointment)  {}
func (NopNotifier) AppointmentUpdated(context.Context, domain.Appointment) {}
func (NopNotifier) AppointmentRescheduled(context.Context, domain.Appointment, time.Time, time.Time) {
}

type Service struct {
	repo     store.SchedulingRepository
	notifier Notifier
	cfg      Config
	now      func() time.Time
}

func NewService(repo store.SchedulingRepository, notifier Notifier, cfg Config) *Service {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Service{
		repo:     repo,
		notifier: notifier,
		cfg:      cfg.withDefaults(),
		now:      time.Now,
	}
}

type CreateInput struct {
	// ClientID is the pre-validated caller identity; a booking is always
	// created on behalf of the calling client.
	ClientID  string
	StaffID   string
	StartTime time.Time
	EndTime   time.Time
	Notes     string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (domain.Appointment, error) {
	if in.ClientID == "" {
		return domain.Appointment{}, validationError("client_id is required")
	}
	if in.StaffID == "" {
		return domain.Appointment{}, validationError("staff_id is required")
	}
	start, end, err := normalizeInterval(in.StartTime, in.EndTime)
	if err != nil {
		return domain.Appointment{}, err
	}

	var out domain.Appointment
	err = s.repo.InStaffTransaction(ctx, in.StaffID, func(ctx context.Context, tx store.SchedulingTx) error {
		rec, err := tx.GetNoShowRecord(ctx, in.ClientID)
		if err != nil {
			return err
		}
		if rec.IsBlocked {
			return &BlockedError{NoShowCount: rec.NoShowCount}
		}

		if err := checkPlacement(ctx, tx, in.StaffID, start, end, uuid.Nil); err != nil {
			return err
		}

		created, err := tx.CreateAppointment(ctx, domain.Appointment{
			ClientID:  in.ClientID,
			StaffID:   in.StaffID,
			StartTime: start,
			EndTime:   end,
			Status:    domain.StatusScheduled,
			Notes:     strings.TrimSpace(in.Notes),
		})
		if err != nil {
			return err
		}
		out = created
		return nil
	})
	if err != nil {
		return domain.Appointment{}, err
	}

	s.notifier.AppointmentBooked(ctx, out)
	return out, nil
}

// List returns one page of the caller's appointments. A non-positive limit
// falls back to DefaultListLimit and oversized requests are capped, so a
// single call can never drag the whole table across.
func (s *Service) List(ctx context.Context, callerID string, role domain.Role, skip, limit int) ([]domain.Appointment, error) {
	if err := validateCaller(callerID, role); err != nil {
		return nil, err
	}
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return s.repo.ListAppointments(ctx, callerID, role, skip, limit)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID, callerID string, role domain.Role) (domain.Appointment, error) {
	if err := validateCaller(callerID, role); err != nil {
		return domain.Appointment{}, err
	}
	appt, err := s.repo.GetAppointment(ctx, id)
	if err != nil {
		return domain.Appointment{}, err
	}
	if !canModify(appt, callerID, role) {
		return domain.Appointment{}, &PermissionError{}
	}
	return appt, nil
}

type UpdateInput struct {
	ID         uuid.UUID
	CallerID   string
	CallerRole domain.Role

	StartTime *time.Time
	EndTime   *time.Time
	Notes     *string
	Status    *domain.AppointmentStatus
}

// Update applies a partial patch. Any time-range change is re-validated
// against conflicts and availability the same way Create is; a bare notes or
// status change is not. Status changes must be in the transition table;
// writing the current status back is a no-op.
func (s *Service) Update(ctx context.Context, in UpdateInput) (domain.Appointment, error) {
	if err := validateCaller(in.CallerID, in.CallerRole); err != nil {
		return domain.Appointment{}, err
	}
	if in.Status != nil && !in.Status.Valid() {
		return domain.Appointment{}, validationError("invalid status")
	}

	current, err := s.repo.GetAppointment(ctx, in.ID)
	if err != nil {
		return domain.Appointment{}, err
	}
	if !canModify(current, in.CallerID, in.CallerRole) {
		return domain.Appointment{}, &PermissionError{}
	}

	var out domain.Appointment
	err = s.repo.InStaffTransaction(ctx, current.StaffID, func(ctx context.Context, tx store.SchedulingTx) error {
		appt, err := tx.GetAppointment(ctx, in.ID)
		if err != nil {
			return err
		}
		if err := s.checkCutoff(appt.StartTime); err != nil {
			return err
		}

		timeChanged := false
		if in.StartTime != nil {
			appt.StartTime = in.StartTime.UTC()
			timeChanged = true
		}
		if in.EndTime != nil {
			appt.EndTime = in.EndTime.UTC()
			timeChanged = true
		}
		if in.Notes != nil {
			appt.Notes = *in.Notes
		}
		if in.Status != nil && *in.Status != appt.Status {
			if !domain.CanTransition(appt.Status, *in.Status) {
				return policyErrorf("cannot change a %s appointment to %s", appt.Status, *in.Status)
			}
			appt.Status = *in.Status
		}

		if timeChanged {
			start, end, err := normalizeInterval(appt.StartTime, appt.EndTime)
			if err != nil {
				return err
			}
			appt.StartTime, appt.EndTime = start, end
			if appt.Status == domain.StatusScheduled {
				if err := checkPlacement(ctx, tx, appt.StaffID, start, end, appt.ID); err != nil {
					return err
				}
			}
		}

		updated, err := tx.UpdateAppointment(ctx, appt)
		if err != nil {
			return err
		}
		out = updated
		return nil
	})
	if err != nil {
		return domain.Appointment{}, err
	}

	s.notifier.AppointmentUpdated(ctx, out)
	return out, nil
}

type RescheduleInput struct {
	ID         uuid.UUID
	CallerID   string
	CallerRole domain.Role

	NewStart time.Time
	NewEnd   time.Time
	Reason   string
}

// Reschedule moves a SCHEDULED appointment to a new interval in place: same
// identifier, same creation history. The cutoff is enforced against the
// current start time, and the new interval is validated with the appointment
// itself excluded from the conflict check.
func (s *Service) Reschedule(ctx context.Context, in RescheduleInput) (domain.Appointment, error) {
	if err := validateCaller(in.CallerID, in.CallerRole); err != nil {
		return domain.Appointment{}, err
	}
	newStart, newEnd, err := normalizeInterval(in.NewStart, in.NewEnd)
	if err != nil {
		return domain.Appointment{}, err
	}

	current, err := s.repo.GetAppointment(ctx, in.ID)
	if err != nil {
		return domain.Appointment{}, err
	}
	if !canModify(current, in.CallerID, in.CallerRole) {
		return domain.Appointment{}, &PermissionError{}
	}

	var out domain.Appointment
	var oldStart, oldEnd time.Time
	err = s.repo.InStaffTransaction(ctx, current.StaffID, func(ctx context.Context, tx store.SchedulingTx) error {
		appt, err := tx.GetAppointment(ctx, in.ID)
		if err != nil {
			return err
		}
		if appt.Status != domain.StatusScheduled {
			return policyErrorf("cannot reschedule a %s appointment", appt.Status)
		}
		if err := s.checkCutoff(appt.StartTime); err != nil {
			return err
		}
		if err := checkPlacement(ctx, tx, appt.StaffID, newStart, newEnd, appt.ID); err != nil {
			return err
		}

		oldStart, oldEnd = appt.StartTime, appt.EndTime
		appt.StartTime, appt.EndTime = newStart, newEnd
		if reason := strings.TrimSpace(in.Reason); reason != "" {
			appt.Notes = strings.TrimSpace(appt.Notes + "\n[Rescheduled: " + reason + "]")
		}

		updated, err := tx.UpdateAppointment(ctx, appt)
		if err != nil {
			return err
		}
		out = updated
		return nil
	})
	if err != nil {
		return domain.Appointment{}, err
	}

	s.notifier.AppointmentRescheduled(ctx, out, oldStart, oldEnd)
	return out, nil
}

// MarkCompleted records that a past SCHEDULED appointment took place.
// Restricted to the assigned staff member or an admin.
func (s *Service) MarkCompleted(ctx context.Context, id uuid.UUID, callerID string, role domain.Role) (domain.Appointment, error) {
	appt, _, err := s.close(ctx, id, callerID, role, domain.StatusCompleted)
	return appt, err
}

// MarkNoShow records that the client did not attend a past SCHEDULED
// appointment and increments the client's no-show counter as part of the
// same transaction. The returned record reflects the counter after the
// increment.
func (s *Service) MarkNoShow(ctx context.Context, id uuid.UUID, callerID string, role domain.Role) (domain.Appointment, domain.ClientNoShowRecord, error) {
	return s.close(ctx, id, callerID, role, domain.StatusNoShow)
}

func (s *Service) close(ctx context.Context, id uuid.UUID, callerID string, role domain.Role, target domain.AppointmentStatus) (domain.Appointment, domain.ClientNoShowRecord, error) {
	if err := validateCaller(callerID, role); err != nil {
		return domain.Appointment{}, domain.ClientNoShowRecord{}, err
	}
	if role != domain.RoleAdmin && role != domain.RoleStaff {
		return domain.Appointment{}, domain.ClientNoShowRecord{}, &PermissionError{}
	}

	current, err := s.repo.GetAppointment(ctx, id)
	if err != nil {
		return domain.Appointment{}, domain.ClientNoShowRecord{}, err
	}
	if role != domain.RoleAdmin && current.StaffID != callerID {
		return domain.Appointment{}, domain.ClientNoShowRecord{}, &PermissionError{}
	}

	var out domain.Appointment
	var rec domain.ClientNoShowRecord
	err = s.repo.InStaffTransaction(ctx, current.StaffID, func(ctx context.Context, tx store.SchedulingTx) error {
		appt, err := tx.GetAppointment(ctx, id)
		if err != nil {
			return err
		}
		if !domain.CanTransition(appt.Status, target) {
			return policyErrorf("cannot mark a %s appointment as %s", appt.Status, target)
		}
		if appt.StartTime.After(s.now()) {
			return policyErrorf("cannot mark a future appointment as %s", target)
		}

		appt.Status = target
		updated, err := tx.UpdateAppointment(ctx, appt)
		if err != nil {
			return err
		}
		out = updated

		if target == domain.StatusNoShow {
			rec, err = tx.IncrementNoShow(ctx, appt.ClientID, s.cfg.NoShowBlockThreshold)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return domain.Appointment{}, domain.ClientNoShowRecord{}, err
	}
	return out, rec, nil
}

func (s *Service) checkCutoff(start time.Time) error {
	if start.Sub(s.now()) < s.cfg.CutoffWindow {
		return policyErrorf("cannot change an appointment within %s of its start time", s.cfg.CutoffWindow)
	}
	return nil
}

// checkPlacement is the combined "staff unavailable" test: the interval must
// not overlap any other SCHEDULED appointment, and some availability window
// must cover it on that date. Callers hold the per-staff lock, so the answer
// stays true until the transaction commits.
func checkPlacement(ctx context.Context, tx store.SchedulingTx, staffID string, start, end time.Time, excludeID uuid.UUID) error {
	booked, err := tx.ListScheduledAppointments(ctx, staffID, start, end, excludeID)
	if err != nil {
		return err
	}
	if len(booked) > 0 {
		return conflictError("staff already has an appointment during that time")
	}

	windows, err := tx.ListAvailabilityWindows(ctx, staffID)
	if err != nil {
		return err
	}
	if !domain.AnyWindowCovers(windows, start, end) {
		return conflictError("staff is not available at this time")
	}
	return nil
}

func normalizeInterval(start, end time.Time) (time.Time, time.Time, error) {
	if start.IsZero() || end.IsZero() {
		return time.Time{}, time.Time{}, validationError("start_time and end_time are required")
	}
	s := start.UTC()
	e := end.UTC()
	if !e.After(s) {
		return time.Time{}, time.Time{}, validationError("end_time must be after start_time")
	}
	if !domain.SameDate(s, e) {
		return time.Time{}, time.Time{}, validationError("appointment must start and end on the same day")
	}
	return s, e, nil
}

func validateCaller(callerID string, role domain.Role) error {
	if callerID == "" {
		return validationError("caller_id is required")
	}
	if !role.Valid() {
		return validationError("invalid caller role")
	}
	return nil
}

func canModify(appt domain.Appointment, callerID string, role domain.Role) bool {
	return role == domain.RoleAdmin || appt.ClientID == callerID || appt.StaffID == callerID
}
