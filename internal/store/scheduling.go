package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"bookline/backend/internal/domain"
)

// SchedulingTx is the view of the store inside a per-staff transaction. The
// implementation must hold an exclusive lock on the staff member's schedule
// for the duration, so a read-check-write sequence observes a stable set of
// SCHEDULED appointments.
type SchedulingTx interface {
	GetAppointment(ctx context.Context, id uuid.UUID) (domain.Appointment, error)
	CreateAppointment(ctx context.Context, appt domain.Appointment) (domain.Appointment, error)
	UpdateAppointment(ctx context.Context, appt domain.Appointment) (domain.Appointment, error)

	// ListScheduledAppointments returns SCHEDULED appointments for the staff
	// member whose interval intersects [windowStart, windowEnd), ordered by
	// start time. An excludeID other than uuid.Nil drops that appointment
	// from the result, for reschedule self-exclusion.
	ListScheduledAppointments(ctx context.Context, staffID string, windowStart, windowEnd time.Time, excludeID uuid.UUID) ([]domain.Appointment, error)

	ListAvailabilityWindows(ctx context.Context, staffID string) ([]domain.AvailabilityWindow, error)

	// GetNoShowRecord returns the zero record, not an error, when the client
	// has never missed an appointment.
	GetNoShowRecord(ctx context.Context, clientID string) (domain.ClientNoShowRecord, error)

	// IncrementNoShow atomically adds one to the client's no-show counter,
	// setting is_blocked once the counter reaches blockThreshold. The record
	// is created lazily on first increment.
	IncrementNoShow(ctx context.Context, clientID string, blockThreshold int) (domain.ClientNoShowRecord, error)
}

type SchedulingRepository interface {
	// InStaffTransaction runs fn inside a transaction holding an exclusive
	// lock on the staff member's schedule. Bookings for different staff
	// members proceed in parallel.
	InStaffTransaction(ctx context.Context, staffID string, fn func(ctx context.Context, tx SchedulingTx) error) error

	GetAppointment(ctx context.Context, id uuid.UUID) (domain.Appointment, error)

	// ListAppointments applies the role filter: clients see appointments they
	// booked, staff see appointments assigned to them, admins see all. The
	// result is one page, skip rows in and at most limit rows long.
	ListAppointments(ctx context.Context, callerID string, role domain.Role, skip, limit int) ([]domain.Appointment, error)

	ListScheduledAppointments(ctx context.Context, staffID string, windowStart, windowEnd time.Time) ([]domain.Appointment, error)

	// ListScheduledStartingBetween returns SCHEDULED appointments for every
	// staff member with start_time in [windowStart, windowEnd), for the
	// reminder sweep.
	ListScheduledStartingBetween(ctx context.Context, windowStart, windowEnd time.Time) ([]domain.Appointment, error)

	ListAvailabilityWindows(ctx context.Context, staffID string) ([]domain.AvailabilityWindow, error)
	GetAvailabilityWindow(ctx context.Context, id uuid.UUID) (domain.AvailabilityWindow, error)
	CreateAvailabilityWindow(ctx context.Context, w domain.AvailabilityWindow) (domain.AvailabilityWindow, error)
	DeleteAvailabilityWindow(ctx context.Context, id uuid.UUID) error
}
