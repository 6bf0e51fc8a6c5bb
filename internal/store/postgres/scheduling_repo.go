package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun"

	"bookline/backend/internal/domain"
	"bookline/backend/internal/store"
)

type SchedulingRepo struct {
	db *bun.DB
}

func NewSchedulingRepo(db *bun.DB) *SchedulingRepo {
	return &SchedulingRepo{db: db}
}

type schedulingTx struct {
	tx bun.Tx
}

// InStaffTransaction serializes all mutations of one staff member's schedule
// behind a transaction-scoped advisory lock, closing the check-then-write
// race between concurrent booking attempts. Different staff members hash to
// different locks and proceed in parallel.
func (r *SchedulingRepo) InStaffTransaction(ctx context.Context, staffID string, fn func(ctx context.Context, tx store.SchedulingTx) error) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := lockStaffSchedule(ctx, tx, staffID); err != nil {
			return err
		}
		return fn(ctx, schedulingTx{tx: tx})
	})
}

func lockStaffSchedule(ctx context.Context, tx bun.Tx, staffID string) error {
	_, err := tx.NewRaw("SELECT pg_advisory_xact_lock(hashtext(?))", staffID).Exec(ctx)
	return err
}

func (r *SchedulingRepo) GetAppointment(ctx context.Context, id uuid.UUID) (domain.Appointment, error) {
	return getAppointment(ctx, r.db, id)
}

func (r *SchedulingRepo) ListAppointments(ctx context.Context, callerID string, role domain.Role, skip, limit int) ([]domain.Appointment, error) {
	var rows []domain.Appointment
	q := r.db.NewSelect().Model(&rows)
	switch role {
	case domain.RoleClient:
		q = q.Where("client_id = ?", callerID)
	case domain.RoleStaff:
		q = q.Where("staff_id = ?", callerID)
	case domain.RoleAdmin:
		// admins see everything
	}
	if skip > 0 {
		q = q.Offset(skip)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	if err := q.OrderExpr("start_time ASC").Scan(ctx); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *SchedulingRepo) ListScheduledAppointments(ctx context.Context, staffID string, windowStart, windowEnd time.Time) ([]domain.Appointment, error) {
	return listScheduled(ctx, r.db, staffID, windowStart, windowEnd, uuid.Nil)
}

func (r *SchedulingRepo) ListScheduledStartingBetween(ctx context.Context, windowStart, windowEnd time.Time) ([]domain.Appointment, error) {
	var rows []domain.Appointment
	err := r.db.NewSelect().
		Model(&rows).
		Where("status = ?", domain.StatusScheduled).
		Where("start_time >= ?", windowStart).
		Where("start_time < ?", windowEnd).
		OrderExpr("start_time ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *SchedulingRepo) ListAvailabilityWindows(ctx context.Context, staffID string) ([]domain.AvailabilityWindow, error) {
	return listAvailabilityWindows(ctx, r.db, staffID)
}

func (r *SchedulingRepo) GetAvailabilityWindow(ctx context.Context, id uuid.UUID) (domain.AvailabilityWindow, error) {
	var w domain.AvailabilityWindow
	err := r.db.NewSelect().Model(&w).Where("id = ?", id).Limit(1).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.AvailabilityWindow{}, store.ErrNotFound
	}
	if err != nil {
		return domain.AvailabilityWindow{}, err
	}
	return w, nil
}

func (r *SchedulingRepo) CreateAvailabilityWindow(ctx context.Context, w domain.AvailabilityWindow) (domain.AvailabilityWindow, error) {
	m := w
	if _, err := r.db.NewInsert().Model(&m).Exec(ctx); err != nil {
		return domain.AvailabilityWindow{}, err
	}
	return m, nil
}

func (r *SchedulingRepo) DeleteAvailabilityWindow(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.NewDelete().
		Model((*domain.AvailabilityWindow)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r schedulingTx) GetAppointment(ctx context.Context, id uuid.UUID) (domain.Appointment, error) {
	return getAppointment(ctx, r.tx, id)
}

func (r schedulingTx) CreateAppointment(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
	m := appt
	_, err := r.tx.NewInsert().Model(&m).Exec(ctx)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23P01" && pgErr.ConstraintName == "appointments_no_overlap" {
			return domain.Appointment{}, store.ErrConflict
		}
		return domain.Appointment{}, err
	}
	return m, nil
}

func (r schedulingTx) UpdateAppointment(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
	m := appt
	res, err := r.tx.NewUpdate().Model(&m).WherePK().Exec(ctx)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23P01" && pgErr.ConstraintName == "appointments_no_overlap" {
			return domain.Appointment{}, store.ErrConflict
		}
		return domain.Appointment{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Appointment{}, err
	}
	if affected == 0 {
		return domain.Appointment{}, store.ErrNotFound
	}
	return m, nil
}

func (r schedulingTx) ListScheduledAppointments(ctx context.Context, staffID string, windowStart, windowEnd time.Time, excludeID uuid.UUID) ([]domain.Appointment, error) {
	return listScheduled(ctx, r.tx, staffID, windowStart, windowEnd, excludeID)
}

func (r schedulingTx) ListAvailabilityWindows(ctx context.Context, staffID string) ([]domain.AvailabilityWindow, error) {
	return listAvailabilityWindows(ctx, r.tx, staffID)
}

func (r schedulingTx) GetNoShowRecord(ctx context.Context, clientID string) (domain.ClientNoShowRecord, error) {
	var rec domain.ClientNoShowRecord
	err := r.tx.NewSelect().Model(&rec).Where("client_id = ?", clientID).Limit(1).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ClientNoShowRecord{ClientID: clientID}, nil
	}
	if err != nil {
		return domain.ClientNoShowRecord{}, err
	}
	return rec, nil
}

// IncrementNoShow bumps the counter in a single upsert so concurrent
// markings for the same client cannot lose updates. Blocking latches on:
// once is_blocked is set, later increments never clear it.
func (r schedulingTx) IncrementNoShow(ctx context.Context, clientID string, blockThreshold int) (domain.ClientNoShowRecord, error) {
	m := domain.ClientNoShowRecord{
		ClientID:    clientID,
		NoShowCount: 1,
		IsBlocked:   blockThreshold <= 1,
	}

	_, err := r.tx.NewInsert().
		Model(&m).
		On("CONFLICT (client_id) DO UPDATE").
		Set("no_show_count = cnr.no_show_count + 1").
		Set("is_blocked = cnr.is_blocked OR cnr.no_show_count + 1 >= ?", blockThreshold).
		Set("updated_at = EXCLUDED.updated_at").
		Returning("*").
		Exec(ctx)
	if err != nil {
		return domain.ClientNoShowRecord{}, err
	}
	return m, nil
}

func getAppointment(ctx context.Context, db bun.IDB, id uuid.UUID) (domain.Appointment, error) {
	var a domain.Appointment
	err := db.NewSelect().Model(&a).Where("id = ?", id).Limit(1).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Appointment{}, store.ErrNotFound
	}
	if err != nil {
		return domain.Appointment{}, err
	}
	return a, nil
}

func listScheduled(ctx context.Context, db bun.IDB, staffID string, windowStart, windowEnd time.Time, excludeID uuid.UUID) ([]domain.Appointment, error) {
	var rows []domain.Appointment
	q := db.NewSelect().
		Model(&rows).
		Where("staff_id = ?", staffID).
		Where("status = ?", domain.StatusScheduled).
		Where("start_time < ?", windowEnd).
		Where("end_time > ?", windowStart)
	if excludeID != uuid.Nil {
		q = q.Where("id != ?", excludeID)
	}

	if err := q.OrderExpr("start_time ASC").Scan(ctx); err != nil {
		return nil, err
	}
	return rows, nil
}

func listAvailabilityWindows(ctx context.Context, db bun.IDB, staffID string) ([]domain.AvailabilityWindow, error) {
	var rows []domain.AvailabilityWindow
	err := db.NewSelect().
		Model(&rows).
		Where("staff_id = ?", staffID).
		OrderExpr("start_minute ASC, end_minute ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
