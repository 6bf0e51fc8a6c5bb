package postgres

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/uptrace/bun"

	"bookline/backend/internal/domain"
	"bookline/backend/internal/store"
)

func TestPostgresIntegration_SchedulingConflictAndNoShow(t *testing.T) {
	databaseURL := strings.TrimSpace(os.Getenv("BOOKLINE_TEST_DATABASE_URL"))
	if databaseURL == "" {
		t.Skip("BOOKLINE_TEST_DATABASE_URL not set")
	}

	db, err := Open(databaseURL, PoolConfig{MaxOpenConns: 1})
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	t.Cleanup(func() {
		_ = Close(db)
	})

	schema := "bookline_test_" + randomHex(t, 8)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_, _ = db.NewRaw("DROP SCHEMA IF EXISTS " + schema + " CASCADE").Exec(ctx)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err = db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewRaw("CREATE SCHEMA " + schema).Exec(ctx); err != nil {
			return err
		}
		if _, err := tx.NewRaw("SET LOCAL search_path TO " + schema + ", public").Exec(ctx); err != nil {
			return err
		}
		if err := applyMigrations(ctx, tx); err != nil {
			return err
		}

		s := schedulingTx{tx: tx}

		day := domain.WeekdayIndex(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))
		w := domain.AvailabilityWindow{
			StaffID:     "s1",
			DayOfWeek:   &day,
			StartTime:   domain.NewTimeOfDay(9, 0),
			EndTime:     domain.NewTimeOfDay(17, 0),
			IsRecurring: true,
		}
		if _, err := tx.NewInsert().Model(&w).Exec(ctx); err != nil {
			return err
		}

		windows, err := s.ListAvailabilityWindows(ctx, "s1")
		if err != nil {
			return err
		}
		if len(windows) != 1 {
			return fmt.Errorf("len(windows) = %d, want 1", len(windows))
		}
		if windows[0].StartTime != domain.NewTimeOfDay(9, 0) || windows[0].EndTime != domain.NewTimeOfDay(17, 0) {
			return fmt.Errorf("window times = %v-%v", windows[0].StartTime, windows[0].EndTime)
		}

		start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
		a1, err := s.CreateAppointment(ctx, domain.Appointment{
			ClientID:  "c1",
			StaffID:   "s1",
			StartTime: start,
			EndTime:   start.Add(time.Hour),
			Status:    domain.StatusScheduled,
		})
		if err != nil {
			return err
		}

		// The exclusion constraint rejects the overlap even though the
		// service-level check was bypassed.
		_, err = s.CreateAppointment(ctx, domain.Appointment{
			ClientID:  "c2",
			StaffID:   "s1",
			StartTime: start.Add(30 * time.Minute),
			EndTime:   start.Add(90 * time.Minute),
			Status:    domain.StatusScheduled,
		})
		if !errors.Is(err, store.ErrConflict) {
			return fmt.Errorf("overlap err = %v, want %v", err, store.ErrConflict)
		}

		// Back to back is fine with half-open ranges.
		a2, err := s.CreateAppointment(ctx, domain.Appointment{
			ClientID:  "c2",
			StaffID:   "s1",
			StartTime: start.Add(time.Hour),
			EndTime:   start.Add(2 * time.Hour),
			Status:    domain.StatusScheduled,
		})
		if err != nil {
			return err
		}

		rows, err := s.ListScheduledAppointments(ctx, "s1", start, start.Add(time.Hour), a1.ID)
		if err != nil {
			return err
		}
		if len(rows) != 0 {
			return fmt.Errorf("self-excluded rows = %d, want 0", len(rows))
		}

		// Cancelling an appointment frees its slot for rebooking.
		a2.Status = domain.StatusCancelled
		if _, err := s.UpdateAppointment(ctx, a2); err != nil {
			return err
		}
		if _, err := s.CreateAppointment(ctx, domain.Appointment{
			ClientID:  "c3",
			StaffID:   "s1",
			StartTime: a2.StartTime,
			EndTime:   a2.EndTime,
			Status:    domain.StatusScheduled,
		}); err != nil {
			return err
		}

		rec, err := s.GetNoShowRecord(ctx, "c1")
		if err != nil {
			return err
		}
		if rec.NoShowCount != 0 || rec.IsBlocked {
			return fmt.Errorf("fresh record = %+v, want zero", rec)
		}

		for i := 1; i <= 3; i++ {
			rec, err = s.IncrementNoShow(ctx, "c1", 3)
			if err != nil {
				return err
			}
			if rec.NoShowCount != i {
				return fmt.Errorf("no_show_count = %d, want %d", rec.NoShowCount, i)
			}
			wantBlocked := i >= 3
			if rec.IsBlocked != wantBlocked {
				return fmt.Errorf("is_blocked after %d = %v, want %v", i, rec.IsBlocked, wantBlocked)
			}
		}

		return nil
	})
	if err != nil {
		t.Fatalf("tx error: %v", err)
	}
}

func randomHex(t *testing.T, bytesLen int) string {
	t.Helper()
	b := make([]byte, bytesLen)
	if _, err := rand.Read(b); err != nil {
		t.Fatalf("rand.Read error: %v", err)
	}
	return hex.EncodeToString(b)
}

type rawExecutor interface {
	NewRaw(query string, args ...any) *bun.RawQuery
}

func applyMigrations(ctx context.Context, exec rawExecutor) error {
	dir, err := migrationsDir()
	if err != nil {
		return err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	type mig struct {
		name string
		path string
	}
	migs := make([]mig, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		migs = append(migs, mig{name: e.Name(), path: filepath.Join(dir, e.Name())})
	}
	sort.Slice(migs, func(i, j int) bool { return migs[i].name < migs[j].name })

	for _, m := range migs {
		b, err := os.ReadFile(m.path)
		if err != nil {
			return err
		}
		upSQL, err := extractGooseUp(string(b))
		if err != nil {
			return err
		}
		for _, stmt := range splitSQLStatements(upSQL) {
			if normalized, ok := normalizeExtensionStatement(stmt); ok {
				stmt = normalized
			}
			if _, err := exec.NewRaw(stmt).Exec(ctx); err != nil {
				return err
			}
		}
	}

	return nil
}

func migrationsDir() (string, error) {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("runtime.Caller failed")
	}
	base := filepath.Dir(file)
	return filepath.Clean(filepath.Join(base, "..", "..", "..", "migrations")), nil
}

func extractGooseUp(sql string) (string, error) {
	upMarker := "-- +goose Up"
	downMarker := "-- +goose Down"

	upIdx := strings.Index(sql, upMarker)
	if upIdx < 0 {
		return "", fmt.Errorf("missing goose up marker")
	}
	afterUp := sql[upIdx+len(upMarker):]
	afterUp = strings.TrimLeft(afterUp, "\r\n")

	downIdx := strings.Index(afterUp, downMarker)
	if downIdx < 0 {
		return strings.TrimSpace(afterUp), nil
	}
	return strings.TrimSpace(afterUp[:downIdx]), nil
}

func normalizeExtensionStatement(stmt string) (string, bool) {
	s := strings.TrimSpace(stmt)
	upper := strings.ToUpper(s)
	if !strings.HasPrefix(upper, "CREATE EXTENSION") {
		return "", false
	}
	if !strings.Contains(upper, "BTREE_GIST") {
		return "", false
	}
	if strings.Contains(upper, " SCHEMA ") {
		return "", false
	}
	return s + " SCHEMA public", true
}

func splitSQLStatements(sql string) []string {
	parts := strings.Split(sql, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		s := strings.TrimSpace(p)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
