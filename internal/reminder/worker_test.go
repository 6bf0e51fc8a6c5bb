package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"bookline/backend/internal/domain"
)

type fakeStore struct {
	listFn func(ctx context.Context, windowStart, windowEnd time.Time) ([]domain.Appointment, error)
}

func (f *fakeStore) ListScheduledStartingBetween(ctx context.Context, windowStart, windowEnd time.Time) ([]domain.Appointment, error) {
	if f.listFn == nil {
		panic("ListScheduledStartingBetween not configured")
	}
	return f.listFn(ctx, windowStart, windowEnd)
}

type fakeNotifier struct {
	reminded []uuid.UUID
}

func (f *fakeNotifier) AppointmentReminder(ctx context.Context, appt domain.Appointment) {
	f.reminded = append(f.reminded, appt.ID)
}

type fakeMarker struct {
	fresh map[string]bool
	err   error
}

func (f *fakeMarker) MarkSent(ctx context.Context, appointmentID string, ttl time.Duration) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.fresh[appointmentID], nil
}

func upcoming(id string, start time.Time) domain.Appointment {
	return domain.Appointment{
		ID:        uuid.MustParse(id),
		ClientID:  "c1",
		StaffID:   "s1",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Status:    domain.StatusScheduled,
	}
}

func TestWorkerSweep_QueriesReminderWindow(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	var gotStart, gotEnd time.Time
	store := &fakeStore{
		listFn: func(ctx context.Context, windowStart, windowEnd time.Time) ([]domain.Appointment, error) {
			gotStart, gotEnd = windowStart, windowEnd
			return nil, nil
		},
	}

	w := NewWorker(store, &fakeNotifier{}, nil, nil, Config{})
	w.now = func() time.Time { return now }

	if err := w.Sweep(context.Background()); err != nil {
		t.Fatalf("Sweep error: %v", err)
	}
	if !gotStart.Equal(now.Add(23*time.Hour)) || !gotEnd.Equal(now.Add(25*time.Hour)) {
		t.Fatalf("window = [%v, %v), want [now+23h, now+25h)", gotStart, gotEnd)
	}
}

func TestWorkerSweep_RemindsEachAppointmentOnce(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	appts := []domain.Appointment{
		upcoming("00000000-0000-0000-0000-000000000001", now.Add(24*time.Hour)),
		upcoming("00000000-0000-0000-0000-000000000002", now.Add(24*time.Hour+30*time.Minute)),
	}
	store := &fakeStore{
		listFn: func(ctx context.Context, windowStart, windowEnd time.Time) ([]domain.Appointment, error) {
			return appts, nil
		},
	}
	notifier := &fakeNotifier{}

	w := NewWorker(store, notifier, NewMemoryMarker(), nil, Config{})
	w.now = func() time.Time { return now }

	if err := w.Sweep(context.Background()); err != nil {
		t.Fatalf("Sweep error: %v", err)
	}
	if len(notifier.reminded) != 2 {
		t.Fatalf("reminded = %d, want 2", len(notifier.reminded))
	}

	// The next sweep sees the same appointments; the marker suppresses them.
	if err := w.Sweep(context.Background()); err != nil {
		t.Fatalf("Sweep error: %v", err)
	}
	if len(notifier.reminded) != 2 {
		t.Fatalf("reminded = %d after second sweep, want still 2", len(notifier.reminded))
	}
}

func TestWorkerSweep_SkipsAlreadyMarked(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	fresh := upcoming("00000000-0000-0000-0000-000000000001", now.Add(24*time.Hour))
	stale := upcoming("00000000-0000-0000-0000-000000000002", now.Add(24*time.Hour))
	store := &fakeStore{
		listFn: func(ctx context.Context, windowStart, windowEnd time.Time) ([]domain.Appointment, error) {
			return []domain.Appointment{fresh, stale}, nil
		},
	}
	notifier := &fakeNotifier{}
	marker := &fakeMarker{fresh: map[string]bool{fresh.ID.String(): true}}

	w := NewWorker(store, notifier, marker, nil, Config{})
	w.now = func() time.Time { return now }

	if err := w.Sweep(context.Background()); err != nil {
		t.Fatalf("Sweep error: %v", err)
	}
	if len(notifier.reminded) != 1 || notifier.reminded[0] != fresh.ID {
		t.Fatalf("reminded = %v, want only %s", notifier.reminded, fresh.ID)
	}
}

func TestWorkerSweep_MarkerFailureFailsOpen(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	appt := upcoming("00000000-0000-0000-0000-000000000001", now.Add(24*time.Hour))
	store := &fakeStore{
		listFn: func(ctx context.Context, windowStart, windowEnd time.Time) ([]domain.Appointment, error) {
			return []domain.Appointment{appt}, nil
		},
	}
	notifier := &fakeNotifier{}

	w := NewWorker(store, notifier, &fakeMarker{err: errors.New("redis down")}, nil, Config{})
	w.now = func() time.Time { return now }

	if err := w.Sweep(context.Background()); err != nil {
		t.Fatalf("Sweep error: %v", err)
	}
	if len(notifier.reminded) != 1 {
		t.Fatalf("reminded = %d, want 1 despite marker failure", len(notifier.reminded))
	}
}

func TestWorkerSweep_StoreErrorPropagates(t *testing.T) {
	wantErr := errors.New("db down")
	store := &fakeStore{
		listFn: func(ctx context.Context, windowStart, windowEnd time.Time) ([]domain.Appointment, error) {
			return nil, wantErr
		},
	}

	w := NewWorker(store, &fakeNotifier{}, nil, nil, Config{})
	if err := w.Sweep(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("error = %v, want %v", err, wantErr)
	}
}

func TestMemoryMarker_ExpiresEntries(t *testing.T) {
	m := NewMemoryMarker()

	fresh, err := m.MarkSent(context.Background(), "a", time.Hour)
	if err != nil || !fresh {
		t.Fatalf("first mark = (%v, %v), want (true, nil)", fresh, err)
	}
	fresh, err = m.MarkSent(context.Background(), "a", time.Hour)
	if err != nil || fresh {
		t.Fatalf("second mark = (%v, %v), want (false, nil)", fresh, err)
	}

	// Force the entry to look expired and mark again.
	m.mu.Lock()
	m.sent["a"] = time.Now().Add(-time.Minute)
	m.mu.Unlock()

	fresh, err = m.MarkSent(context.Background(), "a", time.Hour)
	if err != nil || !fresh {
		t.Fatalf("mark after expiry = (%v, %v), want (true, nil)", fresh, err)
	}
}
