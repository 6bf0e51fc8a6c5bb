package reminder

import (
	"context"
	"log/slog"
	"time"

	"bookline/backend/internal/domain"
)

// Store is the slice of the scheduling repository the sweep needs.
type Store interface {
	ListScheduledStartingBetween(ctx context.Context, windowStart, windowEnd time.Time) ([]domain.Appointment, error)
}

// Notifier delivers the reminder; delivery failures stay inside the
// notifier.
type Notifier interface {
	AppointmentReminder(ctx context.Context, appt domain.Appointment)
}

// Marker records which appointments already received a reminder. The sweep
// window is wider than the sweep interval, so consecutive sweeps see the
// same appointment; the marker keeps it to one reminder.
type Marker interface {
	// MarkSent returns true if the appointment was not marked yet.
	MarkSent(ctx context.Context, appointmentID string, ttl time.Duration) (bool, error)
}

type Config struct {
	// Interval between sweeps.
	Interval time.Duration
	// LeadMin/LeadMax bound the reminder window: appointments starting in
	// [now+LeadMin, now+LeadMax) get a reminder.
	LeadMin time.Duration
	LeadMax time.Duration
}

func (c Config) withDefaults() Config {
	if c.Interval <= 0 {
		c.Interval = time.Hour
	}
	if c.LeadMin <= 0 {
		c.LeadMin = 23 * time.Hour
	}
	if c.LeadMax <= c.LeadMin {
		c.LeadMax = c.LeadMin + 2*time.Hour
	}
	return c
}

// Worker periodically finds SCHEDULED appointments starting roughly 24 hours
// out and pushes a reminder through the notification sink.
type Worker struct {
	store    Store
	notifier Notifier
	marker   Marker
	log      *slog.Logger
	cfg      Config
	now      func() time.Time
}

func NewWorker(store Store, notifier Notifier, marker Marker, log *slog.Logger, cfg Config) *Worker {
	if log == nil {
		log = slog.Default()
	}
	if marker == nil {
		marker = NewMemoryMarker()
	}
	return &Worker{
		store:    store,
		notifier: notifier,
		marker:   marker,
		log:      log.With(slog.String("component", "reminder")),
		cfg:      cfg.withDefaults(),
		now:      time.Now,
	}
}

func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.Interval)
	defer ticker.Stop()

	w.log.Info("reminder sweep started", slog.Duration("interval", w.cfg.Interval))
	for {
		select {
		case <-ctx.Done():
			w.log.Info("reminder sweep stopped")
			return
		case <-ticker.C:
			if err := w.Sweep(ctx); err != nil {
				w.log.Error("reminder sweep failed", slog.Any("err", err))
			}
		}
	}
}

func (w *Worker) Sweep(ctx context.Context) error {
	now := w.now()
	appts, err := w.store.ListScheduledStartingBetween(ctx, now.Add(w.cfg.LeadMin), now.Add(w.cfg.LeadMax))
	if err != nil {
		return err
	}

	sent := 0
	for _, appt := range appts {
		fresh, err := w.marker.MarkSent(ctx, appt.ID.String(), w.cfg.LeadMax+time.Hour)
		if err != nil {
			// Fail open: a duplicate reminder beats a missed one.
			w.log.Warn("reminder marker unavailable", slog.String("appointment_id", appt.ID.String()), slog.Any("err", err))
		} else if !fresh {
			continue
		}
		w.notifier.AppointmentReminder(ctx, appt)
		sent++
	}

	if sent > 0 {
		w.log.Info("reminders sent", slog.Int("count", sent), slog.Int("candidates", len(appts)))
	}
	return nil
}
