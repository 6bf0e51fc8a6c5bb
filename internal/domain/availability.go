package domain

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
type TimeOfDay int

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return NewTimeOfDay(t.Hour(), t.Minute()), nil
}

func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < 24*60
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// At anchors the time of day on the calendar date of ref, in ref's location.
func (t TimeOfDay) At(ref time.Time) time.Time {
	y, m, d := ref.Date()
	return time.Date(y, m, d, int(t)/60, int(t)%60, 0, 0, ref.Location())
}

// Weekday numbering follows the reference system: 0=Monday .. 6=Sunday.
func WeekdayIndex(t time.Time) int16 {
	return int16((int(t.Weekday()) + 6) % 7)
}

// AvailabilityWindow is a staff member's declared open interval, either on a
// recurring weekday or on one specific calendar date. Windows are not updated
// in place; replacement is delete plus create.
type AvailabilityWindow struct {
	bun.BaseModel `bun:"table:availability_windows"`

	ID           uuid.UUID  `bun:"id,pk,type:uuid"`
	StaffID      string     `bun:"staff_id,notnull"`
	DayOfWeek    *int16     `bun:"day_of_week"`
	SpecificDate *time.Time `bun:"specific_date"`
	StartTime    TimeOfDay  `bun:"start_minute,notnull"`
	EndTime      TimeOfDay  `bun:"end_minute,notnull"`
	IsRecurring  bool       `bun:"is_recurring,notnull"`
	CreatedAt    time.Time  `bun:"created_at,notnull"`
}

func (w *AvailabilityWindow) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	if _, ok := query.(*bun.InsertQuery); ok {
		if w.ID == uuid.Nil {
			id, err := uuid.NewV7()
			if err != nil {
				return err
			}
			w.ID = id
		}
		if w.CreatedAt.IsZero() {
			w.CreatedAt = time.Now().UTC()
		}
	}
	return nil
}

// MatchesDate reports whether the window applies on the given calendar date:
// its specific date equals the date, or it is recurring on that weekday.
// Both rule kinds are evaluated independently; a window carrying both can
// match through either.
func (w AvailabilityWindow) MatchesDate(date time.Time) bool {
	if w.SpecificDate != nil && SameDate(*w.SpecificDate, date) {
		return true
	}
	return w.IsRecurring && w.DayOfWeek != nil && *w.DayOfWeek == WeekdayIndex(date)
}

// Covers reports whether the window's hours contain [start, end] as
// times of day. Touching either boundary is inside.
func (w AvailabilityWindow) Covers(start, end time.Time) bool {
	ws := w.StartTime.At(start)
	we := w.EndTime.At(start)
	return !start.Before(ws) && !end.After(we)
}

// WindowsOn selects the windows applying on date, ordered by start then end
// time of day. Recurring and specific-date rules are unioned with no
// precedence between them: a recurring Tuesday rule and a one-off window on
// a particular Tuesday both apply.
func WindowsOn(windows []AvailabilityWindow, date time.Time) []AvailabilityWindow {
	var out []AvailabilityWindow
	for _, w := range windows {
		if w.MatchesDate(date) {
			out = append(out, w)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].StartTime != out[j].StartTime {
			return out[i].StartTime < out[j].StartTime
		}
		return out[i].EndTime < out[j].EndTime
	})
	return out
}

// AnyWindowCovers reports whether some window applying on the start date
// fully contains the candidate interval.
func AnyWindowCovers(windows []AvailabilityWindow, start, end time.Time) bool {
	for _, w := range WindowsOn(windows, start) {
		if w.Covers(start, end) {
			return true
		}
	}
	return false
}

func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
