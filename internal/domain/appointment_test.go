package domain

import "testing"

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to AppointmentStatus
		want     bool
	}{
		{StatusScheduled, StatusCancelled, true},
		{StatusScheduled, StatusCompleted, true},
		{StatusScheduled, StatusNoShow, true},
		{StatusScheduled, StatusScheduled, false},
		{StatusCancelled, StatusScheduled, false},
		{StatusCompleted, StatusNoShow, false},
		{StatusNoShow, StatusScheduled, false},
		{StatusCancelled, StatusCompleted, false},
	}
	for _, tc := range tests {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestAppointmentStatusTerminal(t *testing.T) {
	if StatusScheduled.Terminal() {
		t.Fatalf("scheduled must not be terminal")
	}
	for _, s := range []AppointmentStatus{StatusCancelled, StatusCompleted, StatusNoShow} {
		if !s.Terminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
	if AppointmentStatus("bogus").Terminal() {
		t.Fatalf("invalid status must not report terminal")
	}
}

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleStaff, RoleClient} {
		if !r.Valid() {
			t.Errorf("%s should be valid", r)
		}
	}
	if Role("superuser").Valid() {
		t.Fatalf("unknown role must be invalid")
	}
}
