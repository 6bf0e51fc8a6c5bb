package grpc

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"bookline/backend/internal/domain"
	booklinev1 "bookline/backend/internal/gen/proto/bookline/v1"
	"bookline/backend/internal/service/scheduling"
	"bookline/backend/internal/store"
)

type fakeSchedulingService struct {
	createFn             func(ctx context.Context, in scheduling.CreateInput) (domain.Appointment, error)
	getFn                func(ctx context.Context, id uuid.UUID, callerID string, role domain.Role) (domain.Appointment, error)
	listFn               func(ctx context.Context, callerID string, role domain.Role, skip, limit int) ([]domain.Appointment, error)
	updateFn             func(ctx context.Context, in scheduling.UpdateInput) (domain.Appointment, error)
	rescheduleFn         func(ctx context.Context, in scheduling.RescheduleInput) (domain.Appointment, error)
	markCompletedFn      func(ctx context.Context, id uuid.UUID, callerID string, role domain.Role) (domain.Appointment, error)
	markNoShowFn         func(ctx context.Context, id uuid.UUID, callerID string, role domain.Role) (domain.Appointment, domain.ClientNoShowRecord, error)
	freeSlotsFn          func(ctx context.Context, in scheduling.FreeSlotsInput) ([]domain.Slot, error)
	createAvailabilityFn func(ctx context.Context, in scheduling.CreateAvailabilityInput) (domain.AvailabilityWindow, error)
	listAvailabilityFn   func(ctx context.Context, staffID string) ([]domain.AvailabilityWindow, error)
	deleteAvailabilityFn func(ctx context.Context, id uuid.UUID, callerID string, role domain.Role) error
}

func (f *fakeSchedulingService) Create(ctx context.Context, in scheduling.CreateInput) (domain.Appointment, error) {
	if f.createFn == nil {
		panic("Create not configured")
	}
	return f.createFn(ctx, in)
}

func (f *fakeSchedulingService) Get(ctx context.Context, id uuid.UUID, callerID string, role domain.Role) (domain.Appointment, error) {
	if f.getFn == nil {
		panic("Get not configured")
	}
	return f.getFn(ctx, id, callerID, role)
}

func (f *fakeSchedulingService) List(ctx context.Context, callerID string, role domain.Role, skip, limit int) ([]domain.Appointment, error) {
	if f.listFn == nil {
		panic("List not configured")
	}
	return f.listFn(ctx, callerID, role, skip, limit)
}

func (f *fakeSchedulingService) Update(ctx context.Context, in scheduling.UpdateInput) (domain.Appointment, error) {
	if f.updateFn == nil {
		panic("Update not configured")
	}
	return f.updateFn(ctx, in)
}

func (f *fakeSchedulingService) Reschedule(ctx context.Context, in scheduling.RescheduleInput) (domain.Appointment, error) {
	if f.rescheduleFn == nil {
		panic("Reschedule not configured")
	}
	return f.rescheduleFn(ctx, in)
}

func (f *fakeSchedulingService) MarkCompleted(ctx context.Context, id uuid.UUID, callerID string, role domain.Role) (domain.Appointment, error) {
	if f.markCompletedFn == nil {
		panic("MarkCompleted not configured")
	}
	return f.markCompletedFn(ctx, id, callerID, role)
}

func (f *fakeSchedulingService) MarkNoShow(ctx context.Context, id uuid.UUID, callerID string, role domain.Role) (domain.Appointment, domain.ClientNoShowRecord, error) {
	if f.markNoShowFn == nil {
		panic("MarkNoShow not configured")
	}
	return f.markNoShowFn(ctx, id, callerID, role)
}

func (f *fakeSchedulingService) FreeSlots(ctx context.Context, in scheduling.FreeSlotsInput) ([]domain.Slot, error) {
	if f.freeSlotsFn == nil {
		panic("FreeSlots not configured")
	}
	return f.freeSlotsFn(ctx, in)
}

func (f *fakeSchedulingService) CreateAvailability(ctx context.Context, in scheduling.CreateAvailabilityInput) (domain.AvailabilityWindow, error) {
	if f.createAvailabilityFn == nil {
		panic("CreateAvailability not configured")
	}
	return f.createAvailabilityFn(ctx, in)
}

func (f *fakeSchedulingService) ListAvailability(ctx context.Context, staffID string) ([]domain.AvailabilityWindow, error) {
	if f.listAvailabilityFn == nil {
		panic("ListAvailability not configured")
	}
	return f.listAvailabilityFn(ctx, staffID)
}

func (f *fakeSchedulingService) DeleteAvailability(ctx context.Context, id uuid.UUID, callerID string, role domain.Role) error {
	if f.deleteAvailabilityFn == nil {
		panic("DeleteAvailability not configured")
	}
	return f.deleteAvailabilityFn(ctx, id, callerID, role)
}

func TestCreateAppointment_RejectsMissingTimes(t *testing.T) {
	srv := NewSchedulingServer(&fakeSchedulingService{}, slog.Default())

	_, err := srv.CreateAppointment(context.Background(), &booklinev1.CreateAppointmentRequest{
		CallerId: "c1",
		StaffId:  "s1",
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %s, want %s", status.Code(err), codes.InvalidArgument)
	}
}

func TestCreateAppointment_PassesCallerAsClient(t *testing.T) {
	var got scheduling.CreateInput
	srv := NewSchedulingServer(&fakeSchedulingService{
		createFn: func(ctx context.Context, in scheduling.CreateInput) (domain.Appointment, error) {
			got = in
			return domain.Appointment{ID: uuid.MustParse("00000000-0000-0000-0000-000000000010")}, nil
		},
	}, slog.Default())

	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	_, err := srv.CreateAppointment(context.Background(), &booklinev1.CreateAppointmentRequest{
		CallerId:  "c1",
		StaffId:   "s1",
		StartTime: timestamppb.New(start),
		EndTime:   timestamppb.New(start.Add(time.Hour)),
		Notes:     "n",
	})
	if err != nil {
		t.Fatalf("CreateAppointment error: %v", err)
	}
	if got.ClientID != "c1" || got.StaffID != "s1" {
		t.Fatalf("input = %+v, want caller as client", got)
	}
}

func TestCreateAppointment_MapsBlockedToPermissionDenied(t *testing.T) {
	srv := NewSchedulingServer(&fakeSchedulingService{
		createFn: func(ctx context.Context, in scheduling.CreateInput) (domain.Appointment, error) {
			return domain.Appointment{}, &scheduling.BlockedError{NoShowCount: 3}
		},
	}, slog.Default())

	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	_, err := srv.CreateAppointment(context.Background(), &booklinev1.CreateAppointmentRequest{
		CallerId:  "c1",
		StaffId:   "s1",
		StartTime: timestamppb.New(start),
		EndTime:   timestamppb.New(start.Add(time.Hour)),
	})
	if status.Code(err) != codes.PermissionDenied {
		t.Fatalf("code = %s, want %s", status.Code(err), codes.PermissionDenied)
	}
}

func TestCreateAppointment_MapsConflict(t *testing.T) {
	srv := NewSchedulingServer(&fakeSchedulingService{
		createFn: func(ctx context.Context, in scheduling.CreateInput) (domain.Appointment, error) {
			return domain.Appointment{}, store.ErrConflict
		},
	}, slog.Default())

	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	_, err := srv.CreateAppointment(context.Background(), &booklinev1.CreateAppointmentRequest{
		CallerId:  "c1",
		StaffId:   "s1",
		StartTime: timestamppb.New(start),
		EndTime:   timestamppb.New(start.Add(time.Hour)),
	})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("code = %s, want %s", status.Code(err), codes.FailedPrecondition)
	}
}

func TestGetAppointment_MapsNotFound(t *testing.T) {
	srv := NewSchedulingServer(&fakeSchedulingService{
		getFn: func(ctx context.Context, id uuid.UUID, callerID string, role domain.Role) (domain.Appointment, error) {
			return domain.Appointment{}, store.ErrNotFound
		},
	}, slog.Default())

	_, err := srv.GetAppointment(context.Background(), &booklinev1.GetAppointmentRequest{
		AppointmentId: "00000000-0000-0000-0000-000000000018",
		CallerId:      "c1",
		CallerRole:    booklinev1.Role_ROLE_CLIENT,
	})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("code = %s, want %s", status.Code(err), codes.NotFound)
	}
}

func TestListAppointments_ForwardsPagination(t *testing.T) {
	var gotSkip, gotLimit int
	srv := NewSchedulingServer(&fakeSchedulingService{
		listFn: func(ctx context.Context, callerID string, role domain.Role, skip, limit int) ([]domain.Appointment, error) {
			gotSkip, gotLimit = skip, limit
			return nil, nil
		},
	}, slog.Default())

	_, err := srv.ListAppointments(context.Background(), &booklinev1.ListAppointmentsRequest{
		CallerId:   "c1",
		CallerRole: booklinev1.Role_ROLE_CLIENT,
		Skip:       40,
		Limit:      20,
	})
	if err != nil {
		t.Fatalf("ListAppointments error: %v", err)
	}
	if gotSkip != 40 || gotLimit != 20 {
		t.Fatalf("forwarded skip=%d limit=%d, want skip=40 limit=20", gotSkip, gotLimit)
	}
}

func TestUpdateAppointment_RejectsInvalidUUID(t *testing.T) {
	srv := NewSchedulingServer(&fakeSchedulingService{}, slog.Default())

	_, err := srv.UpdateAppointment(context.Background(), &booklinev1.UpdateAppointmentRequest{
		AppointmentId: "not-a-uuid",
		CallerId:      "c1",
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %s, want %s", status.Code(err), codes.InvalidArgument)
	}
}

func TestUpdateAppointment_UnsetFieldsStayNil(t *testing.T) {
	var got scheduling.UpdateInput
	srv := NewSchedulingServer(&fakeSchedulingService{
		updateFn: func(ctx context.Context, in scheduling.UpdateInput) (domain.Appointment, error) {
			got = in
			return domain.Appointment{ID: in.ID}, nil
		},
	}, slog.Default())

	_, err := srv.UpdateAppointment(context.Background(), &booklinev1.UpdateAppointmentRequest{
		AppointmentId: "00000000-0000-0000-0000-000000000011",
		CallerId:      "c1",
		CallerRole:    booklinev1.Role_ROLE_CLIENT,
	})
	if err != nil {
		t.Fatalf("UpdateAppointment error: %v", err)
	}
	if got.StartTime != nil || got.EndTime != nil || got.Notes != nil || got.Status != nil {
		t.Fatalf("expected nil patch fields, got %+v", got)
	}
	if got.CallerRole != domain.RoleClient {
		t.Fatalf("role = %q, want %q", got.CallerRole, domain.RoleClient)
	}
}

func TestUpdateAppointment_StatusPatchTranslated(t *testing.T) {
	var got scheduling.UpdateInput
	srv := NewSchedulingServer(&fakeSchedulingService{
		updateFn: func(ctx context.Context, in scheduling.UpdateInput) (domain.Appointment, error) {
			got = in
			return domain.Appointment{ID: in.ID}, nil
		},
	}, slog.Default())

	_, err := srv.UpdateAppointment(context.Background(), &booklinev1.UpdateAppointmentRequest{
		AppointmentId: "00000000-0000-0000-0000-000000000012",
		CallerId:      "c1",
		CallerRole:    booklinev1.Role_ROLE_CLIENT,
		Status:        booklinev1.AppointmentStatus_APPOINTMENT_STATUS_CANCELLED,
	})
	if err != nil {
		t.Fatalf("UpdateAppointment error: %v", err)
	}
	if got.Status == nil || *got.Status != domain.StatusCancelled {
		t.Fatalf("status = %v, want cancelled", got.Status)
	}
}

func TestRescheduleAppointment_MapsPolicyError(t *testing.T) {
	srv := NewSchedulingServer(&fakeSchedulingService{
		rescheduleFn: func(ctx context.Context, in scheduling.RescheduleInput) (domain.Appointment, error) {
			return domain.Appointment{}, &scheduling.PolicyError{}
		},
	}, slog.Default())

	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	_, err := srv.RescheduleAppointment(context.Background(), &booklinev1.RescheduleAppointmentRequest{
		AppointmentId: "00000000-0000-0000-0000-000000000013",
		CallerId:      "c1",
		CallerRole:    booklinev1.Role_ROLE_CLIENT,
		NewStartTime:  timestamppb.New(start),
		NewEndTime:    timestamppb.New(start.Add(time.Hour)),
	})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("code = %s, want %s", status.Code(err), codes.FailedPrecondition)
	}
}

func TestGetFreeSlots_ParsesDate(t *testing.T) {
	var got scheduling.FreeSlotsInput
	srv := NewSchedulingServer(&fakeSchedulingService{
		freeSlotsFn: func(ctx context.Context, in scheduling.FreeSlotsInput) ([]domain.Slot, error) {
			got = in
			return []domain.Slot{{
				Start: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
				End:   time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
			}}, nil
		},
	}, slog.Default())

	resp, err := srv.GetFreeSlots(context.Background(), &booklinev1.GetFreeSlotsRequest{
		StaffId:         "s1",
		Date:            "2026-03-02",
		DurationMinutes: 60,
	})
	if err != nil {
		t.Fatalf("GetFreeSlots error: %v", err)
	}
	if !got.Date.Equal(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("date = %v", got.Date)
	}
	if got.Duration != time.Hour {
		t.Fatalf("duration = %v, want 1h", got.Duration)
	}
	if len(resp.Slots) != 1 {
		t.Fatalf("slots = %d, want 1", len(resp.Slots))
	}
}

func TestGetFreeSlots_RejectsBadDate(t *testing.T) {
	srv := NewSchedulingServer(&fakeSchedulingService{}, slog.Default())

	_, err := srv.GetFreeSlots(context.Background(), &booklinev1.GetFreeSlotsRequest{
		StaffId:         "s1",
		Date:            "03/02/2026",
		DurationMinutes: 60,
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %s, want %s", status.Code(err), codes.InvalidArgument)
	}
}

func TestMarkNoShow_ReturnsCounterState(t *testing.T) {
	srv := NewSchedulingServer(&fakeSchedulingService{
		markNoShowFn: func(ctx context.Context, id uuid.UUID, callerID string, role domain.Role) (domain.Appointment, domain.ClientNoShowRecord, error) {
			return domain.Appointment{ID: id, Status: domain.StatusNoShow},
				domain.ClientNoShowRecord{ClientID: "c1", NoShowCount: 3, IsBlocked: true},
				nil
		},
	}, slog.Default())

	resp, err := srv.MarkNoShow(context.Background(), &booklinev1.MarkNoShowRequest{
		AppointmentId: "00000000-0000-0000-0000-000000000014",
		CallerId:      "s1",
		CallerRole:    booklinev1.Role_ROLE_STAFF,
	})
	if err != nil {
		t.Fatalf("MarkNoShow error: %v", err)
	}
	if resp.NoShowCount != 3 || !resp.ClientBlocked {
		t.Fatalf("resp = %+v, want count 3 blocked", resp)
	}
	if resp.Appointment.Status != booklinev1.AppointmentStatus_APPOINTMENT_STATUS_NO_SHOW {
		t.Fatalf("status = %s", resp.Appointment.Status)
	}
}

func TestMarkCompleted_MapsPermissionDenied(t *testing.T) {
	srv := NewSchedulingServer(&fakeSchedulingService{
		markCompletedFn: func(ctx context.Context, id uuid.UUID, callerID string, role domain.Role) (domain.Appointment, error) {
			return domain.Appointment{}, &scheduling.PermissionError{}
		},
	}, slog.Default())

	_, err := srv.MarkCompleted(context.Background(), &booklinev1.MarkCompletedRequest{
		AppointmentId: "00000000-0000-0000-0000-000000000015",
		CallerId:      "c1",
		CallerRole:    booklinev1.Role_ROLE_CLIENT,
	})
	if status.Code(err) != codes.PermissionDenied {
		t.Fatalf("code = %s, want %s", status.Code(err), codes.PermissionDenied)
	}
}

func TestCreateAvailability_TranslatesWindow(t *testing.T) {
	var got scheduling.CreateAvailabilityInput
	srv := NewSchedulingServer(&fakeSchedulingService{
		createAvailabilityFn: func(ctx context.Context, in scheduling.CreateAvailabilityInput) (domain.AvailabilityWindow, error) {
			got = in
			return domain.AvailabilityWindow{
				ID:          uuid.MustParse("00000000-0000-0000-0000-000000000016"),
				StaffID:     in.StaffID,
				DayOfWeek:   in.DayOfWeek,
				StartTime:   in.StartTime,
				EndTime:     in.EndTime,
				IsRecurring: in.IsRecurring,
			}, nil
		},
	}, slog.Default())

	day := int32(0)
	resp, err := srv.CreateAvailability(context.Background(), &booklinev1.CreateAvailabilityRequest{
		StaffId:     "s1",
		DayOfWeek:   &day,
		StartTime:   "09:00",
		EndTime:     "17:00",
		IsRecurring: true,
		CallerId:    "s1",
		CallerRole:  booklinev1.Role_ROLE_STAFF,
	})
	if err != nil {
		t.Fatalf("CreateAvailability error: %v", err)
	}
	if got.DayOfWeek == nil || *got.DayOfWeek != 0 {
		t.Fatalf("day_of_week = %v, want 0", got.DayOfWeek)
	}
	if got.StartTime != domain.NewTimeOfDay(9, 0) || got.EndTime != domain.NewTimeOfDay(17, 0) {
		t.Fatalf("times = %v-%v", got.StartTime, got.EndTime)
	}
	if resp.Window.StartTime != "09:00" || resp.Window.EndTime != "17:00" {
		t.Fatalf("window times = %s-%s", resp.Window.StartTime, resp.Window.EndTime)
	}
}

func TestCreateAvailability_RejectsBadTime(t *testing.T) {
	srv := NewSchedulingServer(&fakeSchedulingService{}, slog.Default())

	_, err := srv.CreateAvailability(context.Background(), &booklinev1.CreateAvailabilityRequest{
		StaffId:    "s1",
		StartTime:  "9am",
		EndTime:    "17:00",
		CallerId:   "s1",
		CallerRole: booklinev1.Role_ROLE_STAFF,
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %s, want %s", status.Code(err), codes.InvalidArgument)
	}
}

func TestDeleteAvailability_MapsNotFound(t *testing.T) {
	srv := NewSchedulingServer(&fakeSchedulingService{
		deleteAvailabilityFn: func(ctx context.Context, id uuid.UUID, callerID string, role domain.Role) error {
			return store.ErrNotFound
		},
	}, slog.Default())

	_, err := srv.DeleteAvailability(context.Background(), &booklinev1.DeleteAvailabilityRequest{
		WindowId:   "00000000-0000-0000-0000-000000000017",
		CallerId:   "s1",
		CallerRole: booklinev1.Role_ROLE_STAFF,
	})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("code = %s, want %s", status.Code(err), codes.NotFound)
	}
}
