package grpc

import (
	"context"
	"errors"
	"log/slog"
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

type SchedulingServer struct {
	booklinev1.UnimplementedSchedulingServiceServer

	svc schedulingService
	log *slog.Logger
}

type schedulingService interface {
	Create(ctx context.Context, in scheduling.CreateInput) (domain.Appointment, error)
	Get(ctx context.Context, id uuid.UUID, callerID string, role domain.Role) (domain.Appointment, error)
	List(ctx context.Context, callerID string, role domain.Role, skip, limit int) ([]domain.Appointment, error)
	Update(ctx context.Context, in scheduling.UpdateInput) (domain.Appointment, error)
	Reschedule(ctx context.Context, in scheduling.RescheduleInput) (domain.Appointment, error)
	MarkCompleted(ctx context.Context, id uuid.UUID, callerID string, role domain.Role) (domain.Appointment, error)
	MarkNoShow(ctx context.Context, id uuid.UUID, callerID string, role domain.Role) (domain.Appointment, domain.ClientNoShowRecord, error)
	FreeSlots(ctx context.Context, in scheduling.FreeSlotsInput) ([]domain.Slot, error)
	CreateAvailability(ctx context.Context, in scheduling.CreateAvailabilityInput) (domain.AvailabilityWindow, error)
	ListAvailability(ctx context.Context, staffID string) ([]domain.AvailabilityWindow, error)
	DeleteAvailability(ctx context.Context, id uuid.UUID, callerID string, role domain.Role) error
}

func NewSchedulingServer(svc schedulingService, log *slog.Logger) *SchedulingServer {
	if log == nil {
		log = slog.Default()
	}
	return &SchedulingServer{
		svc: svc,
		log: log.With(slog.String("component", "grpc.scheduling")),
	}
}

func (s *SchedulingServer) CreateAppointment(ctx context.Context, req *booklinev1.CreateAppointmentRequest) (*booklinev1.CreateAppointmentResponse, error) {
	log := s.log.With(slog.String("rpc", "CreateAppointment"))

	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.StartTime == nil || req.EndTime == nil {
		log.Warn("invalid request", slog.String("reason", "missing_times"), slog.String("caller_id", req.CallerId))
		return nil, status.Error(codes.InvalidArgument, "start_time and end_time are required")
	}

	appt, err := s.svc.Create(ctx, scheduling.CreateInput{
		ClientID:  req.CallerId,
		StaffID:   req.StaffId,
		StartTime: req.StartTime.AsTime(),
		EndTime:   req.EndTime.AsTime(),
		Notes:     req.Notes,
	})
	if err != nil {
		return nil, s.rpcError(log, err, slog.String("caller_id", req.CallerId), slog.String("staff_id", req.StaffId))
	}

	log.Info(
		"appointment created",
		slog.String("appointment_id", appt.ID.String()),
		slog.String("client_id", appt.ClientID),
		slog.String("staff_id", appt.StaffID),
		slog.Time("start_time", appt.StartTime),
		slog.Time("end_time", appt.EndTime),
	)

	return &booklinev1.CreateAppointmentResponse{Appointment: toProtoAppointment(appt)}, nil
}

func (s *SchedulingServer) GetAppointment(ctx context.Context, req *booklinev1.GetAppointmentRequest) (*booklinev1.GetAppointmentResponse, error) {
	log := s.log.With(slog.String("rpc", "GetAppointment"))

	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	id, err := uuid.Parse(req.AppointmentId)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"), slog.String("caller_id", req.CallerId))
		return nil, status.Error(codes.InvalidArgument, "appointment_id must be a UUID")
	}

	appt, err := s.svc.Get(ctx, id, req.CallerId, roleFromProto(req.CallerRole))
	if err != nil {
		return nil, s.rpcError(log, err, slog.String("appointment_id", id.String()), slog.String("caller_id", req.CallerId))
	}

	log.Debug("appointment fetched", slog.String("appointment_id", appt.ID.String()))
	return &booklinev1.GetAppointmentResponse{Appointment: toProtoAppointment(appt)}, nil
}

func (s *SchedulingServer) ListAppointments(ctx context.Context, req *booklinev1.ListAppointmentsRequest) (*booklinev1.ListAppointmentsResponse, error) {
	log := s.log.With(slog.String("rpc", "ListAppointments"))

	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	appts, err := s.svc.List(ctx, req.CallerId, roleFromProto(req.CallerRole), int(req.Skip), int(req.Limit))
	if err != nil {
		return nil, s.rpcError(log, err, slog.String("caller_id", req.CallerId))
	}

	out := make([]*booklinev1.Appointment, 0, len(appts))
	for _, a := range appts {
		out = append(out, toProtoAppointment(a))
	}

	log.Debug("appointments listed", slog.String("caller_id", req.CallerId), slog.Int("count", len(out)))
	return &booklinev1.ListAppointmentsResponse{Appointments: out}, nil
}

func (s *SchedulingServer) UpdateAppointment(ctx context.Context, req *booklinev1.UpdateAppointmentRequest) (*booklinev1.UpdateAppointmentResponse, error) {
	log := s.log.With(slog.String("rpc", "UpdateAppointment"))

	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	id, err := uuid.Parse(req.AppointmentId)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"), slog.String("caller_id", req.CallerId))
		return nil, status.Error(codes.InvalidArgument, "appointment_id must be a UUID")
	}

	in := scheduling.UpdateInput{
		ID:         id,
		CallerID:   req.CallerId,
		CallerRole: roleFromProto(req.CallerRole),
		Notes:      req.Notes,
	}
	if req.StartTime != nil {
		t := req.StartTime.AsTime()
		in.StartTime = &t
	}
	if req.EndTime != nil {
		t := req.EndTime.AsTime()
		in.EndTime = &t
	}
	if req.Status != booklinev1.AppointmentStatus_APPOINTMENT_STATUS_UNSPECIFIED {
		st := statusFromProto(req.Status)
		in.Status = &st
	}

	appt, err := s.svc.Update(ctx, in)
	if err != nil {
		return nil, s.rpcError(log, err, slog.String("appointment_id", id.String()), slog.String("caller_id", req.CallerId))
	}

	log.Info(
		"appointment updated",
		slog.String("appointment_id", appt.ID.String()),
		slog.String("status", string(appt.Status)),
	)
	return &booklinev1.UpdateAppointmentResponse{Appointment: toProtoAppointment(appt)}, nil
}

func (s *SchedulingServer) RescheduleAppointment(ctx context.Context, req *booklinev1.RescheduleAppointmentRequest) (*booklinev1.RescheduleAppointmentResponse, error) {
	log := s.log.With(slog.String("rpc", "RescheduleAppointment"))

	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	id, err := uuid.Parse(req.AppointmentId)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"), slog.String("caller_id", req.CallerId))
		return nil, status.Error(codes.InvalidArgument, "appointment_id must be a UUID")
	}
	if req.NewStartTime == nil || req.NewEndTime == nil {
		log.Warn("invalid request", slog.String("reason", "missing_times"), slog.String("caller_id", req.CallerId))
		return nil, status.Error(codes.InvalidArgument, "new_start_time and new_end_time are required")
	}

	appt, err := s.svc.Reschedule(ctx, scheduling.RescheduleInput{
		ID:         id,
		CallerID:   req.CallerId,
		CallerRole: roleFromProto(req.CallerRole),
		NewStart:   req.NewStartTime.AsTime(),
		NewEnd:     req.NewEndTime.AsTime(),
		Reason:     req.Reason,
	})
	if err != nil {
		return nil, s.rpcError(log, err, slog.String("appointment_id", id.String()), slog.String("caller_id", req.CallerId))
	}

	log.Info(
		"appointment rescheduled",
		slog.String("appointment_id", appt.ID.String()),
		slog.Time("start_time", appt.StartTime),
		slog.Time("end_time", appt.EndTime),
	)
	return &booklinev1.RescheduleAppointmentResponse{Appointment: toProtoAppointment(appt)}, nil
}

func (s *SchedulingServer) GetFreeSlots(ctx context.Context, req *booklinev1.GetFreeSlotsRequest) (*booklinev1.GetFreeSlotsResponse, error) {
	log := s.log.With(slog.String("rpc", "GetFreeSlots"))

	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	date, err := time.ParseInLocation("2006-01-02", req.Date, time.UTC)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_date"), slog.String("staff_id", req.StaffId))
		return nil, status.Error(codes.InvalidArgument, "date must be YYYY-MM-DD")
	}

	slots, err := s.svc.FreeSlots(ctx, scheduling.FreeSlotsInput{
		StaffID:  req.StaffId,
		Date:     date,
		Duration: time.Duration(req.DurationMinutes) * time.Minute,
	})
	if err != nil {
		return nil, s.rpcError(log, err, slog.String("staff_id", req.StaffId), slog.String("date", req.Date))
	}

	out := make([]*booklinev1.TimeSlot, 0, len(slots))
	for _, sl := range slots {
		out = append(out, &booklinev1.TimeSlot{
			StartTime: timestamppb.New(sl.Start),
			EndTime:   timestamppb.New(sl.End),
		})
	}

	log.Debug("free slots listed", slog.String("staff_id", req.StaffId), slog.String("date", req.Date), slog.Int("count", len(out)))
	return &booklinev1.GetFreeSlotsResponse{Slots: out}, nil
}

func (s *SchedulingServer) MarkCompleted(ctx context.Context, req *booklinev1.MarkCompletedRequest) (*booklinev1.MarkCompletedResponse, error) {
	log := s.log.With(slog.String("rpc", "MarkCompleted"))

	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	id, err := uuid.Parse(req.AppointmentId)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"), slog.String("caller_id", req.CallerId))
		return nil, status.Error(codes.InvalidArgument, "appointment_id must be a UUID")
	}

	appt, err := s.svc.MarkCompleted(ctx, id, req.CallerId, roleFromProto(req.CallerRole))
	if err != nil {
		return nil, s.rpcError(log, err, slog.String("appointment_id", id.String()), slog.String("caller_id", req.CallerId))
	}

	log.Info("appointment completed", slog.String("appointment_id", appt.ID.String()))
	return &booklinev1.MarkCompletedResponse{Appointment: toProtoAppointment(appt)}, nil
}

func (s *SchedulingServer) MarkNoShow(ctx context.Context, req *booklinev1.MarkNoShowRequest) (*booklinev1.MarkNoShowResponse, error) {
	log := s.log.With(slog.String("rpc", "MarkNoShow"))

	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	id, err := uuid.Parse(req.AppointmentId)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"), slog.String("caller_id", req.CallerId))
		return nil, status.Error(codes.InvalidArgument, "appointment_id must be a UUID")
	}

	appt, rec, err := s.svc.MarkNoShow(ctx, id, req.CallerId, roleFromProto(req.CallerRole))
	if err != nil {
		return nil, s.rpcError(log, err, slog.String("appointment_id", id.String()), slog.String("caller_id", req.CallerId))
	}

	log.Info(
		"appointment marked no-show",
		slog.String("appointment_id", appt.ID.String()),
		slog.String("client_id", appt.ClientID),
		slog.Int("no_show_count", rec.NoShowCount),
		slog.Bool("client_blocked", rec.IsBlocked),
	)
	return &booklinev1.MarkNoShowResponse{
		Appointment:   toProtoAppointment(appt),
		NoShowCount:   int32(rec.NoShowCount),
		ClientBlocked: rec.IsBlocked,
	}, nil
}

func (s *SchedulingServer) CreateAvailability(ctx context.Context, req *booklinev1.CreateAvailabilityRequest) (*booklinev1.CreateAvailabilityResponse, error) {
	log := s.log.With(slog.String("rpc", "CreateAvailability"))

	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	startTod, err := domain.ParseTimeOfDay(req.StartTime)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_start_time"), slog.String("staff_id", req.StaffId))
		return nil, status.Error(codes.InvalidArgument, "start_time must be HH:MM")
	}
	endTod, err := domain.ParseTimeOfDay(req.EndTime)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_end_time"), slog.String("staff_id", req.StaffId))
		return nil, status.Error(codes.InvalidArgument, "end_time must be HH:MM")
	}

	in := scheduling.CreateAvailabilityInput{
		CallerID:    req.CallerId,
		CallerRole:  roleFromProto(req.CallerRole),
		StaffID:     req.StaffId,
		StartTime:   startTod,
		EndTime:     endTod,
		IsRecurring: req.IsRecurring,
	}
	if req.DayOfWeek != nil {
		d := int16(req.GetDayOfWeek())
		in.DayOfWeek = &d
	}
	if req.SpecificDate != nil {
		date, err := time.ParseInLocation("2006-01-02", req.GetSpecificDate(), time.UTC)
		if err != nil {
			log.Warn("invalid request", slog.String("reason", "invalid_specific_date"), slog.String("staff_id", req.StaffId))
			return nil, status.Error(codes.InvalidArgument, "specific_date must be YYYY-MM-DD")
		}
		in.SpecificDate = &date
	}

	w, err := s.svc.CreateAvailability(ctx, in)
	if err != nil {
		return nil, s.rpcError(log, err, slog.String("staff_id", req.StaffId), slog.String("caller_id", req.CallerId))
	}

	log.Info(
		"availability window created",
		slog.String("window_id", w.ID.String()),
		slog.String("staff_id", w.StaffID),
		slog.String("start_time", w.StartTime.String()),
		slog.String("end_time", w.EndTime.String()),
	)
	return &booklinev1.CreateAvailabilityResponse{Window: toProtoWindow(w)}, nil
}

func (s *SchedulingServer) ListAvailability(ctx context.Context, req *booklinev1.ListAvailabilityRequest) (*booklinev1.ListAvailabilityResponse, error) {
	log := s.log.With(slog.String("rpc", "ListAvailability"))

	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	windows, err := s.svc.ListAvailability(ctx, req.StaffId)
	if err != nil {
		return nil, s.rpcError(log, err, slog.String("staff_id", req.StaffId))
	}

	out := make([]*booklinev1.AvailabilityWindow, 0, len(windows))
	for _, w := range windows {
		out = append(out, toProtoWindow(w))
	}

	log.Debug("availability listed", slog.String("staff_id", req.StaffId), slog.Int("count", len(out)))
	return &booklinev1.ListAvailabilityResponse{Windows: out}, nil
}

func (s *SchedulingServer) DeleteAvailability(ctx context.Context, req *booklinev1.DeleteAvailabilityRequest) (*booklinev1.DeleteAvailabilityResponse, error) {
	log := s.log.With(slog.String("rpc", "DeleteAvailability"))

	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	id, err := uuid.Parse(req.WindowId)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"), slog.String("caller_id", req.CallerId))
		return nil, status.Error(codes.InvalidArgument, "window_id must be a UUID")
	}

	if err := s.svc.DeleteAvailability(ctx, id, req.CallerId, roleFromProto(req.CallerRole)); err != nil {
		return nil, s.rpcError(log, err, slog.String("window_id", id.String()), slog.String("caller_id", req.CallerId))
	}

	log.Info("availability window deleted", slog.String("window_id", id.String()))
	return &booklinev1.DeleteAvailabilityResponse{}, nil
}

func (s *SchedulingServer) rpcError(log *slog.Logger, err error, args ...any) error {
	st := toStatusError(err)
	logArgs := append(args, slog.Any("err", err))
	if status.Code(st) == codes.Internal {
		log.Error("request failed", logArgs...)
	} else {
		log.Warn("request rejected", logArgs...)
	}
	return st
}

func toStatusError(err error) error {
	var vErr *scheduling.ValidationError
	var cErr *scheduling.ConflictError
	var pErr *scheduling.PolicyError
	var permErr *scheduling.PermissionError
	var bErr *scheduling.BlockedError

	switch {
	case errors.As(err, &vErr):
		return status.Error(codes.InvalidArgument, vErr.Error())
	case errors.As(err, &cErr):
		return status.Error(codes.FailedPrecondition, cErr.Error())
	case errors.As(err, &pErr):
		return status.Error(codes.FailedPrecondition, pErr.Error())
	case errors.As(err, &bErr):
		return status.Error(codes.PermissionDenied, bErr.Error())
	case errors.As(err, &permErr):
		return status.Error(codes.PermissionDenied, permErr.Error())
	case errors.Is(err, store.ErrConflict):
		return status.Error(codes.FailedPrecondition, "that time is no longer available; pick a different slot")
	case errors.Is(err, store.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	}
	return status.Error(codes.Internal, "internal error")
}

func toProtoAppointment(a domain.Appointment) *booklinev1.Appointment {
	return &booklinev1.Appointment{
		Id:        a.ID.String(),
		ClientId:  a.ClientID,
		StaffId:   a.StaffID,
		StartTime: timestamppb.New(a.StartTime),
		EndTime:   timestamppb.New(a.EndTime),
		Status:    statusToProto(a.Status),
		Notes:     a.Notes,
		CreatedAt: timestamppb.New(a.CreatedAt),
		UpdatedAt: timestamppb.New(a.UpdatedAt),
	}
}

func toProtoWindow(w domain.AvailabilityWindow) *booklinev1.AvailabilityWindow {
	out := &booklinev1.AvailabilityWindow{
		Id:          w.ID.String(),
		StaffId:     w.StaffID,
		StartTime:   w.StartTime.String(),
		EndTime:     w.EndTime.String(),
		IsRecurring: w.IsRecurring,
	}
	if w.DayOfWeek != nil {
		d := int32(*w.DayOfWeek)
		out.DayOfWeek = &d
	}
	if w.SpecificDate != nil {
		s := w.SpecificDate.UTC().Format("2006-01-02")
		out.SpecificDate = &s
	}
	return out
}

func statusToProto(s domain.AppointmentStatus) booklinev1.AppointmentStatus {
	switch s {
	case domain.StatusScheduled:
		return booklinev1.AppointmentStatus_APPOINTMENT_STATUS_SCHEDULED
	case domain.StatusCancelled:
		return booklinev1.AppointmentStatus_APPOINTMENT_STATUS_CANCELLED
	case domain.StatusCompleted:
		return booklinev1.AppointmentStatus_APPOINTMENT_STATUS_COMPLETED
	case domain.StatusNoShow:
		return booklinev1.AppointmentStatus_APPOINTMENT_STATUS_NO_SHOW
	}
	return booklinev1.AppointmentStatus_APPOINTMENT_STATUS_UNSPECIFIED
}

func statusFromProto(s booklinev1.AppointmentStatus) domain.AppointmentStatus {
	switch s {
	case booklinev1.AppointmentStatus_APPOINTMENT_STATUS_SCHEDULED:
		return domain.StatusScheduled
	case booklinev1.AppointmentStatus_APPOINTMENT_STATUS_CANCELLED:
		return domain.StatusCancelled
	case booklinev1.AppointmentStatus_APPOINTMENT_STATUS_COMPLETED:
		return domain.StatusCompleted
	case booklinev1.AppointmentStatus_APPOINTMENT_STATUS_NO_SHOW:
		return domain.StatusNoShow
	}
	return ""
}

func roleFromProto(r booklinev1.Role) domain.Role {
	switch r {
	case booklinev1.Role_ROLE_CLIENT:
		return domain.RoleClient
	case booklinev1.Role_ROLE_STAFF:
		return domain.RoleStaff
	case booklinev1.Role_ROLE_ADMIN:
		return domain.RoleAdmin
	}
	return ""
}
