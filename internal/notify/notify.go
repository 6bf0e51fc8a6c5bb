package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bookline/backend/internal/domain"
)

// Mailer delivers one message to one recipient address.
type Mailer interface {
	Send(to, subject, body string) error
}

// Directory resolves user identifiers to directory rows for addressing.
type Directory interface {
	GetUser(ctx context.Context, id string) (domain.User, error)
}

// Service composes and delivers booking notifications. Delivery is
// fire-and-forget: failures are logged and never surfaced to the booking
// operation that triggered them.
type Service struct {
	mailer Mailer
	dir    Directory
	log    *slog.Logger
}

func NewService(mailer Mailer, dir Directory, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		mailer: mailer,
		dir:    dir,
		log:    log.With(slog.String("component", "notify")),
	}
}

func (s *Service) AppointmentBooked(ctx context.Context, appt domain.Appointment) {
	client, cErr := s.dir.GetUser(ctx, appt.ClientID)
	staff, sErr := s.dir.GetUser(ctx, appt.StaffID)

	if cErr == nil {
		s.send(client.Email, "Appointment Confirmed", confirmationBody(client, staff, appt))
	} else {
		s.logLookupFailure(appt.ClientID, cErr)
	}
	if sErr == nil {
		s.send(staff.Email, "New Appointment Booked", staffNoticeBody(client, staff, appt))
	} else {
		s.logLookupFailure(appt.StaffID, sErr)
	}
}

func (s *Service) AppointmentUpdated(ctx context.Context, appt domain.Appointment) {
	client, err := s.dir.GetUser(ctx, appt.ClientID)
	if err != nil {
		s.logLookupFailure(appt.ClientID, err)
		return
	}
	body := fmt.Sprintf(
		"Hello %s,\n\nYour appointment on %s is now %s.\n",
		client.DisplayName(), formatTime(appt.StartTime), appt.Status)
	s.send(client.Email, "Appointment Updated", body)
}

func (s *Service) AppointmentRescheduled(ctx context.Context, appt domain.Appointment, oldStart, oldEnd time.Time) {
	client, cErr := s.dir.GetUser(ctx, appt.ClientID)
	staff, sErr := s.dir.GetUser(ctx, appt.StaffID)

	if cErr == nil {
		s.send(client.Email, "Appointment Rescheduled",
			rescheduleBody(client.DisplayName(), staff, appt, oldStart, oldEnd))
	} else {
		s.logLookupFailure(appt.ClientID, cErr)
	}
	if sErr == nil {
		s.send(staff.Email, "Appointment Rescheduled",
			rescheduleBody(staff.DisplayName(), staff, appt, oldStart, oldEnd))
	} else {
		s.logLookupFailure(appt.StaffID, sErr)
	}
}

// AppointmentReminder is sent by the reminder sweep roughly 24 hours before
// the appointment starts.
func (s *Service) AppointmentReminder(ctx context.Context, appt domain.Appointment) {
	client, err := s.dir.GetUser(ctx, appt.ClientID)
	if err != nil {
		s.logLookupFailure(appt.ClientID, err)
		return
	}
	staff, _ := s.dir.GetUser(ctx, appt.StaffID)

	body := fmt.Sprintf(
		"Hello %s,\n\nThis is a reminder about your upcoming appointment tomorrow.\n\n"+
			"Staff: %s\nWhen: %s - %s\n\n"+
			"If you need to reschedule or cancel, please do so as soon as possible.\n",
		client.DisplayName(), staff.DisplayName(),
		formatTime(appt.StartTime), formatTime(appt.EndTime))
	s.send(client.Email, "Appointment Reminder - Tomorrow", body)
}

func (s *Service) send(to, subject, body string) {
	if err := s.mailer.Send(to, subject, body); err != nil {
		s.log.Warn("notification delivery failed",
			slog.String("recipient", to),
			slog.String("subject", subject),
			slog.Any("err", err),
		)
		return
	}
	s.log.Debug("notification sent", slog.String("recipient", to), slog.String("subject", subject))
}

func (s *Service) logLookupFailure(userID string, err error) {
	s.log.Warn("notification recipient lookup failed", slog.String("user_id", userID), slog.Any("err", err))
}

func confirmationBody(client, staff domain.User, appt domain.Appointment) string {
	return fmt.Sprintf(
		"Hello %s,\n\nYour appointment has been scheduled.\n\n"+
			"Staff: %s\nWhen: %s - %s\n\n"+
			"You will receive a reminder 24 hours before your appointment.\n"+
			"If you need to reschedule or cancel, please do so at least 2 hours in advance.\n",
		client.DisplayName(), staff.DisplayName(),
		formatTime(appt.StartTime), formatTime(appt.EndTime))
}

func staffNoticeBody(client, staff domain.User, appt domain.Appointment) string {
	body := fmt.Sprintf(
		"Hello %s,\n\nA new appointment has been booked with you.\n\n"+
			"Client: %s\nWhen: %s - %s\n",
		staff.DisplayName(), client.DisplayName(),
		formatTime(appt.StartTime), formatTime(appt.EndTime))
	if appt.Notes != "" {
		body += fmt.Sprintf("Notes: %s\n", appt.Notes)
	}
	return body
}

func rescheduleBody(recipientName string, staff domain.User, appt domain.Appointment, oldStart, oldEnd time.Time) string {
	return fmt.Sprintf(
		"Hello %s,\n\nThe appointment with %s has been rescheduled.\n\n"+
			"Previously: %s - %s\nNow: %s - %s\n",
		recipientName, staff.DisplayName(),
		formatTime(oldStart), formatTime(oldEnd),
		formatTime(appt.StartTime), formatTime(appt.EndTime))
}

func formatTime(t time.Time) string {
	return t.UTC().Format("Monday, 02 Jan 2006 15:04 MST")
}
