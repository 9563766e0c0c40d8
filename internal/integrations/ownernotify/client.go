package ownernotify

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/m04kA/BarberBookingService/internal/domain"
)

const (
	inviteFilename = "marcacao.ics"
	inviteMIME     = "text/calendar"
)

// Notifier отправляет владельцу письмо о записи, принятой без синхронизации с календарем
type Notifier struct {
	sender   Sender
	settings Settings
	location *time.Location
	now      func() time.Time
	logger   Logger
}

// NewNotifier создает уведомитель поверх SendGrid
func NewNotifier(settings Settings, location *time.Location, logger Logger) *Notifier {
	return NewNotifierWithSender(sendgrid.NewSendClient(settings.APIKey), settings, location, logger)
}

// NewNotifierWithSender создает уведомитель с произвольным отправителем
func NewNotifierWithSender(sender Sender, settings Settings, location *time.Location, logger Logger) *Notifier {
	return &Notifier{
		sender:   sender,
		settings: settings,
		location: location,
		now:      time.Now,
		logger:   logger,
	}
}

// NotifyUnsynced отправляет детали записи и .ics вложение
func (n *Notifier) NotifyUnsynced(ctx context.Context, booking domain.BookingRequest, interval domain.Interval) error {
	if !n.settings.IsConfigured() {
		return ErrNotConfigured
	}

	message := n.buildMessage(booking, interval)

	response, err := n.sender.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: status %d: %s", ErrSendFailed, response.StatusCode, response.Body)
	}

	n.logger.Info("OwnerNotify: sent unsynced booking for %s at %s to %s",
		booking.Email, interval.Start.In(n.location).Format("2006-01-02 15:04"), n.settings.OwnerEmail)
	return nil
}

func (n *Notifier) buildMessage(booking domain.BookingRequest, interval domain.Interval) *mail.SGMailV3 {
	meta := booking.Metadata()
	start := interval.Start.In(n.location)

	subject := fmt.Sprintf("Nova marcação por sincronizar: %s %s", meta.Service, start.Format("02/01/2006 15:04"))
	text := fmt.Sprintf("O Google Calendar não está ligado. A marcação abaixo não foi sincronizada.\n\n"+
		"Data: %s\nHora: %s - %s\n\n%s\n\nImporte o ficheiro em anexo no calendário.",
		start.Format("02/01/2006"), start.Format(domain.TimeFormat), interval.End.In(n.location).Format(domain.TimeFormat),
		meta.Description())

	from := mail.NewEmail(n.settings.FromName, n.settings.FromEmail)
	to := mail.NewEmail(n.settings.OwnerName, n.settings.OwnerEmail)
	message := mail.NewV3MailInit(from, subject, to, mail.NewContent("text/plain", text))

	invite := BuildInvite(booking, interval, n.settings.ShopName, n.now())
	attachment := mail.NewAttachment().
		SetContent(base64.StdEncoding.EncodeToString([]byte(invite))).
		SetType(inviteMIME).
		SetFilename(inviteFilename).
		SetDisposition("attachment")
	message.AddAttachment(attachment)

	if meta.ClientEmail != "" {
		message.SetReplyTo(mail.NewEmail(meta.ClientName, meta.ClientEmail))
	}

	return message
}

// Nop уведомитель, когда уведомления выключены
type Nop struct{}

func (Nop) NotifyUnsynced(context.Context, domain.BookingRequest, domain.Interval) error {
	return nil
}
