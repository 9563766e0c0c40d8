package ownernotify

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/m04kA/BarberBookingService/internal/domain"
)

// BuildInvite формирует VCALENDAR с одним VEVENT для ручного импорта в календарь
func BuildInvite(booking domain.BookingRequest, interval domain.Interval, shopName string, now time.Time) string {
	meta := booking.Metadata()

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(fmt.Sprintf("-//%s//Booking//PT", shopName))

	event := cal.AddEvent(uuid.NewString())
	event.SetDtStampTime(now)
	event.SetCreatedTime(now)
	event.SetStartAt(interval.Start)
	event.SetEndAt(interval.End)
	event.SetSummary(meta.Summary(shopName))
	event.SetDescription(meta.Description())
	if meta.ClientEmail != "" {
		event.AddAttendee("mailto:"+meta.ClientEmail,
			ical.CalendarUserTypeIndividual,
			ical.ParticipationStatusNeedsAction,
			ical.WithCN(meta.ClientName),
		)
	}

	return cal.Serialize()
}
