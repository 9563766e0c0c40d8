package domain

// Default reference data (mirrors the shop's price list and opening schedule)
const (
	DefaultServiceDurationMinutes = 60
	DefaultTimezone               = "Europe/Lisbon"
	DefaultCalendarID             = "primary"
)

// MaxNotesLength limits free-form booking notes
const MaxNotesLength = 1000

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultServiceDurations is the shop's service list in minutes
var DefaultServiceDurations = map[string]int{
	"Corte Clássico":         50,
	"Design de Barba":        40,
	"Corte + Barba Completo": 90,
}

// DefaultDailySlots is the fixed ordered list of appointment start times
var DefaultDailySlots = []string{
	"09:00", "10:00", "11:00", "12:00",
	"14:00", "15:00", "16:00", "17:00", "18:00", "19:00",
}
