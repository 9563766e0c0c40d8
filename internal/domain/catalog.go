package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/BarberBookingService/pkg/types"
)

// ServiceCatalog maps a service name to its duration in minutes.
// Unknown names fall back to DefaultMinutes.
type ServiceCatalog struct {
	durations      map[string]int
	defaultMinutes int
}

// NewServiceCatalog copies durations so later mutation of the input has no effect
func NewServiceCatalog(durations map[string]int, defaultMinutes int) (*ServiceCatalog, error) {
	if defaultMinutes <= 0 {
		return nil, fmt.Errorf("default duration must be positive, got %d", defaultMinutes)
	}

	copied := make(map[string]int, len(durations))
	for name, minutes := range durations {
		if minutes <= 0 {
			return nil, fmt.Errorf("service %q: duration must be positive, got %d", name, minutes)
		}
		copied[name] = minutes
	}

	return &ServiceCatalog{durations: copied, defaultMinutes: defaultMinutes}, nil
}

// DefaultServiceCatalog returns the shop's built-in service list
func DefaultServiceCatalog() *ServiceCatalog {
	c, _ := NewServiceCatalog(DefaultServiceDurations, DefaultServiceDurationMinutes)
	return c
}

// Duration returns the service duration and whether the name was found
func (c *ServiceCatalog) Duration(service string) (minutes int, known bool) {
	if minutes, ok := c.durations[service]; ok {
		return minutes, true
	}
	return c.defaultMinutes, false
}

// SlotCatalog is the fixed ordered list of daily start times
type SlotCatalog struct {
	slots []types.TimeString
}

// NewSlotCatalog validates every entry and requires strictly increasing order
func NewSlotCatalog(slots []string) (*SlotCatalog, error) {
	if len(slots) == 0 {
		return nil, fmt.Errorf("slot catalog is empty")
	}

	parsed := make([]types.TimeString, 0, len(slots))
	for i, s := range slots {
		ts, err := types.NewTimeStringFromString(s)
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", i, err)
		}
		if i > 0 && !parsed[i-1].IsBefore(ts) {
			return nil, fmt.Errorf("slot %d: %s must be after %s", i, ts, parsed[i-1])
		}
		parsed = append(parsed, ts)
	}

	return &SlotCatalog{slots: parsed}, nil
}

// DefaultSlotCatalog returns the ten built-in daily slots
func DefaultSlotCatalog() *SlotCatalog {
	c, _ := NewSlotCatalog(DefaultDailySlots)
	return c
}

// Slots returns a copy of the catalog in order
func (c *SlotCatalog) Slots() []types.TimeString {
	out := make([]types.TimeString, len(c.slots))
	copy(out, c.slots)
	return out
}

func (c *SlotCatalog) Len() int {
	return len(c.slots)
}

// ResolveInterval turns a date + wall-clock start + duration into an Interval in loc.
// End is always Start + duration.
func ResolveInterval(date time.Time, start types.TimeString, durationMinutes int, loc *time.Location) (Interval, error) {
	from, err := start.On(date, loc)
	if err != nil {
		return Interval{}, err
	}
	return Interval{
		Start: from,
		End:   from.Add(time.Duration(durationMinutes) * time.Minute),
	}, nil
}

// DayWindow returns the [00:00, 23:59] window of date in loc used to query the calendar
func DayWindow(date time.Time, loc *time.Location) Interval {
	y, m, d := date.Date()
	return Interval{
		Start: time.Date(y, m, d, 0, 0, 0, 0, loc),
		End:   time.Date(y, m, d, 23, 59, 0, 0, loc),
	}
}
