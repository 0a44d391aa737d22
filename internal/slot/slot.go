// Package slot maps between vertical positions in a day column and
// times of day. The day is a 1440-minute column; positions are
// fractions of it, snapped to a fixed 15-minute granularity.
package slot

import (
	"math"
	"time"

	"github.com/javiermolinar/focustime/internal/event"
)

const (
	// SnapMinutes is the snapping granularity. It divides 60 evenly,
	// so snapped minute values are always in {0, 15, 30, 45}.
	SnapMinutes = 15
	// MinutesPerDay is 24 hours * 60 minutes.
	MinutesPerDay = 24 * 60
	// MinHeightFrac is the minimum rendered height of an event slice,
	// so zero-duration slices remain visible and clickable.
	MinHeightFrac = 0.01
)

// TimeOfDay is an hour/minute pair within one day.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// Minutes returns the offset from midnight in minutes.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// PositionToTime converts a vertical offset fraction of a 24-hour
// column into a time of day snapped to the grid. Out-of-range
// fractions are clamped, never rejected: 0 maps to 00:00 and 1 maps to
// 23:45 (the last slot of the day, not 24:00).
func PositionToTime(frac float64) TimeOfDay {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	mins := snapMinutes(frac*MinutesPerDay, SnapMinutes)
	if mins > MinutesPerDay-SnapMinutes {
		mins = MinutesPerDay - SnapMinutes
	}
	return TimeOfDay{Hour: mins / 60, Minute: mins % 60}
}

// SnapToGrid rounds t's minute component to the nearest multiple of
// granularity minutes (round half up), zeroing seconds and below.
// Rounding to 60 carries into the next hour.
func SnapToGrid(t time.Time, granularity int) time.Time {
	if granularity <= 0 {
		granularity = SnapMinutes
	}
	snapped := snapMinutes(float64(t.Minute()), granularity)
	// time.Date normalizes minute 60 into the next hour.
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), snapped, 0, 0, t.Location())
}

// Snap is SnapToGrid at the default granularity.
func Snap(t time.Time) time.Time {
	return SnapToGrid(t, SnapMinutes)
}

// snapMinutes rounds mins to the nearest multiple of granularity,
// half up.
func snapMinutes(mins float64, granularity int) int {
	g := float64(granularity)
	return int(math.Floor(mins/g+0.5)) * granularity
}

// Geometry is an event's vertical placement within a day column,
// expressed as fractions of the column height.
type Geometry struct {
	Top    float64
	Height float64
}

// EventGeometry converts an event's start/end minute offsets into a
// top offset and height for absolute positioning in week and day
// views. Month view uses a list layout, so it has no geometry and ok
// is false.
func EventGeometry(e event.Event, view event.View) (Geometry, bool) {
	if view == event.ViewMonth {
		return Geometry{}, false
	}

	startMin := e.Start.Hour()*60 + e.Start.Minute()
	endMin := e.End.Hour()*60 + e.End.Minute()

	top := float64(startMin) / MinutesPerDay
	height := float64(endMin-startMin) / MinutesPerDay
	if height < MinHeightFrac {
		height = MinHeightFrac
	}
	return Geometry{Top: top, Height: height}, true
}

// TimeSlots returns every 15-minute boundary of a day as times of day,
// in order. Used to render the time gutter.
func TimeSlots() []TimeOfDay {
	slots := make([]TimeOfDay, 0, MinutesPerDay/SnapMinutes)
	for hour := 0; hour < 24; hour++ {
		for minute := 0; minute < 60; minute += SnapMinutes {
			slots = append(slots, TimeOfDay{Hour: hour, Minute: minute})
		}
	}
	return slots
}
