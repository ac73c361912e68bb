package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"petemporio/internal/domain"
)

func dayParams(t *testing.T, duration time.Duration) slotParams {
	t.Helper()
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	return slotParams{
		workStart:  day.Add(8 * time.Hour),
		workEnd:    day.Add(18 * time.Hour),
		lunchStart: day.Add(12 * time.Hour),
		lunchEnd:   day.Add(13 * time.Hour),
		duration:   duration,
		increment:  15 * time.Minute,
		buffer:     15 * time.Minute,
	}
}

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 10, hour, min, 0, 0, time.UTC)
}

func clock(starts []time.Time) []string {
	out := make([]string, 0, len(starts))
	for _, s := range starts {
		out = append(out, s.Format("15:04"))
	}
	return out
}

func TestStartsForEmployee_EmptyDay(t *testing.T) {
	p := dayParams(t, 60*time.Minute)

	starts := startsForEmployee(p, nil)

	got := clock(starts)
	// Morning runs until the last start whose hour fits before lunch, the
	// afternoon resumes at 13:00 and ends at 17:00.
	assert.Equal(t, "08:00", got[0])
	assert.Contains(t, got, "11:00")
	assert.NotContains(t, got, "11:15") // 11:15+1h crosses into lunch
	assert.NotContains(t, got, "12:00")
	assert.Contains(t, got, "13:00")
	assert.Equal(t, "17:00", got[len(got)-1])
	assert.Len(t, got, 13+17)
}

func TestStartsForEmployee_BookingWithBuffer(t *testing.T) {
	p := dayParams(t, 60*time.Minute)
	booked := []domain.Appointment{
		{EmployeeID: 1, StartTime: at(10, 0), EndTime: at(11, 0)},
	}

	got := clock(startsForEmployee(p, booked))

	// Before the booking the last fitting start is 09:00 (ends exactly at
	// 10:00). The cursor resumes at 11:15 after the buffer, but 11:15+1h
	// touches lunch, so the next valid start is 13:00.
	assert.Contains(t, got, "08:00")
	assert.Contains(t, got, "09:00")
	assert.NotContains(t, got, "09:15")
	assert.NotContains(t, got, "10:00")
	assert.NotContains(t, got, "11:15")
	assert.Contains(t, got, "13:00")
	assert.Contains(t, got, "17:00")
}

func TestStartsForEmployee_ShortServiceAroundLunch(t *testing.T) {
	p := dayParams(t, 30*time.Minute)
	booked := []domain.Appointment{
		{EmployeeID: 1, StartTime: at(8, 0), EndTime: at(9, 0)},
	}

	got := clock(startsForEmployee(p, booked))

	// Cursor resumes at 09:15; starts step by 15 minutes from the gap's
	// left edge.
	assert.NotContains(t, got, "08:00")
	assert.NotContains(t, got, "09:00")
	assert.Contains(t, got, "09:15")
	assert.Contains(t, got, "11:30") // ends exactly at lunch start
	assert.NotContains(t, got, "11:45")
	assert.Contains(t, got, "13:00")
	assert.Contains(t, got, "17:30")
	assert.NotContains(t, got, "17:45")
}

func TestStartsForEmployee_SortsUnorderedBookings(t *testing.T) {
	p := dayParams(t, 60*time.Minute)
	booked := []domain.Appointment{
		{EmployeeID: 1, StartTime: at(15, 0), EndTime: at(16, 0)},
		{EmployeeID: 1, StartTime: at(13, 0), EndTime: at(14, 0)},
	}

	got := clock(startsForEmployee(p, booked))

	assert.NotContains(t, got, "13:00")
	assert.NotContains(t, got, "14:00")
	assert.NotContains(t, got, "15:00")
	// 14:15 + 1h overlaps the 15:00 booking
	assert.NotContains(t, got, "14:15")
	assert.Contains(t, got, "16:15")
	assert.Contains(t, got, "17:00")
}

func TestStartsForEmployee_FullyBooked(t *testing.T) {
	p := dayParams(t, 60*time.Minute)
	booked := []domain.Appointment{
		{EmployeeID: 1, StartTime: at(8, 0), EndTime: at(12, 0)},
		{EmployeeID: 1, StartTime: at(13, 0), EndTime: at(18, 0)},
	}

	assert.Empty(t, startsForEmployee(p, booked))
}

func TestMergeStarts_DeduplicatesAndSorts(t *testing.T) {
	a := []time.Time{at(9, 0), at(10, 0)}
	b := []time.Time{at(8, 0), at(9, 0)}

	got := clock(mergeStarts(a, b))

	assert.Equal(t, []string{"08:00", "09:00", "10:00"}, got)
}

func TestOverlapsLunch(t *testing.T) {
	ls, le := at(12, 0), at(13, 0)

	assert.False(t, overlapsLunch(at(11, 0), at(12, 0), ls, le))
	assert.True(t, overlapsLunch(at(11, 30), at(12, 15), ls, le))
	assert.True(t, overlapsLunch(at(12, 15), at(12, 45), ls, le))
	assert.False(t, overlapsLunch(at(13, 0), at(14, 0), ls, le))
	// zero-length lunch disables the window
	assert.False(t, overlapsLunch(at(12, 0), at(13, 0), ls, ls))
}
