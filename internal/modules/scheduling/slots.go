package scheduling

import (
	"sort"
	"time"

	"petemporio/internal/domain"
)

// slotParams are the fixed inputs of one availability computation: the
// workday boundaries projected onto the target date and the service being
// booked.
type slotParams struct {
	workStart  time.Time
	workEnd    time.Time
	lunchStart time.Time
	lunchEnd   time.Time
	duration   time.Duration
	increment  time.Duration
	buffer     time.Duration
}

// startsForEmployee walks the free gaps between one employee's existing
// bookings (sorted by start time) and emits every start at which the service
// fits. The cursor begins at workStart; after each booking it jumps to the
// booking's end plus the buffer, so buffer time is dead time between
// bookings, never part of the service duration. Candidate starts are stepped
// by the increment from each gap's left edge, not from a global grid.
func startsForEmployee(p slotParams, booked []domain.Appointment) []time.Time {
	sort.Slice(booked, func(i, j int) bool {
		return booked[i].StartTime.Before(booked[j].StartTime)
	})

	var starts []time.Time
	cursor := p.workStart
	for i := range booked {
		starts = appendGapStarts(starts, p, cursor, booked[i].StartTime)
		next := booked[i].EndTime.Add(p.buffer)
		if next.After(cursor) {
			cursor = next
		}
	}
	return appendGapStarts(starts, p, cursor, p.workEnd)
}

// appendGapStarts emits every start in [gapStart, gapEnd) where the service
// fits entirely before gapEnd and does not touch the lunch window.
func appendGapStarts(starts []time.Time, p slotParams, gapStart, gapEnd time.Time) []time.Time {
	for t := gapStart; !t.Add(p.duration).After(gapEnd); t = t.Add(p.increment) {
		if overlapsLunch(t, t.Add(p.duration), p.lunchStart, p.lunchEnd) {
			continue
		}
		starts = append(starts, t)
	}
	return starts
}

// overlapsLunch reports whether [start, end) intersects [lunchStart,
// lunchEnd) at all; partial overlap rejects the slot.
func overlapsLunch(start, end, lunchStart, lunchEnd time.Time) bool {
	if !lunchEnd.After(lunchStart) {
		return false
	}
	return start.Before(lunchEnd) && end.After(lunchStart)
}

// mergeStarts unions per-employee start sets, deduplicates, and sorts
// ascending. A start appears once even when several employees are free then.
func mergeStarts(sets ...[]time.Time) []time.Time {
	seen := make(map[int64]struct{})
	merged := make([]time.Time, 0)
	for _, set := range sets {
		for _, t := range set {
			key := t.Unix()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, t)
		}
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Before(merged[j]) })
	return merged
}

func containsStart(starts []time.Time, t time.Time) bool {
	for _, s := range starts {
		if s.Equal(t) {
			return true
		}
	}
	return false
}
