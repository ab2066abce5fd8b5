package domain

import "time"

// TimeSlot represents one candidate session window
// The instants are built from a calendar date plus a time-of-day value;
// Timezone is carried as metadata only, no reprojection is performed
type TimeSlot struct {
	StartAt         time.Time
	EndAt           time.Time
	DurationMinutes int
	Timezone        string // IANA timezone name, optional
}

// IsComplete returns true if both instants of the window are set
func (s *TimeSlot) IsComplete() bool {
	return !s.StartAt.IsZero() && !s.EndAt.IsZero()
}

// HasValidWindow returns true if the window is strictly ordered
func (s *TimeSlot) HasValidWindow() bool {
	return s.EndAt.After(s.StartAt)
}

// WindowMinutes returns the actual window length in whole minutes
func (s *TimeSlot) WindowMinutes() int {
	return int(s.EndAt.Sub(s.StartAt) / time.Minute)
}

// IsConsistent returns true if the declared duration matches the window exactly
func (s *TimeSlot) IsConsistent() bool {
	return s.EndAt.Sub(s.StartAt) == time.Duration(s.DurationMinutes)*time.Minute
}
