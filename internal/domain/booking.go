package domain

import (
	"strings"
	"time"
)

// BookingRequest is the outbound payload for the Booking Submission Service
// It is constructed fresh per submission attempt and never mutated afterwards
// The client-side price quote is deliberately absent: the backend recomputes
// the price and is the source of truth
type BookingRequest struct {
	TutorProfileID  string    `json:"tutorProfileId"`
	StartAt         time.Time `json:"startAt"`
	EndAt           time.Time `json:"endAt"`
	DurationMinutes int       `json:"durationMinutes"`
	Timezone        *string   `json:"timezone,omitempty"`
	Topic           *string   `json:"topic,omitempty"`
	MeetingLink     *string   `json:"meetingLink,omitempty"`
}

// BookingExtras optional attributes attached to a booking request
// Empty strings after trim are treated as "not provided" and omitted,
// never sent as explicit clears
type BookingExtras struct {
	Timezone    string
	Topic       string
	MeetingLink string
}

// OptionalString trims s and returns a pointer to the result,
// or nil if the trimmed value is empty
func OptionalString(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
