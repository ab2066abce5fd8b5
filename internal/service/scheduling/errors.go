package scheduling

import "errors"

var (
	// ErrMissingDate возвращается, когда дата сессии не указана
	ErrMissingDate = errors.New("scheduling: booking date is required")

	// ErrMissingTime возвращается, когда время начала сессии не указано
	ErrMissingTime = errors.New("scheduling: start time is required")

	// ErrInvalidTime возвращается, когда время начала не соответствует формату HH:MM
	// или не попадает на 15-минутную сетку
	ErrInvalidTime = errors.New("scheduling: invalid start time")

	// ErrInvalidDuration возвращается, когда длительность не входит в допустимый набор
	ErrInvalidDuration = errors.New("scheduling: invalid session duration")
)
