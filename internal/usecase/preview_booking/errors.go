package preview_booking

import "errors"

var (
	// ErrMissingTutor возвращается, когда идентификатор профиля репетитора не указан
	ErrMissingTutor = errors.New("preview_booking: tutor profile id is required")

	// ErrMissingDate возвращается, когда дата сессии не указана
	ErrMissingDate = errors.New("preview_booking: booking date is required")

	// ErrMissingTime возвращается, когда время начала сессии не указано
	ErrMissingTime = errors.New("preview_booking: start time is required")

	// ErrInvalidTime возвращается при некорректном времени начала
	ErrInvalidTime = errors.New("preview_booking: invalid start time")

	// ErrInvalidDuration возвращается при некорректной длительности
	ErrInvalidDuration = errors.New("preview_booking: invalid session duration")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("preview_booking: internal error")
)
