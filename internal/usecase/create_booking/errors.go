package create_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingTutor возвращается, когда идентификатор профиля репетитора не указан
	ErrMissingTutor = errors.New("create_booking: tutor profile id is required")

	// ErrMissingDate возвращается, когда дата сессии не указана
	ErrMissingDate = errors.New("create_booking: booking date is required")

	// ErrMissingTime возвращается, когда время начала сессии не указано
	ErrMissingTime = errors.New("create_booking: start time is required")

	// ErrInvalidTime возвращается при некорректном времени начала
	ErrInvalidTime = errors.New("create_booking: invalid start time")

	// ErrInvalidDuration возвращается, когда длительность некорректна
	// или не совпадает с окном слота
	ErrInvalidDuration = errors.New("create_booking: invalid session duration")

	// ErrIncompleteSlot возвращается, когда слот не собран полностью
	ErrIncompleteSlot = errors.New("create_booking: incomplete time slot")

	// ErrInvalidWindow возвращается, когда конец окна не позже его начала
	ErrInvalidWindow = errors.New("create_booking: invalid time window")

	// ErrSubmissionFailed возвращается, когда бэкенд бронирований отклонил запрос
	ErrSubmissionFailed = errors.New("create_booking: submission failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// SubmissionFailedError несет сообщение бэкенда для показа пользователю
// Ошибка всегда восстановима: пользователь может исправить форму и
// отправить запрос повторно, автоматических ретраев нет
type SubmissionFailedError struct {
	Message string
}

func (e *SubmissionFailedError) Error() string {
	return fmt.Sprintf("%v: %s", ErrSubmissionFailed, e.Message)
}

// Unwrap позволяет матчить ошибку через errors.Is(err, ErrSubmissionFailed)
func (e *SubmissionFailedError) Unwrap() error {
	return ErrSubmissionFailed
}
