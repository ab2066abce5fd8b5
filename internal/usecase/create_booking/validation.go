package create_booking

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/TMP-SchedulingService/internal/domain"
	"github.com/m04kA/TMP-SchedulingService/internal/service/scheduling"
)

// validateTutorProfileID проверяет идентификатор профиля репетитора
// Проверяется первым: порядок ошибок фиксирован, и отсутствие репетитора
// перекрывает любые проблемы слота
func validateTutorProfileID(tutorProfileID string) error {
	if strings.TrimSpace(tutorProfileID) == "" {
		return ErrMissingTutor
	}
	return nil
}

// validateSlot проверяет собранный слот перед построением запроса
// Порядок проверок фиксирован: полнота окна, затем его упорядоченность,
// затем длительность
func validateSlot(slot *domain.TimeSlot) error {
	if slot == nil || !slot.IsComplete() {
		return ErrIncompleteSlot
	}

	if !slot.HasValidWindow() {
		return ErrInvalidWindow
	}

	if slot.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidDuration)
	}

	// Заявленная длительность обязана совпадать с окном слота точно
	if !slot.IsConsistent() {
		return fmt.Errorf("%w: declared %d minutes, window is %d minutes",
			ErrInvalidDuration, slot.DurationMinutes, slot.WindowMinutes())
	}

	return nil
}

// buildBookingRequest собирает проверенный исходящий запрос
// Опциональные поля триммируются; пустые после трима опускаются целиком -
// бронирование только создается, поля никогда не "очищаются" явно
func buildBookingRequest(tutorProfileID string, slot *domain.TimeSlot, extras domain.BookingExtras) *domain.BookingRequest {
	return &domain.BookingRequest{
		TutorProfileID:  strings.TrimSpace(tutorProfileID),
		StartAt:         slot.StartAt,
		EndAt:           slot.EndAt,
		DurationMinutes: slot.DurationMinutes,
		Timezone:        domain.OptionalString(extras.Timezone),
		Topic:           domain.OptionalString(extras.Topic),
		MeetingLink:     domain.OptionalString(extras.MeetingLink),
	}
}

// mapComposeError переводит ошибки композиции слота в ошибки usecase
func mapComposeError(err error) error {
	switch {
	case errors.Is(err, scheduling.ErrMissingDate):
		return ErrMissingDate
	case errors.Is(err, scheduling.ErrMissingTime):
		return ErrMissingTime
	case errors.Is(err, scheduling.ErrInvalidTime):
		return fmt.Errorf("%w: %v", ErrInvalidTime, err)
	case errors.Is(err, scheduling.ErrInvalidDuration):
		return fmt.Errorf("%w: %v", ErrInvalidDuration, err)
	default:
		return fmt.Errorf("%w: failed to compose slot: %v", ErrInternal, err)
	}
}
