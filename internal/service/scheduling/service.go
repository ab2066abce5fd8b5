package scheduling

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/TMP-SchedulingService/internal/domain"
	"github.com/m04kA/TMP-SchedulingService/pkg/types"
)

// Service сервис композиции временных слотов
// Собирает календарную дату, время начала и длительность в конкретное окно сессии
type Service struct {
	logger Logger
}

// NewService создает новый экземпляр сервиса композиции слотов
func NewService(logger Logger) *Service {
	return &Service{logger: logger}
}

// ComposeSlot собирает дату, время начала и длительность в TimeSlot
//
// Инстанты строятся в часовом поясе переданной даты, без перепроецирования:
// timezone сохраняется в слоте только как метаданные (так ведет себя и
// клиентская форма бронирования - она не пересчитывает время между зонами)
//
// Ошибки возвращаются значениями, чтобы вызывающая сторона могла отдать
// пофилдовую обратную связь по форме
func (s *Service) ComposeSlot(date time.Time, timeOfDay types.TimeString, durationMinutes int, timezone string) (*domain.TimeSlot, error) {
	if date.IsZero() {
		return nil, ErrMissingDate
	}

	if timeOfDay.IsZero() {
		return nil, ErrMissingTime
	}

	if err := timeOfDay.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}

	// Время начала должно попадать на 15-минутную сетку пикера
	if timeOfDay.Minute()%domain.TimeOfDayStepMinutes != 0 {
		s.logger.Warn("ComposeSlot: start time %s is off the %d-minute grid", timeOfDay, domain.TimeOfDayStepMinutes)
		return nil, fmt.Errorf("%w: %s is not on a %d-minute boundary",
			ErrInvalidTime, timeOfDay, domain.TimeOfDayStepMinutes)
	}

	if durationMinutes <= 0 || !domain.IsAllowedDuration(durationMinutes) {
		s.logger.Warn("ComposeSlot: duration %d is not in the allowed set", durationMinutes)
		return nil, fmt.Errorf("%w: %d minutes is not an allowed duration", ErrInvalidDuration, durationMinutes)
	}

	startAt := time.Date(
		date.Year(), date.Month(), date.Day(),
		timeOfDay.Hour(), timeOfDay.Minute(), 0, 0,
		date.Location(),
	)
	endAt := startAt.Add(time.Duration(durationMinutes) * time.Minute)

	return &domain.TimeSlot{
		StartAt:         startAt,
		EndAt:           endAt,
		DurationMinutes: durationMinutes,
		Timezone:        strings.TrimSpace(timezone),
	}, nil
}

// TimeOfDayOptions возвращает полный набор вариантов времени начала сессии
// Сетка покрывает все сутки с шагом TimeOfDayStepMinutes (00:00 ... 23:45)
func (s *Service) TimeOfDayOptions() []types.TimeString {
	options := make([]types.TimeString, 0, domain.MinutesPerDay/domain.TimeOfDayStepMinutes)

	for minutes := 0; minutes < domain.MinutesPerDay; minutes += domain.TimeOfDayStepMinutes {
		options = append(options, types.TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)))
	}

	return options
}

// DurationOptions возвращает допустимые длительности сессии в минутах
func (s *Service) DurationOptions() []int {
	options := make([]int, len(domain.AllowedDurations))
	copy(options, domain.AllowedDurations)
	return options
}
