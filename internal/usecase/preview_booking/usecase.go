package preview_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/TMP-SchedulingService/internal/domain"
	"github.com/m04kA/TMP-SchedulingService/internal/service/scheduling"
)

// UseCase use case предпросмотра бронирования
//
// Собирает окно сессии и считает справочную цену без отправки в бэкенд -
// этим живет отображение формы бронирования (выбранное окно + цена)
type UseCase struct {
	composer   SlotComposer
	calculator PriceCalculator
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(composer SlotComposer, calculator PriceCalculator, logger Logger) *UseCase {
	return &UseCase{
		composer:   composer,
		calculator: calculator,
		logger:     logger,
	}
}

// Execute выполняет use case предпросмотра
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PreviewBooking: tutor=%s, date=%s, time=%s, duration=%d",
		req.TutorProfileID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)

	if strings.TrimSpace(req.TutorProfileID) == "" {
		uc.logger.Warn("PreviewBooking: missing tutor profile id")
		return nil, ErrMissingTutor
	}

	slot, err := uc.composer.ComposeSlot(req.Date, req.StartTime, req.DurationMinutes, req.Timezone)
	if err != nil {
		uc.logger.Warn("PreviewBooking: slot composition failed: %v", err)
		return nil, mapComposeError(err)
	}

	// Цена справочная: нечисловая ставка деградирует до нуля, предпросмотр
	// не падает из-за кривой ставки в профиле
	quote := uc.calculator.QuoteFromString(req.HourlyRate, req.Currency, slot.DurationMinutes)

	var timezone *string
	if slot.Timezone != "" {
		timezone = &slot.Timezone
	}

	return &Response{
		TutorProfileID:  strings.TrimSpace(req.TutorProfileID),
		StartAt:         slot.StartAt,
		EndAt:           slot.EndAt,
		DurationMinutes: slot.DurationMinutes,
		Timezone:        timezone,
		HourlyRate:      quote.HourlyRate,
		Currency:        quote.Currency,
		TotalPrice:      quote.TotalPrice,
	}, nil
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
