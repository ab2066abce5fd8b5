package create_booking

import (
	"context"
	"errors"

	"github.com/m04kA/TMP-SchedulingService/internal/domain"
	"github.com/m04kA/TMP-SchedulingService/internal/integrations/bookingservice"
)

// UseCase use case создания бронирования
//
// Собирает слот, строит проверенный BookingRequest и отправляет его
// в Booking Submission Service. Валидация выполняется до любого сетевого
// вызова (fail fast, возвращается первая ошибка); отказ бэкенда
// возвращается как SubmissionFailedError и никогда не ретраится
type UseCase struct {
	composer SlotComposer
	client   SubmissionClient
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(composer SlotComposer, client SubmissionClient, logger Logger) *UseCase {
	return &UseCase{
		composer: composer,
		client:   client,
		logger:   logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: tutor=%s, date=%s, time=%s, duration=%d",
		req.TutorProfileID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)

	// 1. Идентификатор репетитора проверяется первым - порядок ошибок фиксирован
	if err := validateTutorProfileID(req.TutorProfileID); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Собираем слот из даты, времени начала и длительности
	slot, err := uc.composer.ComposeSlot(req.Date, req.StartTime, req.DurationMinutes, req.Timezone)
	if err != nil {
		uc.logger.Warn("CreateBooking: slot composition failed: %v", err)
		return nil, mapComposeError(err)
	}

	// 3. Проверяем слот и собираем исходящий запрос
	if err := validateSlot(slot); err != nil {
		uc.logger.Warn("CreateBooking: slot validation failed: %v", err)
		return nil, err
	}

	bookingReq := buildBookingRequest(req.TutorProfileID, slot, domain.BookingExtras{
		Timezone:    req.Timezone,
		Topic:       req.Topic,
		MeetingLink: req.MeetingLink,
	})

	// 4. Отправляем в Booking Submission Service - ровно один вызов,
	// без ретраев; пользователь может отправить форму повторно сам
	created, err := uc.client.Submit(ctx, bookingReq)
	if err != nil {
		var submissionErr *bookingservice.SubmissionError
		if errors.As(err, &submissionErr) {
			uc.logger.Warn("CreateBooking: submission rejected: %s", submissionErr.Message)
			return nil, &SubmissionFailedError{Message: submissionErr.Message}
		}

		uc.logger.Error("CreateBooking: submission failed: %v", err)
		return nil, &SubmissionFailedError{Message: "booking could not be created"}
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", created.ID)

	return &Response{
		ID:              created.ID,
		TutorProfileID:  created.TutorProfileID,
		StartAt:         created.StartAt,
		EndAt:           created.EndAt,
		DurationMinutes: created.DurationMinutes,
		Status:          created.Status,
		TotalPrice:      created.TotalPrice,
		Currency:        created.Currency,
		Timezone:        created.Timezone,
		Topic:           created.Topic,
		MeetingLink:     created.MeetingLink,
		CreatedAt:       created.CreatedAt,
	}, nil
}
