package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/TMP-SchedulingService/internal/api/handlers"
	createBooking "github.com/m04kA/TMP-SchedulingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingTutor       = "идентификатор репетитора обязателен"
	msgMissingDate        = "дата сессии обязательна"
	msgMissingTime        = "время начала обязательно"
	msgInvalidTime        = "некорректное время начала, ожидается HH:MM с шагом 15 минут"
	msgInvalidDuration    = "некорректная длительность сессии"
	msgIncompleteSlot     = "временной слот собран не полностью"
	msgInvalidWindow      = "некорректное временное окно сессии"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Отказ бэкенда: сообщение показывается пользователю дословно,
		// форма остается заполненной и может быть отправлена повторно
		var submissionErr *createBooking.SubmissionFailedError
		if errors.As(err, &submissionErr) {
			h.logger.Warn("POST /bookings - Submission failed: tutor=%s, message=%s",
				req.TutorProfileID, submissionErr.Message)
			handlers.RespondError(w, http.StatusBadGateway, submissionErr.Message)
			return
		}

		switch {
		case errors.Is(err, createBooking.ErrMissingTutor):
			h.logger.Warn("POST /bookings - Missing tutor profile id")
			handlers.RespondBadRequest(w, msgMissingTutor)

		case errors.Is(err, createBooking.ErrMissingDate):
			h.logger.Warn("POST /bookings - Missing date: tutor=%s", req.TutorProfileID)
			handlers.RespondBadRequest(w, msgMissingDate)

		case errors.Is(err, createBooking.ErrMissingTime):
			h.logger.Warn("POST /bookings - Missing start time: tutor=%s", req.TutorProfileID)
			handlers.RespondBadRequest(w, msgMissingTime)

		case errors.Is(err, createBooking.ErrInvalidTime):
			h.logger.Warn("POST /bookings - Invalid start time: tutor=%s, time=%s", req.TutorProfileID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, createBooking.ErrInvalidDuration):
			h.logger.Warn("POST /bookings - Invalid duration: tutor=%s, duration=%d", req.TutorProfileID, req.DurationMinutes)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, createBooking.ErrIncompleteSlot):
			h.logger.Warn("POST /bookings - Incomplete slot: tutor=%s", req.TutorProfileID)
			handlers.RespondBadRequest(w, msgIncompleteSlot)

		case errors.Is(err, createBooking.ErrInvalidWindow):
			h.logger.Warn("POST /bookings - Invalid window: tutor=%s", req.TutorProfileID)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: tutor=%s, error=%v",
				req.TutorProfileID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, tutor=%s",
		result.ID, req.TutorProfileID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
