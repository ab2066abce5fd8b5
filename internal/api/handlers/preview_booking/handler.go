package preview_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/TMP-SchedulingService/internal/api/handlers"
	previewBooking "github.com/m04kA/TMP-SchedulingService/internal/usecase/preview_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingTutor       = "идентификатор репетитора обязателен"
	msgMissingDate        = "дата сессии обязательна"
	msgMissingTime        = "время начала обязательно"
	msgInvalidTime        = "некорректное время начала, ожидается HH:MM с шагом 15 минут"
	msgInvalidDuration    = "некорректная длительность сессии"
)

type Handler struct {
	useCase PreviewBookingUseCase
	logger  Logger
}

func NewHandler(useCase PreviewBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/preview
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PreviewBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/preview - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings/preview - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, previewBooking.ErrMissingTutor):
			h.logger.Warn("POST /bookings/preview - Missing tutor profile id")
			handlers.RespondBadRequest(w, msgMissingTutor)

		case errors.Is(err, previewBooking.ErrMissingDate):
			h.logger.Warn("POST /bookings/preview - Missing date: tutor=%s", req.TutorProfileID)
			handlers.RespondBadRequest(w, msgMissingDate)

		case errors.Is(err, previewBooking.ErrMissingTime):
			h.logger.Warn("POST /bookings/preview - Missing start time: tutor=%s", req.TutorProfileID)
			handlers.RespondBadRequest(w, msgMissingTime)

		case errors.Is(err, previewBooking.ErrInvalidTime):
			h.logger.Warn("POST /bookings/preview - Invalid start time: tutor=%s, time=%s", req.TutorProfileID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, previewBooking.ErrInvalidDuration):
			h.logger.Warn("POST /bookings/preview - Invalid duration: tutor=%s, duration=%d", req.TutorProfileID, req.DurationMinutes)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		default:
			h.logger.Error("POST /bookings/preview - Failed to build preview: tutor=%s, error=%v",
				req.TutorProfileID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings/preview - Preview built: tutor=%s, start=%s, total=%.2f %s",
		req.TutorProfileID, response.StartAt, response.TotalPrice, response.Currency)
	handlers.RespondJSON(w, http.StatusOK, response)
}
