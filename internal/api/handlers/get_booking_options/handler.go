package get_booking_options

import (
	"net/http"

	"github.com/m04kA/TMP-SchedulingService/internal/api/handlers"
)

type Handler struct {
	service SchedulingService
	logger  Logger
}

func NewHandler(service SchedulingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking-options
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	timeOptions := h.service.TimeOfDayOptions()
	durations := h.service.DurationOptions()

	options := make([]string, len(timeOptions))
	for i, t := range timeOptions {
		options[i] = t.String()
	}

	h.logger.Info("GET /booking-options - Returned %d time options, %d durations",
		len(options), len(durations))
	handlers.RespondJSON(w, http.StatusOK, &BookingOptionsResponse{
		TimeOfDayOptions: options,
		DurationOptions:  durations,
	})
}
