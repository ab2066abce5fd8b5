package get_price_quote

import (
	"net/http"
	"strconv"

	"github.com/m04kA/TMP-SchedulingService/internal/api/handlers"
)

const (
	msgMissingDuration = "параметр durationMinutes обязателен"
	msgInvalidDuration = "некорректное значение durationMinutes"
)

type Handler struct {
	calculator PriceCalculator
	logger     Logger
}

func NewHandler(calculator PriceCalculator, logger Logger) *Handler {
	return &Handler{
		calculator: calculator,
		logger:     logger,
	}
}

// Handle GET /api/v1/price-quote
// Query params: hourlyRate, currency, durationMinutes (required, > 0)
//
// Нечисловая ставка не является ошибкой - расчет деградирует до нулевой
// стоимости, как и отображение цены в форме бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	durationStr := r.URL.Query().Get("durationMinutes")
	if durationStr == "" {
		h.logger.Warn("GET /price-quote - Missing durationMinutes")
		handlers.RespondBadRequest(w, msgMissingDuration)
		return
	}

	duration, err := strconv.Atoi(durationStr)
	if err != nil || duration <= 0 {
		h.logger.Warn("GET /price-quote - Invalid durationMinutes: %q", durationStr)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	hourlyRate := r.URL.Query().Get("hourlyRate")
	currency := r.URL.Query().Get("currency")

	quote := h.calculator.QuoteFromString(hourlyRate, currency, duration)

	h.logger.Info("GET /price-quote - Quote computed: rate=%q, duration=%d, total=%.2f %s",
		hourlyRate, duration, quote.TotalPrice, quote.Currency)
	handlers.RespondJSON(w, http.StatusOK, FromDomainQuote(quote))
}
