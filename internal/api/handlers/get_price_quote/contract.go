package get_price_quote

import (
	"github.com/m04kA/TMP-SchedulingService/internal/domain"
)

type PriceCalculator interface {
	QuoteFromString(hourlyRate string, currency string, durationMinutes int) *domain.PriceQuote
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
