package preview_booking

import (
	"time"

	"github.com/m04kA/TMP-SchedulingService/internal/domain"
	"github.com/m04kA/TMP-SchedulingService/pkg/types"
)

// SlotComposer интерфейс композиции временных слотов
type SlotComposer interface {
	ComposeSlot(date time.Time, timeOfDay types.TimeString, durationMinutes int, timezone string) (*domain.TimeSlot, error)
}

// PriceCalculator интерфейс калькулятора стоимости
type PriceCalculator interface {
	QuoteFromString(hourlyRate string, currency string, durationMinutes int) *domain.PriceQuote
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
