package pricing

import (
	"math"
	"strconv"
	"strings"

	"github.com/m04kA/TMP-SchedulingService/internal/domain"
)

// Service калькулятор стоимости сессии
//
// Расчет чисто справочный: итоговая цена показывается пользователю, но
// никогда не отправляется в бэкенд бронирований - он пересчитывает цену сам
// и является единственным источником истины
type Service struct {
	logger Logger
}

// NewService создает новый экземпляр калькулятора стоимости
func NewService(logger Logger) *Service {
	return &Service{logger: logger}
}

// Quote вычисляет стоимость сессии по часовой ставке и длительности
//
// totalPrice = round2(hourlyRate * durationMinutes / 60), округление half-up
// Отрицательная ставка - ошибка вызывающей стороны: ставка прижимается к нулю,
// калькулятор никогда не возвращает ошибку
func (s *Service) Quote(hourlyRate float64, currency string, durationMinutes int) *domain.PriceQuote {
	if hourlyRate < 0 || math.IsNaN(hourlyRate) || math.IsInf(hourlyRate, 0) {
		s.logger.Warn("Quote: invalid hourly rate %v clamped to 0", hourlyRate)
		hourlyRate = 0
	}

	total := 0.0
	if durationMinutes > 0 {
		total = domain.Round2(hourlyRate * float64(durationMinutes) / 60)
	}

	return &domain.PriceQuote{
		HourlyRate:      hourlyRate,
		Currency:        currency,
		DurationMinutes: durationMinutes,
		TotalPrice:      total,
	}
}

// QuoteFromString вычисляет стоимость по строковому представлению ставки
//
// Нечисловая ставка деградирует до нулевой стоимости вместо ошибки: цена
// показывается только для справки и не должна блокировать форму бронирования
func (s *Service) QuoteFromString(hourlyRate string, currency string, durationMinutes int) *domain.PriceQuote {
	rate, err := strconv.ParseFloat(strings.TrimSpace(hourlyRate), 64)
	if err != nil {
		s.logger.Warn("QuoteFromString: unparsable hourly rate %q, degrading to 0", hourlyRate)
		rate = 0
	}

	return s.Quote(rate, currency, durationMinutes)
}
