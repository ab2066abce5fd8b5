package get_price_quote

import (
	"github.com/m04kA/TMP-SchedulingService/internal/domain"
)

// QuoteResponse HTTP response model
type QuoteResponse struct {
	HourlyRate      float64 `json:"hourlyRate"`
	Currency        string  `json:"currency"`
	DurationMinutes int     `json:"durationMinutes"`
	TotalPrice      float64 `json:"totalPrice"`
}

// FromDomainQuote конвертирует доменную модель в HTTP response
func FromDomainQuote(quote *domain.PriceQuote) *QuoteResponse {
	return &QuoteResponse{
		HourlyRate:      quote.HourlyRate,
		Currency:        quote.Currency,
		DurationMinutes: quote.DurationMinutes,
		TotalPrice:      quote.TotalPrice,
	}
}
