package preview_booking

import (
	"time"

	"github.com/m04kA/TMP-SchedulingService/internal/domain"
	previewBooking "github.com/m04kA/TMP-SchedulingService/internal/usecase/preview_booking"
	"github.com/m04kA/TMP-SchedulingService/pkg/types"
)

// PreviewBookingRequest HTTP request model
type PreviewBookingRequest struct {
	TutorProfileID  string `json:"tutorProfileId"`
	Date            string `json:"date"`      // "2025-06-01"
	StartTime       string `json:"startTime"` // "14:30"
	DurationMinutes int    `json:"durationMinutes"`
	Timezone        string `json:"timezone,omitempty"`
	HourlyRate      string `json:"hourlyRate"` // строка из профиля репетитора
	Currency        string `json:"currency"`
}

// PreviewResponse HTTP response model
// totalPrice справочная и в запрос на создание бронирования не попадает
type PreviewResponse struct {
	TutorProfileID  string  `json:"tutorProfileId"`
	StartAt         string  `json:"startAt"`
	EndAt           string  `json:"endAt"`
	DurationMinutes int     `json:"durationMinutes"`
	Timezone        *string `json:"timezone,omitempty"`
	HourlyRate      float64 `json:"hourlyRate"`
	Currency        string  `json:"currency"`
	TotalPrice      float64 `json:"totalPrice"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *PreviewBookingRequest) ToUseCaseRequest() (*previewBooking.Request, error) {
	var date time.Time
	if r.Date != "" {
		parsed, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, err
		}
		date = parsed
	}

	return &previewBooking.Request{
		TutorProfileID:  r.TutorProfileID,
		Date:            date,
		StartTime:       types.TimeString(r.StartTime),
		DurationMinutes: r.DurationMinutes,
		Timezone:        r.Timezone,
		HourlyRate:      r.HourlyRate,
		Currency:        r.Currency,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *previewBooking.Response) *PreviewResponse {
	return &PreviewResponse{
		TutorProfileID:  resp.TutorProfileID,
		StartAt:         resp.StartAt.UTC().Format(time.RFC3339),
		EndAt:           resp.EndAt.UTC().Format(time.RFC3339),
		DurationMinutes: resp.DurationMinutes,
		Timezone:        resp.Timezone,
		HourlyRate:      resp.HourlyRate,
		Currency:        resp.Currency,
		TotalPrice:      resp.TotalPrice,
	}
}
