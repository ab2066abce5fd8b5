package create_booking

import (
	"time"

	"github.com/m04kA/TMP-SchedulingService/internal/domain"
	createBooking "github.com/m04kA/TMP-SchedulingService/internal/usecase/create_booking"
	"github.com/m04kA/TMP-SchedulingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	TutorProfileID  string `json:"tutorProfileId"`
	Date            string `json:"date"`      // "2025-06-01"
	StartTime       string `json:"startTime"` // "14:30"
	DurationMinutes int    `json:"durationMinutes"`
	Timezone        string `json:"timezone,omitempty"`
	Topic           string `json:"topic,omitempty"`
	MeetingLink     string `json:"meetingLink,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              string  `json:"id"`
	TutorProfileID  string  `json:"tutorProfileId"`
	StartAt         string  `json:"startAt"`
	EndAt           string  `json:"endAt"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	TotalPrice      float64 `json:"totalPrice"`
	Currency        string  `json:"currency"`
	Timezone        *string `json:"timezone,omitempty"`
	Topic           *string `json:"topic,omitempty"`
	MeetingLink     *string `json:"meetingLink,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Дата и время парсятся здесь; отсутствующие значения передаются нулевыми,
// их отсутствие валидирует use case (с пофилдовыми ошибками)
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	var date time.Time
	if r.Date != "" {
		parsed, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, err
		}
		date = parsed
	}

	return &createBooking.Request{
		TutorProfileID:  r.TutorProfileID,
		Date:            date,
		StartTime:       types.TimeString(r.StartTime),
		DurationMinutes: r.DurationMinutes,
		Timezone:        r.Timezone,
		Topic:           r.Topic,
		MeetingLink:     r.MeetingLink,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		TutorProfileID:  resp.TutorProfileID,
		StartAt:         resp.StartAt,
		EndAt:           resp.EndAt,
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		TotalPrice:      resp.TotalPrice,
		Currency:        resp.Currency,
		Timezone:        resp.Timezone,
		Topic:           resp.Topic,
		MeetingLink:     resp.MeetingLink,
		CreatedAt:       resp.CreatedAt,
	}
}
