package bookingservice

import (
	"time"

	"github.com/m04kA/TMP-SchedulingService/internal/domain"
)

// submitRequest проводная модель запроса на создание бронирования
// Инстанты сериализуются строками ISO-8601, нормализованными к UTC
type submitRequest struct {
	TutorProfileID  string  `json:"tutorProfileId"`
	StartAt         string  `json:"startAt"`
	EndAt           string  `json:"endAt"`
	DurationMinutes int     `json:"durationMinutes"`
	Timezone        *string `json:"timezone,omitempty"`
	Topic           *string `json:"topic,omitempty"`
	MeetingLink     *string `json:"meetingLink,omitempty"`
}

// newSubmitRequest конвертирует доменную модель в проводную
func newSubmitRequest(req *domain.BookingRequest) *submitRequest {
	return &submitRequest{
		TutorProfileID:  req.TutorProfileID,
		StartAt:         req.StartAt.UTC().Format(time.RFC3339),
		EndAt:           req.EndAt.UTC().Format(time.RFC3339),
		DurationMinutes: req.DurationMinutes,
		Timezone:        req.Timezone,
		Topic:           req.Topic,
		MeetingLink:     req.MeetingLink,
	}
}

// envelope обертка ответа Booking Submission Service
// Поля необязательные - бэкенд не гарантирует строгую форму ответа,
// поэтому каждое поле проверяется перед использованием
type envelope struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Data    *Booking `json:"data,omitempty"`
}

// Booking созданное бронирование в представлении бэкенда
// Цена в ответе авторитетна: бэкенд пересчитывает ее сам
type Booking struct {
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
