package create_booking

import (
	"time"

	"github.com/m04kA/TMP-SchedulingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	TutorProfileID  string           // ID профиля репетитора
	Date            time.Time        // Дата сессии (без времени)
	StartTime       types.TimeString // Время начала (например, "14:30")
	DurationMinutes int              // Длительность в минутах
	Timezone        string           // IANA таймзона (опционально)
	Topic           string           // Тема сессии (опционально)
	MeetingLink     string           // Ссылка на встречу (опционально)
}

// Response модель ответа с созданным бронированием
// Временные метки и цена передаются дословно из ответа бэкенда:
// он является источником истины по статусу и стоимости
type Response struct {
	ID              string  // ID созданного бронирования
	TutorProfileID  string  // ID профиля репетитора
	StartAt         string  // Начало сессии (ISO-8601)
	EndAt           string  // Конец сессии (ISO-8601)
	DurationMinutes int     // Длительность в минутах
	Status          string  // Статус бронирования (присваивается бэкендом)
	TotalPrice      float64 // Итоговая цена (авторитетная, от бэкенда)
	Currency        string  // Валюта цены
	Timezone        *string // Таймзона (если была указана)
	Topic           *string // Тема (если была указана)
	MeetingLink     *string // Ссылка на встречу (если была указана)
	CreatedAt       string  // Время создания (ISO-8601)
}
