package preview_booking

import (
	"time"

	"github.com/m04kA/TMP-SchedulingService/pkg/types"
)

// Request модель запроса на предпросмотр бронирования
type Request struct {
	TutorProfileID  string           // ID профиля репетитора
	Date            time.Time        // Дата сессии (без времени)
	StartTime       types.TimeString // Время начала (например, "14:30")
	DurationMinutes int              // Длительность в минутах
	Timezone        string           // IANA таймзона (опционально)
	HourlyRate      string           // Часовая ставка репетитора (строка из профиля)
	Currency        string           // Валюта ставки
}

// Response модель ответа с окном сессии и справочной ценой
// Цена исключительно для отображения: в запрос на создание бронирования
// она не попадает
type Response struct {
	TutorProfileID  string    // ID профиля репетитора
	StartAt         time.Time // Начало сессии
	EndAt           time.Time // Конец сессии
	DurationMinutes int       // Длительность в минутах
	Timezone        *string   // Таймзона (если была указана)
	HourlyRate      float64   // Часовая ставка после разбора
	Currency        string    // Валюта
	TotalPrice      float64   // Справочная итоговая цена
}
