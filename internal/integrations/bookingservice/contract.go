package bookingservice

import (
	"context"
	"time"
)

// CredentialProvider поставляет учетные данные для запросов к Booking Submission Service
// Сами учетные данные непрозрачны для клиента - он только переносит их в заголовок
type CredentialProvider interface {
	// AuthHeader возвращает значение заголовка Authorization
	// Второе значение false, если учетных данных нет
	AuthHeader(ctx context.Context) (string, bool)
}

// MetricsCollector интерфейс для сбора метрик исходящих запросов
type MetricsCollector interface {
	ObserveUpstream(target, outcome string, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
