package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/TMP-SchedulingService/internal/domain"
	"github.com/m04kA/TMP-SchedulingService/internal/integrations/bookingservice"
	"github.com/m04kA/TMP-SchedulingService/pkg/types"
)

// SlotComposer интерфейс композиции временных слотов
type SlotComposer interface {
	ComposeSlot(date time.Time, timeOfDay types.TimeString, durationMinutes int, timezone string) (*domain.TimeSlot, error)
}

// SubmissionClient интерфейс клиента Booking Submission Service
type SubmissionClient interface {
	Submit(ctx context.Context, booking *domain.BookingRequest) (*bookingservice.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
