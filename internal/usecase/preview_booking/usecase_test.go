package preview_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TMP-SchedulingService/internal/service/pricing"
	"github.com/m04kA/TMP-SchedulingService/internal/service/scheduling"
)

type mockLogger struct{}

func (l *mockLogger) Info(format string, v ...interface{})  {}
func (l *mockLogger) Warn(format string, v ...interface{})  {}
func (l *mockLogger) Error(format string, v ...interface{}) {}

func newTestUseCase() *UseCase {
	log := &mockLogger{}
	return NewUseCase(scheduling.NewService(log), pricing.NewService(log), log)
}

func validRequest() *Request {
	return &Request{
		TutorProfileID:  "tutor-42",
		Date:            time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		StartTime:       "14:30",
		DurationMinutes: 90,
		Timezone:        "Europe/Berlin",
		HourlyRate:      "25.00",
		Currency:        "USD",
	}
}

func TestExecute_Success(t *testing.T) {
	uc := newTestUseCase()

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "tutor-42", resp.TutorProfileID)
	assert.Equal(t, time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC), resp.StartAt)
	assert.Equal(t, time.Date(2025, 6, 1, 16, 0, 0, 0, time.UTC), resp.EndAt)
	assert.Equal(t, 90, resp.DurationMinutes)
	require.NotNil(t, resp.Timezone)
	assert.Equal(t, "Europe/Berlin", *resp.Timezone)
	assert.Equal(t, 25.0, resp.HourlyRate)
	assert.Equal(t, 37.50, resp.TotalPrice)
	assert.Equal(t, "USD", resp.Currency)
}

func TestExecute_MissingTutor(t *testing.T) {
	uc := newTestUseCase()

	req := validRequest()
	req.TutorProfileID = "   "

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrMissingTutor)
}

func TestExecute_ComposeErrors(t *testing.T) {
	uc := newTestUseCase()

	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{name: "missing date", mutate: func(r *Request) { r.Date = time.Time{} }, wantErr: ErrMissingDate},
		{name: "missing time", mutate: func(r *Request) { r.StartTime = "" }, wantErr: ErrMissingTime},
		{name: "off grid time", mutate: func(r *Request) { r.StartTime = "14:31" }, wantErr: ErrInvalidTime},
		{name: "bad duration", mutate: func(r *Request) { r.DurationMinutes = 25 }, wantErr: ErrInvalidDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_MalformedRateDegradesToZero(t *testing.T) {
	// Кривая ставка в профиле не валит предпросмотр: окно считается,
	// цена деградирует до нуля
	uc := newTestUseCase()

	req := validRequest()
	req.HourlyRate = "not-a-number"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Zero(t, resp.HourlyRate)
	assert.Zero(t, resp.TotalPrice)
	assert.Equal(t, 90, resp.DurationMinutes)
}

func TestExecute_EmptyTimezoneOmitted(t *testing.T) {
	uc := newTestUseCase()

	req := validRequest()
	req.Timezone = ""

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, resp.Timezone)
}
