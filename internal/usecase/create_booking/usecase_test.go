package create_booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TMP-SchedulingService/internal/domain"
	"github.com/m04kA/TMP-SchedulingService/internal/integrations/bookingservice"
	"github.com/m04kA/TMP-SchedulingService/internal/service/scheduling"
)

type mockLogger struct{}

func (l *mockLogger) Info(format string, v ...interface{})  {}
func (l *mockLogger) Warn(format string, v ...interface{})  {}
func (l *mockLogger) Error(format string, v ...interface{}) {}

// mockSubmissionClient записывает отправленные запросы и возвращает
// заранее заданный результат
type mockSubmissionClient struct {
	submitted []*domain.BookingRequest
	booking   *bookingservice.Booking
	err       error
}

func (m *mockSubmissionClient) Submit(ctx context.Context, booking *domain.BookingRequest) (*bookingservice.Booking, error) {
	m.submitted = append(m.submitted, booking)
	if m.err != nil {
		return nil, m.err
	}
	return m.booking, nil
}

func newTestUseCase(client *mockSubmissionClient) *UseCase {
	log := &mockLogger{}
	return NewUseCase(scheduling.NewService(log), client, log)
}

func validRequest() *Request {
	return &Request{
		TutorProfileID:  "tutor-42",
		Date:            time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		StartTime:       "14:30",
		DurationMinutes: 60,
		Timezone:        "Europe/Berlin",
		Topic:           "Linear algebra",
		MeetingLink:     "https://meet.example.com/abc",
	}
}

func confirmedBooking() *bookingservice.Booking {
	tz := "Europe/Berlin"
	topic := "Linear algebra"
	link := "https://meet.example.com/abc"
	return &bookingservice.Booking{
		ID:              "bk-1001",
		TutorProfileID:  "tutor-42",
		StartAt:         "2025-06-01T14:30:00Z",
		EndAt:           "2025-06-01T15:30:00Z",
		DurationMinutes: 60,
		Status:          "pending",
		TotalPrice:      25,
		Currency:        "USD",
		Timezone:        &tz,
		Topic:           &topic,
		MeetingLink:     &link,
		CreatedAt:       "2025-05-20T10:00:00Z",
	}
}

func TestExecute_Success(t *testing.T) {
	client := &mockSubmissionClient{booking: confirmedBooking()}
	uc := newTestUseCase(client)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "bk-1001", resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, 25.0, resp.TotalPrice)

	// Проверяем собранный исходящий запрос
	require.Len(t, client.submitted, 1)
	sent := client.submitted[0]
	assert.Equal(t, "tutor-42", sent.TutorProfileID)
	assert.Equal(t, time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC), sent.StartAt)
	assert.Equal(t, time.Date(2025, 6, 1, 15, 30, 0, 0, time.UTC), sent.EndAt)
	assert.Equal(t, 60, sent.DurationMinutes)
	require.NotNil(t, sent.Timezone)
	assert.Equal(t, "Europe/Berlin", *sent.Timezone)
	require.NotNil(t, sent.Topic)
	assert.Equal(t, "Linear algebra", *sent.Topic)
}

func TestExecute_MissingTutorTakesPrecedence(t *testing.T) {
	// Отсутствие репетитора перекрывает любые проблемы слота:
	// даже с полностью пустым запросом возвращается именно ErrMissingTutor
	client := &mockSubmissionClient{}
	uc := newTestUseCase(client)

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrMissingTutor)
	assert.Empty(t, client.submitted)

	_, err = uc.Execute(context.Background(), &Request{TutorProfileID: "   "})
	assert.ErrorIs(t, err, ErrMissingTutor)
	assert.Empty(t, client.submitted)
}

func TestExecute_ComposeErrors(t *testing.T) {
	client := &mockSubmissionClient{}
	uc := newTestUseCase(client)

	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{name: "missing date", mutate: func(r *Request) { r.Date = time.Time{} }, wantErr: ErrMissingDate},
		{name: "missing time", mutate: func(r *Request) { r.StartTime = "" }, wantErr: ErrMissingTime},
		{name: "malformed time", mutate: func(r *Request) { r.StartTime = "99:99" }, wantErr: ErrInvalidTime},
		{name: "off grid time", mutate: func(r *Request) { r.StartTime = "14:37" }, wantErr: ErrInvalidTime},
		{name: "bad duration", mutate: func(r *Request) { r.DurationMinutes = 17 }, wantErr: ErrInvalidDuration},
		{name: "zero duration", mutate: func(r *Request) { r.DurationMinutes = 0 }, wantErr: ErrInvalidDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// Валидация отсекает запрос до сетевого вызова
	assert.Empty(t, client.submitted)
}

func TestExecute_OmitsBlankOptionalFields(t *testing.T) {
	client := &mockSubmissionClient{booking: confirmedBooking()}
	uc := newTestUseCase(client)

	req := validRequest()
	req.Timezone = ""
	req.Topic = "   "
	req.MeetingLink = ""

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, client.submitted, 1)
	sent := client.submitted[0]
	assert.Nil(t, sent.Timezone)
	assert.Nil(t, sent.Topic)
	assert.Nil(t, sent.MeetingLink)
}

func TestExecute_SubmissionRejected(t *testing.T) {
	client := &mockSubmissionClient{
		err: &bookingservice.SubmissionError{StatusCode: 409, Message: "tutor is not available at this time"},
	}
	uc := newTestUseCase(client)

	_, err := uc.Execute(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSubmissionFailed)

	// Сообщение бэкенда сохраняется для показа пользователю
	var submissionErr *SubmissionFailedError
	require.ErrorAs(t, err, &submissionErr)
	assert.Equal(t, "tutor is not available at this time", submissionErr.Message)
}

func TestExecute_SubmissionInternalError(t *testing.T) {
	client := &mockSubmissionClient{
		err: fmt.Errorf("%w: connection refused", bookingservice.ErrInternal),
	}
	uc := newTestUseCase(client)

	_, err := uc.Execute(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSubmissionFailed)

	var submissionErr *SubmissionFailedError
	require.ErrorAs(t, err, &submissionErr)
	assert.Equal(t, "booking could not be created", submissionErr.Message)
}

func TestExecute_BuildsIdenticalRequests(t *testing.T) {
	// Повторный вызов с теми же входными данными собирает структурно
	// идентичный запрос - скрытого недетерминизма нет
	client := &mockSubmissionClient{booking: confirmedBooking()}
	uc := newTestUseCase(client)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, client.submitted, 2)
	assert.Equal(t, client.submitted[0], client.submitted[1])
}

func TestExecute_SubmissionErrorIsNotRetried(t *testing.T) {
	client := &mockSubmissionClient{
		err: &bookingservice.SubmissionError{Message: "rejected"},
	}
	uc := newTestUseCase(client)

	_, err := uc.Execute(context.Background(), validRequest())
	require.Error(t, err)

	// Ровно один исходящий вызов на попытку отправки
	assert.Len(t, client.submitted, 1)
	assert.False(t, errors.Is(err, ErrInternal))
}
