package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TMP-SchedulingService/internal/domain"
	"github.com/m04kA/TMP-SchedulingService/pkg/types"
)

type mockLogger struct{}

func (l *mockLogger) Info(format string, v ...interface{})  {}
func (l *mockLogger) Warn(format string, v ...interface{})  {}
func (l *mockLogger) Error(format string, v ...interface{}) {}

func newTestService() *Service {
	return NewService(&mockLogger{})
}

func TestComposeSlot(t *testing.T) {
	svc := newTestService()
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	slot, err := svc.ComposeSlot(date, "14:30", 60, "Europe/Berlin")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC), slot.StartAt)
	assert.Equal(t, time.Date(2025, 6, 1, 15, 30, 0, 0, time.UTC), slot.EndAt)
	assert.Equal(t, 60, slot.DurationMinutes)
	assert.Equal(t, "Europe/Berlin", slot.Timezone)
	assert.True(t, slot.IsConsistent())
}

func TestComposeSlot_WindowDerivation(t *testing.T) {
	// Для любой комбинации даты, времени и допустимой длительности
	// окно слота ровно равно длительности
	svc := newTestService()
	dates := []time.Time{
		time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
	}
	times := []types.TimeString{"00:00", "08:15", "14:30", "21:45"}

	for _, date := range dates {
		for _, tod := range times {
			for _, duration := range domain.AllowedDurations {
				slot, err := svc.ComposeSlot(date, tod, duration, "")
				require.NoError(t, err)
				assert.Equal(t, time.Duration(duration)*time.Minute, slot.EndAt.Sub(slot.StartAt))
				assert.True(t, slot.EndAt.After(slot.StartAt))
			}
		}
	}
}

func TestComposeSlot_ValidationErrors(t *testing.T) {
	svc := newTestService()
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		date     time.Time
		timeOfDay types.TimeString
		duration int
		wantErr  error
	}{
		{name: "missing date", date: time.Time{}, timeOfDay: "10:00", duration: 60, wantErr: ErrMissingDate},
		{name: "missing time", date: date, timeOfDay: "", duration: 60, wantErr: ErrMissingTime},
		{name: "malformed time", date: date, timeOfDay: "25:99", duration: 60, wantErr: ErrInvalidTime},
		{name: "off grid time", date: date, timeOfDay: "10:07", duration: 60, wantErr: ErrInvalidTime},
		{name: "zero duration", date: date, timeOfDay: "10:00", duration: 0, wantErr: ErrInvalidDuration},
		{name: "negative duration", date: date, timeOfDay: "10:00", duration: -30, wantErr: ErrInvalidDuration},
		{name: "duration outside allowed set", date: date, timeOfDay: "10:00", duration: 50, wantErr: ErrInvalidDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ComposeSlot(tt.date, tt.timeOfDay, tt.duration, "")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestComposeSlot_MissingDateTakesPrecedence(t *testing.T) {
	// Порядок ошибок фиксирован: дата проверяется раньше времени и длительности
	svc := newTestService()

	_, err := svc.ComposeSlot(time.Time{}, "", -1, "")
	assert.ErrorIs(t, err, ErrMissingDate)
}

func TestComposeSlot_TrimsTimezone(t *testing.T) {
	svc := newTestService()
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	slot, err := svc.ComposeSlot(date, "10:00", 30, "  Europe/Berlin  ")
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", slot.Timezone)
}

func TestComposeSlot_PreservesDateLocation(t *testing.T) {
	// Инстанты строятся в зоне переданной даты - перепроецирование не выполняется
	svc := newTestService()
	loc := time.FixedZone("UTC+3", 3*60*60)
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, loc)

	slot, err := svc.ComposeSlot(date, "14:30", 60, "Europe/Moscow")
	require.NoError(t, err)
	assert.Equal(t, loc, slot.StartAt.Location())
	assert.Equal(t, 14, slot.StartAt.Hour())
	assert.Equal(t, 30, slot.StartAt.Minute())
}

func TestTimeOfDayOptions(t *testing.T) {
	svc := newTestService()

	options := svc.TimeOfDayOptions()
	require.Len(t, options, 96) // 24 часа * 4 слота в час

	assert.Equal(t, types.TimeString("00:00"), options[0])
	assert.Equal(t, types.TimeString("00:15"), options[1])
	assert.Equal(t, types.TimeString("23:45"), options[95])

	// Все опции валидны и лежат на 15-минутной сетке
	for _, opt := range options {
		require.NoError(t, opt.Validate())
		assert.Zero(t, opt.Minute()%domain.TimeOfDayStepMinutes)
	}
}

func TestDurationOptions(t *testing.T) {
	svc := newTestService()

	options := svc.DurationOptions()
	assert.Equal(t, domain.AllowedDurations, options)

	// Возвращается копия - мутация результата не трогает доменный набор
	options[0] = 999
	assert.Equal(t, 30, domain.AllowedDurations[0])
}
