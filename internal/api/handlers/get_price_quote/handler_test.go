package get_price_quote

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TMP-SchedulingService/internal/service/pricing"
)

type mockLogger struct{}

func (l *mockLogger) Info(format string, v ...interface{})  {}
func (l *mockLogger) Warn(format string, v ...interface{})  {}
func (l *mockLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, query string) *httptest.ResponseRecorder {
	t.Helper()
	log := &mockLogger{}
	handler := NewHandler(pricing.NewService(log), log)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/price-quote"+query, nil)
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	rec := doRequest(t, "?hourlyRate=25&currency=USD&durationMinutes=90")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp QuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 25.0, resp.HourlyRate)
	assert.Equal(t, "USD", resp.Currency)
	assert.Equal(t, 90, resp.DurationMinutes)
	assert.Equal(t, 37.50, resp.TotalPrice)
}

func TestHandle_MalformedRateDegradesToZero(t *testing.T) {
	rec := doRequest(t, "?hourlyRate=abc&currency=USD&durationMinutes=60")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp QuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Zero(t, resp.TotalPrice)
}

func TestHandle_MissingDuration(t *testing.T) {
	rec := doRequest(t, "?hourlyRate=25&currency=USD")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidDuration(t *testing.T) {
	for _, q := range []string{"?durationMinutes=abc", "?durationMinutes=0", "?durationMinutes=-30"} {
		rec := doRequest(t, q)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "query=%s", q)
	}
}
