package bookingservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/TMP-SchedulingService/internal/domain"
)

const metricsTarget = "booking_service"

// Client клиент для работы с Booking Submission Service
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      CredentialProvider
	metrics    MetricsCollector
	log        Logger
}

// NewClient создает новый экземпляр клиента Booking Submission Service
// Таймаут задается явно: зависший бэкенд не должен держать запрос бесконечно
// metrics может быть nil, если сбор метрик выключен
func NewClient(baseURL string, timeout time.Duration, creds CredentialProvider, metrics MetricsCollector, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		creds:   creds,
		metrics: metrics,
		log:     log,
	}
}

// Submit отправляет бронирование в Booking Submission Service
//
// Один вызов - ровно один исходящий запрос: никаких ретраев, бэкенд
// не обещает идемпотентность. Любой отказ (success=false, не-2xx, сетевая
// ошибка, неразбираемый ответ) возвращается как *SubmissionError
// с сообщением бэкенда, когда оно есть
func (c *Client) Submit(ctx context.Context, booking *domain.BookingRequest) (*Booking, error) {
	url := fmt.Sprintf("%s/api/bookings", c.baseURL)

	body, err := json.Marshal(newSubmitRequest(booking))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	// Учетные данные непрозрачны - просто переносим их в заголовок
	if c.creds != nil {
		if auth, ok := c.creds.AuthHeader(ctx); ok {
			req.Header.Set("Authorization", auth)
		}
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe("error", started)
		c.log.Error("Submit: request to booking service failed: %v", err)
		return nil, &SubmissionError{Message: genericFailureMessage}
	}
	defer resp.Body.Close()

	// Тело читается целиком, чтобы сообщение об ошибке
	// было доступно и для не-2xx статусов
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe("error", started)
		return nil, &SubmissionError{StatusCode: resp.StatusCode, Message: genericFailureMessage}
	}

	var env envelope
	parseErr := json.Unmarshal(raw, &env)

	// Не-2xx статус и success=false обрабатываются одинаково:
	// отказ с сообщением бэкенда, если оно есть
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.observe("failure", started)
		c.log.Warn("Submit: booking service returned status %d", resp.StatusCode)
		return nil, &SubmissionError{StatusCode: resp.StatusCode, Message: failureMessage(&env, parseErr)}
	}

	if parseErr != nil {
		c.observe("error", started)
		c.log.Error("Submit: failed to decode booking service response: %v", parseErr)
		return nil, &SubmissionError{StatusCode: resp.StatusCode, Message: genericFailureMessage}
	}

	if !env.Success {
		c.observe("failure", started)
		c.log.Warn("Submit: booking service rejected booking: %s", failureMessage(&env, nil))
		return nil, &SubmissionError{StatusCode: resp.StatusCode, Message: failureMessage(&env, nil)}
	}

	if env.Data == nil {
		c.observe("error", started)
		c.log.Error("Submit: booking service returned success without booking data")
		return nil, &SubmissionError{StatusCode: resp.StatusCode, Message: genericFailureMessage}
	}

	c.observe("success", started)
	c.log.Info("Submit: booking created, id=%s, status=%s", env.Data.ID, env.Data.Status)
	return env.Data, nil
}

// failureMessage возвращает сообщение бэкенда дословно, если оно есть,
// иначе общее сообщение об ошибке
func failureMessage(env *envelope, parseErr error) string {
	if parseErr == nil && env.Message != "" {
		return env.Message
	}
	return genericFailureMessage
}

func (c *Client) observe(outcome string, started time.Time) {
	if c.metrics != nil {
		c.metrics.ObserveUpstream(metricsTarget, outcome, time.Since(started))
	}
}
