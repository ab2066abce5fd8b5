package bookingservice

import (
	"errors"
	"fmt"
)

var (
	// ErrSubmissionFailed возвращается, когда бэкенд отклонил бронирование:
	// success=false, не-2xx статус, сетевая ошибка или неразбираемый ответ
	ErrSubmissionFailed = errors.New("bookingservice client: submission failed")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingservice client: internal error")
)

// SubmissionError ошибка отказа бэкенда с сообщением для пользователя
// Message содержит сообщение бэкенда дословно, либо общий текст,
// если бэкенд сообщения не вернул
type SubmissionError struct {
	StatusCode int // 0 при сетевой ошибке
	Message    string
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("%v: %s", ErrSubmissionFailed, e.Message)
}

// Unwrap позволяет матчить ошибку через errors.Is(err, ErrSubmissionFailed)
func (e *SubmissionError) Unwrap() error {
	return ErrSubmissionFailed
}

// genericFailureMessage используется, когда бэкенд не вернул сообщение об ошибке
const genericFailureMessage = "booking could not be created"
