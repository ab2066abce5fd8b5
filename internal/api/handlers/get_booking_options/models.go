package get_booking_options

// BookingOptionsResponse HTTP response model
// Наборы значений для пикеров формы бронирования
type BookingOptionsResponse struct {
	TimeOfDayOptions []string `json:"timeOfDayOptions"` // "00:00" ... "23:45", шаг 15 минут
	DurationOptions  []int    `json:"durationOptions"`  // допустимые длительности в минутах
}
