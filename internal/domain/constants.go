package domain

// AllowedDurations допустимые длительности сессии в минутах
var AllowedDurations = []int{30, 45, 60, 90, 120}

// IsAllowedDuration проверяет, что длительность входит в допустимый набор
func IsAllowedDuration(minutes int) bool {
	for _, d := range AllowedDurations {
		if d == minutes {
			return true
		}
	}
	return false
}

// Time-of-day picker constants
const (
	// TimeOfDayStepMinutes шаг сетки времени начала сессии
	TimeOfDayStepMinutes = 15

	// MinutesPerDay количество минут в сутках
	MinutesPerDay = 24 * 60
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
