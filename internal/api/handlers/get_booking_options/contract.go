package get_booking_options

import (
	"github.com/m04kA/TMP-SchedulingService/pkg/types"
)

type SchedulingService interface {
	TimeOfDayOptions() []types.TimeString
	DurationOptions() []int
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
