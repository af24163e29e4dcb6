package domain

// Default consultation configuration values
const (
	DefaultSlotDurationMinutes  = 30
	DefaultBufferTimeMinutes    = 0
	DefaultMeetingLengthMinutes = 30
)

// Default working-hour rule installed when a weekday is toggled back to available
const (
	DefaultWorkingDayStart = "09:00"
	DefaultWorkingDayEnd   = "17:00"
)

// Business validation constants
const (
	MinSlotDurationMinutes  = 5
	MaxSlotDurationMinutes  = 480 // 8 hours
	MinBufferTimeMinutes    = 0
	MaxBufferTimeMinutes    = 120
	MinMeetingLengthMinutes = 5
	MaxMeetingLengthMinutes = 480
	MaxReasonLength         = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// NoonTime полдень - значение, в которое нормализуется вырожденный конец
// заблокированного интервала (конец в 00:00 того же календарного дня)
const NoonTime = "12:00"

// EndOfDayTime конец суток - им заменяется конец заблокированного интервала,
// переходящий на следующий календарный день (интервал не разрезается на два дня)
const EndOfDayTime = "23:59"
