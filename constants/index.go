package constants

// Response messages
const (
	ERROR_INPUT          = "Invalid input"
	ERROR_INTERNAL_ERROR = "Internal server error"
	NOT_FOUND_ENDPOINT   = "Endpoint not found"

	DATE_REQUIRED        = "Date parameter is required. Format: YYYY-MM-DD"
	INVALID_DATE_FORMAT  = "Invalid date format. Please use YYYY-MM-DD"
	INVALID_YEAR         = "Invalid year. Must be a number between 1900 and 2100."
	INVALID_MONTH        = "Invalid month. Must be a number between 1 and 12."
	INVALID_LIMIT        = "Invalid limit. Must be a number between 1 and 100."
	INVALID_GREGORIAN    = "Invalid year. Must be a number."
	INVALID_BUDDHIST_ERA = "Invalid Buddhist Era year. Must be a number."
	INVALID_DATE_RANGE   = "Invalid date range. 'from' must not be after 'to' and the span must not exceed 366 days."
)

// Query bounds
const (
	MIN_YEAR              = 1900
	MAX_YEAR              = 2100
	MIN_LIMIT             = 1
	MAX_LIMIT             = 100
	DEFAULT_LIMIT         = 10
	MAX_WORKDAY_SPAN_DAYS = 366
)

const (
	SERVICE_NAME    = "Khmer Calendar API"
	SERVICE_VERSION = "1.0.0"

	CHANNEL_TODAY = "calendar:today"
	CACHE_PREFIX  = "khmer-calendar:"
)

// Cambodia observes UTC+7 all year.
const ICT_OFFSET_SECONDS = 7 * 3600
