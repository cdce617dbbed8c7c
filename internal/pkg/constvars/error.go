package constvars

// Validation messages for request DTOs, keyed by validator tag.
var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"email":         "must be a valid email",
	"alphanum":      "must contain only alphanumeric characters",
	"min":           "must be at least %s characters long",
	"max":           "maximum at %s characters long",
	"oneof":         "must be one of: %s",
	"gte":           "must be at least %s",
	"lte":           "must be at most %s",
	"password":      "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"user_role":     "must be either patient or doctor",
	"date_yyyymmdd": "must be a calendar date formatted as YYYY-MM-DD",
	"time_hhmm":     "must be a clock time formatted as HH:MM",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gte":   true,
	"lte":   true,
}
