package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
)

// Roles recognized by the platform. Stored on the user document and
// carried inside the session.
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

// Canonical wire formats for calendar dates and clock times. Slots and
// appointments persist both as plain strings so the compound indexes
// compare lexicographically.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// SchedulingHorizonMonths caps how far ahead slots may be declared and
// appointments booked.
const SchedulingHorizonMonths = 3

const (
	PaymentSessionKeyFormat = "payment:trx:%s"
	SessionKeyFormat        = "session:%s"
)

const (
	PaymentStatusComplete = "COMPLETE"
	PaymentStatusFailed   = "FAILED"
)

// Notification event types published to the notifications queue.
const (
	NotificationAppointmentBooked    = "appointment_booked"
	NotificationAppointmentCancelled = "appointment_cancelled"
	NotificationAppointmentConfirmed = "appointment_confirmed"
)
