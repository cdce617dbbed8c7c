package constvars

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientBookingFailed                 = "booking failed, please retry"
	ErrClientSlotTaken                     = "slot already taken, please pick another one"
	ErrClientSlotNotAvailable              = "the selected slot is no longer available"
	ErrClientSlotBookedCannotRetract       = "the slot already has a booking and cannot be retracted"
	ErrClientSlotOverlaps                  = "an availability slot already covers this time window"
	ErrClientInvalidTimeRange              = "start time must be earlier than end time"
	ErrClientDateInPast                    = "the date has already passed"
	ErrClientDateTooFarAhead               = "scheduling is only open up to 3 months in advance"
	ErrClientAppointmentNotFound           = "appointment not found"
	ErrClientSlotNotFound                  = "availability slot not found"
	ErrClientDoctorNotFound                = "doctor not found"
	ErrClientInvalidStatusChange           = "the appointment cannot change to the requested status"
	ErrClientRatingNotAllowed              = "you can only rate doctors you had an appointment with"
	ErrClientInvalidImageFormat            = "profile picture must be a JPEG or PNG image"
	ErrClientImageTooLarge                 = "profile picture exceeds the maximum upload size"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevValidationFailed       = "request validation failed"
	ErrDevCannotParseJSON        = "cannot parse JSON"
	ErrDevCannotMarshalJSON      = "cannot marshal JSON"
	ErrDevCannotParseMultipart   = "cannot parse multipart form"
	ErrDevURLParamMissing        = "missing URL parameter: %s"
	ErrDevMissingRequestID       = "request ID not found in request context"
	ErrDevMissingSessionData     = "session data not found in request context"
	ErrDevServerDeadlineExceeded = "server deadline exceeded"

	ErrDevAuthTokenMissing          = "authorization token missing"
	ErrDevAuthTokenInvalidOrExpired = "authorization token invalid or expired"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthInvalidSession        = "session not found or expired"
	ErrDevAuthRoleNotAllowed        = "session role is not allowed for this endpoint"
	ErrDevInvalidCredentials        = "invalid credentials"
	ErrDevEmailAlreadyExists        = "email already exists"
	ErrDevFailedToHashPassword      = "failed to hash password"

	ErrDevDBInsertDocument    = "failed to insert document"
	ErrDevDBFindDocument      = "failed to find document"
	ErrDevDBUpdateDocument    = "failed to update document"
	ErrDevDBIterateDocuments  = "failed to iterate documents"
	ErrDevDBAggregate         = "failed to run aggregation"
	ErrDevRedisSet            = "failed to set redis key"
	ErrDevRedisGet            = "failed to get redis key"
	ErrDevRedisDelete         = "failed to delete redis key"
	ErrDevMinioUpload         = "failed to upload object to minio"
	ErrDevMinioPresign        = "failed to presign minio object URL"
	ErrDevPaymentGatewayCall  = "payment gateway request failed"
	ErrDevPaymentTrxUnknown   = "payment callback references an unknown transaction"
	ErrDevSlotOverlap         = "active slot overlapping the window already exists"
	ErrDevSlotConflict        = "slot is inactive or already booked"
	ErrDevSlotRetractBooked   = "cannot retract a booked slot"
	ErrDevAppointmentConflict = "appointment already exists for doctor, date and start time"
	ErrDevInvalidTransition   = "illegal appointment status transition"
	ErrDevInvalidTimeRange    = "start time is not earlier than end time"
	ErrDevDateInPast          = "date is before today"
	ErrDevDateTooFarAhead     = "date is beyond the scheduling horizon"
	ErrDevSlotLostRace        = "slot was consumed by a concurrent booking"
	ErrDevRatingNoHistory     = "patient has no appointment with this doctor"
	ErrDevDataIntegrity       = "compensating rollback failed, appointment and slot may disagree"
)
