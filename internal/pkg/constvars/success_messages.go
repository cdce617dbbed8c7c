package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	RegisterSuccess = "user registered successfully"
	LoginSuccess    = "successfully login"
	LogoutSuccess   = "successfully logout"

	// Availability messages
	SlotDeclaredSuccess  = "availability slot declared successfully"
	SlotRetractedSuccess = "availability slot retracted successfully"
	GetSlotsSuccess      = "get availability slots successfully"

	// Appointment messages
	AppointmentBookedSuccess    = "appointment booked successfully"
	AppointmentCancelledSuccess = "appointment cancelled successfully"
	AppointmentConfirmedSuccess = "appointment confirmed successfully"
	AppointmentCompletedSuccess = "appointment completed successfully"
	GetAppointmentsSuccess      = "get appointments successfully"

	// Rating messages
	RatingSubmittedSuccess  = "rating submitted successfully"
	GetDoctorRatingSuccess  = "get doctor rating successfully"
	GetDoctorRatingsSuccess = "get doctor ratings successfully"

	// Payment messages
	PaymentCallbackSuccess = "payment callback processed successfully"

	// Profile messages
	ProfilePictureUploadSuccess = "profile picture uploaded successfully"
)
