package requests

type SubmitRatingRequest struct {
	DoctorID      string `json:"doctor_id" validate:"required"`
	Score         int    `json:"score" validate:"required,gte=1,lte=5"`
	Comment       string `json:"comment" validate:"omitempty,max=1000"`
	AppointmentID string `json:"appointment_id,omitempty"`
}
