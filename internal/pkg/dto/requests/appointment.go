package requests

type CreateAppointmentRequest struct {
	DoctorID  string `json:"doctor_id" validate:"required"`
	SlotID    string `json:"slot_id" validate:"required"`
	Date      string `json:"date" validate:"required,date_yyyymmdd"`
	StartTime string `json:"start_time" validate:"required,time_hhmm"`
	EndTime   string `json:"end_time" validate:"required,time_hhmm"`
	Reason    string `json:"reason" validate:"omitempty,max=500"`
}

type QueryParams struct {
	PatientID string
	DoctorID  string
	Page      int
	PageSize  int
}
