package requests

type DeclareSlotRequest struct {
	Date      string `json:"date" validate:"required,date_yyyymmdd"`
	StartTime string `json:"start_time" validate:"required,time_hhmm"`
	EndTime   string `json:"end_time" validate:"required,time_hhmm"`
}

type ListOpenSlotsRequest struct {
	DoctorID string `json:"doctor_id" validate:"required"`
	From     string `json:"from" validate:"omitempty,date_yyyymmdd"`
	To       string `json:"to" validate:"omitempty,date_yyyymmdd"`
}
