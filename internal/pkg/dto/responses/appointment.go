package responses

type Appointment struct {
	ID          string  `json:"id"`
	DoctorID    string  `json:"doctor_id"`
	DoctorName  string  `json:"doctor_name,omitempty"`
	PatientID   string  `json:"patient_id"`
	PatientName string  `json:"patient_name,omitempty"`
	Date        string  `json:"date"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Status      string  `json:"status"`
	IsConfirmed bool    `json:"is_confirmed"`
	IsOverdue   bool    `json:"is_overdue"`
	Fee         float64 `json:"fee"`
	Reason      string  `json:"reason,omitempty"`
	Notes       string  `json:"notes,omitempty"`
}

type CreateAppointment struct {
	AppointmentID string `json:"appointment_id"`
	Status        string `json:"status"`
	PaymentLink   string `json:"payment_link,omitempty"`
}
