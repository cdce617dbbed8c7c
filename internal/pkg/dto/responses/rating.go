package responses

type Rating struct {
	ID        string `json:"id"`
	DoctorID  string `json:"doctor_id"`
	PatientID string `json:"patient_id"`
	Score     int    `json:"score"`
	Comment   string `json:"comment,omitempty"`
}

// DoctorRating carries the mean over all scores. Count zero means the
// doctor has never been rated; Average is meaningless in that case.
type DoctorRating struct {
	DoctorID string  `json:"doctor_id"`
	Average  float64 `json:"average"`
	Count    int     `json:"count"`
}
