package models

// Rating keeps one canonical schema with a single numeric score field.
// Records with scores outside [1,5] are rejected at write time instead of
// being probed for alternative field names at read time.
type Rating struct {
	ID            string `bson:"_id,omitempty"`
	PatientID     string `bson:"patientId"`
	DoctorID      string `bson:"doctorId"`
	AppointmentID string `bson:"appointmentId,omitempty"`
	Score         int    `bson:"score"`
	Comment       string `bson:"comment,omitempty"`
	TimeModel     `bson:",inline"`
}

// RatingSummary is the aggregation result for a doctor. Count zero is the
// "no ratings" sentinel; callers must not read Average as a real score when
// Count is zero.
type RatingSummary struct {
	DoctorID string  `bson:"_id"`
	Average  float64 `bson:"average"`
	Count    int     `bson:"count"`
}
