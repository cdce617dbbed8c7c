package models

type User struct {
	ID                string `bson:"_id,omitempty"`
	Role              string `bson:"role"`
	Email             string `bson:"email"`
	FullName          string `bson:"fullName"`
	Password          string `bson:"password"`
	DoctorID          string `bson:"doctorId,omitempty"`
	PatientID         string `bson:"patientId,omitempty"`
	ProfilePictureKey string `bson:"profilePictureKey,omitempty"`
	TimeModel         `bson:",inline"`
}
