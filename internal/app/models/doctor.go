package models

type Doctor struct {
	ID              string  `bson:"_id,omitempty"`
	UserID          string  `bson:"userId"`
	FullName        string  `bson:"fullName"`
	Specialization  string  `bson:"specialization,omitempty"`
	ClinicName      string  `bson:"clinicName,omitempty"`
	ConsultationFee float64 `bson:"consultationFee"`
	BankCode        string  `bson:"bankCode,omitempty"`
	BankAccount     string  `bson:"bankAccount,omitempty"`
	Email           string  `bson:"email"`
	TimeModel       `bson:",inline"`
}

type Patient struct {
	ID        string `bson:"_id,omitempty"`
	UserID    string `bson:"userId"`
	FullName  string `bson:"fullName"`
	Email     string `bson:"email"`
	TimeModel `bson:",inline"`
}
