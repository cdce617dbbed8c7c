package models

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
)

// Transaction records one payment session opened against the gateway for a
// booked appointment. PartnerTrxID is the id we hand to the gateway and the
// key its callback echoes back.
type Transaction struct {
	ID            string            `bson:"_id,omitempty"`
	AppointmentID string            `bson:"appointmentId"`
	PatientID     string            `bson:"patientId"`
	DoctorID      string            `bson:"doctorId"`
	PartnerTrxID  string            `bson:"partnerTrxId"`
	PaymentLink   string            `bson:"paymentLink"`
	Amount        float64           `bson:"amount"`
	Currency      string            `bson:"currency"`
	Status        TransactionStatus `bson:"status"`
	TimeModel     `bson:",inline"`
}
