package constvars

const (
	MongoCollectionUsers             = "users"
	MongoCollectionDoctors           = "doctors"
	MongoCollectionPatients          = "patients"
	MongoCollectionAvailabilitySlots = "availability_slots"
	MongoCollectionAppointments      = "appointments"
	MongoCollectionRatings           = "ratings"
	MongoCollectionTransactions      = "transactions"
)
