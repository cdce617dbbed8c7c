package models

// AvailabilitySlot is a doctor-declared open time window. Date and the two
// clock times are stored as plain strings (constvars.DateLayout and
// constvars.TimeLayout) so that the compound unique index on active slots
// compares them lexicographically. IsActive models retraction without
// destroying history; IsBooked flips exactly once when an appointment
// consumes the slot.
type AvailabilitySlot struct {
	ID        string `bson:"_id,omitempty"`
	DoctorID  string `bson:"doctorId"`
	Date      string `bson:"date"`
	StartTime string `bson:"startTime"`
	EndTime   string `bson:"endTime"`
	IsBooked  bool   `bson:"isBooked"`
	IsActive  bool   `bson:"isActive"`
	TimeModel `bson:",inline"`
}

// Overlaps reports whether two half-open windows [start, end) on the same
// date intersect. String comparison is safe for the HH:MM layout.
func (s *AvailabilitySlot) Overlaps(startTime, endTime string) bool {
	return s.StartTime < endTime && startTime < s.EndTime
}
