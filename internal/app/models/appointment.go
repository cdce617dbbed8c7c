package models

import (
	"medibook-service/internal/pkg/constvars"
	"time"
)

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// allowedTransitions is the full forward transition table. Cancelled and
// completed are terminal.
var allowedTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentPending:   {AppointmentConfirmed, AppointmentCancelled},
	AppointmentConfirmed: {AppointmentCompleted, AppointmentCancelled},
}

func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s AppointmentStatus) IsTerminal() bool {
	return s == AppointmentCompleted || s == AppointmentCancelled
}

type Appointment struct {
	ID          string            `bson:"_id,omitempty"`
	PatientID   string            `bson:"patientId"`
	DoctorID    string            `bson:"doctorId"`
	SlotID      string            `bson:"slotId"`
	Date        string            `bson:"date"`
	StartTime   string            `bson:"startTime"`
	EndTime     string            `bson:"endTime"`
	Status      AppointmentStatus `bson:"status"`
	IsConfirmed bool              `bson:"isConfirmed"`
	Fee         float64           `bson:"fee"`
	Reason      string            `bson:"reason,omitempty"`
	Notes       string            `bson:"notes,omitempty"`
	TimeModel   `bson:",inline"`
}

// IsOverdue derives the "appointment time passed without resolution" state.
// Never persisted; computed against the supplied clock.
func (a *Appointment) IsOverdue(now time.Time) bool {
	if a.Status.IsTerminal() {
		return false
	}
	start, err := time.ParseInLocation(
		constvars.DateLayout+" "+constvars.TimeLayout,
		a.Date+" "+a.StartTime,
		now.Location(),
	)
	if err != nil {
		return false
	}
	return start.Before(now)
}

func (a *Appointment) IsValidTimeRange() bool {
	return a.StartTime < a.EndTime
}
