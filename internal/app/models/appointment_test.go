package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatusTransitions(t *testing.T) {
	t.Run("pending can be confirmed or cancelled", func(t *testing.T) {
		assert.True(t, AppointmentPending.CanTransitionTo(AppointmentConfirmed))
		assert.True(t, AppointmentPending.CanTransitionTo(AppointmentCancelled))
		assert.False(t, AppointmentPending.CanTransitionTo(AppointmentCompleted))
	})

	t.Run("confirmed can be completed or cancelled", func(t *testing.T) {
		assert.True(t, AppointmentConfirmed.CanTransitionTo(AppointmentCompleted))
		assert.True(t, AppointmentConfirmed.CanTransitionTo(AppointmentCancelled))
		assert.False(t, AppointmentConfirmed.CanTransitionTo(AppointmentPending))
	})

	t.Run("terminal states allow nothing", func(t *testing.T) {
		for _, terminal := range []AppointmentStatus{AppointmentCompleted, AppointmentCancelled} {
			assert.False(t, terminal.CanTransitionTo(AppointmentPending))
			assert.False(t, terminal.CanTransitionTo(AppointmentConfirmed))
			assert.False(t, terminal.CanTransitionTo(AppointmentCompleted))
			assert.False(t, terminal.CanTransitionTo(AppointmentCancelled))
		}
	})

	t.Run("no self transitions", func(t *testing.T) {
		for _, status := range []AppointmentStatus{AppointmentPending, AppointmentConfirmed, AppointmentCompleted, AppointmentCancelled} {
			assert.False(t, status.CanTransitionTo(status))
		}
	})

	t.Run("is terminal", func(t *testing.T) {
		assert.False(t, AppointmentPending.IsTerminal())
		assert.False(t, AppointmentConfirmed.IsTerminal())
		assert.True(t, AppointmentCompleted.IsTerminal())
		assert.True(t, AppointmentCancelled.IsTerminal())
	})
}

func TestAppointmentIsOverdue(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("past start time and still pending", func(t *testing.T) {
		appointment := &Appointment{
			Date:      "2025-03-10",
			StartTime: "09:00",
			Status:    AppointmentPending,
		}
		assert.True(t, appointment.IsOverdue(now))
	})

	t.Run("future start time", func(t *testing.T) {
		appointment := &Appointment{
			Date:      "2025-03-10",
			StartTime: "15:00",
			Status:    AppointmentConfirmed,
		}
		assert.False(t, appointment.IsOverdue(now))
	})

	t.Run("terminal appointments are never overdue", func(t *testing.T) {
		appointment := &Appointment{
			Date:      "2025-03-01",
			StartTime: "09:00",
			Status:    AppointmentCompleted,
		}
		assert.False(t, appointment.IsOverdue(now))

		appointment.Status = AppointmentCancelled
		assert.False(t, appointment.IsOverdue(now))
	})

	t.Run("unparseable date counts as not overdue", func(t *testing.T) {
		appointment := &Appointment{
			Date:      "not-a-date",
			StartTime: "09:00",
			Status:    AppointmentPending,
		}
		assert.False(t, appointment.IsOverdue(now))
	})
}

func TestAppointmentIsValidTimeRange(t *testing.T) {
	appointment := &Appointment{StartTime: "09:00", EndTime: "10:00"}
	assert.True(t, appointment.IsValidTimeRange())

	appointment = &Appointment{StartTime: "10:00", EndTime: "09:00"}
	assert.False(t, appointment.IsValidTimeRange())

	appointment = &Appointment{StartTime: "09:00", EndTime: "09:00"}
	assert.False(t, appointment.IsValidTimeRange())
}
