package domain

import (
	"github.com/sarthakk1890/CureAi/pkg/types"
)

// BookedWindow is a committed reservation owned by the appointment service.
// TimeSlot is the formatted range label ("9:00 AM - 9:30 AM") under which the
// reservation was made; the slot generator compares candidate labels against
// it verbatim.
type BookedWindow struct {
	Date     types.DateStamp
	TimeSlot string
}

// SlotCandidate is a generated, not-yet-reserved start time offered to the
// patient. Ephemeral: recomputed on every date selection, never persisted.
type SlotCandidate struct {
	Start types.TimeString // начало окна приема
	End   types.TimeString // конец окна приема (meeting length, без буфера)

	Label    string // "9:00 AM" - то, что показывается в сетке слотов
	TimeSlot string // "9:00 AM - 9:30 AM" - метка, под которой слот бронируется
}

// NewSlotCandidate builds a candidate for the occupancy window [start, end)
func NewSlotCandidate(start, end types.TimeString) SlotCandidate {
	return SlotCandidate{
		Start:    start,
		End:      end,
		Label:    start.Label(),
		TimeSlot: types.RangeLabel(start, end),
	}
}

// IsMorning returns true if the candidate belongs to the morning bucket.
// 12:00 PM and later is afternoon; midnight counts as morning - it never
// legitimately appears inside working hours.
func (s *SlotCandidate) IsMorning() bool {
	return s.Start.Minutes() < 12*60
}

// PatientDetails patient identity fields attached to a booking submission
type PatientDetails struct {
	Age      int
	Gender   string
	Symptoms []string
}

// PatientSession is the authenticated identity of the booking session.
// Passed explicitly into the submission workflow - lifecycle is tied to
// sign-in/sign-out, never ambient state.
type PatientSession struct {
	PatientID string
	Name      string
	Details   PatientDetails
}

// Appointment is a confirmed reservation as echoed back by the appointment
// service (history listing and submission response)
type Appointment struct {
	ID       string
	Date     types.DateStamp
	TimeSlot string

	DoctorID   string
	DoctorName string

	PatientID   string
	PatientName string
	Details     PatientDetails

	MeetLink string // opaque reference echoed by the collaborator, not consumed
}
