package wizard

import (
	"coral_cove/internal/dates"
	"coral_cove/internal/domain"
	"coral_cove/internal/pricing"
)

// Action is a closed set of wizard transitions.
type Action interface{ action() }

type SetDates struct {
	CheckIn  string
	CheckOut string
}

type SelectRoom struct{ RoomID string }

type SetGuestInfo struct{ Info domain.GuestInfo }

type SetPaymentMethod struct{ Method domain.PaymentMethod }

type SetGuests struct{ Count int }

type NextStep struct{}

type PrevStep struct{}

// GoToStep jumps unconditionally; a step outside [1,4] is ignored.
type GoToStep struct{ Step Step }

// Reset returns to Initial, dropping any seeded room.
type Reset struct{}

func (SetDates) action()         {}
func (SelectRoom) action()       {}
func (SetGuestInfo) action()     {}
func (SetPaymentMethod) action() {}
func (SetGuests) action()        {}
func (NextStep) action()         {}
func (PrevStep) action()         {}
func (GoToStep) action()         {}
func (Reset) action()            {}

// Apply returns the state after a. It never mutates s and never fails:
// inputs are trusted, and an unknown room prices as no room.
func Apply(s State, a Action, rooms RoomLookup) State {
	switch a := a.(type) {
	case SetDates:
		in, out := a.CheckIn, a.CheckOut
		s.CheckInDate, s.CheckOutDate = &in, &out
		s.NumberOfNights = dates.Nights(in, out)
		s.TotalPrice = total(s.SelectedRoomID, s.NumberOfNights, rooms)
	case SelectRoom:
		id := a.RoomID
		s.SelectedRoomID = &id
		s.TotalPrice = total(s.SelectedRoomID, s.NumberOfNights, rooms)
	case SetGuestInfo:
		info := a.Info
		s.GuestInfo = &info
	case SetPaymentMethod:
		m := a.Method
		s.PaymentMethod = &m
	case SetGuests:
		s.NumberOfGuests = a.Count
	case NextStep:
		s.Step = clamp(s.Step + 1)
	case PrevStep:
		s.Step = clamp(s.Step - 1)
	case GoToStep:
		if a.Step.Valid() {
			s.Step = a.Step
		}
	case Reset:
		return Initial()
	}
	return s
}

func clamp(s Step) Step {
	if s < FirstStep {
		return FirstStep
	}
	if s > LastStep {
		return LastStep
	}
	return s
}

func total(roomID *string, nights int, rooms RoomLookup) int64 {
	if roomID == nil || rooms == nil {
		return 0
	}
	r, ok := rooms(*roomID)
	if !ok {
		return 0
	}
	return pricing.RoomTotal(&r, nights)
}
