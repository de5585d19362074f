// Package wizard is the booking wizard state machine: four linear steps with
// derived night count and total price. Transitions are pure; see Apply.
package wizard

import "coral_cove/internal/domain"

type Step int

const (
	StepDates Step = iota + 1
	StepRoom
	StepGuestInfo
	StepPayment
)

const (
	FirstStep     = StepDates
	LastStep      = StepPayment
	DefaultGuests = 2
)

func (s Step) Valid() bool { return s >= FirstStep && s <= LastStep }

func (s Step) String() string {
	switch s {
	case StepDates:
		return "dates"
	case StepRoom:
		return "room"
	case StepGuestInfo:
		return "guest-info"
	case StepPayment:
		return "payment"
	}
	return "unknown"
}

// State is one checkout session's progress. NumberOfNights and TotalPrice are
// derived and only written by Apply.
type State struct {
	Step           Step                  `json:"step"`
	CheckInDate    *string               `json:"checkInDate"`
	CheckOutDate   *string               `json:"checkOutDate"`
	SelectedRoomID *string               `json:"selectedRoomId"`
	GuestInfo      *domain.GuestInfo     `json:"guestInfo"`
	PaymentMethod  *domain.PaymentMethod `json:"paymentMethod"`
	NumberOfGuests int                   `json:"numberOfGuests"`
	NumberOfNights int                   `json:"numberOfNights"`
	TotalPrice     int64                 `json:"totalPrice"`
}

// Initial is the unconditional baseline every Reset returns to.
func Initial() State {
	return State{Step: FirstStep, NumberOfGuests: DefaultGuests}
}

// Complete reports whether the fields gathered at step s are present.
func (s State) Complete(step Step) bool {
	switch step {
	case StepDates:
		return s.CheckInDate != nil && s.CheckOutDate != nil
	case StepRoom:
		return s.SelectedRoomID != nil
	case StepGuestInfo:
		return s.GuestInfo != nil
	case StepPayment:
		return s.PaymentMethod != nil
	}
	return false
}

// Ready reports whether every step is complete, i.e. the booking can be submitted.
func (s State) Ready() bool {
	for st := FirstStep; st <= LastStep; st++ {
		if !s.Complete(st) {
			return false
		}
	}
	return true
}

// RoomLookup resolves a room id against the catalog.
type RoomLookup func(id string) (domain.Room, bool)

// Catalog adapts a room slice to a RoomLookup.
func Catalog(rooms []domain.Room) RoomLookup {
	byID := make(map[string]domain.Room, len(rooms))
	for _, r := range rooms {
		byID[r.ID] = r
	}
	return func(id string) (domain.Room, bool) {
		r, ok := byID[id]
		return r, ok
	}
}
