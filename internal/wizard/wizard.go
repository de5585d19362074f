package wizard

import "coral_cove/internal/domain"

// Wizard owns one session's State and the room lookup used for pricing.
// It is not safe for concurrent use; a session belongs to one caller.
type Wizard struct {
	state State
	rooms RoomLookup
}

// New starts a wizard, optionally pre-seeded with a room (arrival from a room page).
func New(rooms RoomLookup, initialRoomID string) *Wizard {
	w := &Wizard{state: Initial(), rooms: rooms}
	if initialRoomID != "" {
		w.Dispatch(SelectRoom{RoomID: initialRoomID})
	}
	return w
}

func (w *Wizard) State() State { return w.state }

func (w *Wizard) Dispatch(a Action) State {
	w.state = Apply(w.state, a, w.rooms)
	return w.state
}

func (w *Wizard) SetDates(checkIn, checkOut string) {
	w.Dispatch(SetDates{CheckIn: checkIn, CheckOut: checkOut})
}

func (w *Wizard) SelectRoom(roomID string) {
	w.Dispatch(SelectRoom{RoomID: roomID})
}

func (w *Wizard) SetGuestInfo(info domain.GuestInfo) {
	w.Dispatch(SetGuestInfo{Info: info})
}

func (w *Wizard) SetPaymentMethod(m domain.PaymentMethod) {
	w.Dispatch(SetPaymentMethod{Method: m})
}

func (w *Wizard) SetGuests(n int) {
	w.Dispatch(SetGuests{Count: n})
}

func (w *Wizard) NextStep() {
	w.Dispatch(NextStep{})
}

func (w *Wizard) PrevStep() {
	w.Dispatch(PrevStep{})
}

func (w *Wizard) GoToStep(s Step) {
	w.Dispatch(GoToStep{Step: s})
}

func (w *Wizard) Reset() {
	w.Dispatch(Reset{})
}

// SelectedRoom resolves the selected room id; false when none is selected or the id is unknown.
func (w *Wizard) SelectedRoom() (domain.Room, bool) {
	if w.state.SelectedRoomID == nil || w.rooms == nil {
		return domain.Room{}, false
	}
	return w.rooms(*w.state.SelectedRoomID)
}

// CanProceed reports whether the current step's fields are filled.
func (w *Wizard) CanProceed() bool { return w.state.Complete(w.state.Step) }

// CompletedSteps lists the steps whose fields are filled, in order.
func (w *Wizard) CompletedSteps() []Step {
	var out []Step
	for s := FirstStep; s <= LastStep; s++ {
		if w.state.Complete(s) {
			out = append(out, s)
		}
	}
	return out
}

// CanVisit allows jumping back to any earlier step and forward only to the
// step right after the last completed one.
func (w *Wizard) CanVisit(target Step) bool {
	if !target.Valid() {
		return false
	}
	if target <= w.state.Step {
		return true
	}
	for s := FirstStep; s < target; s++ {
		if !w.state.Complete(s) {
			return false
		}
	}
	return true
}
