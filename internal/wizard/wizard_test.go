package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coral_cove/internal/domain"
)

func testRooms() RoomLookup {
	return Catalog([]domain.Room{
		{ID: "room-001", PricePerNight: 165000},
		{ID: "room-002", PricePerNight: 255000},
		{ID: "room-x", PricePerNight: 200000},
	})
}

func guest() domain.GuestInfo {
	return domain.GuestInfo{FirstName: "Ana", LastName: "Rojas", Email: "ana@example.com", Phone: "+56 9 1234 5678", Country: "CL"}
}

func TestInitial(t *testing.T) {
	s := Initial()
	assert.Equal(t, StepDates, s.Step)
	assert.Equal(t, 2, s.NumberOfGuests)
	assert.Nil(t, s.CheckInDate)
	assert.Nil(t, s.SelectedRoomID)
	assert.Zero(t, s.TotalPrice)
}

func TestSetDates_ComputesNights(t *testing.T) {
	s := Apply(Initial(), SetDates{CheckIn: "2025-03-10", CheckOut: "2025-03-13"}, testRooms())
	assert.Equal(t, 3, s.NumberOfNights)
	assert.Zero(t, s.TotalPrice, "no room selected yet")
}

func TestSetDates_InvalidOrderIsNotRejected(t *testing.T) {
	s := Apply(Initial(), SetDates{CheckIn: "2025-03-13", CheckOut: "2025-03-10"}, testRooms())
	require.NotNil(t, s.CheckInDate)
	assert.Equal(t, -3, s.NumberOfNights)
	s = Apply(s, SelectRoom{RoomID: "room-001"}, testRooms())
	assert.EqualValues(t, -495000, s.TotalPrice, "pricePerNight * nights, unclamped")

	w := New(testRooms(), "")
	w.SetDates("2025-03-10", "2025-03-10")
	assert.True(t, w.CanProceed(), "gating on nights is the caller's job")
	assert.Zero(t, w.State().NumberOfNights)
}

func TestPrice(t *testing.T) {
	rooms := testRooms()

	t.Run("room then dates", func(t *testing.T) {
		s := Apply(Initial(), SelectRoom{RoomID: "room-001"}, rooms)
		assert.Zero(t, s.TotalPrice)
		s = Apply(s, SetDates{CheckIn: "2025-03-10", CheckOut: "2025-03-13"}, rooms)
		assert.EqualValues(t, 495000, s.TotalPrice)
	})

	t.Run("dates then room reuses nights", func(t *testing.T) {
		s := Apply(Initial(), SetDates{CheckIn: "2025-03-10", CheckOut: "2025-03-13"}, rooms)
		s = Apply(s, SelectRoom{RoomID: "room-002"}, rooms)
		assert.EqualValues(t, 765000, s.TotalPrice)
		s = Apply(s, SelectRoom{RoomID: "room-001"}, rooms)
		assert.EqualValues(t, 495000, s.TotalPrice)
	})

	t.Run("unknown room prices as none", func(t *testing.T) {
		s := Apply(Initial(), SetDates{CheckIn: "2025-03-10", CheckOut: "2025-03-13"}, rooms)
		s = Apply(s, SelectRoom{RoomID: "room-404"}, rooms)
		require.NotNil(t, s.SelectedRoomID)
		assert.Zero(t, s.TotalPrice)
	})

	t.Run("guests do not affect price", func(t *testing.T) {
		s := Apply(Initial(), SetDates{CheckIn: "2025-03-10", CheckOut: "2025-03-13"}, rooms)
		s = Apply(s, SelectRoom{RoomID: "room-001"}, rooms)
		s = Apply(s, SetGuests{Count: 5}, rooms)
		assert.Equal(t, 5, s.NumberOfGuests)
		assert.EqualValues(t, 495000, s.TotalPrice)
	})
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	before := Apply(Initial(), SetDates{CheckIn: "2025-03-10", CheckOut: "2025-03-13"}, testRooms())
	after := Apply(before, SetDates{CheckIn: "2025-04-01", CheckOut: "2025-04-02"}, testRooms())
	assert.Equal(t, "2025-03-10", *before.CheckInDate)
	assert.Equal(t, "2025-04-01", *after.CheckInDate)
}

func TestStepClamping(t *testing.T) {
	w := New(testRooms(), "")
	w.PrevStep()
	assert.Equal(t, StepDates, w.State().Step)

	for i := 0; i < 10; i++ {
		w.NextStep()
	}
	assert.Equal(t, StepPayment, w.State().Step)

	w.GoToStep(StepRoom)
	assert.Equal(t, StepRoom, w.State().Step)
	w.GoToStep(Step(7))
	assert.Equal(t, StepRoom, w.State().Step)
	w.GoToStep(Step(0))
	assert.Equal(t, StepRoom, w.State().Step)
}

func TestReset_ClearsSeededRoom(t *testing.T) {
	w := New(testRooms(), "room-002")
	require.NotNil(t, w.State().SelectedRoomID)
	assert.Equal(t, "room-002", *w.State().SelectedRoomID)

	w.SetDates("2025-03-10", "2025-03-13")
	w.NextStep()
	w.SetGuests(4)
	w.Reset()

	assert.Equal(t, Initial(), w.State())
}

func TestCanProceedAndCompletedSteps(t *testing.T) {
	w := New(testRooms(), "")
	assert.False(t, w.CanProceed())
	assert.Empty(t, w.CompletedSteps())

	w.SetDates("2025-06-01", "2025-06-04")
	assert.True(t, w.CanProceed())
	assert.True(t, w.CanVisit(StepRoom))
	assert.False(t, w.CanVisit(StepGuestInfo))

	w.NextStep()
	assert.False(t, w.CanProceed())
	w.SelectRoom("room-x")
	w.NextStep()
	w.SetGuestInfo(guest())
	w.NextStep()
	assert.False(t, w.CanProceed())
	w.SetPaymentMethod(domain.PaymentAlohaPay)

	assert.Equal(t, []Step{StepDates, StepRoom, StepGuestInfo, StepPayment}, w.CompletedSteps())
	assert.True(t, w.State().Ready())
	assert.EqualValues(t, 600000, w.State().TotalPrice)

	room, ok := w.SelectedRoom()
	require.True(t, ok)
	assert.Equal(t, "room-x", room.ID)
}
