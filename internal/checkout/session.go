// Package checkout drives the booking wizard through its four step views,
// mirrors progress into shareable query parameters and submits the booking.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"coral_cove/internal/domain"
	"coral_cove/internal/pricing"
	"coral_cove/internal/wizard"
)

// Backend is the data-access boundary the session calls.
type Backend interface {
	ListRooms(ctx context.Context, q domain.RoomsQuery) ([]domain.Room, error)
	RangeAvailability(ctx context.Context, checkIn, checkOut string) (domain.RangeAvailability, error)
	CreateBooking(ctx context.Context, in domain.CreateBookingInput) (domain.Booking, error)
	CreatePaymentLink(ctx context.Context, req domain.PaymentLinkRequest) (domain.PaymentLink, error)
}

// Query parameter names shared with the web checkout page.
const (
	ParamStep     = "step"
	ParamRoomID   = "roomId"
	ParamCheckIn  = "checkIn"
	ParamCheckOut = "checkOut"
)

var (
	ErrSubmitInFlight = errors.New("booking submission already in progress")
	ErrIncomplete     = fmt.Errorf("%w: booking is incomplete", domain.ErrValidation)
)

type View int

const (
	ViewWizard View = iota
	ViewConfirmation
)

// RoomOption is a catalog room annotated for the room step.
type RoomOption struct {
	Room      domain.Room
	Available bool
}

type Session struct {
	backend Backend
	wiz     *wizard.Wizard
	params  url.Values

	submitting atomic.Bool

	mu        sync.Mutex
	view      View
	confirmed *domain.Booking
	lastErr   error
}

// New restores a session from query parameters the way the page does on load:
// a roomId seeds the wizard, dates are applied, then the step is restored.
func New(backend Backend, rooms []domain.Room, params url.Values) *Session {
	s := &Session{
		backend: backend,
		wiz:     wizard.New(wizard.Catalog(rooms), params.Get(ParamRoomID)),
		params:  url.Values{},
	}
	for _, k := range []string{ParamStep, ParamRoomID, ParamCheckIn, ParamCheckOut} {
		if v := params.Get(k); v != "" {
			s.params.Set(k, v)
		}
	}

	in, out := params.Get(ParamCheckIn), params.Get(ParamCheckOut)
	if in != "" && out != "" {
		s.wiz.SetDates(in, out)
	}
	if id := params.Get(ParamRoomID); id != "" && s.wiz.State().SelectedRoomID == nil {
		s.wiz.SelectRoom(id)
	}
	if n, err := strconv.Atoi(params.Get(ParamStep)); err == nil && wizard.Step(n) != s.wiz.State().Step {
		s.wiz.GoToStep(wizard.Step(n))
	}
	return s
}

func (s *Session) State() wizard.State { return s.wiz.State() }

func (s *Session) Wizard() *wizard.Wizard { return s.wiz }

// Params returns a copy of the shareable query parameters.
func (s *Session) Params() url.Values {
	out := make(url.Values, len(s.params))
	for k, v := range s.params {
		out[k] = append([]string(nil), v...)
	}
	return out
}

func (s *Session) updateParams(kv ...string) {
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] == "" {
			s.params.Del(kv[i])
			continue
		}
		s.params.Set(kv[i], kv[i+1])
	}
}

func (s *Session) syncStep() {
	s.updateParams(ParamStep, strconv.Itoa(int(s.wiz.State().Step)))
}

// ---- step handlers ----

func (s *Session) ChangeDates(checkIn, checkOut string) {
	s.wiz.SetDates(checkIn, checkOut)
	s.updateParams(ParamCheckIn, checkIn, ParamCheckOut, checkOut)
}

func (s *Session) SelectRoom(roomID string) {
	s.wiz.SelectRoom(roomID)
	s.updateParams(ParamRoomID, roomID)
}

func (s *Session) SetGuests(n int) { s.wiz.SetGuests(n) }

// SubmitGuestInfo stores the guest and moves on to payment.
func (s *Session) SubmitGuestInfo(info domain.GuestInfo) {
	s.wiz.SetGuestInfo(info)
	s.wiz.NextStep()
	s.syncStep()
}

func (s *Session) SetPaymentMethod(m domain.PaymentMethod) { s.wiz.SetPaymentMethod(m) }

func (s *Session) Next() {
	s.wiz.NextStep()
	s.syncStep()
}

func (s *Session) Prev() {
	s.wiz.PrevStep()
	s.syncStep()
}

// GoTo jumps to a step the progress bar allows: any earlier one, or the next
// step after a completed run. It reports whether the jump happened.
func (s *Session) GoTo(step wizard.Step) bool {
	if !s.wiz.CanVisit(step) {
		return false
	}
	s.wiz.GoToStep(step)
	s.syncStep()
	return true
}

// CanProceed gates the Next action. The dates step also needs a positive night count.
func (s *Session) CanProceed() bool {
	st := s.wiz.State()
	if st.Step == wizard.StepDates && st.NumberOfNights <= 0 {
		return false
	}
	return s.wiz.CanProceed()
}

// LoadRoomStep fetches the catalog and the stay's availability in parallel.
func (s *Session) LoadRoomStep(ctx context.Context) ([]RoomOption, error) {
	st := s.wiz.State()
	if st.CheckInDate == nil || st.CheckOutDate == nil {
		return nil, fmt.Errorf("%w: dates are required before choosing a room", domain.ErrValidation)
	}

	var (
		rooms []domain.Room
		avail domain.RangeAvailability
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rooms, err = s.backend.ListRooms(gctx, domain.RoomsQuery{})
		return err
	})
	g.Go(func() error {
		var err error
		avail, err = s.backend.RangeAvailability(gctx, *st.CheckInDate, *st.CheckOutDate)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	free := make(map[string]bool, len(avail.AvailableRoomIDs))
	for _, id := range avail.AvailableRoomIDs {
		free[id] = true
	}
	out := make([]RoomOption, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, RoomOption{Room: r, Available: free[r.ID]})
	}
	return out, nil
}

// ---- submission ----

// Confirm submits the booking once. On failure the wizard state is left as
// it was and the error is kept for display, so Confirm can simply be retried.
// Each successful call creates a new booking.
func (s *Session) Confirm(ctx context.Context) (domain.Booking, error) {
	if !s.submitting.CompareAndSwap(false, true) {
		return domain.Booking{}, ErrSubmitInFlight
	}
	defer s.submitting.Store(false)

	st := s.wiz.State()
	if !st.Ready() {
		return domain.Booking{}, ErrIncomplete
	}
	in := domain.CreateBookingInput{
		RoomID:        *st.SelectedRoomID,
		CheckIn:       *st.CheckInDate,
		CheckOut:      *st.CheckOutDate,
		GuestInfo:     st.GuestInfo,
		PaymentMethod: *st.PaymentMethod,
	}

	b, err := s.backend.CreateBooking(ctx, in)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastErr = err
		log.Warn().Err(err).Str("room_id", in.RoomID).Msg("booking submission failed")
		return domain.Booking{}, err
	}
	s.lastErr = nil
	s.confirmed = &b
	s.view = ViewConfirmation
	return b, nil
}

func (s *Session) Submitting() bool { return s.submitting.Load() }

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// Confirmed is the booking shown on the confirmation view, if any.
func (s *Session) Confirmed() (domain.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.confirmed == nil {
		return domain.Booking{}, false
	}
	return *s.confirmed, true
}

// Err is the last submission error, cleared by a successful Confirm or a reset.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Session) reset(params url.Values) {
	s.wiz.Reset()
	s.params = params
	s.mu.Lock()
	s.view = ViewWizard
	s.confirmed = nil
	s.lastErr = nil
	s.mu.Unlock()
}

// ReturnHome fully resets the session; the caller leaves the checkout.
func (s *Session) ReturnHome() { s.reset(url.Values{}) }

// StartAnother resets but stays on the checkout at step 1.
func (s *Session) StartAnother() { s.reset(url.Values{ParamStep: {"1"}}) }

// ---- payment link ----

// PaymentDescription is the line shown to the payer.
func PaymentDescription(roomName string, nights int) string {
	return fmt.Sprintf("Coral Cove Resort - %s (%d nights)", roomName, nights)
}

// CreatePaymentLink requests an Aloha Pay link for the current total in the
// payer's currency. The request is sent once.
func (s *Session) CreatePaymentLink(ctx context.Context, currency string) (domain.PaymentLink, error) {
	room, ok := s.wiz.SelectedRoom()
	st := s.wiz.State()
	if !ok || st.NumberOfNights <= 0 {
		return domain.PaymentLink{}, ErrIncomplete
	}
	amount, ok := pricing.ConvertUSDToLocal(st.TotalPrice, currency)
	if !ok {
		return domain.PaymentLink{}, fmt.Errorf("%w: unsupported currency %q", domain.ErrValidation, currency)
	}
	return s.backend.CreatePaymentLink(ctx, domain.PaymentLinkRequest{
		Amount:      float64(amount),
		Currency:    currency,
		Description: PaymentDescription(room.Name, st.NumberOfNights),
		AmountType:  domain.AmountReceive,
	})
}
