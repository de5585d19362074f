package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"coral_cove/internal/adapters/observability"
	"coral_cove/internal/app"
	"coral_cove/internal/domain"
)

const maxBody = 1 << 20

type Handlers struct {
	Q *app.QueryService
	B *app.BookingService
	P *app.PaymentService
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(200)
		_, _ = w.Write([]byte("ok"))
	})
	s.mux.Route("/api", func(r chi.Router) {
		r.Get("/rooms", h.listRooms)
		r.Get("/rooms/{idOrSlug}", h.getRoom)
		r.Get("/availability", h.availability)
		r.Get("/amenities", h.amenities)
		r.Get("/bookings", h.listBookings)
		r.Post("/bookings", h.createBooking)
		r.Post("/payment-links", h.createPaymentLink)
		r.Get("/wallets", h.wallets)
	})
}

func (h *Handlers) listRooms(w http.ResponseWriter, r *http.Request) {
	q := domain.RoomsQuery{
		Type:     r.URL.Query().Get("type"),
		Featured: r.URL.Query().Get("featured") == "true",
	}
	rooms, err := h.Q.ListRooms(r.Context(), q)
	if err != nil {
		writeError(w, r, err, "Failed to fetch rooms")
		return
	}
	writeCached(w, r, ok(rooms, "Rooms retrieved successfully"))
}

func (h *Handlers) getRoom(w http.ResponseWriter, r *http.Request) {
	room, err := h.Q.GetRoom(r.Context(), chi.URLParam(r, "idOrSlug"))
	if err != nil {
		writeError(w, r, err, "Failed to fetch room")
		return
	}
	writeCached(w, r, ok(room, "Room retrieved successfully"))
}

func (h *Handlers) availability(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()
	checkIn, checkOut, roomID := qs.Get("checkIn"), qs.Get("checkOut"), qs.Get("roomId")

	if roomID != "" {
		out, err := h.Q.RoomAvailability(r.Context(), roomID, checkIn, checkOut)
		if err != nil {
			writeError(w, r, err, "Failed to check availability")
			return
		}
		writeJSON(w, http.StatusOK, ok(out, "Availability checked successfully"))
		return
	}
	out, err := h.Q.RangeAvailability(r.Context(), checkIn, checkOut)
	if err != nil {
		writeError(w, r, err, "Failed to check availability")
		return
	}
	writeJSON(w, http.StatusOK, ok(out, "Availability retrieved successfully"))
}

func (h *Handlers) amenities(w http.ResponseWriter, r *http.Request) {
	var ids []string
	if raw := r.URL.Query().Get("ids"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	out, err := h.Q.Amenities(r.Context(), ids)
	if err != nil {
		writeError(w, r, err, "Failed to fetch amenities")
		return
	}
	writeCached(w, r, ok(out, "Amenities retrieved successfully"))
}

func (h *Handlers) listBookings(w http.ResponseWriter, r *http.Request) {
	out, err := h.B.ListBookings(r.Context())
	if err != nil {
		writeError(w, r, err, "Failed to fetch bookings")
		return
	}
	writeJSON(w, http.StatusOK, ok(out, "Bookings retrieved successfully"))
}

func (h *Handlers) createBooking(w http.ResponseWriter, r *http.Request) {
	var in domain.CreateBookingInput
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(&in); err != nil {
		observability.ObserveBookingRejected("validation")
		writeFail(w, http.StatusBadRequest, "Invalid JSON body", nil)
		return
	}
	b, err := h.B.CreateBooking(r.Context(), in)
	if err != nil {
		observability.ObserveBookingRejected(rejectReason(err))
		writeError(w, r, err, "Failed to create booking")
		return
	}
	observability.ObserveBooking(b.RoomID, string(b.PaymentMethod))
	writeJSON(w, http.StatusCreated, ok(b, "Booking created successfully"))
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrUnavailable):
		return "unavailable"
	}
	return "error"
}

func (h *Handlers) createPaymentLink(w http.ResponseWriter, r *http.Request) {
	var req domain.PaymentLinkRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(&req); err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid JSON body", nil)
		return
	}
	link, err := h.P.CreatePaymentLink(r.Context(), req)
	if err != nil {
		observability.ObservePaymentLink(req.Currency, rejectReason(err))
		writeError(w, r, err, "Failed to create payment link")
		return
	}
	observability.ObservePaymentLink(req.Currency, "ok")
	writeJSON(w, http.StatusCreated, ok(link, "Payment link created successfully"))
}

func (h *Handlers) wallets(w http.ResponseWriter, r *http.Request) {
	out, err := h.P.Wallets(r.Context())
	if err != nil {
		writeError(w, r, err, "Failed to fetch wallets")
		return
	}
	writeJSON(w, http.StatusOK, ok(out, "Wallets retrieved successfully"))
}
