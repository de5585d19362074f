package domain

import "time"

type PaymentMethod string

const (
	PaymentAlohaPay   PaymentMethod = "aloha-pay"
	PaymentCreditCard PaymentMethod = "credit-card"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentAlohaPay || m == PaymentCreditCard
}

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type GuestInfo struct {
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	Country         string  `json:"country"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
}

type Booking struct {
	ID            string        `json:"id"`
	RoomID        string        `json:"roomId"`
	CheckIn       string        `json:"checkIn"`
	CheckOut      string        `json:"checkOut"`
	GuestInfo     GuestInfo     `json:"guestInfo"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	TotalPrice    int64         `json:"totalPrice"`
	Status        BookingStatus `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// CreateBookingInput mirrors the POST /api/bookings body; pointers distinguish "missing".
type CreateBookingInput struct {
	RoomID        string        `json:"roomId"`
	CheckIn       string        `json:"checkIn"`
	CheckOut      string        `json:"checkOut"`
	GuestInfo     *GuestInfo    `json:"guestInfo"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}
