package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"lodge/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldBookingRef      = "booking_ref"
	FieldRoomID          = "room_id"
	FieldGuestName       = "guest_name"
	FieldGuestEmail      = "guest_email"
	FieldGuestPhone      = "guest_phone"
	FieldCheckInDate     = "check_in_date"
	FieldCheckOutDate    = "check_out_date"
	FieldNumberOfGuests  = "number_of_guests"
	FieldSource          = "source"
	FieldNotes           = "notes"
	FieldRatePerNight    = "rate_per_night"
	FieldTotalAmount     = "total_amount"
	FieldStatus          = "status"
	FieldDepositMethod   = "deposit_method"
	FieldDepositReceived = "deposit_received"

	SourceDirect = "Direct"

	SequenceTableName = "booking_sequence"
)

type Status string

const (
	StatusConfirmed  Status = "Confirmed"
	StatusCheckedIn  Status = "Checked-In"
	StatusCheckedOut Status = "Checked-Out"
)

// Predecessor returns the one status a booking must hold before it can move
// to s. Confirmed is the entry state and has no predecessor.
func (s Status) Predecessor() (Status, bool) {
	switch s {
	case StatusCheckedIn:
		return StatusConfirmed, true
	case StatusCheckedOut:
		return StatusCheckedIn, true
	default:
		return "", false
	}
}

func (s Status) Valid() bool {
	switch s {
	case StatusConfirmed, StatusCheckedIn, StatusCheckedOut:
		return true
	}

	return false
}

// FormatRef renders a sequence number as a booking reference, zero-padded to
// width digits. Sequences beyond the padding width keep all their digits.
func FormatRef(prefix string, width int, seq int64) string {
	return fmt.Sprintf("%s%0*d", prefix, width, seq)
}

// Nights counts billable nights between two dates, rounding partial days up.
func Nights(checkIn, checkOut time.Time) int64 {
	span := checkOut.Sub(checkIn)
	nights := int64(span / (24 * time.Hour))

	if span%(24*time.Hour) > 0 {
		nights++
	}

	return nights
}

type Booking struct {
	ID              string          `db:"id"`
	BookingRef      string          `db:"booking_ref"`
	RoomID          string          `db:"room_id"`
	GuestName       string          `db:"guest_name"`
	GuestEmail      string          `db:"guest_email"`
	GuestPhone      string          `db:"guest_phone"`
	CheckInDate     time.Time       `db:"check_in_date"`
	CheckOutDate    time.Time       `db:"check_out_date"`
	NumberOfGuests  int             `db:"number_of_guests"`
	Source          string          `db:"source"`
	Notes           string          `db:"notes"`
	RatePerNight    decimal.Decimal `db:"rate_per_night"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	Status          Status          `db:"status"`
	DepositMethod   string          `db:"deposit_method"`
	DepositReceived decimal.Decimal `db:"deposit_received"`
	model.Metadata
}
