package dto

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"lodge/internal/domains/booking/model"
	roomModel "lodge/internal/domains/room/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

type CreateBookingRequest struct {
	RoomID         string `json:"room_id"          validate:"required"`
	GuestName      string `json:"guest_name"       validate:"required,max=200"`
	GuestEmail     string `json:"guest_email"      validate:"omitempty,email"`
	GuestPhone     string `json:"guest_phone"      validate:"required,max=50"`
	CheckInDate    string `json:"check_in_date"    validate:"required"`
	CheckOutDate   string `json:"check_out_date"   validate:"required"`
	NumberOfGuests int    `json:"number_of_guests" validate:"omitempty,min=1"`
	Source         string `json:"source"           validate:"omitempty,max=50"`
	Notes          string `json:"notes"            validate:"omitempty"`
}

// ToModel builds the booking row, snapshotting the room rate and pricing the
// stay. The reference and status are assigned later, inside the insert
// transaction.
func (c *CreateBookingRequest) ToModel(user string, room roomModel.Room) (model.Booking, int64, error) {
	checkIn, err := timezone.Parse(constant.DateOnlyFormat, c.CheckInDate)
	if err != nil {
		return model.Booking{}, 0, fmt.Errorf("invalid check_in_date: %w", err)
	}

	checkOut, err := timezone.Parse(constant.DateOnlyFormat, c.CheckOutDate)
	if err != nil {
		return model.Booking{}, 0, fmt.Errorf("invalid check_out_date: %w", err)
	}

	nights := model.Nights(checkIn, checkOut)

	source := c.Source
	if source == constant.Empty {
		source = model.SourceDirect
	}

	numberOfGuests := c.NumberOfGuests
	if numberOfGuests == 0 {
		numberOfGuests = 1
	}

	return model.Booking{
		ID:              uuid.NewString(),
		RoomID:          c.RoomID,
		GuestName:       c.GuestName,
		GuestEmail:      c.GuestEmail,
		GuestPhone:      c.GuestPhone,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumberOfGuests:  numberOfGuests,
		Source:          source,
		Notes:           c.Notes,
		RatePerNight:    room.RatePerNight,
		TotalAmount:     room.RatePerNight.Mul(decimal.NewFromInt(nights)),
		Status:          model.StatusConfirmed,
		DepositReceived: decimal.Zero,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nights, nil
}

type BookingResponse struct {
	ID              string          `json:"id"`
	BookingRef      string          `json:"booking_ref"`
	RoomID          string          `json:"room_id"`
	GuestName       string          `json:"guest_name"`
	GuestEmail      string          `json:"guest_email"`
	GuestPhone      string          `json:"guest_phone"`
	CheckInDate     string          `json:"check_in_date"`
	CheckOutDate    string          `json:"check_out_date"`
	NumberOfGuests  int             `json:"number_of_guests"`
	Source          string          `json:"source"`
	Notes           string          `json:"notes"`
	RatePerNight    decimal.Decimal `json:"rate_per_night"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          string          `json:"status"`
	DepositMethod   string          `json:"deposit_method"`
	DepositReceived decimal.Decimal `json:"deposit_received"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.BookingRef = mod.BookingRef
	r.RoomID = mod.RoomID
	r.GuestName = mod.GuestName
	r.GuestEmail = mod.GuestEmail
	r.GuestPhone = mod.GuestPhone
	r.CheckInDate = mod.CheckInDate.Format(constant.DateOnlyFormat)
	r.CheckOutDate = mod.CheckOutDate.Format(constant.DateOnlyFormat)
	r.NumberOfGuests = mod.NumberOfGuests
	r.Source = mod.Source
	r.Notes = mod.Notes
	r.RatePerNight = mod.RatePerNight
	r.TotalAmount = mod.TotalAmount
	r.Status = string(mod.Status)
	r.DepositMethod = mod.DepositMethod
	r.DepositReceived = mod.DepositReceived
	r.Metadata.FromModel(mod.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
