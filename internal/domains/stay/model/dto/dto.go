package dto

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	guestModel "lodge/internal/domains/guest/model"
	"lodge/shared/constant"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

type CheckInRequest struct {
	FullName        string `json:"full_name"        validate:"omitempty,max=200"`
	IDNumber        string `json:"id_number"        validate:"required,max=100"`
	Nationality     string `json:"nationality"      validate:"omitempty,max=100"`
	Address         string `json:"address"          validate:"omitempty,max=500"`
	DepositMethod   string `json:"deposit_method"   validate:"omitempty,max=50"`
	DepositReceived string `json:"deposit_received" validate:"omitempty"`
}

// ToGuestModel builds the registration row for a check-in. The guest name
// falls back to the name the booking was made under.
func (c *CheckInRequest) ToGuestModel(user, bookingID, bookingGuestName string) guestModel.Guest {
	fullName := c.FullName
	if fullName == constant.Empty {
		fullName = bookingGuestName
	}

	return guestModel.Guest{
		ID:          uuid.NewString(),
		BookingID:   bookingID,
		FullName:    fullName,
		IDNumber:    c.IDNumber,
		IDType:      guestModel.IDTypeDefault,
		Nationality: c.Nationality,
		Address:     c.Address,
		CheckedIn:   true,
		CheckInTime: sql.NullTime{Time: timezone.Now(), Valid: true},
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// CheckOutRequest carries the inspection outcome. Actions other than Partial
// and Forfeit refund in full, so the field is not restricted to a known set.
type CheckOutRequest struct {
	DepositAction string `json:"deposit_action" validate:"omitempty,max=50"`
	DamageNotes   string `json:"damage_notes"   validate:"omitempty,max=500"`
}

type CheckOutResponse struct {
	BookingID       string          `json:"booking_id"`
	BookingRef      string          `json:"booking_ref"`
	DepositRefunded decimal.Decimal `json:"deposit_refunded"`
}
