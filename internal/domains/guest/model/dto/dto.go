package dto

import (
	"lodge/internal/domains/guest/model"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/timezone"
)

type GuestResponse struct {
	ID           string `json:"id"`
	BookingID    string `json:"booking_id"`
	FullName     string `json:"full_name"`
	IDNumber     string `json:"id_number"`
	IDType       string `json:"id_type"`
	Nationality  string `json:"nationality"`
	Address      string `json:"address"`
	CheckedIn    bool   `json:"checked_in"`
	CheckInTime  string `json:"check_in_time,omitempty"`
	CheckedOut   bool   `json:"checked_out"`
	CheckOutTime string `json:"check_out_time,omitempty"`
	gDto.Metadata
}

func (g *GuestResponse) FromModel(mod model.Guest) {
	g.ID = mod.ID
	g.BookingID = mod.BookingID
	g.FullName = mod.FullName
	g.IDNumber = mod.IDNumber
	g.IDType = mod.IDType
	g.Nationality = mod.Nationality
	g.Address = mod.Address
	g.CheckedIn = mod.CheckedIn
	g.CheckedOut = mod.CheckedOut

	if mod.CheckInTime.Valid {
		g.CheckInTime = timezone.Format(mod.CheckInTime.Time, constant.DateFormat)
	}

	if mod.CheckOutTime.Valid {
		g.CheckOutTime = timezone.Format(mod.CheckOutTime.Time, constant.DateFormat)
	}

	g.Metadata.FromModel(mod.Metadata)
}
