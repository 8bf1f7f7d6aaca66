package model

import (
	"database/sql"

	"lodge/shared/model"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID           = "id"
	FieldBookingID    = "booking_id"
	FieldFullName     = "full_name"
	FieldIDNumber     = "id_number"
	FieldIDType       = "id_type"
	FieldNationality  = "nationality"
	FieldAddress      = "address"
	FieldCheckedIn    = "checked_in"
	FieldCheckInTime  = "check_in_time"
	FieldCheckedOut   = "checked_out"
	FieldCheckOutTime = "check_out_time"

	IDTypeDefault = "ID/Passport"
)

type Guest struct {
	ID           string       `db:"id"`
	BookingID    string       `db:"booking_id"`
	FullName     string       `db:"full_name"`
	IDNumber     string       `db:"id_number"`
	IDType       string       `db:"id_type"`
	Nationality  string       `db:"nationality"`
	Address      string       `db:"address"`
	CheckedIn    bool         `db:"checked_in"`
	CheckInTime  sql.NullTime `db:"check_in_time"`
	CheckedOut   bool         `db:"checked_out"`
	CheckOutTime sql.NullTime `db:"check_out_time"`
	model.Metadata
}
