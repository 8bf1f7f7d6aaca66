package model

import (
	"github.com/shopspring/decimal"

	"lodge/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID           = "id"
	FieldName         = "name"
	FieldRatePerNight = "rate_per_night"
	FieldActive       = "active"
)

type Room struct {
	ID           string          `db:"id"`
	Name         string          `db:"name"`
	RatePerNight decimal.Decimal `db:"rate_per_night"`
	Active       bool            `db:"active"`
	model.Metadata
}
