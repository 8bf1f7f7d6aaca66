package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"lodge/shared/failure"
	"lodge/shared/validator"
)

type createBookingBody struct {
	RoomID       string `json:"room_id"        validate:"required"`
	GuestName    string `json:"guest_name"     validate:"required,max=100"`
	GuestEmail   string `json:"guest_email"    validate:"omitempty,email,max=100"`
	GuestPhone   string `json:"guest_phone"    validate:"required,max=20"`
	CheckInDate  string `json:"check_in_date"  validate:"required"`
	CheckOutDate string `json:"check_out_date" validate:"required"`
}

func TestValidate_Success(t *testing.T) {
	body := `{
		"room_id": "room-1",
		"guest_name": "John Smith",
		"guest_phone": "+66812345678",
		"check_in_date": "2024-01-01",
		"check_out_date": "2024-01-03"
	}`

	req := createBookingBody{}
	err := validator.Validate(strings.NewReader(body), &req)

	assert.NoError(t, err)
	assert.Equal(t, "John Smith", req.GuestName)
}

func TestValidate_MalformedJSON(t *testing.T) {
	req := createBookingBody{}
	err := validator.Validate(strings.NewReader("{not json"), &req)

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestValidate_ListsAllMissingFields(t *testing.T) {
	req := createBookingBody{}
	err := validator.Validate(strings.NewReader(`{"guest_name": "John Smith"}`), &req)

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	msg := err.Error()
	assert.Contains(t, msg, "RoomID is required")
	assert.Contains(t, msg, "GuestPhone is required")
	assert.Contains(t, msg, "CheckInDate is required")
	assert.Contains(t, msg, "CheckOutDate is required")
	assert.NotContains(t, msg, "GuestName")
}

func TestValidate_InvalidEmail(t *testing.T) {
	body := `{
		"room_id": "room-1",
		"guest_name": "John Smith",
		"guest_email": "not-an-email",
		"guest_phone": "+66812345678",
		"check_in_date": "2024-01-01",
		"check_out_date": "2024-01-03"
	}`

	req := createBookingBody{}
	err := validator.Validate(strings.NewReader(body), &req)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "GuestEmail must be a valid email address")
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("income", "oneof=income expense"))
	assert.Error(t, validator.ValidateVar("transfer", "oneof=income expense"))
}
