package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	bookingMocks "lodge/internal/domains/booking/mocks"
	bookingModel "lodge/internal/domains/booking/model"
	guestMocks "lodge/internal/domains/guest/mocks"
	guestModel "lodge/internal/domains/guest/model"
	ledgerMocks "lodge/internal/domains/ledger/mocks"
	ledgerModel "lodge/internal/domains/ledger/model"
	"lodge/internal/domains/stay/deposit"
	"lodge/internal/domains/stay/model/dto"
	"lodge/internal/domains/stay/service"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/failure"
)

func newStayFixture(t *testing.T) (service.Stay, *bookingMocks.MockBooking, *guestMocks.MockGuest, *ledgerMocks.MockIncome) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockBookings := bookingMocks.NewMockBooking(ctrl)
	mockGuests := guestMocks.NewMockGuest(ctrl)
	mockIncome := ledgerMocks.NewMockIncome(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Booking.DepositAmount = "500"

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	mockCache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	svc := service.New(mockBookings, mockGuests, mockIncome, cfg, mockCache, mockOtel)

	return svc, mockBookings, mockGuests, mockIncome
}

func confirmedBooking() bookingModel.Booking {
	return bookingModel.Booking{
		ID:         "booking-1",
		BookingRef: "BK0001",
		RoomID:     "room-1",
		GuestName:  "Jane Smith",
		Status:     bookingModel.StatusConfirmed,
	}
}

func checkedInBooking() bookingModel.Booking {
	booking := confirmedBooking()
	booking.Status = bookingModel.StatusCheckedIn
	booking.DepositReceived = decimal.NewFromInt(500)

	return booking
}

func runTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

func TestStayService_CheckIn(t *testing.T) {
	req := dto.CheckInRequest{
		IDNumber:      "A1234567",
		Nationality:   "Indonesian",
		DepositMethod: "Cash",
	}

	t.Run("registers the guest and collects the deposit", func(t *testing.T) {
		svc, mockBookings, mockGuests, _ := newStayFixture(t)

		mockBookings.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(confirmedBooking(), nil)

		mockBookings.EXPECT().
			WithinTx(gomock.Any(), gomock.Any()).
			DoAndReturn(runTx)

		mockBookings.EXPECT().
			TransitionTx(gomock.Any(), gomock.Any(), "booking-1", bookingModel.StatusCheckedIn, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, _ string, _ bookingModel.Status, mod map[string]any) (bool, error) {
				received, ok := mod[bookingModel.FieldDepositReceived].(decimal.Decimal)
				assert.True(t, ok)
				assert.True(t, received.Equal(decimal.NewFromInt(500)))
				assert.Equal(t, "Cash", mod[bookingModel.FieldDepositMethod])

				return true, nil
			})

		mockGuests.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, guest guestModel.Guest) error {
				assert.Equal(t, "booking-1", guest.BookingID)
				assert.Equal(t, "Jane Smith", guest.FullName)
				assert.Equal(t, guestModel.IDTypeDefault, guest.IDType)
				assert.True(t, guest.CheckedIn)
				assert.True(t, guest.CheckInTime.Valid)

				return nil
			})

		res, err := svc.CheckIn(context.Background(), "booking-1", req)

		assert.NoError(t, err)
		assert.Equal(t, "booking-1", res.BookingID)
		assert.True(t, res.CheckedIn)
	})

	t.Run("accepts the amount collected at the desk", func(t *testing.T) {
		svc, mockBookings, mockGuests, _ := newStayFixture(t)

		collected := req
		collected.DepositReceived = "300"

		mockBookings.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(confirmedBooking(), nil)

		mockBookings.EXPECT().
			WithinTx(gomock.Any(), gomock.Any()).
			DoAndReturn(runTx)

		mockBookings.EXPECT().
			TransitionTx(gomock.Any(), gomock.Any(), "booking-1", bookingModel.StatusCheckedIn, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, _ string, _ bookingModel.Status, mod map[string]any) (bool, error) {
				received, ok := mod[bookingModel.FieldDepositReceived].(decimal.Decimal)
				assert.True(t, ok)
				assert.True(t, received.Equal(decimal.NewFromInt(300)))

				return true, nil
			})

		mockGuests.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := svc.CheckIn(context.Background(), "booking-1", collected)

		assert.NoError(t, err)
	})

	t.Run("malformed collected deposit is rejected", func(t *testing.T) {
		svc, mockBookings, _, _ := newStayFixture(t)

		malformed := req
		malformed.DepositReceived = "a lot"

		mockBookings.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(confirmedBooking(), nil)

		_, err := svc.CheckIn(context.Background(), "booking-1", malformed)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("negative collected deposit is rejected", func(t *testing.T) {
		svc, mockBookings, _, _ := newStayFixture(t)

		negative := req
		negative.DepositReceived = "-50"

		mockBookings.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(confirmedBooking(), nil)

		_, err := svc.CheckIn(context.Background(), "booking-1", negative)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("booking not found", func(t *testing.T) {
		svc, mockBookings, _, _ := newStayFixture(t)

		mockBookings.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(bookingModel.Booking{}, nil)

		_, err := svc.CheckIn(context.Background(), "nonexistent-id", req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("duplicate check-in is rejected", func(t *testing.T) {
		svc, mockBookings, _, _ := newStayFixture(t)

		booking := checkedInBooking()

		mockBookings.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		mockBookings.EXPECT().
			WithinTx(gomock.Any(), gomock.Any()).
			DoAndReturn(runTx)

		mockBookings.EXPECT().
			TransitionTx(gomock.Any(), gomock.Any(), "booking-1", bookingModel.StatusCheckedIn, gomock.Any()).
			Return(false, nil)

		_, err := svc.CheckIn(context.Background(), "booking-1", req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("guest insert failure rolls back", func(t *testing.T) {
		svc, mockBookings, mockGuests, _ := newStayFixture(t)

		mockBookings.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(confirmedBooking(), nil)

		mockBookings.EXPECT().
			WithinTx(gomock.Any(), gomock.Any()).
			DoAndReturn(runTx)

		mockBookings.EXPECT().
			TransitionTx(gomock.Any(), gomock.Any(), "booking-1", bookingModel.StatusCheckedIn, gomock.Any()).
			Return(true, nil)

		mockGuests.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		_, err := svc.CheckIn(context.Background(), "booking-1", req)

		assert.Error(t, err)
	})
}

func TestStayService_CheckOut(t *testing.T) {
	tests := []struct {
		name        string
		action      string
		damageNotes string
		wantRefund  int64
		wantIncome  bool
	}{
		{name: "full refund", action: deposit.ActionFull, wantRefund: 500, wantIncome: true},
		{name: "partial refund", action: deposit.ActionPartial, damageNotes: "broken lamp in room 3", wantRefund: 250, wantIncome: true},
		{name: "forfeited deposit", action: deposit.ActionForfeit, damageNotes: "flooded bathroom", wantRefund: 0, wantIncome: false},
		{name: "unspecified action refunds in full", action: "", wantRefund: 500, wantIncome: true},
		{name: "unknown action refunds in full", action: "Half", wantRefund: 500, wantIncome: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockBookings, mockGuests, mockIncome := newStayFixture(t)

			mockBookings.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(checkedInBooking(), nil)

			mockBookings.EXPECT().
				WithinTx(gomock.Any(), gomock.Any()).
				DoAndReturn(runTx)

			mockBookings.EXPECT().
				TransitionTx(gomock.Any(), gomock.Any(), "booking-1", bookingModel.StatusCheckedOut, gomock.Any()).
				Return(true, nil)

			mockGuests.EXPECT().
				UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ *sqlx.Tx, mod map[string]any, _ interface{}) error {
					assert.Equal(t, true, mod[guestModel.FieldCheckedOut])

					return nil
				})

			if tt.wantIncome {
				mockIncome.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, income ledgerModel.Income) error {
						assert.Equal(t, "Deposit refund - Jane Smith", income.Description)
						assert.Equal(t, ledgerModel.CategoryDeposit, income.Category)
						assert.Equal(t, ledgerModel.PaymentMethodRefund, income.PaymentMethod)
						assert.True(t, income.Amount.Equal(decimal.NewFromInt(tt.wantRefund)))
						assert.Equal(t, "booking-1", income.BookingID.String)
						assert.Equal(t, tt.damageNotes, income.Notes)

						return nil
					})
			}

			res, err := svc.CheckOut(context.Background(), "booking-1", dto.CheckOutRequest{DepositAction: tt.action, DamageNotes: tt.damageNotes})

			assert.NoError(t, err)
			assert.Equal(t, "BK0001", res.BookingRef)
			assert.True(t, res.DepositRefunded.Equal(decimal.NewFromInt(tt.wantRefund)))
		})
	}

	t.Run("refund derives from the policy deposit, not the collected amount", func(t *testing.T) {
		svc, mockBookings, mockGuests, mockIncome := newStayFixture(t)

		booking := checkedInBooking()
		booking.DepositReceived = decimal.NewFromInt(300)

		mockBookings.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		mockBookings.EXPECT().
			WithinTx(gomock.Any(), gomock.Any()).
			DoAndReturn(runTx)

		mockBookings.EXPECT().
			TransitionTx(gomock.Any(), gomock.Any(), "booking-1", bookingModel.StatusCheckedOut, gomock.Any()).
			Return(true, nil)

		mockGuests.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		mockIncome.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, income ledgerModel.Income) error {
				assert.True(t, income.Amount.Equal(decimal.NewFromInt(250)))

				return nil
			})

		res, err := svc.CheckOut(context.Background(), "booking-1", dto.CheckOutRequest{DepositAction: deposit.ActionPartial})

		assert.NoError(t, err)
		assert.True(t, res.DepositRefunded.Equal(decimal.NewFromInt(250)))
	})

	t.Run("check-out before check-in is rejected", func(t *testing.T) {
		svc, mockBookings, _, _ := newStayFixture(t)

		mockBookings.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(confirmedBooking(), nil)

		mockBookings.EXPECT().
			WithinTx(gomock.Any(), gomock.Any()).
			DoAndReturn(runTx)

		mockBookings.EXPECT().
			TransitionTx(gomock.Any(), gomock.Any(), "booking-1", bookingModel.StatusCheckedOut, gomock.Any()).
			Return(false, nil)

		_, err := svc.CheckOut(context.Background(), "booking-1", dto.CheckOutRequest{})

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("booking not found", func(t *testing.T) {
		svc, mockBookings, _, _ := newStayFixture(t)

		mockBookings.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(bookingModel.Booking{}, nil)

		_, err := svc.CheckOut(context.Background(), "nonexistent-id", dto.CheckOutRequest{})

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
