package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"lodge/config"
	"lodge/infras/otel"
	bookingModel "lodge/internal/domains/booking/model"
	bookingRepo "lodge/internal/domains/booking/repository"
	guestModel "lodge/internal/domains/guest/model"
	guestDto "lodge/internal/domains/guest/model/dto"
	guestRepository "lodge/internal/domains/guest/repository"
	ledgerModel "lodge/internal/domains/ledger/model"
	ledgerRepository "lodge/internal/domains/ledger/repository"
	"lodge/internal/domains/stay/deposit"
	"lodge/internal/domains/stay/model/dto"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

const (
	cacheGetBooking        = "booking:get"
	cacheGetAllBooking     = "booking:gets"
	cacheCountBooking      = "booking:count"
	cacheGetAllTransaction = "transaction:gets"
	cacheCountTransaction  = "transaction:count"
)

type Stay interface {
	CheckIn(ctx context.Context, bookingID string, req dto.CheckInRequest) (guestDto.GuestResponse, error)
	CheckOut(ctx context.Context, bookingID string, req dto.CheckOutRequest) (dto.CheckOutResponse, error)
}

type serviceImpl struct {
	bookings bookingRepo.Booking
	guests   guestRepository.Guest
	income   ledgerRepository.Income
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(bookings bookingRepo.Booking, guests guestRepository.Guest, income ledgerRepository.Income, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Stay {
	return &serviceImpl{
		bookings: bookings,
		guests:   guests,
		income:   income,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// CheckIn registers the guest and moves the booking from Confirmed to
// Checked-In. The status guard and the guest insert commit together, so a
// concurrent duplicate check-in rolls back before it can register a second
// guest.
func (s *serviceImpl) CheckIn(ctx context.Context, bookingID string, req dto.CheckInRequest) (res guestDto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return res, err
	}

	depositReceived, err := s.collectedDeposit(req.DepositReceived)
	if err != nil {
		return res, err
	}

	guest := req.ToGuestModel(user, booking.ID, booking.GuestName)

	err = s.bookings.WithinTx(ctx, func(tx *sqlx.Tx) error {
		applied, txErr := s.bookings.TransitionTx(ctx, tx, booking.ID, bookingModel.StatusCheckedIn, map[string]any{
			bookingModel.FieldDepositMethod:   req.DepositMethod,
			bookingModel.FieldDepositReceived: depositReceived,
			constant.FieldModifiedAt:          timezone.Now(),
			constant.FieldModifiedBy:          user,
		})
		if txErr != nil {
			return txErr
		}

		if !applied {
			return failure.InvalidState("booking must be Confirmed to check in") // nolint:wrapcheck
		}

		return s.guests.InsertTx(ctx, tx, guest)
	})
	if err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to check in guest")

		return res, err
	}

	scope.AddEvent("guest checked in for booking " + booking.BookingRef)
	s.invalidateBookingCaches(ctx, booking.ID)

	res.FromModel(guest)

	return res, nil
}

// CheckOut settles the deposit and moves the booking from Checked-In to
// Checked-Out. A refunded deposit is recorded as an income ledger row inside
// the same transaction.
func (s *serviceImpl) CheckOut(ctx context.Context, bookingID string, req dto.CheckOutRequest) (res dto.CheckOutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOut")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return res, err
	}

	// The refund comes off the full policy deposit, not the collected amount.
	policyDeposit, err := s.policyDeposit()
	if err != nil {
		return res, err
	}

	refund := deposit.Refund(req.DepositAction, policyDeposit)
	now := timezone.Now()

	guestFilter := shared.FilterByID(booking.ID, guestModel.FieldBookingID, guestModel.TableName)

	err = s.bookings.WithinTx(ctx, func(tx *sqlx.Tx) error {
		applied, txErr := s.bookings.TransitionTx(ctx, tx, booking.ID, bookingModel.StatusCheckedOut, map[string]any{
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		})
		if txErr != nil {
			return txErr
		}

		if !applied {
			return failure.InvalidState("booking must be Checked-In to check out") // nolint:wrapcheck
		}

		txErr = s.guests.UpdateTx(ctx, tx, map[string]any{
			guestModel.FieldCheckedOut:   true,
			guestModel.FieldCheckOutTime: now,
			constant.FieldModifiedAt:     now,
			constant.FieldModifiedBy:     user,
		}, guestFilter)
		if txErr != nil {
			return txErr
		}

		if !refund.IsPositive() {
			return nil
		}

		return s.income.InsertTx(ctx, tx, ledgerModel.Income{
			ID:              uuid.NewString(),
			TransactionDate: now,
			Description:     "Deposit refund - " + booking.GuestName,
			Category:        ledgerModel.CategoryDeposit,
			Amount:          refund,
			PaymentMethod:   ledgerModel.PaymentMethodRefund,
			Notes:           req.DamageNotes,
			BookingID:       sql.NullString{String: booking.ID, Valid: true},
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  user,
				ModifiedBy: user,
			},
		})
	})
	if err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to check out guest")

		return res, err
	}

	scope.AddEvent("guest checked out for booking " + booking.BookingRef)
	s.invalidateBookingCaches(ctx, booking.ID)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllTransaction)
		shared.InvalidateCaches(c, s.cache, cacheCountTransaction)
	}()

	res.BookingID = booking.ID
	res.BookingRef = booking.BookingRef
	res.DepositRefunded = refund

	return res, nil
}

// policyDeposit parses the configured deposit amount, the fixed figure both
// collection defaults and refunds are derived from.
func (s *serviceImpl) policyDeposit() (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s.cfg.Booking.DepositAmount)
	if err != nil {
		log.Error().Err(err).Str("depositAmount", s.cfg.Booking.DepositAmount).Msg("invalid configured deposit amount")

		return decimal.Zero, failure.InternalError(err) // nolint:wrapcheck
	}

	return amount, nil
}

// collectedDeposit resolves the amount taken at the desk, defaulting to the
// configured deposit when the request leaves it out.
func (s *serviceImpl) collectedDeposit(raw string) (decimal.Decimal, error) {
	if raw == constant.Empty {
		return s.policyDeposit()
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, failure.BadRequest(fmt.Errorf("invalid deposit_received: %w", err)) // nolint:wrapcheck
	}

	if amount.IsNegative() {
		return decimal.Zero, failure.BadRequestFromString("deposit_received must not be negative") // nolint:wrapcheck
	}

	return amount, nil
}

func (s *serviceImpl) getBooking(ctx context.Context, bookingID string) (bookingModel.Booking, error) {
	booking, err := s.bookings.Get(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) invalidateBookingCaches(ctx context.Context, bookingID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, bookingID)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}
