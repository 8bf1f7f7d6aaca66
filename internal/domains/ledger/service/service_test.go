package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	ledgerMocks "lodge/internal/domains/ledger/mocks"
	"lodge/internal/domains/ledger/model"
	"lodge/internal/domains/ledger/model/dto"
	"lodge/internal/domains/ledger/service"
	cacheMocks "lodge/shared/cache/mocks"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
)

func gDtoParams() gDto.QueryParams {
	return gDto.QueryParams{Page: 1, Limit: 10}
}

func gDtoFilter() gDto.FilterGroup {
	return gDto.FilterGroup{}
}

func newLedgerFixture(t *testing.T) (service.Ledger, *ledgerMocks.MockIncome, *ledgerMocks.MockExpense, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockIncome := ledgerMocks.NewMockIncome(ctrl)
	mockExpense := ledgerMocks.NewMockExpense(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	svc := service.New(mockIncome, mockExpense, cfg, mockCache, mockOtel)

	return svc, mockIncome, mockExpense, mockCache
}

func TestLedgerService_Record(t *testing.T) {
	incomeReq := dto.RecordTransactionRequest{
		Type:            model.TypeIncome,
		TransactionDate: "2026-03-12",
		Description:     "Room revenue",
		Category:        "Accommodation",
		Amount:          "350.50",
		PaymentMethod:   "Cash",
	}

	t.Run("records income", func(t *testing.T) {
		svc, mockIncome, _, _ := newLedgerFixture(t)

		mockIncome.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, income model.Income) error {
				assert.Equal(t, "Room revenue", income.Description)
				assert.True(t, income.Amount.Equal(decimal.RequireFromString("350.50")))
				assert.False(t, income.BookingID.Valid)

				return nil
			})

		res, err := svc.Record(context.Background(), incomeReq)

		assert.NoError(t, err)
		assert.Equal(t, model.TypeIncome, res.Type)
	})

	t.Run("records expense", func(t *testing.T) {
		svc, _, mockExpense, _ := newLedgerFixture(t)

		req := incomeReq
		req.Type = model.TypeExpense
		req.ReceiptNumber = "RCT-0099"

		mockExpense.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, expense model.Expense) error {
				assert.Equal(t, "RCT-0099", expense.ReceiptNumber)

				return nil
			})

		res, err := svc.Record(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, model.TypeExpense, res.Type)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		svc, _, _, _ := newLedgerFixture(t)

		req := incomeReq
		req.Type = "transfer"

		_, err := svc.Record(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("rejects malformed amount", func(t *testing.T) {
		svc, _, _, _ := newLedgerFixture(t)

		req := incomeReq
		req.Amount = "three hundred"

		_, err := svc.Record(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		svc, _, _, _ := newLedgerFixture(t)

		req := incomeReq
		req.Amount = "-10"

		_, err := svc.Record(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockIncome, _, _ := newLedgerFixture(t)

		mockIncome.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		_, err := svc.Record(context.Background(), incomeReq)

		assert.Error(t, err)
	})
}

func TestLedgerService_GetAll(t *testing.T) {
	t.Run("income listing", func(t *testing.T) {
		svc, mockIncome, _, mockCache := newLedgerFixture(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)

		mockIncome.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		mockIncome.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Income{{ID: "income-1", Category: model.CategoryDeposit}}, nil)

		res, err := svc.GetAll(context.Background(), gDtoParams(), gDtoFilter(), model.TypeIncome)

		assert.NoError(t, err)
		assert.Len(t, res.Transactions, 1)
		assert.Equal(t, model.TypeIncome, res.Transactions[0].Type)
	})

	t.Run("expense listing", func(t *testing.T) {
		svc, _, mockExpense, mockCache := newLedgerFixture(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)

		mockExpense.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		mockExpense.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Expense{{ID: "expense-1"}}, nil)

		res, err := svc.GetAll(context.Background(), gDtoParams(), gDtoFilter(), model.TypeExpense)

		assert.NoError(t, err)
		assert.Len(t, res.Transactions, 1)
		assert.Equal(t, model.TypeExpense, res.Transactions[0].Type)
	})

	t.Run("unknown type", func(t *testing.T) {
		svc, _, _, _ := newLedgerFixture(t)

		_, err := svc.GetAll(context.Background(), gDtoParams(), gDtoFilter(), "transfer")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}
