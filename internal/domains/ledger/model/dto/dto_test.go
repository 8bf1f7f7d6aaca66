package dto_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"lodge/internal/domains/ledger/model"
	"lodge/internal/domains/ledger/model/dto"
)

func TestRecordTransactionRequest_ToIncomeModel(t *testing.T) {
	req := dto.RecordTransactionRequest{
		Type:            model.TypeIncome,
		TransactionDate: "2026-03-12",
		Description:     "Deposit refund - Jane Smith",
		Category:        "Deposit",
		Amount:          "250",
		PaymentMethod:   "Refund",
		BookingID:       "5ad278de-45aa-44b9-bb10-17ec82e57fe0",
	}

	userID := "test-user-id"
	income, err := req.ToIncomeModel(userID)

	assert.NoError(t, err)
	assert.NotEmpty(t, income.ID, "expected ID to be generated")
	assert.Equal(t, req.Description, income.Description)
	assert.Equal(t, req.Category, income.Category)
	assert.True(t, income.Amount.Equal(decimal.NewFromInt(250)))
	assert.True(t, income.BookingID.Valid)
	assert.Equal(t, req.BookingID, income.BookingID.String)
	assert.Equal(t, userID, income.CreatedBy)
}

func TestRecordTransactionRequest_ToIncomeModel_NoBooking(t *testing.T) {
	req := dto.RecordTransactionRequest{
		Type:            model.TypeIncome,
		TransactionDate: "2026-03-12",
		Description:     "Walk-in laundry",
		Category:        "Services",
		Amount:          "35.50",
	}

	income, err := req.ToIncomeModel("test-user-id")

	assert.NoError(t, err)
	assert.False(t, income.BookingID.Valid, "expected booking_id to stay null")
}

func TestRecordTransactionRequest_ToExpenseModel(t *testing.T) {
	req := dto.RecordTransactionRequest{
		Type:            model.TypeExpense,
		TransactionDate: "2026-03-12",
		Description:     "Cleaning supplies",
		Category:        "Maintenance",
		Amount:          "89.90",
		ReceiptNumber:   "RCT-0099",
	}

	expense, err := req.ToExpenseModel("test-user-id")

	assert.NoError(t, err)
	assert.NotEmpty(t, expense.ID)
	assert.Equal(t, req.ReceiptNumber, expense.ReceiptNumber)
	assert.True(t, expense.Amount.Equal(decimal.RequireFromString("89.90")))
}

func TestRecordTransactionRequest_ToIncomeModel_InvalidAmount(t *testing.T) {
	req := dto.RecordTransactionRequest{
		Type:            model.TypeIncome,
		TransactionDate: "2026-03-12",
		Description:     "Bad entry",
		Category:        "Misc",
		Amount:          "abc",
	}

	_, err := req.ToIncomeModel("test-user-id")

	assert.Error(t, err)
}

func TestRecordTransactionRequest_ToIncomeModel_NegativeAmount(t *testing.T) {
	req := dto.RecordTransactionRequest{
		Type:            model.TypeIncome,
		TransactionDate: "2026-03-12",
		Description:     "Bad entry",
		Category:        "Misc",
		Amount:          "-10",
	}

	_, err := req.ToIncomeModel("test-user-id")

	assert.Error(t, err)
}

func TestTransactionResponse_FromIncomeModel(t *testing.T) {
	req := dto.RecordTransactionRequest{
		Type:            model.TypeIncome,
		TransactionDate: "2026-03-12",
		Description:     "Deposit refund - Jane Smith",
		Category:        model.CategoryDeposit,
		Amount:          "500",
		PaymentMethod:   model.PaymentMethodRefund,
	}

	income, err := req.ToIncomeModel("test-user-id")
	assert.NoError(t, err)

	var response dto.TransactionResponse
	response.FromIncomeModel(income)

	assert.Equal(t, model.TypeIncome, response.Type)
	assert.Equal(t, "2026-03-12", response.TransactionDate)
	assert.Equal(t, income.Description, response.Description)
	assert.True(t, response.Amount.Equal(decimal.NewFromInt(500)))
	assert.Empty(t, response.BookingID)
}

func TestGetTransactionsResponse_FromExpenseModels(t *testing.T) {
	expenses := []model.Expense{
		{ID: "test-id-1", Description: "Linen"},
		{ID: "test-id-2", Description: "Detergent"},
	}

	var response dto.GetTransactionsResponse
	response.FromExpenseModels(expenses, 12, 10)

	assert.Len(t, response.Transactions, 2)
	assert.Equal(t, 12, response.TotalData)
	assert.Equal(t, 2, response.TotalPage)
	assert.Equal(t, model.TypeExpense, response.Transactions[0].Type)
}
