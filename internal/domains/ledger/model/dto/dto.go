package dto

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"lodge/internal/domains/ledger/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

type RecordTransactionRequest struct {
	Type            string `json:"type"             validate:"required,oneof=income expense"`
	TransactionDate string `json:"transaction_date" validate:"required"`
	Description     string `json:"description"      validate:"required,max=500"`
	Category        string `json:"category"         validate:"required,max=100"`
	Amount          string `json:"amount"           validate:"required"`
	PaymentMethod   string `json:"payment_method"   validate:"omitempty,max=50"`
	BookingID       string `json:"booking_id"       validate:"omitempty,uuid"`
	ReceiptNumber   string `json:"receipt_number"   validate:"omitempty,max=100"`
	Notes           string `json:"notes"            validate:"omitempty"`
}

func (r *RecordTransactionRequest) parse() (time.Time, decimal.Decimal, error) {
	date, err := timezone.Parse(constant.DateOnlyFormat, r.TransactionDate)
	if err != nil {
		return time.Time{}, decimal.Zero, fmt.Errorf("invalid transaction_date: %w", err)
	}

	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return time.Time{}, decimal.Zero, fmt.Errorf("invalid amount: %w", err)
	}

	if amount.IsNegative() {
		return time.Time{}, decimal.Zero, fmt.Errorf("amount must not be negative")
	}

	return date, amount, nil
}

func (r *RecordTransactionRequest) ToIncomeModel(user string) (model.Income, error) {
	date, amount, err := r.parse()
	if err != nil {
		return model.Income{}, err
	}

	bookingID := sql.NullString{}
	if r.BookingID != constant.Empty {
		bookingID = sql.NullString{String: r.BookingID, Valid: true}
	}

	return model.Income{
		ID:              uuid.NewString(),
		TransactionDate: date,
		Description:     r.Description,
		Category:        r.Category,
		Amount:          amount,
		PaymentMethod:   r.PaymentMethod,
		BookingID:       bookingID,
		Notes:           r.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

func (r *RecordTransactionRequest) ToExpenseModel(user string) (model.Expense, error) {
	date, amount, err := r.parse()
	if err != nil {
		return model.Expense{}, err
	}

	return model.Expense{
		ID:              uuid.NewString(),
		TransactionDate: date,
		Description:     r.Description,
		Category:        r.Category,
		Amount:          amount,
		PaymentMethod:   r.PaymentMethod,
		ReceiptNumber:   r.ReceiptNumber,
		Notes:           r.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type TransactionResponse struct {
	ID              string          `json:"id"`
	Type            string          `json:"type"`
	TransactionDate string          `json:"transaction_date"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethod   string          `json:"payment_method"`
	BookingID       string          `json:"booking_id,omitempty"`
	ReceiptNumber   string          `json:"receipt_number,omitempty"`
	Notes           string          `json:"notes"`
	gDto.Metadata
}

func (t *TransactionResponse) FromIncomeModel(mod model.Income) {
	t.ID = mod.ID
	t.Type = model.TypeIncome
	t.TransactionDate = mod.TransactionDate.Format(constant.DateOnlyFormat)
	t.Description = mod.Description
	t.Category = mod.Category
	t.Amount = mod.Amount
	t.PaymentMethod = mod.PaymentMethod
	t.BookingID = mod.BookingID.String
	t.Notes = mod.Notes
	t.Metadata.FromModel(mod.Metadata)
}

func (t *TransactionResponse) FromExpenseModel(mod model.Expense) {
	t.ID = mod.ID
	t.Type = model.TypeExpense
	t.TransactionDate = mod.TransactionDate.Format(constant.DateOnlyFormat)
	t.Description = mod.Description
	t.Category = mod.Category
	t.Amount = mod.Amount
	t.PaymentMethod = mod.PaymentMethod
	t.ReceiptNumber = mod.ReceiptNumber
	t.Notes = mod.Notes
	t.Metadata.FromModel(mod.Metadata)
}

type GetTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetTransactionsResponse) FromIncomeModels(models []model.Income, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Transactions = make([]TransactionResponse, len(models))
	for i, mod := range models {
		r.Transactions[i].FromIncomeModel(mod)
	}
}

func (r *GetTransactionsResponse) FromExpenseModels(models []model.Expense, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Transactions = make([]TransactionResponse, len(models))
	for i, mod := range models {
		r.Transactions[i].FromExpenseModel(mod)
	}
}
