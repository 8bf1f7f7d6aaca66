package model

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"lodge/shared/model"
)

const (
	IncomeTableName  = "income"
	IncomeEntityName = "income"

	ExpenseTableName  = "expenses"
	ExpenseEntityName = "expense"

	FieldID              = "id"
	FieldTransactionDate = "transaction_date"
	FieldDescription     = "description"
	FieldCategory        = "category"
	FieldAmount          = "amount"
	FieldPaymentMethod   = "payment_method"
	FieldBookingID       = "booking_id"
	FieldReceiptNumber   = "receipt_number"
	FieldNotes           = "notes"

	TypeIncome  = "income"
	TypeExpense = "expense"

	CategoryDeposit     = "Deposit"
	PaymentMethodRefund = "Refund"
)

type Income struct {
	ID              string          `db:"id"`
	TransactionDate time.Time       `db:"transaction_date"`
	Description     string          `db:"description"`
	Category        string          `db:"category"`
	Amount          decimal.Decimal `db:"amount"`
	PaymentMethod   string          `db:"payment_method"`
	BookingID       sql.NullString  `db:"booking_id"`
	Notes           string          `db:"notes"`
	model.Metadata
}

type Expense struct {
	ID              string          `db:"id"`
	TransactionDate time.Time       `db:"transaction_date"`
	Description     string          `db:"description"`
	Category        string          `db:"category"`
	Amount          decimal.Decimal `db:"amount"`
	PaymentMethod   string          `db:"payment_method"`
	ReceiptNumber   string          `db:"receipt_number"`
	Notes           string          `db:"notes"`
	model.Metadata
}
