package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/ledger/model"
	gDto "lodge/shared/dto"
	gRepo "lodge/shared/repository"
)

// The ledger is append-only: neither repository exposes update or delete.

type Income interface {
	Insert(ctx context.Context, model model.Income) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Income) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Income, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type Expense interface {
	Insert(ctx context.Context, model model.Expense) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Expense, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type incomeRepositoryImpl struct {
	gRepo.Repository[model.Income]
	db   *postgres.Connection
	otel otel.Otel
}

func NewIncome(db *postgres.Connection, otel otel.Otel) Income {
	return &incomeRepositoryImpl{
		Repository: gRepo.NewRepository[model.Income](model.IncomeEntityName, model.IncomeTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type expenseRepositoryImpl struct {
	gRepo.Repository[model.Expense]
	db   *postgres.Connection
	otel otel.Otel
}

func NewExpense(db *postgres.Connection, otel otel.Otel) Expense {
	return &expenseRepositoryImpl{
		Repository: gRepo.NewRepository[model.Expense](model.ExpenseEntityName, model.ExpenseTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
