package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"maps"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/booking/model"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/logger"
	gRepo "lodge/shared/repository"
)

const nextSequenceQuery = `UPDATE booking_sequence SET value = value + 1 WHERE id = 1 RETURNING value`

var errNoPredecessor = errors.New("status has no predecessor")

type Booking interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) error
	NextSequenceTx(ctx context.Context, sqltx *sqlx.Tx) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	TransitionTx(ctx context.Context, sqltx *sqlx.Tx, id string, to model.Status, mod map[string]any) (bool, error)
	WithinTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// NextSequenceTx reserves the next booking sequence number. The single counter
// row is locked by the UPDATE until the surrounding transaction ends, so two
// concurrent bookings can never observe the same value.
func (repo *repositoryImpl) NextSequenceTx(ctx context.Context, sqltx *sqlx.Tx) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.NextSequenceTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, nextSequenceQuery)

	var seq int64

	if err := sqltx.GetContext(ctx, &seq, nextSequenceQuery); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to advance booking sequence: %w", err)
	}

	return seq, nil
}

// TransitionTx moves a booking to the given status only if it still holds the
// status' sole predecessor. It reports false when the guard matched no row.
func (repo *repositoryImpl) TransitionTx(ctx context.Context, sqltx *sqlx.Tx, id string, to model.Status, mod map[string]any) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.TransitionTx")
	defer scope.End()

	from, ok := to.Predecessor()
	if !ok {
		return false, errNoPredecessor
	}

	fields := map[string]any{model.FieldStatus: string(to)}
	maps.Copy(fields, mod)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    string(from),
				Table:    model.TableName,
			},
		},
	}

	affected, err := repo.UpdateTxAffected(ctx, sqltx, fields, filter)
	if err != nil {
		return false, err //nolint:wrapcheck
	}

	return affected > 0, nil
}

func (repo *repositoryImpl) WithinTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	return repo.db.WithinTx(ctx, fn) //nolint:wrapcheck
}

// IsUniqueViolation reports whether err is a postgres duplicate-key error,
// such as two transactions racing to insert the same booking reference.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
	}

	return false
}
