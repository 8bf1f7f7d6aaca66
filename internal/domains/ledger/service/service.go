package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/internal/domains/ledger/model"
	"lodge/internal/domains/ledger/model/dto"
	"lodge/internal/domains/ledger/repository"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
)

const (
	cacheGetAllTransaction = "transaction:gets"
	cacheCountTransaction  = "transaction:count"
)

type Ledger interface {
	Record(ctx context.Context, req dto.RecordTransactionRequest) (dto.TransactionResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup, txnType string) (dto.GetTransactionsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup, txnType string) (int, error)
}

type serviceImpl struct {
	incomeRepo  repository.Income
	expenseRepo repository.Expense
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(incomeRepo repository.Income, expenseRepo repository.Expense, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Ledger {
	return &serviceImpl{
		incomeRepo:  incomeRepo,
		expenseRepo: expenseRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Record appends one row to the income or expenses ledger. Rows are never
// amended afterwards; corrections go in as new entries.
func (s *serviceImpl) Record(ctx context.Context, req dto.RecordTransactionRequest) (res dto.TransactionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Record")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	switch req.Type {
	case model.TypeIncome:
		income, parseErr := req.ToIncomeModel(user)
		if parseErr != nil {
			log.Error().Err(parseErr).Msg("failed to parse income transaction")

			return res, failure.BadRequest(parseErr) // nolint:wrapcheck
		}

		if err = s.incomeRepo.Insert(ctx, income); err != nil {
			log.Error().Err(err).Msg("failed to record income")

			return res, fmt.Errorf("failed to record income: %w", err)
		}

		res.FromIncomeModel(income)
	case model.TypeExpense:
		expense, parseErr := req.ToExpenseModel(user)
		if parseErr != nil {
			log.Error().Err(parseErr).Msg("failed to parse expense transaction")

			return res, failure.BadRequest(parseErr) // nolint:wrapcheck
		}

		if err = s.expenseRepo.Insert(ctx, expense); err != nil {
			log.Error().Err(err).Msg("failed to record expense")

			return res, fmt.Errorf("failed to record expense: %w", err)
		}

		res.FromExpenseModel(expense)
	default:
		return res, failure.BadRequestFromString("type must be income or expense") // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllTransaction)
		shared.InvalidateCaches(c, s.cache, cacheCountTransaction)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup, txnType string) (res dto.GetTransactionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if txnType != model.TypeIncome && txnType != model.TypeExpense {
		return res, failure.BadRequestFromString("type must be income or expense") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cacheGetAllTransaction, txnType), req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for transactions")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter, txnType)
	if err != nil {
		log.Error().Err(err).Msg("failed to count transactions")

		return res, fmt.Errorf("failed to count transactions: %w", err)
	}

	if txnType == model.TypeIncome {
		models, getErr := s.incomeRepo.GetAll(ctx, req, filter)
		if getErr != nil {
			log.Error().Err(getErr).Msg("failed to get income transactions")

			return res, fmt.Errorf("failed to get income transactions: %w", getErr)
		}

		res.FromIncomeModels(models, total, req.Limit)
	} else {
		models, getErr := s.expenseRepo.GetAll(ctx, req, filter)
		if getErr != nil {
			log.Error().Err(getErr).Msg("failed to get expense transactions")

			return res, fmt.Errorf("failed to get expense transactions: %w", getErr)
		}

		res.FromExpenseModels(models, total, req.Limit)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save transactions to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup, txnType string) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cacheCountTransaction, txnType), req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for transaction count")

		return res, nil
	}

	if txnType == model.TypeIncome {
		res, err = s.incomeRepo.Count(ctx, filter)
	} else {
		res, err = s.expenseRepo.Count(ctx, filter)
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to count transactions")

		return res, fmt.Errorf("failed to count transactions: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save transaction count to cache")
		}
	}()

	return res, nil
}
