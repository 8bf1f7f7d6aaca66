package ledger

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"lodge/infras/otel"
	"lodge/internal/domains/ledger/model"
	"lodge/internal/domains/ledger/model/dto"
	"lodge/internal/domains/ledger/service"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/validator"
	"lodge/transport/http/response"
)

const requestParamType = "type"

type Handler struct {
	service service.Ledger
	otel    otel.Otel
}

func New(service service.Ledger, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/transactions", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.RecordTransaction)
		routerGroup.Get("/", handler.GetTransactions)
	})
}

type RecordTransactionPayload struct {
	Transaction dto.TransactionResponse `json:"transaction"`
	Message     string                  `json:"message"`
}

// RecordTransaction appends an income or expense entry to the ledger.
// @Summary Record a transaction
// @Description Append an income or expense row to the ledger. Entries are never updated or deleted.
// @Tags Ledger
// @Accept json
// @Produce json
// @Param request body dto.RecordTransactionRequest true "Record Transaction Request"
// @Success 201 {object} response.Data[RecordTransactionPayload] "Transaction logged successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/transactions [post]
func (handler *Handler) RecordTransaction(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RecordTransaction")
	defer scope.End()

	req := dto.RecordTransactionRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	transaction, err := handler.service.Record(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record transaction")

		response.WithError(writer, err)

		return
	}

	label := "Income"
	if transaction.Type == model.TypeExpense {
		label = "Expense"
	}

	scope.AddEvent("transaction recorded")

	response.WithJSON(writer, http.StatusCreated, RecordTransactionPayload{
		Transaction: transaction,
		Message:     fmt.Sprintf("%s logged successfully", label),
	})
}

// GetTransactions lists ledger entries of one type.
// @Summary Get transactions
// @Description Retrieve income or expense entries with optional filtering and pagination.
// @Tags Ledger
// @Accept json
// @Produce json
// @Param type query string true "Transaction type (income or expense)"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param category query string false "Filter by category"
// @Param transaction_date query string false "Filter by transaction date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetTransactionsResponse] "List of transactions"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/transactions [get]
func (handler *Handler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTransactions")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	txnType := r.URL.Query().Get(requestParamType)
	if txnType == "" {
		txnType = model.TypeIncome
	}

	table := model.IncomeTableName
	if txnType == model.TypeExpense {
		table = model.ExpenseTableName
	}

	category := r.URL.Query().Get(model.FieldCategory)
	transactionDate := r.URL.Query().Get(model.FieldTransactionDate)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if category != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
			Table:    table,
		})
	}

	if transactionDate != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldTransactionDate,
			Operator: gDto.FilterOperatorEq,
			Value:    transactionDate,
			Table:    table,
		})
	}

	transactions, err := handler.service.GetAll(ctx, queryParams, filterGroup, txnType)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get transactions")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, transactions)
}
