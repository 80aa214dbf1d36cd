package http

import (
	"context"
	"log/slog"
	"net/http"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/distribution"
	"laundry/internal/core/domain/model/expense"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Handler is an application use case that produces a result.
type Handler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// CommandHandler is an application use case without a result.
type CommandHandler[In any] interface {
	Handle(ctx context.Context, in In) error
}

// Handlers are the use cases the server exposes.
type Handlers struct {
	ComputePrice       Handler[queries.ComputePriceQuery, services.Quote]
	CreateOrder        Handler[commands.CreateOrderCommand, order.ID]
	GetActiveOrders    Handler[queries.GetActiveOrdersQuery, []queries.GetActiveOrdersQueryResponse]
	GetOrder           Handler[queries.GetOrderQuery, queries.GetOrderQueryResponse]
	UpdateOrderDetails CommandHandler[commands.UpdateOrderDetailsCommand]
	AdvanceOrderStatus CommandHandler[commands.AdvanceOrderStatusCommand]
	MarkOrderPaid      CommandHandler[commands.MarkOrderPaidCommand]

	CreateExpense         Handler[commands.CreateExpenseCommand, kernel.UUID]
	DeleteExpense         CommandHandler[commands.DeleteExpenseCommand]
	ReimburseExpense      CommandHandler[commands.ReimburseExpenseCommand]
	BulkReimburseExpenses Handler[commands.BulkReimburseExpensesCommand, commands.BulkReimbursementResult]
	GetOwnerPendingTotals Handler[queries.GetOwnerPendingTotalsQuery, []queries.GetOwnerPendingTotalsQueryResponse]

	RecordLoadCompletion CommandHandler[commands.RecordLoadCompletionCommand]
	SetSalaryPaid        CommandHandler[commands.SetSalaryPaidCommand]

	GetFinancialSummary     Handler[queries.GetFinancialSummaryQuery, queries.GetFinancialSummaryQueryResponse]
	GetDistributions        Handler[queries.GetDistributionsQuery, []queries.GetDistributionsQueryResponse]
	CloseDistributionPeriod Handler[commands.CloseDistributionPeriodCommand, []*distribution.Record]
	ClaimDistribution       Handler[commands.ClaimDistributionCommand, *distribution.Record]
}

var _ ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It translates requests into commands and queries and maps the outcome
// back to the API models.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      handlers,
		logger: logger.With("component", "http"),
	}
}

// ComputePrice handles POST /api/v1/quotes.
func (s *Server) ComputePrice(ctx echo.Context) error {
	var req QuoteRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	query := queries.NewComputePriceQuery(order.ServicePackage(req.ServicePackage), req.WeightKg, orZero(req.DistanceKm))

	quote, err := s.h.ComputePrice.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, quoteFromDomain(quote))
}

// CreateOrder handles POST /api/v1/orders. The response carries the
// allocated identifier.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrder
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(
		req.CustomerID,
		order.ServicePackage(req.ServicePackage),
		order.DeliveryOption(req.DeliveryOption),
		req.WeightKg,
		orZero(req.DistanceKm),
	)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	id, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: id.String()})
}

// GetActiveOrders handles GET /api/v1/orders.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	orders, err := s.h.GetActiveOrders.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, lo.Map(orders, func(o queries.GetActiveOrdersQueryResponse, _ int) OrderSummary {
		return orderSummaryFromQuery(o)
	}))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID string) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	o, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, orderFromQuery(o))
}

// UpdateOrderDetails handles PATCH /api/v1/orders/{orderId}.
func (s *Server) UpdateOrderDetails(ctx echo.Context, orderID string) error {
	var req OrderDetails
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderDetailsCommand(orderID, req.EmployeeID, req.PieceCount)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return s.exec(ctx, s.h.UpdateOrderDetails.Handle(ctx.Request().Context(), cmd))
}

// AdvanceOrderStatus handles POST /api/v1/orders/{orderId}/status.
func (s *Server) AdvanceOrderStatus(ctx echo.Context, orderID string) error {
	var req StatusChange
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID, req.Status)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return s.exec(ctx, s.h.AdvanceOrderStatus.Handle(ctx.Request().Context(), cmd))
}

// MarkOrderPaid handles PUT /api/v1/orders/{orderId}/payment.
func (s *Server) MarkOrderPaid(ctx echo.Context, orderID string) error {
	var req Payment
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewMarkOrderPaidCommand(orderID, req.IsPaid)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return s.exec(ctx, s.h.MarkOrderPaid.Handle(ctx.Request().Context(), cmd))
}

// CreateExpense handles POST /api/v1/expenses.
func (s *Server) CreateExpense(ctx echo.Context) error {
	var req NewExpense
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	amount, err := kernel.MoneyFromDecimal(req.Amount)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	cmd, err := commands.NewCreateExpenseCommand(req.Title, amount, expense.For(req.ExpenseFor), req.IncurredOn.Time)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	id, err := s.h.CreateExpense.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: id.String()})
}

// DeleteExpense handles DELETE /api/v1/expenses/{expenseId}.
func (s *Server) DeleteExpense(ctx echo.Context, expenseID openapi_types.UUID, params DeleteExpenseParams) error {
	id, err := kernel.UUIDFromBytes(expenseID[:])
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	cmd, err := commands.NewDeleteExpenseCommand(id, lo.FromPtr(params.Confirm))
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return s.exec(ctx, s.h.DeleteExpense.Handle(ctx.Request().Context(), cmd))
}

// ReimburseExpense handles POST /api/v1/expenses/{expenseId}/reimbursement.
func (s *Server) ReimburseExpense(ctx echo.Context, expenseID openapi_types.UUID) error {
	var req Reimbursement
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(expenseID[:])
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	cmd, err := commands.NewReimburseExpenseCommand(id, req.ActorID)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return s.exec(ctx, s.h.ReimburseExpense.Handle(ctx.Request().Context(), cmd))
}

// BulkReimburseExpenses handles POST /api/v1/expenses/reimbursements.
// Per-expense failures are part of the 200 response.
func (s *Server) BulkReimburseExpenses(ctx echo.Context) error {
	var req BulkReimbursement
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ids := make([]kernel.UUID, 0, len(req.ExpenseIDs))
	for _, raw := range req.ExpenseIDs {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return writeError(ctx, s.logger, err)
		}
		ids = append(ids, id)
	}

	cmd, err := commands.NewBulkReimburseExpensesCommand(ids, req.ActorID)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	result, err := s.h.BulkReimburseExpenses.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, bulkResultFromDomain(result))
}

// GetOwnerPendingTotals handles GET /api/v1/expenses/pending.
func (s *Server) GetOwnerPendingTotals(ctx echo.Context) error {
	totals, err := s.h.GetOwnerPendingTotals.Handle(ctx.Request().Context(), queries.NewGetOwnerPendingTotalsQuery())
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, lo.Map(totals, func(p queries.GetOwnerPendingTotalsQueryResponse, _ int) OwnerPendingTotal {
		return pendingFromQuery(p)
	}))
}

// RecordLoadCompletion handles POST /api/v1/salaries/loads.
func (s *Server) RecordLoadCompletion(ctx echo.Context) error {
	var req LoadCompletion
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRecordLoadCompletionCommand(req.EmployeeID, req.Date.Time, req.Loads)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return s.exec(ctx, s.h.RecordLoadCompletion.Handle(ctx.Request().Context(), cmd))
}

// SetSalaryPaid handles PUT /api/v1/salaries/payment.
func (s *Server) SetSalaryPaid(ctx echo.Context) error {
	var req SalaryPayment
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetSalaryPaidCommand(req.EmployeeID, req.Date.Time, req.IsPaid)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return s.exec(ctx, s.h.SetSalaryPaid.Handle(ctx.Request().Context(), cmd))
}

// GetFinancialSummary handles GET /api/v1/reports/financial.
func (s *Server) GetFinancialSummary(ctx echo.Context, params GetFinancialSummaryParams) error {
	query, err := queries.NewGetFinancialSummaryQuery(params.Period)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	report, err := s.h.GetFinancialSummary.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, reportFromQuery(report))
}

// GetDistributions handles GET /api/v1/distributions.
func (s *Server) GetDistributions(ctx echo.Context, params GetDistributionsParams) error {
	query, err := queries.NewGetDistributionsQuery(params.PeriodType, params.Date.Time)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	records, err := s.h.GetDistributions.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, lo.Map(records, func(r queries.GetDistributionsQueryResponse, _ int) DistributionRecord {
		return recordFromQuery(r)
	}))
}

// CloseDistributionPeriod handles POST /api/v1/distributions.
func (s *Server) CloseDistributionPeriod(ctx echo.Context) error {
	var req PeriodRef
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	periodType, err := distribution.ParsePeriodType(req.PeriodType)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	cmd, err := commands.NewCloseDistributionPeriodCommand(periodType, req.PeriodStart.Time)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	records, err := s.h.CloseDistributionPeriod.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusCreated, lo.Map(records, func(r *distribution.Record, _ int) DistributionRecord {
		return recordFromDomain(r)
	}))
}

// ClaimDistribution handles POST /api/v1/distributions/claim.
func (s *Server) ClaimDistribution(ctx echo.Context) error {
	var req Claim
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	periodType, err := distribution.ParsePeriodType(req.PeriodType)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	cmd, err := commands.NewClaimDistributionCommand(kernel.Owner(req.Owner), periodType, req.PeriodStart.Time)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	record, err := s.h.ClaimDistribution.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, recordFromDomain(record))
}

func (s *Server) exec(ctx echo.Context, err error) error {
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
