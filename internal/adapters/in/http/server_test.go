package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"laundry/api"
	httpin "laundry/internal/adapters/in/http"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/distribution"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handlerFunc[In, Out any] func(ctx context.Context, in In) (Out, error)

func (f handlerFunc[In, Out]) Handle(ctx context.Context, in In) (Out, error) {
	return f(ctx, in)
}

type commandFunc[In any] func(ctx context.Context, in In) error

func (f commandFunc[In]) Handle(ctx context.Context, in In) error {
	return f(ctx, in)
}

func newRouter(t *testing.T, handlers httpin.Handlers) *echo.Echo {
	t.Helper()

	doc, err := api.Load()
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e, err := httpin.NewRouter(doc, httpin.NewServer(handlers, logger), logger)
	require.NoError(t, err)
	return e
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) httpin.Error {
	t.Helper()

	var body httpin.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	rec := do(newRouter(t, httpin.Handlers{}), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestComputePrice(t *testing.T) {
	e := newRouter(t, httpin.Handlers{ComputePrice: queries.NewComputePriceQueryHandler()})

	t.Run("quote", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/api/v1/quotes", `{"servicePackage":"package1","weightKg":15}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var quote httpin.Quote
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &quote))
		assert.Equal(t, 2, quote.LoadCount)
		assert.Equal(t, "360.00", quote.BaseCost)
		assert.Equal(t, "0.00", quote.TransportFee)
		assert.Equal(t, "360.00", quote.Total)
	})

	t.Run("awaiting distance", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/api/v1/quotes", `{"servicePackage":"package3","weightKg":9}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var quote httpin.Quote
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &quote))
		assert.True(t, quote.AwaitingDistance)
	})

	t.Run("unknown package is rejected by the contract", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/api/v1/quotes", `{"servicePackage":"package9"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, http.StatusBadRequest, decodeError(t, rec).Code)
	})

	t.Run("negative weight is rejected by the contract", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/api/v1/quotes", `{"servicePackage":"package1","weightKg":-1}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("oversized weight and distance are rejected by the contract", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/api/v1/quotes", `{"servicePackage":"package1","weightKg":1e30}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = do(e, http.MethodPost, "/api/v1/quotes", `{"servicePackage":"package2","weightKg":5,"distanceKm":1e18}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCreateOrder(t *testing.T) {
	var got commands.CreateOrderCommand
	e := newRouter(t, httpin.Handlers{
		CreateOrder: handlerFunc[commands.CreateOrderCommand, order.ID](
			func(_ context.Context, cmd commands.CreateOrderCommand) (order.ID, error) {
				got = cmd
				return order.NewID(42), nil
			}),
	})

	rec := do(e, http.MethodPost, "/api/v1/orders",
		`{"customerId":"cust-1","servicePackage":"package2","weightKg":9,"distanceKm":3}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"id":"ORD-042"}`, rec.Body.String())
	assert.Equal(t, "cust-1", got.CustomerID())
	assert.Equal(t, order.Package2, got.ServicePackage())
	assert.Equal(t, order.Delivery, got.DeliveryOption())
	require.NotNil(t, got.WeightKg())
	assert.Equal(t, "9", got.WeightKg().String())
	assert.Equal(t, "3", got.DistanceKm().String())
}

func TestCreateOrder_AllocationExhausted(t *testing.T) {
	e := newRouter(t, httpin.Handlers{
		CreateOrder: handlerFunc[commands.CreateOrderCommand, order.ID](
			func(context.Context, commands.CreateOrderCommand) (order.ID, error) {
				cause := errs.NewObjectAlreadyExistsError("order", "ORD-002")
				return "", errs.NewRetryableError("allocate order id", 2, cause)
			}),
	})

	rec := do(e, http.MethodPost, "/api/v1/orders", `{"customerId":"cust-1","servicePackage":"package1"}`)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
}

func TestCreateOrder_IncompatibleDeliveryOption(t *testing.T) {
	e := newRouter(t, httpin.Handlers{})

	rec := do(e, http.MethodPost, "/api/v1/orders",
		`{"customerId":"cust-1","servicePackage":"package1","deliveryOption":"delivery"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetOrder(t *testing.T) {
	e := newRouter(t, httpin.Handlers{
		GetOrder: handlerFunc[queries.GetOrderQuery, queries.GetOrderQueryResponse](
			func(_ context.Context, q queries.GetOrderQuery) (queries.GetOrderQueryResponse, error) {
				if q.OrderID() != "ORD-001" {
					return queries.GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", q.OrderID())
				}
				return queries.GetOrderQueryResponse{
					ID:       "ORD-001",
					Status:   "Washing",
					Total:    kernel.MoneyFromUnits(360),
					Progress: 3.0 / 9,
					History: []queries.StatusChangeView{
						{Status: "Order Placed", ChangedAt: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)},
						{Status: "Washing", ChangedAt: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)},
					},
				}, nil
			}),
	})

	t.Run("found", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/v1/orders/ORD-001", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var o httpin.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &o))
		assert.Equal(t, "ORD-001", o.ID)
		assert.Equal(t, "360.00", o.Total)
		assert.Len(t, o.History, 2)
	})

	t.Run("not found", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/v1/orders/ORD-404", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/v1/orders/42", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAdvanceOrderStatus(t *testing.T) {
	var got commands.AdvanceOrderStatusCommand
	e := newRouter(t, httpin.Handlers{
		AdvanceOrderStatus: commandFunc[commands.AdvanceOrderStatusCommand](
			func(_ context.Context, cmd commands.AdvanceOrderStatusCommand) error {
				got = cmd
				return nil
			}),
	})

	t.Run("any status of the vocabulary", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/api/v1/orders/ORD-007/status", `{"status":"Ready for Pick Up"}`)

		require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
		assert.Equal(t, order.ID("ORD-007"), got.OrderID())
		assert.Equal(t, "Ready for Pick Up", got.Status())
	})

	t.Run("unknown status", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/api/v1/orders/ORD-007/status", `{"status":"Ironing"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteExpense_NeedsConfirmation(t *testing.T) {
	var confirmed []bool
	e := newRouter(t, httpin.Handlers{
		DeleteExpense: commandFunc[commands.DeleteExpenseCommand](
			func(_ context.Context, cmd commands.DeleteExpenseCommand) error {
				confirmed = append(confirmed, cmd.Confirmed())
				if !cmd.Confirmed() {
					return errs.NewConfirmationRequiredError("delete reimbursed expense", cmd.ExpenseID())
				}
				return nil
			}),
	})
	id := kernel.NewUUID().String()

	rec := do(e, http.MethodDelete, "/api/v1/expenses/"+id, "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(e, http.MethodDelete, "/api/v1/expenses/"+id+"?confirm=true", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	assert.Equal(t, []bool{false, true}, confirmed)
}

func TestBulkReimburseExpenses_ReportsFailures(t *testing.T) {
	first, second := kernel.NewUUID(), kernel.NewUUID()
	e := newRouter(t, httpin.Handlers{
		BulkReimburseExpenses: handlerFunc[commands.BulkReimburseExpensesCommand, commands.BulkReimbursementResult](
			func(_ context.Context, cmd commands.BulkReimburseExpensesCommand) (commands.BulkReimbursementResult, error) {
				assert.Equal(t, "admin", cmd.ActorID())
				return commands.BulkReimbursementResult{
					Succeeded: []kernel.UUID{first},
					Failed: []commands.FailedReimbursement{
						{ExpenseID: second, Err: errs.NewValueIsInvalidError("reimbursement status")},
					},
				}, nil
			}),
	})

	rec := do(e, http.MethodPost, "/api/v1/expenses/reimbursements",
		`{"actorId":"admin","expenseIds":["`+first.String()+`","`+second.String()+`"]}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result httpin.BulkReimbursementResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, []string{first.String()}, result.Succeeded)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, second.String(), result.Failed[0].ExpenseID)
	assert.NotEmpty(t, result.Failed[0].Error)
}

func TestCreateExpense(t *testing.T) {
	var got commands.CreateExpenseCommand
	id := kernel.NewUUID()
	e := newRouter(t, httpin.Handlers{
		CreateExpense: handlerFunc[commands.CreateExpenseCommand, kernel.UUID](
			func(_ context.Context, cmd commands.CreateExpenseCommand) (kernel.UUID, error) {
				got = cmd
				return id, nil
			}),
	})

	rec := do(e, http.MethodPost, "/api/v1/expenses",
		`{"title":"Detergent","amount":226.5,"expenseFor":"Owner2","incurredOn":"2024-03-04"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"id":"`+id.String()+`"}`, rec.Body.String())
	assert.Equal(t, kernel.Money(22650), got.Amount())
	assert.Equal(t, "Owner2", string(got.ExpenseFor()))
	assert.True(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC).Equal(got.IncurredOn()))
}

func TestGetFinancialSummary(t *testing.T) {
	march := distribution.MonthOf(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	e := newRouter(t, httpin.Handlers{
		GetFinancialSummary: handlerFunc[queries.GetFinancialSummaryQuery, queries.GetFinancialSummaryQueryResponse](
			func(_ context.Context, q queries.GetFinancialSummaryQuery) (queries.GetFinancialSummaryQueryResponse, error) {
				return queries.GetFinancialSummaryQueryResponse{
					PeriodType: q.PeriodType(),
					Summaries: []distribution.Summary{
						distribution.NewSummary(march, kernel.MoneyFromUnits(360), kernel.MoneyFromUnits(30), kernel.MoneyFromUnits(50)),
					},
				}, nil
			}),
	})

	t.Run("monthly", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/v1/reports/financial?period=monthly", "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var report httpin.FinancialReport
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
		assert.Equal(t, "monthly", report.PeriodType)
		require.Len(t, report.Summaries, 1)
		assert.Equal(t, "280.00", report.Summaries[0].NetIncome)
		assert.Equal(t, "93.33", report.Summaries[0].PerOwnerShare)
		assert.Equal(t, "0.01", report.Summaries[0].ShareRemainder)
		assert.Equal(t, "2024-03-01", report.Summaries[0].PeriodStart.Format(time.DateOnly))
	})

	t.Run("missing period", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/v1/reports/financial", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown period", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/v1/reports/financial?period=weekly", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestClaimDistribution(t *testing.T) {
	march := distribution.MonthOf(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	e := newRouter(t, httpin.Handlers{
		ClaimDistribution: handlerFunc[commands.ClaimDistributionCommand, *distribution.Record](
			func(_ context.Context, cmd commands.ClaimDistributionCommand) (*distribution.Record, error) {
				r, err := distribution.NewRecord(cmd.Owner(), cmd.Period(), kernel.Money(9333), kernel.MoneyFromUnits(25))
				require.NoError(t, err)
				require.NoError(t, r.Claim(time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC)))
				return r, nil
			}),
	})

	rec := do(e, http.MethodPost, "/api/v1/distributions/claim",
		`{"owner":"Owner1","periodType":"monthly","periodStart":"2024-03-01"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var record httpin.DistributionRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))
	assert.Equal(t, "Owner1", record.Owner)
	assert.True(t, march.Start.Equal(record.PeriodStart.Time))
	assert.Equal(t, "93.33", record.ShareAmount)
	assert.Equal(t, "118.33", record.NetShare)
	assert.True(t, record.IsClaimed)
}

func TestUnexpectedErrorIsHidden(t *testing.T) {
	e := newRouter(t, httpin.Handlers{
		GetActiveOrders: handlerFunc[queries.GetActiveOrdersQuery, []queries.GetActiveOrdersQueryResponse](
			func(context.Context, queries.GetActiveOrdersQuery) ([]queries.GetActiveOrdersQueryResponse, error) {
				return nil, errors.New("pq: password authentication failed")
			}),
	})

	rec := do(e, http.MethodGet, "/api/v1/orders", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error", decodeError(t, rec).Message)
}

func TestUnknownRoute(t *testing.T) {
	rec := do(newRouter(t, httpin.Handlers{}), http.MethodGet, "/api/v1/machines", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, http.StatusNotFound, decodeError(t, rec).Code)
}
