package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type DeleteExpenseParams struct {
	Confirm *bool `form:"confirm,omitempty" json:"confirm,omitempty"`
}

type GetFinancialSummaryParams struct {
	Period string `form:"period" json:"period"`
}

type GetDistributionsParams struct {
	PeriodType string             `form:"periodType" json:"periodType"`
	Date       openapi_types.Date `form:"date" json:"date"`
}

// ServerInterface lists the operations of api/openapi.yaml. Parameters are
// bound by ServerInterfaceWrapper before an operation is called.
type ServerInterface interface {
	// (POST /api/v1/quotes)
	ComputePrice(ctx echo.Context) error
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// (GET /api/v1/orders)
	GetActiveOrders(ctx echo.Context) error
	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderID string) error
	// (PATCH /api/v1/orders/{orderId})
	UpdateOrderDetails(ctx echo.Context, orderID string) error
	// (POST /api/v1/orders/{orderId}/status)
	AdvanceOrderStatus(ctx echo.Context, orderID string) error
	// (PUT /api/v1/orders/{orderId}/payment)
	MarkOrderPaid(ctx echo.Context, orderID string) error
	// (POST /api/v1/expenses)
	CreateExpense(ctx echo.Context) error
	// (DELETE /api/v1/expenses/{expenseId})
	DeleteExpense(ctx echo.Context, expenseID openapi_types.UUID, params DeleteExpenseParams) error
	// (POST /api/v1/expenses/{expenseId}/reimbursement)
	ReimburseExpense(ctx echo.Context, expenseID openapi_types.UUID) error
	// (POST /api/v1/expenses/reimbursements)
	BulkReimburseExpenses(ctx echo.Context) error
	// (GET /api/v1/expenses/pending)
	GetOwnerPendingTotals(ctx echo.Context) error
	// (POST /api/v1/salaries/loads)
	RecordLoadCompletion(ctx echo.Context) error
	// (PUT /api/v1/salaries/payment)
	SetSalaryPaid(ctx echo.Context) error
	// (GET /api/v1/reports/financial)
	GetFinancialSummary(ctx echo.Context, params GetFinancialSummaryParams) error
	// (GET /api/v1/distributions)
	GetDistributions(ctx echo.Context, params GetDistributionsParams) error
	// (POST /api/v1/distributions)
	CloseDistributionPeriod(ctx echo.Context) error
	// (POST /api/v1/distributions/claim)
	ClaimDistribution(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) ComputePrice(ctx echo.Context) error {
	return w.Handler.ComputePrice(ctx)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetActiveOrders(ctx echo.Context) error {
	return w.Handler.GetActiveOrders(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) UpdateOrderDetails(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrderDetails(ctx, orderID)
}

func (w *ServerInterfaceWrapper) AdvanceOrderStatus(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.AdvanceOrderStatus(ctx, orderID)
}

func (w *ServerInterfaceWrapper) MarkOrderPaid(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.MarkOrderPaid(ctx, orderID)
}

func (w *ServerInterfaceWrapper) CreateExpense(ctx echo.Context) error {
	return w.Handler.CreateExpense(ctx)
}

func (w *ServerInterfaceWrapper) DeleteExpense(ctx echo.Context) error {
	expenseID, err := bindExpenseID(ctx)
	if err != nil {
		return err
	}

	var params DeleteExpenseParams
	err = runtime.BindQueryParameter("form", true, false, "confirm", ctx.QueryParams(), &params.Confirm)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter confirm: %s", err))
	}

	return w.Handler.DeleteExpense(ctx, expenseID, params)
}

func (w *ServerInterfaceWrapper) ReimburseExpense(ctx echo.Context) error {
	expenseID, err := bindExpenseID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ReimburseExpense(ctx, expenseID)
}

func (w *ServerInterfaceWrapper) BulkReimburseExpenses(ctx echo.Context) error {
	return w.Handler.BulkReimburseExpenses(ctx)
}

func (w *ServerInterfaceWrapper) GetOwnerPendingTotals(ctx echo.Context) error {
	return w.Handler.GetOwnerPendingTotals(ctx)
}

func (w *ServerInterfaceWrapper) RecordLoadCompletion(ctx echo.Context) error {
	return w.Handler.RecordLoadCompletion(ctx)
}

func (w *ServerInterfaceWrapper) SetSalaryPaid(ctx echo.Context) error {
	return w.Handler.SetSalaryPaid(ctx)
}

func (w *ServerInterfaceWrapper) GetFinancialSummary(ctx echo.Context) error {
	var params GetFinancialSummaryParams
	err := runtime.BindQueryParameter("form", true, true, "period", ctx.QueryParams(), &params.Period)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter period: %s", err))
	}
	return w.Handler.GetFinancialSummary(ctx, params)
}

func (w *ServerInterfaceWrapper) GetDistributions(ctx echo.Context) error {
	var params GetDistributionsParams

	err := runtime.BindQueryParameter("form", true, true, "periodType", ctx.QueryParams(), &params.PeriodType)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter periodType: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, true, "date", ctx.QueryParams(), &params.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter date: %s", err))
	}

	return w.Handler.GetDistributions(ctx, params)
}

func (w *ServerInterfaceWrapper) CloseDistributionPeriod(ctx echo.Context) error {
	return w.Handler.CloseDistributionPeriod(ctx)
}

func (w *ServerInterfaceWrapper) ClaimDistribution(ctx echo.Context) error {
	return w.Handler.ClaimDistribution(ctx)
}

func bindOrderID(ctx echo.Context) (string, error) {
	var orderID string
	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}
	return orderID, nil
}

func bindExpenseID(ctx echo.Context) (openapi_types.UUID, error) {
	var expenseID openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "expenseId", ctx.Param("expenseId"), &expenseID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return expenseID, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter expenseId: %s", err))
	}
	return expenseID, nil
}

// EchoRouter is the part of *echo.Echo and *echo.Group routes are added to.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds every operation of si to router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	w := ServerInterfaceWrapper{Handler: si}

	router.POST("/api/v1/quotes", w.ComputePrice)
	router.POST("/api/v1/orders", w.CreateOrder)
	router.GET("/api/v1/orders", w.GetActiveOrders)
	router.GET("/api/v1/orders/:orderId", w.GetOrder)
	router.PATCH("/api/v1/orders/:orderId", w.UpdateOrderDetails)
	router.POST("/api/v1/orders/:orderId/status", w.AdvanceOrderStatus)
	router.PUT("/api/v1/orders/:orderId/payment", w.MarkOrderPaid)
	router.POST("/api/v1/expenses", w.CreateExpense)
	router.DELETE("/api/v1/expenses/:expenseId", w.DeleteExpense)
	router.POST("/api/v1/expenses/:expenseId/reimbursement", w.ReimburseExpense)
	router.POST("/api/v1/expenses/reimbursements", w.BulkReimburseExpenses)
	router.GET("/api/v1/expenses/pending", w.GetOwnerPendingTotals)
	router.POST("/api/v1/salaries/loads", w.RecordLoadCompletion)
	router.PUT("/api/v1/salaries/payment", w.SetSalaryPaid)
	router.GET("/api/v1/reports/financial", w.GetFinancialSummary)
	router.GET("/api/v1/distributions", w.GetDistributions)
	router.POST("/api/v1/distributions", w.CloseDistributionPeriod)
	router.POST("/api/v1/distributions/claim", w.ClaimDistribution)
}
