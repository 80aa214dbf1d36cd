package http

import (
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/distribution"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/services"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Created struct {
	ID string `json:"id"`
}

type QuoteRequest struct {
	ServicePackage string           `json:"servicePackage"`
	WeightKg       *decimal.Decimal `json:"weightKg,omitempty"`
	DistanceKm     *decimal.Decimal `json:"distanceKm,omitempty"`
}

type Quote struct {
	AwaitingDistance   bool   `json:"awaitingDistance"`
	FreeDelivery       bool   `json:"freeDelivery"`
	EffectiveWeightKg  string `json:"effectiveWeightKg"`
	LoadCount          int    `json:"loadCount"`
	BaseCost           string `json:"baseCost"`
	BillableDistanceKm string `json:"billableDistanceKm"`
	TransportFee       string `json:"transportFee"`
	Total              string `json:"total"`
}

type NewOrder struct {
	CustomerID     string           `json:"customerId"`
	ServicePackage string           `json:"servicePackage"`
	DeliveryOption string           `json:"deliveryOption,omitempty"`
	WeightKg       *decimal.Decimal `json:"weightKg,omitempty"`
	DistanceKm     *decimal.Decimal `json:"distanceKm,omitempty"`
}

type OrderSummary struct {
	ID             string    `json:"id"`
	CustomerID     string    `json:"customerId"`
	ServicePackage string    `json:"servicePackage"`
	Status         string    `json:"status"`
	Progress       float64   `json:"progress"`
	Total          string    `json:"total"`
	IsPaid         bool      `json:"isPaid"`
	EmployeeID     *string   `json:"employeeId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

type StatusChangeView struct {
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changedAt"`
}

type Order struct {
	OrderSummary
	DeliveryOption string             `json:"deliveryOption"`
	DistanceKm     string             `json:"distanceKm"`
	WeightKg       string             `json:"weightKg"`
	LoadCount      int                `json:"loadCount"`
	TransportFee   string             `json:"transportFee"`
	PieceCount     int                `json:"pieceCount"`
	History        []StatusChangeView `json:"history"`
}

type OrderDetails struct {
	EmployeeID *string `json:"employeeId,omitempty"`
	PieceCount *int    `json:"pieceCount,omitempty"`
}

type StatusChange struct {
	Status string `json:"status"`
}

type Payment struct {
	IsPaid bool `json:"isPaid"`
}

type NewExpense struct {
	Title      string             `json:"title"`
	Amount     decimal.Decimal    `json:"amount"`
	ExpenseFor string             `json:"expenseFor"`
	IncurredOn openapi_types.Date `json:"incurredOn"`
}

type Reimbursement struct {
	ActorID string `json:"actorId"`
}

type BulkReimbursement struct {
	ExpenseIDs []openapi_types.UUID `json:"expenseIds"`
	ActorID    string               `json:"actorId"`
}

type FailedReimbursement struct {
	ExpenseID string `json:"expenseId"`
	Error     string `json:"error"`
}

type BulkReimbursementResult struct {
	Succeeded []string              `json:"succeeded"`
	Failed    []FailedReimbursement `json:"failed"`
}

type OwnerPendingTotal struct {
	Owner string `json:"owner"`
	Total string `json:"total"`
	Count int    `json:"count"`
}

type LoadCompletion struct {
	EmployeeID string             `json:"employeeId"`
	Date       openapi_types.Date `json:"date"`
	Loads      int                `json:"loads"`
}

type SalaryPayment struct {
	EmployeeID string             `json:"employeeId"`
	Date       openapi_types.Date `json:"date"`
	IsPaid     bool               `json:"isPaid"`
}

type Summary struct {
	PeriodStart      openapi_types.Date `json:"periodStart"`
	PeriodEnd        openapi_types.Date `json:"periodEnd"`
	Revenue          string             `json:"revenue"`
	BusinessExpenses string             `json:"businessExpenses"`
	SalaryTotal      string             `json:"salaryTotal"`
	TotalExpenses    string             `json:"totalExpenses"`
	NetIncome        string             `json:"netIncome"`
	PerOwnerShare    string             `json:"perOwnerShare"`
	ShareRemainder   string             `json:"shareRemainder"`
}

type FinancialReport struct {
	PeriodType string    `json:"periodType"`
	Summaries  []Summary `json:"summaries"`
}

type PeriodRef struct {
	PeriodType  string             `json:"periodType"`
	PeriodStart openapi_types.Date `json:"periodStart"`
}

type Claim struct {
	PeriodRef
	Owner string `json:"owner"`
}

type DistributionRecord struct {
	Owner       string             `json:"owner"`
	PeriodType  string             `json:"periodType"`
	PeriodStart openapi_types.Date `json:"periodStart"`
	PeriodEnd   openapi_types.Date `json:"periodEnd"`
	ShareAmount string             `json:"shareAmount"`
	NetShare    string             `json:"netShare"`
	IsClaimed   bool               `json:"isClaimed"`
	ClaimedAt   *time.Time         `json:"claimedAt,omitempty"`
}

func date(t time.Time) openapi_types.Date {
	return openapi_types.Date{Time: t}
}

func quoteFromDomain(q services.Quote) Quote {
	return Quote{
		AwaitingDistance:   q.AwaitingDistance,
		FreeDelivery:       q.FreeDelivery,
		EffectiveWeightKg:  q.EffectiveWeightKg.String(),
		LoadCount:          q.LoadCount,
		BaseCost:           q.BaseCost.String(),
		BillableDistanceKm: q.BillableDistanceKm.String(),
		TransportFee:       q.TransportFee.String(),
		Total:              q.Total.String(),
	}
}

func orderSummaryFromQuery(o queries.GetActiveOrdersQueryResponse) OrderSummary {
	return OrderSummary{
		ID:             o.ID,
		CustomerID:     o.CustomerID,
		ServicePackage: o.ServicePackage,
		Status:         o.Status,
		Progress:       o.Progress,
		Total:          o.Total.String(),
		IsPaid:         o.IsPaid,
		EmployeeID:     o.EmployeeID,
		CreatedAt:      o.CreatedAt,
	}
}

func orderFromQuery(o queries.GetOrderQueryResponse) Order {
	return Order{
		OrderSummary: OrderSummary{
			ID:             o.ID,
			CustomerID:     o.CustomerID,
			ServicePackage: o.ServicePackage,
			Status:         o.Status,
			Progress:       o.Progress,
			Total:          o.Total.String(),
			IsPaid:         o.IsPaid,
			EmployeeID:     o.EmployeeID,
			CreatedAt:      o.CreatedAt,
		},
		DeliveryOption: o.DeliveryOption,
		DistanceKm:     o.DistanceKm.String(),
		WeightKg:       o.WeightKg.String(),
		LoadCount:      o.LoadCount,
		TransportFee:   o.TransportFee.String(),
		PieceCount:     o.PieceCount,
		History: lo.Map(o.History, func(h queries.StatusChangeView, _ int) StatusChangeView {
			return StatusChangeView{Status: h.Status, ChangedAt: h.ChangedAt}
		}),
	}
}

func bulkResultFromDomain(r commands.BulkReimbursementResult) BulkReimbursementResult {
	return BulkReimbursementResult{
		Succeeded: lo.Map(r.Succeeded, func(id kernel.UUID, _ int) string { return id.String() }),
		Failed: lo.Map(r.Failed, func(f commands.FailedReimbursement, _ int) FailedReimbursement {
			return FailedReimbursement{ExpenseID: f.ExpenseID.String(), Error: f.Err.Error()}
		}),
	}
}

func pendingFromQuery(p queries.GetOwnerPendingTotalsQueryResponse) OwnerPendingTotal {
	return OwnerPendingTotal{Owner: p.Owner.String(), Total: p.Total.String(), Count: p.Count}
}

func reportFromQuery(r queries.GetFinancialSummaryQueryResponse) FinancialReport {
	return FinancialReport{
		PeriodType: string(r.PeriodType),
		Summaries: lo.Map(r.Summaries, func(s distribution.Summary, _ int) Summary {
			return Summary{
				PeriodStart:      date(s.Period.Start),
				PeriodEnd:        date(s.Period.End),
				Revenue:          s.Revenue.String(),
				BusinessExpenses: s.BusinessExpenses.String(),
				SalaryTotal:      s.SalaryTotal.String(),
				TotalExpenses:    s.TotalExpenses.String(),
				NetIncome:        s.NetIncome.String(),
				PerOwnerShare:    s.PerOwnerShare.String(),
				ShareRemainder:   s.ShareRemainder.String(),
			}
		}),
	}
}

func recordFromDomain(r *distribution.Record) DistributionRecord {
	return DistributionRecord{
		Owner:       r.Owner().String(),
		PeriodType:  string(r.Period().Type),
		PeriodStart: date(r.Period().Start),
		PeriodEnd:   date(r.Period().End),
		ShareAmount: r.ShareAmount().String(),
		NetShare:    r.NetShare().String(),
		IsClaimed:   r.IsClaimed(),
		ClaimedAt:   r.ClaimedAt(),
	}
}

func recordFromQuery(r queries.GetDistributionsQueryResponse) DistributionRecord {
	return DistributionRecord{
		Owner:       r.Owner.String(),
		PeriodType:  string(r.PeriodType),
		PeriodStart: date(r.PeriodStart),
		PeriodEnd:   date(r.PeriodEnd),
		ShareAmount: r.ShareAmount.String(),
		NetShare:    r.NetShare.String(),
		IsClaimed:   r.IsClaimed,
		ClaimedAt:   r.ClaimedAt,
	}
}
