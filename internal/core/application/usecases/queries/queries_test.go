package queries_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/distribution"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCache struct{ mock.Mock }

func (m *MockCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCache) Invalidate(ctx context.Context, prefix string) error {
	args := m.Called(ctx, prefix)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestQueries_ZeroValueIsNotConstructed(t *testing.T) {
	tests := []struct {
		name     string
		validate func() error
		want     error
	}{
		{"active orders", queries.GetActiveOrdersQuery{}.Validate, queries.ErrGetActiveOrdersQueryIsNotConstructed},
		{"order", queries.GetOrderQuery{}.Validate, queries.ErrGetOrderQueryIsNotConstructed},
		{"financial summary", queries.GetFinancialSummaryQuery{}.Validate, queries.ErrGetFinancialSummaryQueryIsNotConstructed},
		{"pending totals", queries.GetOwnerPendingTotalsQuery{}.Validate, queries.ErrGetOwnerPendingTotalsQueryIsNotConstructed},
		{"compute price", queries.ComputePriceQuery{}.Validate, queries.ErrComputePriceQueryIsNotConstructed},
		{"distributions", queries.GetDistributionsQuery{}.Validate, queries.ErrGetDistributionsQueryIsNotConstructed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.validate(), tt.want)
		})
	}
}

func TestNewGetOrderQuery(t *testing.T) {
	t.Run("valid id", func(t *testing.T) {
		q, err := queries.NewGetOrderQuery("ORD-042")

		require.NoError(t, err)
		assert.NoError(t, q.Validate())
		assert.Equal(t, order.ID("ORD-042"), q.OrderID())
	})

	for _, id := range []string{"", "42", "ORD-", "ORD-12", "ORD-000", "ord-001"} {
		t.Run("rejects "+id, func(t *testing.T) {
			_, err := queries.NewGetOrderQuery(id)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}

func TestNewGetFinancialSummaryQuery(t *testing.T) {
	tests := []struct {
		input string
		want  distribution.PeriodType
	}{
		{"monthly", distribution.Monthly},
		{"Yearly", distribution.Yearly},
		{" ALL ", distribution.All},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			q, err := queries.NewGetFinancialSummaryQuery(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.want, q.PeriodType())
		})
	}

	t.Run("unknown period", func(t *testing.T) {
		_, err := queries.NewGetFinancialSummaryQuery("weekly")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewGetDistributionsQuery(t *testing.T) {
	at := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	t.Run("monthly", func(t *testing.T) {
		q, err := queries.NewGetDistributionsQuery("monthly", at)

		require.NoError(t, err)
		assert.Equal(t, distribution.MonthOf(at), q.Period())
	})

	t.Run("yearly", func(t *testing.T) {
		q, err := queries.NewGetDistributionsQuery("yearly", at)

		require.NoError(t, err)
		assert.Equal(t, distribution.YearOf(at), q.Period())
	})

	t.Run("all has no records", func(t *testing.T) {
		_, err := queries.NewGetDistributionsQuery("all", at)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestComputePriceQueryHandler(t *testing.T) {
	handler := queries.NewComputePriceQueryHandler()
	fifteen := decimal.NewFromInt(15)

	t.Run("self service by weight", func(t *testing.T) {
		quote, err := handler.Handle(context.Background(), queries.NewComputePriceQuery(order.Package1, &fifteen, decimal.Zero))

		require.NoError(t, err)
		assert.Equal(t, 2, quote.LoadCount)
		assert.Equal(t, "360.00", quote.Total.String())
		assert.True(t, quote.TransportFee.IsZero())
	})

	t.Run("transport package without distance awaits it", func(t *testing.T) {
		quote, err := handler.Handle(context.Background(), queries.NewComputePriceQuery(order.Package2, &fifteen, decimal.Zero))

		require.NoError(t, err)
		assert.True(t, quote.AwaitingDistance)
		assert.True(t, quote.Total.IsZero())
	})

	t.Run("free delivery radius bills one load", func(t *testing.T) {
		quote, err := handler.Handle(context.Background(),
			queries.NewComputePriceQuery(order.Package2, &fifteen, decimal.RequireFromString("0.4")))

		require.NoError(t, err)
		assert.True(t, quote.FreeDelivery)
		assert.Equal(t, 1, quote.LoadCount)
		assert.Equal(t, "180.00", quote.Total.String())
	})

	t.Run("caller keeps ownership of the weight", func(t *testing.T) {
		weight := decimal.NewFromInt(15)
		query := queries.NewComputePriceQuery(order.Package1, &weight, decimal.Zero)
		weight = decimal.NewFromInt(100)

		quote, err := handler.Handle(context.Background(), query)

		require.NoError(t, err)
		assert.Equal(t, 2, quote.LoadCount)
	})

	t.Run("unknown package", func(t *testing.T) {
		_, err := handler.Handle(context.Background(), queries.NewComputePriceQuery("package9", &fifteen, decimal.Zero))
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("not constructed", func(t *testing.T) {
		_, err := handler.Handle(context.Background(), queries.ComputePriceQuery{})
		assert.ErrorIs(t, err, queries.ErrComputePriceQueryIsNotConstructed)
	})
}
