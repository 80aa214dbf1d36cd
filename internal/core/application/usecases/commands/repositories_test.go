package commands_test

import (
	"context"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/distribution"
	"laundry/internal/core/domain/model/expense"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/salary"
	"laundry/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id order.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id order.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetLatestID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

type MockExpenseRepository struct{ mock.Mock }

func (m *MockExpenseRepository) Add(ctx context.Context, e *expense.Expense) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockExpenseRepository) Update(ctx context.Context, e *expense.Expense) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockExpenseRepository) Get(ctx context.Context, id kernel.UUID) (*expense.Expense, error) {
	args := m.Called(ctx, id)
	if e, ok := args.Get(0).(*expense.Expense); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockExpenseRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*expense.Expense, error) {
	args := m.Called(ctx, id)
	if e, ok := args.Get(0).(*expense.Expense); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockExpenseRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSalaryRepository struct{ mock.Mock }

func (m *MockSalaryRepository) Get(ctx context.Context, employeeID string, day time.Time) (*salary.Payment, error) {
	args := m.Called(ctx, employeeID, day)
	if p, ok := args.Get(0).(*salary.Payment); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSalaryRepository) GetForUpdate(ctx context.Context, employeeID string, day time.Time) (*salary.Payment, error) {
	args := m.Called(ctx, employeeID, day)
	if p, ok := args.Get(0).(*salary.Payment); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSalaryRepository) Save(ctx context.Context, p *salary.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockSalaryRepository) Accumulate(ctx context.Context, increment *salary.Payment) (*salary.Payment, error) {
	args := m.Called(ctx, increment)
	if p, ok := args.Get(0).(*salary.Payment); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockDistributionRepository struct{ mock.Mock }

func (m *MockDistributionRepository) Add(ctx context.Context, r *distribution.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockDistributionRepository) Update(ctx context.Context, r *distribution.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockDistributionRepository) Get(
	ctx context.Context,
	owner kernel.Owner,
	period distribution.Period,
) (*distribution.Record, error) {
	args := m.Called(ctx, owner, period)
	if r, ok := args.Get(0).(*distribution.Record); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDistributionRepository) GetForUpdate(
	ctx context.Context,
	owner kernel.Owner,
	period distribution.Period,
) (*distribution.Record, error) {
	args := m.Called(ctx, owner, period)
	if r, ok := args.Get(0).(*distribution.Record); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDistributionRepository) ListByPeriod(ctx context.Context, period distribution.Period) ([]*distribution.Record, error) {
	args := m.Called(ctx, period)
	if r, ok := args.Get(0).([]*distribution.Record); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockUoW serves every narrow unit of work interface.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ExpenseRepository() ports.ExpenseRepository {
	args := m.Called()
	return args.Get(0).(ports.ExpenseRepository)
}

func (m *MockUoW) SalaryRepository() ports.SalaryRepository {
	args := m.Called()
	return args.Get(0).(ports.SalaryRepository)
}

func (m *MockUoW) DistributionRepository() ports.DistributionRepository {
	args := m.Called()
	return args.Get(0).(ports.DistributionRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockExpenseUoWFactory struct{ mock.Mock }

func (m *MockExpenseUoWFactory) Create() commands.ExpenseUoW {
	args := m.Called()
	return args.Get(0).(commands.ExpenseUoW)
}

type MockSalaryUoWFactory struct{ mock.Mock }

func (m *MockSalaryUoWFactory) Create() commands.SalaryUoW {
	args := m.Called()
	return args.Get(0).(commands.SalaryUoW)
}

type MockDistributionUoWFactory struct{ mock.Mock }

func (m *MockDistributionUoWFactory) Create() commands.DistributionUoW {
	args := m.Called()
	return args.Get(0).(commands.DistributionUoW)
}

type MockCache struct{ mock.Mock }

func (m *MockCache) Invalidate(ctx context.Context, prefix string) error {
	args := m.Called(ctx, prefix)
	return args.Error(0)
}

// nopCache accepts every invalidation.
func nopCache() *MockCache {
	c := new(MockCache)
	c.On("Invalidate", mock.Anything, mock.Anything).Return(nil)
	return c
}
