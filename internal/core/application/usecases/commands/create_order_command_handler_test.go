package commands_test

import (
	"errors"
	"testing"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

func orderWithID(id order.ID) any {
	return mock.MatchedBy(func(o *order.Order) bool { return o.ID() == id })
}

func newCreateOrderHandler(factory commands.OrderUoWFactory, cache commands.CacheInvalidator) commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		factory,
		commands.DefaultRetryPolicy(),
		kernel.FixedClock(fixedNow),
		cache,
		discardLogger(),
	)
}

func packageOneCommand(t *testing.T) commands.CreateOrderCommand {
	t.Helper()
	weight := decimal.NewFromInt(15)
	cmd, err := commands.NewCreateOrderCommand("cust-1", order.Package1, "", &weight, decimal.Zero)
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := packageOneCommand(t)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	cache := new(MockCache)

	factory.On("Create").Return(uow).Twice()
	uow.On("OrderRepository").Return(repo).Twice()
	mock.InOrder(
		repo.On("GetLatestID", ctx).Return("ORD-041", nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.ID() == "ORD-042" &&
				o.LoadCount() == 2 &&
				o.Total() == kernel.MoneyFromUnits(360) &&
				o.Status() == order.OrderPlaced &&
				o.CreatedAt().Equal(fixedNow)
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
		cache.On("Invalidate", ctx, ports.CacheKeyOrders).Return(nil).Once(),
		cache.On("Invalidate", ctx, ports.CacheKeyReports).Return(nil).Once(),
	)

	h := newCreateOrderHandler(factory, cache)
	id, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.ID("ORD-042"), id)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_RetriesOnConflict(t *testing.T) {
	ctx := t.Context()
	cmd := packageOneCommand(t)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)

	factory.On("Create").Return(uow)
	uow.On("OrderRepository").Return(repo)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil).Once()
	repo.On("GetLatestID", ctx).Return("ORD-041", nil).Once()
	repo.On("Add", ctx, orderWithID("ORD-042")).Return(errs.NewObjectAlreadyExistsError("order", "ORD-042")).Once()
	repo.On("GetLatestID", ctx).Return("ORD-042", nil).Once()
	repo.On("Add", ctx, orderWithID("ORD-043")).Return(nil).Once()

	h := newCreateOrderHandler(factory, nopCache())
	id, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.ID("ORD-043"), id)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ConflictExhausted(t *testing.T) {
	ctx := t.Context()
	cmd := packageOneCommand(t)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	cache := new(MockCache)

	factory.On("Create").Return(uow)
	uow.On("OrderRepository").Return(repo)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	repo.On("GetLatestID", ctx).Return("ORD-041", nil)
	repo.On("Add", ctx, mock.Anything).Return(errs.NewObjectAlreadyExistsError("order", "ORD-042")).Twice()

	h := newCreateOrderHandler(factory, cache)
	id, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Empty(t, id)
	assert.True(t, errs.IsRetryable(err))
	repo.AssertExpectations(t)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_AwaitingDistance(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand("cust-1", order.Package2, order.Delivery, nil, decimal.Zero)
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	h := newCreateOrderHandler(factory, new(MockCache))

	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := newCreateOrderHandler(factory, new(MockCache))

	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := packageOneCommand(t)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)

	factory.On("Create").Return(uow)
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("GetLatestID", ctx).Return("", nil).Once()
	uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	h := newCreateOrderHandler(factory, new(MockCache))
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.False(t, errs.IsRetryable(err))
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := packageOneCommand(t)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)

	factory.On("Create").Return(uow)
	uow.On("OrderRepository").Return(repo)
	mock.InOrder(
		repo.On("GetLatestID", ctx).Return("", nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Add", ctx, orderWithID(order.FirstID)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := newCreateOrderHandler(factory, new(MockCache))
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func fixedClock() kernel.Clock {
	return kernel.FixedClock(fixedNow)
}
