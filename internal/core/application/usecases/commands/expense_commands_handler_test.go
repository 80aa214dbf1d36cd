package commands_test

import (
	"errors"
	"testing"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/expense"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingExpense(t *testing.T) *expense.Expense {
	t.Helper()
	e, err := expense.NewExpense(kernel.NewUUID(), "Detergent", kernel.MoneyFromUnits(500), expense.ForOwner1, fixedNow)
	require.NoError(t, err)
	return e
}

func reimbursedExpense(t *testing.T) *expense.Expense {
	t.Helper()
	e := pendingExpense(t)
	require.NoError(t, e.Reimburse("admin-0", fixedNow.Add(-time.Hour)))
	return e
}

func TestCreateExpenseCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateExpenseCommand("Gas refill", kernel.MoneyFromUnits(1200), expense.ForBusiness, fixedNow)
	require.NoError(t, err)

	repo := new(MockExpenseRepository)
	uow := new(MockUoW)
	factory := new(MockExpenseUoWFactory)
	cache := new(MockCache)
	factory.On("Create").Return(uow).Once()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ExpenseRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(e *expense.Expense) bool {
			return e.Title() == "Gas refill" && e.ReimbursementStatus() == expense.None && e.IsBusinessCost()
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	cache.On("Invalidate", ctx, ports.CacheKeyReports).Return(nil).Once()

	h := commands.NewCreateExpenseCommandHandler(factory, cache, discardLogger())
	id, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NoError(t, id.Validate())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestNewCreateExpenseCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewCreateExpenseCommand(" ", 0, "Owner 9", time.Time{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestReimburseExpenseCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	e := pendingExpense(t)
	cmd, err := commands.NewReimburseExpenseCommand(e.ID(), "admin-1")
	require.NoError(t, err)

	repo := new(MockExpenseRepository)
	uow := new(MockUoW)
	factory := new(MockExpenseUoWFactory)
	cache := new(MockCache)
	factory.On("Create").Return(uow).Once()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ExpenseRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, e.ID()).Return(e, nil).Once(),
		repo.On("Update", ctx, e).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	cache.On("Invalidate", ctx, ports.CacheKeyReports).Return(nil).Once()

	h := commands.NewReimburseExpenseCommandHandler(factory, fixedClock(), cache, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, expense.Reimbursed, e.ReimbursementStatus())
	assert.True(t, e.IsBusinessCost())
	require.NotNil(t, e.ReimbursedAt())
	assert.Equal(t, fixedNow, *e.ReimbursedAt())
	assert.Equal(t, "admin-1", *e.ReimbursedBy())
	uow.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestReimburseExpenseCommandHandler_Handle_NotPending(t *testing.T) {
	ctx := t.Context()
	e := reimbursedExpense(t)
	reimbursedAt := *e.ReimbursedAt()
	cmd, err := commands.NewReimburseExpenseCommand(e.ID(), "admin-1")
	require.NoError(t, err)

	repo := new(MockExpenseRepository)
	uow := new(MockUoW)
	factory := new(MockExpenseUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ExpenseRepository").Return(repo).Once()
	repo.On("GetForUpdate", ctx, e.ID()).Return(e, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewReimburseExpenseCommandHandler(factory, fixedClock(), new(MockCache), discardLogger())
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, reimbursedAt, *e.ReimbursedAt())
	assert.Equal(t, "admin-0", *e.ReimbursedBy())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestReimburseExpenseCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewReimburseExpenseCommand(id, "admin-1")
	require.NoError(t, err)

	repo := new(MockExpenseRepository)
	uow := new(MockUoW)
	factory := new(MockExpenseUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ExpenseRepository").Return(repo).Once()
	repo.On("GetForUpdate", ctx, id).Return(nil, errs.NewObjectNotFoundError("expense", id)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewReimburseExpenseCommandHandler(factory, fixedClock(), new(MockCache), discardLogger())
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
}

func TestNewReimburseExpenseCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewReimburseExpenseCommand(kernel.UUID{}, "")
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewBulkReimburseExpensesCommand(t *testing.T) {
	a, b := kernel.NewUUID(), kernel.NewUUID()

	cmd, err := commands.NewBulkReimburseExpensesCommand([]kernel.UUID{a, b, a}, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, []kernel.UUID{a, b}, cmd.ExpenseIDs())

	_, err = commands.NewBulkReimburseExpensesCommand(nil, "admin-1")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewBulkReimburseExpensesCommand([]kernel.UUID{a, {}}, "admin-1")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestBulkReimburseExpensesCommandHandler_Atomic(t *testing.T) {
	ctx := t.Context()

	t.Run("commits the whole batch", func(t *testing.T) {
		first, second := pendingExpense(t), pendingExpense(t)
		cmd, err := commands.NewBulkReimburseExpensesCommand([]kernel.UUID{first.ID(), second.ID()}, "admin-1")
		require.NoError(t, err)

		repo := new(MockExpenseRepository)
		uow := new(MockUoW)
		factory := new(MockExpenseUoWFactory)
		factory.On("Create").Return(uow).Once()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("ExpenseRepository").Return(repo).Once(),
			repo.On("GetForUpdate", ctx, first.ID()).Return(first, nil).Once(),
			repo.On("Update", ctx, first).Return(nil).Once(),
			repo.On("GetForUpdate", ctx, second.ID()).Return(second, nil).Once(),
			repo.On("Update", ctx, second).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewBulkReimburseExpensesCommandHandler(factory, true, fixedClock(), nopCache(), discardLogger())
		result, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, []kernel.UUID{first.ID(), second.ID()}, result.Succeeded)
		assert.Empty(t, result.Failed)
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("one failure rolls back every expense", func(t *testing.T) {
		first, done := pendingExpense(t), reimbursedExpense(t)
		cmd, err := commands.NewBulkReimburseExpensesCommand([]kernel.UUID{first.ID(), done.ID()}, "admin-1")
		require.NoError(t, err)

		repo := new(MockExpenseRepository)
		uow := new(MockUoW)
		factory := new(MockExpenseUoWFactory)
		cache := new(MockCache)
		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("ExpenseRepository").Return(repo).Once()
		repo.On("GetForUpdate", ctx, first.ID()).Return(first, nil).Once()
		repo.On("Update", ctx, first).Return(nil).Once()
		repo.On("GetForUpdate", ctx, done.ID()).Return(done, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewBulkReimburseExpensesCommandHandler(factory, true, fixedClock(), cache, discardLogger())
		result, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Empty(t, result.Succeeded)
		require.Len(t, result.Failed, 2)
		for _, f := range result.Failed {
			require.ErrorIs(t, f.Err, errs.ErrValueIsInvalid)
		}
		uow.AssertNotCalled(t, "Commit", mock.Anything)
		cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
	})

	t.Run("commit failure is returned", func(t *testing.T) {
		first := pendingExpense(t)
		cmd, err := commands.NewBulkReimburseExpensesCommand([]kernel.UUID{first.ID()}, "admin-1")
		require.NoError(t, err)

		repo := new(MockExpenseRepository)
		uow := new(MockUoW)
		factory := new(MockExpenseUoWFactory)
		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("ExpenseRepository").Return(repo).Once()
		repo.On("GetForUpdate", ctx, first.ID()).Return(first, nil).Once()
		repo.On("Update", ctx, first).Return(nil).Once()
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewBulkReimburseExpensesCommandHandler(factory, true, fixedClock(), new(MockCache), discardLogger())
		_, err = h.Handle(ctx, cmd)

		require.Error(t, err)
	})
}

func TestBulkReimburseExpensesCommandHandler_Sequential(t *testing.T) {
	ctx := t.Context()
	first, done, missing := pendingExpense(t), reimbursedExpense(t), kernel.NewUUID()
	cmd, err := commands.NewBulkReimburseExpensesCommand([]kernel.UUID{first.ID(), done.ID(), missing}, "admin-1")
	require.NoError(t, err)

	repo := new(MockExpenseRepository)
	uow := new(MockUoW)
	factory := new(MockExpenseUoWFactory)
	factory.On("Create").Return(uow).Times(3)
	uow.On("Begin", ctx).Return(nil).Times(3)
	uow.On("ExpenseRepository").Return(repo).Times(3)
	uow.On("Rollback", ctx).Return(nil).Times(3)
	uow.On("Commit", ctx).Return(nil).Once()
	repo.On("GetForUpdate", ctx, first.ID()).Return(first, nil).Once()
	repo.On("Update", ctx, first).Return(nil).Once()
	repo.On("GetForUpdate", ctx, done.ID()).Return(done, nil).Once()
	repo.On("GetForUpdate", ctx, missing).Return(nil, errs.NewObjectNotFoundError("expense", missing)).Once()

	h := commands.NewBulkReimburseExpensesCommandHandler(factory, false, fixedClock(), nopCache(), discardLogger())
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, []kernel.UUID{first.ID()}, result.Succeeded)
	require.Len(t, result.Failed, 2)
	assert.Equal(t, done.ID(), result.Failed[0].ExpenseID)
	require.ErrorIs(t, result.Failed[0].Err, errs.ErrValueIsInvalid)
	assert.Equal(t, missing, result.Failed[1].ExpenseID)
	require.ErrorIs(t, result.Failed[1].Err, errs.ErrObjectNotFound)
	assert.Equal(t, expense.Reimbursed, first.ReimbursementStatus())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteExpenseCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("reimbursed expense needs confirmation", func(t *testing.T) {
		e := reimbursedExpense(t)
		cmd, err := commands.NewDeleteExpenseCommand(e.ID(), false)
		require.NoError(t, err)

		repo := new(MockExpenseRepository)
		uow := new(MockUoW)
		factory := new(MockExpenseUoWFactory)
		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("ExpenseRepository").Return(repo).Once()
		repo.On("GetForUpdate", ctx, e.ID()).Return(e, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewDeleteExpenseCommandHandler(factory, new(MockCache), discardLogger())
		err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrConfirmationRequired)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("confirmed deletion", func(t *testing.T) {
		e := reimbursedExpense(t)
		cmd, err := commands.NewDeleteExpenseCommand(e.ID(), true)
		require.NoError(t, err)

		repo := new(MockExpenseRepository)
		uow := new(MockUoW)
		factory := new(MockExpenseUoWFactory)
		factory.On("Create").Return(uow).Once()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("ExpenseRepository").Return(repo).Once(),
			repo.On("GetForUpdate", ctx, e.ID()).Return(e, nil).Once(),
			repo.On("Delete", ctx, e.ID()).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewDeleteExpenseCommandHandler(factory, nopCache(), discardLogger())
		require.NoError(t, h.Handle(ctx, cmd))
		repo.AssertExpectations(t)
	})

	t.Run("pending expense needs no confirmation", func(t *testing.T) {
		e := pendingExpense(t)
		cmd, err := commands.NewDeleteExpenseCommand(e.ID(), false)
		require.NoError(t, err)

		repo := new(MockExpenseRepository)
		uow := new(MockUoW)
		factory := new(MockExpenseUoWFactory)
		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("ExpenseRepository").Return(repo).Once()
		repo.On("GetForUpdate", ctx, e.ID()).Return(e, nil).Once()
		repo.On("Delete", ctx, e.ID()).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewDeleteExpenseCommandHandler(factory, nopCache(), discardLogger())
		require.NoError(t, h.Handle(ctx, cmd))
	})
}
