package expense_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/expense"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var incurred = time.Date(2026, 2, 10, 15, 4, 0, 0, time.UTC)

func TestNewExpense(t *testing.T) {
	t.Run("owner outlay starts pending", func(t *testing.T) {
		e, err := expense.NewExpense(kernel.NewUUID(), "Detergent", kernel.MoneyFromUnits(500), expense.ForOwner1, incurred)

		require.NoError(t, err)
		require.NoError(t, e.Validate())
		assert.Equal(t, expense.Pending, e.ReimbursementStatus())
		assert.True(t, e.IsPending())
		assert.False(t, e.IsBusinessCost())
		assert.Equal(t, time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), e.IncurredOn())
		assert.Nil(t, e.ReimbursedAt())
		assert.Nil(t, e.ReimbursedBy())
	})

	t.Run("business expense has no reimbursement state", func(t *testing.T) {
		e, err := expense.NewExpense(kernel.NewUUID(), "Rent", kernel.MoneyFromUnits(3000), expense.ForBusiness, incurred)

		require.NoError(t, err)
		assert.Equal(t, expense.None, e.ReimbursementStatus())
		assert.True(t, e.IsBusinessCost())
		assert.False(t, e.IsPending())
	})

	t.Run("should join validation errors", func(t *testing.T) {
		e, err := expense.NewExpense(kernel.UUID{}, "", 0, expense.For("Owner9"), time.Time{})

		require.Error(t, err)
		assert.Nil(t, e)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "title")
		assert.Contains(t, err.Error(), "amount")
		assert.Contains(t, err.Error(), "expense for")
		assert.Contains(t, err.Error(), "incurred on")
	})
}

func TestExpense_Reimburse(t *testing.T) {
	at := incurred.Add(48 * time.Hour)

	t.Run("pending becomes reimbursed and counts as business cost", func(t *testing.T) {
		e, _ := expense.NewExpense(kernel.NewUUID(), "Soap", kernel.MoneyFromUnits(500), expense.ForOwner2, incurred)

		require.NoError(t, e.Reimburse("admin-1", at))

		assert.Equal(t, expense.Reimbursed, e.ReimbursementStatus())
		assert.True(t, e.IsBusinessCost())
		require.NotNil(t, e.ReimbursedAt())
		assert.Equal(t, at, *e.ReimbursedAt())
		require.NotNil(t, e.ReimbursedBy())
		assert.Equal(t, "admin-1", *e.ReimbursedBy())
		assert.Equal(t, expense.ForOwner2, e.ExpenseFor())
	})

	t.Run("is one-way", func(t *testing.T) {
		e, _ := expense.NewExpense(kernel.NewUUID(), "Soap", kernel.MoneyFromUnits(500), expense.ForOwner2, incurred)
		require.NoError(t, e.Reimburse("admin-1", at))

		err := e.Reimburse("admin-2", at.Add(time.Hour))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, "admin-1", *e.ReimbursedBy())
		assert.Equal(t, at, *e.ReimbursedAt())
	})

	t.Run("business expense cannot be reimbursed", func(t *testing.T) {
		e, _ := expense.NewExpense(kernel.NewUUID(), "Rent", kernel.MoneyFromUnits(500), expense.ForBusiness, incurred)

		require.ErrorIs(t, e.Reimburse("admin-1", at), errs.ErrValueIsInvalid)
		assert.Equal(t, expense.None, e.ReimbursementStatus())
	})

	t.Run("actor is required", func(t *testing.T) {
		e, _ := expense.NewExpense(kernel.NewUUID(), "Soap", kernel.MoneyFromUnits(500), expense.ForOwner3, incurred)

		require.ErrorIs(t, e.Reimburse(" ", at), errs.ErrValueIsRequired)
		assert.True(t, e.IsPending())
	})
}

func TestExpense_CheckDeletion(t *testing.T) {
	e, _ := expense.NewExpense(kernel.NewUUID(), "Soap", kernel.MoneyFromUnits(500), expense.ForOwner1, incurred)
	require.NoError(t, e.CheckDeletion(false))

	require.NoError(t, e.Reimburse("admin", incurred))

	require.ErrorIs(t, e.CheckDeletion(false), errs.ErrConfirmationRequired)
	require.NoError(t, e.CheckDeletion(true))
}

func TestRestoreExpense(t *testing.T) {
	at := incurred.Add(time.Hour)
	actor := "admin"

	t.Run("should restore reimbursed expense", func(t *testing.T) {
		e, err := expense.RestoreExpense(kernel.NewUUID(), "Soap", 100, expense.ForOwner1, expense.Reimbursed, incurred, &at, &actor)

		require.NoError(t, err)
		assert.True(t, e.IsBusinessCost())
	})

	t.Run("should reject inconsistent state", func(t *testing.T) {
		testCases := []struct {
			name   string
			For    expense.For
			status expense.ReimbursementStatus
			at     *time.Time
			by     *string
		}{
			{"business with pending", expense.ForBusiness, expense.Pending, nil, nil},
			{"owner with none", expense.ForOwner1, expense.None, nil, nil},
			{"reimbursed without actor", expense.ForOwner1, expense.Reimbursed, &at, nil},
			{"pending with timestamp", expense.ForOwner1, expense.Pending, &at, &actor},
			{"unknown status", expense.ForOwner1, expense.ReimbursementStatus("lost"), nil, nil},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := expense.RestoreExpense(kernel.NewUUID(), "Soap", 100, tc.For, tc.status, incurred, tc.at, tc.by)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})
}

func TestFor_Owner(t *testing.T) {
	owner, ok := expense.ForOwner3.Owner()
	assert.True(t, ok)
	assert.Equal(t, kernel.Owner3, owner)

	_, ok = expense.ForBusiness.Owner()
	assert.False(t, ok)

	assert.Equal(t, expense.ForOwner2, expense.ForOwner(kernel.Owner2))
}
