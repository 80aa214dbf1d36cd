// Package expense provides the Expense aggregate and the one-way reimbursement
// transition that moves an owner's personal outlay into the business ledger.
//
// Reimbursement states:
//
//	pending ──Reimburse──> reimbursed
//
// Expenses attributed to the business carry no reimbursement state at all.
// A reimbursed expense counts as a business cost in every later aggregation,
// whatever owner it was originally attributed to.
package expense
