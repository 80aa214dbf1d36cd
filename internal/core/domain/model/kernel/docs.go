// Package kernel provides the shared domain primitives of the laundry service.
//
// The package includes:
//   - UUID: identifier value object for expenses
//   - Money: an amount of currency held as integer minor units (cents)
//   - Clock: the injectable source of "now" used by aggregates and handlers
//   - Owner: the three business owners sharing net income
//
// Money never passes through floating point. Fractional inputs such as a
// distance in kilometres are converted through shopspring/decimal and rounded
// half away from zero to whole cents exactly once, at the boundary.
package kernel
