// Package services provides the domain services of the laundry system: pure
// business logic that does not belong to a single aggregate.
//
// The package includes:
//   - PricingEngine: load count, transport fee and total of an order
//   - OrderStatusMachine: permissive fulfillment updates stamped by a clock
//   - FinancialAggregator: per-period revenue, expenses, net income and the
//     equal three-way owner split
//
// None of the services perform I/O. Store reads happen in the application
// layer, which hands plain values to these services.
package services
