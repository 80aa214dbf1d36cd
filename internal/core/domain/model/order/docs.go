// Package order provides the Order aggregate of the laundry service: intake,
// pricing result, fulfillment status and payment.
//
// The package includes:
//   - Order: the aggregate root with its append-only status history
//   - ID: the sequential, human-readable order identifier ("ORD-001")
//   - Status: the fixed, ordered fulfillment vocabulary
//   - ServicePackage and DeliveryOption: service tiers and transport legs
//   - Pricing: load count and charges resolved by the pricing engine
//
// Key business rules:
//   - LoadCount = max(1, ceil(effectiveWeight / 7.5)); Total = LoadCount × 180 + TransportFee
//   - Status moves are unrestricted within the vocabulary; every move is audited
//   - Status history timestamps never decrease
//   - Only the employee assignment, piece count, payment flag and status
//     change after creation
package order
