// Package distribution models reporting periods, the financial summary of a
// period, and the per-owner distribution records written when a period is
// closed.
//
// Periods are half-open intervals [Start, End) aligned to calendar months or
// years in UTC. A Summary splits net income into three equal shares in whole
// cents; the cents that do not divide evenly are kept as ShareRemainder so
// that 3 × PerOwnerShare + ShareRemainder equals NetIncome exactly.
package distribution
