// Package salary tracks what employees earn per day for completed loads.
//
// There is exactly one Payment per employee and calendar day. Recording more
// completed loads raises its amount; paying it out is tracked independently of
// the amount, and only paid records count as salary expense.
package salary
