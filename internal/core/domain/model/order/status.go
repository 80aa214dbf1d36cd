package order

import (
	"fmt"
	"strings"

	"laundry/internal/pkg/errs"
)

// Status represents the fulfillment stage of an order.
//
// The vocabulary is fixed and ordered; the position of a status defines the
// fulfillment progress shown to customers:
//
//	Order Placed -> Pickup Scheduled -> Washing -> Drying -> Folding ->
//	Ready for Pick Up -> Out for Delivery -> Delivered -> Success
//
// Status is a tagged enum, not a guarded state machine. Any member of the
// vocabulary may follow any other (administrators issue corrections by moving
// an order backwards or skipping stages). Every move is kept in the order's
// status history instead.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// OrderPlaced is the initial status of every order.
	OrderPlaced

	PickupScheduled
	Washing
	Drying
	Folding
	ReadyForPickUp
	OutForDelivery
	Delivered

	// Success is the last stage of the vocabulary. Orders in this status
	// are no longer listed as active.
	Success
)

// getStatusStrings returns the human-readable label of every Status value.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "Unknown",
		OrderPlaced:     "Order Placed",
		PickupScheduled: "Pickup Scheduled",
		Washing:         "Washing",
		Drying:          "Drying",
		Folding:         "Folding",
		ReadyForPickUp:  "Ready for Pick Up",
		OutForDelivery:  "Out for Delivery",
		Delivered:       "Delivered",
		Success:         "Success",
	}
}

// Statuses returns the vocabulary in fulfillment order.
func Statuses() []Status {
	return []Status{
		OrderPlaced,
		PickupScheduled,
		Washing,
		Drying,
		Folding,
		ReadyForPickUp,
		OutForDelivery,
		Delivered,
		Success,
	}
}

// ParseStatus maps a human-readable label such as "Ready for Pick Up" to its
// Status. Matching ignores case and surrounding whitespace.
//
// Returns:
//   - the matching Status
//   - ValueIsInvalidError if the label is not part of the vocabulary
//
// Example:
//
//	s, err := order.ParseStatus("Washing")
//	if err != nil {
//	    // reject the request, nothing was mutated
//	}
func ParseStatus(label string) (Status, error) {
	normalized := strings.TrimSpace(label)
	for _, s := range Statuses() {
		if strings.EqualFold(s.String(), normalized) {
			return s, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not part of the status vocabulary", label),
	)
}

// Validate checks that the Status is a member of the vocabulary.
// Unknown (0) and any out-of-range value are rejected.
func (s Status) Validate() error {
	if s < OrderPlaced || s > Success {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable label of the status.
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Index returns the zero-based position of the status in the vocabulary,
// or -1 for invalid values.
func (s Status) Index() int {
	if s.Validate() != nil {
		return -1
	}
	return int(s - OrderPlaced)
}

// Progress returns the fulfillment progress as a fraction in (0, 1]:
// (index+1) / len(vocabulary). Invalid statuses report 0.
//
// Example:
//
//	order.OrderPlaced.Progress() // 0.111...
//	order.Success.Progress()     // 1
func (s Status) Progress() float64 {
	idx := s.Index()
	if idx < 0 {
		return 0
	}
	return float64(idx+1) / float64(len(Statuses()))
}

// IsFinal reports whether the status is the last stage of the vocabulary.
func (s Status) IsFinal() bool {
	return s == Success
}
