package distribution

import (
	"fmt"
	"strings"
	"time"

	"laundry/internal/pkg/errs"
)

// PeriodType selects how time is bucketed.
type PeriodType string

const (
	// Monthly buckets by calendar month.
	Monthly PeriodType = "monthly"

	// Yearly buckets by calendar year.
	Yearly PeriodType = "yearly"

	// All reports every calendar month since the first paid order. It is an
	// aggregation mode only; distribution records are monthly or yearly.
	All PeriodType = "all"
)

// ParsePeriodType maps "monthly", "yearly" or "all" (any case) to a PeriodType.
func ParsePeriodType(value string) (PeriodType, error) {
	switch t := PeriodType(strings.ToLower(strings.TrimSpace(value))); t {
	case Monthly, Yearly, All:
		return t, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(
			"period",
			fmt.Errorf("%q is not one of monthly, yearly, all", value),
		)
	}
}

// ValidateClosable checks the type can be used for distribution records.
func (t PeriodType) ValidateClosable() error {
	if t != Monthly && t != Yearly {
		return errs.NewValueIsInvalidErrorWithCause(
			"period type",
			fmt.Errorf("%q periods cannot be closed, use monthly or yearly", string(t)),
		)
	}
	return nil
}

// Period is a calendar-aligned, half-open time interval [Start, End).
type Period struct {
	Type  PeriodType
	Start time.Time
	End   time.Time
}

// MonthOf returns the calendar month (UTC) containing t.
func MonthOf(t time.Time) Period {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return Period{Type: Monthly, Start: start, End: start.AddDate(0, 1, 0)}
}

// YearOf returns the calendar year (UTC) containing t.
func YearOf(t time.Time) Period {
	t = t.UTC()
	start := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	return Period{Type: Yearly, Start: start, End: start.AddDate(1, 0, 0)}
}

// PeriodOf returns the monthly or yearly period containing t.
func PeriodOf(t PeriodType, at time.Time) (Period, error) {
	if err := t.ValidateClosable(); err != nil {
		return Period{}, err
	}
	if t == Yearly {
		return YearOf(at), nil
	}
	return MonthOf(at), nil
}

// Contains reports whether t lies in [Start, End).
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// Next returns the period of the same type that follows p.
func (p Period) Next() Period {
	if p.Type == Yearly {
		return YearOf(p.End)
	}
	return MonthOf(p.End)
}

// Previous returns the period of the same type that precedes p.
func (p Period) Previous() Period {
	if p.Type == Yearly {
		return YearOf(p.Start.AddDate(-1, 0, 0))
	}
	return MonthOf(p.Start.AddDate(0, -1, 0))
}

func (p Period) String() string {
	if p.Type == Yearly {
		return p.Start.Format("2006")
	}
	return p.Start.Format("2006-01")
}
