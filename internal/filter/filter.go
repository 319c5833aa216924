// Package filter turns a user's transaction filter into a storage predicate.
package filter

import (
	"errors"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-tracker/internal/model"
)

// Frequency selects a relative window of days or an explicit date range.
type Frequency string

const (
	FrequencyWeek   Frequency = "7"
	FrequencyMonth  Frequency = "30"
	FrequencyYear   Frequency = "365"
	FrequencyCustom Frequency = "custom"
)

// AllFrequencies lists every Frequency.
var AllFrequencies = []Frequency{FrequencyWeek, FrequencyMonth, FrequencyYear, FrequencyCustom}

// Days returns the window size of a relative frequency. ok is false for
// FrequencyCustom and unknown values.
func (f Frequency) Days() (days int, ok bool) {
	switch f {
	case FrequencyWeek:
		return 7, true
	case FrequencyMonth:
		return 30, true
	case FrequencyYear:
		return 365, true
	}
	return 0, false
}

func (f Frequency) Valid() bool {
	_, relative := f.Days()
	return relative || f == FrequencyCustom
}

// TypeFilter restricts results to one transaction type, or none.
type TypeFilter string

const (
	TypeAll     TypeFilter = "all"
	TypeIncome  TypeFilter = TypeFilter(model.TransactionTypeIncome)
	TypeExpense TypeFilter = TypeFilter(model.TransactionTypeExpense)
)

func (t TypeFilter) Valid() bool {
	return t == TypeAll || model.TransactionType(t).Valid()
}

// Filter is the client's selection. DateRange is only read when Frequency
// is FrequencyCustom.
type Filter struct {
	Frequency Frequency
	DateRange []string
	Type      TypeFilter
}

// ErrInvalidFilter matches every *InvalidFilterError.
var ErrInvalidFilter = errors.New("invalid filter")

// InvalidFilterError is returned by Build when the filter cannot be turned
// into a predicate.
type InvalidFilterError struct {
	Reason string
}

func (e *InvalidFilterError) Error() string {
	return e.Reason
}

func (e *InvalidFilterError) Is(target error) bool {
	return target == ErrInvalidFilter
}

func invalid(reason string) error {
	return &InvalidFilterError{Reason: reason}
}

// Build validates f and produces the predicate for userID's transactions.
// now anchors relative frequencies.
func Build(userID string, f Filter, now time.Time) (Predicate, error) {
	var p Predicate

	if strings.TrimSpace(userID) == "" {
		return p, invalid("userId is required")
	}
	id, err := uuid.FromString(userID)
	if err != nil || id == uuid.Nil {
		return p, invalid("invalid userId")
	}
	p.UserID = id

	if days, ok := f.Frequency.Days(); ok {
		after := model.TruncateDate(now.UTC().AddDate(0, 0, -days))
		p.After = &after
	} else if f.Frequency == FrequencyCustom {
		from, to, err := parseRange(f.DateRange)
		if err != nil {
			return Predicate{}, err
		}
		p.From = &from
		p.To = &to
	} else {
		return Predicate{}, invalid("unknown frequency " + string(f.Frequency))
	}

	switch {
	case f.Type == "" || f.Type == TypeAll:
	case f.Type.Valid():
		t := model.TransactionType(f.Type)
		p.Type = &t
	default:
		return Predicate{}, invalid("unknown type " + string(f.Type))
	}

	return p, nil
}

func parseRange(dateRange []string) (from, to time.Time, err error) {
	if len(dateRange) != 2 {
		return from, to, invalid("Invalid custom date range")
	}
	from, err = model.ParseDate(dateRange[0])
	if err != nil {
		return from, to, invalid("Invalid custom date range: " + err.Error())
	}
	to, err = model.ParseDate(dateRange[1])
	if err != nil {
		return from, to, invalid("Invalid custom date range: " + err.Error())
	}
	if from.After(to) {
		return from, to, invalid("Invalid custom date range: start is after end")
	}
	return from, to, nil
}

// Validate checks f without building a predicate. It accepts exactly what
// Build accepts for a valid userId.
func (f Filter) Validate() error {
	if f.Frequency == FrequencyCustom {
		if _, _, err := parseRange(f.DateRange); err != nil {
			return err
		}
	} else if !f.Frequency.Valid() {
		return invalid("unknown frequency " + string(f.Frequency))
	}
	if f.Type != "" && !f.Type.Valid() {
		return invalid("unknown type " + string(f.Type))
	}
	return nil
}
