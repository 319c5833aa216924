package filter

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-tracker/internal/model"
)

// Predicate is the storage-level condition produced by Build. The SQL in
// sqlconfig mirrors Matches exactly.
type Predicate struct {
	UserID uuid.UUID
	// After is an exclusive lower bound on the date, a UTC midnight.
	After *time.Time
	// From and To are inclusive bounds on the date.
	From *time.Time
	To   *time.Time
	Type *model.TransactionType
}

// Matches reports whether tx satisfies the predicate.
func (p Predicate) Matches(tx model.Transaction) bool {
	if tx.UserID != p.UserID {
		return false
	}
	if p.After != nil && !tx.Date.After(*p.After) {
		return false
	}
	if p.From != nil && tx.Date.Before(*p.From) {
		return false
	}
	if p.To != nil && tx.Date.After(*p.To) {
		return false
	}
	if p.Type != nil && tx.Type != *p.Type {
		return false
	}
	return true
}
