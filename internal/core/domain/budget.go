package domain

import (
	"errors"
	"time"
)

var ErrBudgetEntryNotFound = errors.New("budget entry not found")

// BudgetEntry is one expense. Amount is in whole currency units and is
// non-negative by convention.
type BudgetEntry struct {
	ID            int64     `json:"id" bson:"_id"`
	UserID        int64     `json:"userId" bson:"user_id"`
	Amount        int64     `json:"amount" bson:"amount"`
	Category      string    `json:"category" bson:"category"`
	Description   string    `json:"description" bson:"description,omitempty"`
	Date          time.Time `json:"date" bson:"date"`
	IsWorkRelated bool      `json:"isWorkRelated" bson:"is_work_related"`
}

// BudgetEntryPatch carries a partial update. Nil fields are left untouched.
type BudgetEntryPatch struct {
	UserID        *int64
	Amount        *int64
	Category      *string
	Description   *string
	Date          *time.Time
	IsWorkRelated *bool
}

func (p BudgetEntryPatch) Apply(b *BudgetEntry) {
	if p.UserID != nil {
		b.UserID = *p.UserID
	}
	if p.Amount != nil {
		b.Amount = *p.Amount
	}
	if p.Category != nil {
		b.Category = *p.Category
	}
	if p.Description != nil {
		b.Description = *p.Description
	}
	if p.Date != nil {
		b.Date = *p.Date
	}
	if p.IsWorkRelated != nil {
		b.IsWorkRelated = *p.IsWorkRelated
	}
}
