package postgres

import (
	"context"
	"fmt"

	"github.com/nomadplanner/planner-api/internal/core/domain"
)

const entryColumns = `id, user_id, amount, category, description, date, is_work_related`

// BudgetRepo implements ports.BudgetRepository using PostgreSQL.
type BudgetRepo struct{ db *DB }

func NewBudgetRepo(db *DB) *BudgetRepo { return &BudgetRepo{db: db} }

func scanEntry(row scanner) (*domain.BudgetEntry, error) {
	var b domain.BudgetEntry
	if err := row.Scan(&b.ID, &b.UserID, &b.Amount, &b.Category, &b.Description, &b.Date, &b.IsWorkRelated); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BudgetRepo) ListByUser(ctx context.Context, userID int64) ([]*domain.BudgetEntry, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT `+entryColumns+` FROM budget_entries WHERE user_id=$1 ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list budget entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.BudgetEntry, 0)
	for rows.Next() {
		b, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan budget entry: %w", err)
		}
		entries = append(entries, b)
	}
	return entries, rows.Err()
}

func (r *BudgetRepo) FindByID(ctx context.Context, id int64) (*domain.BudgetEntry, error) {
	b, err := scanEntry(r.db.Pool.QueryRow(ctx, `SELECT `+entryColumns+` FROM budget_entries WHERE id=$1`, id))
	if err != nil {
		return nil, notFound(err, "find budget entry", domain.ErrBudgetEntryNotFound)
	}
	return b, nil
}

func (r *BudgetRepo) Create(ctx context.Context, entry *domain.BudgetEntry) (*domain.BudgetEntry, error) {
	const q = `
INSERT INTO budget_entries (user_id, amount, category, description, date, is_work_related)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + entryColumns
	b, err := scanEntry(r.db.Pool.QueryRow(ctx, q,
		entry.UserID, entry.Amount, entry.Category, entry.Description, entry.Date, entry.IsWorkRelated))
	if err != nil {
		return nil, fmt.Errorf("create budget entry: %w", err)
	}
	return b, nil
}

func (r *BudgetRepo) Update(ctx context.Context, id int64, patch domain.BudgetEntryPatch) (*domain.BudgetEntry, error) {
	const q = `
UPDATE budget_entries SET
    user_id         = COALESCE($2, user_id),
    amount          = COALESCE($3, amount),
    category        = COALESCE($4, category),
    description     = COALESCE($5, description),
    date            = COALESCE($6, date),
    is_work_related = COALESCE($7, is_work_related)
WHERE id = $1
RETURNING ` + entryColumns
	b, err := scanEntry(r.db.Pool.QueryRow(ctx, q, id,
		patch.UserID, patch.Amount, patch.Category, patch.Description, patch.Date, patch.IsWorkRelated))
	if err != nil {
		return nil, notFound(err, "update budget entry", domain.ErrBudgetEntryNotFound)
	}
	return b, nil
}
