// Package postgres implements the read ports on PostgreSQL for deployments
// where the SaaS database is relational (DIRECTORY_BACKEND=postgres).
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Querier is the subset of *pgxpool.Pool the repositories use.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Tables holds the configured table names.
type Tables struct {
	Profiles      string
	ServiceOrders string
	Commissions   string
	Payables      string
	Clients       string
}

func table(name, def string) string {
	if name == "" {
		name = def
	}
	return pgx.Identifier{name}.Sanitize()
}

func collect[T any](rows pgx.Rows, scan func(pgx.Row) (T, error)) ([]T, error) {
	defer rows.Close()
	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
