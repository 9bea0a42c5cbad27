package remote

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// pgxQuerier is the subset of *pgxpool.Pool the store needs
type pgxQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// PostgresStore runs queries directly against the backend's Postgres
type PostgresStore struct {
	pool pgxQuerier
}

// NewPostgresStore wraps a connection pool
func NewPostgresStore(pool pgxQuerier) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Select fetches rows matching q
func (s *PostgresStore) Select(ctx context.Context, q Query) ([]Row, error) {
	sql, args, err := buildSelect(q)
	if err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", q.Table, err)
	}

	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s rows: %w", q.Table, err)
	}

	result := make([]Row, len(maps))
	for i, m := range maps {
		result[i] = Row(m)
	}
	return result, nil
}

// Count returns the number of rows matching filters
func (s *PostgresStore) Count(ctx context.Context, table string, filters []Filter) (int, error) {
	if table == "" {
		return 0, fmt.Errorf("table name is required")
	}
	where, args := buildWhere(filters)
	sql := "SELECT COUNT(*) FROM " + pgx.Identifier{table}.Sanitize() + where

	var total int64
	if err := s.pool.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return int(total), nil
}

// Ping selects a single id from table
func (s *PostgresStore) Ping(ctx context.Context, table string) error {
	_, err := s.Select(ctx, Query{Table: table, Columns: []string{"id"}, Limit: 1})
	return err
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}

func buildSelect(q Query) (string, []any, error) {
	if q.Table == "" {
		return "", nil, fmt.Errorf("table name is required")
	}

	cols := "*"
	if len(q.Columns) > 0 {
		quoted := make([]string, len(q.Columns))
		for i, c := range q.Columns {
			quoted[i] = pgx.Identifier{c}.Sanitize()
		}
		cols = strings.Join(quoted, ", ")
	}

	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(cols)
	b.WriteString(" FROM ")
	b.WriteString(pgx.Identifier{q.Table}.Sanitize())

	where, args := buildWhere(q.Filters)
	b.WriteString(where)

	if len(q.OrderBy) > 0 {
		parts := make([]string, len(q.OrderBy))
		for i, o := range q.OrderBy {
			dir := "ASC"
			if o.Descending {
				dir = "DESC"
			}
			parts[i] = pgx.Identifier{o.Column}.Sanitize() + " " + dir
		}
		b.WriteString(" ORDER BY ")
		b.WriteString(strings.Join(parts, ", "))
	}

	if q.Limit > 0 {
		args = append(args, q.Limit)
		fmt.Fprintf(&b, " LIMIT $%d", len(args))
	}

	return b.String(), args, nil
}

func buildWhere(filters []Filter) (string, []any) {
	if len(filters) == 0 {
		return "", nil
	}

	conditions := make([]string, 0, len(filters))
	var args []any
	for _, f := range filters {
		col := pgx.Identifier{f.Column}.Sanitize()
		switch f.Op {
		case OpEq:
			args = append(args, f.Value)
			conditions = append(conditions, fmt.Sprintf("%s = $%d", col, len(args)))
		case OpIsNull:
			conditions = append(conditions, col+" IS NULL")
		case OpNotNull:
			conditions = append(conditions, col+" IS NOT NULL")
		}
	}
	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}
