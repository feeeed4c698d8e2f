package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// Builder returns a squirrel statement builder using $n placeholders.
func Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// QueryRowSq renders a squirrel query and runs it as a single-row query.
func QueryRowSq(ctx context.Context, q Querier, b squirrel.Sqlizer) (pgx.Row, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return q.QueryRow(ctx, sql, args...), nil
}

// QuerySq renders a squirrel query and runs it.
func QuerySq(ctx context.Context, q Querier, b squirrel.Sqlizer) (pgx.Rows, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return q.Query(ctx, sql, args...)
}

// ExecSq renders a squirrel statement and executes it, returning rows affected.
func ExecSq(ctx context.Context, q Querier, b squirrel.Sqlizer) (int64, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build statement: %w", err)
	}
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Exists wraps a select in SELECT EXISTS(...) and returns the result.
func Exists(ctx context.Context, q Querier, sel squirrel.SelectBuilder) (bool, error) {
	sql, args, err := sel.ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var ok bool
	if err := q.QueryRow(ctx, "SELECT EXISTS("+sql+")", args...).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}
