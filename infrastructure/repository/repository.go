// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
)

// Limite de linhas por INSERT para ficar longe do máximo de parâmetros do Postgres
const insertBatchSize = 500

const (
	pqUniqueViolation = "23505"
	pqUndefinedTable  = "42P01"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func chunk[T any](items []T, size int) [][]T {
	var out [][]T
	for size < len(items) {
		items, out = items[size:], append(out, items[:size])
	}
	if len(items) > 0 {
		out = append(out, items)
	}
	return out
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nullInt(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}

// describeWriteError traduz os erros conhecidos do Postgres em mensagens legíveis
func describeWriteError(table string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
		return fmt.Errorf("registro duplicado em %s (%s): %w", table, pqErr.Constraint, err)
	}
	return fmt.Errorf("erro ao gravar em %s: %w", table, err)
}

// isUndefinedTable indica que a consulta falhou porque a tabela não existe
func isUndefinedTable(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUndefinedTable
}
