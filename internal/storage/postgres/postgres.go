// Package postgres implements storage.Store on a Postgres table through sqlx.
//
// The table layout is taken from the `db` tags of the row type T. Reads
// return rows in primary key order; Create upserts on the primary key.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/storage"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/logger"
	"maps"
	"reflect"
	"slices"
	"strings"
)

type Store[T any] struct {
	db      *postgres.Connection
	otel    otel.Otel
	entity  string
	table   string
	columns []string
}

func New[T any](entity, table string, db *postgres.Connection, otl otel.Otel) *Store[T] {
	var zero T

	return &Store[T]{
		db:      db,
		otel:    otl,
		entity:  entity,
		table:   table,
		columns: storage.Columns(reflect.TypeOf(zero)),
	}
}

func (s *Store[T]) ReadByID(ctx context.Context, id string) (storage.Record, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, s.spanName("ReadByID"))
	defer scope.End()

	where, args := s.whereID(id)
	query := fmt.Sprintf("SELECT %s FROM %s%s", strings.Join(s.columns, ", "), s.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := s.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", s.entity, err)
	}
	defer prepare.Close()

	var row T

	err = prepare.GetContext(ctx, &row, args)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.NotFound(s.entity, id)
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to read data (%s): %w", s.entity, err)
	}

	return storage.FromRow(row), nil
}

func (s *Store[T]) ReadAll(ctx context.Context) ([]storage.Record, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, s.spanName("ReadAll"))
	defer scope.End()

	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s", strings.Join(s.columns, ", "), s.table, storage.FieldID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var rows []T

	err := s.db.Read.SelectContext(ctx, &rows, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to read all data (%s): %w", s.entity, err)
	}

	records := make([]storage.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, storage.FromRow(row))
	}

	return records, nil
}

func (s *Store[T]) Create(ctx context.Context, record storage.Record) (storage.Record, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, s.spanName("Create"))
	defer scope.End()

	args := make(map[string]any, len(s.columns))
	placeholders := make([]string, 0, len(s.columns))
	updates := make([]string, 0, len(s.columns))

	for _, col := range s.columns {
		value, ok := record[col]
		if !ok {
			return nil, fmt.Errorf("failed to insert data (%s): %w: %s", s.entity, storage.ErrMissingField, col)
		}

		args[col] = value
		placeholders = append(placeholders, ":"+col)

		if col != storage.FieldID {
			updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
		}
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO UPDATE SET %s",
		s.table,
		strings.Join(s.columns, ", "),
		strings.Join(placeholders, ", "),
		storage.FieldID,
		strings.Join(updates, ", "),
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := s.db.Write.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to insert data (%s): %w", s.entity, err)
	}

	return storage.Record(args), nil
}

func (s *Store[T]) Update(ctx context.Context, id string, partial storage.Record) (storage.Record, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, s.spanName("Update"))
	defer scope.End()

	changes := partial.Clone()
	delete(changes, storage.FieldID)

	if len(changes) == 0 {
		return s.ReadByID(ctx, id)
	}

	updateField := make([]string, 0, len(changes))

	for _, col := range slices.Sorted(maps.Keys(changes)) {
		if !slices.Contains(s.columns, col) {
			return nil, fmt.Errorf("failed to update data (%s): %w: %s", s.entity, storage.ErrUnknownColumn, col)
		}

		updateField = append(updateField, fmt.Sprintf("%s = :%s", col, col))
	}

	where, args := s.whereID(id)
	query := fmt.Sprintf("UPDATE %s SET %s%s", s.table, strings.Join(updateField, ", "), where)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)
	maps.Copy(args, changes)

	result, err := s.db.Write.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to update data (%s): %w", s.entity, err)
	}

	if err = s.affected(result, id); err != nil {
		return nil, err
	}

	return s.ReadByID(ctx, id)
}

func (s *Store[T]) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, s.spanName("Delete"))
	defer scope.End()

	where, args := s.whereID(id)
	query := fmt.Sprintf("DELETE FROM %s%s", s.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := s.db.Write.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete data (%s): %w", s.entity, err)
	}

	return s.affected(result, id)
}

func (s *Store[T]) affected(result sql.Result, id string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to read affected rows (%s): %w", s.entity, err)
	}

	if rows == 0 {
		return storage.NotFound(s.entity, id)
	}

	return nil
}

func (s *Store[T]) whereID(id string) (string, map[string]any) {
	filter := shared.FilterByID(id, storage.FieldID, constant.Empty)

	where, args := filter.GetWhereClause()

	return fmt.Sprintf(" WHERE %s ", where), args
}

func (s *Store[T]) spanName(operation string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, s.entity, operation)
}
