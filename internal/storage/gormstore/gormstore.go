// Package gormstore implements storage.Store with gorm, used for the MySQL
// backend. Row types carry both `db` tags, which name the record fields,
// and gorm column tags.
package gormstore

import (
	"context"
	"errors"
	"fmt"
	"hotel/infras/otel"
	"hotel/internal/storage"
	"hotel/shared/constant"
	"hotel/shared/logger"
	"maps"
	"reflect"
	"slices"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const whereID = "id = ?"

type Store[T any] struct {
	db      *gorm.DB
	otel    otel.Otel
	entity  string
	table   string
	columns []string
}

func New[T any](entity, table string, db *gorm.DB, otl otel.Otel) *Store[T] {
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

	var row T

	err := s.db.WithContext(ctx).Table(s.table).Where(whereID, id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
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

	var rows []T

	err := s.db.WithContext(ctx).Table(s.table).Order(storage.FieldID).Find(&rows).Error
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

	values := make(map[string]any, len(s.columns))
	updates := make([]string, 0, len(s.columns))

	for _, col := range s.columns {
		value, ok := record[col]
		if !ok {
			return nil, fmt.Errorf("failed to insert data (%s): %w: %s", s.entity, storage.ErrMissingField, col)
		}

		values[col] = value

		if col != storage.FieldID {
			updates = append(updates, col)
		}
	}

	err := s.db.WithContext(ctx).
		Model(new(T)).
		Table(s.table).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: storage.FieldID}},
			DoUpdates: clause.AssignmentColumns(updates),
		}).
		Create(values).Error
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to insert data (%s): %w", s.entity, err)
	}

	return storage.Record(values), nil
}

// Update checks existence first: MySQL reports zero affected rows when the
// new values equal the stored ones.
func (s *Store[T]) Update(ctx context.Context, id string, partial storage.Record) (storage.Record, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, s.spanName("Update"))
	defer scope.End()

	changes := partial.Clone()
	delete(changes, storage.FieldID)

	for _, col := range slices.Sorted(maps.Keys(changes)) {
		if !slices.Contains(s.columns, col) {
			return nil, fmt.Errorf("failed to update data (%s): %w: %s", s.entity, storage.ErrUnknownColumn, col)
		}
	}

	if _, err := s.ReadByID(ctx, id); err != nil {
		return nil, err
	}

	if len(changes) == 0 {
		return s.ReadByID(ctx, id)
	}

	err := s.db.WithContext(ctx).
		Model(new(T)).
		Table(s.table).
		Where(whereID, id).
		Updates(map[string]any(changes)).Error
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to update data (%s): %w", s.entity, err)
	}

	return s.ReadByID(ctx, id)
}

func (s *Store[T]) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, s.spanName("Delete"))
	defer scope.End()

	result := s.db.WithContext(ctx).Table(s.table).Where(whereID, id).Delete(new(T))
	if result.Error != nil {
		logger.ErrorWithStack(result.Error)
		scope.TraceError(result.Error)

		return fmt.Errorf("failed to delete data (%s): %w", s.entity, result.Error)
	}

	if result.RowsAffected == 0 {
		return storage.NotFound(s.entity, id)
	}

	return nil
}

func (s *Store[T]) spanName(operation string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, s.entity, operation)
}
