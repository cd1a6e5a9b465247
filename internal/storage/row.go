package storage

import (
	"errors"
	"reflect"
)

var ErrUnknownColumn = errors.New("unknown column")

// Columns lists the `db` tags of a row struct in field order, descending
// into embedded structs.
func Columns(rowType reflect.Type) []string {
	var cols []string

	for i := range rowType.NumField() {
		field := rowType.Field(i)
		if !field.IsExported() {
			continue
		}

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			cols = append(cols, Columns(field.Type)...)

			continue
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" || dbTag == "-" {
			continue
		}

		cols = append(cols, dbTag)
	}

	return cols
}

// FromRow copies the `db` tagged fields of a row struct into a Record.
func FromRow(row any) Record {
	record := Record{}
	fromValue(reflect.Indirect(reflect.ValueOf(row)), record)

	return record
}

func fromValue(val reflect.Value, record Record) {
	typ := val.Type()

	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			fromValue(val.Field(i), record)

			continue
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" || dbTag == "-" {
			continue
		}

		record[dbTag] = val.Field(i).Interface()
	}
}
