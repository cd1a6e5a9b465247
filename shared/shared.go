package shared

import (
	"hotel/shared/dto"
	"reflect"
	"strings"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins the non-empty parts into a redis key.
func BuildCacheKey(parts ...string) string {
	keys := make([]string, 0, len(parts))

	for _, part := range parts {
		if part == "" {
			continue
		}

		keys = append(keys, part)
	}

	return strings.Join(keys, cacheKeySeparator)
}

// TransformFields converts the set fields of a struct into a map keyed by
// their `db` tag. Nil pointers are skipped and non-nil pointers are
// dereferenced, so a request struct of optional fields yields exactly the
// fields the client supplied.
func TransformFields(data any) map[string]any {
	val := reflect.Indirect(reflect.ValueOf(data))
	updatedFields := make(map[string]any)

	if val.Kind() != reflect.Struct {
		return updatedFields
	}

	typ := val.Type()

	for index := range val.NumField() {
		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		field := val.Field(index)

		switch field.Kind() {
		case reflect.Pointer, reflect.Interface:
			if field.IsNil() {
				continue
			}

			updatedFields[fieldName] = field.Elem().Interface()
		default:
			updatedFields[fieldName] = field.Interface()
		}
	}

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
