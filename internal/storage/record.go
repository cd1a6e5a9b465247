package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"hotel/shared/constant"
	"maps"
	"math"
	"strconv"
	"time"
)

const FieldID = "id"

var ErrMissingField = errors.New("missing field")

// Record is one stored entity as a field name to value mapping.
// Values are strings, integers or dates; backends and caches may hand
// them back in their own representation (int64, float64, []byte, string
// dates), which the typed accessors normalise.
type Record map[string]any

func (r Record) ID() string {
	id, _ := r[FieldID].(string)

	return id
}

func (r Record) Clone() Record {
	if r == nil {
		return Record{}
	}

	return maps.Clone(r)
}

// Merge overwrites fields of r with those present in partial.
func (r Record) Merge(partial Record) {
	maps.Copy(r, partial)
}

func (r Record) String(field string) (string, error) {
	value, ok := r[field]
	if !ok || value == nil {
		return constant.Empty, fmt.Errorf("%w: %s", ErrMissingField, field)
	}

	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return constant.Empty, fmt.Errorf("field %s: unexpected type %T", field, value)
	}
}

func (r Record) Int(field string) (int, error) {
	value, ok := r[field]
	if !ok || value == nil {
		return 0, fmt.Errorf("%w: %s", ErrMissingField, field)
	}

	switch v := value.(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("field %s: %v is not an integer", field, v)
		}

		return int(v), nil
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("field %s: %w", field, err)
		}

		return int(i), nil
	case []byte:
		return atoi(field, string(v))
	case string:
		return atoi(field, v)
	default:
		return 0, fmt.Errorf("field %s: unexpected type %T", field, value)
	}
}

func (r Record) Date(field string) (time.Time, error) {
	value, ok := r[field]
	if !ok || value == nil {
		return time.Time{}, fmt.Errorf("%w: %s", ErrMissingField, field)
	}

	switch v := value.(type) {
	case time.Time:
		return v, nil
	case []byte:
		return parseDate(field, string(v))
	case string:
		return parseDate(field, v)
	default:
		return time.Time{}, fmt.Errorf("field %s: unexpected type %T", field, value)
	}
}

func atoi(field, value string) (int, error) {
	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("field %s: %w", field, err)
	}

	return i, nil
}

func parseDate(field, value string) (time.Time, error) {
	for _, layout := range []string{constant.DateFormat, constant.DateTimeFormat, time.RFC3339Nano} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("field %s: cannot parse %q as date", field, value)
}
