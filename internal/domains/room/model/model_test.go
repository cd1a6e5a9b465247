package model_test

import (
	"hotel/internal/domains/room/model"
	"hotel/internal/storage"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRoundTrip(t *testing.T) {
	room := model.Room{ID: "r-1", Number: "101", Size: 2, Price: 150}

	record := room.ToRecord()
	assert.Equal(t, storage.Record{"id": "r-1", "number": "101", "size": 2, "price": 150}, record)

	got, err := model.FromRecord(record)
	require.NoError(t, err)
	assert.Equal(t, room, got)
}

func TestFromRecord_CachedRepresentation(t *testing.T) {
	got, err := model.FromRecord(storage.Record{"id": "r-1", "number": "101", "size": float64(2), "price": float64(150)})

	require.NoError(t, err)
	assert.Equal(t, 150, got.Price)
}

func TestFromRecord_Invalid(t *testing.T) {
	_, err := model.FromRecord(storage.Record{"id": "r-1", "number": "101", "size": 2})

	assert.ErrorIs(t, err, storage.ErrMissingField)
}

func TestTableName(t *testing.T) {
	assert.Equal(t, "rooms", model.Room{}.TableName())
}
