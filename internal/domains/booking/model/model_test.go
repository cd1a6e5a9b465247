package model_test

import (
	"hotel/internal/domains/booking/model"
	"hotel/internal/storage"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNights(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)

	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{name: "one night", from: time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC), to: time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC), want: 1},
		{name: "leap day", from: time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC), to: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), want: 2},
		{name: "same day", from: time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC), to: time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC), want: 0},
		{name: "reversed", from: time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC), to: time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC), want: -5},
		{name: "time of day ignored", from: time.Date(2024, 12, 24, 23, 0, 0, 0, time.UTC), to: time.Date(2024, 12, 25, 1, 0, 0, 0, time.UTC), want: 1},
		{name: "four centuries", from: time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC), to: time.Date(2300, 1, 1, 0, 0, 0, 0, time.UTC), want: 146097},
		{name: "whole calendar", from: time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC), to: time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC), want: 3652058},
		{name: "calendar date in its own zone", from: time.Date(2024, 12, 24, 0, 0, 0, 0, jakarta), to: time.Date(2024, 12, 25, 0, 0, 0, 0, jakarta), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Nights(tt.from, tt.to))
			assert.Equal(t, tt.want, model.Booking{FromDate: tt.from, ToDate: tt.to}.Nights())
		})
	}
}

func TestTotalPrice(t *testing.T) {
	tests := []struct {
		name   string
		nights int
		rate   int
		want   int
		err    error
	}{
		{name: "five nights", nights: 5, rate: 100, want: 500},
		{name: "no nights", nights: 0, rate: 100, want: 0},
		{name: "negative nights", nights: -1, rate: 150, want: -150},
		{name: "largest price", nights: 1, rate: math.MaxInt32, want: math.MaxInt32},
		{name: "above price column", nights: 2, rate: math.MaxInt32, err: model.ErrPriceOutOfRange},
		{name: "integer overflow", nights: 2, rate: math.MaxInt64, err: model.ErrPriceOutOfRange},
		{name: "negative overflow", nights: -3, rate: math.MaxInt64, err: model.ErrPriceOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := model.TotalPrice(tt.nights, tt.rate)

			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecordRoundTrip(t *testing.T) {
	booking := model.Booking{
		ID:         "b-1",
		RoomID:     "r-1",
		CustomerID: "c-1",
		FromDate:   time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
		ToDate:     time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC),
		Price:      500,
	}

	got, err := model.FromRecord(booking.ToRecord())

	require.NoError(t, err)
	assert.Equal(t, booking, got)
}

func TestFromRecord_CachedRepresentation(t *testing.T) {
	got, err := model.FromRecord(storage.Record{
		"id":          "b-1",
		"room_id":     "r-1",
		"customer_id": "c-1",
		"from_date":   "2024-12-20T00:00:00Z",
		"to_date":     "2024-12-25",
		"price":       float64(500),
	})

	require.NoError(t, err)
	assert.Equal(t, 5, got.Nights())
	assert.Equal(t, 500, got.Price)
}

func TestFromRecord_Invalid(t *testing.T) {
	_, err := model.FromRecord(storage.Record{"id": "b-1", "room_id": "r-1", "customer_id": "c-1", "from_date": "soon"})

	assert.Error(t, err)
}
