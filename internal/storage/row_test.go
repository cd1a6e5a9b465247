package storage_test

import (
	"hotel/internal/storage"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type Audit struct {
	CreatedBy string `db:"created_by"`
}

type bookingRow struct {
	ID       string    `db:"id"`
	FromDate time.Time `db:"from_date"`
	Price    int       `db:"price"`
	Scratch  string    `db:"-"`
	Note     string
	Audit
}

func TestColumns(t *testing.T) {
	got := storage.Columns(reflect.TypeOf(bookingRow{}))

	assert.Equal(t, []string{"id", "from_date", "price", "created_by"}, got)
}

func TestFromRow(t *testing.T) {
	from := time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC)
	row := bookingRow{
		ID:       "b-1",
		FromDate: from,
		Price:    500,
		Scratch:  "x",
		Note:     "y",
		Audit:    Audit{CreatedBy: "desk"},
	}

	want := storage.Record{"id": "b-1", "from_date": from, "price": 500, "created_by": "desk"}

	assert.Equal(t, want, storage.FromRow(row))
	assert.Equal(t, want, storage.FromRow(&row))
}
