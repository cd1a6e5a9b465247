package model

import (
	"errors"
	"fmt"
	"hotel/internal/storage"
	"hotel/shared/constant"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID         = "id"
	FieldRoomID     = "room_id"
	FieldCustomerID = "customer_id"
	FieldFromDate   = "from_date"
	FieldToDate     = "to_date"
	FieldPrice      = "price"
)

var ErrPriceOutOfRange = errors.New("booking price is out of range")

// Booking reserves a room for a customer. Price is fixed when the booking
// is created and does not follow later changes to the room rate.
type Booking struct {
	ID         string    `db:"id"          gorm:"column:id;primaryKey;size:36"`
	RoomID     string    `db:"room_id"     gorm:"column:room_id;size:36;index;not null"`
	CustomerID string    `db:"customer_id" gorm:"column:customer_id;size:36;index;not null"`
	FromDate   time.Time `db:"from_date"   gorm:"column:from_date;type:date;not null"`
	ToDate     time.Time `db:"to_date"     gorm:"column:to_date;type:date;not null"`
	Price      int       `db:"price"       gorm:"column:price;not null"`
}

func (Booking) TableName() string {
	return TableName
}

// Nights counts whole calendar days from FromDate to ToDate, end
// exclusive. It is zero or negative when ToDate is not after FromDate.
func (b Booking) Nights() int {
	return Nights(b.FromDate, b.ToDate)
}

func Nights(from, to time.Time) int {
	return int((civil(to).Unix() - civil(from).Unix()) / constant.SecondsPerDay)
}

// TotalPrice fails with ErrPriceOutOfRange when the product does not fit
// the price column.
func TotalPrice(nights, rate int) (int, error) {
	total := nights * rate
	if nights != 0 && total/nights != rate {
		return 0, ErrPriceOutOfRange
	}

	if total > constant.MaxPrice || total < constant.MinPrice {
		return 0, ErrPriceOutOfRange
	}

	return total, nil
}

func civil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (b Booking) ToRecord() storage.Record {
	b.FromDate = civil(b.FromDate)
	b.ToDate = civil(b.ToDate)

	return storage.FromRow(b)
}

func FromRecord(record storage.Record) (booking Booking, err error) {
	if booking.ID, err = record.String(FieldID); err != nil {
		return Booking{}, fmt.Errorf("invalid booking record: %w", err)
	}

	if booking.RoomID, err = record.String(FieldRoomID); err != nil {
		return Booking{}, fmt.Errorf("invalid booking record: %w", err)
	}

	if booking.CustomerID, err = record.String(FieldCustomerID); err != nil {
		return Booking{}, fmt.Errorf("invalid booking record: %w", err)
	}

	if booking.FromDate, err = record.Date(FieldFromDate); err != nil {
		return Booking{}, fmt.Errorf("invalid booking record: %w", err)
	}

	if booking.ToDate, err = record.Date(FieldToDate); err != nil {
		return Booking{}, fmt.Errorf("invalid booking record: %w", err)
	}

	if booking.Price, err = record.Int(FieldPrice); err != nil {
		return Booking{}, fmt.Errorf("invalid booking record: %w", err)
	}

	booking.FromDate = civil(booking.FromDate)
	booking.ToDate = civil(booking.ToDate)

	return booking, nil
}

func FromRecords(records []storage.Record) ([]Booking, error) {
	bookings := make([]Booking, 0, len(records))

	for _, record := range records {
		booking, err := FromRecord(record)
		if err != nil {
			return nil, err
		}

		bookings = append(bookings, booking)
	}

	return bookings, nil
}
