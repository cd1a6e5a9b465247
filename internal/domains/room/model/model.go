package model

import (
	"fmt"
	"hotel/internal/storage"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID     = "id"
	FieldNumber = "number"
	FieldSize   = "size"
	FieldPrice  = "price"
)

// Room is a bookable room. Price is the nightly rate.
type Room struct {
	ID     string `db:"id"     gorm:"column:id;primaryKey;size:36"`
	Number string `db:"number" gorm:"column:number;size:50;not null"`
	Size   int    `db:"size"   gorm:"column:size;not null"`
	Price  int    `db:"price"  gorm:"column:price;not null"`
}

func (Room) TableName() string {
	return TableName
}

func (r Room) ToRecord() storage.Record {
	return storage.FromRow(r)
}

func FromRecord(record storage.Record) (room Room, err error) {
	if room.ID, err = record.String(FieldID); err != nil {
		return Room{}, fmt.Errorf("invalid room record: %w", err)
	}

	if room.Number, err = record.String(FieldNumber); err != nil {
		return Room{}, fmt.Errorf("invalid room record: %w", err)
	}

	if room.Size, err = record.Int(FieldSize); err != nil {
		return Room{}, fmt.Errorf("invalid room record: %w", err)
	}

	if room.Price, err = record.Int(FieldPrice); err != nil {
		return Room{}, fmt.Errorf("invalid room record: %w", err)
	}

	return room, nil
}

func FromRecords(records []storage.Record) ([]Room, error) {
	rooms := make([]Room, 0, len(records))

	for _, record := range records {
		room, err := FromRecord(record)
		if err != nil {
			return nil, err
		}

		rooms = append(rooms, room)
	}

	return rooms, nil
}
