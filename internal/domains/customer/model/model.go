package model

import (
	"fmt"
	"hotel/internal/storage"
)

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID    = "id"
	FieldName  = "name"
	FieldEmail = "email"
)

type Customer struct {
	ID    string `db:"id"    gorm:"column:id;primaryKey;size:36"`
	Name  string `db:"name"  gorm:"column:name;size:255;not null"`
	Email string `db:"email" gorm:"column:email;size:255;not null"`
}

func (Customer) TableName() string {
	return TableName
}

func (c Customer) ToRecord() storage.Record {
	return storage.FromRow(c)
}

func FromRecord(record storage.Record) (customer Customer, err error) {
	if customer.ID, err = record.String(FieldID); err != nil {
		return Customer{}, fmt.Errorf("invalid customer record: %w", err)
	}

	if customer.Name, err = record.String(FieldName); err != nil {
		return Customer{}, fmt.Errorf("invalid customer record: %w", err)
	}

	if customer.Email, err = record.String(FieldEmail); err != nil {
		return Customer{}, fmt.Errorf("invalid customer record: %w", err)
	}

	return customer, nil
}

func FromRecords(records []storage.Record) ([]Customer, error) {
	customers := make([]Customer, 0, len(records))

	for _, record := range records {
		customer, err := FromRecord(record)
		if err != nil {
			return nil, err
		}

		customers = append(customers, customer)
	}

	return customers, nil
}
