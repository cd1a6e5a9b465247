package dto

import (
	"hotel/internal/domains/booking/model"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"time"

	"github.com/google/uuid"
)

const (
	EventBookingCreated = "booking.created"
	EventBookingDeleted = "booking.deleted"
)

// CreateBookingRequest carries no price; it is derived from the room rate.
type CreateBookingRequest struct {
	RoomID     string `json:"room_id"     validate:"required"`
	CustomerID string `json:"customer_id" validate:"required"`
	FromDate   string `json:"from_date"   validate:"required,date"`
	ToDate     string `json:"to_date"     validate:"required,date"`
}

func (c *CreateBookingRequest) Dates() (from, to time.Time, err error) {
	from, err = time.Parse(constant.DateFormat, c.FromDate)
	if err != nil {
		return from, to, failure.BadRequestFromString("from_date must be a date formatted as YYYY-MM-DD")
	}

	to, err = time.Parse(constant.DateFormat, c.ToDate)
	if err != nil {
		return from, to, failure.BadRequestFromString("to_date must be a date formatted as YYYY-MM-DD")
	}

	return from, to, nil
}

func (c *CreateBookingRequest) ToModel(from, to time.Time, price int) model.Booking {
	return model.Booking{
		ID:         uuid.NewString(),
		RoomID:     c.RoomID,
		CustomerID: c.CustomerID,
		FromDate:   from,
		ToDate:     to,
		Price:      price,
	}
}

type BookingResponse struct {
	ID         string `json:"id"`
	RoomID     string `json:"room_id"`
	CustomerID string `json:"customer_id"`
	FromDate   string `json:"from_date"`
	ToDate     string `json:"to_date"`
	Price      int    `json:"price"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.CustomerID = model.CustomerID
	r.FromDate = model.FromDate.Format(constant.DateFormat)
	r.ToDate = model.ToDate.Format(constant.DateFormat)
	r.Price = model.Price
}

func FromModels(models []model.Booking) []BookingResponse {
	res := make([]BookingResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

// BookingEvent is the payload published on the bookings topic.
type BookingEvent struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	BookingResponse
}

func NewBookingEvent(eventType string, booking model.Booking, at time.Time) BookingEvent {
	event := BookingEvent{
		Type:       eventType,
		OccurredAt: at.UTC(),
	}
	event.FromModel(booking)

	return event
}
