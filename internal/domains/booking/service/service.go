package service

import (
	"context"
	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	roomModel "hotel/internal/domains/room/model"
	"hotel/internal/storage"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"time"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (model.Booking, error)
	Get(ctx context.Context, id string) (model.Booking, error)
	GetAll(ctx context.Context) ([]model.Booking, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	bookings storage.Store
	rooms    storage.Store
	events   kafka.Client
	topic    string
	otel     otel.Otel
	now      func() time.Time
}

func New(stores storage.Stores, events kafka.Client, cfg *config.Config, otel otel.Otel) Booking {
	return &serviceImpl{
		bookings: stores.Bookings,
		rooms:    stores.Rooms,
		events:   events,
		topic:    cfg.External.Kafka.Topic,
		otel:     otel,
		now:      time.Now,
	}
}

// Create prices the stay from the current room rate. An unknown room fails
// before anything is stored. The customer is not checked.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	from, to, err := req.Dates()
	if err != nil {
		return res, err
	}

	roomRecord, err := s.rooms.ReadByID(ctx, req.RoomID)
	if err != nil {
		return res, failure.Wrap(err, "failed to get room for booking")
	}

	room, err := roomModel.FromRecord(roomRecord)
	if err != nil {
		log.Error().Err(err).Str("room_id", req.RoomID).Msg("failed to decode room")

		return res, err
	}

	nights := model.Nights(from, to)

	price, err := model.TotalPrice(nights, room.Price)
	if err != nil {
		log.Warn().Err(err).Int("nights", nights).Int("rate", room.Price).Msg("booking price rejected")

		return res, failure.BadRequest(err)
	}

	booking := req.ToModel(from, to, price)

	scope.SetAttributes(map[string]any{
		"booking.nights": nights,
		"booking.price":  booking.Price,
	})

	record, err := s.bookings.Create(ctx, booking.ToRecord())
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, failure.Wrap(err, "failed to create booking")
	}

	res, err = model.FromRecord(record)
	if err != nil {
		return res, err
	}

	s.publish(ctx, dto.EventBookingCreated, res)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	record, err := s.bookings.ReadByID(ctx, id)
	if err != nil {
		return res, failure.Wrap(err, "failed to get booking")
	}

	return model.FromRecord(record)
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	records, err := s.bookings.ReadAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return nil, failure.Wrap(err, "failed to get bookings")
	}

	return model.FromRecords(records)
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	record, err := s.bookings.ReadByID(ctx, id)
	if err != nil {
		return failure.Wrap(err, "failed to get booking")
	}

	if err = s.bookings.Delete(ctx, id); err != nil {
		if !failure.IsNotFound(err) {
			log.Error().Err(err).Str("id", id).Msg("failed to delete booking")
		}

		return failure.Wrap(err, "failed to delete booking")
	}

	if booking, decodeErr := model.FromRecord(record); decodeErr == nil {
		s.publish(ctx, dto.EventBookingDeleted, booking)
	}

	return nil
}

// publish never fails the operation; the booking is already stored.
func (s *serviceImpl) publish(ctx context.Context, eventType string, booking model.Booking) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+"."+eventType)
	defer scope.End()

	message := kafka.Message{
		Key:   booking.ID,
		Value: dto.NewBookingEvent(eventType, booking, s.now()),
	}

	if err := s.events.SendMessages(ctx, s.topic, message); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("event", eventType).Str("booking_id", booking.ID).Msg("failed to publish booking event")
	}
}
