package service

import (
	"context"
	"hotel/infras/otel"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/storage"
	"hotel/shared/constant"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (model.Room, error)
	Get(ctx context.Context, id string) (model.Room, error)
	GetAll(ctx context.Context) ([]model.Room, error)
	Update(ctx context.Context, id string, req dto.UpdateRoomRequest) (model.Room, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	store storage.Store
	otel  otel.Otel
}

func New(stores storage.Stores, otel otel.Otel) Room {
	return &serviceImpl{
		store: stores.Rooms,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	record, err := s.store.Create(ctx, req.ToModel().ToRecord())
	if err != nil {
		log.Error().Err(err).Msg("failed to create room")

		return res, failure.Wrap(err, "failed to create room")
	}

	return model.FromRecord(record)
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	record, err := s.store.ReadByID(ctx, id)
	if err != nil {
		return res, failure.Wrap(err, "failed to get room")
	}

	return model.FromRecord(record)
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	records, err := s.store.ReadAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return nil, failure.Wrap(err, "failed to get rooms")
	}

	return model.FromRecords(records)
}

// Update applies only the fields present in req.
func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateRoomRequest) (res model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	partial := req.ToRecord()
	scope.SetAttribute("room.fields", len(partial))

	record, err := s.store.Update(ctx, id, partial)
	if err != nil {
		if !failure.IsNotFound(err) {
			log.Error().Err(err).Str("id", id).Msg("failed to update room")
		}

		return res, failure.Wrap(err, "failed to update room")
	}

	return model.FromRecord(record)
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.store.Delete(ctx, id); err != nil {
		if !failure.IsNotFound(err) {
			log.Error().Err(err).Str("id", id).Msg("failed to delete room")
		}

		return failure.Wrap(err, "failed to delete room")
	}

	return nil
}
