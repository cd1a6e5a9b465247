package service

import (
	"context"
	"hotel/infras/otel"
	"hotel/internal/domains/customer/model"
	"hotel/internal/domains/customer/model/dto"
	"hotel/internal/storage"
	"hotel/shared/constant"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

// Customer has no update operation; email addresses are not unique.
type Customer interface {
	Create(ctx context.Context, req dto.CreateCustomerRequest) (model.Customer, error)
	Get(ctx context.Context, id string) (model.Customer, error)
	GetAll(ctx context.Context) ([]model.Customer, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	store storage.Store
	otel  otel.Otel
}

func New(stores storage.Stores, otel otel.Otel) Customer {
	return &serviceImpl{
		store: stores.Customers,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCustomerRequest) (res model.Customer, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".customer.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	record, err := s.store.Create(ctx, req.ToModel().ToRecord())
	if err != nil {
		log.Error().Err(err).Msg("failed to create customer")

		return res, failure.Wrap(err, "failed to create customer")
	}

	return model.FromRecord(record)
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res model.Customer, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".customer.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	record, err := s.store.ReadByID(ctx, id)
	if err != nil {
		return res, failure.Wrap(err, "failed to get customer")
	}

	return model.FromRecord(record)
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []model.Customer, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".customer.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	records, err := s.store.ReadAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get customers")

		return nil, failure.Wrap(err, "failed to get customers")
	}

	return model.FromRecords(records)
}

// Delete leaves the customer's bookings in place.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".customer.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.store.Delete(ctx, id); err != nil {
		if !failure.IsNotFound(err) {
			log.Error().Err(err).Str("id", id).Msg("failed to delete customer")
		}

		return failure.Wrap(err, "failed to delete customer")
	}

	return nil
}
