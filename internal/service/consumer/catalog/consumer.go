package catconsumer

import (
	"context"
	"fmt"

	"github.com/you-humble/storefront/internal/model"
	"github.com/you-humble/storefront/platform/kafka"
	"github.com/you-humble/storefront/platform/logger"
)

type Converter interface {
	ProductUpdatedToModel(data []byte) (model.ProductUpdated, error)
}

type Service interface {
	InvalidateProducts(ctx context.Context) error
}

type service struct {
	consumer kafka.Consumer
	conv     Converter
	svc      Service
}

func NewCatalogConsumer(
	consumer kafka.Consumer,
	conv Converter,
	svc Service,
) *service {
	return &service{consumer: consumer, conv: conv, svc: svc}
}

func (s *service) RunProductUpdatedConsume(ctx context.Context) error {
	logger.Info(ctx, "Starting product updated consumer")

	if err := s.consumer.Consume(ctx, s.productUpdatedHandler); err != nil {
		logger.Error(ctx, "Consume from product updated topic error", logger.ErrorF(err))
		return err
	}

	return nil
}

func (s *service) productUpdatedHandler(ctx context.Context, msg kafka.Message) error {
	event, err := s.conv.ProductUpdatedToModel(msg.Value)
	if err != nil {
		logger.Error(ctx, "Failed to decode ProductUpdated record",
			logger.String("topic", msg.Topic),
			logger.Int64("offset", msg.Offset),
			logger.ErrorF(err),
		)
		return fmt.Errorf("converter product_updated_to_model error: %w", err)
	}

	log := logger.With(
		logger.String("event_id", event.EventID.String()),
		logger.Int64("product_id", event.ProductID),
	)

	if err := s.svc.InvalidateProducts(ctx); err != nil {
		log.Error(ctx, "consumer.InvalidateProducts", logger.ErrorF(err))
		return err
	}

	log.Info(ctx, "Product listings invalidated")

	return nil
}
