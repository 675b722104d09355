package app

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"

	catclient "github.com/you-humble/storefront/internal/client/http/catalog/v1"
	ordclient "github.com/you-humble/storefront/internal/client/http/order/v1"
	"github.com/you-humble/storefront/internal/client/http/rest"
	"github.com/you-humble/storefront/internal/config"
	"github.com/you-humble/storefront/internal/converter"
	catconsumer "github.com/you-humble/storefront/internal/service/consumer/catalog"
	catsvc "github.com/you-humble/storefront/internal/service/catalog"
	ordsvc "github.com/you-humble/storefront/internal/service/order"
	cathttp "github.com/you-humble/storefront/internal/transport/http/catalog/v1"
	ordhttp "github.com/you-humble/storefront/internal/transport/http/order/v1"
	"github.com/you-humble/storefront/platform/closer"
	"github.com/you-humble/storefront/platform/kafka"
	"github.com/you-humble/storefront/platform/kafka/consumer"
	"github.com/you-humble/storefront/platform/kafka/middleware"
	"github.com/you-humble/storefront/platform/logger"
)

type CatalogConsumer interface {
	RunProductUpdatedConsume(ctx context.Context) error
}

type CatalogService interface {
	cathttp.CatalogService
	catconsumer.Service
	RunJanitor(ctx context.Context) error
}

type RouteRegistrar interface {
	RegisterRoutes(r chi.Router)
}

type di struct {
	rest          *rest.Client
	catalogClient catsvc.CatalogClient
	orderClient   ordsvc.OrderClient

	consumerGroup          sarama.ConsumerGroup
	productUpdatedConsumer kafka.Consumer
	catalogConsumer        CatalogConsumer

	conv catconsumer.Converter

	catalogService CatalogService
	orderService   ordhttp.OrderService

	catalogHandler RouteRegistrar
	orderHandler   RouteRegistrar

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) RestClient(_ context.Context) *rest.Client {
	if d.rest == nil {
		cfg := config.C()

		c, err := rest.New(cfg.Backend.BaseURL(), cfg.Backend.Timeout())
		if err != nil {
			panic(fmt.Sprintf("failed to create backend client %s: %v", cfg.Backend.BaseURL(), err))
		}

		d.rest = c
	}

	return d.rest
}

func (d *di) CatalogClient(ctx context.Context) catsvc.CatalogClient {
	if d.catalogClient == nil {
		d.catalogClient = catclient.NewClient(d.RestClient(ctx))
	}

	return d.catalogClient
}

func (d *di) OrderClient(ctx context.Context) ordsvc.OrderClient {
	if d.orderClient == nil {
		d.orderClient = ordclient.NewClient(d.RestClient(ctx))
	}

	return d.orderClient
}

func (d *di) CatalogService(ctx context.Context) CatalogService {
	if d.catalogService == nil {
		cfg := config.C().Catalog

		d.catalogService = catsvc.NewCatalogService(
			d.CatalogClient(ctx),
			cfg.DefaultProductParams(),
			cfg.SessionTTL(),
			cfg.SessionSweepInterval(),
		)
	}

	return d.catalogService
}

func (d *di) OrderService(ctx context.Context) ordhttp.OrderService {
	if d.orderService == nil {
		d.orderService = ordsvc.NewOrderService(d.OrderClient(ctx))
	}

	return d.orderService
}

func (d *di) KafkaConverter(_ context.Context) catconsumer.Converter {
	if d.conv == nil {
		d.conv = converter.NewKafkaConverter()
	}

	return d.conv
}

func (d *di) ConsumerGroup(_ context.Context) sarama.ConsumerGroup {
	if d.consumerGroup == nil {
		cfg := config.C()

		consumerGroup, err := sarama.NewConsumerGroup(
			cfg.Kafka.Brokers(),
			cfg.Kafka.ProductUpdatedGroupID(),
			cfg.Kafka.ProductUpdatedConsumerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create consumer group: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka consumer group", func(ctx context.Context) error {
			return consumerGroup.Close()
		})

		d.consumerGroup = consumerGroup
	}

	return d.consumerGroup
}

func (d *di) ProductUpdatedConsumer(ctx context.Context) kafka.Consumer {
	if d.productUpdatedConsumer == nil {
		d.productUpdatedConsumer = consumer.NewConsumer(
			d.ConsumerGroup(ctx),
			[]string{
				config.C().Kafka.ProductUpdatedTopic(),
			},
			logger.L(),
			middleware.Recovery(logger.L()),
			middleware.Logging(logger.L()),
		)
	}

	return d.productUpdatedConsumer
}

func (d *di) CatalogConsumer(ctx context.Context) CatalogConsumer {
	if d.catalogConsumer == nil {
		d.catalogConsumer = catconsumer.NewCatalogConsumer(
			d.ProductUpdatedConsumer(ctx),
			d.KafkaConverter(ctx),
			d.CatalogService(ctx),
		)
	}

	return d.catalogConsumer
}

func (d *di) CatalogHandler(ctx context.Context) RouteRegistrar {
	if d.catalogHandler == nil {
		d.catalogHandler = cathttp.NewCatalogHandler(d.CatalogService(ctx))
	}

	return d.catalogHandler
}

func (d *di) OrderHandler(ctx context.Context) RouteRegistrar {
	if d.orderHandler == nil {
		d.orderHandler = ordhttp.NewOrderHandler(d.OrderService(ctx))
	}

	return d.orderHandler
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}
