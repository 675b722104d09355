package service

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/you-humble/storefront/internal/model"
	"github.com/you-humble/storefront/platform/logger"
)

type OrderClient interface {
	Orders(ctx context.Context) ([]model.Order, error)
	Order(ctx context.Context, id int64) (model.Order, error)
}

type service struct {
	client OrderClient
}

func NewOrderService(client OrderClient) *service {
	return &service{client: client}
}

func (svc *service) List(ctx context.Context) ([]model.OrderDetails, error) {
	const op string = "order.service.List"

	orders, err := svc.client.Orders(ctx)
	if err != nil {
		logger.Error(ctx, "list orders", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return lo.Map(orders, func(o model.Order, _ int) model.OrderDetails {
		return model.OrderDetails{Order: o, Summary: Summarize(o.Items)}
	}), nil
}

func (svc *service) OrderByID(ctx context.Context, id int64) (model.OrderDetails, error) {
	const op string = "order.service.OrderByID"
	log := logger.With(logger.Int64("order_id", id))

	if id <= 0 {
		log.Warn(ctx, "wrong order id")
		return model.OrderDetails{}, fmt.Errorf("%s: %w: order id must be positive", op, model.ErrValidation)
	}

	o, err := svc.client.Order(ctx, id)
	if err != nil {
		log.Error(ctx, "get order", logger.ErrorF(err))
		return model.OrderDetails{}, fmt.Errorf("%s: %w", op, err)
	}

	return model.OrderDetails{Order: o, Summary: Summarize(o.Items)}, nil
}

// Summarize computes the order totals from its lines.
func Summarize(items []model.OrderItem) model.OrderSummary {
	subtotal := lo.SumBy(items, func(it model.OrderItem) int64 {
		return it.Quantity * it.Price
	})

	fee := model.StandardDeliveryFee
	if subtotal >= model.FreeDeliveryThreshold {
		fee = 0
	}

	return model.OrderSummary{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Total:       subtotal + fee,
	}
}
