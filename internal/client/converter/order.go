package converter

import (
	"github.com/samber/lo"

	"github.com/you-humble/storefront/internal/client/dto"
	"github.com/you-humble/storefront/internal/model"
)

func OrdersToModel(orders []dto.Order) []model.Order {
	return lo.Map(orders, func(o dto.Order, _ int) model.Order {
		return OrderToModel(o)
	})
}

func OrderToModel(o dto.Order) model.Order {
	return model.Order{
		ID:      o.ID,
		BuyerID: o.BuyerID,
		ShippingAddress: model.ShippingAddress{
			FullName: o.ShippingAddress.FullName,
			Address1: o.ShippingAddress.Address1,
			Address2: o.ShippingAddress.Address2,
			City:     o.ShippingAddress.City,
			State:    o.ShippingAddress.State,
			Zip:      o.ShippingAddress.Zip,
			Country:  o.ShippingAddress.Country,
		},
		OrderDate: o.OrderDate,
		Items: lo.Map(o.OrderItems, func(it dto.OrderItem, _ int) model.OrderItem {
			return model.OrderItem{
				ProductID:  it.ProductID,
				Name:       it.Name,
				PictureURL: it.PictureURL,
				Price:      it.Price,
				Quantity:   it.Quantity,
			}
		}),
		Subtotal:    o.Subtotal,
		DeliveryFee: o.DeliveryFee,
		Total:       o.Total,
		Status:      model.OrderStatus(o.OrderStatus),
	}
}
