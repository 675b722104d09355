package converter

import (
	"github.com/samber/lo"

	"github.com/you-humble/storefront/internal/model"
	apiv1 "github.com/you-humble/storefront/internal/transport/http/api/v1"
)

func OrderDetailsToAPI(d model.OrderDetails) apiv1.Order {
	o := d.Order

	return apiv1.Order{
		ID:      o.ID,
		BuyerID: o.BuyerID,
		ShippingAddress: apiv1.ShippingAddress{
			FullName: o.ShippingAddress.FullName,
			Address1: o.ShippingAddress.Address1,
			Address2: o.ShippingAddress.Address2,
			City:     o.ShippingAddress.City,
			State:    o.ShippingAddress.State,
			Zip:      o.ShippingAddress.Zip,
			Country:  o.ShippingAddress.Country,
		},
		OrderDate: o.OrderDate,
		OrderItems: lo.Map(o.Items, func(it model.OrderItem, _ int) apiv1.OrderItem {
			return apiv1.OrderItem{
				ProductID:  it.ProductID,
				Name:       it.Name,
				PictureURL: it.PictureURL,
				Price:      it.Price,
				Quantity:   it.Quantity,
			}
		}),
		OrderStatus: string(o.Status),
		Summary: apiv1.OrderSummary{
			Subtotal:    d.Summary.Subtotal,
			DeliveryFee: d.Summary.DeliveryFee,
			Total:       d.Summary.Total,
		},
	}
}

func OrdersDetailsToAPI(ds []model.OrderDetails) []apiv1.Order {
	return lo.Map(ds, func(d model.OrderDetails, _ int) apiv1.Order {
		return OrderDetailsToAPI(d)
	})
}
