package service

import (
	"errors"

	"github.com/guttosm/container-order-service/internal/domain/model"
)

// ErrEmptyOrder is returned when an order has no container with line items.
var ErrEmptyOrder = errors.New("order has no line items")

// ToSubmissionPayload projects order onto the submission payload. Empty containers
// are skipped and slots keep their position in the order.
func ToSubmissionPayload(order *model.Order) (model.SubmissionPayload, error) {
	payload := model.SubmissionPayload{Containers: make([]model.PayloadContainer, 0, order.Len())}

	for slot, c := range order.Containers {
		if c.IsEmpty() {
			continue
		}
		items := make([]model.PayloadLineItem, len(c.Items))
		for i, item := range c.Items {
			items[i] = model.PayloadLineItem{
				VariantID: item.VariantID,
				Note:      item.Note,
				Quantity:  item.Quantity,
			}
		}
		payload.Containers = append(payload.Containers, model.PayloadContainer{
			Slot:          slot,
			BoxCount:      c.BoxCount,
			TotalWeight:   c.TotalWeight,
			TotalVolume:   c.TotalVolume,
			TotalPrice:    c.TotalPrice,
			DestinationID: c.DestinationID,
			TransportMode: c.TransportMode,
			CapacityClass: model.PayloadCapacityClass{
				Size:         c.Capacity.Size,
				Refrigerated: c.Capacity.Refrigerated,
			},
			LineItems: items,
		})
	}

	if len(payload.Containers) == 0 {
		return model.SubmissionPayload{}, ErrEmptyOrder
	}
	return payload, nil
}
