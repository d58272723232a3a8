package service

import (
	"time"

	"github.com/guttosm/container-order-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

// ContainerView is a read-only snapshot of one container.
//
// @Description Container snapshot with totals and fill level
type ContainerView struct {
	Slot          int                 `json:"slot" example:"0"`
	Active        bool                `json:"active" example:"true"`
	CapacityClass model.CapacityClass `json:"capacity_class"`
	TransportMode model.TransportMode `json:"transport_mode" example:"sea"`
	DestinationID string              `json:"destination_id" example:"DST-ROTTERDAM"`
	LineItems     []model.LineItem    `json:"line_items"`
	TotalVolume   float64             `json:"total_volume" example:"1.36"`
	TotalWeight   float64             `json:"total_weight" example:"2000"`
	TotalPrice    decimal.Decimal     `json:"total_price" swaggertype:"string" example:"1250"`
	BoxCount      int                 `json:"box_count" example:"100"`
	FillRatio     float64             `json:"fill_ratio" example:"0.11"`
	NearFull      bool                `json:"near_full" example:"false"`
}

// OrderView is a read-only snapshot of an order session.
//
// @Description Order session snapshot
type OrderView struct {
	ID          string          `json:"id" example:"3f1c2b9e-8d4a-4c1e-9a57-2f0d6b1e7c44"`
	ActiveIndex int             `json:"active_index" example:"0"`
	Containers  []ContainerView `json:"containers"`
	BoxCount    int             `json:"box_count" example:"100"`
	TotalPrice  decimal.Decimal `json:"total_price" swaggertype:"string" example:"1250"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// MutationResult pairs the outcome of an order mutation with the order after it.
// A rejected outcome comes with the unchanged order.
//
// @Description Outcome of a mutation and the resulting order
type MutationResult struct {
	Outcome Outcome   `json:"outcome"`
	Order   OrderView `json:"order"`
}

// view snapshots the session. The caller holds s.mu.
func (s *OrderSession) view() OrderView {
	order := s.engine.Order()
	statuses := s.engine.FillStatuses()

	v := OrderView{
		ID:          s.ID,
		ActiveIndex: order.ActiveIndex,
		Containers:  make([]ContainerView, len(order.Containers)),
		TotalPrice:  decimal.Zero,
		CreatedAt:   s.createdAt,
		UpdatedAt:   s.updatedAt,
	}
	for i, c := range order.Containers {
		items := make([]model.LineItem, len(c.Items))
		copy(items, c.Items)
		v.Containers[i] = ContainerView{
			Slot:          i,
			Active:        i == order.ActiveIndex,
			CapacityClass: c.Capacity,
			TransportMode: c.TransportMode,
			DestinationID: c.DestinationID,
			LineItems:     items,
			TotalVolume:   c.TotalVolume,
			TotalWeight:   c.TotalWeight,
			TotalPrice:    c.TotalPrice,
			BoxCount:      c.BoxCount,
			FillRatio:     statuses[i].Ratio,
			NearFull:      statuses[i].NearFull,
		}
		v.BoxCount += c.BoxCount
		v.TotalPrice = v.TotalPrice.Add(c.TotalPrice)
	}
	return v
}
