package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayloadCapacityClass identifies the capacity class of a submitted container.
type PayloadCapacityClass struct {
	Size         string `json:"size" example:"40ft"`
	Refrigerated bool   `json:"refrigerated" example:"false"`
}

// PayloadLineItem is a line item as submitted. Unit figures are not sent.
type PayloadLineItem struct {
	VariantID string `json:"variant_id" example:"V-1001"`
	Note      string `json:"note"`
	Quantity  int    `json:"quantity" example:"100"`
}

// PayloadContainer is one container of a submission.
type PayloadContainer struct {
	Slot          int                  `json:"slot" example:"0"`
	BoxCount      int                  `json:"box_count" example:"100"`
	TotalWeight   float64              `json:"total_weight" example:"2000"`
	TotalVolume   float64              `json:"total_volume" example:"1.36"`
	TotalPrice    decimal.Decimal      `json:"total_price" swaggertype:"string" example:"1250"`
	DestinationID string               `json:"destination_id" example:"DST-ROTTERDAM"`
	TransportMode TransportMode        `json:"transport_mode" example:"sea"`
	CapacityClass PayloadCapacityClass `json:"capacity_class"`
	LineItems     []PayloadLineItem    `json:"line_items"`
}

// SubmissionPayload is the order as handed to the order submitter.
//
// @Description Order submission payload
type SubmissionPayload struct {
	Containers []PayloadContainer `json:"containers"`
}

// BoxCount returns the number of boxes across all containers.
func (p SubmissionPayload) BoxCount() int {
	n := 0
	for _, c := range p.Containers {
		n += c.BoxCount
	}
	return n
}

// TotalPrice returns the price across all containers.
func (p SubmissionPayload) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, c := range p.Containers {
		total = total.Add(c.TotalPrice)
	}
	return total
}

// SubmissionReceipt confirms that an order was accepted by the submitter.
//
// @Description Receipt of a submitted order
type SubmissionReceipt struct {
	OrderID     string          `json:"order_id" example:"3f1c7c1e-8a1b-4f0e-9d55-2b7d1f4a9c10"`
	SubmittedAt time.Time       `json:"submitted_at"`
	Containers  int             `json:"containers" example:"2"`
	BoxCount    int             `json:"box_count" example:"340"`
	TotalPrice  decimal.Decimal `json:"total_price" swaggertype:"string" example:"4250.00"`
}
