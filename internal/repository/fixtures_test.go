package repository

import (
	"github.com/guttosm/container-order-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

func samplePayload() model.SubmissionPayload {
	return model.SubmissionPayload{Containers: []model.PayloadContainer{
		{
			Slot:          0,
			BoxCount:      100,
			TotalWeight:   2000,
			TotalVolume:   1.36,
			TotalPrice:    decimal.RequireFromString("1250.00"),
			DestinationID: "DST-ROTTERDAM",
			TransportMode: model.TransportSea,
			CapacityClass: model.PayloadCapacityClass{Size: "20ft"},
			LineItems:     []model.PayloadLineItem{{VariantID: "V-1", Quantity: 100, Note: "top row"}},
		},
		{
			Slot:          2,
			BoxCount:      5,
			TotalWeight:   50,
			TotalVolume:   0.5,
			TotalPrice:    decimal.RequireFromString("8.25"),
			DestinationID: "DST-ROTTERDAM",
			TransportMode: model.TransportSea,
			CapacityClass: model.PayloadCapacityClass{Size: "20ft", Refrigerated: true},
			LineItems:     []model.PayloadLineItem{{VariantID: "V-2", Quantity: 5}},
		},
	}}
}
