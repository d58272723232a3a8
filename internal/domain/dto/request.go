// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
// Range checks on slots and quantities are left to the fill engine so that
// they come back as rejection outcomes.
package dto

import (
	"strings"

	"github.com/guttosm/container-order-service/internal/domain/model"
)

// CreateOrderRequest opens an order session with one empty container.
//
// @Description Settings of the first container of a new order
// @Example {"size": "40ft", "refrigerated": false, "transport_mode": "sea", "destination_id": "DST-ROTTERDAM"}
type CreateOrderRequest struct {
	// Size is the container size code
	Size string `json:"size" binding:"required" example:"40ft"`
	// Refrigerated selects a reefer container
	Refrigerated bool `json:"refrigerated" example:"false"`
	// TransportMode is sea, air or land
	TransportMode string `json:"transport_mode" binding:"required" example:"sea"`
	// DestinationID is the catalog destination identifier
	DestinationID string `json:"destination_id" binding:"required" example:"DST-ROTTERDAM"`
} // @name CreateOrderRequest

// Validate performs custom validation on the request.
func (r *CreateOrderRequest) Validate() error {
	if !model.TransportMode(strings.ToLower(r.TransportMode)).Valid() {
		return ErrInvalidTransportMode
	}
	return nil
}

// Spec returns the container settings carried by the request.
func (r *CreateOrderRequest) Spec() model.ContainerSpec {
	return model.ContainerSpec{
		Size:          strings.TrimSpace(r.Size),
		Refrigerated:  r.Refrigerated,
		TransportMode: model.TransportMode(strings.ToLower(r.TransportMode)),
		DestinationID: strings.TrimSpace(r.DestinationID),
	}
}

// OpenContainerRequest appends a container that copies the settings of another one.
//
// @Description Slot whose settings the new container copies; defaults to the active container
type OpenContainerRequest struct {
	CopyFrom *int `json:"copy_from" example:"0"`
} // @name OpenContainerRequest

// RetypeContainerRequest changes the capacity class of a container.
//
// @Description New capacity class of a container
type RetypeContainerRequest struct {
	Size         string `json:"size" binding:"required" example:"20ft"`
	Refrigerated bool   `json:"refrigerated" example:"true"`
} // @name RetypeContainerRequest

// SwitchActiveRequest selects the container that receives new items.
//
// @Description Slot to make active
type SwitchActiveRequest struct {
	Slot *int `json:"slot" binding:"required" example:"1"`
} // @name SwitchActiveRequest

// AddItemRequest adds boxes of a variant to a container.
//
// @Description Variant and number of boxes to add
// @Example {"variant_id": "V-1001", "quantity": 100, "note": "Label in Dutch"}
type AddItemRequest struct {
	VariantID string `json:"variant_id" binding:"required" example:"V-1001"`
	Quantity  int    `json:"quantity" example:"100"`
	Note      string `json:"note" binding:"max=500" example:"Label in Dutch"`
} // @name AddItemRequest

// AdjustItemRequest sets the number of boxes of a line item.
//
// @Description New number of boxes
type AdjustItemRequest struct {
	Quantity int `json:"quantity" example:"80"`
} // @name AdjustItemRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrInvalidTransportMode is returned when transport_mode is not a known mode.
	ErrInvalidTransportMode = &ValidationError{
		Field:   "transport_mode",
		Message: "must be one of sea, air, land",
	}
)

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
