package service

import (
	"fmt"

	"github.com/guttosm/container-order-service/internal/domain/model"
)

// Reason classifies a rejected engine operation.
type Reason string

const (
	ReasonNone               Reason = ""
	ReasonInvalidArgument    Reason = "invalid-argument"
	ReasonCapacityExceeded   Reason = "capacity-exceeded"
	ReasonThermalMismatch    Reason = "thermal-mismatch"
	ReasonConfigurationError Reason = "configuration-error"
	ReasonLastContainer      Reason = "last-container"
)

// Outcome is the result of every fill engine operation. A rejected outcome leaves
// the order untouched.
//
// @Description Result of an order mutation
type Outcome struct {
	Accepted bool   `json:"accepted" example:"false"`
	Reason   Reason `json:"reason,omitempty" example:"capacity-exceeded"`
	Detail   string `json:"detail,omitempty"`
	// Slot is the container the operation applied to, or the new slot after an open
	Slot int        `json:"slot" example:"0"`
	Axis model.Axis `json:"axis,omitempty" example:"volume"`
	// MaxAddable is how many more boxes of the variant fit, set on capacity rejections of an add
	MaxAddable int `json:"max_addable" example:"6"`
	// MaxQuantity is the largest quantity the line can take, set on capacity rejections of an adjust
	MaxQuantity int     `json:"max_quantity,omitempty" example:"0"`
	FillRatio   float64 `json:"fill_ratio" example:"0.42"`
	NearFull    bool    `json:"near_full" example:"false"`
}

func accepted(slot int) Outcome {
	return Outcome{Accepted: true, Slot: slot}
}

func rejected(slot int, reason Reason, format string, args ...any) Outcome {
	return Outcome{Slot: slot, Reason: reason, Detail: fmt.Sprintf(format, args...)}
}

// Label returns the metric label of the outcome.
func (o Outcome) Label() string {
	if o.Accepted {
		return "accepted"
	}
	return string(o.Reason)
}

// RejectionError carries a rejected outcome through error returns.
type RejectionError struct {
	Outcome Outcome
}

func (e *RejectionError) Error() string {
	if e.Outcome.Detail == "" {
		return string(e.Outcome.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Outcome.Reason, e.Outcome.Detail)
}

// Err returns nil for an accepted outcome and a *RejectionError otherwise.
func (o Outcome) Err() error {
	if o.Accepted {
		return nil
	}
	return &RejectionError{Outcome: o}
}
