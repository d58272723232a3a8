package model

import "errors"

var (
	// ErrInvalidQuantity is returned when a quantity is below one.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	// ErrQuantityOverflow is returned when a container would hold more boxes than an int can count.
	ErrQuantityOverflow = errors.New("quantity too large")
	// ErrInvalidVariant is returned when a variant has no identifier.
	ErrInvalidVariant = errors.New("variant id is required")
	// ErrLineItemNotFound is returned when a container holds no line for a variant.
	ErrLineItemNotFound = errors.New("line item not found")
	// ErrSlotOutOfRange is returned for a container slot outside the order.
	ErrSlotOutOfRange = errors.New("container slot out of range")
)
