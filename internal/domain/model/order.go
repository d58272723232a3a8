// Package model defines the core domain entities for the container order service.
package model

// ContainerSpec carries the settings a new container is built from.
//
// @Description Settings of a container: size, refrigeration, transport mode and destination
type ContainerSpec struct {
	Size          string        `json:"size" example:"40ft"`
	Refrigerated  bool          `json:"refrigerated" example:"false"`
	TransportMode TransportMode `json:"transport_mode" example:"sea"`
	DestinationID string        `json:"destination_id" example:"DST-ROTTERDAM"`
}

// SpecOf returns the settings of an existing container.
func SpecOf(c *Container) ContainerSpec {
	return ContainerSpec{
		Size:          c.Capacity.Size,
		Refrigerated:  c.Capacity.Refrigerated,
		TransportMode: c.TransportMode,
		DestinationID: c.DestinationID,
	}
}

// Order is the session-scoped list of containers being composed. It always holds
// at least one container once built with NewOrder.
type Order struct {
	Containers  []*Container
	ActiveIndex int
	initial     ContainerSpec
	initialCap  CapacityClass
}

// NewOrder returns an order with one empty container built from spec and class.
// The pair is kept so Reset can rebuild the same starting state.
func NewOrder(spec ContainerSpec, class CapacityClass) *Order {
	o := &Order{initial: spec, initialCap: class}
	o.Reset()
	return o
}

// Initial returns the settings the order was created with.
func (o *Order) Initial() ContainerSpec {
	return o.initial
}

// Len returns the number of containers.
func (o *Order) Len() int {
	return len(o.Containers)
}

// ValidSlot reports whether slot addresses an existing container.
func (o *Order) ValidSlot(slot int) bool {
	return slot >= 0 && slot < len(o.Containers)
}

// Container returns the container at slot.
func (o *Order) Container(slot int) (*Container, error) {
	if !o.ValidSlot(slot) {
		return nil, ErrSlotOutOfRange
	}
	return o.Containers[slot], nil
}

// Active returns the active container.
func (o *Order) Active() *Container {
	return o.Containers[o.ActiveIndex]
}

// Append adds c as the last container and makes it active. It returns the new slot.
func (o *Order) Append(c *Container) int {
	o.Containers = append(o.Containers, c)
	o.ActiveIndex = len(o.Containers) - 1
	return o.ActiveIndex
}

// Replace swaps the container at slot for c.
func (o *Order) Replace(slot int, c *Container) error {
	if !o.ValidSlot(slot) {
		return ErrSlotOutOfRange
	}
	o.Containers[slot] = c
	return nil
}

// RemoveAt deletes the container at slot. Removing at or before the active slot
// moves the active index back by one, never below zero.
func (o *Order) RemoveAt(slot int) error {
	if !o.ValidSlot(slot) {
		return ErrSlotOutOfRange
	}
	o.Containers = append(o.Containers[:slot], o.Containers[slot+1:]...)
	if slot <= o.ActiveIndex {
		o.ActiveIndex = max(o.ActiveIndex-1, 0)
	}
	return nil
}

// SetActive changes the active container.
func (o *Order) SetActive(slot int) error {
	if !o.ValidSlot(slot) {
		return ErrSlotOutOfRange
	}
	o.ActiveIndex = slot
	return nil
}

// Reset discards every container and starts over with one empty container built
// from the initial settings.
func (o *Order) Reset() {
	o.Containers = []*Container{
		NewContainer(o.initialCap, o.initial.TransportMode, o.initial.DestinationID),
	}
	o.ActiveIndex = 0
}

// Clone returns a deep copy of the order.
func (o *Order) Clone() *Order {
	clone := &Order{
		Containers:  make([]*Container, len(o.Containers)),
		ActiveIndex: o.ActiveIndex,
		initial:     o.initial,
		initialCap:  o.initialCap,
	}
	for i, c := range o.Containers {
		clone.Containers[i] = c.Clone()
	}
	return clone
}

// IsEmpty reports whether no container holds any line item.
func (o *Order) IsEmpty() bool {
	for _, c := range o.Containers {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}
