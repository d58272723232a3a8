package service

import (
	"errors"
	"fmt"

	"github.com/guttosm/container-order-service/internal/domain/model"
)

// DefaultWarningThreshold is the fill ratio from which a container is reported as near full.
const DefaultWarningThreshold = 0.85

// CapacityResolver resolves a container size and refrigeration class to its ceilings.
type CapacityResolver interface {
	Lookup(size string, refrigerated bool) (model.CapacityClass, error)
}

// EngineOption configures a FillEngine.
type EngineOption func(*FillEngine)

// WithPackingEfficiency sets the volume derating factor applied to new line items.
func WithPackingEfficiency(efficiency float64) EngineOption {
	return func(e *FillEngine) {
		e.efficiency = model.NormalizeEfficiency(efficiency)
	}
}

// WithWarningThreshold sets the fill ratio from which containers are near full.
func WithWarningThreshold(threshold float64) EngineOption {
	return func(e *FillEngine) {
		if threshold > 0 && threshold <= 1 {
			e.warningThreshold = threshold
		}
	}
}

// FillStatus describes how full a container is.
//
// @Description Fill level of one container
type FillStatus struct {
	Slot     int     `json:"slot" example:"0"`
	Ratio    float64 `json:"ratio" example:"0.9"`
	NearFull bool    `json:"near_full" example:"true"`
}

// FillEngine applies mutations to one order's containers while keeping every
// container within its capacity class. It is synchronous and does no I/O; callers
// serialize access per order.
type FillEngine struct {
	order            *model.Order
	capacity         CapacityResolver
	efficiency       float64
	warningThreshold float64
}

// NewOrder resolves spec against the capacity table and returns an order holding
// one empty container.
func NewOrder(resolver CapacityResolver, spec model.ContainerSpec) (*model.Order, error) {
	class, err := resolver.Lookup(spec.Size, spec.Refrigerated)
	if err != nil {
		return nil, err
	}
	return model.NewOrder(spec, class), nil
}

// NewFillEngine binds an engine to order.
func NewFillEngine(order *model.Order, resolver CapacityResolver, opts ...EngineOption) *FillEngine {
	e := &FillEngine{
		order:            order,
		capacity:         resolver,
		efficiency:       model.DefaultPackingEfficiency,
		warningThreshold: DefaultWarningThreshold,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Order returns the bound order.
func (e *FillEngine) Order() *model.Order {
	return e.order
}

// PackingEfficiency returns the volume derating factor in use.
func (e *FillEngine) PackingEfficiency() float64 {
	return e.efficiency
}

// WarningThreshold returns the near-full ratio in use.
func (e *FillEngine) WarningThreshold() float64 {
	return e.warningThreshold
}

// AcceptVariant adds quantity boxes of v to the container at slot, or grows the
// existing line for v. Rejections never mutate the order.
func (e *FillEngine) AcceptVariant(slot int, v model.Variant, quantity int, note string) Outcome {
	c, out := e.container(slot)
	if c == nil {
		return out
	}
	if quantity < 1 {
		return rejected(slot, ReasonInvalidArgument, "quantity must be at least 1, got %d", quantity)
	}
	if v.ID == "" {
		return rejected(slot, ReasonInvalidArgument, "variant id is required")
	}
	if !v.ThermalClass.Valid() {
		return rejected(slot, ReasonInvalidArgument, "variant %s has unknown thermal class %q", v.ID, v.ThermalClass)
	}
	if !v.HasFootprint() {
		return rejected(slot, ReasonInvalidArgument, "variant %s has no box volume or weight", v.ID)
	}
	if !v.FitsThermally(c.Capacity.Refrigerated) {
		return rejected(slot, ReasonThermalMismatch, "%s variant %s cannot be loaded into %s container",
			v.ThermalClass, v.ID, c.Capacity.Key())
	}

	unit := model.UnitFootprint(v, e.efficiency)
	if existing, ok := c.Item(v.ID); ok {
		unit = existing.Unit()
	}

	candidate := c.Clone()
	if err := candidate.AddOrIncrement(v, quantity, note, e.efficiency); err != nil {
		return rejected(slot, ReasonInvalidArgument, "%v", err)
	}
	if axis := candidate.Overflow(); axis != model.AxisNone {
		out := rejected(slot, ReasonCapacityExceeded, "%d boxes of %s exceed the %s limit of %s",
			quantity, v.ID, axis, c.Capacity.Key())
		out.Axis = axis
		out.MaxAddable = c.MaxUnits(unit)
		return e.withFill(out, c)
	}

	e.commit(slot, candidate)
	return e.withFill(accepted(slot), candidate)
}

// AdjustQuantity sets the quantity of an existing line. Lines keep their frozen
// unit figures; an overflow is rejected with the largest quantity that fits.
func (e *FillEngine) AdjustQuantity(slot int, variantID string, quantity int) Outcome {
	c, out := e.container(slot)
	if c == nil {
		return out
	}
	if quantity < 1 {
		return rejected(slot, ReasonInvalidArgument, "quantity must be at least 1, got %d", quantity)
	}
	item, ok := c.Item(variantID)
	if !ok {
		return rejected(slot, ReasonInvalidArgument, "variant %s is not in container %d", variantID, slot)
	}

	candidate := c.Clone()
	if err := candidate.SetQuantity(variantID, quantity); err != nil {
		return rejected(slot, ReasonInvalidArgument, "%v", err)
	}
	if axis := candidate.Overflow(); axis != model.AxisNone {
		out := rejected(slot, ReasonCapacityExceeded, "%d boxes of %s exceed the %s limit of %s",
			quantity, variantID, axis, c.Capacity.Key())
		out.Axis = axis
		out.MaxQuantity = item.Quantity + c.MaxUnits(item.Unit())
		return e.withFill(out, c)
	}

	e.commit(slot, candidate)
	return e.withFill(accepted(slot), candidate)
}

// RemoveItem deletes the line for variantID. Removing an absent line is accepted.
func (e *FillEngine) RemoveItem(slot int, variantID string) Outcome {
	c, out := e.container(slot)
	if c == nil {
		return out
	}
	c.Remove(variantID)
	return e.withFill(accepted(slot), c)
}

// OpenNewContainer appends an empty container with the settings of the container
// at copyFrom and makes it active. The outcome carries the new slot.
func (e *FillEngine) OpenNewContainer(copyFrom int) Outcome {
	src, out := e.container(copyFrom)
	if src == nil {
		return out
	}
	class, err := e.capacity.Lookup(src.Capacity.Size, src.Capacity.Refrigerated)
	if err != nil {
		return rejected(copyFrom, ReasonConfigurationError, "%v", err)
	}

	slot := e.order.Append(model.NewContainer(class, src.TransportMode, src.DestinationID))
	return e.withFill(accepted(slot), e.order.Containers[slot])
}

// RetypeContainer changes the capacity class of the container at slot. Existing
// items must still be thermally compatible and fit the new ceilings.
func (e *FillEngine) RetypeContainer(slot int, size string, refrigerated bool) Outcome {
	c, out := e.container(slot)
	if c == nil {
		return out
	}
	class, err := e.capacity.Lookup(size, refrigerated)
	if err != nil {
		return rejected(slot, ReasonConfigurationError, "%v", err)
	}
	if item, conflict := c.ThermalConflict(refrigerated); conflict {
		return rejected(slot, ReasonThermalMismatch, "%s variant %s cannot be loaded into %s container",
			item.ThermalClass, item.VariantID, class.Key())
	}

	candidate := c.Clone()
	candidate.Capacity = class
	if axis := candidate.Overflow(); axis != model.AxisNone {
		out := rejected(slot, ReasonCapacityExceeded, "current load exceeds the %s limit of %s", axis, class.Key())
		out.Axis = axis
		return e.withFill(out, c)
	}

	e.commit(slot, candidate)
	return e.withFill(accepted(slot), candidate)
}

// DeleteContainer removes the container at slot. The last container cannot be removed.
func (e *FillEngine) DeleteContainer(slot int) Outcome {
	if c, out := e.container(slot); c == nil {
		return out
	}
	if e.order.Len() == 1 {
		return rejected(slot, ReasonLastContainer, "an order keeps at least one container")
	}
	if err := e.order.RemoveAt(slot); err != nil {
		return rejected(slot, ReasonInvalidArgument, "%v", err)
	}
	return accepted(e.order.ActiveIndex)
}

// SwitchActive makes the container at slot the active one.
func (e *FillEngine) SwitchActive(slot int) Outcome {
	if err := e.order.SetActive(slot); err != nil {
		return rejected(slot, ReasonInvalidArgument, "container slot %d out of range [0,%d)", slot, e.order.Len())
	}
	return e.withFill(accepted(slot), e.order.Active())
}

// FillStatus reports the fill ratio of the container at slot.
func (e *FillEngine) FillStatus(slot int) (FillStatus, Outcome) {
	c, out := e.container(slot)
	if c == nil {
		return FillStatus{}, out
	}
	return e.status(slot, c), accepted(slot)
}

// FillStatuses reports the fill ratio of every container.
func (e *FillEngine) FillStatuses() []FillStatus {
	out := make([]FillStatus, len(e.order.Containers))
	for i, c := range e.order.Containers {
		out[i] = e.status(i, c)
	}
	return out
}

// Reset drops every container and starts again from the initial settings.
func (e *FillEngine) Reset() Outcome {
	e.order.Reset()
	return accepted(0)
}

func (e *FillEngine) container(slot int) (*model.Container, Outcome) {
	c, err := e.order.Container(slot)
	if err != nil {
		if errors.Is(err, model.ErrSlotOutOfRange) {
			return nil, rejected(slot, ReasonInvalidArgument, "container slot %d out of range [0,%d)", slot, e.order.Len())
		}
		return nil, rejected(slot, ReasonInvalidArgument, "%v", err)
	}
	return c, Outcome{}
}

func (e *FillEngine) commit(slot int, c *model.Container) {
	if err := e.order.Replace(slot, c); err != nil {
		panic(fmt.Sprintf("fill engine: slot %d vanished during mutation: %v", slot, err))
	}
}

func (e *FillEngine) status(slot int, c *model.Container) FillStatus {
	ratio := c.FillRatio()
	return FillStatus{Slot: slot, Ratio: ratio, NearFull: ratio >= e.warningThreshold}
}

func (e *FillEngine) withFill(out Outcome, c *model.Container) Outcome {
	st := e.status(out.Slot, c)
	out.FillRatio = st.Ratio
	out.NearFull = st.NearFull
	return out
}
