package model

import (
	"math"

	"github.com/shopspring/decimal"
)

// capacityTolerance absorbs float rounding when totals land exactly on a ceiling.
const capacityTolerance = 1e-9

// Unbounded is returned by MaxAddableQuantity when no axis limits the variant.
const Unbounded = math.MaxInt32

// TransportMode is how a container travels. It does not take part in capacity math.
type TransportMode string

const (
	TransportSea  TransportMode = "sea"
	TransportAir  TransportMode = "air"
	TransportLand TransportMode = "land"
)

// Valid reports whether m is a known transport mode.
func (m TransportMode) Valid() bool {
	switch m {
	case TransportSea, TransportAir, TransportLand:
		return true
	}
	return false
}

// Axis names the capacity dimension that binds.
type Axis string

const (
	AxisNone   Axis = ""
	AxisVolume Axis = "volume"
	AxisWeight Axis = "weight"
)

// Container is an ordered set of line items bounded by a capacity class.
// Totals are derived and recomputed from the full item set on every mutation.
//
// @Description Shipping container with its line items and running totals
type Container struct {
	Capacity      CapacityClass   `json:"capacity_class"`
	TransportMode TransportMode   `json:"transport_mode" example:"sea"`
	DestinationID string          `json:"destination_id" example:"DST-ROTTERDAM"`
	Items         []LineItem      `json:"line_items"`
	TotalVolume   float64         `json:"total_volume" example:"1.36"`
	TotalWeight   float64         `json:"total_weight" example:"2000"`
	TotalPrice    decimal.Decimal `json:"total_price" swaggertype:"string" example:"1250.00"`
	BoxCount      int             `json:"box_count" example:"100"`
}

// NewContainer returns an empty container.
func NewContainer(class CapacityClass, mode TransportMode, destinationID string) *Container {
	return &Container{
		Capacity:      class,
		TransportMode: mode,
		DestinationID: destinationID,
		Items:         []LineItem{},
		TotalPrice:    decimal.Zero,
	}
}

// Clone returns a deep copy of the container.
func (c *Container) Clone() *Container {
	clone := *c
	clone.Items = make([]LineItem, len(c.Items))
	copy(clone.Items, c.Items)
	return &clone
}

// ThermalConflict returns the first line item that may not travel in a container
// of the given refrigeration class.
func (c *Container) ThermalConflict(refrigerated bool) (LineItem, bool) {
	for _, item := range c.Items {
		if item.ThermalClass.RequiresRefrigeration() != refrigerated {
			return item, true
		}
	}
	return LineItem{}, false
}

// IsEmpty reports whether the container holds no line items.
func (c *Container) IsEmpty() bool {
	return len(c.Items) == 0
}

// Item returns the line item for variantID.
func (c *Container) Item(variantID string) (LineItem, bool) {
	if i := c.indexOf(variantID); i >= 0 {
		return c.Items[i], true
	}
	return LineItem{}, false
}

func (c *Container) indexOf(variantID string) int {
	for i := range c.Items {
		if c.Items[i].VariantID == variantID {
			return i
		}
	}
	return -1
}

// AddOrIncrement adds quantity boxes of v. An existing line keeps its frozen unit
// figures and only grows; a non-empty note replaces the previous one.
func (c *Container) AddOrIncrement(v Variant, quantity int, note string, efficiency float64) error {
	if v.ID == "" {
		return ErrInvalidVariant
	}
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if quantity > math.MaxInt-c.BoxCount {
		return ErrQuantityOverflow
	}

	if i := c.indexOf(v.ID); i >= 0 {
		c.Items[i].Quantity += quantity
		if note != "" {
			c.Items[i].Note = note
		}
	} else {
		unit := UnitFootprint(v, efficiency)
		c.Items = append(c.Items, LineItem{
			VariantID:    v.ID,
			Quantity:     quantity,
			Note:         note,
			ThermalClass: v.ThermalClass,
			UnitVolume:   unit.Volume,
			UnitWeight:   unit.Weight,
			UnitPrice:    unit.Price,
		})
	}

	c.Recalculate()
	return nil
}

// Remove deletes the line for variantID. It reports whether a line was removed.
func (c *Container) Remove(variantID string) bool {
	i := c.indexOf(variantID)
	if i < 0 {
		return false
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
	c.Recalculate()
	return true
}

// SetQuantity replaces the quantity of an existing line. Zero is not a valid
// quantity; use Remove.
func (c *Container) SetQuantity(variantID string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	i := c.indexOf(variantID)
	if i < 0 {
		return ErrLineItemNotFound
	}
	if quantity > math.MaxInt-(c.BoxCount-c.Items[i].Quantity) {
		return ErrQuantityOverflow
	}
	c.Items[i].Quantity = quantity
	c.Recalculate()
	return nil
}

// Recalculate rebuilds the four totals from the line items.
func (c *Container) Recalculate() {
	var (
		volume float64
		weight float64
		boxes  int
	)
	price := decimal.Zero
	for _, item := range c.Items {
		q := float64(item.Quantity)
		volume += item.UnitVolume * q
		weight += item.UnitWeight * q
		price = price.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
		boxes += item.Quantity
	}
	c.TotalVolume = volume
	c.TotalWeight = weight
	c.TotalPrice = price
	c.BoxCount = boxes
}

// FillRatio is the binding fraction of capacity in use: the larger of the volume
// and weight ratios.
func (c *Container) FillRatio() float64 {
	var volumeRatio, weightRatio float64
	if c.Capacity.MaxVolume > 0 {
		volumeRatio = c.TotalVolume / c.Capacity.MaxVolume
	}
	if c.Capacity.MaxWeight > 0 {
		weightRatio = c.TotalWeight / c.Capacity.MaxWeight
	}
	return math.Max(volumeRatio, weightRatio)
}

// Overflow returns the first axis on which the current totals exceed the capacity
// class, or AxisNone.
func (c *Container) Overflow() Axis {
	return c.overflowWith(0, 0)
}

// OverflowWith returns the axis that adding extra would exceed, or AxisNone.
func (c *Container) OverflowWith(extra Footprint) Axis {
	return c.overflowWith(extra.Volume, extra.Weight)
}

func (c *Container) overflowWith(volume, weight float64) Axis {
	if c.TotalVolume+volume > c.Capacity.MaxVolume+capacityTolerance {
		return AxisVolume
	}
	if c.TotalWeight+weight > c.Capacity.MaxWeight+capacityTolerance {
		return AxisWeight
	}
	return AxisNone
}

// MaxAddableQuantity returns how many more boxes of v fit on both axes.
func (c *Container) MaxAddableQuantity(v Variant, efficiency float64) int {
	return c.MaxUnits(UnitFootprint(v, efficiency))
}

// MaxUnits returns how many more units of the given footprint fit on both axes,
// floored at zero. An axis with a zero unit footprint does not bind.
func (c *Container) MaxUnits(unit Footprint) int {
	n := float64(Unbounded)
	if unit.Volume > 0 {
		n = math.Min(n, math.Floor((c.Capacity.MaxVolume-c.TotalVolume+capacityTolerance)/unit.Volume))
	}
	if unit.Weight > 0 {
		n = math.Min(n, math.Floor((c.Capacity.MaxWeight-c.TotalWeight+capacityTolerance)/unit.Weight))
	}
	if n < 0 {
		return 0
	}
	return int(n)
}
