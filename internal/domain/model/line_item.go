package model

import "github.com/shopspring/decimal"

// DefaultPackingEfficiency disables volume derating.
const DefaultPackingEfficiency = 1.0

// Footprint is the space, weight and value taken by some boxes of a variant.
type Footprint struct {
	Volume float64         `json:"volume"`
	Weight float64         `json:"weight"`
	Price  decimal.Decimal `json:"price" swaggertype:"string"`
}

// NormalizeEfficiency returns e when it lies in (0, 1] and DefaultPackingEfficiency otherwise.
func NormalizeEfficiency(e float64) float64 {
	if e <= 0 || e > 1 {
		return DefaultPackingEfficiency
	}
	return e
}

// UnitFootprint returns the footprint of one box of v. Volume is divided by the
// packing efficiency; weight and price are never derated.
func UnitFootprint(v Variant, efficiency float64) Footprint {
	return Footprint{
		Volume: v.BoxVolume / NormalizeEfficiency(efficiency),
		Weight: v.UnitGrossWeight,
		Price:  v.BoxPrice,
	}
}

// ComputeFootprint returns the footprint of quantity boxes of v.
func ComputeFootprint(v Variant, quantity int, efficiency float64) Footprint {
	return UnitFootprint(v, efficiency).Times(quantity)
}

// Times scales a unit footprint by quantity.
func (f Footprint) Times(quantity int) Footprint {
	q := float64(quantity)
	return Footprint{
		Volume: f.Volume * q,
		Weight: f.Weight * q,
		Price:  f.Price.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

// LineItem is a quantity of one variant inside a container. The unit figures and
// thermal class are frozen when the variant is first added and are not refreshed
// on increments.
//
// @Description Variant quantity placed in a container
type LineItem struct {
	VariantID    string          `json:"variant_id" example:"V-1001"`
	Quantity     int             `json:"quantity" example:"100"`
	Note         string          `json:"note,omitempty"`
	ThermalClass ThermalClass    `json:"thermal_class" example:"ambient"`
	UnitVolume   float64         `json:"unit_volume" example:"0.0136"`
	UnitWeight   float64         `json:"unit_weight" example:"20"`
	UnitPrice    decimal.Decimal `json:"unit_price" swaggertype:"string" example:"12.50"`
}

// Unit returns the frozen per-box footprint.
func (li LineItem) Unit() Footprint {
	return Footprint{Volume: li.UnitVolume, Weight: li.UnitWeight, Price: li.UnitPrice}
}

// Footprint returns the footprint of the whole line.
func (li LineItem) Footprint() Footprint {
	return li.Unit().Times(li.Quantity)
}
