package model

import "github.com/shopspring/decimal"

// ThermalClass tells whether a variant needs a refrigerated container.
type ThermalClass string

const (
	// ThermalFrozen variants may only travel in refrigerated containers.
	ThermalFrozen ThermalClass = "frozen"
	// ThermalAmbient variants may only travel in non-refrigerated containers.
	ThermalAmbient ThermalClass = "ambient"
)

// Valid reports whether t is a known thermal class.
func (t ThermalClass) Valid() bool {
	return t == ThermalFrozen || t == ThermalAmbient
}

// RequiresRefrigeration reports whether t can only enter a refrigerated container.
func (t ThermalClass) RequiresRefrigeration() bool {
	return t == ThermalFrozen
}

// Variant is an immutable snapshot of a sellable SKU as returned by the catalog.
//
// @Description Packaged product variant with per-box physical figures
type Variant struct {
	// ID is the catalog variant identifier
	ID string `json:"variant_id" example:"V-1001"`
	// BoxVolume is the volume of one box in cubic meters
	BoxVolume float64 `json:"box_volume" example:"0.0136"`
	// UnitGrossWeight is the gross weight of one box in kilograms
	UnitGrossWeight float64 `json:"unit_gross_weight" example:"20"`
	// BoxPrice is the price of one box
	BoxPrice decimal.Decimal `json:"box_price" swaggertype:"string" example:"12.50"`
	// ThermalClass is "frozen" or "ambient"
	ThermalClass ThermalClass `json:"thermal_class" example:"ambient"`
}

// FitsThermally reports whether the variant may be loaded into a container of the
// given refrigeration class.
func (v Variant) FitsThermally(refrigerated bool) bool {
	return v.ThermalClass.RequiresRefrigeration() == refrigerated
}

// HasFootprint reports whether one box of the variant has a positive volume and
// weight.
func (v Variant) HasFootprint() bool {
	return v.BoxVolume > 0 && v.UnitGrossWeight > 0
}
