package model

import "fmt"

// CapacityKey identifies a capacity class.
type CapacityKey struct {
	Size         string
	Refrigerated bool
}

// String returns a compact representation such as "40ft/reefer".
func (k CapacityKey) String() string {
	if k.Refrigerated {
		return fmt.Sprintf("%s/reefer", k.Size)
	}
	return fmt.Sprintf("%s/dry", k.Size)
}

// CapacityClass is the physical ceiling of a container of a given size and
// refrigeration class.
//
// @Description Container capacity ceiling
// @Example {"size": "20ft", "refrigerated": false, "max_volume": 33, "max_weight": 18000}
type CapacityClass struct {
	// Size is the container size code, e.g. "20ft"
	Size string `json:"size" bson:"size" yaml:"size" validate:"required" example:"20ft"`
	// Refrigerated marks reefer containers
	Refrigerated bool `json:"refrigerated" bson:"refrigerated" yaml:"refrigerated" example:"false"`
	// MaxVolume is the usable volume in cubic meters
	MaxVolume float64 `json:"max_volume" bson:"max_volume" yaml:"max_volume" validate:"gt=0" example:"33"`
	// MaxWeight is the payload limit in kilograms
	MaxWeight float64 `json:"max_weight" bson:"max_weight" yaml:"max_weight" validate:"gt=0" example:"18000"`
}

// Key returns the lookup key of the class.
func (c CapacityClass) Key() CapacityKey {
	return CapacityKey{Size: c.Size, Refrigerated: c.Refrigerated}
}
