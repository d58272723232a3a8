package model

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dry20 = CapacityClass{Size: "20ft", Refrigerated: false, MaxVolume: 33, MaxWeight: 18000}

func variant(id string, volume, weight float64, price string) Variant {
	return Variant{
		ID:              id,
		BoxVolume:       volume,
		UnitGrossWeight: weight,
		BoxPrice:        decimal.RequireFromString(price),
		ThermalClass:    ThermalAmbient,
	}
}

func assertTotalsConsistent(t *testing.T, c *Container) {
	t.Helper()
	var volume, weight float64
	price := decimal.Zero
	boxes := 0
	for _, item := range c.Items {
		volume += item.UnitVolume * float64(item.Quantity)
		weight += item.UnitWeight * float64(item.Quantity)
		price = price.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
		boxes += item.Quantity
	}
	assert.InDelta(t, volume, c.TotalVolume, 1e-9)
	assert.InDelta(t, weight, c.TotalWeight, 1e-9)
	assert.True(t, price.Equal(c.TotalPrice), "price %s != %s", price, c.TotalPrice)
	assert.Equal(t, boxes, c.BoxCount)
}

func TestContainer_AddOrIncrement(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(t *testing.T, c *Container)
		variant     Variant
		quantity    int
		note        string
		efficiency  float64
		expectedErr error
		verify      func(t *testing.T, c *Container)
	}{
		{
			name:     "adds a new line with frozen unit figures",
			variant:  variant("V1", 0.0136, 20, "12.50"),
			quantity: 100,
			note:     "blue",
			verify: func(t *testing.T, c *Container) {
				require.Len(t, c.Items, 1)
				assert.Equal(t, "blue", c.Items[0].Note)
				assert.InDelta(t, 0.0136, c.Items[0].UnitVolume, 1e-12)
				assert.InDelta(t, 1.36, c.TotalVolume, 1e-9)
				assert.InDelta(t, 2000, c.TotalWeight, 1e-9)
				assert.Equal(t, "1250", c.TotalPrice.String())
				assert.Equal(t, 100, c.BoxCount)
			},
		},
		{
			name: "increments an existing line",
			setup: func(t *testing.T, c *Container) {
				require.NoError(t, c.AddOrIncrement(variant("V1", 0.1, 1, "1"), 3, "", 1))
			},
			variant:  variant("V1", 0.1, 1, "1"),
			quantity: 4,
			verify: func(t *testing.T, c *Container) {
				require.Len(t, c.Items, 1)
				assert.Equal(t, 7, c.Items[0].Quantity)
			},
		},
		{
			name: "increment keeps frozen figures even if the variant changed",
			setup: func(t *testing.T, c *Container) {
				require.NoError(t, c.AddOrIncrement(variant("V1", 0.1, 1, "1"), 1, "", 1))
			},
			variant:  variant("V1", 0.5, 9, "99"),
			quantity: 1,
			verify: func(t *testing.T, c *Container) {
				assert.InDelta(t, 0.2, c.TotalVolume, 1e-9)
				assert.InDelta(t, 2, c.TotalWeight, 1e-9)
				assert.Equal(t, "2", c.TotalPrice.String())
			},
		},
		{
			name: "non-empty note replaces the previous one",
			setup: func(t *testing.T, c *Container) {
				require.NoError(t, c.AddOrIncrement(variant("V1", 0.1, 1, "1"), 1, "old", 1))
			},
			variant:  variant("V1", 0.1, 1, "1"),
			quantity: 1,
			note:     "new",
			verify: func(t *testing.T, c *Container) {
				assert.Equal(t, "new", c.Items[0].Note)
			},
		},
		{
			name: "empty note keeps the previous one",
			setup: func(t *testing.T, c *Container) {
				require.NoError(t, c.AddOrIncrement(variant("V1", 0.1, 1, "1"), 1, "old", 1))
			},
			variant:  variant("V1", 0.1, 1, "1"),
			quantity: 1,
			verify: func(t *testing.T, c *Container) {
				assert.Equal(t, "old", c.Items[0].Note)
			},
		},
		{
			name:        "rejects zero quantity",
			variant:     variant("V1", 0.1, 1, "1"),
			quantity:    0,
			expectedErr: ErrInvalidQuantity,
		},
		{
			name:        "rejects missing variant id",
			variant:     variant("", 0.1, 1, "1"),
			quantity:    1,
			expectedErr: ErrInvalidVariant,
		},
		{
			name:       "packing efficiency derates volume only",
			variant:    variant("V1", 0.8, 10, "5"),
			quantity:   2,
			efficiency: 0.8,
			verify: func(t *testing.T, c *Container) {
				assert.InDelta(t, 2.0, c.TotalVolume, 1e-9)
				assert.InDelta(t, 20, c.TotalWeight, 1e-9)
				assert.Equal(t, "10", c.TotalPrice.String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewContainer(dry20, TransportSea, "DST-1")
			if tt.setup != nil {
				tt.setup(t, c)
			}

			err := c.AddOrIncrement(tt.variant, tt.quantity, tt.note, tt.efficiency)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.True(t, c.IsEmpty())
				return
			}
			require.NoError(t, err)
			assertTotalsConsistent(t, c)
			if tt.verify != nil {
				tt.verify(t, c)
			}
		})
	}
}

func TestContainer_LineItemUniqueness(t *testing.T) {
	c := NewContainer(dry20, TransportSea, "DST-1")
	v := variant("V1", 0.01, 2, "3")

	require.NoError(t, c.AddOrIncrement(v, 5, "", 1))
	require.NoError(t, c.AddOrIncrement(v, 6, "", 1))

	require.Len(t, c.Items, 1)
	assert.Equal(t, 11, c.Items[0].Quantity)
	assertTotalsConsistent(t, c)
}

func TestContainer_QuantityOverflow(t *testing.T) {
	c := NewContainer(dry20, TransportSea, "DST-1")
	require.NoError(t, c.AddOrIncrement(variant("A", 0.01, 1, "1"), 3, "", 1))
	require.NoError(t, c.AddOrIncrement(variant("B", 0.01, 1, "1"), 2, "", 1))

	assert.ErrorIs(t, c.AddOrIncrement(variant("A", 0.01, 1, "1"), math.MaxInt, "", 1), ErrQuantityOverflow)
	assert.ErrorIs(t, c.AddOrIncrement(variant("C", 0.01, 1, "1"), math.MaxInt-4, "", 1), ErrQuantityOverflow)
	assert.ErrorIs(t, c.SetQuantity("B", math.MaxInt-2), ErrQuantityOverflow)
	require.NoError(t, c.SetQuantity("B", math.MaxInt-3))

	assert.Equal(t, math.MaxInt, c.BoxCount)
	item, ok := c.Item("A")
	require.True(t, ok)
	assert.Equal(t, 3, item.Quantity)
}

func TestContainer_Remove(t *testing.T) {
	c := NewContainer(dry20, TransportSea, "DST-1")
	require.NoError(t, c.AddOrIncrement(variant("V1", 0.1, 1, "1"), 2, "", 1))
	require.NoError(t, c.AddOrIncrement(variant("V2", 0.2, 2, "2"), 3, "", 1))

	assert.False(t, c.Remove("missing"))
	assert.Len(t, c.Items, 2)

	assert.True(t, c.Remove("V1"))
	require.Len(t, c.Items, 1)
	assert.Equal(t, "V2", c.Items[0].VariantID)
	assertTotalsConsistent(t, c)
	assert.InDelta(t, 0.6, c.TotalVolume, 1e-9)

	assert.True(t, c.Remove("V2"))
	assert.True(t, c.IsEmpty())
	assert.Zero(t, c.TotalVolume)
	assert.Zero(t, c.BoxCount)
	assert.True(t, c.TotalPrice.IsZero())
}

func TestContainer_SetQuantity(t *testing.T) {
	tests := []struct {
		name        string
		variantID   string
		quantity    int
		expectedErr error
	}{
		{name: "updates quantity", variantID: "V1", quantity: 8},
		{name: "rejects zero", variantID: "V1", quantity: 0, expectedErr: ErrInvalidQuantity},
		{name: "rejects negative", variantID: "V1", quantity: -2, expectedErr: ErrInvalidQuantity},
		{name: "unknown variant", variantID: "V9", quantity: 2, expectedErr: ErrLineItemNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewContainer(dry20, TransportSea, "DST-1")
			require.NoError(t, c.AddOrIncrement(variant("V1", 0.1, 1, "10"), 5, "", 1))

			err := c.SetQuantity(tt.variantID, tt.quantity)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Equal(t, 5, c.Items[0].Quantity)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.quantity, c.Items[0].Quantity)
			assert.Equal(t, "80", c.TotalPrice.String())
			assertTotalsConsistent(t, c)
		})
	}
}

func TestContainer_FillRatio(t *testing.T) {
	tests := []struct {
		name     string
		volume   float64
		weight   float64
		expected float64
	}{
		{name: "empty", expected: 0},
		{name: "volume binds", volume: 16.5, weight: 900, expected: 0.5},
		{name: "weight binds", volume: 3.3, weight: 14400, expected: 0.8},
		{name: "full", volume: 33, weight: 18000, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewContainer(dry20, TransportSea, "DST-1")
			c.TotalVolume = tt.volume
			c.TotalWeight = tt.weight
			assert.InDelta(t, tt.expected, c.FillRatio(), 1e-9)
		})
	}
}

func TestContainer_MaxAddableQuantity(t *testing.T) {
	tests := []struct {
		name     string
		volume   float64
		weight   float64
		variant  Variant
		expected int
	}{
		{name: "volume binds", volume: 30, variant: variant("V", 0.5, 1, "1"), expected: 6},
		{name: "weight binds", weight: 17000, variant: variant("V", 0.01, 300, "1"), expected: 3},
		{name: "exact fit", volume: 32, variant: variant("V", 0.25, 0, "1"), expected: 4},
		{name: "zero footprint is unbounded", variant: variant("V", 0, 0, "1"), expected: Unbounded},
		{name: "already over", volume: 34, variant: variant("V", 0.5, 1, "1"), expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewContainer(dry20, TransportSea, "DST-1")
			c.TotalVolume = tt.volume
			c.TotalWeight = tt.weight
			assert.Equal(t, tt.expected, c.MaxAddableQuantity(tt.variant, 1))
		})
	}
}

func TestContainer_OverflowWith(t *testing.T) {
	c := NewContainer(dry20, TransportSea, "DST-1")
	c.TotalVolume = 30
	c.TotalWeight = 17500

	assert.Equal(t, AxisNone, c.OverflowWith(Footprint{Volume: 3, Weight: 500}))
	assert.Equal(t, AxisVolume, c.OverflowWith(Footprint{Volume: 5}))
	assert.Equal(t, AxisWeight, c.OverflowWith(Footprint{Weight: 501}))
	assert.Equal(t, AxisNone, c.Overflow())
}

func TestContainer_Clone(t *testing.T) {
	c := NewContainer(dry20, TransportSea, "DST-1")
	require.NoError(t, c.AddOrIncrement(variant("V1", 0.1, 1, "1"), 1, "", 1))

	clone := c.Clone()
	require.NoError(t, clone.SetQuantity("V1", 9))

	assert.Equal(t, 1, c.Items[0].Quantity)
	assert.Equal(t, 9, clone.Items[0].Quantity)
}

func TestVariant_FitsThermally(t *testing.T) {
	frozen := Variant{ID: "F", ThermalClass: ThermalFrozen}
	ambient := Variant{ID: "A", ThermalClass: ThermalAmbient}

	assert.True(t, frozen.FitsThermally(true))
	assert.False(t, frozen.FitsThermally(false))
	assert.True(t, ambient.FitsThermally(false))
	assert.False(t, ambient.FitsThermally(true))
}

func TestNormalizeEfficiency(t *testing.T) {
	assert.Equal(t, 0.85, NormalizeEfficiency(0.85))
	assert.Equal(t, 1.0, NormalizeEfficiency(1))
	assert.Equal(t, DefaultPackingEfficiency, NormalizeEfficiency(0))
	assert.Equal(t, DefaultPackingEfficiency, NormalizeEfficiency(-1))
	assert.Equal(t, DefaultPackingEfficiency, NormalizeEfficiency(1.5))
}

func TestComputeFootprint(t *testing.T) {
	v := variant("V-1", 0.02, 12.5, "8.40")

	tests := []struct {
		name       string
		quantity   int
		efficiency float64
		wantVolume float64
		wantWeight float64
		wantPrice  string
	}{
		{name: "full efficiency", quantity: 10, efficiency: 1, wantVolume: 0.2, wantWeight: 125, wantPrice: "84"},
		{name: "derated volume only", quantity: 10, efficiency: 0.8, wantVolume: 0.25, wantWeight: 125, wantPrice: "84"},
		{name: "invalid efficiency ignored", quantity: 4, efficiency: 0, wantVolume: 0.08, wantWeight: 50, wantPrice: "33.6"},
		{name: "zero quantity", quantity: 0, efficiency: 0.9, wantVolume: 0, wantWeight: 0, wantPrice: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeFootprint(v, tt.quantity, tt.efficiency)
			assert.InDelta(t, tt.wantVolume, got.Volume, 1e-9)
			assert.InDelta(t, tt.wantWeight, got.Weight, 1e-9)
			assert.True(t, decimal.RequireFromString(tt.wantPrice).Equal(got.Price), "price %s", got.Price)
		})
	}
}

func TestCapacityKey_String(t *testing.T) {
	assert.Equal(t, "40ft/reefer", CapacityKey{Size: "40ft", Refrigerated: true}.String())
	assert.Equal(t, "20ft/dry", dry20.Key().String())
}

func TestContainer_ThermalConflict(t *testing.T) {
	c := NewContainer(dry20, TransportSea, "DST-1")
	require.NoError(t, c.AddOrIncrement(variant("A1", 0.1, 1, "1"), 1, "", 1))

	_, conflict := c.ThermalConflict(false)
	assert.False(t, conflict)

	item, conflict := c.ThermalConflict(true)
	assert.True(t, conflict)
	assert.Equal(t, "A1", item.VariantID)
}
