package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(containers int) *Order {
	o := NewOrder(ContainerSpec{Size: "20ft", TransportMode: TransportSea, DestinationID: "DST-1"}, dry20)
	for i := 1; i < containers; i++ {
		o.Append(NewContainer(dry20, TransportSea, "DST-1"))
	}
	return o
}

func TestNewOrder(t *testing.T) {
	o := newTestOrder(1)

	require.Equal(t, 1, o.Len())
	assert.Equal(t, 0, o.ActiveIndex)
	assert.True(t, o.Active().IsEmpty())
	assert.Equal(t, dry20, o.Active().Capacity)
	assert.Equal(t, TransportSea, o.Active().TransportMode)
	assert.Equal(t, "DST-1", o.Active().DestinationID)
	assert.True(t, o.IsEmpty())
}

func TestOrder_Append(t *testing.T) {
	o := newTestOrder(1)

	slot := o.Append(NewContainer(dry20, TransportAir, "DST-2"))

	assert.Equal(t, 1, slot)
	assert.Equal(t, 1, o.ActiveIndex)
	assert.Equal(t, 2, o.Len())
}

func TestOrder_RemoveAt(t *testing.T) {
	tests := []struct {
		name           string
		containers     int
		active         int
		slot           int
		expectedActive int
		expectedLen    int
		expectedErr    error
	}{
		{name: "remove after active keeps index", containers: 3, active: 0, slot: 2, expectedActive: 0, expectedLen: 2},
		{name: "remove before active shifts index", containers: 3, active: 2, slot: 0, expectedActive: 1, expectedLen: 2},
		{name: "remove active moves to previous", containers: 3, active: 1, slot: 1, expectedActive: 0, expectedLen: 2},
		{name: "remove active at zero stays zero", containers: 2, active: 0, slot: 0, expectedActive: 0, expectedLen: 1},
		{name: "out of range", containers: 2, active: 0, slot: 5, expectedActive: 0, expectedLen: 2, expectedErr: ErrSlotOutOfRange},
		{name: "negative slot", containers: 2, active: 1, slot: -1, expectedActive: 1, expectedLen: 2, expectedErr: ErrSlotOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newTestOrder(tt.containers)
			require.NoError(t, o.SetActive(tt.active))

			err := o.RemoveAt(tt.slot)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedActive, o.ActiveIndex)
			assert.Equal(t, tt.expectedLen, o.Len())
		})
	}
}

func TestOrder_Reset(t *testing.T) {
	o := newTestOrder(3)
	require.NoError(t, o.Containers[1].AddOrIncrement(variant("V1", 0.1, 1, "1"), 1, "", 1))

	o.Reset()

	require.Equal(t, 1, o.Len())
	assert.Equal(t, 0, o.ActiveIndex)
	assert.True(t, o.IsEmpty())
	assert.Equal(t, "20ft", o.Initial().Size)
}

func TestOrder_Clone(t *testing.T) {
	o := newTestOrder(2)
	clone := o.Clone()

	require.NoError(t, clone.Containers[0].AddOrIncrement(variant("V1", 0.1, 1, "1"), 1, "", 1))
	clone.Append(NewContainer(dry20, TransportSea, "DST-1"))

	assert.True(t, o.IsEmpty())
	assert.Equal(t, 2, o.Len())
	assert.Equal(t, 3, clone.Len())
}

func TestOrder_Container(t *testing.T) {
	o := newTestOrder(2)

	c, err := o.Container(1)
	require.NoError(t, err)
	assert.Same(t, o.Containers[1], c)

	_, err = o.Container(2)
	assert.ErrorIs(t, err, ErrSlotOutOfRange)
	assert.ErrorIs(t, o.SetActive(-1), ErrSlotOutOfRange)
}

func TestSpecOf(t *testing.T) {
	c := NewContainer(CapacityClass{Size: "40ft", Refrigerated: true, MaxVolume: 59, MaxWeight: 26000}, TransportLand, "DST-9")

	assert.Equal(t, ContainerSpec{Size: "40ft", Refrigerated: true, TransportMode: TransportLand, DestinationID: "DST-9"}, SpecOf(c))
}
