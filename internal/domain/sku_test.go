package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSKU(t *testing.T) *SKU {
	t.Helper()
	sku, err := NewSKU(1, "screwdriver set", 0.5, 0.2, "", 19.99, 40)
	require.NoError(t, err)
	sku.ClearDomainEvents()
	return sku
}

func TestNewSKU(t *testing.T) {
	tests := []struct {
		name     string
		weight   float64
		volume   float64
		price    float64
		quantity int
		wantErr  bool
	}{
		{name: "valid", weight: 0.5, volume: 0.2, price: 19.99, quantity: 40},
		{name: "zero weight and volume allowed", weight: 0, volume: 0, price: 1, quantity: 0},
		{name: "negative weight", weight: -1, volume: 0.2, price: 19.99, quantity: 40, wantErr: true},
		{name: "negative volume", weight: 0.5, volume: -1, price: 19.99, quantity: 40, wantErr: true},
		{name: "zero price", weight: 0.5, volume: 0.2, price: 0, quantity: 40, wantErr: true},
		{name: "negative quantity", weight: 0.5, volume: 0.2, price: 19.99, quantity: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sku, err := NewSKU(1, "item", tt.weight, tt.volume, "", tt.price, tt.quantity)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSKU)
				assert.Nil(t, sku)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, sku.Position)
			assert.NotNil(t, sku.TestDescriptors)
		})
	}
}

func TestSKUOccupiedFigures(t *testing.T) {
	sku := createTestSKU(t)

	assert.InDelta(t, 20.0, sku.OccupiedWeight(), 1e-9)
	assert.InDelta(t, 8.0, sku.OccupiedVolume(), 1e-9)

	require.NoError(t, sku.Update("screwdriver set", 1.0, 0.5, "", 19.99, 10))
	assert.InDelta(t, 10.0, sku.OccupiedWeight(), 1e-9)
	assert.InDelta(t, 5.0, sku.OccupiedVolume(), 1e-9)
}

func TestSKUAssignAndReleasePosition(t *testing.T) {
	sku := createTestSKU(t)

	require.NoError(t, sku.AssignPosition("800234543412"))
	assert.Equal(t, "800234543412", sku.Position)

	err := sku.AssignPosition("1234")
	assert.ErrorIs(t, err, ErrInvalidPositionID)
	assert.Equal(t, "800234543412", sku.Position)

	sku.ClearDomainEvents()
	sku.ReleasePosition()
	assert.Empty(t, sku.Position)

	events := sku.GetDomainEvents()
	require.Len(t, events, 1)
	released, ok := events[0].(*PositionReleasedEvent)
	require.True(t, ok)
	assert.Equal(t, "800234543412", released.PositionID)

	// Releasing an unheld position is a no-op
	sku.ClearDomainEvents()
	sku.ReleasePosition()
	assert.Empty(t, sku.GetDomainEvents())
}

func TestNewPosition(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		aisle   string
		row     string
		col     string
		wantErr bool
	}{
		{name: "valid", id: "800234543412", aisle: "8002", row: "3454", col: "3412"},
		{name: "id mismatch", id: "800234543413", aisle: "8002", row: "3454", col: "3412", wantErr: true},
		{name: "short id", id: "80023454341", aisle: "8002", row: "3454", col: "341", wantErr: true},
		{name: "non-numeric segment", id: "8002345434ab", aisle: "8002", row: "3454", col: "34ab", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			position, err := NewPosition(tt.id, tt.aisle, tt.row, tt.col, 1000, 1000)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPositionID)
				assert.Nil(t, position)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, position.ID)
			assert.Zero(t, position.OccupiedWeight)
			assert.Zero(t, position.OccupiedVolume)
		})
	}
}

func TestPositionUpdateRelabelsID(t *testing.T) {
	position, err := NewPosition("800234543412", "8002", "3454", "3412", 1000, 1000)
	require.NoError(t, err)

	require.NoError(t, position.Update("8002", "3554", "3412", 1200, 600, 200, 100))
	assert.Equal(t, "800235543412", position.ID)
	assert.Equal(t, "3554", position.Row)
	assert.InDelta(t, 200.0, position.OccupiedWeight, 1e-9)
	assert.InDelta(t, 100.0, position.OccupiedVolume, 1e-9)
}

func TestPositionChangeID(t *testing.T) {
	position, err := NewPosition("800234543412", "8002", "3454", "3412", 1000, 1000)
	require.NoError(t, err)

	require.NoError(t, position.ChangeID("801134543412"))
	assert.Equal(t, "8011", position.AisleID)
	assert.Equal(t, "3454", position.Row)
	assert.Equal(t, "3412", position.Col)

	assert.ErrorIs(t, position.ChangeID("12"), ErrInvalidPositionID)
}

func TestPositionOccupancy(t *testing.T) {
	position, err := NewPosition("800234543412", "8002", "3454", "3412", 100, 100)
	require.NoError(t, err)

	position.AddOccupied(30, 20)
	position.AddOccupied(10, 5)
	assert.InDelta(t, 40.0, position.OccupiedWeight, 1e-9)
	assert.InDelta(t, 25.0, position.OccupiedVolume, 1e-9)

	// Exceeding the maximum is tolerated
	position.SetOccupied(500, 500)
	assert.InDelta(t, 500.0, position.OccupiedWeight, 1e-9)

	position.ResetOccupied()
	assert.Zero(t, position.OccupiedWeight)
	assert.Zero(t, position.OccupiedVolume)
}

func TestNewSKUItem(t *testing.T) {
	t.Run("starts unavailable", func(t *testing.T) {
		item, err := NewSKUItem(testRFID, 1, "2021/11/29 12:30")
		require.NoError(t, err)
		assert.Equal(t, 0, item.Available)
		assert.False(t, item.IsAvailable())
	})

	t.Run("date of stock optional", func(t *testing.T) {
		item, err := NewSKUItem(testRFID, 1, "")
		require.NoError(t, err)
		assert.Empty(t, item.DateOfStock)
	})

	t.Run("invalid rfid", func(t *testing.T) {
		_, err := NewSKUItem("123", 1, "")
		assert.ErrorIs(t, err, ErrInvalidRFID)
	})

	t.Run("invalid sku reference", func(t *testing.T) {
		_, err := NewSKUItem(testRFID, 0, "")
		assert.ErrorIs(t, err, ErrInvalidSKUItem)
	})

	t.Run("invalid date of stock", func(t *testing.T) {
		_, err := NewSKUItem(testRFID, 1, "29/11/2021")
		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}

func TestSKUItemUpdate(t *testing.T) {
	item, err := NewSKUItem(testRFID, 1, "2021/11/29")
	require.NoError(t, err)
	item.ClearDomainEvents()

	require.NoError(t, item.Update(testRFIDOther, 1, "2021/11/30"))
	assert.Equal(t, testRFIDOther, item.RFID)
	assert.True(t, item.IsAvailable())

	events := item.GetDomainEvents()
	require.Len(t, events, 1)
	modified, ok := events[0].(*SKUItemModifiedEvent)
	require.True(t, ok)
	assert.Equal(t, testRFID, modified.PreviousRFID)
	assert.Equal(t, testRFIDOther, modified.RFID)

	assert.ErrorIs(t, item.Update(testRFIDOther, 2, ""), ErrInvalidSKUItem)
	assert.ErrorIs(t, item.Update("bad", 1, ""), ErrInvalidRFID)
}
