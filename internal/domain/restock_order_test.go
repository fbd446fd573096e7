package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testRFID      = "12345678901234567890123456789012"
	testRFIDOther = "00000000000000000000000000000001"
)

func createTestProducts() []ProductLine {
	return []ProductLine{
		{SKUID: 1, ItemID: 10, Description: "bolt M6", Price: 0.25, Qty: 100},
		{SKUID: 2, ItemID: 11, Description: "washer M6", Price: 0.05, Qty: 200},
	}
}

func createTestOrder(t *testing.T) *RestockOrder {
	t.Helper()
	order, err := NewRestockOrder(1, "2021/11/29 09:33", createTestProducts(), 1)
	require.NoError(t, err)
	order.ClearDomainEvents()
	return order
}

func TestNewRestockOrder(t *testing.T) {
	tests := []struct {
		name       string
		issueDate  string
		products   []ProductLine
		supplierID int
		wantErr    error
	}{
		{
			name:       "valid order",
			issueDate:  "2021/11/29 09:33",
			products:   createTestProducts(),
			supplierID: 1,
		},
		{
			name:       "date only layout",
			issueDate:  "2021/11/29",
			products:   createTestProducts(),
			supplierID: 1,
		},
		{
			name:       "invalid date",
			issueDate:  "29/11/2021",
			products:   createTestProducts(),
			supplierID: 1,
			wantErr:    ErrInvalidDate,
		},
		{
			name:       "future date",
			issueDate:  "2099/01/01",
			products:   createTestProducts(),
			supplierID: 1,
			wantErr:    ErrFutureDate,
		},
		{
			name:       "no products",
			issueDate:  "2021/11/29",
			products:   []ProductLine{},
			supplierID: 1,
			wantErr:    ErrNoProducts,
		},
		{
			name:       "invalid product line",
			issueDate:  "2021/11/29",
			products:   []ProductLine{{SKUID: 0, ItemID: 1, Price: 1, Qty: 1}},
			supplierID: 1,
			wantErr:    ErrInvalidProductLine,
		},
		{
			name:       "non-positive price",
			issueDate:  "2021/11/29",
			products:   []ProductLine{{SKUID: 1, ItemID: 1, Price: 0, Qty: 1}},
			supplierID: 1,
			wantErr:    ErrInvalidProductLine,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := NewRestockOrder(1, tt.issueDate, tt.products, tt.supplierID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, order)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, order)
			assert.Equal(t, RestockStateIssued, order.State)
			assert.Empty(t, order.SKUItems)
			assert.Nil(t, order.TransportNote)

			events := order.GetDomainEvents()
			require.Len(t, events, 1)
			issued, ok := events[0].(*RestockOrderIssuedEvent)
			require.True(t, ok)
			assert.Equal(t, 1, issued.OrderID)
			assert.Equal(t, len(tt.products), issued.LineCount)
		})
	}
}

func TestRestockOrderChangeState(t *testing.T) {
	t.Run("any known token is accepted from any state", func(t *testing.T) {
		order := createTestOrder(t)

		for _, target := range []RestockOrderState{
			RestockStateDelivery,
			RestockStateCompletedReturn,
			RestockStateIssued,
			RestockStateTested,
		} {
			require.NoError(t, order.ChangeState(target, nil))
			assert.Equal(t, target, order.State)
		}
	})

	t.Run("unknown token rejected", func(t *testing.T) {
		order := createTestOrder(t)
		err := order.ChangeState(RestockOrderState("SHIPPED"), nil)
		assert.ErrorIs(t, err, ErrUnknownState)
		assert.Equal(t, RestockStateIssued, order.State)
	})

	t.Run("completed requires delivered items", func(t *testing.T) {
		order := createTestOrder(t)
		err := order.ChangeState(RestockStateCompleted, nil)
		assert.ErrorIs(t, err, ErrMissingCompletedItems)
		assert.Equal(t, RestockStateIssued, order.State)
	})

	t.Run("completed stores delivered items", func(t *testing.T) {
		order := createTestOrder(t)
		items := []SKUItemRef{{SKUID: 1, RFID: testRFID}}

		require.NoError(t, order.ChangeState(RestockStateCompleted, items))
		assert.Equal(t, RestockStateCompleted, order.State)
		assert.Equal(t, items, order.SKUItems)
	})

	t.Run("completed appends to already attached items", func(t *testing.T) {
		order := createTestOrder(t)
		require.NoError(t, order.ChangeState(RestockStateDelivered, nil))
		require.NoError(t, order.AttachSKUItems([]SKUItemRef{{SKUID: 1, ItemID: 10, RFID: testRFID}}))

		require.NoError(t, order.ChangeState(RestockStateCompleted, []SKUItemRef{{SKUID: 2, RFID: testRFIDOther}}))
		require.Len(t, order.SKUItems, 2)
		assert.Equal(t, testRFIDOther, order.SKUItems[1].RFID)
	})

	t.Run("completed rejects malformed item", func(t *testing.T) {
		order := createTestOrder(t)
		err := order.ChangeState(RestockStateCompleted, []SKUItemRef{{SKUID: 1, RFID: "short"}})
		assert.ErrorIs(t, err, ErrInvalidRFID)
		assert.Empty(t, order.SKUItems)
	})

	t.Run("emits transition event", func(t *testing.T) {
		order := createTestOrder(t)
		require.NoError(t, order.ChangeState(RestockStateDelivery, nil))

		events := order.GetDomainEvents()
		require.Len(t, events, 1)
		changed, ok := events[0].(*RestockOrderStateChangedEvent)
		require.True(t, ok)
		assert.Equal(t, string(RestockStateIssued), changed.FromState)
		assert.Equal(t, string(RestockStateDelivery), changed.ToState)
	})
}

func TestRestockOrderAttachSKUItems(t *testing.T) {
	items := []SKUItemRef{{SKUID: 1, ItemID: 10, RFID: testRFID}}

	t.Run("allowed in DELIVERED", func(t *testing.T) {
		order := createTestOrder(t)
		require.NoError(t, order.ChangeState(RestockStateDelivered, nil))

		require.NoError(t, order.AttachSKUItems(items))
		assert.Len(t, order.SKUItems, 1)

		// Second batch appends
		more := []SKUItemRef{{SKUID: 2, ItemID: 11, RFID: testRFIDOther}}
		require.NoError(t, order.AttachSKUItems(more))
		assert.Len(t, order.SKUItems, 2)
	})

	t.Run("rejected in other states", func(t *testing.T) {
		order := createTestOrder(t)
		err := order.AttachSKUItems(items)
		assert.ErrorIs(t, err, ErrWrongOrderState)
		assert.Empty(t, order.SKUItems)
	})

	t.Run("invalid rfid rejected", func(t *testing.T) {
		order := createTestOrder(t)
		require.NoError(t, order.ChangeState(RestockStateDelivered, nil))

		err := order.AttachSKUItems([]SKUItemRef{{SKUID: 1, ItemID: 10, RFID: "123"}})
		assert.ErrorIs(t, err, ErrInvalidRFID)
	})
}

func TestRestockOrderAttachTransportNote(t *testing.T) {
	t.Run("allowed in DELIVERY", func(t *testing.T) {
		order := createTestOrder(t)
		require.NoError(t, order.ChangeState(RestockStateDelivery, nil))

		require.NoError(t, order.AttachTransportNote(TransportNote{DeliveryDate: "2021/12/29"}))
		require.NotNil(t, order.TransportNote)
		assert.Equal(t, "2021/12/29", order.TransportNote.DeliveryDate)
	})

	t.Run("early delivery date rejected before state check", func(t *testing.T) {
		// Still ISSUED: the date error wins over the state error
		order := createTestOrder(t)
		err := order.AttachTransportNote(TransportNote{DeliveryDate: "2021/11/28"})
		assert.ErrorIs(t, err, ErrEarlyDeliveryDate)
	})

	t.Run("wrong state after valid date", func(t *testing.T) {
		order := createTestOrder(t)
		err := order.AttachTransportNote(TransportNote{DeliveryDate: "2021/12/29"})
		assert.ErrorIs(t, err, ErrWrongOrderState)
		assert.Nil(t, order.TransportNote)
	})

	t.Run("same day accepted", func(t *testing.T) {
		order, err := NewRestockOrder(2, "2021/11/29", createTestProducts(), 1)
		require.NoError(t, err)
		require.NoError(t, order.ChangeState(RestockStateDelivery, nil))

		assert.NoError(t, order.AttachTransportNote(TransportNote{DeliveryDate: "2021/11/29"}))
	})

	t.Run("invalid delivery date", func(t *testing.T) {
		order := createTestOrder(t)
		require.NoError(t, order.ChangeState(RestockStateDelivery, nil))

		err := order.AttachTransportNote(TransportNote{DeliveryDate: "tomorrow"})
		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}

func TestRestockOrderReturnItems(t *testing.T) {
	setup := func(t *testing.T) *RestockOrder {
		order := createTestOrder(t)
		require.NoError(t, order.ChangeState(RestockStateDelivered, nil))
		require.NoError(t, order.AttachSKUItems([]SKUItemRef{
			{SKUID: 1, ItemID: 10, RFID: testRFID},
			{SKUID: 2, ItemID: 11, RFID: testRFIDOther},
		}))
		require.NoError(t, order.ChangeState(RestockStateCompletedReturn, nil))
		return order
	}

	t.Run("only failed items returned", func(t *testing.T) {
		order := setup(t)

		returned, err := order.ReturnItems(map[string]bool{testRFID: true})
		require.NoError(t, err)
		require.Len(t, returned, 1)
		assert.Equal(t, testRFID, returned[0].RFID)
	})

	t.Run("no failures yields empty slice", func(t *testing.T) {
		order := setup(t)

		returned, err := order.ReturnItems(map[string]bool{})
		require.NoError(t, err)
		assert.NotNil(t, returned)
		assert.Empty(t, returned)
	})

	t.Run("rejected outside COMPLETEDRETURN", func(t *testing.T) {
		order := createTestOrder(t)
		_, err := order.ReturnItems(map[string]bool{})
		assert.ErrorIs(t, err, ErrWrongOrderState)
	})
}

func TestParseRestockOrderState(t *testing.T) {
	tests := []struct {
		raw     string
		want    RestockOrderState
		wantErr bool
	}{
		{raw: "COMPLETED", want: RestockStateCompleted},
		{raw: "completed", want: RestockStateCompleted},
		{raw: "  Delivery  ", want: RestockStateDelivery},
		{raw: "completedreturn", want: RestockStateCompletedReturn},
		{raw: "SHIPPED", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			state, err := ParseRestockOrderState(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownState)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, state)
		})
	}
}

func TestParseOrderDate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{name: "date only", raw: "2021/11/29"},
		{name: "date and time", raw: "2021/11/29 09:33"},
		{name: "trimmed", raw: "  2021/11/29  "},
		{name: "wrong separator", raw: "2021-11-29", wantErr: ErrInvalidDate},
		{name: "empty", raw: "", wantErr: ErrInvalidDate},
		{name: "seconds not accepted", raw: "2021/11/29 09:33:12", wantErr: ErrInvalidDate},
		{name: "future", raw: "2099/01/01", wantErr: ErrFutureDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOrderDate(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidRFID(t *testing.T) {
	assert.True(t, ValidRFID(testRFID))
	assert.False(t, ValidRFID("12345"))
	assert.False(t, ValidRFID("1234567890123456789012345678901a"))
	assert.False(t, ValidRFID(testRFID+"0"))
	assert.False(t, ValidRFID(""))
}
