package application

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wms-platform/services/restock-service/internal/domain"
	apperrors "github.com/wms-platform/services/restock-service/pkg/errors"
)

const (
	testRFID      = "12345678901234567890123456789012"
	testRFIDOther = "00000000000000000000000000000001"
)

func restockProducts() []domain.ProductLine {
	return []domain.ProductLine{
		{SKUID: 1, ItemID: 10, Description: "bolt M6", Price: 0.25, Qty: 100},
	}
}

func storedRestockOrder(t *testing.T, state domain.RestockOrderState) *domain.RestockOrder {
	t.Helper()
	order, err := domain.NewRestockOrder(1, "2021/11/29 09:33", restockProducts(), 1)
	require.NoError(t, err)
	order.State = state
	order.ClearDomainEvents()
	return order
}

func requireAppError(t *testing.T, err error, httpStatus int) *apperrors.AppError {
	t.Helper()
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	assert.Equal(t, httpStatus, appErr.HTTPStatus)
	return appErr
}

func TestRestockOrderServiceCreate(t *testing.T) {
	t.Run("creates order in ISSUED", func(t *testing.T) {
		orders := &mockOrderRepo{
			nextIDFn: func(context.Context) (int, error) { return 42, nil },
		}
		publisher := &mockPublisher{}
		service := NewRestockOrderService(orders, &mockSupplierRepo{}, &mockSKUItemRepo{}, publisher, nil, testLogger())

		order, err := service.Create(context.Background(), CreateRestockOrderCommand{
			IssueDate:  "2021/11/29 09:33",
			Products:   restockProducts(),
			SupplierID: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, 42, order.ID)
		assert.Equal(t, domain.RestockStateIssued, order.State)
		require.NotNil(t, orders.lastSaved)
		assert.Empty(t, order.GetDomainEvents())
		assert.Len(t, publisher.published, 1)
	})

	t.Run("unknown supplier", func(t *testing.T) {
		suppliers := &mockSupplierRepo{
			existsFn: func(context.Context, int) (bool, error) { return false, nil },
		}
		service := NewRestockOrderService(&mockOrderRepo{}, suppliers, &mockSKUItemRepo{}, nil, nil, testLogger())

		_, err := service.Create(context.Background(), CreateRestockOrderCommand{
			IssueDate:  "2021/11/29",
			Products:   restockProducts(),
			SupplierID: 99,
		})
		appErr := requireAppError(t, err, http.StatusNotFound)
		assert.Equal(t, apperrors.CodeDependencyViolation, appErr.Code)
	})

	t.Run("invalid issue date", func(t *testing.T) {
		service := NewRestockOrderService(&mockOrderRepo{}, &mockSupplierRepo{}, &mockSKUItemRepo{}, nil, nil, testLogger())

		_, err := service.Create(context.Background(), CreateRestockOrderCommand{
			IssueDate:  "29/11/2021",
			Products:   restockProducts(),
			SupplierID: 1,
		})
		requireAppError(t, err, http.StatusUnprocessableEntity)
	})

	t.Run("supplier lookup failure", func(t *testing.T) {
		suppliers := &mockSupplierRepo{
			existsFn: func(context.Context, int) (bool, error) { return false, errors.New("connection reset") },
		}
		service := NewRestockOrderService(&mockOrderRepo{}, suppliers, &mockSKUItemRepo{}, nil, nil, testLogger())

		_, err := service.Create(context.Background(), CreateRestockOrderCommand{
			IssueDate:  "2021/11/29",
			Products:   restockProducts(),
			SupplierID: 1,
		})
		requireAppError(t, err, http.StatusServiceUnavailable)
	})
}

func TestRestockOrderServiceGet(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		stored := storedRestockOrder(t, domain.RestockStateIssued)
		orders := &mockOrderRepo{
			findByIDFn: func(_ context.Context, id int) (*domain.RestockOrder, error) {
				assert.Equal(t, 1, id)
				return stored, nil
			},
		}
		service := NewRestockOrderService(orders, &mockSupplierRepo{}, &mockSKUItemRepo{}, nil, nil, testLogger())

		order, err := service.Get(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, stored, order)
	})

	t.Run("absent", func(t *testing.T) {
		service := NewRestockOrderService(&mockOrderRepo{}, &mockSupplierRepo{}, &mockSKUItemRepo{}, nil, nil, testLogger())

		_, err := service.Get(context.Background(), 7)
		appErr := requireAppError(t, err, http.StatusNotFound)
		assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
	})
}

func TestRestockOrderServiceChangeState(t *testing.T) {
	t.Run("moves order and persists", func(t *testing.T) {
		stored := storedRestockOrder(t, domain.RestockStateIssued)
		orders := &mockOrderRepo{
			findByIDFn: func(context.Context, int) (*domain.RestockOrder, error) { return stored, nil },
		}
		publisher := &mockPublisher{}
		service := NewRestockOrderService(orders, &mockSupplierRepo{}, &mockSKUItemRepo{}, publisher, nil, testLogger())

		order, err := service.ChangeState(context.Background(), ChangeRestockStateCommand{
			OrderID:  1,
			NewState: "delivery",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.RestockStateDelivery, order.State)
		require.NotNil(t, orders.lastSaved)
		require.Len(t, publisher.published, 1)
		changed, ok := publisher.published[0].(*domain.RestockOrderStateChangedEvent)
		require.True(t, ok)
		assert.Equal(t, string(domain.RestockStateIssued), changed.FromState)
	})

	t.Run("unknown token", func(t *testing.T) {
		service := NewRestockOrderService(&mockOrderRepo{}, &mockSupplierRepo{}, &mockSKUItemRepo{}, nil, nil, testLogger())

		_, err := service.ChangeState(context.Background(), ChangeRestockStateCommand{OrderID: 1, NewState: "SHIPPED"})
		requireAppError(t, err, http.StatusUnprocessableEntity)
	})

	t.Run("completed requires delivered items", func(t *testing.T) {
		stored := storedRestockOrder(t, domain.RestockStateTested)
		orders := &mockOrderRepo{
			findByIDFn: func(context.Context, int) (*domain.RestockOrder, error) { return stored, nil },
		}
		service := NewRestockOrderService(orders, &mockSupplierRepo{}, &mockSKUItemRepo{}, nil, nil, testLogger())

		_, err := service.ChangeState(context.Background(), ChangeRestockStateCommand{
			OrderID:  1,
			NewState: "COMPLETED",
		})
		appErr := requireAppError(t, err, http.StatusUnprocessableEntity)
		assert.Equal(t, apperrors.CodeValidationError, appErr.Code)
		assert.Nil(t, orders.lastSaved)
	})

	t.Run("completed rejects malformed item", func(t *testing.T) {
		stored := storedRestockOrder(t, domain.RestockStateTested)
		orders := &mockOrderRepo{
			findByIDFn: func(context.Context, int) (*domain.RestockOrder, error) { return stored, nil },
		}
		service := NewRestockOrderService(orders, &mockSupplierRepo{}, &mockSKUItemRepo{}, nil, nil, testLogger())

		_, err := service.ChangeState(context.Background(), ChangeRestockStateCommand{
			OrderID:  1,
			NewState: "COMPLETED",
			SKUItems: []domain.SKUItemRef{{SKUID: 1, RFID: "short"}},
		})
		requireAppError(t, err, http.StatusUnprocessableEntity)
		assert.Nil(t, orders.lastSaved)
	})

	t.Run("completed stores delivered items", func(t *testing.T) {
		stored := storedRestockOrder(t, domain.RestockStateTested)
		orders := &mockOrderRepo{
			findByIDFn: func(context.Context, int) (*domain.RestockOrder, error) { return stored, nil },
		}
		service := NewRestockOrderService(orders, &mockSupplierRepo{}, &mockSKUItemRepo{}, nil, nil, testLogger())

		order, err := service.ChangeState(context.Background(), ChangeRestockStateCommand{
			OrderID:  1,
			NewState: "COMPLETED",
			SKUItems: []domain.SKUItemRef{{SKUID: 1, RFID: testRFID}},
		})
		require.NoError(t, err)
		assert.Equal(t, domain.RestockStateCompleted, order.State)
		require.Len(t, order.SKUItems, 1)
		assert.Equal(t, testRFID, order.SKUItems[0].RFID)
		require.NotNil(t, orders.lastSaved)
		require.Len(t, orders.lastSaved.SKUItems, 1)
		assert.Equal(t, testRFID, orders.lastSaved.SKUItems[0].RFID)
	})
}

func TestRestockOrderServiceAttachSKUItems(t *testing.T) {
	t.Run("appends to DELIVERED order", func(t *testing.T) {
		stored := storedRestockOrder(t, domain.RestockStateDelivered)
		orders := &mockOrderRepo{
			findByIDFn: func(context.Context, int) (*domain.RestockOrder, error) { return stored, nil },
		}
		service := NewRestockOrderService(orders, &mockSupplierRepo{}, &mockSKUItemRepo{}, nil, nil, testLogger())

		order, err := service.AttachSKUItems(context.Background(), AttachSKUItemsCommand{
			OrderID:  1,
			SKUItems: []domain.SKUItemRef{{SKUID: 1, ItemID: 10, RFID: testRFID}},
		})
		require.NoError(t, err)
		assert.Len(t, order.SKUItems, 1)
		require.NotNil(t, orders.lastSaved)
	})

	t.Run("rejected outside DELIVERED", func(t *testing.T) {
		stored := storedRestockOrder(t, domain.RestockStateIssued)
		orders := &mockOrderRepo{
			findByIDFn: func(context.Context, int) (*domain.RestockOrder, error) { return stored, nil },
		}
		service := NewRestockOrderService(orders, &mockSupplierRepo{}, &mockSKUItemRepo{}, nil, nil, testLogger())

		_, err := service.AttachSKUItems(context.Background(), AttachSKUItemsCommand{
			OrderID:  1,
			SKUItems: []domain.SKUItemRef{{SKUID: 1, ItemID: 10, RFID: testRFID}},
		})
		appErr := requireAppError(t, err, http.StatusUnprocessableEntity)
		assert.Equal(t, apperrors.CodeInvalidState, appErr.Code)
	})
}

func TestRestockOrderServiceAttachTransportNote(t *testing.T) {
	t.Run("records note on DELIVERY order", func(t *testing.T) {
		stored := storedRestockOrder(t, domain.RestockStateDelivery)
		orders := &mockOrderRepo{
			findByIDFn: func(context.Context, int) (*domain.RestockOrder, error) { return stored, nil },
		}
		service := NewRestockOrderService(orders, &mockSupplierRepo{}, &mockSKUItemRepo{}, nil, nil, testLogger())

		order, err := service.AttachTransportNote(context.Background(), AttachTransportNoteCommand{
			OrderID:       1,
			TransportNote: domain.TransportNote{DeliveryDate: "2021/12/29"},
		})
		require.NoError(t, err)
		require.NotNil(t, order.TransportNote)
		assert.Equal(t, "2021/12/29", order.TransportNote.DeliveryDate)
	})

	t.Run("delivery date before issue date", func(t *testing.T) {
		stored := storedRestockOrder(t, domain.RestockStateDelivery)
		orders := &mockOrderRepo{
			findByIDFn: func(context.Context, int) (*domain.RestockOrder, error) { return stored, nil },
		}
		service := NewRestockOrderService(orders, &mockSupplierRepo{}, &mockSKUItemRepo{}, nil, nil, testLogger())

		_, err := service.AttachTransportNote(context.Background(), AttachTransportNoteCommand{
			OrderID:       1,
			TransportNote: domain.TransportNote{DeliveryDate: "2021/11/28"},
		})
		appErr := requireAppError(t, err, http.StatusUnprocessableEntity)
		assert.Equal(t, apperrors.CodeInvalidState, appErr.Code)
	})
}

func TestRestockOrderServiceDelete(t *testing.T) {
	orders := &mockOrderRepo{}
	publisher := &mockPublisher{}
	service := NewRestockOrderService(orders, &mockSupplierRepo{}, &mockSKUItemRepo{}, publisher, nil, testLogger())

	// No existence check: deleting twice is fine
	require.NoError(t, service.Delete(context.Background(), 5))
	require.NoError(t, service.Delete(context.Background(), 5))

	assert.Equal(t, []int{5, 5}, orders.deleted)
	require.Len(t, publisher.published, 2)
	deleted, ok := publisher.published[0].(*domain.RestockOrderDeletedEvent)
	require.True(t, ok)
	assert.Equal(t, 5, deleted.OrderID)
}

func TestRestockOrderServiceListReturnItems(t *testing.T) {
	setup := func(t *testing.T) *domain.RestockOrder {
		t.Helper()
		order := storedRestockOrder(t, domain.RestockStateDelivered)
		require.NoError(t, order.AttachSKUItems([]domain.SKUItemRef{
			{SKUID: 1, ItemID: 10, RFID: testRFID},
			{SKUID: 2, ItemID: 11, RFID: testRFIDOther},
		}))
		require.NoError(t, order.ChangeState(domain.RestockStateCompletedReturn, nil))
		order.ClearDomainEvents()
		return order
	}

	t.Run("returns only failed instances", func(t *testing.T) {
		stored := setup(t)
		orders := &mockOrderRepo{
			findByIDFn: func(context.Context, int) (*domain.RestockOrder, error) { return stored, nil },
		}
		skuItems := &mockSKUItemRepo{
			findByRFIDsFn: func(_ context.Context, rfids []string) ([]*domain.SKUItem, error) {
				assert.ElementsMatch(t, []string{testRFID, testRFIDOther}, rfids)
				failed, err := domain.NewSKUItem(testRFID, 1, "")
				require.NoError(t, err)
				passed, err := domain.NewSKUItem(testRFIDOther, 2, "")
				require.NoError(t, err)
				passed.Available = 1
				return []*domain.SKUItem{failed, passed}, nil
			},
		}
		publisher := &mockPublisher{}
		service := NewRestockOrderService(orders, &mockSupplierRepo{}, skuItems, publisher, nil, testLogger())

		returned, err := service.ListReturnItems(context.Background(), 1)
		require.NoError(t, err)
		require.Len(t, returned, 1)
		assert.Equal(t, testRFID, returned[0].RFID)
		require.Len(t, publisher.published, 1)
	})

	t.Run("no failed instances", func(t *testing.T) {
		stored := setup(t)
		orders := &mockOrderRepo{
			findByIDFn: func(context.Context, int) (*domain.RestockOrder, error) { return stored, nil },
		}
		skuItems := &mockSKUItemRepo{
			findByRFIDsFn: func(context.Context, []string) ([]*domain.SKUItem, error) {
				first, err := domain.NewSKUItem(testRFID, 1, "")
				require.NoError(t, err)
				first.Available = 1
				second, err := domain.NewSKUItem(testRFIDOther, 2, "")
				require.NoError(t, err)
				second.Available = 1
				return []*domain.SKUItem{first, second}, nil
			},
		}
		service := NewRestockOrderService(orders, &mockSupplierRepo{}, skuItems, nil, nil, testLogger())

		returned, err := service.ListReturnItems(context.Background(), 1)
		require.NoError(t, err)
		assert.NotNil(t, returned)
		assert.Empty(t, returned)
	})

	t.Run("rejected outside COMPLETEDRETURN", func(t *testing.T) {
		stored := storedRestockOrder(t, domain.RestockStateCompleted)
		orders := &mockOrderRepo{
			findByIDFn: func(context.Context, int) (*domain.RestockOrder, error) { return stored, nil },
		}
		service := NewRestockOrderService(orders, &mockSupplierRepo{}, &mockSKUItemRepo{}, nil, nil, testLogger())

		_, err := service.ListReturnItems(context.Background(), 1)
		appErr := requireAppError(t, err, http.StatusUnprocessableEntity)
		assert.Equal(t, apperrors.CodeInvalidState, appErr.Code)
	})
}
