package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wms-platform/services/restock-service/internal/api/dto"
	"github.com/wms-platform/services/restock-service/internal/application"
	"github.com/wms-platform/services/restock-service/internal/domain"
)

const (
	testRFID      = "12345678901234567890123456789012"
	testRFIDOther = "00000000000000000000000000000001"
)

func restockRouter(orders *stubOrderRepo, suppliers *stubSupplierRepo, skuItems *stubSKUItemRepo) *gin.Engine {
	service := application.NewRestockOrderService(orders, suppliers, skuItems, nil, nil, newTestLogger())
	return newTestRouter(func(api *gin.RouterGroup) {
		NewRestockOrderHandler(service, newTestLogger()).RegisterRoutes(api)
	})
}

func deliveredOrder(t *testing.T) *domain.RestockOrder {
	t.Helper()
	order, err := domain.NewRestockOrder(1, "2021/11/29 09:33", []domain.ProductLine{
		{SKUID: 1, ItemID: 10, Description: "bolt M6", Price: 0.25, Qty: 100},
	}, 1)
	require.NoError(t, err)
	require.NoError(t, order.ChangeState(domain.RestockStateDelivered, nil))
	order.ClearDomainEvents()
	return order
}

func TestRestockOrderHandlerCreate(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		orders := &stubOrderRepo{
			nextIDFn: func(context.Context) (int, error) { return 7, nil },
		}
		router := restockRouter(orders, &stubSupplierRepo{}, &stubSKUItemRepo{})

		rec := performRequest(router, http.MethodPost, "/api/restockOrder",
			`{"issueDate":"2021/11/29 09:33","products":[{"SKUId":1,"itemId":10,"description":"bolt M6","price":0.25,"qty":100}],"supplierId":1}`)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp dto.RestockOrderResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 7, resp.ID)
		assert.Equal(t, "ISSUED", resp.State)
		require.Len(t, resp.Products, 1)
		assert.NotNil(t, orders.lastSaved)
	})

	t.Run("missing products", func(t *testing.T) {
		router := restockRouter(&stubOrderRepo{}, &stubSupplierRepo{}, &stubSKUItemRepo{})

		rec := performRequest(router, http.MethodPost, "/api/restockOrder",
			`{"issueDate":"2021/11/29","supplierId":1}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("future issue date", func(t *testing.T) {
		router := restockRouter(&stubOrderRepo{}, &stubSupplierRepo{}, &stubSKUItemRepo{})

		rec := performRequest(router, http.MethodPost, "/api/restockOrder",
			`{"issueDate":"2099/01/01","products":[{"SKUId":1,"itemId":10,"description":"bolt M6","price":0.25,"qty":100}],"supplierId":1}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("unknown supplier", func(t *testing.T) {
		suppliers := &stubSupplierRepo{
			existsFn: func(context.Context, int) (bool, error) { return false, nil },
		}
		router := restockRouter(&stubOrderRepo{}, suppliers, &stubSKUItemRepo{})

		rec := performRequest(router, http.MethodPost, "/api/restockOrder",
			`{"issueDate":"2021/11/29","products":[{"SKUId":1,"itemId":10,"description":"bolt M6","price":0.25,"qty":100}],"supplierId":99}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRestockOrderHandlerGet(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		stored := deliveredOrder(t)
		orders := &stubOrderRepo{
			findByIDFn: func(context.Context, int) (*domain.RestockOrder, error) { return stored, nil },
		}
		router := restockRouter(orders, &stubSupplierRepo{}, &stubSKUItemRepo{})

		rec := performRequest(router, http.MethodGet, "/api/restockOrders/1", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp dto.RestockOrderResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "DELIVERED", resp.State)
	})

	t.Run("absent", func(t *testing.T) {
		router := restockRouter(&stubOrderRepo{}, &stubSupplierRepo{}, &stubSKUItemRepo{})

		rec := performRequest(router, http.MethodGet, "/api/restockOrders/9", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		router := restockRouter(&stubOrderRepo{}, &stubSupplierRepo{}, &stubSKUItemRepo{})

		rec := performRequest(router, http.MethodGet, "/api/restockOrders/abc", "")
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestRestockOrderHandlerList(t *testing.T) {
	stored := deliveredOrder(t)
	orders := &stubOrderRepo{
		findAllFn: func(context.Context) ([]*domain.RestockOrder, error) {
			return []*domain.RestockOrder{stored}, nil
		},
	}
	router := restockRouter(orders, &stubSupplierRepo{}, &stubSKUItemRepo{})

	rec := performRequest(router, http.MethodGet, "/api/restockOrders", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []dto.RestockOrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
}

func TestRestockOrderHandlerChangeState(t *testing.T) {
	t.Run("completed without products", func(t *testing.T) {
		stored := deliveredOrder(t)
		orders := &stubOrderRepo{
			findByIDFn: func(context.Context, int) (*domain.RestockOrder, error) { return stored, nil },
		}
		router := restockRouter(orders, &stubSupplierRepo{}, &stubSKUItemRepo{})

		rec := performRequest(router, http.MethodPut, "/api/restockOrder/1",
			`{"newState":"COMPLETED"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("completed stores supplied items", func(t *testing.T) {
		stored := deliveredOrder(t)
		orders := &stubOrderRepo{
			findByIDFn: func(context.Context, int) (*domain.RestockOrder, error) { return stored, nil },
		}
		router := restockRouter(orders, &stubSupplierRepo{}, &stubSKUItemRepo{})

		rec := performRequest(router, http.MethodPut, "/api/restockOrder/1",
			`{"newState":"COMPLETED","products":[{"SKUId":1,"RFID":"`+testRFID+`"}]}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp dto.RestockOrderResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "COMPLETED", resp.State)
		require.Len(t, resp.SKUItems, 1)
		assert.Equal(t, testRFID, resp.SKUItems[0].RFID)
	})

	t.Run("valid transition", func(t *testing.T) {
		stored := deliveredOrder(t)
		orders := &stubOrderRepo{
			findByIDFn: func(context.Context, int) (*domain.RestockOrder, error) { return stored, nil },
		}
		router := restockRouter(orders, &stubSupplierRepo{}, &stubSKUItemRepo{})

		rec := performRequest(router, http.MethodPut, "/api/restockOrder/1",
			`{"newState":"TESTED"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp dto.RestockOrderResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "TESTED", resp.State)
	})
}

func TestRestockOrderHandlerAttachSKUItems(t *testing.T) {
	stored := deliveredOrder(t)
	orders := &stubOrderRepo{
		findByIDFn: func(context.Context, int) (*domain.RestockOrder, error) { return stored, nil },
	}
	router := restockRouter(orders, &stubSupplierRepo{}, &stubSKUItemRepo{})

	rec := performRequest(router, http.MethodPut, "/api/restockOrder/1/skuItems",
		`{"skuItems":[{"SKUId":1,"itemId":10,"rfid":"`+testRFID+`"}]}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.RestockOrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.SKUItems, 1)
	assert.Equal(t, testRFID, resp.SKUItems[0].RFID)
}

func TestRestockOrderHandlerDelete(t *testing.T) {
	orders := &stubOrderRepo{}
	router := restockRouter(orders, &stubSupplierRepo{}, &stubSKUItemRepo{})

	rec := performRequest(router, http.MethodDelete, "/api/restockOrder/4", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []int{4}, orders.deleted)
}

func TestRestockOrderHandlerListReturnItems(t *testing.T) {
	stored := deliveredOrder(t)
	require.NoError(t, stored.AttachSKUItems([]domain.SKUItemRef{
		{SKUID: 1, ItemID: 10, RFID: testRFID},
		{SKUID: 2, ItemID: 11, RFID: testRFIDOther},
	}))
	require.NoError(t, stored.ChangeState(domain.RestockStateCompletedReturn, nil))
	stored.ClearDomainEvents()

	orders := &stubOrderRepo{
		findByIDFn: func(context.Context, int) (*domain.RestockOrder, error) { return stored, nil },
	}
	skuItems := &stubSKUItemRepo{
		findByRFIDsFn: func(context.Context, []string) ([]*domain.SKUItem, error) {
			failed, err := domain.NewSKUItem(testRFID, 1, "")
			if err != nil {
				return nil, err
			}
			passed, err := domain.NewSKUItem(testRFIDOther, 2, "")
			if err != nil {
				return nil, err
			}
			passed.Available = 1
			return []*domain.SKUItem{failed, passed}, nil
		},
	}
	router := restockRouter(orders, &stubSupplierRepo{}, skuItems)

	rec := performRequest(router, http.MethodGet, "/api/restockOrders/1/returnItems", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []dto.ReturnItemResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, testRFID, resp[0].RFID)
}
