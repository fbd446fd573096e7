package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"

	"github.com/wms-platform/services/restock-service/internal/domain"
	"github.com/wms-platform/services/restock-service/pkg/logging"
	"github.com/wms-platform/services/restock-service/pkg/middleware"
)

type stubOrderRepo struct {
	nextIDFn      func(context.Context) (int, error)
	findByIDFn    func(context.Context, int) (*domain.RestockOrder, error)
	findAllFn     func(context.Context) ([]*domain.RestockOrder, error)
	findByStateFn func(context.Context, domain.RestockOrderState) ([]*domain.RestockOrder, error)

	lastSaved *domain.RestockOrder
	deleted   []int
}

func (s *stubOrderRepo) NextID(ctx context.Context) (int, error) {
	if s.nextIDFn != nil {
		return s.nextIDFn(ctx)
	}
	return 1, nil
}

func (s *stubOrderRepo) Save(_ context.Context, order *domain.RestockOrder) error {
	s.lastSaved = order
	return nil
}

func (s *stubOrderRepo) FindByID(ctx context.Context, id int) (*domain.RestockOrder, error) {
	if s.findByIDFn != nil {
		return s.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (s *stubOrderRepo) FindAll(ctx context.Context) ([]*domain.RestockOrder, error) {
	if s.findAllFn != nil {
		return s.findAllFn(ctx)
	}
	return nil, nil
}

func (s *stubOrderRepo) FindByState(ctx context.Context, state domain.RestockOrderState) ([]*domain.RestockOrder, error) {
	if s.findByStateFn != nil {
		return s.findByStateFn(ctx, state)
	}
	return nil, nil
}

func (s *stubOrderRepo) Delete(_ context.Context, id int) error {
	s.deleted = append(s.deleted, id)
	return nil
}

type stubSupplierRepo struct {
	existsFn func(context.Context, int) (bool, error)
}

func (s *stubSupplierRepo) Exists(ctx context.Context, supplierID int) (bool, error) {
	if s.existsFn != nil {
		return s.existsFn(ctx, supplierID)
	}
	return true, nil
}

type stubSKUItemRepo struct {
	findByRFIDsFn func(context.Context, []string) ([]*domain.SKUItem, error)
}

func (s *stubSKUItemRepo) Save(context.Context, *domain.SKUItem) error { return nil }

func (s *stubSKUItemRepo) FindByRFID(context.Context, string) (*domain.SKUItem, error) {
	return nil, nil
}

func (s *stubSKUItemRepo) FindAll(context.Context) ([]*domain.SKUItem, error) { return nil, nil }

func (s *stubSKUItemRepo) FindAvailableBySKU(context.Context, int) ([]*domain.SKUItem, error) {
	return nil, nil
}

func (s *stubSKUItemRepo) FindByRFIDs(ctx context.Context, rfids []string) ([]*domain.SKUItem, error) {
	if s.findByRFIDsFn != nil {
		return s.findByRFIDsFn(ctx, rfids)
	}
	return nil, nil
}

func (s *stubSKUItemRepo) Replace(context.Context, string, *domain.SKUItem) error { return nil }

func (s *stubSKUItemRepo) Delete(context.Context, string) error { return nil }

type stubSKURepo struct {
	nextIDFn         func(context.Context) (int, error)
	findByIDFn       func(context.Context, int) (*domain.SKU, error)
	findAllFn        func(context.Context) ([]*domain.SKU, error)
	findByPositionFn func(context.Context, string) (*domain.SKU, error)

	lastSaved *domain.SKU
}

func (s *stubSKURepo) NextID(ctx context.Context) (int, error) {
	if s.nextIDFn != nil {
		return s.nextIDFn(ctx)
	}
	return 1, nil
}

func (s *stubSKURepo) Save(_ context.Context, sku *domain.SKU) error {
	s.lastSaved = sku
	return nil
}

func (s *stubSKURepo) FindByID(ctx context.Context, id int) (*domain.SKU, error) {
	if s.findByIDFn != nil {
		return s.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (s *stubSKURepo) FindAll(ctx context.Context) ([]*domain.SKU, error) {
	if s.findAllFn != nil {
		return s.findAllFn(ctx)
	}
	return nil, nil
}

func (s *stubSKURepo) FindByPosition(ctx context.Context, positionID string) (*domain.SKU, error) {
	if s.findByPositionFn != nil {
		return s.findByPositionFn(ctx, positionID)
	}
	return nil, nil
}

func (s *stubSKURepo) Delete(context.Context, int) error { return nil }

type stubPositionRepo struct {
	findByIDFn func(context.Context, string) (*domain.Position, error)
	findAllFn  func(context.Context) ([]*domain.Position, error)

	inserted []*domain.Position
	saved    []*domain.Position
}

func (s *stubPositionRepo) Insert(_ context.Context, position *domain.Position) error {
	s.inserted = append(s.inserted, position)
	return nil
}

func (s *stubPositionRepo) Save(_ context.Context, position *domain.Position) error {
	s.saved = append(s.saved, position)
	return nil
}

func (s *stubPositionRepo) FindByID(ctx context.Context, positionID string) (*domain.Position, error) {
	if s.findByIDFn != nil {
		return s.findByIDFn(ctx, positionID)
	}
	return nil, nil
}

func (s *stubPositionRepo) FindAll(ctx context.Context) ([]*domain.Position, error) {
	if s.findAllFn != nil {
		return s.findAllFn(ctx)
	}
	return nil, nil
}

func (s *stubPositionRepo) Replace(context.Context, string, *domain.Position) error { return nil }

func (s *stubPositionRepo) Delete(context.Context, string) error { return nil }

func newTestLogger() *logging.Logger {
	cfg := logging.DefaultConfig("restock-service-test")
	cfg.Level = logging.LogLevel("error")
	return logging.New(cfg)
}

func newTestRouter(register func(api *gin.RouterGroup)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	middleware.InitValidator()
	router := gin.New()
	register(router.Group("/api"))
	return router
}

func performRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
