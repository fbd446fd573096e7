package application

import (
	"context"

	"github.com/wms-platform/services/restock-service/internal/domain"
	"github.com/wms-platform/services/restock-service/pkg/logging"
)

type mockOrderRepo struct {
	nextIDFn      func(context.Context) (int, error)
	saveFn        func(context.Context, *domain.RestockOrder) error
	findByIDFn    func(context.Context, int) (*domain.RestockOrder, error)
	findAllFn     func(context.Context) ([]*domain.RestockOrder, error)
	findByStateFn func(context.Context, domain.RestockOrderState) ([]*domain.RestockOrder, error)
	deleteFn      func(context.Context, int) error

	lastSaved *domain.RestockOrder
	deleted   []int
}

func (m *mockOrderRepo) NextID(ctx context.Context) (int, error) {
	if m.nextIDFn != nil {
		return m.nextIDFn(ctx)
	}
	return 1, nil
}

func (m *mockOrderRepo) Save(ctx context.Context, order *domain.RestockOrder) error {
	m.lastSaved = order
	if m.saveFn != nil {
		return m.saveFn(ctx, order)
	}
	return nil
}

func (m *mockOrderRepo) FindByID(ctx context.Context, id int) (*domain.RestockOrder, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockOrderRepo) FindAll(ctx context.Context) ([]*domain.RestockOrder, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}

func (m *mockOrderRepo) FindByState(ctx context.Context, state domain.RestockOrderState) ([]*domain.RestockOrder, error) {
	if m.findByStateFn != nil {
		return m.findByStateFn(ctx, state)
	}
	return nil, nil
}

func (m *mockOrderRepo) Delete(ctx context.Context, id int) error {
	m.deleted = append(m.deleted, id)
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockSKURepo struct {
	nextIDFn         func(context.Context) (int, error)
	saveFn           func(context.Context, *domain.SKU) error
	findByIDFn       func(context.Context, int) (*domain.SKU, error)
	findAllFn        func(context.Context) ([]*domain.SKU, error)
	findByPositionFn func(context.Context, string) (*domain.SKU, error)
	deleteFn         func(context.Context, int) error

	lastSaved *domain.SKU
	deleted   []int
}

func (m *mockSKURepo) NextID(ctx context.Context) (int, error) {
	if m.nextIDFn != nil {
		return m.nextIDFn(ctx)
	}
	return 1, nil
}

func (m *mockSKURepo) Save(ctx context.Context, sku *domain.SKU) error {
	m.lastSaved = sku
	if m.saveFn != nil {
		return m.saveFn(ctx, sku)
	}
	return nil
}

func (m *mockSKURepo) FindByID(ctx context.Context, id int) (*domain.SKU, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockSKURepo) FindAll(ctx context.Context) ([]*domain.SKU, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}

func (m *mockSKURepo) FindByPosition(ctx context.Context, positionID string) (*domain.SKU, error) {
	if m.findByPositionFn != nil {
		return m.findByPositionFn(ctx, positionID)
	}
	return nil, nil
}

func (m *mockSKURepo) Delete(ctx context.Context, id int) error {
	m.deleted = append(m.deleted, id)
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockPositionRepo struct {
	insertFn   func(context.Context, *domain.Position) error
	saveFn     func(context.Context, *domain.Position) error
	findByIDFn func(context.Context, string) (*domain.Position, error)
	findAllFn  func(context.Context) ([]*domain.Position, error)
	replaceFn  func(context.Context, string, *domain.Position) error
	deleteFn   func(context.Context, string) error

	inserted []*domain.Position
	saved    []*domain.Position
	deleted  []string
}

func (m *mockPositionRepo) Insert(ctx context.Context, position *domain.Position) error {
	m.inserted = append(m.inserted, position)
	if m.insertFn != nil {
		return m.insertFn(ctx, position)
	}
	return nil
}

func (m *mockPositionRepo) Save(ctx context.Context, position *domain.Position) error {
	m.saved = append(m.saved, position)
	if m.saveFn != nil {
		return m.saveFn(ctx, position)
	}
	return nil
}

func (m *mockPositionRepo) FindByID(ctx context.Context, positionID string) (*domain.Position, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, positionID)
	}
	return nil, nil
}

func (m *mockPositionRepo) FindAll(ctx context.Context) ([]*domain.Position, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}

func (m *mockPositionRepo) Replace(ctx context.Context, oldID string, position *domain.Position) error {
	if m.replaceFn != nil {
		return m.replaceFn(ctx, oldID, position)
	}
	return nil
}

func (m *mockPositionRepo) Delete(ctx context.Context, positionID string) error {
	m.deleted = append(m.deleted, positionID)
	if m.deleteFn != nil {
		return m.deleteFn(ctx, positionID)
	}
	return nil
}

type mockSKUItemRepo struct {
	saveFn          func(context.Context, *domain.SKUItem) error
	findByRFIDFn    func(context.Context, string) (*domain.SKUItem, error)
	findAllFn       func(context.Context) ([]*domain.SKUItem, error)
	findAvailableFn func(context.Context, int) ([]*domain.SKUItem, error)
	findByRFIDsFn   func(context.Context, []string) ([]*domain.SKUItem, error)
	replaceFn       func(context.Context, string, *domain.SKUItem) error
	deleteFn        func(context.Context, string) error

	lastSaved *domain.SKUItem
	deleted   []string
}

func (m *mockSKUItemRepo) Save(ctx context.Context, item *domain.SKUItem) error {
	m.lastSaved = item
	if m.saveFn != nil {
		return m.saveFn(ctx, item)
	}
	return nil
}

func (m *mockSKUItemRepo) FindByRFID(ctx context.Context, rfid string) (*domain.SKUItem, error) {
	if m.findByRFIDFn != nil {
		return m.findByRFIDFn(ctx, rfid)
	}
	return nil, nil
}

func (m *mockSKUItemRepo) FindAll(ctx context.Context) ([]*domain.SKUItem, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}

func (m *mockSKUItemRepo) FindAvailableBySKU(ctx context.Context, skuID int) ([]*domain.SKUItem, error) {
	if m.findAvailableFn != nil {
		return m.findAvailableFn(ctx, skuID)
	}
	return nil, nil
}

func (m *mockSKUItemRepo) FindByRFIDs(ctx context.Context, rfids []string) ([]*domain.SKUItem, error) {
	if m.findByRFIDsFn != nil {
		return m.findByRFIDsFn(ctx, rfids)
	}
	return nil, nil
}

func (m *mockSKUItemRepo) Replace(ctx context.Context, oldRFID string, item *domain.SKUItem) error {
	if m.replaceFn != nil {
		return m.replaceFn(ctx, oldRFID, item)
	}
	return nil
}

func (m *mockSKUItemRepo) Delete(ctx context.Context, rfid string) error {
	m.deleted = append(m.deleted, rfid)
	if m.deleteFn != nil {
		return m.deleteFn(ctx, rfid)
	}
	return nil
}

type mockInternalOrderRepo struct {
	nextIDFn      func(context.Context) (int, error)
	saveFn        func(context.Context, *domain.InternalOrder) error
	findByIDFn    func(context.Context, int) (*domain.InternalOrder, error)
	findAllFn     func(context.Context) ([]*domain.InternalOrder, error)
	findByStateFn func(context.Context, domain.InternalOrderState) ([]*domain.InternalOrder, error)
	deleteFn      func(context.Context, int) error

	lastSaved *domain.InternalOrder
	deleted   []int
}

func (m *mockInternalOrderRepo) NextID(ctx context.Context) (int, error) {
	if m.nextIDFn != nil {
		return m.nextIDFn(ctx)
	}
	return 1, nil
}

func (m *mockInternalOrderRepo) Save(ctx context.Context, order *domain.InternalOrder) error {
	m.lastSaved = order
	if m.saveFn != nil {
		return m.saveFn(ctx, order)
	}
	return nil
}

func (m *mockInternalOrderRepo) FindByID(ctx context.Context, id int) (*domain.InternalOrder, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockInternalOrderRepo) FindAll(ctx context.Context) ([]*domain.InternalOrder, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}

func (m *mockInternalOrderRepo) FindByState(ctx context.Context, state domain.InternalOrderState) ([]*domain.InternalOrder, error) {
	if m.findByStateFn != nil {
		return m.findByStateFn(ctx, state)
	}
	return nil, nil
}

func (m *mockInternalOrderRepo) Delete(ctx context.Context, id int) error {
	m.deleted = append(m.deleted, id)
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockSupplierRepo struct {
	existsFn func(context.Context, int) (bool, error)
}

func (m *mockSupplierRepo) Exists(ctx context.Context, supplierID int) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, supplierID)
	}
	return true, nil
}

type mockPublisher struct {
	publishAllFn func(context.Context, []domain.DomainEvent) error

	published []domain.DomainEvent
}

func (m *mockPublisher) Publish(ctx context.Context, event domain.DomainEvent) error {
	return m.PublishAll(ctx, []domain.DomainEvent{event})
}

func (m *mockPublisher) PublishAll(ctx context.Context, events []domain.DomainEvent) error {
	m.published = append(m.published, events...)
	if m.publishAllFn != nil {
		return m.publishAllFn(ctx, events)
	}
	return nil
}

func testLogger() *logging.Logger {
	cfg := logging.DefaultConfig("restock-service-test")
	cfg.Level = logging.LogLevel("error")
	return logging.New(cfg)
}
