package application

import (
	"context"
	"time"

	"github.com/wms-platform/services/restock-service/internal/domain"
	apperrors "github.com/wms-platform/services/restock-service/pkg/errors"
	"github.com/wms-platform/services/restock-service/pkg/logging"
)

// SKUItemService handles physical item instance operations
type SKUItemService struct {
	items     domain.SKUItemRepository
	skus      domain.SKURepository
	publisher domain.EventPublisher
	logger    *logging.Logger
}

// NewSKUItemService creates a new SKUItemService
func NewSKUItemService(
	items domain.SKUItemRepository,
	skus domain.SKURepository,
	publisher domain.EventPublisher,
	logger *logging.Logger,
) *SKUItemService {
	return &SKUItemService{
		items:     items,
		skus:      skus,
		publisher: publisher,
		logger:    logger,
	}
}

// Create registers a new physical instance. The referenced SKU must exist.
func (s *SKUItemService) Create(ctx context.Context, cmd CreateSKUItemCommand) (*domain.SKUItem, error) {
	sku, err := s.skus.FindByID(ctx, cmd.SKUID)
	if err != nil {
		return nil, apperrors.ErrPersistence(err)
	}
	if sku == nil {
		return nil, apperrors.ErrNotFoundWithID("sku", itoa(cmd.SKUID))
	}

	item, err := domain.NewSKUItem(cmd.RFID, cmd.SKUID, cmd.DateOfStock)
	if err != nil {
		return nil, mapDomainError(err)
	}

	if err := s.items.Save(ctx, item); err != nil {
		return nil, apperrors.ErrPersistence(err)
	}

	s.publishEvents(ctx, item.GetDomainEvents())
	item.ClearDomainEvents()

	s.logger.Info("Stocked sku item", "rfid", item.RFID, "skuId", item.SKUID)
	return item, nil
}

// Get retrieves a physical instance by RFID
func (s *SKUItemService) Get(ctx context.Context, rfid string) (*domain.SKUItem, error) {
	item, err := s.items.FindByRFID(ctx, rfid)
	if err != nil {
		return nil, apperrors.ErrPersistence(err)
	}
	if item == nil {
		return nil, apperrors.ErrNotFoundWithID("sku item", rfid)
	}
	return item, nil
}

// List retrieves all physical instances
func (s *SKUItemService) List(ctx context.Context) ([]*domain.SKUItem, error) {
	items, err := s.items.FindAll(ctx)
	if err != nil {
		return nil, apperrors.ErrPersistence(err)
	}
	return items, nil
}

// ListAvailableBySKU retrieves the available instances of a SKU. The SKU
// must exist.
func (s *SKUItemService) ListAvailableBySKU(ctx context.Context, skuID int) ([]*domain.SKUItem, error) {
	sku, err := s.skus.FindByID(ctx, skuID)
	if err != nil {
		return nil, apperrors.ErrPersistence(err)
	}
	if sku == nil {
		return nil, apperrors.ErrNotFoundWithID("sku", itoa(skuID))
	}

	items, err := s.items.FindAvailableBySKU(ctx, skuID)
	if err != nil {
		return nil, apperrors.ErrPersistence(err)
	}
	return items, nil
}

// Modify updates a physical instance, possibly relabeling its RFID
func (s *SKUItemService) Modify(ctx context.Context, cmd ModifySKUItemCommand) (*domain.SKUItem, error) {
	item, err := s.Get(ctx, cmd.RFID)
	if err != nil {
		return nil, err
	}

	if err := item.Update(cmd.NewRFID, cmd.NewAvailable, cmd.NewDateOfStock); err != nil {
		return nil, mapDomainError(err)
	}

	if err := s.items.Replace(ctx, cmd.RFID, item); err != nil {
		return nil, apperrors.ErrPersistence(err)
	}

	s.publishEvents(ctx, item.GetDomainEvents())
	item.ClearDomainEvents()

	s.logger.Info("Modified sku item", "rfid", item.RFID, "previousRfid", cmd.RFID)
	return item, nil
}

// Delete removes a physical instance. Deleting an absent RFID is not an
// error.
func (s *SKUItemService) Delete(ctx context.Context, rfid string) error {
	if err := s.items.Delete(ctx, rfid); err != nil {
		return apperrors.ErrPersistence(err)
	}

	s.publishEvents(ctx, []domain.DomainEvent{
		&domain.SKUItemDeletedEvent{RFID: rfid, OccurredAt_: time.Now().UTC()},
	})

	s.logger.Info("Deleted sku item", "rfid", rfid)
	return nil
}

func (s *SKUItemService) publishEvents(ctx context.Context, events []domain.DomainEvent) {
	if s.publisher == nil || len(events) == 0 {
		return
	}
	if err := s.publisher.PublishAll(ctx, events); err != nil {
		s.logger.WithError(err).Warn("Failed to publish sku item events")
	}
}
