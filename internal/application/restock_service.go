package application

import (
	"context"
	"time"

	"github.com/wms-platform/services/restock-service/internal/domain"
	apperrors "github.com/wms-platform/services/restock-service/pkg/errors"
	"github.com/wms-platform/services/restock-service/pkg/logging"
	"github.com/wms-platform/services/restock-service/pkg/metrics"
)

// RestockOrderService handles restock order operations
type RestockOrderService struct {
	orders    domain.RestockOrderRepository
	suppliers domain.SupplierRepository
	skuItems  domain.SKUItemRepository
	publisher domain.EventPublisher
	metrics   *metrics.Metrics
	logger    *logging.Logger
}

// NewRestockOrderService creates a new RestockOrderService
func NewRestockOrderService(
	orders domain.RestockOrderRepository,
	suppliers domain.SupplierRepository,
	skuItems domain.SKUItemRepository,
	publisher domain.EventPublisher,
	m *metrics.Metrics,
	logger *logging.Logger,
) *RestockOrderService {
	return &RestockOrderService{
		orders:    orders,
		suppliers: suppliers,
		skuItems:  skuItems,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
	}
}

// Create validates and persists a new restock order in state ISSUED
func (s *RestockOrderService) Create(ctx context.Context, cmd CreateRestockOrderCommand) (*domain.RestockOrder, error) {
	exists, err := s.suppliers.Exists(ctx, cmd.SupplierID)
	if err != nil {
		return nil, apperrors.ErrPersistence(err)
	}
	if !exists {
		return nil, mapDomainError(domain.ErrSupplierNotFound)
	}

	id, err := s.orders.NextID(ctx)
	if err != nil {
		return nil, apperrors.ErrPersistence(err)
	}

	order, err := domain.NewRestockOrder(id, cmd.IssueDate, cmd.Products, cmd.SupplierID)
	if err != nil {
		return nil, mapDomainError(err)
	}

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, apperrors.ErrPersistence(err)
	}

	s.publishEvents(ctx, order.GetDomainEvents())
	order.ClearDomainEvents()

	if s.metrics != nil {
		s.metrics.RecordRestockOrderCreated(itoa(order.SupplierID))
	}

	s.logger.Info("Created restock order",
		"orderId", order.ID,
		"supplierId", order.SupplierID,
		"lines", len(order.Products),
	)

	return order, nil
}

// Get retrieves a restock order by id
func (s *RestockOrderService) Get(ctx context.Context, id int) (*domain.RestockOrder, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.ErrPersistence(err)
	}
	if order == nil {
		return nil, apperrors.ErrNotFoundWithID("restock order", itoa(id))
	}
	return order, nil
}

// List retrieves all restock orders
func (s *RestockOrderService) List(ctx context.Context) ([]*domain.RestockOrder, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, apperrors.ErrPersistence(err)
	}
	return orders, nil
}

// ListIssued retrieves the restock orders still in state ISSUED
func (s *RestockOrderService) ListIssued(ctx context.Context) ([]*domain.RestockOrder, error) {
	orders, err := s.orders.FindByState(ctx, domain.RestockStateIssued)
	if err != nil {
		return nil, apperrors.ErrPersistence(err)
	}
	return orders, nil
}

// ChangeState moves an order to the requested state. A COMPLETED target
// must carry the delivered items, which are stored on the order.
func (s *RestockOrderService) ChangeState(ctx context.Context, cmd ChangeRestockStateCommand) (*domain.RestockOrder, error) {
	target, err := domain.ParseRestockOrderState(cmd.NewState)
	if err != nil {
		return nil, mapDomainError(err)
	}

	order, err := s.Get(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}

	from := order.State
	if err := order.ChangeState(target, cmd.SKUItems); err != nil {
		return nil, mapDomainError(err)
	}

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, apperrors.ErrPersistence(err)
	}

	s.publishEvents(ctx, order.GetDomainEvents())
	order.ClearDomainEvents()

	if s.metrics != nil {
		s.metrics.RecordStateTransition("restockOrder", string(from), string(target))
	}
	s.logger.StateTransition(ctx, "restockOrder", order.ID, string(from), string(target))

	return order, nil
}

// AttachSKUItems appends received items to a DELIVERED order
func (s *RestockOrderService) AttachSKUItems(ctx context.Context, cmd AttachSKUItemsCommand) (*domain.RestockOrder, error) {
	order, err := s.Get(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}

	if err := order.AttachSKUItems(cmd.SKUItems); err != nil {
		return nil, mapDomainError(err)
	}

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, apperrors.ErrPersistence(err)
	}

	s.publishEvents(ctx, order.GetDomainEvents())
	order.ClearDomainEvents()

	if s.metrics != nil {
		s.metrics.RecordSkuItemsAttached(len(cmd.SKUItems))
	}

	s.logger.Info("Attached sku items to restock order",
		"orderId", order.ID,
		"count", len(cmd.SKUItems),
	)

	return order, nil
}

// AttachTransportNote records the carrier's delivery note on a DELIVERY order
func (s *RestockOrderService) AttachTransportNote(ctx context.Context, cmd AttachTransportNoteCommand) (*domain.RestockOrder, error) {
	order, err := s.Get(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}

	if err := order.AttachTransportNote(cmd.TransportNote); err != nil {
		return nil, mapDomainError(err)
	}

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, apperrors.ErrPersistence(err)
	}

	s.publishEvents(ctx, order.GetDomainEvents())
	order.ClearDomainEvents()

	s.logger.Info("Attached transport note to restock order",
		"orderId", order.ID,
		"deliveryDate", cmd.TransportNote.DeliveryDate,
	)

	return order, nil
}

// Delete removes an order unconditionally. Deleting an absent order is
// not an error.
func (s *RestockOrderService) Delete(ctx context.Context, id int) error {
	if err := s.orders.Delete(ctx, id); err != nil {
		return apperrors.ErrPersistence(err)
	}

	s.publishEvents(ctx, []domain.DomainEvent{
		&domain.RestockOrderDeletedEvent{OrderID: id, OccurredAt_: time.Now().UTC()},
	})

	s.logger.Info("Deleted restock order", "orderId", id)
	return nil
}

// ListReturnItems extracts the attached items whose instances failed
// quality testing. Only COMPLETEDRETURN orders have returnable items.
func (s *RestockOrderService) ListReturnItems(ctx context.Context, id int) ([]domain.SKUItemRef, error) {
	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	rfids := make([]string, 0, len(order.SKUItems))
	for _, item := range order.SKUItems {
		rfids = append(rfids, item.RFID)
	}

	failed := make(map[string]bool, len(rfids))
	if len(rfids) > 0 {
		instances, err := s.skuItems.FindByRFIDs(ctx, rfids)
		if err != nil {
			return nil, apperrors.ErrPersistence(err)
		}
		for _, instance := range instances {
			if !instance.IsAvailable() {
				failed[instance.RFID] = true
			}
		}
	}

	returned, err := order.ReturnItems(failed)
	if err != nil {
		return nil, mapDomainError(err)
	}

	if s.metrics != nil {
		s.metrics.RecordReturnItemsListed()
	}

	s.publishEvents(ctx, []domain.DomainEvent{
		&domain.ReturnItemsListedEvent{
			OrderID:     order.ID,
			ItemCount:   len(returned),
			OccurredAt_: time.Now().UTC(),
		},
	})

	return returned, nil
}

// publishEvents publishes domain events best-effort; failures are logged
// and never surfaced to the API caller.
func (s *RestockOrderService) publishEvents(ctx context.Context, events []domain.DomainEvent) {
	if s.publisher == nil || len(events) == 0 {
		return
	}
	if err := s.publisher.PublishAll(ctx, events); err != nil {
		s.logger.WithError(err).Warn("Failed to publish restock order events")
	}
}
