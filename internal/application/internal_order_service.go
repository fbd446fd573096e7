package application

import (
	"context"
	"time"

	"github.com/wms-platform/services/restock-service/internal/domain"
	apperrors "github.com/wms-platform/services/restock-service/pkg/errors"
	"github.com/wms-platform/services/restock-service/pkg/logging"
	"github.com/wms-platform/services/restock-service/pkg/metrics"
)

// InternalOrderService handles internal (customer) order operations
type InternalOrderService struct {
	orders    domain.InternalOrderRepository
	publisher domain.EventPublisher
	metrics   *metrics.Metrics
	logger    *logging.Logger
}

// NewInternalOrderService creates a new InternalOrderService
func NewInternalOrderService(
	orders domain.InternalOrderRepository,
	publisher domain.EventPublisher,
	m *metrics.Metrics,
	logger *logging.Logger,
) *InternalOrderService {
	return &InternalOrderService{
		orders:    orders,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
	}
}

// Create validates and persists a new internal order in state ISSUED
func (s *InternalOrderService) Create(ctx context.Context, cmd CreateInternalOrderCommand) (*domain.InternalOrder, error) {
	id, err := s.orders.NextID(ctx)
	if err != nil {
		return nil, apperrors.ErrPersistence(err)
	}

	order, err := domain.NewInternalOrder(id, cmd.IssueDate, cmd.Products, cmd.CustomerID)
	if err != nil {
		return nil, mapDomainError(err)
	}

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, apperrors.ErrPersistence(err)
	}

	s.publishEvents(ctx, order.GetDomainEvents())
	order.ClearDomainEvents()

	s.logger.Info("Created internal order",
		"orderId", order.ID,
		"customerId", order.CustomerID,
		"lines", len(order.Products),
	)

	return order, nil
}

// Get retrieves an internal order by id
func (s *InternalOrderService) Get(ctx context.Context, id int) (*domain.InternalOrder, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.ErrPersistence(err)
	}
	if order == nil {
		return nil, apperrors.ErrNotFoundWithID("internal order", itoa(id))
	}
	return order, nil
}

// List retrieves all internal orders
func (s *InternalOrderService) List(ctx context.Context) ([]*domain.InternalOrder, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, apperrors.ErrPersistence(err)
	}
	return orders, nil
}

// ListByState retrieves the internal orders in the given state
func (s *InternalOrderService) ListByState(ctx context.Context, state domain.InternalOrderState) ([]*domain.InternalOrder, error) {
	orders, err := s.orders.FindByState(ctx, state)
	if err != nil {
		return nil, apperrors.ErrPersistence(err)
	}
	return orders, nil
}

// ChangeState moves an internal order to the requested state
func (s *InternalOrderService) ChangeState(ctx context.Context, cmd ChangeInternalStateCommand) (*domain.InternalOrder, error) {
	target, err := domain.ParseInternalOrderState(cmd.NewState)
	if err != nil {
		return nil, mapDomainError(err)
	}

	order, err := s.Get(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}

	from := order.State
	if err := order.ChangeState(target, cmd.Products); err != nil {
		return nil, mapDomainError(err)
	}

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, apperrors.ErrPersistence(err)
	}

	s.publishEvents(ctx, order.GetDomainEvents())
	order.ClearDomainEvents()

	if s.metrics != nil {
		s.metrics.RecordStateTransition("internalOrder", string(from), string(target))
	}
	s.logger.StateTransition(ctx, "internalOrder", order.ID, string(from), string(target))

	return order, nil
}

// Delete removes an internal order unconditionally
func (s *InternalOrderService) Delete(ctx context.Context, id int) error {
	if err := s.orders.Delete(ctx, id); err != nil {
		return apperrors.ErrPersistence(err)
	}

	s.publishEvents(ctx, []domain.DomainEvent{
		&domain.InternalOrderDeletedEvent{OrderID: id, OccurredAt_: time.Now().UTC()},
	})

	s.logger.Info("Deleted internal order", "orderId", id)
	return nil
}

func (s *InternalOrderService) publishEvents(ctx context.Context, events []domain.DomainEvent) {
	if s.publisher == nil || len(events) == 0 {
		return
	}
	if err := s.publisher.PublishAll(ctx, events); err != nil {
		s.logger.WithError(err).Warn("Failed to publish internal order events")
	}
}
