package kafka

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/wms-platform/services/restock-service/internal/domain"
	"github.com/wms-platform/services/restock-service/pkg/cloudevents"
	"github.com/wms-platform/services/restock-service/pkg/kafka"
)

// Producer is the publishing surface this publisher needs
type Producer interface {
	PublishEvent(ctx context.Context, topic string, event *cloudevents.WarehouseEvent) error
}

// EventPublisher implements domain event publishing over Kafka. Events
// are routed to a topic by their type prefix.
type EventPublisher struct {
	producer     Producer
	eventFactory *cloudevents.EventFactory
	topics       kafka.TopicSet
}

// NewEventPublisher creates a new Kafka-based event publisher
func NewEventPublisher(
	producer Producer,
	eventFactory *cloudevents.EventFactory,
	topics kafka.TopicSet,
) *EventPublisher {
	return &EventPublisher{
		producer:     producer,
		eventFactory: eventFactory,
		topics:       topics,
	}
}

// Publish publishes a single domain event to Kafka
func (p *EventPublisher) Publish(ctx context.Context, event domain.DomainEvent) error {
	subject, orderID := p.describe(event)

	ce := p.eventFactory.CreateEvent(ctx, event.EventType(), subject, event)
	if orderID != "" {
		ce.WithOrder(orderID)
	}

	topic := p.topicFor(event.EventType())
	if err := p.producer.PublishEvent(ctx, topic, ce); err != nil {
		return fmt.Errorf("failed to publish event to kafka: %w", err)
	}

	return nil
}

// PublishAll publishes multiple domain events to Kafka
func (p *EventPublisher) PublishAll(ctx context.Context, events []domain.DomainEvent) error {
	for _, event := range events {
		if err := p.Publish(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

// describe derives the subject and, for order events, the order id
// extension
func (p *EventPublisher) describe(event domain.DomainEvent) (subject, orderID string) {
	switch e := event.(type) {
	case *domain.RestockOrderIssuedEvent:
		return "restockOrder/" + strconv.Itoa(e.OrderID), strconv.Itoa(e.OrderID)
	case *domain.RestockOrderStateChangedEvent:
		return "restockOrder/" + strconv.Itoa(e.OrderID), strconv.Itoa(e.OrderID)
	case *domain.SKUItemsAttachedEvent:
		return "restockOrder/" + strconv.Itoa(e.OrderID), strconv.Itoa(e.OrderID)
	case *domain.TransportNoteAddedEvent:
		return "restockOrder/" + strconv.Itoa(e.OrderID), strconv.Itoa(e.OrderID)
	case *domain.RestockOrderDeletedEvent:
		return "restockOrder/" + strconv.Itoa(e.OrderID), strconv.Itoa(e.OrderID)
	case *domain.ReturnItemsListedEvent:
		return "restockOrder/" + strconv.Itoa(e.OrderID), strconv.Itoa(e.OrderID)
	case *domain.SKUCreatedEvent:
		return "sku/" + strconv.Itoa(e.SKUID), ""
	case *domain.SKUModifiedEvent:
		return "sku/" + strconv.Itoa(e.SKUID), ""
	case *domain.SKUDeletedEvent:
		return "sku/" + strconv.Itoa(e.SKUID), ""
	case *domain.PositionAssignedEvent:
		return "position/" + e.PositionID, ""
	case *domain.PositionReleasedEvent:
		return "position/" + e.PositionID, ""
	case *domain.OccupancyRecomputedEvent:
		return "position/" + e.PositionID, ""
	case *domain.SKUItemStockedEvent:
		return "skuitem/" + e.RFID, ""
	case *domain.SKUItemModifiedEvent:
		return "skuitem/" + e.RFID, ""
	case *domain.SKUItemDeletedEvent:
		return "skuitem/" + e.RFID, ""
	case *domain.InternalOrderIssuedEvent:
		return "internalOrder/" + strconv.Itoa(e.OrderID), strconv.Itoa(e.OrderID)
	case *domain.InternalOrderStateChangedEvent:
		return "internalOrder/" + strconv.Itoa(e.OrderID), strconv.Itoa(e.OrderID)
	case *domain.InternalOrderDeletedEvent:
		return "internalOrder/" + strconv.Itoa(e.OrderID), strconv.Itoa(e.OrderID)
	default:
		return "warehouse", ""
	}
}

// topicFor maps an event type to its destination topic
func (p *EventPublisher) topicFor(eventType string) string {
	switch {
	case strings.HasPrefix(eventType, "warehouse.restock."):
		return p.topics.RestockEvents
	case strings.HasPrefix(eventType, "warehouse.internalorder."):
		return p.topics.InternalOrderEvents
	default:
		return p.topics.StockEvents
	}
}
