package cloudevents

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// EventFactory creates CloudEvents for warehouse domain events
type EventFactory struct {
	source string
}

// NewEventFactory creates a new EventFactory for a specific source
func NewEventFactory(source string) *EventFactory {
	return &EventFactory{source: source}
}

// CreateEvent creates a new WarehouseEvent with the given parameters
func (f *EventFactory) CreateEvent(
	ctx context.Context,
	eventType string,
	subject string,
	data interface{},
) *WarehouseEvent {
	event := &WarehouseEvent{
		SpecVersion:     "1.0",
		Type:            eventType,
		Source:          f.source,
		Subject:         subject,
		ID:              uuid.New().String(),
		Time:            time.Now().UTC(),
		DataContentType: "application/json",
		Data:            data,
		Extensions:      make(map[string]interface{}),
	}

	return event
}

// CreateEventWithCorrelation creates an event with correlation tracking
func (f *EventFactory) CreateEventWithCorrelation(
	ctx context.Context,
	eventType string,
	subject string,
	data interface{},
	correlationID string,
) *WarehouseEvent {
	event := f.CreateEvent(ctx, eventType, subject, data)
	event.CorrelationID = correlationID
	return event
}

// CreateStateChangedEvent creates a lifecycle transition event
func (f *EventFactory) CreateStateChangedEvent(
	ctx context.Context,
	eventType string,
	orderType string,
	orderID int,
	fromState string,
	toState string,
) *WarehouseEvent {
	data := StateChangedData{
		OrderID:   orderID,
		OrderType: orderType,
		FromState: fromState,
		ToState:   toState,
	}
	event := f.CreateEvent(ctx, eventType, orderType+"/"+strconv.Itoa(orderID), data)
	event.OrderID = strconv.Itoa(orderID)
	return event
}

// CreateOccupancyEvent creates an occupancy recomputation event
func (f *EventFactory) CreateOccupancyEvent(
	ctx context.Context,
	positionID string,
	skuID int,
	occupiedWeight float64,
	occupiedVolume float64,
	reason string,
) *WarehouseEvent {
	data := OccupancyData{
		PositionID:     positionID,
		SkuID:          skuID,
		OccupiedWeight: occupiedWeight,
		OccupiedVolume: occupiedVolume,
		Reason:         reason,
	}
	return f.CreateEvent(ctx, OccupancyRecomputed, "position/"+positionID, data)
}
