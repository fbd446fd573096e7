package cloudevents

import (
	"time"
)

// EventType constants for warehouse domain events
const (
	// Restock order events
	RestockOrderIssued        = "warehouse.restock.issued"
	RestockOrderStateChanged  = "warehouse.restock.state-changed"
	RestockSkuItemsAttached   = "warehouse.restock.sku-items-attached"
	RestockTransportNoteAdded = "warehouse.restock.transport-note-added"
	RestockOrderDeleted       = "warehouse.restock.deleted"
	RestockReturnItemsListed  = "warehouse.restock.return-items-listed"

	// Stock events
	SkuCreated          = "warehouse.stock.sku-created"
	SkuModified         = "warehouse.stock.sku-modified"
	SkuDeleted          = "warehouse.stock.sku-deleted"
	PositionAssigned    = "warehouse.stock.position-assigned"
	PositionReleased    = "warehouse.stock.position-released"
	OccupancyRecomputed = "warehouse.stock.occupancy-recomputed"

	// SKU item events
	SkuItemStocked  = "warehouse.stock.sku-item-stocked"
	SkuItemModified = "warehouse.stock.sku-item-modified"
	SkuItemDeleted  = "warehouse.stock.sku-item-deleted"

	// Internal order events
	InternalOrderIssued       = "warehouse.internalorder.issued"
	InternalOrderStateChanged = "warehouse.internalorder.state-changed"
	InternalOrderDeleted      = "warehouse.internalorder.deleted"
)

// Source constants for event sources
const (
	SourceRestock = "/warehouse/restock-service"
)

// WarehouseEvent represents a CloudEvents v1.0 compliant event for the warehouse
type WarehouseEvent struct {
	SpecVersion     string                 `json:"specversion"`
	Type            string                 `json:"type"`
	Source          string                 `json:"source"`
	Subject         string                 `json:"subject,omitempty"`
	ID              string                 `json:"id"`
	Time            time.Time              `json:"time"`
	DataContentType string                 `json:"datacontenttype"`
	Data            interface{}            `json:"data"`
	Extensions      map[string]interface{} `json:"-"`

	// Warehouse-specific extensions
	CorrelationID string `json:"whcorrelationid,omitempty"`
	OrderID       string `json:"whorderid,omitempty"`
}

// WithCorrelation sets the correlation extension and returns the event
func (e *WarehouseEvent) WithCorrelation(correlationID string) *WarehouseEvent {
	e.CorrelationID = correlationID
	return e
}

// WithOrder sets the order extension and returns the event
func (e *WarehouseEvent) WithOrder(orderID string) *WarehouseEvent {
	e.OrderID = orderID
	return e
}

// StateChangedData represents the payload for lifecycle transition events
type StateChangedData struct {
	OrderID   int    `json:"orderId"`
	OrderType string `json:"orderType"`
	FromState string `json:"fromState"`
	ToState   string `json:"toState"`
}

// OccupancyData represents the payload for occupancy recomputation events
type OccupancyData struct {
	PositionID     string  `json:"positionId"`
	SkuID          int     `json:"skuId,omitempty"`
	OccupiedWeight float64 `json:"occupiedWeight"`
	OccupiedVolume float64 `json:"occupiedVolume"`
	Reason         string  `json:"reason"`
}
