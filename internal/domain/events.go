package domain

import "time"

// DomainEvent represents a domain event interface
type DomainEvent interface {
	EventType() string
	OccurredAt() time.Time
}

// RestockOrderIssuedEvent is emitted when a restock order is created
type RestockOrderIssuedEvent struct {
	OrderID     int       `json:"orderId"`
	SupplierID  int       `json:"supplierId"`
	IssueDate   string    `json:"issueDate"`
	LineCount   int       `json:"lineCount"`
	OccurredAt_ time.Time `json:"occurredAt"`
}

func (e *RestockOrderIssuedEvent) EventType() string     { return "warehouse.restock.issued" }
func (e *RestockOrderIssuedEvent) OccurredAt() time.Time { return e.OccurredAt_ }

// RestockOrderStateChangedEvent is emitted on every lifecycle transition
type RestockOrderStateChangedEvent struct {
	OrderID     int       `json:"orderId"`
	FromState   string    `json:"fromState"`
	ToState     string    `json:"toState"`
	OccurredAt_ time.Time `json:"occurredAt"`
}

func (e *RestockOrderStateChangedEvent) EventType() string     { return "warehouse.restock.state-changed" }
func (e *RestockOrderStateChangedEvent) OccurredAt() time.Time { return e.OccurredAt_ }

// SKUItemsAttachedEvent is emitted when received items are attached
type SKUItemsAttachedEvent struct {
	OrderID     int       `json:"orderId"`
	ItemCount   int       `json:"itemCount"`
	OccurredAt_ time.Time `json:"occurredAt"`
}

func (e *SKUItemsAttachedEvent) EventType() string     { return "warehouse.restock.sku-items-attached" }
func (e *SKUItemsAttachedEvent) OccurredAt() time.Time { return e.OccurredAt_ }

// TransportNoteAddedEvent is emitted when the carrier note is recorded
type TransportNoteAddedEvent struct {
	OrderID      int       `json:"orderId"`
	DeliveryDate string    `json:"deliveryDate"`
	OccurredAt_  time.Time `json:"occurredAt"`
}

func (e *TransportNoteAddedEvent) EventType() string     { return "warehouse.restock.transport-note-added" }
func (e *TransportNoteAddedEvent) OccurredAt() time.Time { return e.OccurredAt_ }

// RestockOrderDeletedEvent is emitted when a restock order is deleted
type RestockOrderDeletedEvent struct {
	OrderID     int       `json:"orderId"`
	OccurredAt_ time.Time `json:"occurredAt"`
}

func (e *RestockOrderDeletedEvent) EventType() string     { return "warehouse.restock.deleted" }
func (e *RestockOrderDeletedEvent) OccurredAt() time.Time { return e.OccurredAt_ }

// ReturnItemsListedEvent is emitted when the return extractor runs
type ReturnItemsListedEvent struct {
	OrderID     int       `json:"orderId"`
	ItemCount   int       `json:"itemCount"`
	OccurredAt_ time.Time `json:"occurredAt"`
}

func (e *ReturnItemsListedEvent) EventType() string     { return "warehouse.restock.return-items-listed" }
func (e *ReturnItemsListedEvent) OccurredAt() time.Time { return e.OccurredAt_ }

// SKUCreatedEvent is emitted when a SKU is added to the catalogue
type SKUCreatedEvent struct {
	SKUID       int       `json:"skuId"`
	Description string    `json:"description"`
	OccurredAt_ time.Time `json:"occurredAt"`
}

func (e *SKUCreatedEvent) EventType() string     { return "warehouse.stock.sku-created" }
func (e *SKUCreatedEvent) OccurredAt() time.Time { return e.OccurredAt_ }

// SKUModifiedEvent is emitted when SKU fields change
type SKUModifiedEvent struct {
	SKUID       int       `json:"skuId"`
	OccurredAt_ time.Time `json:"occurredAt"`
}

func (e *SKUModifiedEvent) EventType() string     { return "warehouse.stock.sku-modified" }
func (e *SKUModifiedEvent) OccurredAt() time.Time { return e.OccurredAt_ }

// SKUDeletedEvent is emitted when a SKU is removed
type SKUDeletedEvent struct {
	SKUID       int       `json:"skuId"`
	OccurredAt_ time.Time `json:"occurredAt"`
}

func (e *SKUDeletedEvent) EventType() string     { return "warehouse.stock.sku-deleted" }
func (e *SKUDeletedEvent) OccurredAt() time.Time { return e.OccurredAt_ }

// PositionAssignedEvent is emitted when a SKU takes a position
type PositionAssignedEvent struct {
	SKUID       int       `json:"skuId"`
	PositionID  string    `json:"positionId"`
	OccurredAt_ time.Time `json:"occurredAt"`
}

func (e *PositionAssignedEvent) EventType() string     { return "warehouse.stock.position-assigned" }
func (e *PositionAssignedEvent) OccurredAt() time.Time { return e.OccurredAt_ }

// PositionReleasedEvent is emitted when a SKU's position is cleared
type PositionReleasedEvent struct {
	SKUID       int       `json:"skuId"`
	PositionID  string    `json:"positionId"`
	OccurredAt_ time.Time `json:"occurredAt"`
}

func (e *PositionReleasedEvent) EventType() string     { return "warehouse.stock.position-released" }
func (e *PositionReleasedEvent) OccurredAt() time.Time { return e.OccurredAt_ }

// OccupancyRecomputedEvent is emitted when position occupancy figures change
type OccupancyRecomputedEvent struct {
	PositionID     string    `json:"positionId"`
	SKUID          int       `json:"skuId"`
	OccupiedWeight float64   `json:"occupiedWeight"`
	OccupiedVolume float64   `json:"occupiedVolume"`
	Reason         string    `json:"reason"`
	OccurredAt_    time.Time `json:"occurredAt"`
}

func (e *OccupancyRecomputedEvent) EventType() string     { return "warehouse.stock.occupancy-recomputed" }
func (e *OccupancyRecomputedEvent) OccurredAt() time.Time { return e.OccurredAt_ }

// SKUItemStockedEvent is emitted when a physical instance is registered
type SKUItemStockedEvent struct {
	RFID        string    `json:"rfid"`
	SKUID       int       `json:"skuId"`
	OccurredAt_ time.Time `json:"occurredAt"`
}

func (e *SKUItemStockedEvent) EventType() string     { return "warehouse.stock.sku-item-stocked" }
func (e *SKUItemStockedEvent) OccurredAt() time.Time { return e.OccurredAt_ }

// SKUItemModifiedEvent is emitted when a physical instance changes
type SKUItemModifiedEvent struct {
	RFID         string    `json:"rfid"`
	PreviousRFID string    `json:"previousRfid"`
	SKUID        int       `json:"skuId"`
	Available    int       `json:"available"`
	OccurredAt_  time.Time `json:"occurredAt"`
}

func (e *SKUItemModifiedEvent) EventType() string     { return "warehouse.stock.sku-item-modified" }
func (e *SKUItemModifiedEvent) OccurredAt() time.Time { return e.OccurredAt_ }

// SKUItemDeletedEvent is emitted when a physical instance is removed
type SKUItemDeletedEvent struct {
	RFID        string    `json:"rfid"`
	OccurredAt_ time.Time `json:"occurredAt"`
}

func (e *SKUItemDeletedEvent) EventType() string     { return "warehouse.stock.sku-item-deleted" }
func (e *SKUItemDeletedEvent) OccurredAt() time.Time { return e.OccurredAt_ }

// InternalOrderIssuedEvent is emitted when an internal order is created
type InternalOrderIssuedEvent struct {
	OrderID     int       `json:"orderId"`
	CustomerID  int       `json:"customerId"`
	IssueDate   string    `json:"issueDate"`
	LineCount   int       `json:"lineCount"`
	OccurredAt_ time.Time `json:"occurredAt"`
}

func (e *InternalOrderIssuedEvent) EventType() string     { return "warehouse.internalorder.issued" }
func (e *InternalOrderIssuedEvent) OccurredAt() time.Time { return e.OccurredAt_ }

// InternalOrderStateChangedEvent is emitted on internal order transitions
type InternalOrderStateChangedEvent struct {
	OrderID     int       `json:"orderId"`
	FromState   string    `json:"fromState"`
	ToState     string    `json:"toState"`
	OccurredAt_ time.Time `json:"occurredAt"`
}

func (e *InternalOrderStateChangedEvent) EventType() string {
	return "warehouse.internalorder.state-changed"
}
func (e *InternalOrderStateChangedEvent) OccurredAt() time.Time { return e.OccurredAt_ }

// InternalOrderDeletedEvent is emitted when an internal order is deleted
type InternalOrderDeletedEvent struct {
	OrderID     int       `json:"orderId"`
	OccurredAt_ time.Time `json:"occurredAt"`
}

func (e *InternalOrderDeletedEvent) EventType() string     { return "warehouse.internalorder.deleted" }
func (e *InternalOrderDeletedEvent) OccurredAt() time.Time { return e.OccurredAt_ }
